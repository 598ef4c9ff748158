package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/kindfood/erp-system/blobstore"
	"github.com/kindfood/erp-system/bomtable/dal"
	"github.com/kindfood/erp-system/bomtable/dal/iface"
	"github.com/kindfood/erp-system/bomtable/domain"
	categoryDal "github.com/kindfood/erp-system/category/dal"
	categoryIface "github.com/kindfood/erp-system/category/dal/iface"
	category "github.com/kindfood/erp-system/category/domain"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/logger"
	materialsDal "github.com/kindfood/erp-system/sharedmaterial/dal"
	materialsIface "github.com/kindfood/erp-system/sharedmaterial/dal/iface"
)

type BOMTablesService struct {
	loggerProvider logger.Provider
	tablesDal      iface.BOMTables
	materialsDal   materialsIface.SharedMaterials
	categoriesDal  categoryIface.Categories
	uploader       blobstore.Uploader
	drafts         *DraftStore
	validate       *validator.Validate
}

func NewBOMTablesService(log logger.Provider, conn *connection.Connection, drafts *DraftStore) *BOMTablesService {
	return &BOMTablesService{
		log,
		dal.NewBOMTablesFirestoreWithClient(conn.Firestore),
		materialsDal.NewSharedMaterialsFirestoreWithClient(conn.Firestore),
		categoryDal.NewCategoriesFirestoreWithClient(conn.Firestore),
		blobstore.NewBucketStore(conn.Bucket),
		drafts,
		validator.New(),
	}
}

func (s *BOMTablesService) List(ctx context.Context) ([]domain.BOMTable, error) {
	return s.tablesDal.List(ctx)
}

func (s *BOMTablesService) Get(ctx context.Context, id string) (*domain.BOMTable, error) {
	return s.tablesDal.Get(ctx, id)
}

// Create allocates the table id, stores the image under it and then writes the table.
func (s *BOMTablesService) Create(ctx context.Context, req domain.TableRequest, image *domain.Image, by common.UserRef) (*domain.BOMTable, error) {
	if err := req.Validate(s.validate); err != nil {
		return nil, err
	}

	id := s.tablesDal.NewID(ctx)

	if err := s.uploadImage(ctx, id, image, &req); err != nil {
		return nil, err
	}

	t, err := s.tablesDal.Create(ctx, id, req.Table(), by)
	if err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Infof("BOM table %s created by %s", id, by.UID)

	return t, nil
}

// Update uploads the new image first, if any, and writes the table in one update
// carrying the image URL.
func (s *BOMTablesService) Update(ctx context.Context, id string, req domain.TableRequest, image *domain.Image, by common.UserRef) (*domain.BOMTable, error) {
	if err := req.Validate(s.validate); err != nil {
		return nil, err
	}

	if _, err := s.tablesDal.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.uploadImage(ctx, id, image, &req); err != nil {
		return nil, err
	}

	t, err := s.tablesDal.Update(ctx, id, req.Table(), by)
	if err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Infof("BOM table %s updated by %s", id, by.UID)

	return t, nil
}

func (s *BOMTablesService) uploadImage(ctx context.Context, id string, image *domain.Image, req *domain.TableRequest) error {
	if image == nil {
		return nil
	}

	url, err := s.uploader.Upload(ctx, blobstore.BOMImageKey(id), image.ContentType, image.Body)
	if err != nil {
		return err
	}

	req.ImageURL = url

	return nil
}

func (s *BOMTablesService) Delete(ctx context.Context, id string) error {
	return s.tablesDal.Delete(ctx, id)
}

// OpenDraft loads the table, the shared catalog and the categories concurrently and
// starts a draft for uid.
func (s *BOMTablesService) OpenDraft(ctx context.Context, uid, tableID string) (*domain.Draft, error) {
	var (
		table      *domain.BOMTable
		options    []domain.SharedOption
		categories []category.Category
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		table, err = s.tablesDal.Get(gctx, tableID)

		return err
	})

	g.Go(func() error {
		materials, err := s.materialsDal.List(gctx)
		if err != nil {
			return err
		}

		options = make([]domain.SharedOption, 0, len(materials))
		for _, m := range materials {
			options = append(options, domain.SharedOption{
				ID:       m.ID,
				Name:     m.Name,
				UnitCost: m.UnitCostValue(),
			})
		}

		return nil
	})

	g.Go(func() error {
		var err error
		categories, err = s.categoriesDal.List(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := s.drafts.Put(uid, domain.NewDraft(*table, options, categories))

	return &d, nil
}

func (s *BOMTablesService) GetDraft(uid, draftID string) (*domain.Draft, error) {
	d, err := s.drafts.Get(uid, draftID)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (s *BOMTablesService) EditDraft(uid, draftID string, edit domain.Edit) (*domain.Draft, error) {
	d, err := s.drafts.Update(uid, draftID, func(d domain.Draft) (domain.Draft, error) {
		return d.Apply(edit)
	})
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// SubmitDraft writes the draft to its table. The draft is dropped on success and kept
// on failure so the submission can be retried.
func (s *BOMTablesService) SubmitDraft(ctx context.Context, uid, draftID string, image *domain.Image, by common.UserRef) (*domain.BOMTable, error) {
	d, err := s.drafts.Get(uid, draftID)
	if err != nil {
		return nil, err
	}

	t, err := s.Update(ctx, d.TableID, d.Request(), image, by)
	if err != nil {
		return nil, err
	}

	s.drafts.Delete(uid, draftID)

	return t, nil
}

func (s *BOMTablesService) DiscardDraft(uid, draftID string) {
	s.drafts.Delete(uid, draftID)
}
