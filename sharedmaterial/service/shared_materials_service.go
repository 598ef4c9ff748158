package service

import (
	"context"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/sharedmaterial/dal"
	"github.com/kindfood/erp-system/sharedmaterial/dal/iface"
	"github.com/kindfood/erp-system/sharedmaterial/domain"
)

type SharedMaterialsService struct {
	loggerProvider logger.Provider
	materialsDal   iface.SharedMaterials
}

func NewSharedMaterialsService(log logger.Provider, conn *connection.Connection) *SharedMaterialsService {
	return &SharedMaterialsService{
		log,
		dal.NewSharedMaterialsFirestoreWithClient(conn.Firestore),
	}
}

func (s *SharedMaterialsService) List(ctx context.Context) ([]domain.Material, error) {
	return s.materialsDal.List(ctx)
}

func (s *SharedMaterialsService) Get(ctx context.Context, id string) (*domain.Material, error) {
	return s.materialsDal.Get(ctx, id)
}

func (s *SharedMaterialsService) Create(ctx context.Context, req domain.MaterialRequest, by common.UserRef) (*domain.Material, error) {
	req.Normalize()

	m, err := s.materialsDal.Create(ctx, req.Material(), by)
	if err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Infof("shared material %s created by %s", m.ID, by.UID)

	return m, nil
}

// Update overwrites the material. The unit cost is recomputed from the submitted values;
// BOM tables that copied the previous cost keep their snapshot.
func (s *SharedMaterialsService) Update(ctx context.Context, id string, req domain.MaterialRequest, by common.UserRef) (*domain.Material, error) {
	if id == "" {
		return nil, domain.ErrInvalidMaterialID
	}

	req.Normalize()

	m, err := s.materialsDal.Update(ctx, id, req.Material(), by)
	if err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Infof("shared material %s updated by %s", id, by.UID)

	return m, nil
}

func (s *SharedMaterialsService) Delete(ctx context.Context, id string) error {
	return s.materialsDal.Delete(ctx, id)
}

func (s *SharedMaterialsService) History(ctx context.Context, id string) ([]domain.HistoryEntry, error) {
	return s.materialsDal.History(ctx, id)
}
