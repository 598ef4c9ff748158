package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kindfood/erp-system/bomtable/domain"
	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
)

type BOMTablesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	fetcher            *collection.Fetcher[domain.BOMTable]
}

func NewBOMTablesFirestoreWithClient(fun connection.FirestoreFromContextFun) *BOMTablesFirestore {
	return &BOMTablesFirestore{
		firestoreClientFun: fun,
		fetcher: collection.NewFetcher(fun, common.BOMTablesCollection, func(snap *firestore.DocumentSnapshot) (domain.BOMTable, error) {
			return domain.FromData(snap.Ref.ID, snap.Data()), nil
		}),
	}
}

func (d *BOMTablesFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.BOMTablesCollection)
}

// NewID allocates the id of a table before it is written, so its image can be stored first.
func (d *BOMTablesFirestore) NewID(ctx context.Context) string {
	return d.collection(ctx).NewDoc().ID
}

// List returns every table in collection order.
func (d *BOMTablesFirestore) List(ctx context.Context) ([]domain.BOMTable, error) {
	return d.fetcher.FetchAll(ctx)
}

func (d *BOMTablesFirestore) Get(ctx context.Context, id string) (*domain.BOMTable, error) {
	if id == "" {
		return nil, domain.ErrInvalidBOMTableID
	}

	docSnap, err := d.collection(ctx).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrBOMTableNotFound(id)
		}

		return nil, err
	}

	t := domain.FromData(id, docSnap.Data())

	return &t, nil
}

func (d *BOMTablesFirestore) Create(ctx context.Context, id string, table domain.BOMTable, by common.UserRef) (*domain.BOMTable, error) {
	if id == "" {
		return nil, domain.ErrInvalidBOMTableID
	}

	if _, err := d.collection(ctx).Doc(id).Create(ctx, map[string]interface{}{
		"tableName": table.TableName,
		"items":     domain.ItemsData(table.Items),
		"totalCost": table.TotalCost,
		"category":  table.Category,
		"imageUrl":  table.ImageURL,
		"createdAt": firestore.ServerTimestamp,
		"createdBy": by,
	}); err != nil {
		return nil, err
	}

	return d.Get(ctx, id)
}

// Update writes the table wholesale in a single update, stamping updatedAt and updatedBy.
func (d *BOMTablesFirestore) Update(ctx context.Context, id string, table domain.BOMTable, by common.UserRef) (*domain.BOMTable, error) {
	if id == "" {
		return nil, domain.ErrInvalidBOMTableID
	}

	if _, err := d.collection(ctx).Doc(id).Update(ctx, []firestore.Update{
		{Path: "tableName", Value: table.TableName},
		{Path: "items", Value: domain.ItemsData(table.Items)},
		{Path: "totalCost", Value: table.TotalCost},
		{Path: "category", Value: table.Category},
		{Path: "imageUrl", Value: table.ImageURL},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
		{Path: "updatedBy", Value: by},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrBOMTableNotFound(id)
		}

		return nil, err
	}

	return d.Get(ctx, id)
}

func (d *BOMTablesFirestore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidBOMTableID
	}

	_, err := d.collection(ctx).Doc(id).Delete(ctx)

	return err
}
