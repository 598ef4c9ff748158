package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/pricing/domain"
)

type PricingSchemesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	fetcher            *collection.Fetcher[domain.Scheme]
}

func NewPricingSchemesFirestoreWithClient(fun connection.FirestoreFromContextFun) *PricingSchemesFirestore {
	return &PricingSchemesFirestore{
		firestoreClientFun: fun,
		fetcher: collection.NewFetcher(fun, common.PricingHistoryCollection, normalize,
			collection.OrderBy("createdAt", firestore.Desc),
		),
	}
}

func normalize(snap *firestore.DocumentSnapshot) (domain.Scheme, error) {
	return domain.SchemeFromData(snap.Ref.ID, snap.Data()), nil
}

func (d *PricingSchemesFirestore) GetRef(ctx context.Context, id string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(common.PricingHistoryCollection).Doc(id)
}

// List returns the saved schemes, newest first.
func (d *PricingSchemesFirestore) List(ctx context.Context) ([]domain.Scheme, error) {
	return d.fetcher.FetchAll(ctx)
}

func (d *PricingSchemesFirestore) Get(ctx context.Context, id string) (*domain.Scheme, error) {
	if id == "" {
		return nil, domain.ErrInvalidSchemeID
	}

	docSnap, err := d.GetRef(ctx, id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrSchemeNotFound(id)
		}

		return nil, err
	}

	s := domain.SchemeFromData(id, docSnap.Data())

	return &s, nil
}

func (d *PricingSchemesFirestore) Create(ctx context.Context, scheme domain.Scheme, by common.UserRef) (*domain.Scheme, error) {
	ref := d.firestoreClientFun(ctx).Collection(common.PricingHistoryCollection).NewDoc()

	if _, err := ref.Create(ctx, map[string]interface{}{
		"name":        scheme.Name,
		"note":        scheme.Note,
		"pricingData": domain.PricedItemsData(scheme.PricingData),
		"createdBy":   by,
		"createdAt":   firestore.ServerTimestamp,
	}); err != nil {
		return nil, err
	}

	return d.Get(ctx, ref.ID)
}

// Update renames the scheme and rewrites its note. The pricing itself is immutable.
func (d *PricingSchemesFirestore) Update(ctx context.Context, id, name, note string) (*domain.Scheme, error) {
	if id == "" {
		return nil, domain.ErrInvalidSchemeID
	}

	if _, err := d.GetRef(ctx, id).Update(ctx, []firestore.Update{
		{Path: "name", Value: name},
		{Path: "note", Value: note},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrSchemeNotFound(id)
		}

		return nil, err
	}

	return d.Get(ctx, id)
}

func (d *PricingSchemesFirestore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidSchemeID
	}

	_, err := d.GetRef(ctx, id).Delete(ctx)

	return err
}
