package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/sharedmaterial/domain"
)

type SharedMaterialsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	fetcher            *collection.Fetcher[domain.Material]
}

func NewSharedMaterialsFirestore(ctx context.Context, projectID string) (*SharedMaterialsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewSharedMaterialsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewSharedMaterialsFirestoreWithClient(fun connection.FirestoreFromContextFun) *SharedMaterialsFirestore {
	return &SharedMaterialsFirestore{
		firestoreClientFun: fun,
		fetcher:            collection.NewFetcher(fun, common.SharedMaterialsCollection, normalize),
	}
}

func normalize(snap *firestore.DocumentSnapshot) (domain.Material, error) {
	return domain.FromData(snap.Ref.ID, snap.Data()), nil
}

func (d *SharedMaterialsFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.SharedMaterialsCollection)
}

func (d *SharedMaterialsFirestore) GetRef(ctx context.Context, id string) *firestore.DocumentRef {
	return d.collection(ctx).Doc(id)
}

func (d *SharedMaterialsFirestore) List(ctx context.Context) ([]domain.Material, error) {
	return d.fetcher.FetchAll(ctx)
}

func (d *SharedMaterialsFirestore) Get(ctx context.Context, id string) (*domain.Material, error) {
	if id == "" {
		return nil, domain.ErrInvalidMaterialID
	}

	docSnap, err := d.GetRef(ctx, id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrMaterialNotFound(id)
		}

		return nil, err
	}

	m := domain.FromData(id, docSnap.Data())

	return &m, nil
}

// Create adds the material and its first history entry in one transaction.
func (d *SharedMaterialsFirestore) Create(ctx context.Context, material domain.Material, by common.UserRef) (*domain.Material, error) {
	ref := d.collection(ctx).NewDoc()

	err := d.firestoreClientFun(ctx).RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(ref, map[string]interface{}{
			"name":             material.Name,
			"purchaseUnitCost": material.PurchaseUnitCost,
			"productUnit":      material.ProductUnit,
			"unitCost":         material.UnitCost,
			"createdAt":        firestore.ServerTimestamp,
		}); err != nil {
			return err
		}

		return tx.Create(ref.Collection(common.HistorySubCollection).NewDoc(), historyEntry(material, by))
	})
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, ref.ID)
}

// Update overwrites the editable fields, stamps lastUpdated and records the new state
// in the history sub-collection.
func (d *SharedMaterialsFirestore) Update(ctx context.Context, id string, material domain.Material, by common.UserRef) (*domain.Material, error) {
	if id == "" {
		return nil, domain.ErrInvalidMaterialID
	}

	ref := d.GetRef(ctx, id)

	err := d.firestoreClientFun(ctx).RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrMaterialNotFound(id)
			}

			return err
		}

		if err := tx.Update(ref, []firestore.Update{
			{Path: "name", Value: material.Name},
			{Path: "purchaseUnitCost", Value: material.PurchaseUnitCost},
			{Path: "productUnit", Value: material.ProductUnit},
			{Path: "unitCost", Value: material.UnitCost},
			{Path: "lastUpdated", Value: firestore.ServerTimestamp},
		}); err != nil {
			return err
		}

		return tx.Create(ref.Collection(common.HistorySubCollection).NewDoc(), historyEntry(material, by))
	})
	if err != nil {
		return nil, err
	}

	return d.Get(ctx, id)
}

// Delete removes the material together with its history.
func (d *SharedMaterialsFirestore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidMaterialID
	}

	ref := d.GetRef(ctx, id)

	return d.firestoreClientFun(ctx).RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		history, err := tx.Documents(ref.Collection(common.HistorySubCollection)).GetAll()
		if err != nil {
			return err
		}

		for _, h := range history {
			if err := tx.Delete(h.Ref); err != nil {
				return err
			}
		}

		return tx.Delete(ref)
	})
}

// History returns the recorded states of a material, newest first.
func (d *SharedMaterialsFirestore) History(ctx context.Context, id string) ([]domain.HistoryEntry, error) {
	if id == "" {
		return nil, domain.ErrInvalidMaterialID
	}

	if _, err := d.Get(ctx, id); err != nil {
		return nil, err
	}

	docSnaps, err := d.GetRef(ctx, id).Collection(common.HistorySubCollection).
		OrderBy("changedAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.HistoryEntry, 0, len(docSnaps))
	for _, docSnap := range docSnaps {
		entries = append(entries, domain.HistoryFromData(docSnap.Ref.ID, docSnap.Data()))
	}

	return entries, nil
}

func historyEntry(material domain.Material, by common.UserRef) map[string]interface{} {
	return map[string]interface{}{
		"name":             material.Name,
		"purchaseUnitCost": material.PurchaseUnitCost,
		"productUnit":      material.ProductUnit,
		"unitCost":         material.UnitCost,
		"changedAt":        firestore.ServerTimestamp,
		"changedBy":        by,
	}
}
