package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/kindfood/erp-system/analysis/domain"
	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
)

type AnalysesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	fetcher            *collection.Fetcher[domain.Analysis]
}

func NewAnalysesFirestoreWithClient(fun connection.FirestoreFromContextFun) *AnalysesFirestore {
	return &AnalysesFirestore{
		firestoreClientFun: fun,
		fetcher: collection.NewFetcher(fun, common.AnalysesCollection,
			func(snap *firestore.DocumentSnapshot) (domain.Analysis, error) {
				return domain.FromData(snap.Ref.ID, snap.Data()), nil
			},
			collection.OrderBy("createdAt", firestore.Desc),
		),
	}
}

func (d *AnalysesFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.AnalysesCollection)
}

// List returns the saved analyses, newest first.
func (d *AnalysesFirestore) List(ctx context.Context) ([]domain.Analysis, error) {
	return d.fetcher.FetchAll(ctx)
}

func (d *AnalysesFirestore) Create(ctx context.Context, req domain.AnalysisRequest, by common.UserRef) (*domain.Analysis, error) {
	ref := d.collection(ctx).NewDoc()

	if _, err := ref.Create(ctx, map[string]interface{}{
		"fileName":  req.FileName,
		"stats":     req.Stats,
		"createdBy": by,
		"createdAt": firestore.ServerTimestamp,
	}); err != nil {
		return nil, err
	}

	docSnap, err := ref.Get(ctx)
	if err != nil {
		return nil, err
	}

	a := domain.FromData(ref.ID, docSnap.Data())

	return &a, nil
}

func (d *AnalysesFirestore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidAnalysisID
	}

	_, err := d.collection(ctx).Doc(id).Delete(ctx)

	return err
}
