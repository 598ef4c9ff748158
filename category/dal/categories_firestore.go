package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/kindfood/erp-system/category/domain"
	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
)

type CategoriesFirestore struct {
	fetcher *collection.Fetcher[domain.Category]
}

func NewCategoriesFirestoreWithClient(fun connection.FirestoreFromContextFun) *CategoriesFirestore {
	return &CategoriesFirestore{
		fetcher: collection.NewFetcher(
			fun,
			common.CategoriesCollection,
			collection.DataTo(func(c *domain.Category, id string) { c.ID = id }),
			collection.OrderBy("name", firestore.Asc),
		),
	}
}

func (d *CategoriesFirestore) List(ctx context.Context) ([]domain.Category, error) {
	return d.fetcher.FetchAll(ctx)
}
