package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/category/dal"
	"github.com/kindfood/erp-system/category/dal/iface"
	"github.com/kindfood/erp-system/category/domain"
	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
)

type Categories struct {
	loggerProvider logger.Provider
	categoriesDal  iface.Categories
}

func NewCategories(log logger.Provider, conn *connection.Connection) *Categories {
	return &Categories{
		log,
		dal.NewCategoriesFirestoreWithClient(conn.Firestore),
	}
}

func (h *Categories) List(ctx *gin.Context) error {
	categories, err := h.categoriesDal.List(ctx)

	return collection.RespondList(ctx, categories, err, notification.CategoryFetchFailed, domain.Category.Matches)
}
