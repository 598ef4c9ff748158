package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
	"github.com/kindfood/erp-system/sharedmaterial/domain"
	"github.com/kindfood/erp-system/sharedmaterial/service"
	"github.com/kindfood/erp-system/sharedmaterial/service/iface"
)

type SharedMaterials struct {
	loggerProvider logger.Provider
	service        iface.SharedMaterialsService
	validate       *validator.Validate
}

func NewSharedMaterials(log logger.Provider, conn *connection.Connection) *SharedMaterials {
	return NewSharedMaterialsWithService(log, service.NewSharedMaterialsService(log, conn))
}

func NewSharedMaterialsWithService(log logger.Provider, s iface.SharedMaterialsService) *SharedMaterials {
	return &SharedMaterials{
		log,
		s,
		validator.New(),
	}
}

func (h *SharedMaterials) List(ctx *gin.Context) error {
	materials, err := h.service.List(ctx)

	return collection.RespondList(ctx, materials, err, notification.MaterialFetchFailed, domain.Material.Matches)
}

func (h *SharedMaterials) Get(ctx *gin.Context) error {
	id := ctx.Param("id")

	m, err := h.service.Get(ctx, id)
	if err != nil {
		return h.materialError(ctx, id, err, notification.MaterialFetchFailed)
	}

	return web.Respond(ctx, m, http.StatusOK)
}

func (h *SharedMaterials) Create(ctx *gin.Context) error {
	var req domain.MaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	if err := req.Validate(h.validate); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	m, err := h.service.Create(ctx, req, common.CurrentUser(ctx))
	if err != nil {
		h.loggerProvider(ctx).Errorf("create shared material: %s", err)

		return web.NewNotifiedError(err, http.StatusInternalServerError, notification.Error(notification.MaterialCreateFailed))
	}

	return web.RespondWith(ctx, web.Reply{
		Data:     m,
		Toast:    notification.Success(notification.MaterialCreateSuccess),
		Redirect: common.RouteSharedMaterials,
	}, http.StatusCreated)
}

func (h *SharedMaterials) Update(ctx *gin.Context) error {
	id := ctx.Param("id")

	var req domain.MaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	if err := req.Validate(h.validate); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	m, err := h.service.Update(ctx, id, req, common.CurrentUser(ctx))
	if err != nil {
		return h.materialError(ctx, id, err, notification.MaterialUpdateFailed)
	}

	return web.RespondWith(ctx, web.Reply{
		Data:     m,
		Toast:    notification.Success(notification.MaterialUpdateSuccess),
		Redirect: common.RouteSharedMaterials,
	}, http.StatusOK)
}

// History lists the recorded states of one material, newest first.
func (h *SharedMaterials) History(ctx *gin.Context) error {
	id := ctx.Param("id")

	entries, err := h.service.History(ctx, id)
	if domain.IsNotFound(err) {
		return h.materialError(ctx, id, err, notification.MaterialHistoryFailed)
	}

	return collection.RespondList(ctx, entries, err, notification.MaterialHistoryFailed, nil)
}

func (h *SharedMaterials) materialError(ctx *gin.Context, id string, err error, failure notification.Key) error {
	if domain.IsNotFound(err) {
		return web.NewNotifiedError(err, http.StatusNotFound, notification.Error(notification.MaterialNotFound)).
			WithRedirect(common.RouteSharedMaterials)
	}

	h.loggerProvider(ctx).Errorf("shared material %s: %s", id, err)

	return web.NewNotifiedError(err, http.StatusInternalServerError, notification.Error(failure))
}
