package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
	"github.com/kindfood/erp-system/pricing/domain"
	"github.com/kindfood/erp-system/pricing/service"
	"github.com/kindfood/erp-system/pricing/service/iface"
)

type Pricing struct {
	loggerProvider logger.Provider
	service        iface.PricingService
}

func NewPricing(log logger.Provider, conn *connection.Connection, policy domain.Policy) *Pricing {
	return NewPricingWithService(log, service.NewPricingService(log, conn, policy))
}

func NewPricingWithService(log logger.Provider, s iface.PricingService) *Pricing {
	return &Pricing{
		log,
		s,
	}
}

func (h *Pricing) List(ctx *gin.Context) error {
	schemes, err := h.service.List(ctx)

	return collection.RespondList(ctx, schemes, err, notification.PricingFetchFailed, domain.Scheme.Matches)
}

func (h *Pricing) Get(ctx *gin.Context) error {
	id := ctx.Param("id")

	s, err := h.service.Get(ctx, id)
	if err != nil {
		return h.schemeError(ctx, id, err, notification.PricingFetchFailed)
	}

	return web.Respond(ctx, s, http.StatusOK)
}

func (h *Pricing) Save(ctx *gin.Context) error {
	var req domain.SchemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	s, err := h.service.Save(ctx, req, common.CurrentUser(ctx))
	if err != nil {
		return h.schemeError(ctx, "", err, notification.PricingSaveFailed)
	}

	return web.RespondWith(ctx, web.Reply{
		Data:  s,
		Toast: notification.Success(notification.PricingSaveSuccess),
	}, http.StatusCreated)
}

// Update renames a scheme and rewrites its note.
func (h *Pricing) Update(ctx *gin.Context) error {
	id := ctx.Param("id")

	var req domain.SchemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	s, err := h.service.Update(ctx, id, req)
	if err != nil {
		return h.schemeError(ctx, id, err, notification.PricingUpdateFailed)
	}

	return web.RespondWith(ctx, web.Reply{
		Data:  s,
		Toast: notification.Success(notification.PricingUpdateSuccess),
	}, http.StatusOK)
}

// Apply loads a saved scheme as the caller's working set and sends them to the dealer pricing page.
func (h *Pricing) Apply(ctx *gin.Context) error {
	id := ctx.Param("id")

	ws, err := h.service.Apply(ctx, common.CurrentUser(ctx).UID, id)
	if err != nil {
		return h.schemeError(ctx, id, err, notification.PricingApplyFailed)
	}

	return web.RespondWith(ctx, web.Reply{
		Data:     ws,
		Toast:    notification.Success(notification.PricingApplySuccess),
		Redirect: common.RouteDealerPricing,
	}, http.StatusOK)
}

func (h *Pricing) Current(ctx *gin.Context) error {
	raw, err := h.service.Current(ctx, common.CurrentUser(ctx).UID)
	if err != nil {
		if errors.Is(err, domain.ErrNoWorkingSet) {
			return web.NewNotifiedError(err, http.StatusNotFound, notification.Error(notification.PricingNoWorkingSet))
		}

		h.loggerProvider(ctx).Errorf("read working set: %s", err)

		return web.NewNotifiedError(err, http.StatusInternalServerError, notification.Error(notification.PricingFetchFailed))
	}

	return web.Respond(ctx, json.RawMessage(raw), http.StatusOK)
}

func (h *Pricing) SaveCurrent(ctx *gin.Context) error {
	var ws domain.WorkingSet
	if err := ctx.ShouldBindJSON(&ws); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	saved, err := h.service.SaveCurrent(ctx, common.CurrentUser(ctx).UID, ws)
	if err != nil {
		h.loggerProvider(ctx).Errorf("store working set: %s", err)

		return web.NewNotifiedError(err, http.StatusInternalServerError, notification.Error(notification.PricingSaveFailed))
	}

	return web.Respond(ctx, saved, http.StatusOK)
}

func (h *Pricing) Calculate(ctx *gin.Context) error {
	var req domain.CalculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	return web.Respond(ctx, domain.CalculateRequest{PricingData: h.service.Calculate(req.PricingData)}, http.StatusOK)
}

func (h *Pricing) schemeError(ctx *gin.Context, id string, err error, failure notification.Key) error {
	switch {
	case domain.IsNotFound(err):
		return web.NewNotifiedError(err, http.StatusNotFound, notification.Error(notification.PricingNotFound))
	case errors.Is(err, domain.ErrNoWorkingSet):
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.PricingNoWorkingSet))
	case errors.Is(err, domain.ErrInvalidScheme):
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	h.loggerProvider(ctx).Errorf("pricing scheme %s: %s", id, err)

	return web.NewNotifiedError(err, http.StatusInternalServerError, notification.Error(failure))
}
