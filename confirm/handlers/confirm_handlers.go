package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/confirm"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
)

// Target describes the collection a confirm flow deletes from.
type Target struct {
	// Collection is the route segment of the collection, e.g. "bom-tables".
	Collection string

	Prompt       notification.Key
	Success      notification.Key
	Failure      notification.Key
	FetchFailure notification.Key

	Delete  confirm.DeleteFunc
	Refetch func(ctx context.Context) (interface{}, error)
}

// FlowState is the wire form of a flow after a transition.
type FlowState struct {
	State  confirm.State `json:"state"`
	Target string        `json:"target,omitempty"`
}

type Confirm struct {
	loggerProvider logger.Provider
	registry       *confirm.Registry
	target         Target
}

func NewConfirm(log logger.Provider, registry *confirm.Registry, target Target) *Confirm {
	return &Confirm{
		log,
		registry,
		target,
	}
}

func (h *Confirm) flow(ctx *gin.Context) *confirm.Flow {
	return h.registry.Flow(ctx.GetString(common.CtxKeys.UID), h.target.Collection)
}

// Intent marks the :id document for deletion and returns the confirmation prompt.
func (h *Confirm) Intent(ctx *gin.Context) error {
	f := h.flow(ctx)

	if err := f.Intent(ctx.Param("id")); err != nil {
		return flowError(err)
	}

	return web.RespondWith(ctx, web.Reply{
		Data:  FlowState{f.State(), f.Target()},
		Toast: notification.Info(h.target.Prompt),
	}, http.StatusOK)
}

// Cancel drops the pending target.
func (h *Confirm) Cancel(ctx *gin.Context) error {
	f := h.flow(ctx)

	if err := f.Cancel(); err != nil {
		return flowError(err)
	}

	return web.RespondWith(ctx, web.Reply{
		Data: FlowState{State: f.State()},
	}, http.StatusOK)
}

// Confirm deletes the pending target and answers with the refetched collection.
func (h *Confirm) Confirm(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	id, err := h.flow(ctx).Confirm(ctx, h.target.Delete)
	if err != nil {
		if errors.Is(err, confirm.ErrNothingPending) || errors.Is(err, confirm.ErrBusy) {
			return flowError(err)
		}

		l.Errorf("delete %s/%s: %s", h.target.Collection, id, err)

		return web.NewNotifiedError(err, http.StatusInternalServerError, notification.Error(h.target.Failure))
	}

	l.Infof("deleted %s/%s", h.target.Collection, id)

	items, err := h.target.Refetch(ctx)
	if err != nil {
		l.Errorf("refetch %s after delete: %s", h.target.Collection, err)

		return web.RespondWith(ctx, web.Reply{
			Data:  []interface{}{},
			Toast: notification.Error(h.target.FetchFailure),
		}, http.StatusOK)
	}

	return web.RespondWith(ctx, web.Reply{
		Data:  items,
		Toast: notification.Success(h.target.Success),
	}, http.StatusOK)
}

func flowError(err error) error {
	switch {
	case errors.Is(err, confirm.ErrInvalidTarget):
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	case errors.Is(err, confirm.ErrBusy):
		return web.NewNotifiedError(err, http.StatusConflict, notification.Info(notification.ConfirmBusy))
	case errors.Is(err, confirm.ErrNothingPending):
		return web.NewNotifiedError(err, http.StatusConflict, notification.Info(notification.ConfirmNothingPending))
	}

	return web.NewRequestError(err, http.StatusInternalServerError)
}
