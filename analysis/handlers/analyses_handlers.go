package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kindfood/erp-system/analysis/dal"
	"github.com/kindfood/erp-system/analysis/dal/iface"
	"github.com/kindfood/erp-system/analysis/domain"
	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
)

type Analyses struct {
	loggerProvider logger.Provider
	analysesDal    iface.Analyses
	validate       *validator.Validate
}

func NewAnalyses(log logger.Provider, conn *connection.Connection) *Analyses {
	return NewAnalysesWithDal(log, dal.NewAnalysesFirestoreWithClient(conn.Firestore))
}

func NewAnalysesWithDal(log logger.Provider, d iface.Analyses) *Analyses {
	return &Analyses{
		log,
		d,
		validator.New(),
	}
}

func (h *Analyses) List(ctx *gin.Context) error {
	analyses, err := h.analysesDal.List(ctx)

	return collection.RespondList(ctx, analyses, err, notification.AnalysisFetchFailed, domain.Analysis.Matches)
}

func (h *Analyses) Save(ctx *gin.Context) error {
	var req domain.AnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	if err := req.Validate(h.validate); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	by := common.CurrentUser(ctx)

	a, err := h.analysesDal.Create(ctx, req, by)
	if err != nil {
		h.loggerProvider(ctx).Errorf("save analysis %s: %s", req.FileName, err)

		return web.NewNotifiedError(err, http.StatusInternalServerError, notification.Error(notification.AnalysisSaveFailed))
	}

	h.loggerProvider(ctx).Infof("analysis %s saved by %s", a.ID, by.UID)

	return web.RespondWith(ctx, web.Reply{
		Data:     a,
		Toast:    notification.Success(notification.AnalysisSaveSuccess),
		Redirect: common.RouteExcelAnalysis,
	}, http.StatusCreated)
}
