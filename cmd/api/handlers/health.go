package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/web"
)

type health struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func Health(ctx *gin.Context) error {
	return web.Respond(ctx, health{"ok", common.GAEVersion}, http.StatusOK)
}
