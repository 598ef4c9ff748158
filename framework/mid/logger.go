package mid

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/internal"
	"github.com/kindfood/erp-system/logger"
)

// probe routes are hit by the load balancer and the scraper every few seconds
var quietRoutes = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Logger writes one line when the request starts and one when it completes:
// TraceID : (200) GET /api/bom-tables/:id [uid] -> IP ADDR (latency)
func Logger() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			if quietRoutes[v.Route] {
				return before(ctx)
			}

			log := logger.FromContext(ctx)
			log.SetLabel("route", v.Route)

			log.Debugf("%s: started : %s %s -> %s",
				v.TraceID, ctx.Request.Method, ctx.Request.URL.Path, ctx.Request.RemoteAddr,
			)

			err := before(ctx)

			// the auth middleware runs inside this one, so the user is only known now
			uid := ctx.GetString(common.CtxKeys.UID)
			if uid != "" {
				log.SetLabel("uid", uid)
			}

			logf := log.Printf

			switch {
			case err != nil || v.StatusCode >= http.StatusInternalServerError:
				logf = log.Errorf
			case v.StatusCode >= http.StatusBadRequest:
				logf = log.Warningf
			}

			logf("%s: completed : (%d) %s %s [%s] -> %s (%s)",
				v.TraceID, v.StatusCode, ctx.Request.Method, v.Route, uid,
				ctx.Request.RemoteAddr, v.Elapsed(),
			)

			return err
		}

		return h
	}

	return f
}
