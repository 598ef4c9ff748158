package mid

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/internal"
	"github.com/kindfood/erp-system/logger"
)

// Errors turns a handler error into the error envelope. Client errors are
// logged as warnings, everything else as errors.
func Errors() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			err := before(ctx)
			if err == nil {
				return nil
			}

			log := logger.FromContext(ctx)

			var webErr *web.Error
			if errors.As(err, &webErr) && webErr.Status < http.StatusInternalServerError {
				log.Warningf("%s: %s %s: %v", v.TraceID, ctx.Request.Method, v.Route, err)
			} else {
				log.Errorf("%s: %s %s: %v", v.TraceID, ctx.Request.Method, v.Route, err)
			}

			if err := web.RespondError(ctx, err); err != nil {
				return err
			}

			// the shutdown error goes back to App.Handle
			if web.IsShutdown(err) {
				return err
			}

			return nil
		}

		return h
	}

	return f
}
