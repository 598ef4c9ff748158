package mid

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/internal"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
)

// Panics recovers a panicking handler and turns it into a 500 carrying the
// internal error toast, so Errors can still answer with the usual envelope.
func Panics() web.Middleware {
	f := func(after web.Handler) web.Handler {
		h := func(ctx *gin.Context) (err error) {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			defer func() {
				r := recover()
				if r == nil {
					return
				}

				perr := fmt.Errorf("panic: %v", r)
				logger.FromContext(ctx).Errorf("%s: %s %s: %s\n%s", v.TraceID, ctx.Request.Method, v.Route, perr, debug.Stack())

				if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
					hub.WithScope(func(scope *sentry.Scope) {
						scope.SetTag("route", v.Route)
						scope.SetTag("trace", v.TraceID)
						scope.SetUser(sentry.User{ID: ctx.GetString(common.CtxKeys.UID)})
						hub.Recover(perr)
					})
					hub.Flush(5 * time.Second)
				}

				err = web.NewNotifiedError(perr, http.StatusInternalServerError, notification.Error(notification.InternalError))
			}()

			return after(ctx)
		}

		return h
	}

	return f
}
