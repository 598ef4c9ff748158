package mid

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/internal"
)

func reportToSentry(ctx *gin.Context, err error) {
	hub := sentrygin.GetHubFromContext(ctx)
	if hub == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetUser(sentry.User{
			ID:    ctx.GetString(common.CtxKeys.UID),
			Email: ctx.GetString(common.CtxKeys.Email),
		})

		if v, ok := internal.DataFromContext(ctx); ok {
			scope.SetTag("route", v.Route)
			scope.SetTag("trace", v.TraceID)
		}

		hub.CaptureException(err)
	})
}

// Sentry reports server side failures. Notified errors below 500 are expected
// outcomes (a missing BOM table, a busy confirm slot) and are not reported.
func Sentry() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			err := before(ctx)
			if err == nil {
				return nil
			}

			var webErr *web.Error
			if !errors.As(err, &webErr) || webErr.Status >= http.StatusInternalServerError {
				reportToSentry(ctx, err)
			}

			return err
		}

		return h
	}

	return f
}
