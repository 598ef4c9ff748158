package mid

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/common"
	fb "github.com/kindfood/erp-system/firebase"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized operation")
)

// AuthRequired middleware that auth requests coming from the client app, by the
// firebase ID token or the session cookie.
func AuthRequired(verifier fb.TokenVerifier) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			l := logger.FromContext(ctx)

			token, err := fb.VerifyRequest(ctx, verifier)
			if err != nil {
				return web.NewNotifiedError(
					errors.Join(ErrUnauthorized, err),
					http.StatusUnauthorized,
					notification.Error(notification.AuthRequired),
				).WithRedirect(common.RouteSignIn)
			}

			email := strings.ToLower(fb.ClaimString(token, "email"))

			ctx.Set(common.CtxKeys.Claims, token.Claims)
			ctx.Set(common.CtxKeys.UID, token.UID)
			ctx.Set(common.CtxKeys.Email, email)
			ctx.Set(common.CtxKeys.Name, fb.ClaimString(token, "name"))

			l.SetLabels(map[string]string{
				"email": email,
				"uid":   token.UID,
			})

			l.Printf("request executed by email [%s] uid [%s]", email, token.UID)

			return handler(ctx)
		}

		return h
	}

	return f
}
