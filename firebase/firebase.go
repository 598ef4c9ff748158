package firebase

import (
	"context"
	"errors"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie minted on sign-in with a persistent mode.
// Hosting only forwards a cookie with this name to the backend.
const SessionCookieName = "__session"

var errNoAuthHeader = errors.New("no authorization header or session cookie found")
var errInvalidAuthHeader = errors.New("invalid authorization header found")

// TokenVerifier is the subset of the firebase auth client used to authenticate requests.
//
//go:generate mockery --name TokenVerifier --output ./mocks
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*auth.Token, error)
}

// VerifyRequest authenticates the request by its bearer ID token, or by the session
// cookie when no authorization header is sent.
func VerifyRequest(ctx *gin.Context, verifier TokenVerifier) (*auth.Token, error) {
	authHeader := ctx.Request.Header.Get("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return nil, errInvalidAuthHeader
		}

		return verifier.VerifyIDToken(ctx, strings.TrimPrefix(authHeader, "Bearer "))
	}

	cookie, err := ctx.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return nil, errNoAuthHeader
	}

	return verifier.VerifySessionCookieAndCheckRevoked(ctx, cookie)
}

// ClaimString returns a string claim, or "" when absent.
func ClaimString(token *auth.Token, claim string) string {
	if token == nil {
		return ""
	}

	if v, ok := token.Claims[claim].(string); ok {
		return v
	}

	return ""
}
