package firebase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	idTokens map[string]string
	cookies  map[string]string
}

func (f fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	if uid, ok := f.idTokens[idToken]; ok {
		return &auth.Token{UID: uid}, nil
	}

	return nil, assert.AnError
}

func (f fakeVerifier) VerifySessionCookieAndCheckRevoked(_ context.Context, cookie string) (*auth.Token, error) {
	if uid, ok := f.cookies[cookie]; ok {
		return &auth.Token{UID: uid}, nil
	}

	return nil, assert.AnError
}

func newRequestContext(setup func(r *http.Request)) *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	setup(ctx.Request)

	return ctx
}

func TestVerifyRequest(t *testing.T) {
	v := fakeVerifier{
		idTokens: map[string]string{"good-token": "uid-token"},
		cookies:  map[string]string{"good-cookie": "uid-cookie"},
	}

	token, err := VerifyRequest(newRequestContext(func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer good-token")
	}), v)
	require.NoError(t, err)
	assert.Equal(t, "uid-token", token.UID)

	token, err = VerifyRequest(newRequestContext(func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-cookie"})
	}), v)
	require.NoError(t, err)
	assert.Equal(t, "uid-cookie", token.UID)

	_, err = VerifyRequest(newRequestContext(func(r *http.Request) {
		r.Header.Set("Authorization", "Basic abc")
	}), v)
	assert.ErrorIs(t, err, errInvalidAuthHeader)

	_, err = VerifyRequest(newRequestContext(func(*http.Request) {}), v)
	assert.ErrorIs(t, err, errNoAuthHeader)
}

func TestClaimString(t *testing.T) {
	token := &auth.Token{Claims: map[string]interface{}{"email": "a@b.c", "n": 1}}

	assert.Equal(t, "a@b.c", ClaimString(token, "email"))
	assert.Equal(t, "", ClaimString(token, "n"))
	assert.Equal(t, "", ClaimString(nil, "email"))
}
