package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/assert"

	"github.com/kindfood/erp-system/common"
	fb "github.com/kindfood/erp-system/firebase"
	"github.com/kindfood/erp-system/framework/mid"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/session/domain"
	"github.com/kindfood/erp-system/session/service"
	"github.com/kindfood/erp-system/session/service/mocks"
)

type sessionFields struct {
	service *mocks.AuthService
}

type envelope struct {
	Data         json.RawMessage `json:"data"`
	Notification *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"notification"`
	Redirect string `json:"redirect"`
}

func newSessionApp(h *Session) *web.App {
	setUser := func(next web.Handler) web.Handler {
		return func(ctx *gin.Context) error {
			ctx.Set(common.CtxKeys.UID, "u1")
			ctx.Set(common.CtxKeys.Email, "chef@kindfood.tw")

			return next(ctx)
		}
	}

	app := web.NewTestApp(mid.Errors())
	app.Post("/api/signin", h.SignIn)
	app.Post("/api/signout", h.SignOut, setUser)
	app.Get("/api/session", h.Me, setUser)
	app.Get("/api/session/events", h.Events, setUser)

	return app
}

func TestSession_SignIn(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		on           func(*sessionFields)
		wantCode     int
		wantMessage  string
		wantRedirect string
		wantMaxAge   int
		wantCookie   bool
	}{
		{
			name: "local persistence sets a persistent cookie",
			body: `{"email":"chef@kindfood.tw","password":"secret","persistence":"local"}`,
			on: func(f *sessionFields) {
				f.service.On("SignIn", mock.Anything, domain.SignInRequest{
					Email: "chef@kindfood.tw", Password: "secret", Persistence: domain.PersistenceLocal,
				}).Return(&domain.SignInResult{
					User:          domain.User{UID: "u1"},
					IDToken:       "id-token",
					SessionCookie: "cookie",
					Persistent:    true,
				}, nil)
			},
			wantCode:     http.StatusOK,
			wantMessage:  "登入成功！",
			wantRedirect: "/",
			wantCookie:   true,
			wantMaxAge:   int(domain.SessionCookieTTL.Seconds()),
		},
		{
			name: "session persistence sets a browser session cookie",
			body: `{"email":"chef@kindfood.tw","password":"secret","persistence":"session"}`,
			on: func(f *sessionFields) {
				f.service.On("SignIn", mock.Anything, mock.Anything).Return(&domain.SignInResult{
					SessionCookie: "cookie",
				}, nil)
			},
			wantCode:     http.StatusOK,
			wantMessage:  "登入成功！",
			wantRedirect: "/",
			wantCookie:   true,
		},
		{
			name: "unregistered email",
			body: `{"email":"new@kindfood.tw","password":"secret"}`,
			on: func(f *sessionFields) {
				f.service.On("SignIn", mock.Anything, mock.Anything).Return(nil, &fb.ProviderError{Code: fb.CodeUserNotFound})
			},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "此信箱尚未註冊",
		},
		{
			name: "wrong password",
			body: `{"email":"chef@kindfood.tw","password":"nope"}`,
			on: func(f *sessionFields) {
				f.service.On("SignIn", mock.Anything, mock.Anything).Return(nil, &fb.ProviderError{Code: fb.CodeWrongPassword})
			},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "密碼錯誤",
		},
		{
			name: "invalid credential",
			body: `{"email":"chef@kindfood.tw","password":"nope"}`,
			on: func(f *sessionFields) {
				f.service.On("SignIn", mock.Anything, mock.Anything).Return(nil, &fb.ProviderError{Code: fb.CodeInvalidCredential})
			},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "信箱或密碼錯誤",
		},
		{
			name: "other provider code",
			body: `{"email":"chef@kindfood.tw","password":"nope"}`,
			on: func(f *sessionFields) {
				f.service.On("SignIn", mock.Anything, mock.Anything).Return(nil, &fb.ProviderError{Code: fb.CodeTooManyRequests})
			},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "登入失敗，請稍後再試",
		},
		{
			name: "provider unreachable",
			body: `{"email":"chef@kindfood.tw","password":"nope"}`,
			on: func(f *sessionFields) {
				f.service.On("SignIn", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: timeout"))
			},
			wantCode:    http.StatusBadGateway,
			wantMessage: "登入失敗，請稍後再試",
		},
		{
			name:        "malformed email is rejected before the provider",
			body:        `{"email":"not-an-email","password":"secret"}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "信箱格式錯誤",
		},
		{
			name:        "unknown persistence",
			body:        `{"email":"chef@kindfood.tw","password":"secret","persistence":"forever"}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "登入失敗，請稍後再試",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sessionFields{service: mocks.NewAuthService(t)}
			if tt.on != nil {
				tt.on(&f)
			}

			h := NewSession(logger.FromContext, f.service, service.NewHub(), service.NewObservers(), time.Millisecond)

			w := httptest.NewRecorder()
			newSessionApp(h).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/signin", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, w.Code)

			var body envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Notification.Message)
			assert.Equal(t, tt.wantRedirect, body.Redirect)

			cookies := w.Result().Cookies()
			if !tt.wantCookie {
				assert.Equal(t, 0, len(cookies))
				return
			}

			require.Len(t, cookies, 1)
			assert.Equal(t, fb.SessionCookieName, cookies[0].Name)
			assert.Equal(t, tt.wantMaxAge, cookies[0].MaxAge)
			assert.Equal(t, cookies[0].HttpOnly, true)
		})
	}
}

func TestSession_SignOut(t *testing.T) {
	f := sessionFields{service: mocks.NewAuthService(t)}
	f.service.On("SignOut", mock.Anything, "u1").Return(nil).Once()
	f.service.On("SignOut", mock.Anything, "u1").Return(errors.New("unavailable")).Once()

	app := newSessionApp(NewSession(logger.FromContext, f.service, service.NewHub(), service.NewObservers(), time.Millisecond))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/signout", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookies[0].MaxAge < 0, true)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/signout", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "登出失敗，請稍後再試", body.Notification.Message)
}

func TestSession_Me(t *testing.T) {
	app := newSessionApp(NewSession(logger.FromContext, mocks.NewAuthService(t), service.NewHub(), service.NewObservers(), time.Millisecond))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, `{"uid":"u1","email":"chef@kindfood.tw","displayName":"未知用戶"}`, string(body.Data))
}

func TestSession_Events(t *testing.T) {
	hub := service.NewHub()
	app := newSessionApp(NewSession(logger.FromContext, mocks.NewAuthService(t), hub, service.NewObservers(), time.Millisecond))

	srv := httptest.NewServer(app)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/session/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	var sessions []string

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() && len(sessions) < 2 {
		if data, ok := strings.CutPrefix(scanner.Text(), "data:"); ok {
			sessions = append(sessions, data)
		}
	}

	require.Len(t, sessions, 2)
	assert.Equal(t, strings.Contains(sessions[0], `"isLoading":true`), true)
	assert.Equal(t, strings.Contains(sessions[0], `"user":null`), true)
	assert.Equal(t, strings.Contains(sessions[1], `"isLoading":false`), true)
	assert.Equal(t, strings.Contains(sessions[1], `"uid":"u1"`), true)
}
