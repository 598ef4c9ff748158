package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindfood/erp-system/notification"
)

func TestApp_RespondWith(t *testing.T) {
	app := NewTestApp()
	app.Get("/api/things", func(ctx *gin.Context) error {
		return RespondWith(ctx, Reply{
			Data:     []string{},
			Toast:    notification.Success(notification.BOMUpdateSuccess),
			Redirect: "/bom-table",
		}, http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/things", nil)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, []interface{}{}, body["data"])
	assert.Equal(t, "/bom-table", body["redirect"])
	assert.Equal(t, map[string]interface{}{"type": "success", "message": "BOM 表修改成功"}, body["notification"])
}

func TestApp_MiddlewareOrder(t *testing.T) {
	var order []string

	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx *gin.Context) error {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	app := NewTestApp(mark("app"))
	g := NewGroup(app, "/api", mark("group"))
	sub := g.NewSubgroup("/sub", mark("sub"))
	sub.Post("/x", func(ctx *gin.Context) error {
		order = append(order, "handler")
		return Respond(ctx, nil, http.StatusNoContent)
	}, mark("route"))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sub/x", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"app", "group", "sub", "route", "handler"}, order)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantRedirect string
		wantMessage  string
	}{
		{
			name:         "notified error with redirect",
			err:          NewNotifiedError(errors.New("bom table abc not found"), http.StatusNotFound, notification.Error(notification.BOMNotFound)).WithRedirect("/"),
			wantStatus:   http.StatusNotFound,
			wantRedirect: "/",
			wantMessage:  "找不到指定的 BOM 表",
		},
		{
			name:       "plain request error",
			err:        NewRequestError(errors.New("bad request"), http.StatusBadRequest),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "發生未預期的錯誤",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			require.NoError(t, RespondError(ctx, tt.err))
			assert.Equal(t, tt.wantStatus, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantRedirect, body.Redirect)

			if tt.wantMessage != "" {
				require.NotNil(t, body.Notification)
				assert.Equal(t, tt.wantMessage, body.Notification.Message)
			} else {
				assert.Nil(t, body.Notification)
			}
		})
	}
}

func TestShutdownError(t *testing.T) {
	err := NewRequestError(errors.New("missing"), http.StatusNotFound)

	var webErr *Error
	require.True(t, errors.As(err, &webErr))
	assert.Equal(t, http.StatusNotFound, webErr.Status)
	assert.True(t, IsShutdown(NewShutdownError("integrity")))
	assert.False(t, IsShutdown(err))
}

func TestNoRoute(t *testing.T) {
	app := NewTestApp()
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Notification)
	assert.Equal(t, "error", string(body.Notification.Type))
}
