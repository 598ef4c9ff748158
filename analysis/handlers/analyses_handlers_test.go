package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/assert"

	"github.com/kindfood/erp-system/analysis/dal/mocks"
	"github.com/kindfood/erp-system/analysis/domain"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/mid"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
)

type response struct {
	Data         json.RawMessage `json:"data"`
	Notification *struct {
		Message string `json:"message"`
	} `json:"notification"`
	Redirect string `json:"redirect"`
}

func newAnalysesApp(d *mocks.Analyses) *web.App {
	h := NewAnalysesWithDal(logger.FromContext, d)

	setUser := func(next web.Handler) web.Handler {
		return func(ctx *gin.Context) error {
			ctx.Set(common.CtxKeys.UID, "u1")

			return next(ctx)
		}
	}

	app := web.NewTestApp(mid.Errors(), setUser)
	app.Get("/analyses", h.List)
	app.Post("/analyses", h.Save)

	return app
}

func do(app *web.App, method, target string, body interface{}) (*httptest.ResponseRecorder, response) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	var res response
	_ = json.Unmarshal(rec.Body.Bytes(), &res)

	return rec, res
}

func TestAnalyses_List(t *testing.T) {
	d := mocks.NewAnalyses(t)
	d.On("List", mock.Anything).Return(nil, errors.New("unavailable"))

	rec, res := do(newAnalysesApp(d), http.MethodGet, "/analyses", nil)
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Equal(t, string(res.Data), "[]")
	require.NotNil(t, res.Notification)
	assert.Equal(t, res.Notification.Message, "獲取數據時出錯")
}

func TestAnalyses_Save(t *testing.T) {
	by := common.UserRef{UID: "u1", DisplayName: common.UnknownDisplayName}

	tests := []struct {
		name        string
		body        interface{}
		on          func(*mocks.Analyses)
		wantCode    int
		wantMessage string
	}{
		{
			name: "saved",
			body: map[string]interface{}{"fileName": "orders.xlsx", "stats": map[string]interface{}{"totalOrders": 12, "orderCostRate": 0.31}},
			on: func(d *mocks.Analyses) {
				d.On("Create", mock.Anything, mock.MatchedBy(func(r domain.AnalysisRequest) bool {
					return r.FileName == "orders.xlsx" && *r.Stats.TotalOrders == 12
				}), by).Return(&domain.Analysis{ID: "a1", FileName: "orders.xlsx"}, nil)
			},
			wantCode:    http.StatusCreated,
			wantMessage: "數據已成功保存",
		},
		{
			name:        "missing stats",
			body:        map[string]interface{}{"fileName": "orders.xlsx"},
			on:          func(d *mocks.Analyses) {},
			wantCode:    http.StatusBadRequest,
			wantMessage: "請求格式錯誤",
		},
		{
			name: "store failure",
			body: map[string]interface{}{"fileName": "orders.xlsx", "stats": map[string]interface{}{"totalOrders": 1, "orderCostRate": 0.5}},
			on: func(d *mocks.Analyses) {
				d.On("Create", mock.Anything, mock.Anything, by).Return(nil, errors.New("unavailable"))
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "保存數據時出錯",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mocks.NewAnalyses(t)
			tt.on(d)

			rec, res := do(newAnalysesApp(d), http.MethodPost, "/analyses", tt.body)
			assert.Equal(t, rec.Code, tt.wantCode)
			require.NotNil(t, res.Notification)
			assert.Equal(t, res.Notification.Message, tt.wantMessage)
		})
	}
}
