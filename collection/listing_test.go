package collection

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/notification"
)

type row struct {
	Name string `json:"name"`
}

func matchRow(r row, search string) bool {
	return strings.Contains(r.Name, search)
}

func serveList(t *testing.T, target string, items []row, fetchErr error) (*httptest.ResponseRecorder, map[string]interface{}) {
	app := web.NewTestApp()
	app.Get("/api/rows", func(ctx *gin.Context) error {
		return RespondList(ctx, items, fetchErr, notification.MaterialFetchFailed, matchRow)
	})

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return w, body
}

func TestRespondList(t *testing.T) {
	items := []row{{"糖"}, {"黑糖"}, {"鹽"}, {"砂糖"}}

	w, body := serveList(t, "/api/rows?search="+url.QueryEscape("糖")+"&page=2&perPage=2", items, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", w.Header().Get(TotalCountHeader))
	assert.Equal(t, []interface{}{map[string]interface{}{"name": "砂糖"}}, body["data"])
	assert.Nil(t, body["notification"])
}

func TestRespondListFetchFailure(t *testing.T) {
	w, body := serveList(t, "/api/rows", nil, errors.New("unavailable"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, body["data"])
	assert.Equal(t, map[string]interface{}{"type": "error", "message": "獲取共用料時發生錯誤"}, body["notification"])
}

func TestParseQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/rows?search=a&page=x&perPage=10", nil)

	assert.Equal(t, Query{Search: "a", Page: 0, PerPage: 10}, ParseQuery(ctx))
}
