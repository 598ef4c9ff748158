package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(header string) *gin.Context {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/api/bom-tables", nil)
	if header != "" {
		req.Header.Set("X-Cloud-Trace-Context", header)
	}

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = req

	return ctx
}

func TestLoggingDoesNotThrowErrorWhenNoHeader(t *testing.T) {
	ctx := newTestContext("")

	l, err := NewLogger(ctx)
	require.NoError(t, err)

	l.Infof("hello %s", "world")
	l.Errorf("testing... %d", 1)
	l.End(ctx)

	assert.NotEmpty(t, l.Trace())
	assert.Equal(t, l, FromContext(ctx))
}

func TestLoggingUsesTraceHeader(t *testing.T) {
	ctx := newTestContext("test987/uselessSuffix?")

	l, err := NewLogger(ctx)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(l.Trace(), "test987"))
}

func TestLoggingIgnoresZeroTraceHeader(t *testing.T) {
	ctx := newTestContext("0000/suffix")

	l, err := NewLogger(ctx)
	require.NoError(t, err)

	assert.False(t, strings.HasSuffix(l.Trace(), "0000"))
}

func TestFromContextWithoutLogger(t *testing.T) {
	l := FromContext(context.Background())

	assert.NotNil(t, l)

	l.SetLabels(map[string]string{"uid": "u1", "email": "a@b.c"})
	l.Warningf("fallback logger %s", "works")
}
