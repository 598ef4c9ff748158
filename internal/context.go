package internal

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CtxDataKey is the gin key the per-request Data is stored under.
const CtxDataKey = "app-context"

// Data is the per-request state shared by the middlewares.
type Data struct {
	TraceID    string
	Route      string
	StatusCode int
	Now        time.Time
}

// Elapsed is the time spent on the request so far.
func (d *Data) Elapsed() time.Duration {
	return time.Since(d.Now)
}

func ContextWithData(ctx *gin.Context, data *Data) {
	ctx.Set(CtxDataKey, data)
}

func DataFromContext(ctx *gin.Context) (*Data, bool) {
	v, ok := ctx.Value(CtxDataKey).(*Data)
	return v, ok
}
