package logger

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ILogger is the request-scoped logger handlers and services write to. Entries share the
// request trace and the labels set on it.
//
//go:generate mockery --name ILogger --output ./mocks
type ILogger interface {
	Trace() string
	SetLabel(key, value string)
	SetLabels(labels map[string]string)
	End(ctx *gin.Context)
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Printf(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// Provider resolves the logger of the request carried by ctx.
type Provider func(ctx context.Context) ILogger
