package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/internal"
	"github.com/kindfood/erp-system/notification"
)

// Reply is the envelope of every response that concludes a user action.
type Reply struct {
	Data     interface{}
	Toast    *notification.Toast
	Redirect string
}

type envelope struct {
	Data         interface{}            `json:"data"`
	Notification *notification.Rendered `json:"notification,omitempty"`
	Redirect     string                 `json:"redirect,omitempty"`
}

// Respond converts a Go value to JSON and sends it to the client with the corresponded status code.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	v, ok := internal.DataFromContext(ctx)
	if ok {
		v.StatusCode = statusCode
	}

	// If there is nothing to marshal then set status code and return.
	if data == nil || statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		return nil
	}

	ctx.JSON(statusCode, data)

	return nil
}

// RespondWith sends the reply envelope, rendering the toast in the caller's language.
func RespondWith(ctx *gin.Context, reply Reply, statusCode int) error {
	p := notification.PrinterForRequest(ctx.Request)

	return Respond(ctx, envelope{
		Data:         reply.Data,
		Notification: reply.Toast.Render(p),
		Redirect:     reply.Redirect,
	}, statusCode)
}

// RespondError sends an error response back to the client.
func RespondError(ctx *gin.Context, err error) error {
	p := notification.PrinterForRequest(ctx.Request)

	var webErr *Error
	if errors.As(err, &webErr) {
		errResponse := ErrorResponse{
			Error:        webErr.Err.Error(),
			Notification: webErr.Toast.Render(p),
			Redirect:     webErr.Redirect,
		}

		return Respond(ctx, errResponse, webErr.Status)
	}

	errResponse := ErrorResponse{
		Error:        http.StatusText(http.StatusInternalServerError),
		Notification: notification.Error(notification.InternalError).Render(p),
	}

	return Respond(ctx, errResponse, http.StatusInternalServerError)
}
