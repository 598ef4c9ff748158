package mid

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/notification"
)

var reservedDocID = regexp.MustCompile(`^__.*__$`)

// docIDError reports why id cannot name a Firestore document, or nil when it can.
func docIDError(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return fmt.Errorf("document id cannot be empty")
	case strings.Contains(id, "/"):
		return fmt.Errorf("document id %q contains a slash", id)
	case id == "." || id == "..":
		return fmt.Errorf("document id %q is reserved", id)
	case reservedDocID.MatchString(id):
		return fmt.Errorf("document id %q matches __.*__", id)
	case len(id) > 1500:
		return fmt.Errorf("document id is longer than 1500 bytes")
	}

	return nil
}

// ValidateDocID rejects requests whose path parameter cannot be used as a document id,
// before any handler reaches Firestore with it.
func ValidateDocID(paramName string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if err := docIDError(ctx.Param(paramName)); err != nil {
				return web.NewNotifiedError(
					fmt.Errorf("%s: %w", paramName, err),
					http.StatusBadRequest,
					notification.Error(notification.RequestInvalid),
				)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
