package collection

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
	"github.com/kindfood/erp-system/slice"
)

// TotalCountHeader carries the number of items matching the search, before pagination.
const TotalCountHeader = "X-Total-Count"

// Query is the client side search and pagination applied over a fetched collection.
type Query struct {
	Search  string
	Page    int
	PerPage int
}

// ParseQuery reads ?search=&page=&perPage=. Missing or malformed numbers mean "everything".
func ParseQuery(ctx *gin.Context) Query {
	page, _ := strconv.Atoi(ctx.Query("page"))
	perPage, _ := strconv.Atoi(ctx.Query("perPage"))

	return Query{
		Search:  ctx.Query("search"),
		Page:    page,
		PerPage: perPage,
	}
}

// Apply filters items by the search term and returns the requested page plus the filtered total.
func Apply[T any](items []T, q Query, match func(item T, search string) bool) ([]T, int) {
	if q.Search != "" && match != nil {
		items = slice.Filter(items, func(item T) bool {
			return match(item, q.Search)
		})
	}

	return slice.Paginate(items, q.Page, q.PerPage), len(items)
}

// RespondList answers a list request. A fetch failure is logged and answered with an
// empty list and the error toast, never with an error status.
func RespondList[T any](ctx *gin.Context, items []T, err error, failure notification.Key, match func(item T, search string) bool) error {
	if err != nil {
		logger.FromContext(ctx).Errorf("list %s: %s", ctx.FullPath(), err)

		return web.RespondWith(ctx, web.Reply{
			Data:  []T{},
			Toast: notification.Error(failure),
		}, http.StatusOK)
	}

	page, total := Apply(items, ParseQuery(ctx), match)

	ctx.Header(TotalCountHeader, strconv.Itoa(total))

	return web.RespondWith(ctx, web.Reply{Data: page}, http.StatusOK)
}
