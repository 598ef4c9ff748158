package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/kindfood/erp-system/bomtable/domain"
	"github.com/kindfood/erp-system/bomtable/service"
	"github.com/kindfood/erp-system/bomtable/service/iface"
	"github.com/kindfood/erp-system/collection"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
)

const (
	imageFormField = "image"
	maxImageSize   = 10 << 20
)

var errImageTooLarge = errors.New("image exceeds 10MB")

type BOMTables struct {
	loggerProvider logger.Provider
	service        iface.BOMTablesService
}

func NewBOMTables(log logger.Provider, conn *connection.Connection, drafts *service.DraftStore) *BOMTables {
	return NewBOMTablesWithService(log, service.NewBOMTablesService(log, conn, drafts))
}

func NewBOMTablesWithService(log logger.Provider, s iface.BOMTablesService) *BOMTables {
	return &BOMTables{
		log,
		s,
	}
}

func (h *BOMTables) List(ctx *gin.Context) error {
	tables, err := h.service.List(ctx)

	return collection.RespondList(ctx, tables, err, notification.BOMFetchFailed, domain.BOMTable.Matches)
}

func (h *BOMTables) Get(ctx *gin.Context) error {
	id := ctx.Param("id")

	t, err := h.service.Get(ctx, id)
	if err != nil {
		return h.tableError(ctx, id, err, notification.BOMFetchFailed)
	}

	return web.Respond(ctx, t, http.StatusOK)
}

func (h *BOMTables) Create(ctx *gin.Context) error {
	req, image, err := bindTable(ctx)
	if err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	if image != nil {
		defer image.Close()
	}

	t, err := h.service.Create(ctx, req, image.domain(), common.CurrentUser(ctx))
	if err != nil {
		return h.tableError(ctx, "", err, notification.BOMCreateFailed)
	}

	return web.RespondWith(ctx, web.Reply{
		Data:     t,
		Toast:    notification.Success(notification.BOMCreateSuccess),
		Redirect: common.RouteBOMTables,
	}, http.StatusCreated)
}

// Update writes the submitted table wholesale. The body is JSON, or multipart with the
// table fields, an "items" JSON field and an optional "image" file.
func (h *BOMTables) Update(ctx *gin.Context) error {
	id := ctx.Param("id")

	req, image, err := bindTable(ctx)
	if err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	if image != nil {
		defer image.Close()
	}

	t, err := h.service.Update(ctx, id, req, image.domain(), common.CurrentUser(ctx))
	if err != nil {
		return h.tableError(ctx, id, err, notification.BOMUpdateFailed)
	}

	return updated(ctx, t)
}

// OpenDraft starts editing the :id table.
func (h *BOMTables) OpenDraft(ctx *gin.Context) error {
	id := ctx.Param("id")

	d, err := h.service.OpenDraft(ctx, ctx.GetString(common.CtxKeys.UID), id)
	if err != nil {
		return h.tableError(ctx, id, err, notification.BOMFetchFailed)
	}

	return web.Respond(ctx, d, http.StatusCreated)
}

func (h *BOMTables) GetDraft(ctx *gin.Context) error {
	d, err := h.service.GetDraft(ctx.GetString(common.CtxKeys.UID), ctx.Param("draftID"))
	if err != nil {
		return h.tableError(ctx, "", err, notification.BOMFetchFailed)
	}

	return web.Respond(ctx, d, http.StatusOK)
}

type headerRequest struct {
	TableName *string `json:"tableName"`
	Category  *string `json:"category"`
}

// EditHeader changes the table name or category of a draft.
func (h *BOMTables) EditHeader(ctx *gin.Context) error {
	var req headerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	return h.edit(ctx, domain.Edit{
		Op:        domain.OpSetHeader,
		TableName: req.TableName,
		Category:  req.Category,
	})
}

type setFieldRequest struct {
	Field domain.Field `json:"field" binding:"required"`
	Value interface{}  `json:"value"`
}

// SetField changes one field of the :index item.
func (h *BOMTables) SetField(ctx *gin.Context) error {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.BOMInvalidEdit))
	}

	var req setFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	return h.edit(ctx, domain.Edit{
		Op:    domain.OpSetField,
		Index: index,
		Field: req.Field,
		Value: req.Value,
	})
}

func (h *BOMTables) AddItem(ctx *gin.Context) error {
	return h.edit(ctx, domain.Edit{Op: domain.OpAddItem})
}

func (h *BOMTables) DeleteItem(ctx *gin.Context) error {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.BOMInvalidEdit))
	}

	return h.edit(ctx, domain.Edit{Op: domain.OpDeleteItem, Index: index})
}

func (h *BOMTables) edit(ctx *gin.Context, e domain.Edit) error {
	d, err := h.service.EditDraft(ctx.GetString(common.CtxKeys.UID), ctx.Param("draftID"), e)
	if err != nil {
		return h.tableError(ctx, "", err, notification.BOMInvalidEdit)
	}

	return web.Respond(ctx, d, http.StatusOK)
}

// SubmitDraft writes the draft, with an optional multipart "image". A failed submission
// keeps the draft.
func (h *BOMTables) SubmitDraft(ctx *gin.Context) error {
	image, err := formImage(ctx)
	if err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	if image != nil {
		defer image.Close()
	}

	uid := ctx.GetString(common.CtxKeys.UID)

	t, err := h.service.SubmitDraft(ctx, uid, ctx.Param("draftID"), image.domain(), common.CurrentUser(ctx))
	if err != nil {
		return h.tableError(ctx, "", err, notification.BOMUpdateFailed)
	}

	return updated(ctx, t)
}

func (h *BOMTables) DiscardDraft(ctx *gin.Context) error {
	h.service.DiscardDraft(ctx.GetString(common.CtxKeys.UID), ctx.Param("draftID"))

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func updated(ctx *gin.Context, t *domain.BOMTable) error {
	return web.RespondWith(ctx, web.Reply{
		Data:     t,
		Toast:    notification.Success(notification.BOMUpdateSuccess),
		Redirect: common.RouteBOMTables,
	}, http.StatusOK)
}

func (h *BOMTables) tableError(ctx *gin.Context, id string, err error, failure notification.Key) error {
	switch {
	case domain.IsNotFound(err):
		return web.NewNotifiedError(err, http.StatusNotFound, notification.Error(notification.BOMNotFound)).
			WithRedirect(common.RouteHome)
	case errors.Is(err, domain.ErrDraftNotFound):
		return web.NewNotifiedError(err, http.StatusNotFound, notification.Error(notification.DraftNotFound))
	case errors.Is(err, domain.ErrLastItem):
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.BOMLastItem))
	case errors.Is(err, domain.ErrInvalidEdit):
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.BOMInvalidEdit))
	case errors.Is(err, domain.ErrInvalidBOMTable):
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.RequestInvalid))
	}

	h.loggerProvider(ctx).Errorf("BOM table %s: %s", id, err)

	return web.NewNotifiedError(err, http.StatusInternalServerError, notification.Error(failure))
}

type uploadedImage struct {
	contentType string
	file        io.ReadCloser
}

func (i *uploadedImage) domain() *domain.Image {
	if i == nil {
		return nil
	}

	return &domain.Image{ContentType: i.contentType, Body: i.file}
}

func (i *uploadedImage) Close() {
	_ = i.file.Close()
}

func isMultipart(ctx *gin.Context) bool {
	return strings.HasPrefix(ctx.ContentType(), gin.MIMEMultipartPOSTForm)
}

func bindTable(ctx *gin.Context) (domain.TableRequest, *uploadedImage, error) {
	var req domain.TableRequest

	if !isMultipart(ctx) {
		err := ctx.ShouldBindJSON(&req)
		return req, nil, err
	}

	req.TableName = ctx.PostForm("tableName")
	req.Category = ctx.PostForm("category")
	req.ImageURL = ctx.PostForm("imageUrl")

	if items := ctx.PostForm("items"); items != "" {
		if err := json.Unmarshal([]byte(items), &req.Items); err != nil {
			return req, nil, fmt.Errorf("items: %w", err)
		}
	}

	image, err := formImage(ctx)

	return req, image, err
}

func formImage(ctx *gin.Context) (*uploadedImage, error) {
	if !isMultipart(ctx) {
		return nil, nil
	}

	fh, err := ctx.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if fh.Size > maxImageSize {
		return nil, errImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &uploadedImage{contentType, f}, nil
}
