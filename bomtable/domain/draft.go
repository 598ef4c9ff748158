package domain

import (
	"errors"
	"io"
	"time"

	category "github.com/kindfood/erp-system/category/domain"
)

var ErrDraftNotFound = errors.New("draft not found or expired")

// Draft is a BOM table being edited. It holds the shared catalog and categories loaded
// when it was opened; items change only through Apply.
type Draft struct {
	ID         string              `json:"id"`
	TableID    string              `json:"tableId"`
	TableName  string              `json:"tableName"`
	Category   string              `json:"category"`
	ImageURL   string              `json:"imageUrl"`
	Items      []Item              `json:"items"`
	TotalCost  float64             `json:"totalCost"`
	Materials  []SharedOption      `json:"materials"`
	Categories []category.Category `json:"categories"`
	ExpiresAt  time.Time           `json:"expiresAt"`
}

type EditOp string

const (
	OpSetField   EditOp = "set"
	OpAddItem    EditOp = "add"
	OpDeleteItem EditOp = "delete"
	OpSetHeader  EditOp = "header"
)

// Edit is one change to a draft.
type Edit struct {
	Op    EditOp      `json:"op"`
	Index int         `json:"index"`
	Field Field       `json:"field"`
	Value interface{} `json:"value"`

	TableName *string `json:"tableName"`
	Category  *string `json:"category"`
}

// NewDraft starts editing table with the given catalog. Shared rows are re-linked to
// the catalog by material id.
func NewDraft(table BOMTable, materials []SharedOption, categories []category.Category) Draft {
	d := Draft{
		TableID:    table.ID,
		TableName:  table.TableName,
		Category:   table.Category,
		ImageURL:   table.ImageURL,
		Items:      NewEditor(materials).ResolveNames(table.Items),
		Materials:  materials,
		Categories: categories,
	}

	d.TotalCost = TotalCost(d.Items)

	return d
}

// Apply returns the draft with e applied. d is left untouched.
func (d Draft) Apply(e Edit) (Draft, error) {
	var (
		items = d.Items
		err   error
	)

	switch e.Op {
	case OpSetField:
		items, err = NewEditor(d.Materials).SetField(d.Items, e.Index, e.Field, e.Value)
	case OpAddItem:
		items = AddItem(d.Items)
	case OpDeleteItem:
		items, err = DeleteItem(d.Items, e.Index)
	case OpSetHeader:
		if e.TableName != nil {
			d.TableName = *e.TableName
		}

		if e.Category != nil {
			d.Category = *e.Category
		}
	default:
		err = ErrUnknownField
	}

	if err != nil {
		return d, err
	}

	d.Items = items
	d.TotalCost = TotalCost(items)

	return d, nil
}

// Request is the submission of the draft.
func (d Draft) Request() TableRequest {
	return TableRequest{
		TableName: d.TableName,
		Items:     d.Items,
		Category:  d.Category,
		ImageURL:  d.ImageURL,
	}
}

// Image is an uploaded table picture.
type Image struct {
	ContentType string
	Body        io.Reader
}
