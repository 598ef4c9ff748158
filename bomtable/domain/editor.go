package domain

import (
	"strings"

	"github.com/kindfood/erp-system/common"
)

// Field names an editable column of an item.
type Field string

const (
	FieldName             Field = "name"
	FieldQuantity         Field = "quantity"
	FieldUnitCost         Field = "unitCost"
	FieldIsShared         Field = "isShared"
	FieldSharedMaterialID Field = "sharedMaterialId"
)

// SharedOption is a shared material as offered to shared rows.
type SharedOption struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	UnitCost *float64 `json:"unitCost"`
}

// Editor applies row edits to an item list. It never mutates its input: every edit
// returns a new slice holding a new row.
type Editor struct {
	catalog []SharedOption
}

func NewEditor(catalog []SharedOption) *Editor {
	return &Editor{catalog: catalog}
}

// Catalog returns the shared materials the editor resolves against.
func (e *Editor) Catalog() []SharedOption {
	return e.catalog
}

func (e *Editor) byName(name string) (SharedOption, bool) {
	for _, o := range e.catalog {
		if o.Name == name {
			return o, true
		}
	}

	return SharedOption{}, false
}

func (e *Editor) byID(id string) (SharedOption, bool) {
	for _, o := range e.catalog {
		if o.ID == id {
			return o, true
		}
	}

	return SharedOption{}, false
}

// SetField replaces items[index] with a copy carrying the new value.
//
// Toggling isShared clears the name, unit cost and material link whatever they were.
// Choosing a material on a shared row, by name or by id, copies its unit cost as it is now.
func (e *Editor) SetField(items []Item, index int, field Field, value interface{}) ([]Item, error) {
	if index < 0 || index >= len(items) {
		return nil, ErrItemIndex
	}

	row := items[index]

	switch field {
	case FieldIsShared:
		shared, ok := value.(bool)
		if !ok {
			return nil, ErrInvalidValue
		}

		row.IsShared = shared
		row.Name = ""
		row.UnitCost = nil
		row.SharedMaterialID = ""
	case FieldName:
		name, ok := value.(string)
		if !ok {
			return nil, ErrInvalidValue
		}

		if !row.IsShared {
			row.Name = name
			break
		}

		o, ok := e.byName(name)
		if !ok {
			return nil, ErrUnknownMaterial
		}

		row = selectMaterial(row, o)
	case FieldSharedMaterialID:
		id, ok := value.(string)
		if !ok {
			return nil, ErrInvalidValue
		}

		if !row.IsShared {
			return nil, ErrNotShared
		}

		o, ok := e.byID(id)
		if !ok {
			return nil, ErrUnknownMaterial
		}

		row = selectMaterial(row, o)
	case FieldQuantity:
		n, err := common.ParseNumber(value)
		if err != nil {
			return nil, ErrInvalidValue
		}

		row.Quantity = n
	case FieldUnitCost:
		if row.IsShared {
			return nil, ErrReadOnlyField
		}

		n, err := common.ParseNumber(value)
		if err != nil {
			return nil, ErrInvalidValue
		}

		row.UnitCost = n
	default:
		return nil, ErrUnknownField
	}

	return replace(items, index, row), nil
}

func selectMaterial(row Item, o SharedOption) Item {
	row.Name = o.Name
	row.SharedMaterialID = o.ID
	row.UnitCost = nil

	if o.UnitCost != nil {
		row.UnitCost = common.Ptr(*o.UnitCost)
	}

	return row
}

// ResolveNames refreshes the names of shared rows from the catalog by material id, so
// renamed materials do not orphan rows. Unit costs stay as copied.
// Rows without an id are linked by name when the name is known.
func (e *Editor) ResolveNames(items []Item) []Item {
	res := make([]Item, len(items))

	for i, it := range items {
		switch {
		case !it.IsShared:
		case it.SharedMaterialID != "":
			if o, ok := e.byID(it.SharedMaterialID); ok {
				it.Name = o.Name
			}
		default:
			if o, ok := e.byName(strings.TrimSpace(it.Name)); ok {
				it.SharedMaterialID = o.ID
			}
		}

		res[i] = it
	}

	return res
}

func replace(items []Item, index int, row Item) []Item {
	res := make([]Item, len(items))
	copy(res, items)
	res[index] = row

	return res
}

// AddItem appends an empty, non shared row.
func AddItem(items []Item) []Item {
	res := make([]Item, len(items), len(items)+1)
	copy(res, items)

	return append(res, Item{})
}

// DeleteItem removes items[index]. The last remaining row cannot be removed.
func DeleteItem(items []Item, index int) ([]Item, error) {
	if index < 0 || index >= len(items) {
		return nil, ErrItemIndex
	}

	if len(items) == 1 {
		return nil, ErrLastItem
	}

	res := make([]Item, 0, len(items)-1)
	res = append(res, items[:index]...)

	return append(res, items[index+1:]...), nil
}

// TotalCost is the sum of the line totals, recomputed from the items on every call.
func TotalCost(items []Item) float64 {
	var total float64

	for _, it := range items {
		total += it.LineTotal()
	}

	return total
}
