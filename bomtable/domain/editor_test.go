package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindfood/erp-system/common"
)

var catalog = []SharedOption{
	{ID: "m-flour", Name: "麵粉", UnitCost: common.Ptr(25)},
	{ID: "m-sugar", Name: "糖", UnitCost: common.Ptr(30)},
}

func TestTotalCost(t *testing.T) {
	items := []Item{
		{Name: "a", Quantity: common.Ptr(2), UnitCost: common.Ptr(10)},
		{Name: "b", Quantity: common.Ptr(3), UnitCost: nil},
		{Name: "c", Quantity: nil, UnitCost: common.Ptr(5)},
		{Name: "d", Quantity: common.Ptr(1.5), UnitCost: common.Ptr(4)},
	}

	assert.Equal(t, 26.0, TotalCost(items))
	assert.Equal(t, 0.0, TotalCost(nil))
}

func TestEditor_ToggleSharedClears(t *testing.T) {
	e := NewEditor(catalog)

	for _, shared := range []bool{true, false} {
		items := []Item{{Name: "x", Quantity: common.Ptr(2), UnitCost: common.Ptr(9), IsShared: !shared, SharedMaterialID: "m-flour"}}

		got, err := e.SetField(items, 0, FieldIsShared, shared)
		require.NoError(t, err)

		assert.Equal(t, Item{Quantity: common.Ptr(2), IsShared: shared}, got[0])
		assert.Equal(t, "x", items[0].Name, "input must not be mutated")
	}
}

func TestEditor_SelectSharedMaterialCopiesCost(t *testing.T) {
	e := NewEditor(catalog)
	items := []Item{{IsShared: true, Quantity: common.Ptr(2)}}

	got, err := e.SetField(items, 0, FieldName, "糖")
	require.NoError(t, err)
	assert.Equal(t, "m-sugar", got[0].SharedMaterialID)
	assert.Equal(t, common.Ptr(30), got[0].UnitCost)

	got, err = e.SetField(got, 0, FieldSharedMaterialID, "m-flour")
	require.NoError(t, err)
	assert.Equal(t, "麵粉", got[0].Name)
	assert.Equal(t, common.Ptr(25), got[0].UnitCost)

	// the copy is a snapshot
	*catalog[1].UnitCost = 99
	defer func() { *catalog[1].UnitCost = 30 }()

	assert.Equal(t, common.Ptr(25), got[0].UnitCost)

	_, err = e.SetField(items, 0, FieldName, "鹽")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
	assert.ErrorIs(t, err, ErrInvalidEdit)
}

func TestEditor_SetFieldErrors(t *testing.T) {
	e := NewEditor(catalog)
	plain := []Item{{Name: "水"}}
	shared := []Item{{IsShared: true, Name: "麵粉", SharedMaterialID: "m-flour"}}

	tests := []struct {
		name  string
		items []Item
		index int
		field Field
		value interface{}
		want  error
	}{
		{"index out of range", plain, 1, FieldName, "x", ErrItemIndex},
		{"negative index", plain, -1, FieldName, "x", ErrItemIndex},
		{"unknown field", plain, 0, Field("price"), "x", ErrUnknownField},
		{"non bool toggle", plain, 0, FieldIsShared, "yes", ErrInvalidValue},
		{"non numeric quantity", plain, 0, FieldQuantity, "lots", ErrInvalidValue},
		{"shared unit cost is read only", shared, 0, FieldUnitCost, 3.0, ErrReadOnlyField},
		{"material id on plain row", plain, 0, FieldSharedMaterialID, "m-flour", ErrNotShared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.SetField(tt.items, tt.index, tt.field, tt.value)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEditor_NumericFields(t *testing.T) {
	e := NewEditor(nil)
	items := []Item{{Name: "水"}}

	got, err := e.SetField(items, 0, FieldQuantity, "3")
	require.NoError(t, err)
	got, err = e.SetField(got, 0, FieldUnitCost, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 7.5, TotalCost(got))

	got, err = e.SetField(got, 0, FieldQuantity, "")
	require.NoError(t, err)
	assert.Nil(t, got[0].Quantity)
	assert.Equal(t, 0.0, TotalCost(got))
}

func TestAddAndDeleteItem(t *testing.T) {
	items := []Item{{Name: "a"}}

	_, err := DeleteItem(items, 0)
	assert.ErrorIs(t, err, ErrLastItem)

	two := AddItem(items)
	require.Len(t, two, 2)
	assert.Len(t, items, 1)
	assert.Equal(t, Item{}, two[1])

	one, err := DeleteItem(two, 0)
	require.NoError(t, err)
	assert.Equal(t, []Item{{}}, one)
	assert.Equal(t, "a", two[0].Name)

	_, err = DeleteItem(two, 5)
	assert.ErrorIs(t, err, ErrItemIndex)
}

func TestEditor_ResolveNames(t *testing.T) {
	e := NewEditor([]SharedOption{{ID: "m-flour", Name: "高筋麵粉", UnitCost: common.Ptr(40)}})

	items := []Item{
		{IsShared: true, Name: "麵粉", SharedMaterialID: "m-flour", UnitCost: common.Ptr(25)},
		{IsShared: true, Name: "高筋麵粉", UnitCost: common.Ptr(25)},
		{IsShared: true, Name: "gone", SharedMaterialID: "m-gone"},
		{Name: "高筋麵粉"},
	}

	got := e.ResolveNames(items)

	assert.Equal(t, "高筋麵粉", got[0].Name)
	assert.Equal(t, common.Ptr(25), got[0].UnitCost)
	assert.Equal(t, "m-flour", got[1].SharedMaterialID)
	assert.Equal(t, "gone", got[2].Name)
	assert.Equal(t, "", got[3].SharedMaterialID)
	assert.Equal(t, "麵粉", items[0].Name)
}
