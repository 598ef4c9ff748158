package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	category "github.com/kindfood/erp-system/category/domain"
	"github.com/kindfood/erp-system/common"
)

func TestDraft_Apply(t *testing.T) {
	table := BOMTable{
		ID:        "t1",
		TableName: "吐司",
		Items: []Item{
			{IsShared: true, Name: "舊名", SharedMaterialID: "m-flour", Quantity: common.Ptr(2), UnitCost: common.Ptr(20)},
		},
	}

	d := NewDraft(table, catalog, []category.Category{{ID: "c1", Name: "麵包"}})
	assert.Equal(t, "麵粉", d.Items[0].Name)
	assert.Equal(t, 40.0, d.TotalCost)

	added, err := d.Apply(Edit{Op: OpAddItem})
	require.NoError(t, err)
	require.Len(t, added.Items, 2)
	assert.Len(t, d.Items, 1)

	set, err := added.Apply(Edit{Op: OpSetField, Index: 1, Field: FieldQuantity, Value: 3.0})
	require.NoError(t, err)
	set, err = set.Apply(Edit{Op: OpSetField, Index: 1, Field: FieldUnitCost, Value: "5"})
	require.NoError(t, err)
	assert.Equal(t, 55.0, set.TotalCost)

	name := "全麥吐司"
	header, err := set.Apply(Edit{Op: OpSetHeader, TableName: &name})
	require.NoError(t, err)
	assert.Equal(t, "全麥吐司", header.Request().TableName)

	deleted, err := header.Apply(Edit{Op: OpDeleteItem, Index: 0})
	require.NoError(t, err)
	assert.Equal(t, 15.0, deleted.TotalCost)

	_, err = deleted.Apply(Edit{Op: OpDeleteItem, Index: 0})
	assert.ErrorIs(t, err, ErrLastItem)

	_, err = deleted.Apply(Edit{Op: "rename"})
	assert.ErrorIs(t, err, ErrInvalidEdit)
}
