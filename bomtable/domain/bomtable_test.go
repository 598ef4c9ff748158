package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindfood/erp-system/common"
)

func TestFromData(t *testing.T) {
	updated := time.Date(2024, 6, 1, 4, 0, 0, 0, time.UTC)

	table := FromData("t1", map[string]interface{}{
		"tableName": "紅豆麵包",
		"category":  "麵包",
		"totalCost": 1.0,
		"items": []interface{}{
			map[string]interface{}{"name": "麵粉", "quantity": "2", "unitCost": "25.00", "isShared": true},
			map[string]interface{}{"name": "水", "quantity": int64(1), "unitCost": ""},
		},
		"updatedAt": updated,
		"updatedBy": map[string]interface{}{"uid": "u1", "displayName": "Amy", "email": "amy@kindfood.tw"},
	})

	require.Len(t, table.Items, 2)
	assert.Equal(t, common.Ptr(2), table.Items[0].Quantity)
	assert.True(t, table.Items[0].IsShared)
	assert.Nil(t, table.Items[1].UnitCost)
	assert.Equal(t, 50.0, table.TotalCost)
	assert.Equal(t, &common.UserRef{UID: "u1", DisplayName: "Amy", Email: "amy@kindfood.tw"}, table.UpdatedBy)
	assert.Nil(t, table.CreatedBy)
	assert.Equal(t, "2024/6/1 下午12:00:00", table.UpdatedAtText)
	assert.Equal(t, "-", table.CreatedAtText)
}

func TestFromDataWithoutItems(t *testing.T) {
	table := FromData("t1", map[string]interface{}{"tableName": "空"})

	assert.NotNil(t, table.Items)
	assert.Empty(t, table.Items)
}

func TestItemDataRoundTrip(t *testing.T) {
	it := Item{Name: "麵粉", Quantity: common.Ptr(2), IsShared: true, SharedMaterialID: "m1"}

	assert.Equal(t, it, ItemFromData(it.Data()))
}

func TestTableRequest_Validate(t *testing.T) {
	v := validator.New()

	ok := TableRequest{TableName: " 吐司 ", Items: []Item{{Name: "麵粉", Quantity: common.Ptr(2), UnitCost: common.Ptr(3)}}}
	require.NoError(t, ok.Validate(v))
	assert.Equal(t, "吐司", ok.TableName)
	assert.Equal(t, 6.0, ok.Table().TotalCost)

	bad := TableRequest{TableName: " ", Items: []Item{}}
	err := bad.Validate(v)
	assert.ErrorIs(t, err, ErrInvalidBOMTable)

	negative := TableRequest{TableName: "x", Items: []Item{{Quantity: common.Ptr(-1)}}}
	assert.ErrorIs(t, negative.Validate(v), ErrInvalidBOMTable)
}

func TestBOMTable_Matches(t *testing.T) {
	table := BOMTable{TableName: "Red Bean Bun", Category: "麵包"}

	assert.True(t, table.Matches("bean"))
	assert.True(t, table.Matches("麵包"))
	assert.False(t, table.Matches("sauce"))
}

func TestItem_UnmarshalJSON(t *testing.T) {
	var items []Item

	require.NoError(t, json.Unmarshal([]byte(`[
		{"name":"麵粉","quantity":"2","unitCost":25,"isShared":true,"sharedMaterialId":"m1"},
		{"name":"水","quantity":"","unitCost":null}
	]`), &items))

	assert.Equal(t, []Item{
		{Name: "麵粉", Quantity: common.Ptr(2), UnitCost: common.Ptr(25), IsShared: true, SharedMaterialID: "m1"},
		{Name: "水"},
	}, items)

	var bad Item
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"quantity":"two"}`), &bad), common.ErrNotANumber)
}
