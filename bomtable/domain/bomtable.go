package domain

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/slice"
	"github.com/kindfood/erp-system/times"
)

// Item is one line of a BOM table. Quantity and UnitCost are empty (nil) until entered.
// Shared items copy the unit cost of the material at selection time and keep the
// material id next to its name.
type Item struct {
	Name             string   `json:"name"`
	Quantity         *float64 `json:"quantity" validate:"omitempty,gte=0"`
	UnitCost         *float64 `json:"unitCost" validate:"omitempty,gte=0"`
	IsShared         bool     `json:"isShared"`
	SharedMaterialID string   `json:"sharedMaterialId,omitempty"`
}

// LineTotal is quantity × unit cost, empty values counting as zero.
func (it Item) LineTotal() float64 {
	return common.Float(it.Quantity) * common.Float(it.UnitCost)
}

// UnmarshalJSON accepts quantity and unitCost as numbers or numeric strings, the way
// older editors sent them. Blank strings are empty.
func (it *Item) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name             string      `json:"name"`
		Quantity         interface{} `json:"quantity"`
		UnitCost         interface{} `json:"unitCost"`
		IsShared         bool        `json:"isShared"`
		SharedMaterialID string      `json:"sharedMaterialId"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	quantity, err := common.ParseNumber(raw.Quantity)
	if err != nil {
		return err
	}

	unitCost, err := common.ParseNumber(raw.UnitCost)
	if err != nil {
		return err
	}

	*it = Item{
		Name:             raw.Name,
		Quantity:         quantity,
		UnitCost:         unitCost,
		IsShared:         raw.IsShared,
		SharedMaterialID: raw.SharedMaterialID,
	}

	return nil
}

// Data is the stored form of the item.
func (it Item) Data() map[string]interface{} {
	return map[string]interface{}{
		"name":             it.Name,
		"quantity":         it.Quantity,
		"unitCost":         it.UnitCost,
		"isShared":         it.IsShared,
		"sharedMaterialId": it.SharedMaterialID,
	}
}

// ItemFromData reads a stored item. Items written by older clients hold numbers as strings.
func ItemFromData(data map[string]interface{}) Item {
	it := Item{
		Quantity: common.Number(data["quantity"]),
		UnitCost: common.Number(data["unitCost"]),
	}

	it.Name, _ = data["name"].(string)
	it.IsShared, _ = data["isShared"].(bool)
	it.SharedMaterialID, _ = data["sharedMaterialId"].(string)

	return it
}

type BOMTable struct {
	ID            string          `json:"id"`
	TableName     string          `json:"tableName"`
	Items         []Item          `json:"items"`
	TotalCost     float64         `json:"totalCost"`
	Category      string          `json:"category"`
	ImageURL      string          `json:"imageUrl"`
	CreatedBy     *common.UserRef `json:"createdBy,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedBy     *common.UserRef `json:"updatedBy,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
	CreatedAtText string          `json:"createdAtText"`
	UpdatedAtText string          `json:"updatedAtText"`
}

// FromData builds a BOMTable from a stored document.
func FromData(id string, data map[string]interface{}) BOMTable {
	t := BOMTable{
		ID:    id,
		Items: []Item{},
	}

	t.TableName, _ = data["tableName"].(string)
	t.Category, _ = data["category"].(string)
	t.ImageURL, _ = data["imageUrl"].(string)

	if items, ok := data["items"].([]interface{}); ok {
		for _, v := range items {
			if m, ok := v.(map[string]interface{}); ok {
				t.Items = append(t.Items, ItemFromData(m))
			}
		}
	}

	t.TotalCost = TotalCost(t.Items)

	if v, ok := data["createdAt"].(time.Time); ok {
		t.CreatedAt = v
	}

	if v, ok := data["updatedAt"].(time.Time); ok {
		t.UpdatedAt = &v
	}

	t.CreatedBy = userRefFromData(data["createdBy"])
	t.UpdatedBy = userRefFromData(data["updatedBy"])

	t.CreatedAtText = times.FormatTaipei(t.CreatedAt)
	t.UpdatedAtText = times.NotAvailable

	if t.UpdatedAt != nil {
		t.UpdatedAtText = times.FormatTaipei(*t.UpdatedAt)
	}

	return t
}

func userRefFromData(v interface{}) *common.UserRef {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}

	var u common.UserRef

	u.UID, _ = m["uid"].(string)
	u.DisplayName, _ = m["displayName"].(string)
	u.Email, _ = m["email"].(string)

	return &u
}

// Matches is the list search over the table name and category.
func (t BOMTable) Matches(search string) bool {
	return slice.ContainsFold(search, t.TableName, t.Category)
}

// ItemsData is the stored form of items.
func ItemsData(items []Item) []map[string]interface{} {
	res := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		res = append(res, it.Data())
	}

	return res
}
