package domain

import (
	"time"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/slice"
	"github.com/kindfood/erp-system/times"
)

// PricedItem is the pricing of one BOM table. Every pricing field may be empty (nil).
type PricedItem struct {
	ID                     string   `json:"id"`
	TableName              string   `json:"tableName"`
	Category               string   `json:"category"`
	TotalCost              *float64 `json:"totalCost"`
	DealerPrice            *float64 `json:"dealerPrice"`
	SpecialPrice           *float64 `json:"specialPrice"`
	BottomPrice            *float64 `json:"bottomPrice"`
	DealerMargin           *float64 `json:"dealerMargin"`
	SpecialMargin          *float64 `json:"specialMargin"`
	BottomMargin           *float64 `json:"bottomMargin"`
	LogisticsCostRate      *float64 `json:"logisticsCostRate"`
	TotalCostWithLogistics *float64 `json:"totalCostWithLogistics"`
}

// pricingFields lists the fields a scheme carries over on apply.
func (p *PricedItem) pricingFields() []**float64 {
	return []**float64{
		&p.DealerPrice,
		&p.SpecialPrice,
		&p.BottomPrice,
		&p.DealerMargin,
		&p.SpecialMargin,
		&p.BottomMargin,
		&p.LogisticsCostRate,
		&p.TotalCostWithLogistics,
	}
}

// WithEmptyDefaults returns p with every missing or zero pricing field set to empty.
func (p PricedItem) WithEmptyDefaults() PricedItem {
	for _, f := range p.pricingFields() {
		if !common.Truthy(*f) {
			*f = nil
		}
	}

	return p
}

// Data is the stored form of the item.
func (p PricedItem) Data() map[string]interface{} {
	return map[string]interface{}{
		"id":                     p.ID,
		"tableName":              p.TableName,
		"category":               p.Category,
		"totalCost":              p.TotalCost,
		"dealerPrice":            p.DealerPrice,
		"specialPrice":           p.SpecialPrice,
		"bottomPrice":            p.BottomPrice,
		"dealerMargin":           p.DealerMargin,
		"specialMargin":          p.SpecialMargin,
		"bottomMargin":           p.BottomMargin,
		"logisticsCostRate":      p.LogisticsCostRate,
		"totalCostWithLogistics": p.TotalCostWithLogistics,
	}
}

// PricedItemFromData reads a stored item. Prices saved by the spreadsheet page are
// often strings, and "" means empty.
func PricedItemFromData(data map[string]interface{}) PricedItem {
	p := PricedItem{
		TotalCost:              common.Number(data["totalCost"]),
		DealerPrice:            common.Number(data["dealerPrice"]),
		SpecialPrice:           common.Number(data["specialPrice"]),
		BottomPrice:            common.Number(data["bottomPrice"]),
		DealerMargin:           common.Number(data["dealerMargin"]),
		SpecialMargin:          common.Number(data["specialMargin"]),
		BottomMargin:           common.Number(data["bottomMargin"]),
		LogisticsCostRate:      common.Number(data["logisticsCostRate"]),
		TotalCostWithLogistics: common.Number(data["totalCostWithLogistics"]),
	}

	p.ID, _ = data["id"].(string)
	p.TableName, _ = data["tableName"].(string)
	p.Category, _ = data["category"].(string)

	return p
}

// Scheme is a saved pricing of the BOM tables.
type Scheme struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Note          string          `json:"note"`
	PricingData   []PricedItem    `json:"pricingData"`
	CreatedBy     *common.UserRef `json:"createdBy,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
	CreatedAtText string          `json:"createdAtText"`
}

func SchemeFromData(id string, data map[string]interface{}) Scheme {
	s := Scheme{
		ID:          id,
		PricingData: []PricedItem{},
	}

	s.Name, _ = data["name"].(string)
	s.Note, _ = data["note"].(string)

	if items, ok := data["pricingData"].([]interface{}); ok {
		for _, v := range items {
			if m, ok := v.(map[string]interface{}); ok {
				s.PricingData = append(s.PricingData, PricedItemFromData(m))
			}
		}
	}

	if v, ok := data["createdAt"].(time.Time); ok {
		s.CreatedAt = v
	}

	if v, ok := data["updatedAt"].(time.Time); ok {
		s.UpdatedAt = &v
	}

	if by, ok := data["createdBy"].(map[string]interface{}); ok {
		s.CreatedBy = &common.UserRef{}
		s.CreatedBy.UID, _ = by["uid"].(string)
		s.CreatedBy.DisplayName, _ = by["displayName"].(string)
		s.CreatedBy.Email, _ = by["email"].(string)
	}

	s.CreatedAtText = times.FormatTaipei(s.CreatedAt)

	return s
}

func (s Scheme) Matches(search string) bool {
	return slice.ContainsFold(search, s.Name, s.Note)
}

// WorkingSet is the pricing the dealer pricing page edits, stored per user under
// the currentPricingData key.
type WorkingSet struct {
	ID          string       `json:"id"`
	PricingData []PricedItem `json:"pricingData"`
	Name        string       `json:"name"`
	Note        string       `json:"note"`
}

// PricedItemsData is the stored form of items.
func PricedItemsData(items []PricedItem) []map[string]interface{} {
	res := make([]map[string]interface{}, 0, len(items))
	for _, p := range items {
		res = append(res, p.Data())
	}

	return res
}
