package domain

import (
	"strconv"
	"time"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/slice"
	"github.com/kindfood/erp-system/times"
)

// NotUpdated is displayed for materials that were never edited.
const NotUpdated = "尚未更新"

// Material is a shared material as shown in the catalog. UnitCost is derived from
// purchaseUnitCost / productUnit and formatted with two decimals.
type Material struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	PurchaseUnitCost *float64   `json:"purchaseUnitCost"`
	ProductUnit      *float64   `json:"productUnit"`
	UnitCost         string     `json:"unitCost"`
	CreatedAt        time.Time  `json:"createdAt"`
	LastUpdated      *time.Time `json:"lastUpdated"`
	CreatedAtText    string     `json:"createdAtText"`
	LastUpdatedText  string     `json:"lastUpdatedText"`
}

// HistoryEntry is the state of a material recorded by one write.
type HistoryEntry struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	PurchaseUnitCost *float64       `json:"purchaseUnitCost"`
	ProductUnit      *float64       `json:"productUnit"`
	UnitCost         string         `json:"unitCost"`
	ChangedAt        time.Time      `json:"changedAt"`
	ChangedAtText    string         `json:"changedAtText"`
	ChangedBy        common.UserRef `json:"changedBy"`
}

// DeriveUnitCost returns purchaseUnitCost / productUnit with two decimals, or "" when
// either value is missing or productUnit is not positive.
func DeriveUnitCost(purchaseUnitCost, productUnit *float64) string {
	if purchaseUnitCost == nil || productUnit == nil || *productUnit <= 0 {
		return ""
	}

	return common.Fixed2(*purchaseUnitCost / *productUnit)
}

// UnitCostValue is the numeric form of the derived unit cost, the value copied into BOM rows.
func (m Material) UnitCostValue() *float64 {
	return common.Number(m.UnitCost)
}

// FromData builds a Material from a stored document. Older documents keep numbers as
// strings, and may lack lastUpdated.
func FromData(id string, data map[string]interface{}) Material {
	name, _ := data["name"].(string)

	m := Material{
		ID:               id,
		Name:             name,
		PurchaseUnitCost: common.Number(data["purchaseUnitCost"]),
		ProductUnit:      common.Number(data["productUnit"]),
	}

	m.UnitCost = DeriveUnitCost(m.PurchaseUnitCost, m.ProductUnit)

	if t, ok := data["createdAt"].(time.Time); ok {
		m.CreatedAt = t
	}

	if t, ok := data["lastUpdated"].(time.Time); ok {
		m.LastUpdated = &t
	}

	m.CreatedAtText = times.FormatTaipei(m.CreatedAt)
	m.LastUpdatedText = NotUpdated

	if m.LastUpdated != nil {
		m.LastUpdatedText = times.FormatTaipei(*m.LastUpdated)
	}

	return m
}

// HistoryFromData builds a HistoryEntry from a stored history document.
func HistoryFromData(id string, data map[string]interface{}) HistoryEntry {
	name, _ := data["name"].(string)

	e := HistoryEntry{
		ID:               id,
		Name:             name,
		PurchaseUnitCost: common.Number(data["purchaseUnitCost"]),
		ProductUnit:      common.Number(data["productUnit"]),
	}

	e.UnitCost, _ = data["unitCost"].(string)
	if e.UnitCost == "" {
		e.UnitCost = DeriveUnitCost(e.PurchaseUnitCost, e.ProductUnit)
	}

	if t, ok := data["changedAt"].(time.Time); ok {
		e.ChangedAt = t
	}

	e.ChangedAtText = times.FormatTaipei(e.ChangedAt)

	if by, ok := data["changedBy"].(map[string]interface{}); ok {
		e.ChangedBy.UID, _ = by["uid"].(string)
		e.ChangedBy.DisplayName, _ = by["displayName"].(string)
		e.ChangedBy.Email, _ = by["email"].(string)
	}

	return e
}

// Matches is the catalog search: the name ignoring case, or any of the numbers as displayed.
func (m Material) Matches(search string) bool {
	return slice.ContainsFold(search,
		m.Name,
		formatNumber(m.PurchaseUnitCost),
		formatNumber(m.ProductUnit),
		m.UnitCost,
	)
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}
