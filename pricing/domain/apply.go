package domain

import (
	bomtable "github.com/kindfood/erp-system/bomtable/domain"
	"github.com/kindfood/erp-system/common"
)

// Policy decides what happens to live tables a scheme has no pricing for.
type Policy struct {
	KeepUnmatched bool
}

// ApplyScheme merges a saved scheme into the live BOM tables, in live order.
// Tables the scheme prices keep the saved item with missing or zero pricing fields
// emptied. Tables it does not price are dropped unless the policy keeps them, in which
// case they carry their live fields with every pricing field empty. Saved items whose
// table no longer exists never appear.
func ApplyScheme(scheme Scheme, live []bomtable.BOMTable, policy Policy) []PricedItem {
	saved := make(map[string]PricedItem, len(scheme.PricingData))
	for _, item := range scheme.PricingData {
		saved[item.ID] = item
	}

	res := make([]PricedItem, 0, len(live))

	for _, t := range live {
		if item, ok := saved[t.ID]; ok {
			res = append(res, item.WithEmptyDefaults())
			continue
		}

		if policy.KeepUnmatched {
			res = append(res, PricedItem{
				ID:        t.ID,
				TableName: t.TableName,
				Category:  t.Category,
				TotalCost: common.Ptr(t.TotalCost),
			})
		}
	}

	return res
}

// WorkingSetFor is what a user's dealer pricing page loads after applying scheme.
func WorkingSetFor(scheme Scheme, items []PricedItem) WorkingSet {
	return WorkingSet{
		ID:          scheme.ID,
		PricingData: items,
		Name:        scheme.Name,
		Note:        scheme.Note,
	}
}
