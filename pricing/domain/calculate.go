package domain

import (
	"github.com/kindfood/erp-system/common"
)

// Calculate derives the logistics-inclusive cost and the three margins of item.
// An empty price gives an empty margin.
func Calculate(item PricedItem) PricedItem {
	if item.TotalCost == nil {
		item.TotalCostWithLogistics = nil
		item.DealerMargin = nil
		item.SpecialMargin = nil
		item.BottomMargin = nil

		return item
	}

	cost := *item.TotalCost * (1 + common.Float(item.LogisticsCostRate)/100)
	item.TotalCostWithLogistics = common.Ptr(common.Round(cost))

	item.DealerMargin = margin(item.DealerPrice, cost)
	item.SpecialMargin = margin(item.SpecialPrice, cost)
	item.BottomMargin = margin(item.BottomPrice, cost)

	return item
}

func CalculateAll(items []PricedItem) []PricedItem {
	res := make([]PricedItem, 0, len(items))
	for _, item := range items {
		res = append(res, Calculate(item))
	}

	return res
}

func margin(price *float64, cost float64) *float64 {
	if !common.Truthy(price) {
		return nil
	}

	return common.Ptr(common.Round((*price - cost) / *price * 100))
}
