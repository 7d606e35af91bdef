package service

import (
	"sort"

	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/utils"
)

// ResolveCOGS consumes cost lots oldest first up to quantitySold and returns
// the attributed cost plus the quantity no lot could cover. Consumption is a
// request scoped reduction over the sorted slice, the lots themselves never mutate.
// Missing cost history under-costs silently, the caller surfaces the uncosted
// quantity instead of failing.
func ResolveCOGS(lots []model.CostLot, quantitySold float64) (cogs float64, uncosted float64) {
	if quantitySold <= 0 {
		return 0, 0
	}

	sorted := make([]model.CostLot, len(lots))
	copy(sorted, lots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PurchaseDate.Before(sorted[j].PurchaseDate)
	})

	remaining := quantitySold
	for _, lot := range sorted {
		if remaining <= 0 {
			break
		}
		if lot.Quantity <= 0 {
			continue
		}
		take := lot.Quantity
		if take > remaining {
			take = remaining
		}
		cogs += take * lot.UnitCost
		remaining -= take
	}

	return cogs, remaining
}

// LotTotalCost is the full acquisition cost of a single lot. The shipment
// surcharge counts only here, it is never prorated into FIFO consumption.
func LotTotalCost(lot model.CostLot) float64 {
	return utils.Round2(lot.Quantity*lot.UnitCost + lot.ShipmentCost)
}

// WeightedAvgUnitCost averages unit cost across all lots in scope, quantity weighted.
func WeightedAvgUnitCost(lots []model.CostLot) float64 {
	var qty, cost float64
	for _, lot := range lots {
		qty += lot.Quantity
		cost += lot.Quantity * lot.UnitCost
	}
	if qty <= 0 {
		return 0
	}
	return cost / qty
}
