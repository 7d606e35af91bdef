package service

import (
	"sellerpulse/ms-seller-analytics/pkg/model"
)

// AllocateExpensesBySku applies the two tier allocation rule: explicit
// percentage entries first, then every expense's unallocated remainder joins a
// pool split across all SKUs in scope proportionally to revenue share.
// totalRevenue is the window revenue across all SKUs, it may exceed the sum of
// revenueBySku when the caller filtered to a subset.
func AllocateExpensesBySku(expenses []model.ExpenseFact, revenueBySku map[string]float64, totalRevenue float64) map[string]float64 {
	out := make(map[string]float64, len(revenueBySku))

	var pool float64
	for _, e := range expenses {
		var pctSum float64
		for _, a := range e.Allocations() {
			out[a.Sku] += e.Amount * a.Percentage / 100
			pctSum += a.Percentage
		}
		if pctSum < 100 {
			pool += e.Amount * (100 - pctSum) / 100
		}
	}

	// No revenue in the window means no share to key the pool on, the
	// remainder stays unattributed at SKU level.
	if pool != 0 && totalRevenue > 0 {
		for sku, rev := range revenueBySku {
			out[sku] += pool * rev / totalRevenue
		}
	}

	return out
}

// AllocateExpensesByMarketplace applies the same rule keyed on marketplace:
// an explicit marketplace id on the expense wins, expenses without one form
// an independent pool split by marketplace revenue share.
func AllocateExpensesByMarketplace(expenses []model.ExpenseFact, revenueByMp map[string]float64, totalRevenue float64) map[string]float64 {
	out := make(map[string]float64, len(revenueByMp))

	var pool float64
	for _, e := range expenses {
		if e.MarketplaceID != "" {
			out[e.MarketplaceID] += e.Amount
			continue
		}
		pool += e.Amount
	}

	if pool != 0 && totalRevenue > 0 {
		for mp, rev := range revenueByMp {
			out[mp] += pool * rev / totalRevenue
		}
	}

	return out
}

// AllocateAmountByShare splits one amount across keys proportionally to their
// share of total. Used for ad spend and order level charges that carry no key
// of the requested dimension.
func AllocateAmountByShare(amount float64, shareBy map[string]float64, total float64) map[string]float64 {
	out := make(map[string]float64, len(shareBy))
	if amount == 0 || total <= 0 {
		return out
	}
	for key, share := range shareBy {
		out[key] += amount * share / total
	}
	return out
}
