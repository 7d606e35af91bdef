package service

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"sellerpulse/ms-seller-analytics/pkg/model"

	"github.com/jinzhu/gorm/dialects/postgres"
)

func expense(amount float64, allocs ...model.AllocatedProduct) model.ExpenseFact {
	e := model.ExpenseFact{Amount: amount}
	if len(allocs) > 0 {
		raw, _ := json.Marshal(allocs)
		e.AllocatedProducts = postgres.Jsonb{RawMessage: raw}
	}
	return e
}

func TestAllocateExpensesBySku(t *testing.T) {
	revenueBySku := map[string]float64{"A": 300, "B": 700}

	tests := []struct {
		name         string
		expenses     []model.ExpenseFact
		totalRevenue float64
		want         map[string]float64
	}{
		{
			name:         "explicit percentage plus remainder pool across all SKUs",
			expenses:     []model.ExpenseFact{expense(100, model.AllocatedProduct{Sku: "A", Percentage: 40})},
			totalRevenue: 1000,
			want:         map[string]float64{"A": 58, "B": 42},
		},
		{
			name:         "no explicit entries splits fully by revenue share",
			expenses:     []model.ExpenseFact{expense(100)},
			totalRevenue: 1000,
			want:         map[string]float64{"A": 30, "B": 70},
		},
		{
			name: "fully allocated expense leaves no pool",
			expenses: []model.ExpenseFact{expense(100,
				model.AllocatedProduct{Sku: "A", Percentage: 25},
				model.AllocatedProduct{Sku: "B", Percentage: 75},
			)},
			totalRevenue: 1000,
			want:         map[string]float64{"A": 25, "B": 75},
		},
		{
			name:         "explicit SKU outside the revenue map still receives its share",
			expenses:     []model.ExpenseFact{expense(200, model.AllocatedProduct{Sku: "C", Percentage: 50})},
			totalRevenue: 1000,
			want:         map[string]float64{"A": 30, "B": 70, "C": 100},
		},
		{
			name:         "zero revenue leaves the pool unattributed",
			expenses:     []model.ExpenseFact{expense(100)},
			totalRevenue: 0,
			want:         map[string]float64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateExpensesBySku(tt.expenses, revenueBySku, tt.totalRevenue)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AllocateExpensesBySku() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllocateExpensesBySkuSumsToExpenseTotal(t *testing.T) {
	expenses := []model.ExpenseFact{
		expense(100, model.AllocatedProduct{Sku: "A", Percentage: 40}),
		expense(33.33),
		expense(9.5, model.AllocatedProduct{Sku: "B", Percentage: 100}),
	}
	revenueBySku := map[string]float64{"A": 123.45, "B": 678.9, "C": 1}
	var totalRevenue float64
	for _, r := range revenueBySku {
		totalRevenue += r
	}

	got := AllocateExpensesBySku(expenses, revenueBySku, totalRevenue)
	var sum float64
	for _, v := range got {
		sum += v
	}
	if math.Abs(sum-142.83) > 1e-9 {
		t.Errorf("allocated sum = %v, want 142.83", sum)
	}
}

func TestAllocateExpensesByMarketplace(t *testing.T) {
	revenueByMp := map[string]float64{"ATVPDKIKX0DER": 800, "A1F83G8C2ARO7P": 200}

	expenses := []model.ExpenseFact{
		{MarketplaceID: "ATVPDKIKX0DER", Amount: 50},
		{Amount: 100}, // no marketplace, joins the pool
	}

	got := AllocateExpensesByMarketplace(expenses, revenueByMp, 1000)
	want := map[string]float64{"ATVPDKIKX0DER": 130, "A1F83G8C2ARO7P": 20}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllocateExpensesByMarketplace() = %v, want %v", got, want)
	}
}

func TestAllocateAmountByShare(t *testing.T) {
	shareBy := map[string]float64{"A": 1, "B": 3}

	got := AllocateAmountByShare(40, shareBy, 4)
	want := map[string]float64{"A": 10, "B": 30}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllocateAmountByShare() = %v, want %v", got, want)
	}

	if got := AllocateAmountByShare(40, shareBy, 0); len(got) != 0 {
		t.Errorf("AllocateAmountByShare() with zero total = %v, want empty", got)
	}
	if got := AllocateAmountByShare(0, shareBy, 4); len(got) != 0 {
		t.Errorf("AllocateAmountByShare() with zero amount = %v, want empty", got)
	}
}
