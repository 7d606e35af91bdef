package service

import (
	"testing"
	"time"

	"sellerpulse/ms-seller-analytics/pkg/model"
)

func lot(sku string, qty, unitCost float64, day int) model.CostLot {
	return model.CostLot{
		Sku:          sku,
		Quantity:     qty,
		UnitCost:     unitCost,
		PurchaseDate: time.Date(2021, 1, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestResolveCOGS(t *testing.T) {
	tests := []struct {
		name         string
		lots         []model.CostLot
		quantitySold float64
		wantCogs     float64
		wantUncosted float64
	}{
		{
			name:         "spans two lots oldest first",
			lots:         []model.CostLot{lot("A", 10, 2, 1), lot("A", 5, 3, 10)},
			quantitySold: 12,
			wantCogs:     26, // 10*2 + 2*3
			wantUncosted: 0,
		},
		{
			name:         "newest lot first in input, order still by purchase date",
			lots:         []model.CostLot{lot("A", 5, 3, 10), lot("A", 10, 2, 1)},
			quantitySold: 12,
			wantCogs:     26,
			wantUncosted: 0,
		},
		{
			name:         "partial single lot",
			lots:         []model.CostLot{lot("A", 10, 2, 1)},
			quantitySold: 4,
			wantCogs:     8,
			wantUncosted: 0,
		},
		{
			name:         "ledger exhausted under-costs silently",
			lots:         []model.CostLot{lot("A", 10, 2, 1)},
			quantitySold: 15,
			wantCogs:     20,
			wantUncosted: 5,
		},
		{
			name:         "no lots at all",
			lots:         nil,
			quantitySold: 7,
			wantCogs:     0,
			wantUncosted: 7,
		},
		{
			name:         "zero quantity sold",
			lots:         []model.CostLot{lot("A", 10, 2, 1)},
			quantitySold: 0,
			wantCogs:     0,
			wantUncosted: 0,
		},
		{
			name:         "empty lots are skipped",
			lots:         []model.CostLot{lot("A", 0, 99, 1), lot("A", 10, 2, 2)},
			quantitySold: 3,
			wantCogs:     6,
			wantUncosted: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCogs, gotUncosted := ResolveCOGS(tt.lots, tt.quantitySold)
			if gotCogs != tt.wantCogs {
				t.Errorf("ResolveCOGS() cogs = %v, want %v", gotCogs, tt.wantCogs)
			}
			if gotUncosted != tt.wantUncosted {
				t.Errorf("ResolveCOGS() uncosted = %v, want %v", gotUncosted, tt.wantUncosted)
			}
		})
	}
}

func TestResolveCOGSDoesNotMutateLots(t *testing.T) {
	lots := []model.CostLot{lot("A", 5, 3, 10), lot("A", 10, 2, 1)}
	_, _ = ResolveCOGS(lots, 12)
	_, _ = ResolveCOGS(lots, 12)

	if lots[0].Quantity != 5 || lots[1].Quantity != 10 {
		t.Errorf("ResolveCOGS() mutated input lots: %+v", lots)
	}
	// same window, same answer
	cogs, _ := ResolveCOGS(lots, 12)
	if cogs != 26 {
		t.Errorf("ResolveCOGS() not repeatable, got %v", cogs)
	}
}

func TestLotTotalCost(t *testing.T) {
	l := lot("A", 10, 2.5, 1)
	l.ShipmentCost = 12.345
	if got := LotTotalCost(l); got != 37.35 {
		t.Errorf("LotTotalCost() = %v, want 37.35", got)
	}
}

func TestWeightedAvgUnitCost(t *testing.T) {
	lots := []model.CostLot{lot("A", 10, 2, 1), lot("A", 5, 5, 2)}
	if got := WeightedAvgUnitCost(lots); got != 3 {
		t.Errorf("WeightedAvgUnitCost() = %v, want 3", got)
	}
	if got := WeightedAvgUnitCost(nil); got != 0 {
		t.Errorf("WeightedAvgUnitCost(nil) = %v, want 0", got)
	}
}
