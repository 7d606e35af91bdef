package service

import (
	"reflect"
	"testing"

	"sellerpulse/ms-seller-analytics/pkg/model"
)

func TestCalcMetrics(t *testing.T) {
	tests := []struct {
		name                                    string
		revenue, expenses, fees, refunds, cogs  float64
		want                                    model.ProfitMetrics
	}{
		{
			name: "profitable window", revenue: 1000, expenses: 130, fees: 150, refunds: 50, cogs: 300,
			want: model.ProfitMetrics{GrossProfit: 500, NetProfit: 370, GrossMargin: 50, NetMargin: 37},
		},
		{
			name: "losing window keeps negative margins", revenue: 100, expenses: 50, fees: 60, refunds: 10, cogs: 80,
			want: model.ProfitMetrics{GrossProfit: -50, NetProfit: -100, GrossMargin: -50, NetMargin: -100},
		},
		{
			name: "zero revenue yields zero margins not NaN", revenue: 0, expenses: 20, fees: 5, refunds: 0, cogs: 10,
			want: model.ProfitMetrics{GrossProfit: -15, NetProfit: -35, GrossMargin: 0, NetMargin: 0},
		},
		{
			name: "negative revenue also guards margins", revenue: -10, expenses: 0, fees: 0, refunds: 0, cogs: 0,
			want: model.ProfitMetrics{GrossProfit: -10, NetProfit: -10, GrossMargin: 0, NetMargin: 0},
		},
		{
			name: "rounding to cents", revenue: 3, expenses: 0, fees: 1, refunds: 0, cogs: 1,
			want: model.ProfitMetrics{GrossProfit: 1, NetProfit: 1, GrossMargin: 33.33, NetMargin: 33.33},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcMetrics(tt.revenue, tt.expenses, tt.fees, tt.refunds, tt.cogs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CalcMetrics() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
