package service

import (
	"sellerpulse/ms-seller-analytics/pkg/model"
	"sellerpulse/ms-seller-analytics/pkg/utils"
)

// CalcMetrics turns the five profit inputs into gross/net profit and margins.
// Total, never errors: zero revenue yields zero margins, never NaN.
func CalcMetrics(revenue, expenses, fees, refunds, cogs float64) model.ProfitMetrics {
	grossProfit := revenue - cogs - fees - refunds
	netProfit := grossProfit - expenses

	var grossMargin, netMargin float64
	if revenue > 0 {
		grossMargin = grossProfit / revenue * 100
		netMargin = netProfit / revenue * 100
	}

	return model.ProfitMetrics{
		GrossProfit: utils.Round2(grossProfit),
		NetProfit:   utils.Round2(netProfit),
		GrossMargin: utils.Round2(grossMargin),
		NetMargin:   utils.Round2(netMargin),
	}
}
