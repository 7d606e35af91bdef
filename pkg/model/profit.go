package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfitFilterParam is the shared filter window of every report function.
// Absent dates default to a trailing 30 day window.
type ProfitFilterParam struct {
	UserRole      string     `json:"user_role"`
	UserCallAPI   uuid.UUID  `json:"user_call_api"`
	AccountID     *string    `json:"account_id,omitempty" form:"account_id" valid:"Required"`
	MarketplaceID *string    `json:"marketplace_id,omitempty" form:"marketplace_id"`
	Sku           *string    `json:"sku,omitempty" form:"sku"`
	StartDate     *time.Time `json:"start_date,omitempty" form:"start_date" time_format:"2006-01-02"`
	EndDate       *time.Time `json:"end_date,omitempty" form:"end_date" time_format:"2006-01-02"`
	Period        string     `json:"period" form:"period"`
	Dimension     string     `json:"dimension" form:"dimension"`
}

// ProfitSummaryResponse is the ungrouped profit figure set for one filter window.
// Advertising is carried separately from discretionary expenses but both reduce net profit.
type ProfitSummaryResponse struct {
	Revenue          float64 `json:"revenue"`
	UnitsSold        float64 `json:"units_sold"`
	Cogs             float64 `json:"cogs"`
	Fees             float64 `json:"fees"`
	Refunds          float64 `json:"refunds"`
	ReturnsCost      float64 `json:"returns_cost"`
	Expenses         float64 `json:"expenses"`
	Advertising      float64 `json:"advertising"`
	UncostedQuantity float64 `json:"uncosted_quantity"`
	GrossProfit      float64 `json:"gross_profit"`
	NetProfit        float64 `json:"net_profit"`
	GrossMargin      float64 `json:"gross_margin"`
	NetMargin        float64 `json:"net_margin"`
}

// ProfitBreakdownRow is one dimension bucket (SKU, marketplace, country or period key).
type ProfitBreakdownRow struct {
	Key string `json:"key"`
	ProfitSummaryResponse
}

type ListProfitBreakdownResponse struct {
	Data []ProfitBreakdownRow   `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

// ProfitMetrics is the output of the pure metric calculator.
type ProfitMetrics struct {
	GrossProfit float64 `json:"gross_profit"`
	NetProfit   float64 `json:"net_profit"`
	GrossMargin float64 `json:"gross_margin"`
	NetMargin   float64 `json:"net_margin"`
}
