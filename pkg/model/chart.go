package model

import (
	"time"

	"github.com/google/uuid"
)

type ChartTrendRequest struct {
	UserRole      string     `json:"user_role"`
	UserCallAPI   uuid.UUID  `json:"user_call_api"`
	AccountID     *string    `json:"account_id,omitempty" form:"account_id" valid:"Required"`
	MarketplaceID *string    `json:"marketplace_id,omitempty" form:"marketplace_id"`
	Sku           *string    `json:"sku,omitempty" form:"sku"`
	Metric        string     `json:"metric" form:"metric"`
	Period        string     `json:"period" form:"period"`
	StartDate     *time.Time `json:"start_date,omitempty" form:"start_date" time_format:"2006-01-02"`
	EndDate       *time.Time `json:"end_date,omitempty" form:"end_date" time_format:"2006-01-02"`
}

type ChartTrendResponse struct {
	Labels []string  `json:"labels"`
	Series []float64 `json:"series"`
	Total  float64   `json:"total"`
}

// ChartCompareResponse aligns the current window with the immediately
// preceding window of identical width, bucket by bucket.
type ChartCompareResponse struct {
	Labels        []string  `json:"labels"`
	Current       []float64 `json:"current"`
	Previous      []float64 `json:"previous"`
	CurrentTotal  float64   `json:"current_total"`
	PreviousTotal float64   `json:"previous_total"`
}
