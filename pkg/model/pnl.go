package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PnlRequest struct {
	UserRole      string    `json:"user_role"`
	UserCallAPI   uuid.UUID `json:"user_call_api"`
	AccountID     *string   `json:"account_id,omitempty" form:"account_id" valid:"Required"`
	MarketplaceID *string   `json:"marketplace_id,omitempty" form:"marketplace_id"`
}

type PnlPeriodValue struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// PnlRow is one metric line of the hierarchical report. Ratio rows keep
// Total at 0, percentages are not summable across periods.
type PnlRow struct {
	Parameter    string           `json:"parameter"`
	IsExpandable bool             `json:"is_expandable"`
	Periods      []PnlPeriodValue `json:"periods"`
	Total        float64          `json:"total"`
	Children     []PnlRow         `json:"children,omitempty"`
}

// PnlReportResponse is the month-to-date plus trailing twelve months ladder, newest first.
type PnlReportResponse struct {
	Periods []string `json:"periods"`
	Rows    []PnlRow `json:"rows"`
}

type SendPnlEmailRequest struct {
	UserRole    string         `json:"user_role"`
	UserCallAPI uuid.UUID      `json:"user_call_api"`
	AccountID   *string        `json:"account_id,omitempty" valid:"Required"`
	Recipients  pq.StringArray `json:"recipients" valid:"Required"`
	Subject     string         `json:"subject"`
}
