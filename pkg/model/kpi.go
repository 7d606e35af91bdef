package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// KpiSummary is one derived stock/velocity row per SKU, rebuilt by the
// recalculate operation. Upserts are independent per SKU.
type KpiSummary struct {
	BaseModel
	AccountID     uuid.UUID      `json:"account_id" sql:"index" gorm:"column:account_id;not null;uniqueIndex:idx_kpi_account_sku"`
	Sku           string         `json:"sku" sql:"index" gorm:"column:sku;not null;uniqueIndex:idx_kpi_account_sku"`
	StockOnHand   float64        `json:"stock_on_hand" gorm:"column:stock_on_hand"`
	UnitsSold30d  float64        `json:"units_sold_30d" gorm:"column:units_sold_30d"`
	Revenue30d    float64        `json:"revenue_30d" gorm:"column:revenue_30d"`
	SalesVelocity float64        `json:"sales_velocity" gorm:"column:sales_velocity"`
	DaysOfStock   float64        `json:"days_of_stock" gorm:"column:days_of_stock"`
	AsOfDate      datatypes.Date `json:"as_of_date" gorm:"column:as_of_date"`
}

func (KpiSummary) TableName() string {
	return "kpi_summary"
}

type RecalculateKpiRequest struct {
	UserRole    string    `json:"user_role"`
	UserCallAPI uuid.UUID `json:"user_call_api"`
	AccountID   *string   `json:"account_id,omitempty" valid:"Required"`
}

// SkuKpiInput is the raw stock plus trailing 30 day sales read per SKU.
type SkuKpiInput struct {
	Sku          string  `json:"sku"`
	StockOnHand  float64 `json:"stock_on_hand"`
	UnitsSold30d float64 `json:"units_sold_30d"`
	Revenue30d   float64 `json:"revenue_30d"`
}

type KpiParam struct {
	AccountID   *string   `json:"account_id" form:"account_id" valid:"Required"`
	Sku         *string   `json:"sku,omitempty" form:"sku"`
	Page        int       `json:"page" form:"page"`
	PageSize    int       `json:"page_size" form:"page_size"`
	Sort        string    `json:"sort" form:"sort"`
	UserRole    string    `json:"user_role"`
	UserCallAPI uuid.UUID `json:"user_call_api"`
}

type ListKpiSummaryResponse struct {
	Data []KpiSummary           `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

type RecalculateKpiResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	SkuCount  int       `json:"sku_count"`
	AsOf      time.Time `json:"as_of"`
}
