package model

import (
	"time"

	"github.com/google/uuid"
)

// CostLot is a discrete inbound inventory purchase with its own unit cost and
// receipt date. Lots for a SKU form an ordered ledger consumed oldest first.
type CostLot struct {
	BaseModel
	AccountID    uuid.UUID `json:"account_id" sql:"index" gorm:"column:account_id;not null;" valid:"Required"`
	Sku          string    `json:"sku" sql:"index" gorm:"column:sku;not null;" valid:"Required"`
	Quantity     float64   `json:"quantity" gorm:"column:quantity"`
	UnitCost     float64   `json:"unit_cost" gorm:"column:unit_cost"`
	ShipmentCost float64   `json:"shipment_cost" gorm:"column:shipment_cost"`
	CostMethod   string    `json:"cost_method" sql:"index" gorm:"column:cost_method;default:'BATCH'"`
	PurchaseDate time.Time `json:"purchase_date" sql:"index" gorm:"column:purchase_date"`
}

func (CostLot) TableName() string {
	return "cost_lots"
}

// Define your request body here
type CostLotBody struct {
	UserID       uuid.UUID  `json:"user_id"`
	AccountID    *uuid.UUID `json:"account_id" valid:"Required"`
	Sku          string     `json:"sku" valid:"Required"`
	Quantity     *float64   `json:"quantity" valid:"Required"`
	UnitCost     *float64   `json:"unit_cost" valid:"Required"`
	ShipmentCost float64    `json:"shipment_cost"`
	CostMethod   string     `json:"cost_method"`
	PurchaseDate *time.Time `json:"purchase_date" valid:"Required"`
}

type UpdateCostLotBody struct {
	UserID       uuid.UUID  `json:"user_id"`
	ID           uuid.UUID  `json:"id"`
	Quantity     *float64   `json:"quantity"`
	UnitCost     *float64   `json:"unit_cost"`
	ShipmentCost *float64   `json:"shipment_cost"`
	PurchaseDate *time.Time `json:"purchase_date"`
}

// Define your request param here
type CostLotParam struct {
	AccountID   *string    `json:"account_id" form:"account_id" valid:"Required"`
	Sku         *string    `json:"sku,omitempty" form:"sku"`
	DateFrom    *time.Time `json:"date_from,omitempty" form:"date_from" time_format:"2006-01-02"`
	DateTo      *time.Time `json:"date_to,omitempty" form:"date_to" time_format:"2006-01-02"`
	Page        int        `json:"page" form:"page"`
	PageSize    int        `json:"page_size" form:"page_size"`
	Sort        string     `json:"sort" form:"sort"`
	UserRole    string     `json:"user_role"`
	UserCallAPI uuid.UUID  `json:"user_call_api"`
}

// CostLotDetailResponse carries the full lot cost, shipment surcharge included.
type CostLotDetailResponse struct {
	CostLot
	TotalCost float64 `json:"total_cost"`
}

type ListCostLotResponse struct {
	Data []CostLotDetailResponse `json:"data"`
	Meta map[string]interface{}  `json:"meta"`
}
