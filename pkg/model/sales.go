package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SalesFact is one order line as ingested from the marketplace.
// Immutable once recorded, returns are separate facts and never edit these rows.
type SalesFact struct {
	BaseModel
	AccountID     uuid.UUID `json:"account_id" sql:"index" gorm:"column:account_id;not null;" valid:"Required"`
	OrderID       string    `json:"order_id" sql:"index" gorm:"column:order_id;not null;"`
	Sku           string    `json:"sku" sql:"index" gorm:"column:sku;not null;"`
	MarketplaceID string    `json:"marketplace_id" sql:"index" gorm:"column:marketplace_id;"`
	Quantity      float64   `json:"quantity" gorm:"column:quantity"`
	UnitPrice     float64   `json:"unit_price" gorm:"column:unit_price"`
	LineRevenue   float64   `json:"line_revenue" gorm:"column:line_revenue"`
	OrderDate     time.Time `json:"order_date" sql:"index" gorm:"column:order_date"`
}

func (SalesFact) TableName() string {
	return "sales_facts"
}

// FeeFact is a marketplace charge attached to an order, many fees per order.
type FeeFact struct {
	BaseModel
	AccountID uuid.UUID `json:"account_id" sql:"index" gorm:"column:account_id;not null;"`
	OrderID   string    `json:"order_id" sql:"index" gorm:"column:order_id;"`
	FeeType   string    `json:"fee_type" sql:"index" gorm:"column:fee_type;"`
	Amount    float64   `json:"amount" gorm:"column:amount"`
	FeeDate   time.Time `json:"fee_date" sql:"index" gorm:"column:fee_date"`
}

func (FeeFact) TableName() string {
	return "fee_facts"
}

// RefundFact is money given back to a buyer, may exist without a physical return.
type RefundFact struct {
	BaseModel
	AccountID  uuid.UUID `json:"account_id" sql:"index" gorm:"column:account_id;not null;"`
	OrderID    string    `json:"order_id" sql:"index" gorm:"column:order_id;"`
	ReasonCode string    `json:"reason_code" gorm:"column:reason_code;"`
	Amount     float64   `json:"amount" gorm:"column:amount"`
	RefundDate time.Time `json:"refund_date" sql:"index" gorm:"column:refund_date"`
}

func (RefundFact) TableName() string {
	return "refund_facts"
}

// ReturnFact is a physical return event, distinct from the money movement.
type ReturnFact struct {
	BaseModel
	AccountID        uuid.UUID      `json:"account_id" sql:"index" gorm:"column:account_id;not null;"`
	OrderID          string         `json:"order_id" sql:"index" gorm:"column:order_id;"`
	Sku              string         `json:"sku" sql:"index" gorm:"column:sku;"`
	QuantityReturned float64        `json:"quantity_returned" gorm:"column:quantity_returned"`
	RefundAmount     float64        `json:"refund_amount" gorm:"column:refund_amount"`
	FeeAmount        float64        `json:"fee_amount" gorm:"column:fee_amount"`
	IsSellable       bool           `json:"is_sellable" gorm:"column:is_sellable;default:false"`
	ReasonCode       string         `json:"reason_code" gorm:"column:reason_code;"`
	Images           pq.StringArray `json:"images" gorm:"type:varchar(500)[]"`
	ReturnDate       time.Time      `json:"return_date" sql:"index" gorm:"column:return_date"`
}

func (ReturnFact) TableName() string {
	return "return_facts"
}

// AdSpendFact is one day of spend for one campaign, channel is derived from the name.
type AdSpendFact struct {
	BaseModel
	AccountID     uuid.UUID `json:"account_id" sql:"index" gorm:"column:account_id;not null;"`
	MarketplaceID string    `json:"marketplace_id" sql:"index" gorm:"column:marketplace_id;"`
	CampaignName  string    `json:"campaign_name" gorm:"type:varchar(500)"`
	Spend         float64   `json:"spend" gorm:"column:spend"`
	SpendDate     time.Time `json:"spend_date" sql:"index" gorm:"column:spend_date"`
}

func (AdSpendFact) TableName() string {
	return "ad_spend_facts"
}
