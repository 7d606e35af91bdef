package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm/dialects/postgres"
)

// ExpenseFact is a discretionary seller expense. The allocation list holds
// explicit per-SKU percentages, the unallocated remainder is split by revenue share.
type ExpenseFact struct {
	BaseModel
	AccountID         uuid.UUID      `json:"account_id" sql:"index" gorm:"column:account_id;not null;" valid:"Required"`
	MarketplaceID     string         `json:"marketplace_id" sql:"index" gorm:"column:marketplace_id;"`
	Category          string         `json:"category" sql:"index" gorm:"column:category;"`
	Amount            float64        `json:"amount" gorm:"column:amount"`
	AllocatedProducts postgres.Jsonb `json:"allocated_products" gorm:"null;type:jsonb"`
	ExpenseDate       time.Time      `json:"expense_date" sql:"index" gorm:"column:expense_date"`
}

func (ExpenseFact) TableName() string {
	return "expenses"
}

type AllocatedProduct struct {
	Sku        string  `json:"sku"`
	Percentage float64 `json:"percentage"`
}

// Allocations decodes the explicit per-SKU percentage list, nil when absent.
func (e ExpenseFact) Allocations() []AllocatedProduct {
	if len(e.AllocatedProducts.RawMessage) == 0 {
		return nil
	}
	var out []AllocatedProduct
	if err := json.Unmarshal(e.AllocatedProducts.RawMessage, &out); err != nil {
		return nil
	}
	return out
}

// Define your request body here
type ExpenseBody struct {
	UserID            uuid.UUID          `json:"user_id"`
	AccountID         *uuid.UUID         `json:"account_id" valid:"Required"`
	MarketplaceID     string             `json:"marketplace_id"`
	Category          string             `json:"category" valid:"Required"`
	Amount            *float64           `json:"amount" valid:"Required"`
	AllocatedProducts []AllocatedProduct `json:"allocated_products"`
	ExpenseDate       *time.Time         `json:"expense_date" valid:"Required"`
}

// Define your request param here
type ExpenseParam struct {
	AccountID   *string    `json:"account_id" form:"account_id" valid:"Required"`
	Category    *string    `json:"category,omitempty" form:"category"`
	DateFrom    *time.Time `json:"date_from,omitempty" form:"date_from" time_format:"2006-01-02"`
	DateTo      *time.Time `json:"date_to,omitempty" form:"date_to" time_format:"2006-01-02"`
	Page        int        `json:"page" form:"page"`
	PageSize    int        `json:"page_size" form:"page_size"`
	Sort        string     `json:"sort" form:"sort"`
	UserRole    string     `json:"user_role"`
	UserCallAPI uuid.UUID  `json:"user_call_api"`
}

type ListExpenseResponse struct {
	Data []ExpenseFact          `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}
