package model

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm/dialects/postgres"
)

// History is the audit trail of privileged edits (cost lot corrections, expense deletes).
type History struct {
	BaseModel
	ObjectID    uuid.UUID      `json:"object_id" sql:"index" gorm:"column:object_id;not null;" valid:"Required"`       // cost_lot_id | expense_id
	ObjectTable string         `json:"object_table" sql:"index" gorm:"column:object_table;not null;" valid:"Required"` // object table used to define which table logged
	Action      string         `json:"action" sql:"index" gorm:"column:action;not null;" valid:"Required"`
	Description string         `json:"description" gorm:"null"`
	Data        postgres.Jsonb `json:"data" gorm:"null type:jsonb"`
	Worker      string         `json:"worker" sql:"index" gorm:"column:worker;not null;" valid:"Required"`
}

func (History) TableName() string {
	return "history"
}
