package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Category    string          `gorm:"type:varchar(100);index" json:"category" validate:"required,min=2,max=100"`
	Description string          `gorm:"type:text" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	IncurredAt  time.Time       `gorm:"not null;index" json:"incurred_at"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (e *Expense) Validate() error {
	v := validator.New()

	return v.Struct(e)
}
