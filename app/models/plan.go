package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PLAN_TYPE_RECURRING = "recurring"
	PLAN_TYPE_ONE_TIME  = "one_time"

	RECURRENCE_PERIOD_DAYS   = "days"
	RECURRENCE_PERIOD_MONTHS = "months"
	RECURRENCE_PERIOD_YEARS  = "years"
)

type Plan struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Description      string          `gorm:"type:text" json:"description"`
	Type             string          `gorm:"type:varchar(20);not null;default:'recurring'" json:"type" validate:"oneof=recurring one_time"`
	Price            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	RecurrenceValue  int             `gorm:"default:0" json:"recurrence_value" validate:"min=0"`
	RecurrencePeriod string          `gorm:"type:varchar(20);default:''" json:"recurrence_period" validate:"omitempty,oneof=days months years"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (p *Plan) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// IsRecurring reports whether the plan bills on a repeating cadence.
func (p *Plan) IsRecurring() bool {
	return p.Type == PLAN_TYPE_RECURRING
}

// HasValidRecurrence reports whether the recurrence fields allow a next
// due date to be computed. One-time plans never do.
func (p *Plan) HasValidRecurrence() bool {
	if !p.IsRecurring() || p.RecurrenceValue <= 0 {
		return false
	}
	switch p.RecurrencePeriod {
	case RECURRENCE_PERIOD_DAYS, RECURRENCE_PERIOD_MONTHS, RECURRENCE_PERIOD_YEARS:
		return true
	default:
		return false
	}
}
