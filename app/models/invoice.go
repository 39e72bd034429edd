package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	INVOICE_STATUS_PENDING = "pending"
	INVOICE_STATUS_PAID    = "paid"
	INVOICE_STATUS_OVERDUE = "overdue"
)

type Invoice struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Number    string          `gorm:"type:varchar(40);uniqueIndex" json:"number"`
	ClientID  uint            `gorm:"not null;index:idx_invoices_client_plan,priority:1" json:"client_id"`
	PlanID    *uint           `gorm:"index:idx_invoices_client_plan,priority:2" json:"plan_id,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	IssueDate time.Time       `gorm:"not null" json:"issue_date"`
	DueDate   time.Time       `gorm:"not null;index" json:"due_date"`
	Status    string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" validate:"oneof=pending paid overdue"`
	Notes     string          `gorm:"type:text" json:"notes"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (i *Invoice) Validate() error {
	v := validator.New()

	return v.Struct(i)
}

// NewInvoiceNumber generates a short unique invoice number.
func NewInvoiceNumber() string {
	id := uuid.New().String()
	return "INV-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:12])
}

// IsOpen reports whether the invoice still awaits payment.
func (i *Invoice) IsOpen() bool {
	return i.Status == INVOICE_STATUS_PENDING || i.Status == INVOICE_STATUS_OVERDUE
}
