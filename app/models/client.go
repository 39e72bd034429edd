package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	CLIENT_STATUS_ACTIVE   = "active"
	CLIENT_STATUS_INACTIVE = "inactive"
)

type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Email     string         `gorm:"type:varchar(200);index" json:"email" validate:"omitempty,email,max=200"`
	Phone     string         `gorm:"type:varchar(50)" json:"phone" validate:"max=50"`
	Status    string         `gorm:"type:varchar(50);default:'active';index" json:"status" validate:"oneof=active inactive"`
	Notes     string         `gorm:"type:text" json:"notes"`
	Plans     []ClientPlan   `gorm:"foreignKey:ClientID" json:"plans,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ClientPlan records one subscription of a client to a service plan.
// The same plan may appear more than once per client; each entry is an
// independent activation lineage.
type ClientPlan struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ClientID       uint      `gorm:"not null;index:idx_client_plans_client_plan,priority:1" json:"client_id"`
	PlanID         uint      `gorm:"not null;index:idx_client_plans_client_plan,priority:2" json:"plan_id"`
	ActivationDate time.Time `gorm:"not null" json:"activation_date"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Client) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// IsActive reports whether the client status is active
func (c *Client) IsActive() bool {
	return c.Status == CLIENT_STATUS_ACTIVE
}
