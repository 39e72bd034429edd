package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	TASK_STATUS_OPEN        = "open"
	TASK_STATUS_IN_PROGRESS = "in_progress"
	TASK_STATUS_DONE        = "done"
)

// Task is one row of the flat task table. Hierarchy is expressed through
// ParentID and assembled in memory, see internal/pkg/tasktree.
type Task struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(200)" json:"title" validate:"required,min=1,max=200"`
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"type:varchar(20);not null;default:'open';index" json:"status" validate:"oneof=open in_progress done"`
	DueDate     *time.Time     `gorm:"type:timestamp;default:null" json:"due_date,omitempty"`
	ParentID    *uint          `gorm:"index" json:"parent_id,omitempty"`
	ClientID    *uint          `gorm:"index" json:"client_id,omitempty"`
	Position    int            `gorm:"default:0" json:"position"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Task) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

// IsDone reports whether the task has been completed.
func (t *Task) IsDone() bool {
	return t.Status == TASK_STATUS_DONE
}
