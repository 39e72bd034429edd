package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Article is a knowledge base entry.
type Article struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(200)" json:"title" validate:"required,min=1,max=200"`
	Slug        string         `gorm:"type:varchar(220);uniqueIndex" json:"slug" validate:"required,min=1,max=220"`
	Content     string         `gorm:"type:longtext" json:"content"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Article) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// Slugify converts an article title into a URL-safe slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
