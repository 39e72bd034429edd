package models

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Setting represents one persisted configuration row
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key" validate:"required,min=1,max=255"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:50;not null" json:"type" validate:"required"` // string, boolean, integer
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanySettings is the in-memory snapshot of the company profile and
// application-level defaults.
type CompanySettings struct {
	CompanyName      string `json:"company_name" validate:"required,min=1,max=255"`
	TaxID            string `json:"tax_id" validate:"max=100"`
	Currency         string `json:"currency" validate:"required,len=3"`
	InvoiceDueDays   int    `json:"invoice_due_days" validate:"min=0,max=365"`
	RenewalLookahead int    `json:"renewal_lookahead" validate:"min=1,max=90"`
}

var (
	companySettings *CompanySettings
	settingsMu      sync.RWMutex
)

func defaultCompanySettings() *CompanySettings {
	return &CompanySettings{
		CompanyName:      "BizLedger",
		Currency:         "EUR",
		InvoiceDueDays:   14,
		RenewalLookahead: 5,
	}
}

// GetCompanySettings returns the current settings snapshot
func GetCompanySettings() *CompanySettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if companySettings == nil {
		return defaultCompanySettings()
	}
	cp := *companySettings
	return &cp
}

// LoadSettings loads settings from database into memory
func LoadSettings(db *gorm.DB) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	companySettings = defaultCompanySettings()

	var settings []Setting
	if err := db.Find(&settings).Error; err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	for _, setting := range settings {
		switch setting.Key {
		case "company_name":
			companySettings.CompanyName = setting.Value
		case "tax_id":
			companySettings.TaxID = setting.Value
		case "currency":
			companySettings.Currency = setting.Value
		case "invoice_due_days":
			if v, err := strconv.Atoi(setting.Value); err == nil {
				companySettings.InvoiceDueDays = v
			}
		case "renewal_lookahead":
			if v, err := strconv.Atoi(setting.Value); err == nil {
				companySettings.RenewalLookahead = v
			}
		}
	}

	return nil
}

// SaveSettings validates and persists the snapshot as individual rows
func SaveSettings(db *gorm.DB, settings *CompanySettings) error {
	if err := validator.New().Struct(settings); err != nil {
		return err
	}

	rows := []Setting{
		{Key: "company_name", Value: settings.CompanyName, Type: "string"},
		{Key: "tax_id", Value: settings.TaxID, Type: "string"},
		{Key: "currency", Value: settings.Currency, Type: "string"},
		{Key: "invoice_due_days", Value: strconv.Itoa(settings.InvoiceDueDays), Type: "integer"},
		{Key: "renewal_lookahead", Value: strconv.Itoa(settings.RenewalLookahead), Type: "integer"},
	}

	for _, row := range rows {
		var existing Setting
		err := db.Where("setting_key = ?", row.Key).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&row).Error; err != nil {
				return err
			}
			continue
		} else if err != nil {
			return err
		}
		existing.Value = row.Value
		existing.Type = row.Type
		if err := db.Save(&existing).Error; err != nil {
			return err
		}
	}

	settingsMu.Lock()
	cp := *settings
	companySettings = &cp
	settingsMu.Unlock()

	return nil
}
