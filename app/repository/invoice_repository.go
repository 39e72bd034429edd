package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
)

// invoiceRepository implements the InvoiceRepository interface
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create creates a new invoice in the database
func (r *invoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// GetByID retrieves an invoice by its ID
func (r *invoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByNumber retrieves an invoice by its invoice number
func (r *invoiceRepository) GetByNumber(number string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Where("number = ?", number).First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Update updates an existing invoice in the database
func (r *invoiceRepository) Update(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}

// Delete soft deletes an invoice by its ID
func (r *invoiceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Invoice{}, id).Error
}

// List retrieves a page of invoices, newest due date first
func (r *invoiceRepository) List(offset, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Order("due_date DESC").Offset(offset).Limit(limit).Find(&invoices).Error
	return invoices, err
}

// ListAll retrieves all invoices
func (r *invoiceRepository) ListAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Find(&invoices).Error
	return invoices, err
}

// ListByClient retrieves all invoices of one client, newest due date first
func (r *invoiceRepository) ListByClient(clientID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("client_id = ?", clientID).Order("due_date DESC").Find(&invoices).Error
	return invoices, err
}

// Count returns the total number of invoices
func (r *invoiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Count(&count).Error
	return count, err
}

// MarkOverdue flips pending invoices past their due date to overdue
func (r *invoiceRepository) MarkOverdue(now time.Time) (int64, error) {
	res := r.db.Model(&models.Invoice{}).
		Where("status = ? AND due_date < ?", models.INVOICE_STATUS_PENDING, now).
		Update("status", models.INVOICE_STATUS_OVERDUE)
	return res.RowsAffected, res.Error
}

// OutstandingTotal sums the amounts of all open invoices
func (r *invoiceRepository) OutstandingTotal() (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.Model(&models.Invoice{}).
		Where("status IN ?", []string{models.INVOICE_STATUS_PENDING, models.INVOICE_STATUS_OVERDUE}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
