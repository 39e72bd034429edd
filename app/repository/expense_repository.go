package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/madiaz/bizledger/app/models"
)

// expenseRepository implements the ExpenseRepository interface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create creates a new expense in the database
func (r *expenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// GetByID retrieves an expense by its ID
func (r *expenseRepository) GetByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.First(&expense, id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// Update updates an existing expense in the database
func (r *expenseRepository) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

// Delete soft deletes an expense by its ID
func (r *expenseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Expense{}, id).Error
}

// List retrieves a page of expenses, newest first
func (r *expenseRepository) List(offset, limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Order("incurred_at DESC").Offset(offset).Limit(limit).Find(&expenses).Error
	return expenses, err
}

// Count returns the total number of expenses
func (r *expenseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Expense{}).Count(&count).Error
	return count, err
}

// TotalBetween sums expense amounts in the half-open interval [start, end)
func (r *expenseRepository) TotalBetween(start, end time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.Model(&models.Expense{}).
		Where("incurred_at >= ? AND incurred_at < ?", start, end).
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
