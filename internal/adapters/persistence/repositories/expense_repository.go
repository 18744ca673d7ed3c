package repositories

import (
	"context"

	"rentmate/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ExpenseRepository handles expense ledger data access
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create appends a new expense document
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// GetByID gets an expense by id
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	return &expense, err
}

// Delete removes an expense document by id. Expenses are never edited in
// place, only created and deleted.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Expense{}, "id = ?", id).Error
}

// List lists expenses with pagination, newest first
func (r *ExpenseRepository) List(ctx context.Context, offset, limit int) ([]*models.Expense, int64, error) {
	var expenses []*models.Expense
	var total int64

	r.db.WithContext(ctx).Model(&models.Expense{}).Count(&total)

	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenses).Error

	return expenses, total, err
}

// ListByMonthKey lists the expenses recorded under one month key
func (r *ExpenseRepository) ListByMonthKey(ctx context.Context, monthKey string) ([]*models.Expense, error) {
	var expenses []*models.Expense
	err := r.db.WithContext(ctx).
		Where("month_key = ?", monthKey).
		Order("date ASC").
		Find(&expenses).Error
	return expenses, err
}
