package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"rentmate/internal/adapters/persistence/models"
	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/billing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense service errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidCategory = errors.New("invalid expense category")
	ErrInvalidAmount   = errors.New("expense amount must be positive")
)

// ExpenseService handles the expense ledger. Entries are created and
// deleted, never edited; corrections are delete-and-recreate.
type ExpenseService struct {
	expenseRepo *repositories.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo *repositories.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput for recording an expense
type CreateExpenseInput struct {
	Date     time.Time
	Category string
	Amount   float64
	Note     string
}

// Create records an expense under the month key of its date
func (s *ExpenseService) Create(ctx context.Context, input CreateExpenseInput) (*models.Expense, error) {
	if !models.IsValidExpenseCategory(input.Category) {
		return nil, ErrInvalidCategory
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	expense := &models.Expense{
		ID:       uuid.New().String(),
		Date:     input.Date,
		Category: input.Category,
		Amount:   input.Amount,
		Note:     strings.TrimSpace(input.Note),
		MonthKey: billing.Key(input.Date.Year(), input.Date.Month()),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes an expense entry
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if _, err := s.expenseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExpenseNotFound
		}
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}

// List lists expenses with pagination
func (s *ExpenseService) List(ctx context.Context, page, limit int) ([]*models.Expense, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.expenseRepo.List(ctx, (page-1)*limit, limit)
}

// ListByMonth lists the expenses of one month with their total
func (s *ExpenseService) ListByMonth(ctx context.Context, year int, month time.Month) ([]*models.Expense, float64, error) {
	key := billing.Key(year, month)
	expenses, err := s.expenseRepo.ListByMonthKey(ctx, key)
	if err != nil {
		return nil, 0, err
	}
	return expenses, billing.ExpensesForMonth(expenses, key), nil
}
