package handlers

import (
	"errors"
	"time"

	"rentmate/internal/core/services"
	"rentmate/internal/pkg/pagination"
	"rentmate/internal/pkg/response"
	"rentmate/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ExpenseHandler handles expense ledger endpoints
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents create expense request
type CreateExpenseRequest struct {
	Date     string  `json:"date" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Note     string  `json:"note" validate:"omitempty,max=500"`
}

// Create records an expense
// @Summary Create expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param body body CreateExpenseRequest true "Expense data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return response.BadRequest(c, "date must be YYYY-MM-DD")
	}

	expense, err := h.expenseService.Create(c.Context(), services.CreateExpenseInput{
		Date:     date,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory):
			return response.BadRequest(c, "Invalid expense category")
		case errors.Is(err, services.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be positive")
		default:
			return response.InternalServerError(c, "Failed to create expense")
		}
	}

	return response.Created(c, "Expense recorded successfully", fiber.Map{"expense": expense})
}

// List lists expenses with pagination
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	expenses, total, err := h.expenseService.List(c.Context(), params.Page, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list expenses")
	}

	return response.Success(c, "", pagination.NewResponse(expenses, params, total))
}

// ListByMonth lists one month's expenses with their total
// @Summary List expenses by month
// @Tags Expenses
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} response.Response
// @Router /expenses/{year}/{month} [get]
func (h *ExpenseHandler) ListByMonth(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	expenses, total, err := h.expenseService.ListByMonth(c.Context(), year, month)
	if err != nil {
		return response.InternalServerError(c, "Failed to list expenses")
	}

	return response.Success(c, "", fiber.Map{
		"expenses": expenses,
		"total":    total,
	})
}

// Delete removes an expense entry
// @Summary Delete expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.expenseService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return response.NotFound(c, "Expense not found")
		}
		return response.InternalServerError(c, "Failed to delete expense")
	}
	return response.Success(c, "Expense deleted successfully", nil)
}
