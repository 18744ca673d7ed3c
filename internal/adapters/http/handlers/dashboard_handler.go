package handlers

import (
	"strconv"

	"rentmate/internal/core/services"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Month returns the monthly dashboard
// @Summary Monthly dashboard
// @Description Rent collected, rent pending, expenses and per-room billing state for one month
// @Tags Dashboard
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} response.Response
// @Router /dashboard/month/{year}/{month} [get]
func (h *DashboardHandler) Month(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	data, err := h.dashboardService.GetMonthlyDashboard(c.Context(), year, month)
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard")
	}

	return response.Success(c, "", data)
}

// Year returns the twelve-month rollup for one year
// @Summary Year summary
// @Tags Dashboard
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} response.Response
// @Router /dashboard/year/{year} [get]
func (h *DashboardHandler) Year(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 2000 || year > 2100 {
		return response.BadRequest(c, "invalid year")
	}

	data, err := h.dashboardService.GetYearSummary(c.Context(), year)
	if err != nil {
		return response.InternalServerError(c, "Failed to build year summary")
	}

	return response.Success(c, "", data)
}
