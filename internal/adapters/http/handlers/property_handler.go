package handlers

import (
	"errors"
	"strconv"
	"time"

	"rentmate/internal/core/billing"
	"rentmate/internal/core/services"
	"rentmate/internal/pkg/response"
	"rentmate/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// PropertyHandler handles occupancy endpoints
type PropertyHandler struct {
	propertyService *services.PropertyService
	billingService  *services.BillingService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *services.PropertyService, billingService *services.BillingService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		billingService:  billingService,
	}
}

// parseYearMonth reads the :year/:month path segments. Month is 1-12.
func parseYearMonth(c *fiber.Ctx) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, errors.New("invalid year")
	}
	m, err := strconv.Atoi(c.Params("month"))
	if err != nil || m < 1 || m > 12 {
		return 0, 0, errors.New("invalid month")
	}
	return year, time.Month(m), nil
}

// CreatePropertyRequest represents create occupancy request
type CreatePropertyRequest struct {
	RoomID    string   `json:"room_id" validate:"required"`
	Tenant    string   `json:"tenant" validate:"required,min=2,max=100"`
	Phone     string   `json:"phone" validate:"omitempty,max=20"`
	Email     string   `json:"email" validate:"omitempty,email"`
	JoinDate  *string  `json:"join_date"`
	Rent      int      `json:"rent" validate:"gte=0"`
	Advance   int      `json:"advance" validate:"gte=0"`
	WaterRate *float64 `json:"water_rate" validate:"omitempty,gt=0"`
}

// Create creates a new occupancy record
// @Summary Create occupancy
// @Description Move a tenant into a catalog room
// @Tags Properties
// @Accept json
// @Produce json
// @Param body body CreatePropertyRequest true "Occupancy data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /properties [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	joinDate, err := parseDate(req.JoinDate)
	if err != nil {
		return response.BadRequest(c, "join_date must be YYYY-MM-DD")
	}

	input := services.CreatePropertyInput{
		RoomID:    req.RoomID,
		Tenant:    req.Tenant,
		Phone:     req.Phone,
		Email:     req.Email,
		JoinDate:  joinDate,
		Rent:      req.Rent,
		Advance:   req.Advance,
		WaterRate: req.WaterRate,
	}

	property, err := h.propertyService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			return response.NotFound(c, "Room not found")
		case errors.Is(err, services.ErrRoomTaken):
			return response.Conflict(c, "Room already has an occupancy record")
		default:
			return response.InternalServerError(c, "Failed to create occupancy")
		}
	}

	return response.Created(c, "Occupancy created successfully", fiber.Map{
		"property": property,
	})
}

// List lists all occupancy records
// @Summary List occupancies
// @Tags Properties
// @Produce json
// @Success 200 {object} response.Response
// @Router /properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	// ?room= resolves by room id or room number instead of listing
	if room := c.Query("room"); room != "" {
		property, err := h.propertyService.GetByRoom(c.Context(), room)
		if err != nil {
			if errors.Is(err, services.ErrPropertyNotFound) {
				return response.NotFound(c, "No occupancy for this room")
			}
			return response.InternalServerError(c, "Failed to resolve occupancy")
		}
		return response.Success(c, "", fiber.Map{"property": property})
	}

	properties, err := h.propertyService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list occupancies")
	}

	return response.Success(c, "", fiber.Map{
		"properties": properties,
		"count":      len(properties),
	})
}

// Get gets one occupancy record
// @Summary Get occupancy
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	property, err := h.propertyService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return response.NotFound(c, "Property not found")
		}
		return response.InternalServerError(c, "Failed to get occupancy")
	}
	return response.Success(c, "", fiber.Map{"property": property})
}

// UpdatePropertyRequest represents update occupancy request
type UpdatePropertyRequest struct {
	Tenant    *string  `json:"tenant" validate:"omitempty,min=2,max=100"`
	Phone     *string  `json:"phone" validate:"omitempty,max=20"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	JoinDate  *string  `json:"join_date"`
	Rent      *int     `json:"rent" validate:"omitempty,gte=0"`
	Advance   *int     `json:"advance" validate:"omitempty,gte=0"`
	WaterRate *float64 `json:"water_rate" validate:"omitempty,gt=0"`
}

// Update updates tenant and billing facts
// @Summary Update occupancy
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var req UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	joinDate, err := parseDate(req.JoinDate)
	if err != nil {
		return response.BadRequest(c, "join_date must be YYYY-MM-DD")
	}

	input := services.UpdatePropertyInput{
		Tenant:    req.Tenant,
		Phone:     req.Phone,
		Email:     req.Email,
		JoinDate:  joinDate,
		Rent:      req.Rent,
		Advance:   req.Advance,
		WaterRate: req.WaterRate,
	}

	property, err := h.propertyService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return response.NotFound(c, "Property not found")
		}
		return response.InternalServerError(c, "Failed to update occupancy")
	}

	return response.Success(c, "Occupancy updated successfully", fiber.Map{"property": property})
}

// ChangeStatusRequest represents status change request
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Occupied Vacant Maintenance"`
}

// ChangeStatus sets the occupancy status
// @Summary Change occupancy status
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body ChangeStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /properties/{id}/status [patch]
func (h *PropertyHandler) ChangeStatus(c *fiber.Ctx) error {
	var req ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	property, err := h.propertyService.ChangeStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPropertyNotFound):
			return response.NotFound(c, "Property not found")
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status")
		default:
			return response.InternalServerError(c, "Failed to change status")
		}
	}

	return response.Success(c, "Status changed successfully", fiber.Map{"property": property})
}

// Vacate archives the current tenant and frees the room
// @Summary Vacate occupancy
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /properties/{id}/vacate [post]
func (h *PropertyHandler) Vacate(c *fiber.Ctx) error {
	property, err := h.propertyService.Vacate(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPropertyNotFound):
			return response.NotFound(c, "Property not found")
		case errors.Is(err, services.ErrNotVacatable):
			return response.Conflict(c, "Only occupied rooms can be vacated")
		default:
			return response.InternalServerError(c, "Failed to vacate")
		}
	}

	return response.Success(c, "Tenant vacated and archived", fiber.Map{"property": property})
}

// Delete soft deletes an occupancy record
// @Summary Delete occupancy
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	if err := h.propertyService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return response.NotFound(c, "Property not found")
		}
		return response.InternalServerError(c, "Failed to delete occupancy")
	}
	return response.Success(c, "Occupancy deleted successfully", nil)
}

// AdvancePayment advances the month's payment status one step
// @Summary Advance payment status
// @Description Cycle the month's payment state (None, Pending, Rent Only, Paid)
// @Tags Billing
// @Produce json
// @Param id path string true "Property ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /properties/{id}/payments/{year}/{month}/advance [post]
func (h *PropertyHandler) AdvancePayment(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.billingService.AdvancePaymentStatus(c.Context(), c.Params("id"), year, month)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPropertyNotFound):
			return response.NotFound(c, "Property not found")
		case errors.Is(err, billing.ErrRoomNotOccupied):
			return response.Conflict(c, "Room is not occupied")
		case errors.Is(err, billing.ErrFutureMonth):
			return response.UnprocessableEntity(c, "Cannot record payments for a future month")
		case errors.Is(err, billing.ErrWaterBillIncomplete):
			return response.UnprocessableEntity(c, "Water readings are missing for this month")
		case errors.Is(err, billing.ErrNegativeConsumption):
			return response.UnprocessableEntity(c, "Water consumption is negative, check the meter readings")
		default:
			return response.InternalServerError(c, "Failed to advance payment status")
		}
	}

	return response.Success(c, "Payment status advanced", result)
}

// GetWaterBill previews the month's water bill
// @Summary Get water bill
// @Tags Billing
// @Produce json
// @Param id path string true "Property ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} response.Response
// @Router /properties/{id}/water/{year}/{month} [get]
func (h *PropertyHandler) GetWaterBill(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	bill, err := h.billingService.GetWaterBill(c.Context(), c.Params("id"), year, month)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return response.NotFound(c, "Property not found")
		}
		return response.InternalServerError(c, "Failed to compute water bill")
	}

	return response.Success(c, "", fiber.Map{"bill": bill})
}

// WaterReadingRequest represents a meter reading entry. A null reading
// clears the month's entry.
type WaterReadingRequest struct {
	Reading    *float64 `json:"reading" validate:"omitempty,gte=0"`
	MeterReset *bool    `json:"meter_reset"`
}

// PutWaterReading records the month's meter reading
// @Summary Record water reading
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param body body WaterReadingRequest true "Reading"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /properties/{id}/water/{year}/{month} [put]
func (h *PropertyHandler) PutWaterReading(c *fiber.Ctx) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var req WaterReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	bill, err := h.billingService.RecordWaterReading(c.Context(), c.Params("id"), year, month, req.Reading, req.MeterReset)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPropertyNotFound):
			return response.NotFound(c, "Property not found")
		case errors.Is(err, billing.ErrRoomNotOccupied):
			return response.Conflict(c, "Room is not occupied")
		case errors.Is(err, billing.ErrFutureMonth):
			return response.UnprocessableEntity(c, "Cannot record readings for a future month")
		case errors.Is(err, billing.ErrWaterBillIncomplete):
			return response.UnprocessableEntity(c, "Reading must be non-negative")
		default:
			return response.InternalServerError(c, "Failed to record water reading")
		}
	}

	return response.Success(c, "Water reading recorded", fiber.Map{"bill": bill})
}

// parseDate parses an optional YYYY-MM-DD string
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
