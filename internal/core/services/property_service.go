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

// Property service errors
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomTaken        = errors.New("room already has an occupancy record")
	ErrInvalidStatus    = errors.New("invalid occupancy status")
	ErrNotVacatable     = errors.New("only occupied rooms can be vacated")
)

// PropertyService handles occupancy business logic
type PropertyService struct {
	propertyRepo *repositories.PropertyRepository
	roomRepo     *repositories.RoomRepository
	clock        billing.Clock
}

// NewPropertyService creates a new property service
func NewPropertyService(propertyRepo *repositories.PropertyRepository, roomRepo *repositories.RoomRepository, clock billing.Clock) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		roomRepo:     roomRepo,
		clock:        clock,
	}
}

// CreatePropertyInput for creating an occupancy record
type CreatePropertyInput struct {
	RoomID    string
	Tenant    string
	Phone     string
	Email     string
	JoinDate  *time.Time
	Rent      int
	Advance   int
	WaterRate *float64
}

// UpdatePropertyInput for updating tenant and billing facts. Nil fields are
// left unchanged.
type UpdatePropertyInput struct {
	Tenant    *string
	Phone     *string
	Email     *string
	JoinDate  *time.Time
	Rent      *int
	Advance   *int
	WaterRate *float64
}

// Create opens an occupancy record for a catalog room. The room must exist
// and must not already carry a record.
func (s *PropertyService) Create(ctx context.Context, input CreatePropertyInput) (*models.Property, error) {
	room, err := s.roomRepo.GetByRoomID(ctx, strings.TrimSpace(input.RoomID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	existing, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if billing.FindOccupancy(existing, room.RoomID) != nil {
		return nil, ErrRoomTaken
	}

	property := &models.Property{
		ID:              uuid.New().String(),
		RoomID:          room.RoomID,
		RoomNo:          room.RoomNo,
		Status:          models.StatusOccupied,
		Tenant:          strings.TrimSpace(input.Tenant),
		Phone:           strings.TrimSpace(input.Phone),
		Email:           strings.TrimSpace(input.Email),
		JoinDate:        input.JoinDate,
		Rent:            input.Rent,
		Advance:         input.Advance,
		WaterRate:       input.WaterRate,
		PaymentHistory:  models.StatusMap{},
		PaymentTotals:   models.TotalMap{},
		WaterReadings:   models.ReadingMap{},
		WaterMeterReset: models.ResetMap{},
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// GetByID gets an occupancy record by id
func (s *PropertyService) GetByID(ctx context.Context, id string) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return property, nil
}

// GetByRoom resolves the occupancy bound to a room id or room number
func (s *PropertyService) GetByRoom(ctx context.Context, roomID string) (*models.Property, error) {
	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	property := billing.FindOccupancy(properties, roomID)
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// List lists all occupancy records
func (s *PropertyService) List(ctx context.Context) ([]*models.Property, error) {
	return s.propertyRepo.List(ctx)
}

// Update updates tenant and billing facts on an occupancy record
func (s *PropertyService) Update(ctx context.Context, id string, input UpdatePropertyInput) (*models.Property, error) {
	property, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Tenant != nil {
		property.Tenant = strings.TrimSpace(*input.Tenant)
	}
	if input.Phone != nil {
		property.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		property.Email = strings.TrimSpace(*input.Email)
	}
	if input.JoinDate != nil {
		property.JoinDate = input.JoinDate
	}
	if input.Rent != nil {
		property.Rent = *input.Rent
	}
	if input.Advance != nil {
		property.Advance = *input.Advance
	}
	if input.WaterRate != nil {
		property.WaterRate = input.WaterRate
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// ChangeStatus sets the occupancy status. Billing mutation is gated on
// Occupied elsewhere; this only validates the value itself.
func (s *PropertyService) ChangeStatus(ctx context.Context, id string, status string) (*models.Property, error) {
	switch status {
	case models.StatusOccupied, models.StatusVacant, models.StatusMaintenance:
	default:
		return nil, ErrInvalidStatus
	}

	property, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	property.Status = status
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Vacate archives the current occupant and resets the record for the next
// tenancy. The snapshot keeps the departed tenant's payment history readable
// for months that predate the next move-in.
func (s *PropertyService) Vacate(ctx context.Context, id string) (*models.Property, error) {
	property, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.Status != models.StatusOccupied {
		return nil, ErrNotVacatable
	}

	property.ArchivedTenant = property.Snapshot(s.clock.Now())
	property.Status = models.StatusVacant
	property.Tenant = ""
	property.Phone = ""
	property.Email = ""
	property.JoinDate = nil
	property.Rent = 0
	property.Advance = 0
	property.WaterRate = nil
	property.EvictionConfirmed = false
	property.PaymentHistory = models.StatusMap{}
	property.PaymentTotals = models.TotalMap{}
	property.WaterReadings = models.ReadingMap{}
	property.WaterMeterReset = models.ResetMap{}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete soft deletes an occupancy record
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.propertyRepo.Delete(ctx, id)
}
