package services

import (
	"context"
	"time"

	"rentmate/internal/adapters/persistence/models"
	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/billing"
)

// DashboardService assembles the monthly overview the frontend renders
type DashboardService struct {
	propertyRepo *repositories.PropertyRepository
	roomRepo     *repositories.RoomRepository
	expenseRepo  *repositories.ExpenseRepository
	rates        billing.RateTable
	clock        billing.Clock
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	propertyRepo *repositories.PropertyRepository,
	roomRepo *repositories.RoomRepository,
	expenseRepo *repositories.ExpenseRepository,
	rates billing.RateTable,
	clock billing.Clock,
) *DashboardService {
	return &DashboardService{
		propertyRepo: propertyRepo,
		roomRepo:     roomRepo,
		expenseRepo:  expenseRepo,
		rates:        rates,
		clock:        clock,
	}
}

// ============================================================
// Monthly Dashboard
// ============================================================

// RoomCard is the per-room slice of the monthly dashboard
type RoomCard struct {
	RoomNo        string   `json:"room_no"`
	RoomID        string   `json:"room_id"`
	Tenant        string   `json:"tenant,omitempty"`
	Status        string   `json:"status"`
	Rent          int      `json:"rent"`
	PaymentStatus string   `json:"payment_status"`
	PaidTotal     *int     `json:"paid_total,omitempty"`
	WaterUnits    *float64 `json:"water_units,omitempty"`
	WaterAmount   *int     `json:"water_amount,omitempty"`
	MeterReset    bool     `json:"meter_reset"`
	FromArchive   bool     `json:"from_archive"`
}

// MonthlyDashboardData represents one month's dashboard
type MonthlyDashboardData struct {
	MonthKey      string     `json:"month_key"`
	Label         string     `json:"label"`
	FutureMonth   bool       `json:"future_month"`
	RentCollected int        `json:"rent_collected"`
	RentPending   int        `json:"rent_pending"`
	Expenses      float64    `json:"expenses"`
	OccupiedRooms int        `json:"occupied_rooms"`
	VacantRooms   int        `json:"vacant_rooms"`
	Rooms         []RoomCard `json:"rooms"`
}

// GetMonthlyDashboard returns the dashboard for one month
func (s *DashboardService) GetMonthlyDashboard(ctx context.Context, year int, month time.Month) (*MonthlyDashboardData, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	key := billing.Key(year, month)
	expenses, err := s.expenseRepo.ListByMonthKey(ctx, key)
	if err != nil {
		return nil, err
	}

	data := &MonthlyDashboardData{
		MonthKey:      key,
		Label:         billing.Label(year, month),
		FutureMonth:   billing.IsFutureMonth(year, month, s.clock),
		RentCollected: billing.RentCollected(rooms, properties, year, month, s.clock),
		RentPending:   billing.RentPending(rooms, properties, year, month, s.clock),
		Expenses:      billing.ExpensesForMonth(expenses, key),
		Rooms:         make([]RoomCard, 0, len(rooms)),
	}

	for _, room := range rooms {
		property := billing.FindOccupancy(properties, room.RoomID)
		card := RoomCard{
			RoomNo: room.RoomNo,
			RoomID: room.RoomID,
			Status: models.StatusVacant,
		}

		if property != nil {
			card.Status = property.Status
			card.Tenant = property.Tenant
			card.Rent = property.Rent

			src := billing.ResolveBillingSource(property, key)
			card.PaymentStatus = src.Status
			card.PaidTotal = src.Total
			card.FromArchive = src.Archived
			if src.Archived {
				card.Rent = src.Rent
			}

			bill := billing.ComputeWaterBill(property, year, month, s.rates.ForProperty(property))
			card.WaterUnits = bill.Units
			card.WaterAmount = bill.Amount
			card.MeterReset = bill.MeterReset
		}

		if billing.IsOccupied(property) {
			data.OccupiedRooms++
		} else {
			data.VacantRooms++
		}

		data.Rooms = append(data.Rooms, card)
	}

	return data, nil
}

// ============================================================
// Year Summary
// ============================================================

// MonthSummary is one row of the year summary
type MonthSummary struct {
	MonthKey      string  `json:"month_key"`
	Label         string  `json:"label"`
	RentCollected int     `json:"rent_collected"`
	RentPending   int     `json:"rent_pending"`
	Expenses      float64 `json:"expenses"`
	Net           float64 `json:"net"`
}

// YearSummaryData represents the twelve-month rollup for one year
type YearSummaryData struct {
	Year          int            `json:"year"`
	RentCollected int            `json:"rent_collected"`
	Expenses      float64        `json:"expenses"`
	Net           float64        `json:"net"`
	Months        []MonthSummary `json:"months"`
}

// GetYearSummary returns collected/pending/expense figures for each month of
// the year. Future months contribute zero rent by construction.
func (s *DashboardService) GetYearSummary(ctx context.Context, year int) (*YearSummaryData, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	data := &YearSummaryData{
		Year:   year,
		Months: make([]MonthSummary, 0, 12),
	}

	for month := time.January; month <= time.December; month++ {
		key := billing.Key(year, month)
		expenses, err := s.expenseRepo.ListByMonthKey(ctx, key)
		if err != nil {
			return nil, err
		}

		row := MonthSummary{
			MonthKey:      key,
			Label:         billing.Label(year, month),
			RentCollected: billing.RentCollected(rooms, properties, year, month, s.clock),
			RentPending:   billing.RentPending(rooms, properties, year, month, s.clock),
			Expenses:      billing.ExpensesForMonth(expenses, key),
		}
		row.Net = float64(row.RentCollected) - row.Expenses

		data.RentCollected += row.RentCollected
		data.Expenses += row.Expenses
		data.Months = append(data.Months, row)
	}

	data.Net = float64(data.RentCollected) - data.Expenses
	return data, nil
}
