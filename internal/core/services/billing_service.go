package services

import (
	"context"
	"errors"
	"time"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/billing"

	"gorm.io/gorm"
)

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPropertyNotFound
	}
	return err
}

// BillingService handles per-month payment and water operations on one
// occupancy record. All guard logic lives in the billing package; this
// service resolves the record, the rate, and hands the prepared update to
// the repository for the atomic write.
type BillingService struct {
	propertyRepo *repositories.PropertyRepository
	rates        billing.RateTable
	surcharge    int
	clock        billing.Clock
}

// NewBillingService creates a new billing service
func NewBillingService(propertyRepo *repositories.PropertyRepository, rates billing.RateTable, surcharge int, clock billing.Clock) *BillingService {
	return &BillingService{
		propertyRepo: propertyRepo,
		rates:        rates,
		surcharge:    surcharge,
		clock:        clock,
	}
}

// PaymentStatusResult reports the outcome of one status advance
type PaymentStatusResult struct {
	MonthKey string `json:"month_key"`
	Status   string `json:"status"`
	Total    *int   `json:"total,omitempty"`
}

// AdvancePaymentStatus moves the room's month to the next payment state.
// Reaching Paid commits the month's total (rent + water + utility
// surcharge); cycling back to None clears the month entirely.
func (s *BillingService) AdvancePaymentStatus(ctx context.Context, propertyID string, year int, month time.Month) (*PaymentStatusResult, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	update, err := billing.PreparePaymentUpdate(property, year, month, s.rates.ForProperty(property), s.surcharge, s.clock)
	if err != nil {
		return nil, err
	}

	if err := s.propertyRepo.ApplyBillingUpdate(ctx, property.ID, update); err != nil {
		return nil, err
	}

	return &PaymentStatusResult{
		MonthKey: update.MonthKey,
		Status:   update.Status,
		Total:    update.Total,
	}, nil
}

// RecordWaterReading stores the month's meter reading (nil clears it) and
// optionally flips the meter-reset flag, then returns the recomputed bill.
func (s *BillingService) RecordWaterReading(ctx context.Context, propertyID string, year int, month time.Month, reading *float64, meterReset *bool) (*billing.WaterBill, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	update, err := billing.PrepareWaterUpdate(property, year, month, reading, meterReset, s.clock)
	if err != nil {
		return nil, err
	}

	if err := s.propertyRepo.ApplyWaterUpdate(ctx, property.ID, update); err != nil {
		return nil, err
	}

	// Recompute from the mutated record for the response
	if property.WaterReadings == nil {
		property.WaterReadings = map[string]float64{}
	}
	if update.Reading != nil {
		property.WaterReadings[update.MonthKey] = *update.Reading
	} else {
		delete(property.WaterReadings, update.MonthKey)
	}
	if update.MeterReset != nil {
		if property.WaterMeterReset == nil {
			property.WaterMeterReset = map[string]bool{}
		}
		if *update.MeterReset {
			property.WaterMeterReset[update.MonthKey] = true
		} else {
			delete(property.WaterMeterReset, update.MonthKey)
		}
	}

	bill := billing.ComputeWaterBill(property, year, month, s.rates.ForProperty(property))
	return &bill, nil
}

// GetWaterBill computes the month's water bill without mutating anything.
// Works for any month, future included, so upcoming charges can be previewed.
func (s *BillingService) GetWaterBill(ctx context.Context, propertyID string, year int, month time.Month) (*billing.WaterBill, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	bill := billing.ComputeWaterBill(property, year, month, s.rates.ForProperty(property))
	return &bill, nil
}
