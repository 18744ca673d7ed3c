package billing

import (
	"errors"
	"time"

	"rentmate/internal/adapters/persistence/models"
)

// Billing guard errors
var (
	ErrRoomNotOccupied     = errors.New("room is not occupied")
	ErrFutureMonth         = errors.New("month is in the future")
	ErrWaterBillIncomplete = errors.New("water readings missing or invalid for month")
	ErrNegativeConsumption = errors.New("negative water consumption cannot be billed")
)

// Advance returns the next payment status in the fixed cycle:
// None → Pending → Rent Only → Paid → None.
func Advance(current string) string {
	switch current {
	case models.PaymentNone:
		return models.PaymentPending
	case models.PaymentPending:
		return models.PaymentRentOnly
	case models.PaymentRentOnly:
		return models.PaymentPaid
	case models.PaymentPaid:
		return models.PaymentNone
	default:
		// Unknown stored value: restart the cycle rather than fail the edit.
		return models.PaymentPending
	}
}

// BillingUpdate is the atomic multi-field write produced by a successful
// status transition. Status == PaymentNone clears the month's history entry;
// Total is non-nil only when Status is Paid. History and total are always
// written together, which keeps the paid/total invariant by construction.
type BillingUpdate struct {
	MonthKey string
	Status   string
	Total    *int
}

// WaterUpdate records or clears a month's meter reading. A nil Reading
// clears the entry; a nil MeterReset leaves the flag untouched.
type WaterUpdate struct {
	MonthKey   string
	Reading    *float64
	MeterReset *bool
}

// PreparePaymentUpdate computes the candidate transition for the room's
// month and validates it. It refuses the edit when the room is not
// occupied, the month is in the future, or the target state is Paid and the
// water bill for the month cannot be computed (or shows negative
// consumption). On success it returns the single update the storage layer
// must apply atomically; no partial write ever happens.
func PreparePaymentUpdate(p *models.Property, year int, month time.Month, rate float64, surcharge int, clock Clock) (BillingUpdate, error) {
	if !IsOccupied(p) {
		return BillingUpdate{}, ErrRoomNotOccupied
	}
	if IsFutureMonth(year, month, clock) {
		return BillingUpdate{}, ErrFutureMonth
	}

	key := Key(year, month)
	next := Advance(p.PaymentHistory[key])

	switch next {
	case models.PaymentPaid:
		bill := ComputeWaterBill(p, year, month, rate)
		if bill.Amount == nil {
			return BillingUpdate{}, ErrWaterBillIncomplete
		}
		if *bill.Units < 0 {
			return BillingUpdate{}, ErrNegativeConsumption
		}
		// The committed total is the single source of truth for the
		// month's charge; later edits to rent or rate do not touch it.
		total := p.Rent + *bill.Amount + surcharge
		return BillingUpdate{MonthKey: key, Status: models.PaymentPaid, Total: &total}, nil

	case models.PaymentNone:
		return BillingUpdate{MonthKey: key, Status: models.PaymentNone}, nil

	default:
		return BillingUpdate{MonthKey: key, Status: next}, nil
	}
}

// PrepareWaterUpdate validates a meter reading entry for the room's month.
// Readings must be non-negative and may not be recorded for future months
// or for rooms that are not occupied.
func PrepareWaterUpdate(p *models.Property, year int, month time.Month, reading *float64, meterReset *bool, clock Clock) (WaterUpdate, error) {
	if !IsOccupied(p) {
		return WaterUpdate{}, ErrRoomNotOccupied
	}
	if IsFutureMonth(year, month, clock) {
		return WaterUpdate{}, ErrFutureMonth
	}
	if reading != nil && *reading < 0 {
		return WaterUpdate{}, ErrWaterBillIncomplete
	}
	return WaterUpdate{MonthKey: Key(year, month), Reading: reading, MeterReset: meterReset}, nil
}
