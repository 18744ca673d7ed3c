package billing

import (
	"time"

	"rentmate/internal/adapters/persistence/models"
)

// RentCollected sums the committed charge of every room whose month is
// marked Paid, falling back to the archived tenant's facts for months that
// predate the current tenancy. Future months short-circuit to zero so the
// dashboard never implies collection that has not happened.
func RentCollected(rooms []*models.Room, occupancies []*models.Property, year int, month time.Month, clock Clock) int {
	if IsFutureMonth(year, month, clock) {
		return 0
	}
	key := Key(year, month)

	total := 0
	for _, room := range rooms {
		src := ResolveBillingSource(FindOccupancy(occupancies, room.RoomID), key)
		if src.Status == models.PaymentPaid {
			total += lenientAmount(src.Total, src.Rent)
		}
	}
	return total
}

// RentPending sums the base rent of every room whose month is marked
// Pending. Pending months have no committed total by construction, so the
// rent of whichever record supplied the status is used.
func RentPending(rooms []*models.Room, occupancies []*models.Property, year int, month time.Month, clock Clock) int {
	if IsFutureMonth(year, month, clock) {
		return 0
	}
	key := Key(year, month)

	total := 0
	for _, room := range rooms {
		src := ResolveBillingSource(FindOccupancy(occupancies, room.RoomID), key)
		if src.Status == models.PaymentPending {
			total += lenientAmount(nil, src.Rent)
		}
	}
	return total
}

// ExpensesForMonth sums the ledger entries recorded under the month key.
// Expenses are independent of rent billing state and are not subject to the
// future-month lock.
func ExpensesForMonth(expenses []*models.Expense, monthKey string) float64 {
	var total float64
	for _, e := range expenses {
		if e == nil || e.MonthKey != monthKey {
			continue
		}
		if e.Amount > 0 {
			total += e.Amount
		}
	}
	return total
}

// lenientAmount resolves the amount a Paid or Pending month contributes.
// The committed total wins when present; otherwise the base rent stands in,
// and malformed (negative) values degrade to zero so one bad record never
// fails the whole aggregation.
func lenientAmount(total *int, rent int) int {
	if total != nil {
		if *total < 0 {
			return 0
		}
		return *total
	}
	if rent < 0 {
		return 0
	}
	return rent
}
