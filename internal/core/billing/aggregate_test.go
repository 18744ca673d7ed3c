package billing

import (
	"testing"
	"time"

	"rentmate/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
)

func catalog(roomIDs ...string) []*models.Room {
	rooms := make([]*models.Room, 0, len(roomIDs))
	for i, id := range roomIDs {
		rooms = append(rooms, &models.Room{ID: uint(i + 1), RoomID: id, RoomNo: id})
	}
	return rooms
}

func TestRentCollected(t *testing.T) {
	total := 5138
	rooms := catalog("F1", "F2", "F3")
	occupancies := []*models.Property{
		{
			RoomID:         "F1",
			Rent:           5000,
			PaymentHistory: models.StatusMap{"2024-Mar": models.PaymentPaid},
			PaymentTotals:  models.TotalMap{"2024-Mar": total},
		},
		{
			RoomID:         "F2",
			Rent:           4500,
			PaymentHistory: models.StatusMap{"2024-Mar": models.PaymentPending},
		},
		// F3 has no occupancy record at all
	}

	assert.Equal(t, 5138, RentCollected(rooms, occupancies, 2024, time.March, june2024))
}

func TestRentCollectedPaidWithoutTotalFallsBackToRent(t *testing.T) {
	rooms := catalog("F1")
	occupancies := []*models.Property{
		{
			RoomID:         "F1",
			Rent:           5000,
			PaymentHistory: models.StatusMap{"2024-Mar": models.PaymentPaid},
		},
	}

	assert.Equal(t, 5000, RentCollected(rooms, occupancies, 2024, time.March, june2024))
}

func TestRentCollectedArchivedFallback(t *testing.T) {
	// The previous tenant paid January; the new tenant moved in later and
	// has no history for that month.
	rooms := catalog("F1")
	occupancies := []*models.Property{
		{
			RoomID:         "F1",
			Rent:           6000,
			PaymentHistory: models.StatusMap{},
			ArchivedTenant: &models.TenantSnapshot{
				Rent:           5400,
				PaymentHistory: models.StatusMap{"2024-Jan": models.PaymentPaid},
			},
		},
	}

	assert.Equal(t, 5400, RentCollected(rooms, occupancies, 2024, time.January, june2024))
}

func TestRentCollectedFutureMonthIsZero(t *testing.T) {
	rooms := catalog("F1")
	occupancies := []*models.Property{
		{
			RoomID:         "F1",
			Rent:           5000,
			PaymentHistory: models.StatusMap{"2024-Dec": models.PaymentPaid},
			PaymentTotals:  models.TotalMap{"2024-Dec": 5138},
		},
	}

	assert.Equal(t, 0, RentCollected(rooms, occupancies, 2024, time.December, june2024))
}

func TestRentCollectedNegativeTotalDegradesToZero(t *testing.T) {
	bad := -200
	rooms := catalog("F1")
	occupancies := []*models.Property{
		{
			RoomID:         "F1",
			Rent:           5000,
			PaymentHistory: models.StatusMap{"2024-Mar": models.PaymentPaid},
			PaymentTotals:  models.TotalMap{"2024-Mar": bad},
		},
	}

	assert.Equal(t, 0, RentCollected(rooms, occupancies, 2024, time.March, june2024))
}

func TestRentPending(t *testing.T) {
	rooms := catalog("F1", "F2")
	occupancies := []*models.Property{
		{
			RoomID:         "F1",
			Rent:           5000,
			PaymentHistory: models.StatusMap{"2024-Mar": models.PaymentPending},
		},
		{
			RoomID:         "F2",
			Rent:           4500,
			PaymentHistory: models.StatusMap{"2024-Mar": models.PaymentPaid},
			PaymentTotals:  models.TotalMap{"2024-Mar": 4600},
		},
	}

	assert.Equal(t, 5000, RentPending(rooms, occupancies, 2024, time.March, june2024))
	assert.Equal(t, 0, RentPending(rooms, occupancies, 2024, time.July, june2024), "future month")
}

func TestExpensesForMonth(t *testing.T) {
	expenses := []*models.Expense{
		{MonthKey: "2024-Mar", Amount: 1200},
		{MonthKey: "2024-Mar", Amount: 350.5},
		{MonthKey: "2024-Feb", Amount: 9999},
		{MonthKey: "2024-Mar", Amount: -50},
		nil,
	}

	assert.Equal(t, 1550.5, ExpensesForMonth(expenses, "2024-Mar"))
	assert.Equal(t, 0.0, ExpensesForMonth(expenses, "2024-Apr"))
}

func TestExpensesForMonthNotFutureLocked(t *testing.T) {
	// Prepaid expenses for a future month still count
	expenses := []*models.Expense{{MonthKey: "2024-Dec", Amount: 800}}
	assert.Equal(t, 800.0, ExpensesForMonth(expenses, "2024-Dec"))
}
