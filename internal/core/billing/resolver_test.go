package billing

import (
	"testing"

	"rentmate/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOccupancy(t *testing.T) {
	a := &models.Property{ID: "a", RoomID: "F1", RoomNo: "201"}
	b := &models.Property{ID: "b", RoomID: "F2", RoomNo: "202"}
	occupancies := []*models.Property{a, b}

	assert.Same(t, a, FindOccupancy(occupancies, "F1"), "matches on room id")
	assert.Same(t, b, FindOccupancy(occupancies, "202"), "matches on room number")
	assert.Same(t, a, FindOccupancy(occupancies, "  F1  "), "input is trimmed")
	assert.Nil(t, FindOccupancy(occupancies, "F9"))
	assert.Nil(t, FindOccupancy(occupancies, ""))
	assert.Nil(t, FindOccupancy(occupancies, "   "))
}

func TestFindOccupancyTrimsStoredValues(t *testing.T) {
	a := &models.Property{ID: "a", RoomID: " F1 ", RoomNo: "201"}
	assert.Same(t, a, FindOccupancy([]*models.Property{a}, "F1"))
}

func TestFindOccupancyFirstMatchWins(t *testing.T) {
	first := &models.Property{ID: "first", RoomID: "F1"}
	second := &models.Property{ID: "second", RoomID: "F1"}

	got := FindOccupancy([]*models.Property{first, second}, "F1")
	assert.Same(t, first, got)
}

func TestIsOccupied(t *testing.T) {
	assert.True(t, IsOccupied(&models.Property{Status: models.StatusOccupied}))
	assert.False(t, IsOccupied(&models.Property{Status: models.StatusVacant}))
	assert.False(t, IsOccupied(&models.Property{Status: "occupied"}), "status match is case sensitive")
	assert.False(t, IsOccupied(&models.Property{Status: "Occupied "}))
	assert.False(t, IsOccupied(nil))
}

func TestResolveBillingSourceLiveEntryWins(t *testing.T) {
	total := 5138
	p := &models.Property{
		Rent:           5000,
		PaymentHistory: models.StatusMap{"2024-Mar": models.PaymentPaid},
		PaymentTotals:  models.TotalMap{"2024-Mar": total},
		ArchivedTenant: &models.TenantSnapshot{
			Rent:           4000,
			PaymentHistory: models.StatusMap{"2024-Mar": models.PaymentPaid},
		},
	}

	src := ResolveBillingSource(p, "2024-Mar")

	assert.Equal(t, models.PaymentPaid, src.Status)
	assert.Equal(t, 5000, src.Rent)
	require.NotNil(t, src.Total)
	assert.Equal(t, total, *src.Total)
	assert.False(t, src.Archived)
}

func TestResolveBillingSourceArchivedFallback(t *testing.T) {
	p := &models.Property{
		Rent:           5000,
		PaymentHistory: models.StatusMap{},
		ArchivedTenant: &models.TenantSnapshot{
			Rent:           5400,
			PaymentHistory: models.StatusMap{"2024-Jan": models.PaymentPaid},
			PaymentTotals:  models.TotalMap{},
		},
	}

	src := ResolveBillingSource(p, "2024-Jan")

	assert.Equal(t, models.PaymentPaid, src.Status)
	assert.Equal(t, 5400, src.Rent)
	assert.Nil(t, src.Total)
	assert.True(t, src.Archived)
}

func TestResolveBillingSourceNoHistory(t *testing.T) {
	p := &models.Property{Rent: 5000}

	src := ResolveBillingSource(p, "2024-Mar")

	assert.Equal(t, models.PaymentNone, src.Status)
	assert.Equal(t, 5000, src.Rent)
	assert.False(t, src.Archived)

	assert.Equal(t, BillingSource{}, ResolveBillingSource(nil, "2024-Mar"))
}
