package billing

import (
	"strings"

	"rentmate/internal/adapters/persistence/models"
)

// FindOccupancy returns the occupancy bound to the room, matching on either
// identifier scheme (canonical room id or display room number) with trimmed
// equality. Historical data mixes the two schemes, so resolution tolerates
// both. If several records match, the first in iteration order wins.
func FindOccupancy(occupancies []*models.Property, roomID string) *models.Property {
	target := strings.TrimSpace(roomID)
	if target == "" {
		return nil
	}
	for _, p := range occupancies {
		if p == nil {
			continue
		}
		if strings.TrimSpace(p.RoomID) == target || strings.TrimSpace(p.RoomNo) == target {
			return p
		}
	}
	return nil
}

// IsOccupied reports whether the occupancy gates billing mutation.
// Exact, case-sensitive match; "Occupied" is the only billable status.
func IsOccupied(p *models.Property) bool {
	return p != nil && p.Status == models.StatusOccupied
}

// BillingSource is the record a month's billing facts are read from: the
// live occupancy, or the archived previous tenant when the month predates
// the current tenancy. Resolving it once per room/month keeps the
// "which record has data" conditional out of every call site.
type BillingSource struct {
	Status   string
	Rent     int
	Total    *int
	Archived bool
}

// ResolveBillingSource selects the record that holds the month's payment
// facts. The live occupancy wins whenever it has any entry for the month;
// the archived snapshot is consulted only as a fallback.
func ResolveBillingSource(p *models.Property, monthKey string) BillingSource {
	if p == nil {
		return BillingSource{}
	}

	if status, ok := p.PaymentHistory[monthKey]; ok && status != models.PaymentNone {
		src := BillingSource{Status: status, Rent: p.Rent}
		if total, ok := p.PaymentTotals[monthKey]; ok {
			src.Total = &total
		}
		return src
	}

	a := p.ArchivedTenant
	if a == nil {
		return BillingSource{Rent: p.Rent}
	}
	status := a.PaymentHistory[monthKey]
	if status == models.PaymentNone {
		return BillingSource{Rent: p.Rent}
	}
	src := BillingSource{Status: status, Rent: a.Rent, Archived: true}
	if total, ok := a.PaymentTotals[monthKey]; ok {
		src.Total = &total
	}
	return src
}
