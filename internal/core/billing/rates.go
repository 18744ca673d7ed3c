package billing

import (
	"strings"

	"rentmate/internal/adapters/persistence/models"
)

// RateTable resolves the effective per-unit water rate for a room.
// A small fixed set of rooms carries a higher default rate; everything
// else uses the standard rate. An occupancy's own WaterRate overrides both.
// This is static configuration, loaded once at startup.
type RateTable struct {
	Standard     float64
	Premium      float64
	PremiumRooms map[string]bool
}

// NewRateTable builds a rate table from the configured premium room list
func NewRateTable(standard, premium float64, premiumRooms []string) RateTable {
	set := make(map[string]bool, len(premiumRooms))
	for _, r := range premiumRooms {
		r = strings.TrimSpace(r)
		if r != "" {
			set[r] = true
		}
	}
	return RateTable{Standard: standard, Premium: premium, PremiumRooms: set}
}

// ForProperty returns the per-unit rate to bill the occupancy at
func (t RateTable) ForProperty(p *models.Property) float64 {
	if p.WaterRate != nil && *p.WaterRate > 0 {
		return *p.WaterRate
	}
	if t.PremiumRooms[strings.TrimSpace(p.RoomNo)] || t.PremiumRooms[strings.TrimSpace(p.RoomID)] {
		return t.Premium
	}
	return t.Standard
}
