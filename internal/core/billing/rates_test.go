package billing

import (
	"testing"

	"rentmate/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
)

func TestRateTable(t *testing.T) {
	rates := NewRateTable(0.25, 0.35, []string{"204", " 205 ", ""})

	standard := &models.Property{RoomNo: "101", RoomID: "G1"}
	premium := &models.Property{RoomNo: "204", RoomID: "F4"}
	trimmed := &models.Property{RoomNo: " 205 ", RoomID: "F5"}

	assert.Equal(t, 0.25, rates.ForProperty(standard))
	assert.Equal(t, 0.35, rates.ForProperty(premium))
	assert.Equal(t, 0.35, rates.ForProperty(trimmed))
}

func TestRateTableOverride(t *testing.T) {
	rates := NewRateTable(0.25, 0.35, []string{"204"})

	override := 0.5
	p := &models.Property{RoomNo: "204", WaterRate: &override}
	assert.Equal(t, 0.5, rates.ForProperty(p), "per-occupancy rate beats the table")

	zero := 0.0
	p = &models.Property{RoomNo: "101", WaterRate: &zero}
	assert.Equal(t, 0.25, rates.ForProperty(p), "non-positive override is ignored")
}
