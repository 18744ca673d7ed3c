package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotFreezesBillingFacts(t *testing.T) {
	joined := time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)
	p := &Property{
		RoomID:          "F1",
		RoomNo:          "201",
		Tenant:          "Arun",
		Phone:           "5550001",
		Rent:            5400,
		JoinDate:        &joined,
		PaymentHistory:  StatusMap{"2024-Jan": PaymentPaid},
		PaymentTotals:   TotalMap{"2024-Jan": 5538},
		WaterReadings:   ReadingMap{"2024-Jan": 120},
		WaterMeterReset: ResetMap{"2024-Jan": true},
	}

	// The caller supplies the turnover time, so snapshots are deterministic
	vacatedAt := time.Date(2024, time.February, 3, 9, 30, 0, 0, time.UTC)
	snap := p.Snapshot(vacatedAt)

	require.NotNil(t, snap.VacatedAt)
	assert.Equal(t, vacatedAt, *snap.VacatedAt)
	assert.Equal(t, "Arun", snap.Tenant)
	assert.Equal(t, 5400, snap.Rent)
	assert.Equal(t, &joined, snap.JoinDate)
	assert.Equal(t, PaymentPaid, snap.PaymentHistory["2024-Jan"])
	assert.Equal(t, 5538, snap.PaymentTotals["2024-Jan"])
	assert.Equal(t, 120.0, snap.WaterReadings["2024-Jan"])
	assert.True(t, snap.WaterMeterReset["2024-Jan"])
}
