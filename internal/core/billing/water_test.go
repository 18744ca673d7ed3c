package billing

import (
	"testing"
	"time"

	"rentmate/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupied(readings models.ReadingMap, resets models.ResetMap) *models.Property {
	return &models.Property{
		ID:              "p1",
		RoomID:          "F1",
		RoomNo:          "201",
		Status:          models.StatusOccupied,
		Rent:            5000,
		WaterReadings:   readings,
		WaterMeterReset: resets,
	}
}

func TestComputeWaterBillMeterReset(t *testing.T) {
	p := occupied(
		models.ReadingMap{"2024-Mar": 120},
		models.ResetMap{"2024-Mar": true},
	)

	bill := ComputeWaterBill(p, 2024, time.March, 0.25)

	require.NotNil(t, bill.Units)
	require.NotNil(t, bill.Amount)
	assert.Equal(t, 1200.0, *bill.Units)
	assert.Equal(t, 300, *bill.Amount)
	assert.True(t, bill.MeterReset)
	assert.Nil(t, bill.PreviousReading, "reset months bill from zero")
	assert.True(t, bill.Billable())
}

func TestComputeWaterBillDelta(t *testing.T) {
	p := occupied(
		models.ReadingMap{"2024-Feb": 100, "2024-Mar": 115},
		nil,
	)

	bill := ComputeWaterBill(p, 2024, time.March, 0.25)

	require.NotNil(t, bill.Units)
	require.NotNil(t, bill.Amount)
	assert.Equal(t, 150.0, *bill.Units)
	// 150 * 0.25 = 37.5 rounds half up
	assert.Equal(t, 38, *bill.Amount)
	assert.True(t, bill.Billable())
}

func TestComputeWaterBillMissingPrevious(t *testing.T) {
	p := occupied(models.ReadingMap{"2024-Mar": 115}, nil)

	bill := ComputeWaterBill(p, 2024, time.March, 0.25)

	assert.Nil(t, bill.Units)
	assert.Nil(t, bill.Amount)
	assert.NotNil(t, bill.CurrentReading)
	assert.Nil(t, bill.PreviousReading)
	assert.False(t, bill.Billable())
}

func TestComputeWaterBillMissingCurrent(t *testing.T) {
	p := occupied(models.ReadingMap{"2024-Feb": 100}, nil)

	bill := ComputeWaterBill(p, 2024, time.March, 0.25)

	assert.Nil(t, bill.Units)
	assert.Nil(t, bill.Amount)
	assert.False(t, bill.Billable())
}

func TestComputeWaterBillResetWithoutReading(t *testing.T) {
	p := occupied(nil, models.ResetMap{"2024-Mar": true})

	bill := ComputeWaterBill(p, 2024, time.March, 0.25)

	assert.True(t, bill.MeterReset)
	assert.Nil(t, bill.Units)
	assert.Nil(t, bill.Amount)
}

func TestComputeWaterBillNegativeConsumption(t *testing.T) {
	// Meter replaced without the reset flag: current below previous
	p := occupied(models.ReadingMap{"2024-Feb": 500, "2024-Mar": 10}, nil)

	bill := ComputeWaterBill(p, 2024, time.March, 0.25)

	require.NotNil(t, bill.Units)
	assert.Equal(t, -4900.0, *bill.Units)
	require.NotNil(t, bill.Amount)
	assert.False(t, bill.Billable(), "negative consumption is reported but never billable")
}

func TestComputeWaterBillNegativeHalfRoundsUp(t *testing.T) {
	// Half up is not half away from zero: -150 units at 0.25 is -37.5,
	// which rounds up to -37.
	p := occupied(models.ReadingMap{"2024-Feb": 115, "2024-Mar": 100}, nil)

	bill := ComputeWaterBill(p, 2024, time.March, 0.25)

	require.NotNil(t, bill.Units)
	assert.Equal(t, -150.0, *bill.Units)
	require.NotNil(t, bill.Amount)
	assert.Equal(t, -37, *bill.Amount)
}

func TestComputeWaterBillJanuaryReadsDecember(t *testing.T) {
	p := occupied(models.ReadingMap{"2023-Dec": 80, "2024-Jan": 90}, nil)

	bill := ComputeWaterBill(p, 2024, time.January, 0.25)

	require.NotNil(t, bill.Units)
	assert.Equal(t, 100.0, *bill.Units)
	assert.Equal(t, 25, *bill.Amount)
}

func TestComputeWaterBillDeterministic(t *testing.T) {
	p := occupied(models.ReadingMap{"2024-Feb": 100, "2024-Mar": 115}, nil)

	a := ComputeWaterBill(p, 2024, time.March, 0.25)
	b := ComputeWaterBill(p, 2024, time.March, 0.25)

	assert.Equal(t, a, b)
}
