package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"rentmate/internal/adapters/persistence/models"
)

// UnitMultiplier converts a meter display delta into billable units
// (the meter shows kilo-liters at one-tenth resolution).
const UnitMultiplier = 10

// WaterBill is the computed water charge for one room and month.
// Units and Amount are nil when the required readings are missing; a bill
// with nil Amount cannot be committed at the Paid gate.
type WaterBill struct {
	MonthKey        string   `json:"month_key"`
	CurrentReading  *float64 `json:"current_reading"`
	PreviousReading *float64 `json:"previous_reading"`
	Units           *float64 `json:"units"`
	Amount          *int     `json:"amount"`
	Rate            float64  `json:"rate"`
	MeterReset      bool     `json:"meter_reset"`
}

// Billable reports whether the bill can back a Paid transition.
// Negative consumption is surfaced for inspection but never billed.
func (b WaterBill) Billable() bool {
	return b.Amount != nil && b.Units != nil && *b.Units >= 0
}

// ComputeWaterBill computes consumption and cost for the occupancy's target
// month from its recorded meter readings.
//
// When the month is flagged as a meter reset, the current reading is billed
// from zero. Otherwise both the current and the previous month's readings
// are required and consumption is their delta. The delta may be negative
// (meter replaced without the reset flag); the calculator reports it as-is
// and leaves the decision to the caller.
func ComputeWaterBill(p *models.Property, year int, month time.Month, rate float64) WaterBill {
	curKey := Key(year, month)
	prevKey := PreviousKey(year, month)

	bill := WaterBill{
		MonthKey:   curKey,
		Rate:       rate,
		MeterReset: p.WaterMeterReset[curKey],
	}

	cur, curOK := p.WaterReadings[curKey]
	if curOK {
		bill.CurrentReading = &cur
	}

	if bill.MeterReset {
		if !curOK {
			return bill
		}
		units := cur * UnitMultiplier
		bill.Units = &units
		bill.Amount = roundAmount(units, rate)
		return bill
	}

	prev, prevOK := p.WaterReadings[prevKey]
	if prevOK {
		bill.PreviousReading = &prev
	}
	if !curOK || !prevOK {
		return bill
	}

	units := (cur - prev) * UnitMultiplier
	bill.Units = &units
	bill.Amount = roundAmount(units, rate)
	return bill
}

// roundAmount rounds units × rate half up to the nearest whole amount:
// floor(x + 0.5), so 37.5 becomes 38 and -37.5 becomes -37. Decimal math
// keeps 37.5 from drifting to 37.499... before rounding.
func roundAmount(units, rate float64) *int {
	amount := decimal.NewFromFloat(units).
		Mul(decimal.NewFromFloat(rate)).
		Add(decimal.NewFromFloat(0.5)).
		Floor()
	n := int(amount.IntPart())
	return &n
}
