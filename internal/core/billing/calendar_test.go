package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedClock pins "now" for deterministic future-month checks
type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

var june2024 = fixedClock(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC))

func TestKey(t *testing.T) {
	assert.Equal(t, "2024-Mar", Key(2024, time.March))
	assert.Equal(t, "2024-Jan", Key(2024, time.January))
	assert.Equal(t, "1999-Dec", Key(1999, time.December))
}

func TestKeyInjective(t *testing.T) {
	// No two (year, month) pairs may collide
	seen := map[string]bool{}
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			key := Key(year, month)
			assert.False(t, seen[key], "duplicate key %s", key)
			seen[key] = true
		}
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Mar 2024", Label(2024, time.March))
}

func TestPreviousKey(t *testing.T) {
	assert.Equal(t, "2024-Feb", PreviousKey(2024, time.March))
	// January rolls over to December of the previous year
	assert.Equal(t, "2023-Dec", PreviousKey(2024, time.January))
}

func TestIsFutureMonth(t *testing.T) {
	assert.False(t, IsFutureMonth(2024, time.June, june2024), "current month is not future")
	assert.False(t, IsFutureMonth(2024, time.May, june2024))
	assert.False(t, IsFutureMonth(2023, time.December, june2024))

	assert.True(t, IsFutureMonth(2024, time.July, june2024))
	assert.True(t, IsFutureMonth(2025, time.January, june2024))
}
