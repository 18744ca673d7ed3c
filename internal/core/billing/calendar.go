package billing

import (
	"fmt"
	"time"
)

// Clock supplies the current time. Injected so the future-month lock is
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall-clock implementation used in production wiring
var SystemClock Clock = systemClock{}

// monthAbbr is the fixed abbreviation table month keys are built from.
// Indexed by time.Month - 1.
var monthAbbr = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Key returns the stable month key for (year, month), e.g. "2024-Mar".
// Keys are the sole addressing scheme for per-month billing facts and are
// never parsed back outside this package.
func Key(year int, month time.Month) string {
	return fmt.Sprintf("%d-%s", year, monthAbbr[month-1])
}

// Label returns the human display label, e.g. "Mar 2024"
func Label(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthAbbr[month-1], year)
}

// PreviousKey returns the key of the chronologically preceding month,
// rolling the year over in January.
func PreviousKey(year int, month time.Month) string {
	if month == time.January {
		return Key(year-1, time.December)
	}
	return Key(year, month-1)
}

// IsFutureMonth reports whether (year, month) is strictly later than the
// clock's current month. Future months are locked against billing mutation
// and contribute zero to aggregation.
func IsFutureMonth(year int, month time.Month, clock Clock) bool {
	now := clock.Now()
	if year != now.Year() {
		return year > now.Year()
	}
	return month > now.Month()
}
