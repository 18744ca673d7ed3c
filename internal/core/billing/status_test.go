package billing

import (
	"testing"
	"time"

	"rentmate/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceCycle(t *testing.T) {
	assert.Equal(t, models.PaymentPending, Advance(models.PaymentNone))
	assert.Equal(t, models.PaymentRentOnly, Advance(models.PaymentPending))
	assert.Equal(t, models.PaymentPaid, Advance(models.PaymentRentOnly))
	assert.Equal(t, models.PaymentNone, Advance(models.PaymentPaid))
}

func TestAdvanceFourStepsReturnsToStart(t *testing.T) {
	for _, start := range []string{
		models.PaymentNone,
		models.PaymentPending,
		models.PaymentRentOnly,
		models.PaymentPaid,
	} {
		status := start
		for i := 0; i < 4; i++ {
			status = Advance(status)
		}
		assert.Equal(t, start, status, "cycle of length 4 from %q", start)
	}
}

func TestAdvanceUnknownValue(t *testing.T) {
	assert.Equal(t, models.PaymentPending, Advance("Partial"))
}

func TestPreparePaymentUpdateRejectsVacant(t *testing.T) {
	p := occupied(nil, nil)
	p.Status = models.StatusVacant

	_, err := PreparePaymentUpdate(p, 2024, time.March, 0.25, 100, june2024)
	assert.ErrorIs(t, err, ErrRoomNotOccupied)
}

func TestPreparePaymentUpdateRejectsFutureMonth(t *testing.T) {
	p := occupied(nil, nil)

	_, err := PreparePaymentUpdate(p, 2024, time.July, 0.25, 100, june2024)
	assert.ErrorIs(t, err, ErrFutureMonth)
}

func TestPreparePaymentUpdateToPending(t *testing.T) {
	p := occupied(nil, nil)

	update, err := PreparePaymentUpdate(p, 2024, time.March, 0.25, 100, june2024)
	require.NoError(t, err)

	assert.Equal(t, "2024-Mar", update.MonthKey)
	assert.Equal(t, models.PaymentPending, update.Status)
	assert.Nil(t, update.Total, "only Paid carries a total")
}

func TestPreparePaymentUpdatePaidRequiresWaterBill(t *testing.T) {
	p := occupied(nil, nil)
	p.PaymentHistory = models.StatusMap{"2024-Mar": models.PaymentRentOnly}

	_, err := PreparePaymentUpdate(p, 2024, time.March, 0.25, 100, june2024)
	assert.ErrorIs(t, err, ErrWaterBillIncomplete)
}

func TestPreparePaymentUpdatePaidRejectsNegativeConsumption(t *testing.T) {
	p := occupied(models.ReadingMap{"2024-Feb": 500, "2024-Mar": 10}, nil)
	p.PaymentHistory = models.StatusMap{"2024-Mar": models.PaymentRentOnly}

	_, err := PreparePaymentUpdate(p, 2024, time.March, 0.25, 100, june2024)
	assert.ErrorIs(t, err, ErrNegativeConsumption)
}

func TestPreparePaymentUpdateCommitsTotal(t *testing.T) {
	p := occupied(models.ReadingMap{"2024-Feb": 100, "2024-Mar": 115}, nil)
	p.PaymentHistory = models.StatusMap{"2024-Mar": models.PaymentRentOnly}

	update, err := PreparePaymentUpdate(p, 2024, time.March, 0.25, 100, june2024)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPaid, update.Status)
	require.NotNil(t, update.Total)
	// rent 5000 + water 38 + surcharge 100
	assert.Equal(t, 5138, *update.Total)
}

func TestPreparePaymentUpdatePaidToNoneClears(t *testing.T) {
	p := occupied(models.ReadingMap{"2024-Feb": 100, "2024-Mar": 115}, nil)
	p.PaymentHistory = models.StatusMap{"2024-Mar": models.PaymentPaid}

	update, err := PreparePaymentUpdate(p, 2024, time.March, 0.25, 100, june2024)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentNone, update.Status)
	assert.Nil(t, update.Total)
}

func TestPrepareWaterUpdate(t *testing.T) {
	p := occupied(nil, nil)
	reading := 115.0
	reset := true

	update, err := PrepareWaterUpdate(p, 2024, time.March, &reading, &reset, june2024)
	require.NoError(t, err)

	assert.Equal(t, "2024-Mar", update.MonthKey)
	require.NotNil(t, update.Reading)
	assert.Equal(t, 115.0, *update.Reading)
	require.NotNil(t, update.MeterReset)
	assert.True(t, *update.MeterReset)
}

func TestPrepareWaterUpdateGuards(t *testing.T) {
	reading := 10.0
	negative := -1.0

	vacant := occupied(nil, nil)
	vacant.Status = models.StatusVacant
	_, err := PrepareWaterUpdate(vacant, 2024, time.March, &reading, nil, june2024)
	assert.ErrorIs(t, err, ErrRoomNotOccupied)

	p := occupied(nil, nil)
	_, err = PrepareWaterUpdate(p, 2024, time.July, &reading, nil, june2024)
	assert.ErrorIs(t, err, ErrFutureMonth)

	_, err = PrepareWaterUpdate(p, 2024, time.March, &negative, nil, june2024)
	assert.ErrorIs(t, err, ErrWaterBillIncomplete)
}
