package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizationSchedule(t *testing.T) {
	schedule, err := AmortizationSchedule(36000, 18, 3)
	require.NoError(t, err)
	require.Len(t, schedule, 36)

	assert.Equal(t, 1, schedule[0].Month)
	assert.Equal(t, 36, schedule[35].Month)

	// first month interest is principal * monthly rate
	assert.InDelta(t, 36000*0.015, schedule[0].Interest, 0.01)

	// balance strictly decreases and ends at zero
	prev := 36000.0
	for _, entry := range schedule {
		assert.Less(t, entry.Balance, prev, "month %d", entry.Month)
		prev = entry.Balance
	}
	assert.Equal(t, 0.0, schedule[35].Balance)

	// each row splits its payment into interest plus principal
	for _, entry := range schedule {
		assert.InDelta(t, entry.Payment, entry.Interest+entry.Principal, 0.02, "month %d", entry.Month)
	}
}

func TestAmortizationScheduleZeroRate(t *testing.T) {
	schedule, err := AmortizationSchedule(24000, 0, 2)
	require.NoError(t, err)
	require.Len(t, schedule, 24)

	for _, entry := range schedule {
		assert.InDelta(t, 1000.0, entry.Payment, 0.01, "month %d", entry.Month)
		assert.Equal(t, 0.0, entry.Interest)
	}
	assert.Equal(t, 0.0, schedule[23].Balance)
}

func TestAmortizationScheduleTotalsMatchCalculator(t *testing.T) {
	principal, rate, years := 20000.0, 15.0, 2

	schedule, err := AmortizationSchedule(principal, rate, years)
	require.NoError(t, err)

	monthly, err := ComputeMonthlyPayment(principal, rate, years)
	require.NoError(t, err)

	var paid, interestPaid float64
	for _, entry := range schedule {
		paid += entry.Payment
		interestPaid += entry.Interest
	}

	assert.InDelta(t, monthly*float64(years*12), paid, 0.5)
	assert.InDelta(t, monthly*float64(years*12)-principal, interestPaid, 0.5)
}

func TestAmortizationScheduleInvalidInput(t *testing.T) {
	_, err := AmortizationSchedule(0, 10, 3)
	assert.ErrorIs(t, err, ErrInvalidPrincipal)

	_, err = AmortizationSchedule(10000, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
