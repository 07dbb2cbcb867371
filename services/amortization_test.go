package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		expected  float64
	}{
		{"three year mid rate", 30000, 12.0, 3, 996.43},
		{"one year low rate", 50000, 8.0, 1, 4349.42},
		{"five year high rate", 25000, 24.0, 5, 719.20},
		{"single month equivalent", 12000, 0.0, 1, 1000.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeMonthlyPayment(tt.principal, tt.rate, tt.years)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

// The closed-form result must agree with an independent arrangement of the
// annuity formula.
func TestComputeMonthlyPaymentCrossCheck(t *testing.T) {
	principal := 37500.0
	rate := 15.5
	years := 4

	got, err := ComputeMonthlyPayment(principal, rate, years)
	require.NoError(t, err)

	r := rate / 100 / 12
	n := float64(years * 12)
	factor := math.Pow(1+r, n)
	alt := principal * r * factor / (factor - 1)

	assert.InDelta(t, alt, got, 1e-9)
}

func TestComputeMonthlyPaymentZeroRate(t *testing.T) {
	got, err := ComputeMonthlyPayment(36000, 0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, got, 1e-9)

	// approaching zero from above must converge to the linear result
	nearZero, err := ComputeMonthlyPayment(36000, 1e-9, 3)
	require.NoError(t, err)
	assert.InDelta(t, got, nearZero, 0.01)
}

func TestComputeMonthlyPaymentValidation(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		wantErr   error
	}{
		{"zero principal", 0, 10, 3, ErrInvalidPrincipal},
		{"negative principal", -5000, 10, 3, ErrInvalidPrincipal},
		{"NaN principal", math.NaN(), 10, 3, ErrInvalidPrincipal},
		{"infinite principal", math.Inf(1), 10, 3, ErrInvalidPrincipal},
		{"zero duration", 10000, 10, 0, ErrInvalidDuration},
		{"negative duration", 10000, 10, -2, ErrInvalidDuration},
		{"negative rate", 10000, -1, 3, ErrInvalidRate},
		{"NaN rate", 10000, math.NaN(), 3, ErrInvalidRate},
		{"infinite rate", 10000, math.Inf(1), 3, ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeMonthlyPayment(tt.principal, tt.rate, tt.years)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Payment must grow with the rate and shrink with the term.
func TestComputeMonthlyPaymentMonotonicity(t *testing.T) {
	prev := 0.0
	for _, rate := range []float64{0, 5, 10, 15, 20, 30} {
		got, err := ComputeMonthlyPayment(20000, rate, 3)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "payment should rise with rate %v", rate)
		prev = got
	}

	prev = math.Inf(1)
	for years := 1; years <= 7; years++ {
		got, err := ComputeMonthlyPayment(20000, 12, years)
		require.NoError(t, err)
		assert.Less(t, got, prev, "payment should fall as term grows to %d years", years)
		prev = got
	}
}

func TestComputeAmortization(t *testing.T) {
	result, err := ComputeAmortization(45000, 18, 3, 9000)
	require.NoError(t, err)

	assert.InDelta(t, 36000.0, result.FinancedAmount, 1e-9)
	assert.Equal(t, 36, result.TotalPayments)

	monthly, err := ComputeMonthlyPayment(36000, 18, 3)
	require.NoError(t, err)
	assert.InDelta(t, monthly, result.MonthlyPayment, 1e-9)

	installments := monthly * 36
	assert.InDelta(t, installments+9000, result.TotalAmount, 1e-9)
	assert.InDelta(t, installments-36000, result.TotalInterest, 1e-9)
	assert.Greater(t, result.TotalInterest, 0.0)
}

func TestComputeAmortizationZeroRate(t *testing.T) {
	result, err := ComputeAmortization(24000, 0, 2, 0)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, result.MonthlyPayment, 1e-9)
	assert.InDelta(t, 24000.0, result.TotalAmount, 1e-9)
	assert.InDelta(t, 0.0, result.TotalInterest, 1e-9)
}

func TestComputeAmortizationValidation(t *testing.T) {
	_, err := ComputeAmortization(10000, 10, 3, -1)
	assert.ErrorIs(t, err, ErrInvalidPrincipal)

	// down payment covering the full price leaves nothing to finance
	_, err = ComputeAmortization(10000, 10, 3, 10000)
	assert.ErrorIs(t, err, ErrInvalidPrincipal)

	_, err = ComputeAmortization(10000, 10, 3, 15000)
	assert.ErrorIs(t, err, ErrInvalidPrincipal)
}

func TestResolveActiveRate(t *testing.T) {
	table := []InterestRateRecord{
		{DurationYears: 1, RatePercent: 18.0, IsActive: true},
		{DurationYears: 2, RatePercent: 21.0, IsActive: false},
		{DurationYears: 3, RatePercent: 24.0, IsActive: true},
	}

	rate, err := ResolveActiveRate(1, table)
	require.NoError(t, err)
	assert.Equal(t, 18.0, rate)

	rate, err = ResolveActiveRate(3, table)
	require.NoError(t, err)
	assert.Equal(t, 24.0, rate)

	// inactive rates never resolve, and a missing term is an error rather
	// than a fallback to some other duration
	_, err = ResolveActiveRate(2, table)
	assert.ErrorIs(t, err, ErrRateNotFound)

	_, err = ResolveActiveRate(5, table)
	assert.ErrorIs(t, err, ErrRateNotFound)

	_, err = ResolveActiveRate(0, table)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ResolveActiveRate(1, nil)
	assert.ErrorIs(t, err, ErrRateNotFound)
}

func TestResolveActiveRateRejectsBadStoredRate(t *testing.T) {
	table := []InterestRateRecord{
		{DurationYears: 1, RatePercent: -3, IsActive: true},
	}
	_, err := ResolveActiveRate(1, table)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 996.43, Round2(996.42861))
	assert.Equal(t, 1000.0, Round2(999.999))
	assert.Equal(t, -2.35, Round2(-2.346))
	assert.Equal(t, 0.0, Round2(0))
}
