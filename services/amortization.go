package services

import (
	"errors"
	"math"
)

// Validation and lookup failures for the loan calculator. None of these is
// retryable: the same inputs always fail the same way.
var (
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")
	ErrInvalidDuration  = errors.New("duration must be a positive whole number of years")
	ErrInvalidRate      = errors.New("interest rate must be a non-negative finite percentage")
	ErrRateNotFound     = errors.New("no active interest rate for the requested term")
)

// LoanTerms is the input to the amortization calculator. AnnualRatePercent is
// on the human percentage scale: 18.5 means 18.5% per year.
type LoanTerms struct {
	Principal         float64
	AnnualRatePercent float64
	DurationYears     int
}

// AmortizationResult holds the computed payment breakdown. Values keep full
// floating-point precision; callers round to 2 decimals only when persisting.
type AmortizationResult struct {
	FinancedAmount float64 `json:"financed_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayments  int     `json:"total_payments"`
	TotalAmount    float64 `json:"total_amount"` // total cash outlay, down payment included
	TotalInterest  float64 `json:"total_interest"`
}

// InterestRateRecord is a read-only snapshot of one rate-table row.
type InterestRateRecord struct {
	DurationYears int
	RatePercent   float64
	IsActive      bool
}

// ComputeMonthlyPayment returns the fixed monthly installment for a
// fixed-rate amortizing loan. A zero rate degenerates to linear amortization.
//
// The annuity formula is written exactly one way throughout the codebase:
//
//	payment = principal * r / (1 - (1+r)^-n)
//
// where r is the monthly rate and n the number of payments.
func ComputeMonthlyPayment(principal, annualRatePercent float64, durationYears int) (float64, error) {
	if principal <= 0 || math.IsNaN(principal) || math.IsInf(principal, 0) {
		return 0, ErrInvalidPrincipal
	}
	if durationYears <= 0 {
		return 0, ErrInvalidDuration
	}
	if annualRatePercent < 0 || math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0) {
		return 0, ErrInvalidRate
	}

	numberOfPayments := float64(durationYears * 12)
	monthlyRate := annualRatePercent / 100 / 12

	if monthlyRate == 0 {
		return principal / numberOfPayments, nil
	}
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -numberOfPayments)), nil
}

// ComputeAmortization computes the full payment breakdown for a financed
// purchase. The financed principal is price minus down payment; TotalAmount
// reports the true cash outlay (installments plus the down payment), while
// TotalInterest compares installments against the financed amount only.
func ComputeAmortization(price, annualRatePercent float64, durationYears int, downPayment float64) (AmortizationResult, error) {
	if downPayment < 0 || math.IsNaN(downPayment) || math.IsInf(downPayment, 0) {
		return AmortizationResult{}, ErrInvalidPrincipal
	}

	financed := price - downPayment
	monthly, err := ComputeMonthlyPayment(financed, annualRatePercent, durationYears)
	if err != nil {
		return AmortizationResult{}, err
	}

	totalPayments := durationYears * 12
	installmentsTotal := monthly * float64(totalPayments)

	return AmortizationResult{
		FinancedAmount: financed,
		MonthlyPayment: monthly,
		TotalPayments:  totalPayments,
		TotalAmount:    installmentsTotal + downPayment,
		TotalInterest:  installmentsTotal - financed,
	}, nil
}

// ResolveActiveRate looks up the active rate for a term in a rate-table
// snapshot. A missing rate is an error the caller must surface ("financing
// currently unavailable for this term"); it is never substituted with a
// guessed default.
func ResolveActiveRate(durationYears int, table []InterestRateRecord) (float64, error) {
	if durationYears <= 0 {
		return 0, ErrInvalidDuration
	}
	for _, rec := range table {
		if rec.DurationYears == durationYears && rec.IsActive {
			if rec.RatePercent < 0 || math.IsNaN(rec.RatePercent) || math.IsInf(rec.RatePercent, 0) {
				return 0, ErrInvalidRate
			}
			return rec.RatePercent, nil
		}
	}
	return 0, ErrRateNotFound
}

// Round2 rounds to 2 decimal places. Applied at the persistence boundary
// only, never inside the calculator.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
