package services

import "math"

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// AmortizationSchedule expands a loan into its month-by-month breakdown.
// Entries are rounded to 2 decimals for display; the final payment absorbs
// the rounding remainder so the balance lands exactly on zero.
func AmortizationSchedule(principal, annualRatePercent float64, durationYears int) ([]ScheduleEntry, error) {
	monthly, err := ComputeMonthlyPayment(principal, annualRatePercent, durationYears)
	if err != nil {
		return nil, err
	}

	n := durationYears * 12
	monthlyRate := annualRatePercent / 100 / 12
	remaining := principal

	schedule := make([]ScheduleEntry, 0, n)
	for m := 1; m <= n; m++ {
		interest := remaining * monthlyRate
		principalPart := monthly - interest
		payment := monthly

		if m == n {
			// last payment clears whatever is left
			principalPart = remaining
			payment = principalPart + interest
		}
		remaining -= principalPart

		schedule = append(schedule, ScheduleEntry{
			Month:     m,
			Payment:   Round2(payment),
			Interest:  Round2(interest),
			Principal: Round2(principalPart),
			Balance:   Round2(math.Max(remaining, 0)),
		})
	}
	return schedule, nil
}
