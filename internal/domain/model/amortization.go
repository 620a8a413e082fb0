package model

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
	percentBase   = decimal.NewFromInt(100)
)

// ComputeMonthlyPayment computes the fixed monthly installment that fully
// repays principal over termMonths at the given annual rate (in percent,
// e.g. 15.5 = 15.5%).
//
// The calculation uses:
//
//	monthlyRate = annualRatePct / 100 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// Degenerate inputs (non-positive principal, rate or term) yield a zero
// payment rather than an error. The result is rounded to 2 decimal places,
// half up. All arithmetic stays in decimal; (1+r)^n is exact for integer n
// and tolerates terms up to 360 months.
func ComputeMonthlyPayment(principal, annualRatePct decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	monthlyRate := annualRatePct.Div(percentBase).Div(decimalTwelve)
	if monthlyRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	factor := decimalOne.Add(monthlyRate).Pow(decimal.NewFromInt(int64(termMonths)))
	payment := principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(decimalOne))

	return payment.Round(2)
}

// AmortizationEntry is an immutable value object representing one period in an
// amortization schedule.
type AmortizationEntry struct {
	DueDate          time.Time
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// GenerateAmortizationSchedule computes the full per-period breakdown of a
// fixed-payment loan, for presentation next to an analysis. The first payment
// falls due one month after startDate. A zero-rate loan is split evenly over
// the term. Returns nil for non-positive principal or term.
func GenerateAmortizationSchedule(
	principal, annualRatePct decimal.Decimal,
	termMonths int,
	startDate time.Time,
) []AmortizationEntry {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	monthlyRate := annualRatePct.Div(percentBase).Div(decimalTwelve)

	var monthlyPayment decimal.Decimal
	if monthlyRate.LessThanOrEqual(decimal.Zero) {
		monthlyRate = decimal.Zero
		monthlyPayment = principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	} else {
		monthlyPayment = ComputeMonthlyPayment(principal, annualRatePct, termMonths)
	}

	schedule := make([]AmortizationEntry, 0, termMonths)
	remaining := principal

	for period := 1; period <= termMonths; period++ {
		dueDate := startDate.AddDate(0, period, 0)

		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := monthlyPayment.Sub(interest)

		// Last period: absorb rounding drift so the balance lands on zero.
		if period == termMonths {
			principalPart = remaining
			monthlyPayment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, AmortizationEntry{
			Period:           period,
			DueDate:          dueDate,
			Principal:        principalPart,
			Interest:         interest,
			Total:            principalPart.Add(interest),
			RemainingBalance: remaining,
		})
	}

	return schedule
}
