package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxTermMonths caps loan terms at 30 years.
const MaxTermMonths = 360

var oneHundred = decimal.NewFromInt(100)

// ApplicantFinancials carries the validated financial inputs of a credit
// analysis. It is a value object: construct it through NewApplicantFinancials
// and treat it as immutable afterwards.
type ApplicantFinancials struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	CurrentDebt     decimal.Decimal
	RequestedAmount decimal.Decimal
	AnnualRatePct   decimal.Decimal
	TermMonths      int
}

// NewApplicantFinancials validates and builds the financial inputs.
// Negative amounts, out-of-range terms and out-of-range rates are rejected
// up front; the scoring and amortization calculations rely on this.
func NewApplicantFinancials(
	monthlyIncome, monthlyExpenses, currentDebt, requestedAmount decimal.Decimal,
	termMonths int,
	annualRatePct decimal.Decimal,
) (ApplicantFinancials, error) {
	if monthlyIncome.IsNegative() {
		return ApplicantFinancials{}, errors.New("monthly income must not be negative")
	}
	if monthlyExpenses.IsNegative() {
		return ApplicantFinancials{}, errors.New("monthly expenses must not be negative")
	}
	if currentDebt.IsNegative() {
		return ApplicantFinancials{}, errors.New("current debt must not be negative")
	}
	if requestedAmount.IsNegative() {
		return ApplicantFinancials{}, errors.New("requested amount must not be negative")
	}
	if termMonths <= 0 {
		return ApplicantFinancials{}, errors.New("term months must be positive")
	}
	if termMonths > MaxTermMonths {
		return ApplicantFinancials{}, fmt.Errorf("term months must not exceed %d", MaxTermMonths)
	}
	if annualRatePct.IsNegative() || annualRatePct.GreaterThan(oneHundred) {
		return ApplicantFinancials{}, errors.New("annual interest rate must be between 0 and 100 percent")
	}

	return ApplicantFinancials{
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
		CurrentDebt:     currentDebt,
		RequestedAmount: requestedAmount,
		TermMonths:      termMonths,
		AnnualRatePct:   annualRatePct,
	}, nil
}

// AnnualIncome returns twelve months of income.
func (f ApplicantFinancials) AnnualIncome() decimal.Decimal {
	return f.MonthlyIncome.Mul(decimal.NewFromInt(12))
}

// TotalDebt returns the applicant's current debt plus the requested amount.
func (f ApplicantFinancials) TotalDebt() decimal.Decimal {
	return f.CurrentDebt.Add(f.RequestedAmount)
}
