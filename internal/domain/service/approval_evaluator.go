package service

import (
	"github.com/shopspring/decimal"

	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ApprovalEvaluator – domain service for the affordability recommendation
// ---------------------------------------------------------------------------

// MinApprovalScore is the lowest credit score eligible for a positive
// recommendation.
const MinApprovalScore = 650

var (
	capacityShare = decimal.RequireFromString("0.30")
	maxDebtShare  = decimal.RequireFromString("0.40")
)

// ApprovalDecision holds the affordability outcome. The recommendation is
// advisory: an analyst decision on the analysis record always wins.
type ApprovalDecision struct {
	Capacity    decimal.Decimal
	Recommended bool
}

// ApprovalEvaluator combines score, estimated payment and financials into a
// single boolean recommendation using fixed business thresholds.
type ApprovalEvaluator struct{}

// NewApprovalEvaluator returns a new evaluator instance.
func NewApprovalEvaluator() *ApprovalEvaluator {
	return &ApprovalEvaluator{}
}

// Evaluate computes the payment capacity and the approval recommendation.
//
// Capacity is 30% of disposable income, and zero when income does not
// strictly exceed expenses. The recommendation requires all of:
//
//  1. a score is present and >= MinApprovalScore
//  2. the estimated monthly payment fits inside the capacity
//  3. current debt plus the requested amount stays within 40% of annual income
//
// A failed condition yields Recommended=false; it is never an error.
func (e *ApprovalEvaluator) Evaluate(
	score *int,
	monthlyPayment decimal.Decimal,
	fin valueobject.ApplicantFinancials,
) ApprovalDecision {
	capacity := decimal.Zero
	if fin.MonthlyIncome.GreaterThan(fin.MonthlyExpenses) {
		capacity = fin.MonthlyIncome.Sub(fin.MonthlyExpenses).Mul(capacityShare)
	}

	recommended := score != nil && *score >= MinApprovalScore &&
		monthlyPayment.LessThanOrEqual(capacity) &&
		fin.TotalDebt().LessThanOrEqual(fin.AnnualIncome().Mul(maxDebtShare))

	return ApprovalDecision{
		Capacity:    capacity,
		Recommended: recommended,
	}
}
