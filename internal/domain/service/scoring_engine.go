package service

import (
	"github.com/shopspring/decimal"

	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ScoringEngine – domain service for rule-based credit scoring
// ---------------------------------------------------------------------------

// Score bounds and base value.
const (
	BaseScore = 650
	MinScore  = 300
	MaxScore  = 850
)

var (
	dtiRewardBelow    = decimal.RequireFromString("0.30")
	dtiPenaltyAbove   = decimal.RequireFromString("0.80")
	savingsRewardOver = decimal.RequireFromString("0.30")
	savingsPenaltyUnd = decimal.RequireFromString("0.10")
)

// ScoreResult holds the outcome of a scoring run.
type ScoreResult struct {
	Tier  valueobject.RiskTier
	Score int
}

// scoreRule is one independent (predicate, delta) adjustment. Rules are
// evaluated in order and do not short-circuit each other; bands that match
// no rule leave the score untouched.
type scoreRule struct {
	applies func(fin valueobject.ApplicantFinancials) bool
	name    string
	delta   int
}

// ScoringEngine turns applicant financials into a credit score and risk tier.
type ScoringEngine struct {
	rules []scoreRule
}

// NewScoringEngine returns an engine with the standard adjustment table.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{
		rules: []scoreRule{
			{
				name:  "low debt-to-income",
				delta: 50,
				applies: func(fin valueobject.ApplicantFinancials) bool {
					return fin.MonthlyIncome.IsPositive() &&
						debtToIncomeRatio(fin).LessThan(dtiRewardBelow)
				},
			},
			{
				name:  "high debt-to-income",
				delta: -100,
				applies: func(fin valueobject.ApplicantFinancials) bool {
					// Values in [0.30, 0.80] deliberately fall through both
					// debt-to-income rules unadjusted.
					return fin.MonthlyIncome.IsPositive() &&
						debtToIncomeRatio(fin).GreaterThan(dtiPenaltyAbove)
				},
			},
			{
				name:  "strong savings capacity",
				delta: 50,
				applies: func(fin valueobject.ApplicantFinancials) bool {
					return fin.MonthlyIncome.IsPositive() &&
						savingsCapacity(fin).GreaterThan(savingsRewardOver)
				},
			},
			{
				name:  "weak savings capacity",
				delta: -50,
				applies: func(fin valueobject.ApplicantFinancials) bool {
					return fin.MonthlyIncome.IsPositive() &&
						savingsCapacity(fin).LessThan(savingsPenaltyUnd)
				},
			},
			{
				name:  "request exceeds annual income",
				delta: -100,
				applies: func(fin valueobject.ApplicantFinancials) bool {
					return fin.RequestedAmount.IsPositive() &&
						fin.RequestedAmount.GreaterThan(fin.AnnualIncome())
				},
			},
		},
	}
}

// ComputeScore runs the adjustment table over the financials and returns the
// clamped score with its risk tier. Inputs are assumed pre-validated
// (non-negative) by valueobject.NewApplicantFinancials; the zero-income case
// is guarded inside the ratio rules.
func (e *ScoringEngine) ComputeScore(fin valueobject.ApplicantFinancials) ScoreResult {
	score := BaseScore
	for _, rule := range e.rules {
		if rule.applies(fin) {
			score += rule.delta
		}
	}

	if score < MinScore {
		score = MinScore
	}
	if score > MaxScore {
		score = MaxScore
	}

	return ScoreResult{
		Score: score,
		Tier:  valueobject.RiskTierForScore(score),
	}
}

// debtToIncomeRatio relates total debt (current plus requested) to annual
// income. Callers must guard against zero income.
func debtToIncomeRatio(fin valueobject.ApplicantFinancials) decimal.Decimal {
	return fin.TotalDebt().Div(fin.AnnualIncome())
}

// savingsCapacity is the share of income left after expenses. Callers must
// guard against zero income.
func savingsCapacity(fin valueobject.ApplicantFinancials) decimal.Decimal {
	return fin.MonthlyIncome.Sub(fin.MonthlyExpenses).Div(fin.MonthlyIncome)
}
