package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credora/credit-analysis-service/internal/domain/service"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

func financials(t *testing.T, income, expenses, debt, requested int64) valueobject.ApplicantFinancials {
	t.Helper()
	fin, err := valueobject.NewApplicantFinancials(
		decimal.NewFromInt(income),
		decimal.NewFromInt(expenses),
		decimal.NewFromInt(debt),
		decimal.NewFromInt(requested),
		24,
		decimal.NewFromInt(15),
	)
	require.NoError(t, err)
	return fin
}

func TestScoringEngine_ComputeScore(t *testing.T) {
	engine := service.NewScoringEngine()

	t.Run("rewards low debt and strong savings", func(t *testing.T) {
		// DTI = 12000/60000 = 0.20, savings = 3000/5000 = 0.60.
		fin := financials(t, 5000, 2000, 2000, 10000)

		result := engine.ComputeScore(fin)

		assert.Equal(t, 750, result.Score)
		assert.Equal(t, valueobject.RiskTierGood, result.Tier)
	})

	t.Run("zero income skips ratio rules but penalizes the request", func(t *testing.T) {
		fin := financials(t, 0, 0, 0, 10000)

		result := engine.ComputeScore(fin)

		assert.Equal(t, 550, result.Score)
		assert.Equal(t, valueobject.RiskTierRisky, result.Tier)
	})

	t.Run("zero income with zero request keeps the base score", func(t *testing.T) {
		fin := financials(t, 0, 0, 0, 0)

		result := engine.ComputeScore(fin)

		assert.Equal(t, service.BaseScore, result.Score)
		assert.Equal(t, valueobject.RiskTierAcceptable, result.Tier)
	})

	t.Run("penalizes high debt and weak savings", func(t *testing.T) {
		// DTI = 25000/24000 > 0.80, savings = 100/2000 = 0.05.
		fin := financials(t, 2000, 1900, 10000, 15000)

		result := engine.ComputeScore(fin)

		assert.Equal(t, 500, result.Score)
		assert.Equal(t, valueobject.RiskTierRisky, result.Tier)
	})

	t.Run("middle debt band leaves the score unadjusted", func(t *testing.T) {
		// DTI = 30000/60000 = 0.50, savings = 1000/5000 = 0.20.
		fin := financials(t, 5000, 4000, 10000, 20000)

		result := engine.ComputeScore(fin)

		assert.Equal(t, service.BaseScore, result.Score)
		assert.Equal(t, valueobject.RiskTierAcceptable, result.Tier)
	})

	t.Run("exact thresholds trigger no adjustment", func(t *testing.T) {
		// DTI = 18000/60000 = 0.30, savings = 1500/5000 = 0.30.
		fin := financials(t, 5000, 3500, 8000, 10000)

		result := engine.ComputeScore(fin)

		assert.Equal(t, service.BaseScore, result.Score)
	})

	t.Run("request exceeding annual income costs 100 points", func(t *testing.T) {
		// DTI = 75000/60000 > 0.80, savings = 0.60, request > 60000.
		fin := financials(t, 5000, 2000, 5000, 70000)

		result := engine.ComputeScore(fin)

		// 650 - 100 + 50 - 100
		assert.Equal(t, 500, result.Score)
	})

	t.Run("score stays within bounds across input sweep", func(t *testing.T) {
		inputs := []valueobject.ApplicantFinancials{
			financials(t, 0, 0, 0, 1000000),
			financials(t, 1000, 990, 50000, 1000000),
			financials(t, 100000, 0, 0, 1000),
			financials(t, 1, 0, 0, 0),
		}
		for _, fin := range inputs {
			result := engine.ComputeScore(fin)
			assert.GreaterOrEqual(t, result.Score, service.MinScore)
			assert.LessOrEqual(t, result.Score, service.MaxScore)
			assert.False(t, result.Tier.IsZero())
		}
	})
}
