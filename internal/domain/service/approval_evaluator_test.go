package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/credora/credit-analysis-service/internal/domain/service"
)

func intPtr(v int) *int { return &v }

func TestApprovalEvaluator_Evaluate(t *testing.T) {
	evaluator := service.NewApprovalEvaluator()

	t.Run("recommends when all conditions hold", func(t *testing.T) {
		// Capacity = (5000-3000) * 0.30 = 600.
		fin := financials(t, 5000, 3000, 2000, 10000)

		decision := evaluator.Evaluate(intPtr(700), decimal.RequireFromString("550"), fin)

		assert.True(t, decision.Recommended)
		assert.True(t, decision.Capacity.Equal(decimal.NewFromInt(600)),
			"capacity = %s", decision.Capacity)
	})

	t.Run("payment equal to capacity still qualifies", func(t *testing.T) {
		fin := financials(t, 5000, 3000, 2000, 10000)

		decision := evaluator.Evaluate(intPtr(700), decimal.NewFromInt(600), fin)

		assert.True(t, decision.Recommended)
	})

	t.Run("rejects when payment exceeds capacity", func(t *testing.T) {
		fin := financials(t, 5000, 3000, 2000, 10000)

		decision := evaluator.Evaluate(intPtr(700), decimal.RequireFromString("600.01"), fin)

		assert.False(t, decision.Recommended)
	})

	t.Run("rejects below minimum score", func(t *testing.T) {
		fin := financials(t, 5000, 3000, 2000, 10000)

		decision := evaluator.Evaluate(intPtr(service.MinApprovalScore-1), decimal.NewFromInt(100), fin)

		assert.False(t, decision.Recommended)
	})

	t.Run("rejects unscored analyses", func(t *testing.T) {
		fin := financials(t, 5000, 3000, 2000, 10000)

		decision := evaluator.Evaluate(nil, decimal.NewFromInt(100), fin)

		assert.False(t, decision.Recommended)
	})

	t.Run("income equal to expenses means zero capacity", func(t *testing.T) {
		fin := financials(t, 3000, 3000, 0, 5000)

		decision := evaluator.Evaluate(intPtr(800), decimal.NewFromInt(50), fin)

		assert.True(t, decision.Capacity.IsZero())
		assert.False(t, decision.Recommended)
	})

	t.Run("rejects when total debt exceeds 40 percent of annual income", func(t *testing.T) {
		// Annual income 60000, cap 24000, debt 10000 + requested 20000 = 30000.
		fin := financials(t, 5000, 3000, 10000, 20000)

		decision := evaluator.Evaluate(intPtr(800), decimal.NewFromInt(100), fin)

		assert.False(t, decision.Recommended)
	})
}
