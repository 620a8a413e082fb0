package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/application/usecase"
	"github.com/credora/credit-analysis-service/internal/domain/service"
)

func newQuoteUseCase() *usecase.QuoteLoanUseCase {
	return usecase.NewQuoteLoanUseCase(service.NewScoringEngine(), service.NewApprovalEvaluator())
}

func TestQuoteLoan_Execute(t *testing.T) {
	t.Run("previews score payment and recommendation", func(t *testing.T) {
		uc := newQuoteUseCase()

		resp, err := uc.Execute(dto.QuoteLoanRequest{
			Financials: validSubmitRequest().Financials,
		})

		require.NoError(t, err)
		assert.Equal(t, 750, resp.Score)
		assert.Equal(t, "GOOD", resp.RiskTier)
		assert.True(t, resp.MonthlyPayment.Equal(decimal.RequireFromString("484.87")),
			"payment = %s", resp.MonthlyPayment)
		assert.True(t, resp.Capacity.Equal(decimal.NewFromInt(900)),
			"capacity = %s", resp.Capacity)
		assert.True(t, resp.Recommended)
	})

	t.Run("matches the submit pipeline for the same inputs", func(t *testing.T) {
		quoteUC := newQuoteUseCase()
		submitUC := newSubmitUseCase(&mockAnalysisRepository{}, &mockClientRepository{}, &mockEventPublisher{})

		req := validSubmitRequest()
		quote, err := quoteUC.Execute(dto.QuoteLoanRequest{Financials: req.Financials})
		require.NoError(t, err)

		submitted, err := submitUC.Execute(context.Background(), req)
		require.NoError(t, err)

		require.NotNil(t, submitted.Score)
		assert.Equal(t, quote.Score, *submitted.Score)
		assert.True(t, quote.MonthlyPayment.Equal(submitted.EstimatedPayment))
		assert.True(t, quote.Capacity.Equal(submitted.Capacity))
		assert.Equal(t, quote.Recommended, submitted.Recommended)
	})

	t.Run("includes the amortization schedule on request", func(t *testing.T) {
		uc := newQuoteUseCase()

		resp, err := uc.Execute(dto.QuoteLoanRequest{
			Financials:      validSubmitRequest().Financials,
			IncludeSchedule: true,
		})

		require.NoError(t, err)
		require.Len(t, resp.Schedule, 24)

		totalPrincipal := decimal.Zero
		for _, entry := range resp.Schedule {
			totalPrincipal = totalPrincipal.Add(entry.Principal)
		}
		assert.True(t, totalPrincipal.Equal(decimal.NewFromInt(10000)),
			"principal sums to %s", totalPrincipal)
		assert.True(t, resp.Schedule[23].RemainingBalance.IsZero())
	})

	t.Run("omits the schedule by default", func(t *testing.T) {
		uc := newQuoteUseCase()

		resp, err := uc.Execute(dto.QuoteLoanRequest{Financials: validSubmitRequest().Financials})

		require.NoError(t, err)
		assert.Empty(t, resp.Schedule)
	})

	t.Run("fails on invalid financials", func(t *testing.T) {
		uc := newQuoteUseCase()

		req := dto.QuoteLoanRequest{Financials: validSubmitRequest().Financials}
		req.Financials.AnnualRatePct = decimal.NewFromInt(150)

		_, err := uc.Execute(req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validate financials")
	})
}
