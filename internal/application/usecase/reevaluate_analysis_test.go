package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/application/usecase"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/service"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

func newReevaluateUseCase(
	analysisRepo *mockAnalysisRepository,
	publisher *mockEventPublisher,
) *usecase.ReevaluateAnalysisUseCase {
	return usecase.NewReevaluateAnalysisUseCase(
		analysisRepo, publisher,
		service.NewScoringEngine(), service.NewApprovalEvaluator(),
	)
}

func TestReevaluateAnalysis_Execute(t *testing.T) {
	t.Run("re-scores with fresh financials", func(t *testing.T) {
		pending, err := pendingAnalysis()
		require.NoError(t, err)

		analysisRepo := &mockAnalysisRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditAnalysis, error) {
				return pending, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := newReevaluateUseCase(analysisRepo, publisher)

		// Income dropped since submission; the score must follow.
		resp, err := uc.Execute(context.Background(), dto.ReevaluateAnalysisRequest{
			AnalysisID: pending.ID(),
			Financials: dto.FinancialInput{
				MonthlyIncome:   decimal.NewFromInt(2000),
				MonthlyExpenses: decimal.NewFromInt(1900),
				CurrentDebt:     decimal.NewFromInt(10000),
				RequestedAmount: decimal.NewFromInt(15000),
				AnnualRatePct:   decimal.NewFromInt(15),
				TermMonths:      24,
			},
		})

		require.NoError(t, err)
		require.NotNil(t, resp.Score)
		assert.Equal(t, 500, *resp.Score)
		assert.Equal(t, "RISKY", resp.RiskTier)
		assert.False(t, resp.Recommended)
		assert.Equal(t, "PENDING", resp.Status, "re-evaluation never changes the status")
		assert.True(t, resp.Financials.MonthlyIncome.Equal(decimal.NewFromInt(2000)),
			"stored financials are replaced")

		require.Len(t, analysisRepo.savedAnalyses, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "analysis.scored", publisher.publishedEvents[0].EventType())
	})

	t.Run("held analyses can be re-scored", func(t *testing.T) {
		held, err := decidedAnalysis(valueobject.AnalysisStatusOnHold)
		require.NoError(t, err)

		analysisRepo := &mockAnalysisRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditAnalysis, error) {
				return held, nil
			},
		}
		uc := newReevaluateUseCase(analysisRepo, &mockEventPublisher{})

		req := dto.ReevaluateAnalysisRequest{AnalysisID: held.ID(), Financials: validSubmitRequest().Financials}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "ON_HOLD", resp.Status)
		require.NotNil(t, resp.Score)
	})

	t.Run("terminal analyses cannot be re-scored", func(t *testing.T) {
		rejected, err := decidedAnalysis(valueobject.AnalysisStatusRejected)
		require.NoError(t, err)

		analysisRepo := &mockAnalysisRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditAnalysis, error) {
				return rejected, nil
			},
		}
		uc := newReevaluateUseCase(analysisRepo, &mockEventPublisher{})

		req := dto.ReevaluateAnalysisRequest{AnalysisID: rejected.ID(), Financials: validSubmitRequest().Financials}
		_, err = uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
		assert.Empty(t, analysisRepo.savedAnalyses)
	})

	t.Run("fails on invalid financials", func(t *testing.T) {
		pending, err := pendingAnalysis()
		require.NoError(t, err)

		analysisRepo := &mockAnalysisRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditAnalysis, error) {
				return pending, nil
			},
		}
		uc := newReevaluateUseCase(analysisRepo, &mockEventPublisher{})

		req := dto.ReevaluateAnalysisRequest{AnalysisID: pending.ID()}
		req.Financials = validSubmitRequest().Financials
		req.Financials.MonthlyIncome = decimal.NewFromInt(-1)

		_, err = uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validate financials")
	})
}
