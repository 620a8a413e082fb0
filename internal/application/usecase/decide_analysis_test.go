package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/application/usecase"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

func decideRequest(action string) dto.DecideAnalysisRequest {
	return dto.DecideAnalysisRequest{
		AnalysisID: "analysis-001",
		Action:     action,
		ActorID:    "supervisor-001",
		Comment:    "reviewed",
	}
}

func TestDecideAnalysis_Execute(t *testing.T) {
	t.Run("applies each decision action", func(t *testing.T) {
		cases := []struct {
			action string
			status string
		}{
			{usecase.ActionApprove, "APPROVED"},
			{usecase.ActionReject, "REJECTED"},
			{usecase.ActionHold, "ON_HOLD"},
			{usecase.ActionCancel, "CANCELLED"},
		}
		for _, tc := range cases {
			t.Run(tc.action, func(t *testing.T) {
				pending, err := pendingAnalysis()
				require.NoError(t, err)

				analysisRepo := &mockAnalysisRepository{
					findByIDFunc: func(_ context.Context, _ string) (model.CreditAnalysis, error) {
						return pending, nil
					},
				}
				publisher := &mockEventPublisher{}
				uc := usecase.NewDecideAnalysisUseCase(analysisRepo, publisher)

				resp, err := uc.Execute(context.Background(), decideRequest(tc.action))

				require.NoError(t, err)
				assert.Equal(t, tc.status, resp.Status)
				assert.Equal(t, "supervisor-001", resp.DecidedBy)
				require.NotNil(t, resp.DecidedAt)

				require.Len(t, analysisRepo.savedAnalyses, 1)
				require.Len(t, publisher.publishedEvents, 1)
				assert.Equal(t, "analysis.decided", publisher.publishedEvents[0].EventType())
			})
		}
	})

	t.Run("holding an already held analysis skips persistence", func(t *testing.T) {
		held, err := decidedAnalysis(valueobject.AnalysisStatusOnHold)
		require.NoError(t, err)

		analysisRepo := &mockAnalysisRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditAnalysis, error) {
				return held, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewDecideAnalysisUseCase(analysisRepo, publisher)

		resp, err := uc.Execute(context.Background(), decideRequest(usecase.ActionHold))

		require.NoError(t, err)
		assert.Equal(t, "ON_HOLD", resp.Status)
		assert.Empty(t, analysisRepo.savedAnalyses, "no-op hold must not write")
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("terminal analyses cannot be decided again", func(t *testing.T) {
		approved, err := decidedAnalysis(valueobject.AnalysisStatusApproved)
		require.NoError(t, err)

		analysisRepo := &mockAnalysisRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditAnalysis, error) {
				return approved, nil
			},
		}
		uc := usecase.NewDecideAnalysisUseCase(analysisRepo, &mockEventPublisher{})

		_, err = uc.Execute(context.Background(), decideRequest(usecase.ActionReject))

		require.Error(t, err)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
		assert.Empty(t, analysisRepo.savedAnalyses)
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		pending, err := pendingAnalysis()
		require.NoError(t, err)

		analysisRepo := &mockAnalysisRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditAnalysis, error) {
				return pending, nil
			},
		}
		uc := usecase.NewDecideAnalysisUseCase(analysisRepo, &mockEventPublisher{})

		_, err = uc.Execute(context.Background(), decideRequest("ESCALATE"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown decision action")
	})

	t.Run("fails when the analysis is missing", func(t *testing.T) {
		uc := usecase.NewDecideAnalysisUseCase(&mockAnalysisRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), decideRequest(usecase.ActionApprove))

		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}
