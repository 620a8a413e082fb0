package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
)

// Decision actions accepted by DecideAnalysisUseCase.
const (
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
	ActionHold    = "HOLD"
	ActionCancel  = "CANCEL"
)

// DecideAnalysisUseCase applies an analyst decision to a pending analysis.
// The stored recommendation is advisory only; the analyst's action is applied
// regardless of what the evaluator suggested.
type DecideAnalysisUseCase struct {
	analysisRepo port.AnalysisRepository
	publisher    port.EventPublisher
}

// NewDecideAnalysisUseCase wires dependencies.
func NewDecideAnalysisUseCase(
	analysisRepo port.AnalysisRepository,
	publisher port.EventPublisher,
) *DecideAnalysisUseCase {
	return &DecideAnalysisUseCase{
		analysisRepo: analysisRepo,
		publisher:    publisher,
	}
}

// Execute loads the analysis, applies the requested transition and persists
// the result. Invalid transitions (from a terminal state) surface as errors
// and leave the record unchanged.
func (uc *DecideAnalysisUseCase) Execute(
	ctx context.Context,
	req dto.DecideAnalysisRequest,
) (dto.AnalysisResponse, error) {
	now := time.Now().UTC()

	analysis, err := uc.analysisRepo.FindByID(ctx, req.AnalysisID)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("load analysis: %w", err)
	}

	var decided model.CreditAnalysis
	switch req.Action {
	case ActionApprove:
		decided, err = analysis.Approve(req.ActorID, req.Comment, now)
	case ActionReject:
		decided, err = analysis.Reject(req.ActorID, req.Comment, now)
	case ActionHold:
		decided, err = analysis.PutOnHold(req.ActorID, req.Comment, now)
	case ActionCancel:
		decided, err = analysis.Cancel(req.ActorID, req.Comment, now)
	default:
		return dto.AnalysisResponse{}, fmt.Errorf("unknown decision action: %q", req.Action)
	}
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	// A HOLD on an already-held analysis changes nothing; skip the write.
	if len(decided.DomainEvents()) == 0 {
		return toAnalysisResponse(decided), nil
	}

	if err := uc.analysisRepo.Save(ctx, decided); err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("save analysis: %w", err)
	}

	if err := uc.publisher.Publish(ctx, decided.DomainEvents()...); err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAnalysisResponse(decided), nil
}
