package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/service"
)

// ReevaluateAnalysisUseCase re-runs the scoring pipeline on an open analysis
// with fresh financials. This is the only path that changes a stored score.
type ReevaluateAnalysisUseCase struct {
	analysisRepo port.AnalysisRepository
	publisher    port.EventPublisher
	scorer       *service.ScoringEngine
	evaluator    *service.ApprovalEvaluator
}

// NewReevaluateAnalysisUseCase wires dependencies.
func NewReevaluateAnalysisUseCase(
	analysisRepo port.AnalysisRepository,
	publisher port.EventPublisher,
	scorer *service.ScoringEngine,
	evaluator *service.ApprovalEvaluator,
) *ReevaluateAnalysisUseCase {
	return &ReevaluateAnalysisUseCase{
		analysisRepo: analysisRepo,
		publisher:    publisher,
		scorer:       scorer,
		evaluator:    evaluator,
	}
}

// Execute validates the new financials, re-scores the analysis and persists
// the updated record. Terminal analyses cannot be re-evaluated.
func (uc *ReevaluateAnalysisUseCase) Execute(
	ctx context.Context,
	req dto.ReevaluateAnalysisRequest,
) (dto.AnalysisResponse, error) {
	now := time.Now().UTC()

	analysis, err := uc.analysisRepo.FindByID(ctx, req.AnalysisID)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("load analysis: %w", err)
	}

	fin, err := financialsFromInput(req.Financials)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("validate financials: %w", err)
	}

	analysis, err = runEvaluation(analysis, fin, uc.scorer, uc.evaluator, now)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("evaluate analysis: %w", err)
	}

	if err := uc.analysisRepo.Save(ctx, analysis); err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("save analysis: %w", err)
	}

	if err := uc.publisher.Publish(ctx, analysis.DomainEvents()...); err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAnalysisResponse(analysis), nil
}
