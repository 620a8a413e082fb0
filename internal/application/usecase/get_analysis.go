package usecase

import (
	"context"
	"fmt"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/domain/port"
)

// GetAnalysisUseCase retrieves a single credit analysis.
type GetAnalysisUseCase struct {
	analysisRepo port.AnalysisRepository
}

// NewGetAnalysisUseCase wires dependencies.
func NewGetAnalysisUseCase(analysisRepo port.AnalysisRepository) *GetAnalysisUseCase {
	return &GetAnalysisUseCase{analysisRepo: analysisRepo}
}

// Execute loads an analysis by ID.
func (uc *GetAnalysisUseCase) Execute(ctx context.Context, analysisID string) (dto.AnalysisResponse, error) {
	analysis, err := uc.analysisRepo.FindByID(ctx, analysisID)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("load analysis: %w", err)
	}
	return toAnalysisResponse(analysis), nil
}

// ListClientAnalysesUseCase retrieves a client's analysis history.
type ListClientAnalysesUseCase struct {
	analysisRepo port.AnalysisRepository
}

// NewListClientAnalysesUseCase wires dependencies.
func NewListClientAnalysesUseCase(analysisRepo port.AnalysisRepository) *ListClientAnalysesUseCase {
	return &ListClientAnalysesUseCase{analysisRepo: analysisRepo}
}

// Execute loads all analyses for a client, newest first.
func (uc *ListClientAnalysesUseCase) Execute(ctx context.Context, clientID string) ([]dto.AnalysisResponse, error) {
	analyses, err := uc.analysisRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}

	responses := make([]dto.AnalysisResponse, 0, len(analyses))
	for _, a := range analyses {
		responses = append(responses, toAnalysisResponse(a))
	}
	return responses, nil
}
