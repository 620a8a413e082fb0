package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/service"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// SubmitAnalysisUseCase orchestrates opening a credit analysis: validation,
// scoring, payment estimation, affordability evaluation and persistence.
type SubmitAnalysisUseCase struct {
	analysisRepo port.AnalysisRepository
	clientRepo   port.ClientRepository
	publisher    port.EventPublisher
	scorer       *service.ScoringEngine
	evaluator    *service.ApprovalEvaluator
}

// NewSubmitAnalysisUseCase wires dependencies.
func NewSubmitAnalysisUseCase(
	analysisRepo port.AnalysisRepository,
	clientRepo port.ClientRepository,
	publisher port.EventPublisher,
	scorer *service.ScoringEngine,
	evaluator *service.ApprovalEvaluator,
) *SubmitAnalysisUseCase {
	return &SubmitAnalysisUseCase{
		analysisRepo: analysisRepo,
		clientRepo:   clientRepo,
		publisher:    publisher,
		scorer:       scorer,
		evaluator:    evaluator,
	}
}

// Execute creates, scores and persists a new credit analysis. The computed
// recommendation is stored as advisory metadata; the record stays PENDING
// until an analyst decides it.
func (uc *SubmitAnalysisUseCase) Execute(
	ctx context.Context,
	req dto.SubmitAnalysisRequest,
) (dto.AnalysisResponse, error) {
	now := time.Now().UTC()

	// 1. The client record must exist.
	if _, err := uc.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("load client: %w", err)
	}

	creditType, err := valueobject.NewCreditType(req.CreditType)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("parse credit type: %w", err)
	}

	fin, err := financialsFromInput(req.Financials)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("validate financials: %w", err)
	}

	// 2. Create the aggregate.
	analysis, err := model.NewCreditAnalysis(req.ClientID, req.AnalystID, creditType, fin, now)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("create analysis: %w", err)
	}

	// 3. Score immediately on creation.
	analysis, err = runEvaluation(analysis, fin, uc.scorer, uc.evaluator, now)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("evaluate analysis: %w", err)
	}

	// 4. Persist.
	if err := uc.analysisRepo.Save(ctx, analysis); err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("save analysis: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, analysis.DomainEvents()...); err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toAnalysisResponse(analysis), nil
}

// runEvaluation pushes the financials through the canonical scoring pipeline
// and records the outcome on the aggregate. Submit and re-evaluate share this
// single code path.
func runEvaluation(
	analysis model.CreditAnalysis,
	fin valueobject.ApplicantFinancials,
	scorer *service.ScoringEngine,
	evaluator *service.ApprovalEvaluator,
	now time.Time,
) (model.CreditAnalysis, error) {
	scoreResult := scorer.ComputeScore(fin)
	payment := model.ComputeMonthlyPayment(fin.RequestedAmount, fin.AnnualRatePct, fin.TermMonths)
	decision := evaluator.Evaluate(&scoreResult.Score, payment, fin)

	return analysis.RecordEvaluation(
		fin,
		scoreResult.Score, scoreResult.Tier,
		payment, decision.Capacity, decision.Recommended,
		now,
	)
}

func financialsFromInput(in dto.FinancialInput) (valueobject.ApplicantFinancials, error) {
	return valueobject.NewApplicantFinancials(
		in.MonthlyIncome, in.MonthlyExpenses,
		in.CurrentDebt, in.RequestedAmount,
		in.TermMonths, in.AnnualRatePct,
	)
}

func toAnalysisResponse(a model.CreditAnalysis) dto.AnalysisResponse {
	fin := a.Financials()
	resp := dto.AnalysisResponse{
		ID:               a.ID(),
		ClientID:         a.ClientID(),
		AnalystID:        a.AnalystID(),
		CreditType:       a.CreditType().String(),
		Status:           a.Status().String(),
		Score:            a.Score(),
		EstimatedPayment: a.EstimatedPayment(),
		Capacity:         a.Capacity(),
		Recommended:      a.Recommended(),
		Financials: dto.FinancialInput{
			MonthlyIncome:   fin.MonthlyIncome,
			MonthlyExpenses: fin.MonthlyExpenses,
			CurrentDebt:     fin.CurrentDebt,
			RequestedAmount: fin.RequestedAmount,
			TermMonths:      fin.TermMonths,
			AnnualRatePct:   fin.AnnualRatePct,
		},
		DecidedBy:       a.DecidedBy(),
		DecisionComment: a.DecisionComment(),
		DecidedAt:       a.DecidedAt(),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
	if !a.RiskTier().IsZero() {
		resp.RiskTier = a.RiskTier().String()
	}
	return resp
}
