package usecase

import (
	"fmt"
	"time"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/service"
)

// QuoteLoanUseCase runs scoring, payment estimation and the affordability
// evaluation without touching persistence. Backs the form preview that used
// to duplicate the scoring formulas inline; both paths now share the same
// domain services.
type QuoteLoanUseCase struct {
	scorer    *service.ScoringEngine
	evaluator *service.ApprovalEvaluator
}

// NewQuoteLoanUseCase wires dependencies.
func NewQuoteLoanUseCase(
	scorer *service.ScoringEngine,
	evaluator *service.ApprovalEvaluator,
) *QuoteLoanUseCase {
	return &QuoteLoanUseCase{
		scorer:    scorer,
		evaluator: evaluator,
	}
}

// Execute computes the preview for the given financials.
func (uc *QuoteLoanUseCase) Execute(req dto.QuoteLoanRequest) (dto.QuoteLoanResponse, error) {
	fin, err := financialsFromInput(req.Financials)
	if err != nil {
		return dto.QuoteLoanResponse{}, fmt.Errorf("validate financials: %w", err)
	}

	scoreResult := uc.scorer.ComputeScore(fin)
	payment := model.ComputeMonthlyPayment(fin.RequestedAmount, fin.AnnualRatePct, fin.TermMonths)
	decision := uc.evaluator.Evaluate(&scoreResult.Score, payment, fin)

	resp := dto.QuoteLoanResponse{
		Score:          scoreResult.Score,
		RiskTier:       scoreResult.Tier.String(),
		MonthlyPayment: payment,
		Capacity:       decision.Capacity.Round(2),
		Recommended:    decision.Recommended,
	}

	if req.IncludeSchedule {
		entries := model.GenerateAmortizationSchedule(
			fin.RequestedAmount, fin.AnnualRatePct, fin.TermMonths, time.Now().UTC(),
		)
		resp.Schedule = make([]dto.ScheduleEntryResponse, 0, len(entries))
		for _, e := range entries {
			resp.Schedule = append(resp.Schedule, dto.ScheduleEntryResponse{
				Period:           e.Period,
				DueDate:          e.DueDate,
				Principal:        e.Principal,
				Interest:         e.Interest,
				Total:            e.Total,
				RemainingBalance: e.RemainingBalance,
			})
		}
	}

	return resp, nil
}
