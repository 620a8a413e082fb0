package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// AnalysisRepo implements port.AnalysisRepository.
type AnalysisRepo struct {
	pool *pgxpool.Pool
}

// NewAnalysisRepo creates a new repository backed by PostgreSQL.
func NewAnalysisRepo(pool *pgxpool.Pool) *AnalysisRepo {
	return &AnalysisRepo{pool: pool}
}

const analysisColumns = `
	id, client_id, analyst_id, credit_type,
	monthly_income, monthly_expenses, current_debt, requested_amount,
	term_months, annual_rate_pct,
	score, risk_tier, estimated_payment, capacity, recommended,
	status, decided_by, decision_comment, decided_at,
	version, created_at, updated_at`

// Save persists a credit analysis (upsert by ID with optimistic locking).
// The version guard gives us single-writer-per-record consistency: the
// second of two concurrent decisions loses with port.ErrVersionConflict.
func (r *AnalysisRepo) Save(ctx context.Context, a model.CreditAnalysis) error {
	query := `
		INSERT INTO credit_analyses (
			id, client_id, analyst_id, credit_type,
			monthly_income, monthly_expenses, current_debt, requested_amount,
			term_months, annual_rate_pct,
			score, risk_tier, estimated_payment, capacity, recommended,
			status, decided_by, decision_comment, decided_at,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		ON CONFLICT (id) DO UPDATE SET
			monthly_income    = EXCLUDED.monthly_income,
			monthly_expenses  = EXCLUDED.monthly_expenses,
			current_debt      = EXCLUDED.current_debt,
			requested_amount  = EXCLUDED.requested_amount,
			term_months       = EXCLUDED.term_months,
			annual_rate_pct   = EXCLUDED.annual_rate_pct,
			score             = EXCLUDED.score,
			risk_tier         = EXCLUDED.risk_tier,
			estimated_payment = EXCLUDED.estimated_payment,
			capacity          = EXCLUDED.capacity,
			recommended       = EXCLUDED.recommended,
			status            = EXCLUDED.status,
			decided_by        = EXCLUDED.decided_by,
			decision_comment  = EXCLUDED.decision_comment,
			decided_at        = EXCLUDED.decided_at,
			version           = credit_analyses.version + 1,
			updated_at        = EXCLUDED.updated_at
		WHERE credit_analyses.version = $20
	`
	fin := a.Financials()

	var riskTier *string
	if !a.RiskTier().IsZero() {
		s := a.RiskTier().String()
		riskTier = &s
	}

	tag, err := r.pool.Exec(ctx, query,
		a.ID(), a.ClientID(), a.AnalystID(), a.CreditType().String(),
		fin.MonthlyIncome, fin.MonthlyExpenses, fin.CurrentDebt, fin.RequestedAmount,
		fin.TermMonths, fin.AnnualRatePct,
		a.Score(), riskTier, a.EstimatedPayment(), a.Capacity(), a.Recommended(),
		a.Status().String(), a.DecidedBy(), a.DecisionComment(), a.DecidedAt(),
		a.Version(), a.CreatedAt(), a.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrVersionConflict
	}
	return nil
}

// FindByID retrieves a single credit analysis.
func (r *AnalysisRepo) FindByID(ctx context.Context, id string) (model.CreditAnalysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM credit_analyses WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	a, err := scanAnalysis(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CreditAnalysis{}, port.ErrNotFound
	}
	return a, err
}

// FindByClientID retrieves all analyses for a client, newest first.
func (r *AnalysisRepo) FindByClientID(ctx context.Context, clientID string) ([]model.CreditAnalysis, error) {
	query := `SELECT ` + analysisColumns + `
		FROM credit_analyses
		WHERE client_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var result []model.CreditAnalysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanAnalysis(s scannable) (model.CreditAnalysis, error) {
	var (
		id, clientID, analystID, creditTypeStr string
		monthlyIncome, monthlyExpenses         decimal.Decimal
		currentDebt, requestedAmount           decimal.Decimal
		termMonths                             int
		annualRatePct                          decimal.Decimal
		score                                  *int
		riskTierStr                            *string
		estimatedPayment, capacity             decimal.Decimal
		recommended                            bool
		statusStr                              string
		decidedBy, decisionComment             string
		decidedAt                              *time.Time
		version                                int
		createdAt, updatedAt                   time.Time
	)

	err := s.Scan(
		&id, &clientID, &analystID, &creditTypeStr,
		&monthlyIncome, &monthlyExpenses, &currentDebt, &requestedAmount,
		&termMonths, &annualRatePct,
		&score, &riskTierStr, &estimatedPayment, &capacity, &recommended,
		&statusStr, &decidedBy, &decisionComment, &decidedAt,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CreditAnalysis{}, err
		}
		return model.CreditAnalysis{}, fmt.Errorf("scan analysis: %w", err)
	}

	creditType, err := valueobject.NewCreditType(creditTypeStr)
	if err != nil {
		return model.CreditAnalysis{}, fmt.Errorf("parse credit type: %w", err)
	}

	status, err := valueobject.NewAnalysisStatus(statusStr)
	if err != nil {
		return model.CreditAnalysis{}, fmt.Errorf("parse status: %w", err)
	}

	var riskTier valueobject.RiskTier
	if riskTierStr != nil {
		riskTier, err = valueobject.NewRiskTier(*riskTierStr)
		if err != nil {
			return model.CreditAnalysis{}, fmt.Errorf("parse risk tier: %w", err)
		}
	}

	// Stored financials were validated on the way in; rebuild directly.
	fin := valueobject.ApplicantFinancials{
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
		CurrentDebt:     currentDebt,
		RequestedAmount: requestedAmount,
		TermMonths:      termMonths,
		AnnualRatePct:   annualRatePct,
	}

	return model.ReconstructCreditAnalysis(
		id, clientID, analystID,
		creditType, fin,
		score, riskTier,
		estimatedPayment, capacity, recommended,
		status, decidedBy, decisionComment, decidedAt,
		version, createdAt, updatedAt,
	), nil
}
