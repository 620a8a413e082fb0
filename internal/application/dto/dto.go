package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// RegisterClientRequest carries the data needed to register a new client.
type RegisterClientRequest struct {
	IdentificationType   string          `json:"identification_type"`
	IdentificationNumber string          `json:"identification_number"`
	FirstNames           string          `json:"first_names"`
	LastNames            string          `json:"last_names"`
	Email                string          `json:"email"`
	Phone                string          `json:"phone"`
	Address              string          `json:"address"`
	MonthlyIncome        decimal.Decimal `json:"monthly_income"`
}

// FinancialInput groups the applicant figures every scoring run needs.
type FinancialInput struct {
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	CurrentDebt     decimal.Decimal `json:"current_debt"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	AnnualRatePct   decimal.Decimal `json:"annual_rate_pct"`
	TermMonths      int             `json:"term_months"`
}

// SubmitAnalysisRequest carries the data needed to open a credit analysis.
type SubmitAnalysisRequest struct {
	ClientID   string         `json:"client_id"`
	AnalystID  string         `json:"analyst_id"`
	CreditType string         `json:"credit_type"`
	Financials FinancialInput `json:"financials"`
}

// DecideAnalysisRequest carries an analyst decision on a pending analysis.
type DecideAnalysisRequest struct {
	AnalysisID string `json:"analysis_id"`
	Action     string `json:"action"` // APPROVE, REJECT, HOLD, CANCEL
	ActorID    string `json:"actor_id"`
	Comment    string `json:"comment"`
}

// ReevaluateAnalysisRequest re-runs scoring with fresh financials.
type ReevaluateAnalysisRequest struct {
	AnalysisID string         `json:"analysis_id"`
	Financials FinancialInput `json:"financials"`
}

// AttachDocumentRequest links a stored document to an analysis.
type AttachDocumentRequest struct {
	AnalysisID   string `json:"analysis_id"`
	DocumentType string `json:"document_type"`
	StorageKey   string `json:"storage_key"`
	Notes        string `json:"notes"`
}

// QuoteLoanRequest runs the scoring pipeline without persisting anything.
type QuoteLoanRequest struct {
	Financials      FinancialInput `json:"financials"`
	IncludeSchedule bool           `json:"include_schedule"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ClientResponse is the outward representation of a client record.
type ClientResponse struct {
	ID                   string          `json:"id"`
	IdentificationType   string          `json:"identification_type"`
	IdentificationNumber string          `json:"identification_number"`
	FirstNames           string          `json:"first_names"`
	LastNames            string          `json:"last_names"`
	FullName             string          `json:"full_name"`
	Email                string          `json:"email"`
	Phone                string          `json:"phone"`
	Address              string          `json:"address"`
	MonthlyIncome        decimal.Decimal `json:"monthly_income"`
	RegisteredAt         time.Time       `json:"registered_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// AnalysisResponse is the outward representation of a credit analysis.
type AnalysisResponse struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"client_id"`
	AnalystID        string          `json:"analyst_id"`
	CreditType       string          `json:"credit_type"`
	Status           string          `json:"status"`
	Score            *int            `json:"score"`
	RiskTier         string          `json:"risk_tier,omitempty"`
	EstimatedPayment decimal.Decimal `json:"estimated_payment"`
	Capacity         decimal.Decimal `json:"capacity"`
	Recommended      bool            `json:"recommended"`
	Financials       FinancialInput  `json:"financials"`
	DecidedBy        string          `json:"decided_by,omitempty"`
	DecisionComment  string          `json:"decision_comment,omitempty"`
	DecidedAt        *time.Time      `json:"decided_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// DocumentResponse is the outward representation of an attached document.
type DocumentResponse struct {
	ID         string    `json:"id"`
	AnalysisID string    `json:"analysis_id"`
	Type       string    `json:"document_type"`
	StorageKey string    `json:"storage_key"`
	Notes      string    `json:"notes,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ScheduleEntryResponse is one period of an amortization schedule.
type ScheduleEntryResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// QuoteLoanResponse carries the stateless scoring preview.
type QuoteLoanResponse struct {
	Score          int                     `json:"score"`
	RiskTier       string                  `json:"risk_tier"`
	MonthlyPayment decimal.Decimal         `json:"monthly_payment"`
	Capacity       decimal.Decimal         `json:"capacity"`
	Recommended    bool                    `json:"recommended"`
	Schedule       []ScheduleEntryResponse `json:"schedule,omitempty"`
}
