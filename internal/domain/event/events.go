package event

import (
	"github.com/shopspring/decimal"

	"github.com/credora/credit-analysis-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Credit Analysis Events
// ---------------------------------------------------------------------------

// AnalysisSubmitted is raised when a new credit analysis enters the system.
type AnalysisSubmitted struct {
	events.BaseEvent
	ClientID        string          `json:"client_id"`
	AnalystID       string          `json:"analyst_id"`
	CreditType      string          `json:"credit_type"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	TermMonths      int             `json:"term_months"`
}

func NewAnalysisSubmitted(
	analysisID, clientID, analystID, creditType string,
	requestedAmount decimal.Decimal, termMonths int,
) AnalysisSubmitted {
	return AnalysisSubmitted{
		BaseEvent:       events.NewBaseEvent("analysis.submitted", analysisID, "CreditAnalysis"),
		ClientID:        clientID,
		AnalystID:       analystID,
		CreditType:      creditType,
		RequestedAmount: requestedAmount,
		TermMonths:      termMonths,
	}
}

// AnalysisScored is raised whenever an analysis is scored or re-scored.
type AnalysisScored struct {
	events.BaseEvent
	RiskTier         string          `json:"risk_tier"`
	Score            int             `json:"score"`
	EstimatedPayment decimal.Decimal `json:"estimated_payment"`
	Capacity         decimal.Decimal `json:"capacity"`
	Recommended      bool            `json:"recommended"`
}

func NewAnalysisScored(
	analysisID string,
	score int, riskTier string,
	estimatedPayment, capacity decimal.Decimal,
	recommended bool,
) AnalysisScored {
	return AnalysisScored{
		BaseEvent:        events.NewBaseEvent("analysis.scored", analysisID, "CreditAnalysis"),
		Score:            score,
		RiskTier:         riskTier,
		EstimatedPayment: estimatedPayment,
		Capacity:         capacity,
		Recommended:      recommended,
	}
}

// AnalysisDecided is raised when an analyst settles an analysis
// (approve, reject, hold or cancel).
type AnalysisDecided struct {
	events.BaseEvent
	Status    string `json:"status"`
	DecidedBy string `json:"decided_by"`
	Comment   string `json:"comment,omitempty"`
}

func NewAnalysisDecided(analysisID, status, decidedBy, comment string) AnalysisDecided {
	return AnalysisDecided{
		BaseEvent: events.NewBaseEvent("analysis.decided", analysisID, "CreditAnalysis"),
		Status:    status,
		DecidedBy: decidedBy,
		Comment:   comment,
	}
}

// ---------------------------------------------------------------------------
// Client Events
// ---------------------------------------------------------------------------

// ClientRegistered is raised when a new client record is created.
type ClientRegistered struct {
	events.BaseEvent
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
}

func NewClientRegistered(clientID, identificationType, identificationNumber string) ClientRegistered {
	return ClientRegistered{
		BaseEvent:            events.NewBaseEvent("client.registered", clientID, "Client"),
		IdentificationType:   identificationType,
		IdentificationNumber: identificationNumber,
	}
}

// ---------------------------------------------------------------------------
// Document Events
// ---------------------------------------------------------------------------

// DocumentAttached is raised when a supporting document is linked to an analysis.
type DocumentAttached struct {
	events.BaseEvent
	AnalysisID   string `json:"analysis_id"`
	DocumentType string `json:"document_type"`
}

func NewDocumentAttached(documentID, analysisID, documentType string) DocumentAttached {
	return DocumentAttached{
		BaseEvent:    events.NewBaseEvent("analysis.document_attached", documentID, "AnalysisDocument"),
		AnalysisID:   analysisID,
		DocumentType: documentType,
	}
}
