package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credora/credit-analysis-service/internal/domain/event"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CreditAnalysis aggregate root
// ---------------------------------------------------------------------------

// CreditAnalysis is an immutable aggregate. Every mutation returns a new copy.
//
// The affordability recommendation carried by the aggregate is advisory
// metadata: it never gates an analyst decision. Only the status machinery
// enforces transition rules.
type CreditAnalysis struct {
	id               string
	clientID         string
	analystID        string
	creditType       valueobject.CreditType
	financials       valueobject.ApplicantFinancials
	score            *int
	riskTier         valueobject.RiskTier
	estimatedPayment decimal.Decimal
	capacity         decimal.Decimal
	recommended      bool
	status           valueobject.AnalysisStatus
	decidedBy        string
	decisionComment  string
	decidedAt        *time.Time
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	domainEvents     []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewCreditAnalysis creates a brand-new analysis in PENDING status. Scoring
// happens separately through RecordEvaluation, immediately after creation.
func NewCreditAnalysis(
	clientID, analystID string,
	creditType valueobject.CreditType,
	financials valueobject.ApplicantFinancials,
	now time.Time,
) (CreditAnalysis, error) {
	if clientID == "" {
		return CreditAnalysis{}, errors.New("client ID is required")
	}
	if analystID == "" {
		return CreditAnalysis{}, errors.New("analyst ID is required")
	}
	if creditType.IsZero() {
		return CreditAnalysis{}, errors.New("credit type is required")
	}

	id := uuid.New().String()
	a := CreditAnalysis{
		id:               id,
		clientID:         clientID,
		analystID:        analystID,
		creditType:       creditType,
		financials:       financials,
		estimatedPayment: decimal.Zero,
		capacity:         decimal.Zero,
		status:           valueobject.AnalysisStatusPending,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}

	a.domainEvents = append(a.domainEvents, event.NewAnalysisSubmitted(
		id, clientID, analystID, creditType.String(),
		financials.RequestedAmount, financials.TermMonths,
	))
	return a, nil
}

// ReconstructCreditAnalysis rebuilds an aggregate from persistence without
// side-effects.
func ReconstructCreditAnalysis(
	id, clientID, analystID string,
	creditType valueobject.CreditType,
	financials valueobject.ApplicantFinancials,
	score *int,
	riskTier valueobject.RiskTier,
	estimatedPayment, capacity decimal.Decimal,
	recommended bool,
	status valueobject.AnalysisStatus,
	decidedBy, decisionComment string,
	decidedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) CreditAnalysis {
	return CreditAnalysis{
		id:               id,
		clientID:         clientID,
		analystID:        analystID,
		creditType:       creditType,
		financials:       financials,
		score:            score,
		riskTier:         riskTier,
		estimatedPayment: estimatedPayment,
		capacity:         capacity,
		recommended:      recommended,
		status:           status,
		decidedBy:        decidedBy,
		decisionComment:  decisionComment,
		decidedAt:        decidedAt,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Evaluation
// ---------------------------------------------------------------------------

// RecordEvaluation attaches a scoring outcome to the analysis, replacing the
// stored financials with the evaluated ones. A score, once set, only changes
// through this full re-evaluation path, and only while the record is still
// open for review (PENDING or ON_HOLD).
func (a CreditAnalysis) RecordEvaluation(
	financials valueobject.ApplicantFinancials,
	score int,
	riskTier valueobject.RiskTier,
	estimatedPayment, capacity decimal.Decimal,
	recommended bool,
	now time.Time,
) (CreditAnalysis, error) {
	if !a.status.IsDecidable() {
		return a, valueobject.ErrInvalidStatusTransition
	}

	next := a
	next.financials = financials
	next.score = &score
	next.riskTier = riskTier
	next.estimatedPayment = estimatedPayment
	next.capacity = capacity.Round(2)
	next.recommended = recommended
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewAnalysisScored(
		a.id, score, riskTier.String(), estimatedPayment, next.capacity, recommended,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Analyst decisions (each returns a new copy)
// ---------------------------------------------------------------------------

// Approve settles the analysis as APPROVED. Allowed from PENDING or ON_HOLD.
func (a CreditAnalysis) Approve(actorID, comment string, now time.Time) (CreditAnalysis, error) {
	return a.decide(valueobject.AnalysisStatusApproved, actorID, comment, now)
}

// Reject settles the analysis as REJECTED. Allowed from PENDING or ON_HOLD.
func (a CreditAnalysis) Reject(actorID, comment string, now time.Time) (CreditAnalysis, error) {
	return a.decide(valueobject.AnalysisStatusRejected, actorID, comment, now)
}

// Cancel settles the analysis as CANCELLED. Allowed from PENDING or ON_HOLD.
func (a CreditAnalysis) Cancel(actorID, comment string, now time.Time) (CreditAnalysis, error) {
	return a.decide(valueobject.AnalysisStatusCancelled, actorID, comment, now)
}

// PutOnHold parks the analysis for later review. Holding an already-held
// analysis is a no-op success.
func (a CreditAnalysis) PutOnHold(actorID, comment string, now time.Time) (CreditAnalysis, error) {
	if a.status.Equal(valueobject.AnalysisStatusOnHold) {
		return a, nil
	}
	return a.decide(valueobject.AnalysisStatusOnHold, actorID, comment, now)
}

func (a CreditAnalysis) decide(
	target valueobject.AnalysisStatus,
	actorID, comment string,
	now time.Time,
) (CreditAnalysis, error) {
	if actorID == "" {
		return a, errors.New("actor ID is required")
	}
	if !a.status.IsDecidable() {
		return a, valueobject.ErrInvalidStatusTransition
	}

	next := a
	next.status = target
	next.decidedBy = actorID
	next.decisionComment = comment
	next.decidedAt = &now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewAnalysisDecided(
		a.id, target.String(), actorID, comment,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a CreditAnalysis) ID() string                                      { return a.id }
func (a CreditAnalysis) ClientID() string                                { return a.clientID }
func (a CreditAnalysis) AnalystID() string                               { return a.analystID }
func (a CreditAnalysis) CreditType() valueobject.CreditType              { return a.creditType }
func (a CreditAnalysis) Financials() valueobject.ApplicantFinancials     { return a.financials }
func (a CreditAnalysis) RiskTier() valueobject.RiskTier                  { return a.riskTier }
func (a CreditAnalysis) EstimatedPayment() decimal.Decimal               { return a.estimatedPayment }
func (a CreditAnalysis) Capacity() decimal.Decimal                       { return a.capacity }
func (a CreditAnalysis) Recommended() bool                               { return a.recommended }
func (a CreditAnalysis) Status() valueobject.AnalysisStatus              { return a.status }
func (a CreditAnalysis) DecidedBy() string                               { return a.decidedBy }
func (a CreditAnalysis) DecisionComment() string                         { return a.decisionComment }
func (a CreditAnalysis) Version() int                                    { return a.version }
func (a CreditAnalysis) CreatedAt() time.Time                            { return a.createdAt }
func (a CreditAnalysis) UpdatedAt() time.Time                            { return a.updatedAt }
func (a CreditAnalysis) DomainEvents() []event.DomainEvent               { return a.domainEvents }

// Score returns the credit score, or nil when the analysis has not been
// evaluated yet. The returned pointer is a copy.
func (a CreditAnalysis) Score() *int {
	if a.score == nil {
		return nil
	}
	s := *a.score
	return &s
}

// DecidedAt returns the time of the last analyst decision, or nil.
func (a CreditAnalysis) DecidedAt() *time.Time {
	if a.decidedAt == nil {
		return nil
	}
	t := *a.decidedAt
	return &t
}

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a CreditAnalysis) ClearEvents() CreditAnalysis {
	next := a
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
