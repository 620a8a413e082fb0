package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// AnalysisStatus – immutable value object
// ---------------------------------------------------------------------------

// AnalysisStatus represents the lifecycle stage of a credit analysis.
type AnalysisStatus struct {
	value string
}

const (
	analysisStatusPending   = "PENDING"
	analysisStatusApproved  = "APPROVED"
	analysisStatusRejected  = "REJECTED"
	analysisStatusOnHold    = "ON_HOLD"
	analysisStatusCancelled = "CANCELLED"
)

var (
	AnalysisStatusPending   = AnalysisStatus{value: analysisStatusPending}
	AnalysisStatusApproved  = AnalysisStatus{value: analysisStatusApproved}
	AnalysisStatusRejected  = AnalysisStatus{value: analysisStatusRejected}
	AnalysisStatusOnHold    = AnalysisStatus{value: analysisStatusOnHold}
	AnalysisStatusCancelled = AnalysisStatus{value: analysisStatusCancelled}
)

var validAnalysisStatuses = map[string]AnalysisStatus{
	analysisStatusPending:   AnalysisStatusPending,
	analysisStatusApproved:  AnalysisStatusApproved,
	analysisStatusRejected:  AnalysisStatusRejected,
	analysisStatusOnHold:    AnalysisStatusOnHold,
	analysisStatusCancelled: AnalysisStatusCancelled,
}

// NewAnalysisStatus creates an AnalysisStatus from a raw string.
func NewAnalysisStatus(s string) (AnalysisStatus, error) {
	v, ok := validAnalysisStatuses[s]
	if !ok {
		return AnalysisStatus{}, fmt.Errorf("invalid analysis status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s AnalysisStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s AnalysisStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s AnalysisStatus) Equal(other AnalysisStatus) bool { return s.value == other.value }

// IsTerminal reports whether the status admits no further analyst decisions.
// ON_HOLD is deliberately not terminal: a held analysis re-enters review.
func (s AnalysisStatus) IsTerminal() bool {
	switch s.value {
	case analysisStatusApproved, analysisStatusRejected, analysisStatusCancelled:
		return true
	default:
		return false
	}
}

// IsDecidable reports whether an analyst decision may be applied to a record
// in this status.
func (s AnalysisStatus) IsDecidable() bool {
	return s.value == analysisStatusPending || s.value == analysisStatusOnHold
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
