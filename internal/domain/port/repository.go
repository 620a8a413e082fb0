package port

import (
	"context"
	"errors"

	"github.com/credora/credit-analysis-service/internal/domain/event"
	"github.com/credora/credit-analysis-service/internal/domain/model"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrVersionConflict is returned when an optimistic save loses against a
// concurrent writer. The caller decides whether to reload and retry.
var ErrVersionConflict = errors.New("version conflict")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// AnalysisRepository persists and retrieves credit analyses.
type AnalysisRepository interface {
	Save(ctx context.Context, analysis model.CreditAnalysis) error
	FindByID(ctx context.Context, id string) (model.CreditAnalysis, error)
	FindByClientID(ctx context.Context, clientID string) ([]model.CreditAnalysis, error)
}

// ClientRepository persists and retrieves client records.
type ClientRepository interface {
	Save(ctx context.Context, client model.Client) error
	FindByID(ctx context.Context, id string) (model.Client, error)
	FindByIdentification(ctx context.Context, identificationNumber string) (model.Client, error)
}

// DocumentRepository persists and retrieves analysis document references.
type DocumentRepository interface {
	Save(ctx context.Context, doc model.AnalysisDocument) error
	FindByAnalysisID(ctx context.Context, analysisID string) ([]model.AnalysisDocument, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
