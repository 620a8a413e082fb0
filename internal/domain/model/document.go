package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// AnalysisDocument links a supporting document to a credit analysis. Only the
// reference (storage key) lives here; the bytes belong to the file store.
type AnalysisDocument struct {
	ID         string
	AnalysisID string
	Type       valueobject.DocumentType
	StorageKey string
	Notes      string
	UploadedAt time.Time
}

// NewAnalysisDocument validates and builds a document reference.
func NewAnalysisDocument(
	analysisID string,
	docType valueobject.DocumentType,
	storageKey, notes string,
	now time.Time,
) (AnalysisDocument, error) {
	if analysisID == "" {
		return AnalysisDocument{}, errors.New("analysis ID is required")
	}
	if docType.IsZero() {
		return AnalysisDocument{}, errors.New("document type is required")
	}
	if strings.TrimSpace(storageKey) == "" {
		return AnalysisDocument{}, errors.New("storage key is required")
	}

	return AnalysisDocument{
		ID:         uuid.New().String(),
		AnalysisID: analysisID,
		Type:       docType,
		StorageKey: storageKey,
		Notes:      notes,
		UploadedAt: now,
	}, nil
}
