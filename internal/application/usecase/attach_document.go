package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/domain/event"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// AttachDocumentUseCase links an already-stored document to an analysis.
// Uploading the bytes is the file store's business, not ours.
type AttachDocumentUseCase struct {
	documentRepo port.DocumentRepository
	analysisRepo port.AnalysisRepository
	publisher    port.EventPublisher
}

// NewAttachDocumentUseCase wires dependencies.
func NewAttachDocumentUseCase(
	documentRepo port.DocumentRepository,
	analysisRepo port.AnalysisRepository,
	publisher port.EventPublisher,
) *AttachDocumentUseCase {
	return &AttachDocumentUseCase{
		documentRepo: documentRepo,
		analysisRepo: analysisRepo,
		publisher:    publisher,
	}
}

// Execute validates the reference and persists it.
func (uc *AttachDocumentUseCase) Execute(
	ctx context.Context,
	req dto.AttachDocumentRequest,
) (dto.DocumentResponse, error) {
	now := time.Now().UTC()

	if _, err := uc.analysisRepo.FindByID(ctx, req.AnalysisID); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("load analysis: %w", err)
	}

	docType, err := valueobject.NewDocumentType(req.DocumentType)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("parse document type: %w", err)
	}

	doc, err := model.NewAnalysisDocument(req.AnalysisID, docType, req.StorageKey, req.Notes, now)
	if err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("create document: %w", err)
	}

	if err := uc.documentRepo.Save(ctx, doc); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("save document: %w", err)
	}

	attached := event.NewDocumentAttached(doc.ID, doc.AnalysisID, doc.Type.String())
	if err := uc.publisher.Publish(ctx, attached); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.DocumentResponse{
		ID:         doc.ID,
		AnalysisID: doc.AnalysisID,
		Type:       doc.Type.String(),
		StorageKey: doc.StorageKey,
		Notes:      doc.Notes,
		UploadedAt: doc.UploadedAt,
	}, nil
}
