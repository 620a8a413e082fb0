package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credora/credit-analysis-service/internal/application/dto"
	"github.com/credora/credit-analysis-service/internal/application/usecase"
	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
)

func validAttachRequest() dto.AttachDocumentRequest {
	return dto.AttachDocumentRequest{
		AnalysisID:   "analysis-001",
		DocumentType: "INCOME_PROOF",
		StorageKey:   "analyses/analysis-001/payslip-july.pdf",
		Notes:        "July payslip",
	}
}

func TestAttachDocument_Execute(t *testing.T) {
	existingAnalysisRepo := func(t *testing.T) *mockAnalysisRepository {
		t.Helper()
		pending, err := pendingAnalysis()
		require.NoError(t, err)
		return &mockAnalysisRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.CreditAnalysis, error) {
				return pending, nil
			},
		}
	}

	t.Run("stores the document reference and publishes an event", func(t *testing.T) {
		documentRepo := &mockDocumentRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewAttachDocumentUseCase(documentRepo, existingAnalysisRepo(t), publisher)

		resp, err := uc.Execute(context.Background(), validAttachRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "INCOME_PROOF", resp.Type)
		assert.Equal(t, "analyses/analysis-001/payslip-july.pdf", resp.StorageKey)

		require.Len(t, documentRepo.savedDocs, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "analysis.document_attached", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails when the analysis does not exist", func(t *testing.T) {
		uc := usecase.NewAttachDocumentUseCase(
			&mockDocumentRepository{}, &mockAnalysisRepository{}, &mockEventPublisher{},
		)

		_, err := uc.Execute(context.Background(), validAttachRequest())

		assert.ErrorIs(t, err, port.ErrNotFound)
	})

	t.Run("fails on unknown document type", func(t *testing.T) {
		uc := usecase.NewAttachDocumentUseCase(
			&mockDocumentRepository{}, existingAnalysisRepo(t), &mockEventPublisher{},
		)

		req := validAttachRequest()
		req.DocumentType = "SELFIE"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse document type")
	})

	t.Run("fails when the document repository fails", func(t *testing.T) {
		documentRepo := &mockDocumentRepository{
			saveFunc: func(_ context.Context, _ model.AnalysisDocument) error {
				return fmt.Errorf("storage unavailable")
			},
		}
		uc := usecase.NewAttachDocumentUseCase(documentRepo, existingAnalysisRepo(t), &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), validAttachRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "save document")
	})
}
