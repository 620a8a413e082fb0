package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// DocumentRepo implements port.DocumentRepository.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepo creates a new repository backed by PostgreSQL.
func NewDocumentRepo(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// Save persists a document reference. Documents are immutable once attached,
// so there is no update path.
func (r *DocumentRepo) Save(ctx context.Context, doc model.AnalysisDocument) error {
	query := `
		INSERT INTO analysis_documents (
			id, analysis_id, document_type, storage_key, notes, uploaded_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`
	_, err := r.pool.Exec(ctx, query,
		doc.ID, doc.AnalysisID, doc.Type.String(), doc.StorageKey, doc.Notes, doc.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// FindByAnalysisID retrieves all document references for an analysis.
func (r *DocumentRepo) FindByAnalysisID(ctx context.Context, analysisID string) ([]model.AnalysisDocument, error) {
	query := `
		SELECT id, analysis_id, document_type, storage_key, notes, uploaded_at
		FROM analysis_documents
		WHERE analysis_id = $1
		ORDER BY uploaded_at ASC
	`
	rows, err := r.pool.Query(ctx, query, analysisID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var result []model.AnalysisDocument
	for rows.Next() {
		var (
			doc     model.AnalysisDocument
			typeStr string
		)
		if err := rows.Scan(&doc.ID, &doc.AnalysisID, &typeStr, &doc.StorageKey, &doc.Notes, &doc.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docType, err := valueobject.NewDocumentType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("parse document type: %w", err)
		}
		doc.Type = docType
		result = append(result, doc)
	}
	return result, rows.Err()
}
