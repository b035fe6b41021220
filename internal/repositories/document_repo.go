package repositories

import (
	"context"

	"stockit/internal/models"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	ListMetaByProduct(ctx context.Context, productID uuid.UUID) ([]*models.DocumentMeta, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct {
	db DB
}

func NewDocumentRepository(db DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, document *models.Document) error {
	query := `
		INSERT INTO documents (id, product_id, file_name, file_bytes, document_type, content_type, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		document.ID, document.ProductID, document.FileName, document.FileBytes,
		document.DocumentType, document.ContentType, document.UploadedAt,
	)
	return translateError(err)
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	document := &models.Document{}
	query := `
		SELECT id, product_id, file_name, file_bytes, document_type, content_type, uploaded_at
		FROM documents
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&document.ID, &document.ProductID, &document.FileName, &document.FileBytes,
		&document.DocumentType, &document.ContentType, &document.UploadedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return document, nil
}

// ListMetaByProduct never selects file_bytes; listings stay small.
func (r *documentRepo) ListMetaByProduct(ctx context.Context, productID uuid.UUID) ([]*models.DocumentMeta, error) {
	query := `
		SELECT id, product_id, file_name, document_type, content_type, uploaded_at
		FROM documents
		WHERE product_id = $1
		ORDER BY uploaded_at DESC
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []*models.DocumentMeta
	for rows.Next() {
		meta := &models.DocumentMeta{}
		if err := rows.Scan(&meta.ID, &meta.ProductID, &meta.FileName, &meta.DocumentType, &meta.ContentType, &meta.UploadedAt); err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
