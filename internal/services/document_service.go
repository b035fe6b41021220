package services

import (
	"context"
	"net/http"
	"time"

	"stockit/internal/models"
	"stockit/internal/repositories"

	"github.com/google/uuid"
)

type DocumentService interface {
	Upload(ctx context.Context, productID uuid.UUID, fileName string, data []byte, documentType string) (*models.DocumentMeta, error)
	ListForProduct(ctx context.Context, productID uuid.UUID) ([]*models.DocumentMeta, error)
	Fetch(ctx context.Context, id uuid.UUID) (*models.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	documentRepo repositories.DocumentRepository
	productRepo  repositories.ProductRepository
}

func NewDocumentService(documentRepo repositories.DocumentRepository, productRepo repositories.ProductRepository) DocumentService {
	return &documentService{
		documentRepo: documentRepo,
		productRepo:  productRepo,
	}
}

// Upload stores the raw bytes inline with the metadata. The content type
// is sniffed from the payload rather than trusted from the client, so a
// non-PDF upload is never served later with a misleading header.
func (s *documentService) Upload(ctx context.Context, productID uuid.UUID, fileName string, data []byte, documentType string) (*models.DocumentMeta, error) {
	if len(data) > models.MaxDocumentSize {
		return nil, ErrDocumentTooLarge
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	document := &models.Document{
		ID:           uuid.New(),
		ProductID:    productID,
		FileName:     fileName,
		FileBytes:    data,
		DocumentType: models.NormalizeDocumentType(documentType),
		ContentType:  http.DetectContentType(data),
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}

	return &models.DocumentMeta{
		ID:           document.ID,
		ProductID:    document.ProductID,
		FileName:     document.FileName,
		DocumentType: document.DocumentType,
		ContentType:  document.ContentType,
		UploadedAt:   document.UploadedAt,
	}, nil
}

func (s *documentService) ListForProduct(ctx context.Context, productID uuid.UUID) ([]*models.DocumentMeta, error) {
	return s.documentRepo.ListMetaByProduct(ctx, productID)
}

func (s *documentService) Fetch(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.documentRepo.Delete(ctx, id)
}
