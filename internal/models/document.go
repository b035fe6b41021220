package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxDocumentSize caps uploaded attachments at 2 MiB.
const MaxDocumentSize = 2 << 20

// Document attachment types.
const (
	DocumentTypeInvoice  = "invoice"
	DocumentTypeWarranty = "warranty"
	DocumentTypeManual   = "manual"
	DocumentTypeTransfer = "transfer"
	DocumentTypeOther    = "other"
)

// NormalizeDocumentType coerces unknown or empty values to "other".
func NormalizeDocumentType(t string) string {
	switch t {
	case DocumentTypeInvoice, DocumentTypeWarranty, DocumentTypeManual, DocumentTypeTransfer, DocumentTypeOther:
		return t
	default:
		return DocumentTypeOther
	}
}

// Document is a binary attachment stored inline with its metadata.
type Document struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ProductID    uuid.UUID `json:"productId" db:"product_id"`
	FileName     string    `json:"fileName" db:"file_name"`
	FileBytes    []byte    `json:"-" db:"file_bytes"`
	DocumentType string    `json:"documentType" db:"document_type"`
	ContentType  string    `json:"contentType" db:"content_type"`
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at"`
}

// DocumentMeta is the listing projection of Document, blob excluded so
// listing responses stay small.
type DocumentMeta struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ProductID    uuid.UUID `json:"productId" db:"product_id"`
	FileName     string    `json:"fileName" db:"file_name"`
	DocumentType string    `json:"documentType" db:"document_type"`
	ContentType  string    `json:"contentType" db:"content_type"`
	UploadedAt   time.Time `json:"uploadedAt" db:"uploaded_at"`
}
