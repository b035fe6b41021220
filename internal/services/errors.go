package services

import (
	"errors"

	"stockit/internal/repositories"
)

var (
	// ErrNotFound mirrors the repository sentinel so handlers only deal
	// with service-level errors.
	ErrNotFound         = repositories.ErrNotFound
	ErrDuplicateBarcode = repositories.ErrDuplicateBarcode

	ErrInvalidQuantity  = errors.New("cant must be a positive integer")
	ErrDocumentTooLarge = errors.New("document exceeds the 2 MiB limit")
	ErrInvalidLogin     = errors.New("invalid username or password")
)
