package services

import (
	"context"
	"time"

	"stockit/internal/models"
	"stockit/internal/repositories"

	"github.com/google/uuid"
)

type LocationHistoryService interface {
	Append(ctx context.Context, productID uuid.UUID, fromLocation *string, toLocation string) error
	History(ctx context.Context, productID uuid.UUID) ([]*models.LocationHistory, error)
	Backfill(ctx context.Context) (int64, error)
}

type locationHistoryService struct {
	historyRepo repositories.LocationHistoryRepository
}

func NewLocationHistoryService(historyRepo repositories.LocationHistoryRepository) LocationHistoryService {
	return &locationHistoryService{historyRepo: historyRepo}
}

func (s *locationHistoryService) Append(ctx context.Context, productID uuid.UUID, fromLocation *string, toLocation string) error {
	entry := &models.LocationHistory{
		ID:           uuid.New(),
		ProductID:    productID,
		FromLocation: fromLocation,
		ToLocation:   toLocation,
		MovedAt:      time.Now().UTC(),
	}
	return s.historyRepo.Append(ctx, entry)
}

// History returns the audit log most recent first.
func (s *locationHistoryService) History(ctx context.Context, productID uuid.UUID) ([]*models.LocationHistory, error) {
	return s.historyRepo.ListByProduct(ctx, productID)
}

// Backfill creates an initial entry for products predating the history
// log. Safe to run on every start.
func (s *locationHistoryService) Backfill(ctx context.Context) (int64, error) {
	return s.historyRepo.BackfillInitial(ctx)
}
