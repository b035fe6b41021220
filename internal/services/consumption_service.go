package services

import (
	"context"
	"log"
	"time"

	"stockit/internal/caching"
	"stockit/internal/models"
	"stockit/internal/repositories"

	"github.com/google/uuid"
)

type ConsumptionService interface {
	List(ctx context.Context) ([]*models.Consumption, error)
	// Record creates the consumption and decrements the product's stock,
	// returning the stock level after the decrement.
	Record(ctx context.Context, consumption *models.Consumption) (int, error)
}

type consumptionService struct {
	consumptionRepo repositories.ConsumptionRepository
	productRepo     repositories.ProductRepository
	cacheService    caching.CacheService
}

func NewConsumptionService(consumptionRepo repositories.ConsumptionRepository, productRepo repositories.ProductRepository, cacheService caching.CacheService) ConsumptionService {
	return &consumptionService{
		consumptionRepo: consumptionRepo,
		productRepo:     productRepo,
		cacheService:    cacheService,
	}
}

func (s *consumptionService) List(ctx context.Context) ([]*models.Consumption, error) {
	return s.consumptionRepo.List(ctx)
}

func (s *consumptionService) Record(ctx context.Context, consumption *models.Consumption) (int, error) {
	if consumption.Cant <= 0 {
		return 0, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, consumption.ProductID)
	if err != nil {
		return 0, err
	}

	consumption.ID = uuid.New()
	if consumption.Date.IsZero() {
		consumption.Date = time.Now().UTC()
	}

	stoc, err := s.consumptionRepo.Record(ctx, consumption)
	if err != nil {
		return 0, err
	}

	if cacheErr := s.cacheService.DeleteProduct(ctx, product.ID); cacheErr != nil {
		log.Printf("Failed to invalidate cache for product %s: %v", product.ID, cacheErr)
	}
	if product.Barcode != nil {
		if cacheErr := s.cacheService.DeleteBarcode(ctx, *product.Barcode); cacheErr != nil {
			log.Printf("Failed to invalidate barcode cache %s: %v", *product.Barcode, cacheErr)
		}
	}

	return stoc, nil
}
