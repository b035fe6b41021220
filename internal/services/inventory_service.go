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

// productCacheTTL is short because stock levels change often.
const productCacheTTL = 5 * time.Minute

type InventoryService interface {
	List(ctx context.Context) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, upd *models.ProductUpdate) (*models.Product, error)
	LookupByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	Move(ctx context.Context, id uuid.UUID, toLocation string) (*models.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error)
}

type inventoryService struct {
	productRepo  repositories.ProductRepository
	cacheService caching.CacheService
}

func NewInventoryService(productRepo repositories.ProductRepository, cacheService caching.CacheService) InventoryService {
	return &inventoryService{
		productRepo:  productRepo,
		cacheService: cacheService,
	}
}

func (s *inventoryService) List(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.List(ctx)
}

// Create persists the product together with its initial location history
// entry, so every product has a history row from the moment it exists.
func (s *inventoryService) Create(ctx context.Context, product *models.Product) error {
	product.ID = uuid.New()
	if product.CurrentLocation == "" {
		product.CurrentLocation = models.DefaultLocation
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	initial := &models.LocationHistory{
		ID:           uuid.New(),
		ProductID:    product.ID,
		FromLocation: nil,
		ToLocation:   product.CurrentLocation,
		MovedAt:      now,
	}
	return s.productRepo.Create(ctx, product, initial)
}

func (s *inventoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if cached, err := s.cacheService.GetProduct(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("Cache error for product %s: %v", id, err)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.SetProduct(ctx, product, productCacheTTL); cacheErr != nil {
		log.Printf("Failed to cache product %s: %v", id, cacheErr)
	}
	return product, nil
}

// Update overwrites only the provided fields. Stoc is applied as given;
// clamping happens on consumption-driven decrements, not on direct edits.
func (s *inventoryService) Update(ctx context.Context, id uuid.UUID, upd *models.ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldBarcode := product.Barcode

	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Cat != nil {
		product.Cat = *upd.Cat
	}
	if upd.Stoc != nil {
		product.Stoc = *upd.Stoc
	}
	if upd.Barcode != nil {
		product.Barcode = upd.Barcode
	}
	if upd.CurrentLocation != nil {
		product.CurrentLocation = *upd.CurrentLocation
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now().UTC()

	s.invalidate(ctx, product)
	if oldBarcode != nil && (product.Barcode == nil || *product.Barcode != *oldBarcode) {
		if cacheErr := s.cacheService.DeleteBarcode(ctx, *oldBarcode); cacheErr != nil {
			log.Printf("Failed to invalidate barcode cache %s: %v", *oldBarcode, cacheErr)
		}
	}

	return product, nil
}

func (s *inventoryService) LookupByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	if cached, err := s.cacheService.GetProductByBarcode(ctx, barcode); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("Cache error for barcode %s: %v", barcode, err)
	}

	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.SetProductByBarcode(ctx, product, productCacheTTL); cacheErr != nil {
		log.Printf("Failed to cache barcode %s: %v", barcode, cacheErr)
	}
	return product, nil
}

// Move appends the history entry and rewrites current_location in one
// repository transaction; FromLocation is the pre-move location.
func (s *inventoryService) Move(ctx context.Context, id uuid.UUID, toLocation string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := product.CurrentLocation
	entry := &models.LocationHistory{
		ID:           uuid.New(),
		ProductID:    product.ID,
		FromLocation: &from,
		ToLocation:   toLocation,
		MovedAt:      time.Now().UTC(),
	}
	if err := s.productRepo.Move(ctx, product, entry); err != nil {
		return nil, err
	}

	product.CurrentLocation = toLocation
	product.UpdatedAt = entry.MovedAt
	s.invalidate(ctx, product)

	return product, nil
}

func (s *inventoryService) ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	return s.productRepo.ListLowStock(ctx, threshold)
}

func (s *inventoryService) invalidate(ctx context.Context, product *models.Product) {
	if cacheErr := s.cacheService.DeleteProduct(ctx, product.ID); cacheErr != nil {
		log.Printf("Failed to invalidate cache for product %s: %v", product.ID, cacheErr)
	}
	if product.Barcode != nil {
		if cacheErr := s.cacheService.DeleteBarcode(ctx, *product.Barcode); cacheErr != nil {
			log.Printf("Failed to invalidate barcode cache %s: %v", *product.Barcode, cacheErr)
		}
	}
}
