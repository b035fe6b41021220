package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"stockit/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService caches product lookups. Callers treat a (nil, nil) result
// as a miss; cache failures must never fail the request path.
type CacheService interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	SetProductByBarcode(ctx context.Context, product *models.Product, ttl time.Duration) error
	DeleteBarcode(ctx context.Context, barcode string) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, addr)
	}

	return &redisCacheService{client: client}
}

func productKey(id uuid.UUID) string {
	return fmt.Sprintf("stockit:product:%s", id.String())
}

func barcodeKey(barcode string) string {
	return fmt.Sprintf("stockit:barcode:%s", barcode)
}

func (r *redisCacheService) getProduct(ctx context.Context, key string) (*models.Product, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *redisCacheService) setProduct(ctx context.Context, key string, product *models.Product, ttl time.Duration) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return r.getProduct(ctx, productKey(id))
}

func (r *redisCacheService) SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	return r.setProduct(ctx, productKey(product.ID), product, ttl)
}

func (r *redisCacheService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, productKey(id)).Err()
}

func (r *redisCacheService) GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	return r.getProduct(ctx, barcodeKey(barcode))
}

func (r *redisCacheService) SetProductByBarcode(ctx context.Context, product *models.Product, ttl time.Duration) error {
	if product.Barcode == nil {
		return nil
	}
	return r.setProduct(ctx, barcodeKey(*product.Barcode), product, ttl)
}

func (r *redisCacheService) DeleteBarcode(ctx context.Context, barcode string) error {
	return r.client.Del(ctx, barcodeKey(barcode)).Err()
}
