package repositories

import (
	"context"

	"stockit/internal/models"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product, initial *models.LocationHistory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Move(ctx context.Context, product *models.Product, entry *models.LocationHistory) error
}

type productRepo struct {
	db DB
}

func NewProductRepository(db DB) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `id, name, cat, stoc, barcode, current_location, created_at, updated_at`

// Create inserts the product and its initial location history entry in
// one transaction so a new product never lacks a history row.
func (r *productRepo) Create(ctx context.Context, product *models.Product, initial *models.LocationHistory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO products (id, name, cat, stoc, barcode, current_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, query, product.ID, product.Name, product.Cat, product.Stoc, product.Barcode, product.CurrentLocation); err != nil {
		return translateError(err)
	}

	if _, err := tx.Exec(ctx, insertLocationHistorySQL, initial.ID, initial.ProductID, initial.FromLocation, initial.ToLocation, initial.MovedAt); err != nil {
		return translateError(err)
	}

	return tx.Commit(ctx)
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product := &models.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Cat, &product.Stoc,
		&product.Barcode, &product.CurrentLocation, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return product, nil
}

func (r *productRepo) GetByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	product := &models.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	err := r.db.QueryRow(ctx, query, barcode).Scan(
		&product.ID, &product.Name, &product.Cat, &product.Stoc,
		&product.Barcode, &product.CurrentLocation, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return product, nil
}

func (r *productRepo) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at`
	return r.queryProducts(ctx, query)
}

func (r *productRepo) ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stoc <= $1 ORDER BY stoc`
	return r.queryProducts(ctx, query, threshold)
}

func (r *productRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Cat, &product.Stoc,
			&product.Barcode, &product.CurrentLocation, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, cat = $2, stoc = $3, barcode = $4, current_location = $5, updated_at = NOW()
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query, product.Name, product.Cat, product.Stoc, product.Barcode, product.CurrentLocation, product.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Move appends the history entry and rewrites the product's location in
// one transaction.
func (r *productRepo) Move(ctx context.Context, product *models.Product, entry *models.LocationHistory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insertLocationHistorySQL, entry.ID, entry.ProductID, entry.FromLocation, entry.ToLocation, entry.MovedAt); err != nil {
		return translateError(err)
	}

	query := `UPDATE products SET current_location = $1, updated_at = NOW() WHERE id = $2`
	tag, err := tx.Exec(ctx, query, entry.ToLocation, product.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}
