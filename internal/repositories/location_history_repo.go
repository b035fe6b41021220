package repositories

import (
	"context"

	"stockit/internal/models"

	"github.com/google/uuid"
)

const insertLocationHistorySQL = `
	INSERT INTO location_history (id, product_id, from_location, to_location, moved_at)
	VALUES ($1, $2, $3, $4, $5)
`

type LocationHistoryRepository interface {
	Append(ctx context.Context, entry *models.LocationHistory) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.LocationHistory, error)
	// BackfillInitial synthesizes an initial entry for every product that
	// has no history yet. Returns the number of entries created.
	BackfillInitial(ctx context.Context) (int64, error)
}

type locationHistoryRepo struct {
	db DB
}

func NewLocationHistoryRepository(db DB) LocationHistoryRepository {
	return &locationHistoryRepo{db: db}
}

func (r *locationHistoryRepo) Append(ctx context.Context, entry *models.LocationHistory) error {
	_, err := r.db.Exec(ctx, insertLocationHistorySQL,
		entry.ID, entry.ProductID, entry.FromLocation, entry.ToLocation, entry.MovedAt)
	return translateError(err)
}

func (r *locationHistoryRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.LocationHistory, error) {
	query := `
		SELECT id, product_id, from_location, to_location, moved_at
		FROM location_history
		WHERE product_id = $1
		ORDER BY moved_at DESC
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.LocationHistory
	for rows.Next() {
		entry := &models.LocationHistory{}
		if err := rows.Scan(&entry.ID, &entry.ProductID, &entry.FromLocation, &entry.ToLocation, &entry.MovedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// BackfillInitial is one statement guarded by NOT EXISTS, so repeated runs
// are idempotent per product.
func (r *locationHistoryRepo) BackfillInitial(ctx context.Context) (int64, error) {
	query := `
		INSERT INTO location_history (id, product_id, from_location, to_location, moved_at)
		SELECT gen_random_uuid(), p.id, NULL, p.current_location, NOW()
		FROM products p
		WHERE NOT EXISTS (
			SELECT 1 FROM location_history h WHERE h.product_id = p.id
		)
	`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
