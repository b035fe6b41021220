package repositories

import (
	"context"

	"stockit/internal/models"
)

type ConsumptionRepository interface {
	List(ctx context.Context) ([]*models.Consumption, error)
	// Record inserts the consumption and decrements the product's stock in
	// one transaction, returning the stock level after the decrement.
	Record(ctx context.Context, consumption *models.Consumption) (int, error)
}

type consumptionRepo struct {
	db DB
}

func NewConsumptionRepository(db DB) ConsumptionRepository {
	return &consumptionRepo{db: db}
}

func (r *consumptionRepo) List(ctx context.Context) ([]*models.Consumption, error) {
	query := `
		SELECT id, product_id, cant, date, consumed_by, locm
		FROM consumptions
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consumptions []*models.Consumption
	for rows.Next() {
		c := &models.Consumption{}
		if err := rows.Scan(&c.ID, &c.ProductID, &c.Cant, &c.Date, &c.User, &c.Locm); err != nil {
			return nil, err
		}
		consumptions = append(consumptions, c)
	}
	return consumptions, rows.Err()
}

// Record runs the decrement and the insert as one transaction. The
// decrement is a single SQL expression floored at zero, so concurrent
// consumptions never race a read-modify-write and stock never goes
// negative. A missing product rolls the whole operation back.
func (r *consumptionRepo) Record(ctx context.Context, consumption *models.Consumption) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var stoc int
	decrement := `
		UPDATE products
		SET stoc = GREATEST(stoc - $1, 0), updated_at = NOW()
		WHERE id = $2
		RETURNING stoc
	`
	if err := tx.QueryRow(ctx, decrement, consumption.Cant, consumption.ProductID).Scan(&stoc); err != nil {
		return 0, translateError(err)
	}

	insert := `
		INSERT INTO consumptions (id, product_id, cant, date, consumed_by, locm)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.Exec(ctx, insert, consumption.ID, consumption.ProductID, consumption.Cant, consumption.Date, consumption.User, consumption.Locm); err != nil {
		return 0, translateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return stoc, nil
}
