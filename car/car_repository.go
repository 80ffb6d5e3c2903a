package car

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetByID(ctx context.Context, id string) (Car, error) {
	sql := `SELECT id, owner_id, brand, model, price_per_day, is_active FROM cars WHERE id = $1;`

	var c Car
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&c.ID,
		&c.OwnerID,
		&c.Brand,
		&c.Model,
		&c.PricePerDay,
		&c.IsActive,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Car{}, ErrCarNotFound
	}

	if err != nil {
		return Car{}, fmt.Errorf("failed to fetch car with id %v: %w", id, err)
	}

	return c, nil
}

func (r *Repository) IsOwnedBy(ctx context.Context, carID, userID string) (bool, error) {
	c, err := r.GetByID(ctx, carID)

	if err != nil {
		return false, err
	}

	return c.OwnerID == userID, nil
}
