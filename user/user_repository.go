package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"
)

// Repository looks users up in the shared store. Session token lookups are
// cached briefly because every authenticated request performs one.
type Repository struct {
	pool  *pgxpool.Pool
	cache *cache.Cache
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool:  pool,
		cache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (r *Repository) GetBySessionToken(ctx context.Context, token string) (User, error) {
	if cached, found := r.cache.Get(token); found {
		return cached.(User), nil
	}

	sql := `
			SELECT u.id, u.first_name, u.last_name, u.role
			FROM sessions s
			JOIN users u ON u.id = s.user_id
			WHERE s.token = $1;
		`

	var u User
	err := r.pool.QueryRow(ctx, sql, token).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Role)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrInvalidSession
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to resolve session token: %w", err)
	}

	r.cache.Set(token, u, cache.DefaultExpiration)

	return u, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (User, error) {
	sql := `SELECT id, first_name, last_name, role FROM users WHERE id = $1;`

	var u User
	err := r.pool.QueryRow(ctx, sql, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Role)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with id %v: %w", id, err)
	}

	return u, nil
}
