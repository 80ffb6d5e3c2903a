package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (Review, error) {
	sql := `SELECT id, booking_id, author_id, rating, comment, created_at FROM reviews WHERE booking_id = $1;`

	var rv Review
	err := r.pool.QueryRow(ctx, sql, bookingID).Scan(
		&rv.ID,
		&rv.BookingID,
		&rv.AuthorID,
		&rv.Rating,
		&rv.Comment,
		&rv.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Review{}, ErrReviewNotFound
	}

	if err != nil {
		return Review{}, fmt.Errorf("failed to fetch review for booking %v: %w", bookingID, err)
	}

	return rv, nil
}

func (r *Repository) InsertReview(ctx context.Context, rv Review) (Review, error) {
	sql := `
			INSERT INTO reviews(id, booking_id, author_id, rating, comment)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at;
		`

	err := r.pool.QueryRow(ctx, sql,
		rv.ID,
		rv.BookingID,
		rv.AuthorID,
		rv.Rating,
		rv.Comment,
	).Scan(&rv.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return Review{}, ErrReviewExists
	}

	if err != nil {
		return Review{}, fmt.Errorf("failed to insert review: %w", err)
	}

	return rv, nil
}
