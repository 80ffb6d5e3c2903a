package booking

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

const bookingColumns = `id, car_id, renter_id, start_date, end_date, total_price, status, created_at, updated_at`

const viewColumns = `b.id, b.car_id, c.brand, c.model, b.renter_id,
	u.first_name || ' ' || u.last_name,
	b.start_date, b.end_date, b.total_price, b.status`

const viewFrom = `
	FROM bookings b
	JOIN cars c ON c.id = b.car_id
	JOIN users u ON u.id = b.renter_id
	WHERE b.deleted_at IS NULL`

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND deleted_at IS NULL;`

	var b Booking
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&b.ID,
		&b.CarID,
		&b.RenterID,
		&b.StartDate,
		&b.EndDate,
		&b.TotalPrice,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return b, nil
}

func (r *Repository) GetBookingViewByID(ctx context.Context, id string) (View, error) {
	sql := `SELECT ` + viewColumns + viewFrom + ` AND b.id = $1;`

	var v View
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&v.ID,
		&v.CarID,
		&v.CarBrand,
		&v.CarModel,
		&v.RenterID,
		&v.RenterName,
		&v.StartDate,
		&v.EndDate,
		&v.TotalPrice,
		&v.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return View{}, ErrBookingNotFound
	}

	if err != nil {
		return View{}, fmt.Errorf("failed to fetch booking view with id %v: %w", id, err)
	}

	return v, nil
}

func (r *Repository) GetAllBookingViews(ctx context.Context) ([]View, error) {
	sql := `SELECT ` + viewColumns + viewFrom + ` ORDER BY b.created_at DESC;`
	return r.queryViews(ctx, sql)
}

func (r *Repository) GetViewsByRenter(ctx context.Context, renterID string) ([]View, error) {
	sql := `SELECT ` + viewColumns + viewFrom + ` AND b.renter_id = $1 ORDER BY b.start_date DESC;`
	return r.queryViews(ctx, sql, renterID)
}

func (r *Repository) GetViewsByOwner(ctx context.Context, ownerID string) ([]View, error) {
	sql := `SELECT ` + viewColumns + viewFrom + ` AND c.owner_id = $1 ORDER BY b.start_date DESC;`
	return r.queryViews(ctx, sql, ownerID)
}

func (r *Repository) queryViews(ctx context.Context, sql string, args ...any) ([]View, error) {
	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	var views []View

	for rows.Next() {
		var v View
		err := rows.Scan(
			&v.ID,
			&v.CarID,
			&v.CarBrand,
			&v.CarModel,
			&v.RenterID,
			&v.RenterName,
			&v.StartDate,
			&v.EndDate,
			&v.TotalPrice,
			&v.Status,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return views, nil
}

// ListBookingsForCar returns the bookings that can block a date range on a
// car: not rejected and not soft-deleted. excludeID skips one booking so an
// update does not conflict with itself; pass "" to exclude nothing.
func (r *Repository) ListBookingsForCar(ctx context.Context, carID, excludeID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + `
	        FROM bookings
	        WHERE car_id = $1 AND status <> 'Rejected' AND deleted_at IS NULL AND id::text <> $2;`

	rows, err := r.pool.Query(ctx, sql, carID, excludeID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for car '%v': %w", carID, err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		var b Booking
		err := rows.Scan(
			&b.ID,
			&b.CarID,
			&b.RenterID,
			&b.StartDate,
			&b.EndDate,
			&b.TotalPrice,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

// InsertBooking persists a new booking. The overlap check and the insert run
// in one transaction holding an advisory lock on the car, so two concurrent
// inserts for the same car cannot both pass the check.
func (r *Repository) InsertBooking(ctx context.Context, b Booking) (Booking, error) {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	if err := lockCar(ctx, tx, b.CarID); err != nil {
		return Booking{}, err
	}

	blocked, err := hasOverlap(ctx, tx, b.CarID, b.Range(), "")

	if err != nil {
		return Booking{}, err
	}

	if blocked {
		return Booking{}, ErrBookingConflict
	}

	sql := `
			INSERT INTO bookings(id, car_id, renter_id, start_date, end_date, total_price, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at;
		`

	err = tx.QueryRow(ctx, sql,
		b.ID,
		b.CarID,
		b.RenterID,
		b.StartDate,
		b.EndDate,
		b.TotalPrice,
		b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, fmt.Errorf("failed to commit booking insert: %w", err)
	}

	return b, nil
}

// UpdateBooking rewrites the car, dates and price of a booking under the same
// advisory lock and overlap guard as InsertBooking, excluding the booking
// itself from the check.
func (r *Repository) UpdateBooking(ctx context.Context, b Booking) error {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	if err := lockCar(ctx, tx, b.CarID); err != nil {
		return err
	}

	blocked, err := hasOverlap(ctx, tx, b.CarID, b.Range(), b.ID)

	if err != nil {
		return err
	}

	if blocked {
		return ErrBookingConflict
	}

	sql := `
			UPDATE bookings
			SET
				car_id=$1,
				start_date=$2,
				end_date=$3,
				total_price=$4,
				updated_at=now()
			WHERE id=$5 AND deleted_at IS NULL;
		`

	tag, err := tx.Exec(ctx, sql, b.CarID, b.StartDate, b.EndDate, b.TotalPrice, b.ID)

	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit booking update: %w", err)
	}

	return nil
}

// SetBookingStatus decides a Pending booking. The UPDATE is conditional on
// the row still being Pending, so two concurrent decisions cannot both land;
// the loser gets ErrInvalidBookingState.
func (r *Repository) SetBookingStatus(ctx context.Context, id string, status Status) error {
	sql := `
	        UPDATE bookings
	        SET status=$1, updated_at=now()
	        WHERE id=$2 AND deleted_at IS NULL AND status=$3;
	    `

	tag, err := r.pool.Exec(ctx, sql, status, id, StatusPending)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		sql := `SELECT EXISTS (SELECT 1 FROM bookings WHERE id=$1 AND deleted_at IS NULL);`

		if err := r.pool.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check booking '%v': %w", id, err)
		}

		if exists {
			return ErrInvalidBookingState
		}

		return ErrBookingNotFound
	}

	return nil
}

// SoftDeleteBooking stamps deleted_at and flips the status to Cancelled. A
// second call on the same id finds no live row and reports not found.
func (r *Repository) SoftDeleteBooking(ctx context.Context, id string) error {
	sql := `
	        UPDATE bookings
	        SET deleted_at=now(), status=$1, updated_at=now()
	        WHERE id=$2 AND deleted_at IS NULL;
	    `

	tag, err := r.pool.Exec(ctx, sql, StatusCancelled, id)

	if err != nil {
		return fmt.Errorf("failed to cancel booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func lockCar(ctx context.Context, tx pgx.Tx, carID string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, carID); err != nil {
		return fmt.Errorf("failed to lock car '%v': %w", carID, err)
	}

	return nil
}

func hasOverlap(ctx context.Context, tx pgx.Tx, carID string, r DateRange, excludeID string) (bool, error) {
	sql := `
			SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE car_id = $1
				  AND status <> 'Rejected'
				  AND deleted_at IS NULL
				  AND id::text <> $2
				  AND start_date <= $4
				  AND end_date >= $3
			);
		`

	var blocked bool

	if err := tx.QueryRow(ctx, sql, carID, excludeID, r.Start, r.End).Scan(&blocked); err != nil {
		return false, fmt.Errorf("failed to check booking overlap for car '%v': %w", carID, err)
	}

	return blocked, nil
}
