package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const bookingColumns = `id, user_id, worker_id, COALESCE(worker_name, ''), service_id, service_name,
	service_date, time_slot, address, COALESCE(notes, ''), price, status, created_at, updated_at`

func scanBooking(row pgx.Row, booking *Booking) error {
	return row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.WorkerID,
		&booking.WorkerName,
		&booking.ServiceID,
		&booking.ServiceName,
		&booking.Date,
		&booking.Time,
		&booking.Address,
		&booking.Notes,
		&booking.Price,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
}

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO bookings(
			id, user_id, service_id, service_name, service_date, time_slot, address, notes, price, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
			RETURNING created_at, updated_at;
		`

	booking.ID = uuid.NewString()
	booking.Status = StatusPending
	booking.WorkerID = nil
	booking.WorkerName = ""

	err := r.pool.QueryRow(ctx, sql,
		booking.ID,
		booking.UserID,
		booking.ServiceID,
		booking.ServiceName,
		booking.Date,
		booking.Time,
		booking.Address,
		booking.Notes,
		booking.Price,
		booking.Status,
		time.Now().UTC(),
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1;`

	var booking Booking
	err := scanBooking(r.pool.QueryRow(ctx, sql, id), &booking)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetBookingsForCustomer(ctx context.Context, userID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC;`

	return r.queryBookings(ctx, sql, userID)
}

func (r *Repository) GetBookingsForWorker(ctx context.Context, workerID string) ([]Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM bookings WHERE worker_id=$1 ORDER BY created_at DESC;`

	return r.queryBookings(ctx, sql, workerID)
}

func (r *Repository) queryBookings(ctx context.Context, sql string, args ...any) ([]Booking, error) {
	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		var booking Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) GetAvailableJobs(ctx context.Context) ([]AvailableJob, error) {
	sql := `
			SELECT b.id, b.user_id, b.worker_id, COALESCE(b.worker_name, ''), b.service_id, b.service_name,
				b.service_date, b.time_slot, b.address, COALESCE(b.notes, ''), b.price, b.status,
				b.created_at, b.updated_at, u.name, u.phone
			FROM bookings b
			JOIN users u ON u.id = b.user_id
			WHERE b.status=$1 AND b.worker_id IS NULL
			ORDER BY b.created_at DESC;
		`

	rows, err := r.pool.Query(ctx, sql, StatusPending)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch available jobs: %w", err)
	}

	defer rows.Close()

	var jobs []AvailableJob

	for rows.Next() {
		var job AvailableJob
		err := rows.Scan(
			&job.ID,
			&job.UserID,
			&job.WorkerID,
			&job.WorkerName,
			&job.ServiceID,
			&job.ServiceName,
			&job.Date,
			&job.Time,
			&job.Address,
			&job.Notes,
			&job.Price,
			&job.Status,
			&job.CreatedAt,
			&job.UpdatedAt,
			&job.CustomerName,
			&job.CustomerPhone,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning available job row: %w", err)
		}

		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating available jobs rows: %w", err)
	}

	return jobs, nil
}

// AssignWorker sets the assignee and moves the booking to Confirmed in a
// single conditional UPDATE. The status and null-assignee guards in the WHERE
// clause make the transition atomic: when two workers race for the same job
// the row matches exactly once, so the loser sees zero affected rows and gets
// ErrJobTaken (or ErrBookingNotFound if the id never existed).
func (r *Repository) AssignWorker(ctx context.Context, id, workerID, workerName string) error {
	sql := `
            UPDATE bookings
            SET worker_id=$1, worker_name=$2, status=$3, updated_at=$4
            WHERE id=$5 AND status=$6 AND worker_id IS NULL;
        `

	tag, err := r.pool.Exec(ctx, sql, workerID, workerName, StatusConfirmed, time.Now().UTC(), id, StatusPending)

	if err != nil {
		return fmt.Errorf("failed to assign worker to booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		if _, err := r.GetBookingByID(ctx, id); errors.Is(err, ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return ErrJobTaken
	}

	return nil
}

// SetBookingStatus transitions a booking from one status to another. The
// expected current status is part of the WHERE clause, so a concurrent
// transition makes this a no-op surfaced as ErrInvalidBookingState rather
// than a silent overwrite.
func (r *Repository) SetBookingStatus(ctx context.Context, id, from, to string) error {
	sql := `
            UPDATE bookings
            SET status=$1, updated_at=$2
            WHERE id=$3 AND status=$4;
        `

	tag, err := r.pool.Exec(ctx, sql, to, time.Now().UTC(), id, from)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		if _, err := r.GetBookingByID(ctx, id); errors.Is(err, ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return ErrInvalidBookingState
	}

	return nil
}
