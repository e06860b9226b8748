// Package postgres stores booking status rows written by the payment and order
// webhooks and read by the confirmation poller.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/travel-booking/flight-booking/internal/domain"
)

// Schema creates the bookings table.
const Schema = `
CREATE TABLE IF NOT EXISTS bookings (
	payment_session_id TEXT PRIMARY KEY,
	status             TEXT NOT NULL,
	booking_reference  TEXT NOT NULL DEFAULT '',
	error_message      TEXT NOT NULL DEFAULT '',
	updated_at         TIMESTAMPTZ NOT NULL
)`

const selectBooking = `
SELECT payment_session_id, status, booking_reference, error_message, updated_at
FROM bookings
WHERE payment_session_id = $1`

// The WHERE clause keeps a terminal row from being downgraded by a late pending event.
const upsertBooking = `
INSERT INTO bookings (payment_session_id, status, booking_reference, error_message, updated_at)
VALUES (:payment_session_id, :status, :booking_reference, :error_message, :updated_at)
ON CONFLICT (payment_session_id) DO UPDATE SET
	status = EXCLUDED.status,
	booking_reference = EXCLUDED.booking_reference,
	error_message = EXCLUDED.error_message,
	updated_at = EXCLUDED.updated_at
WHERE bookings.status = 'pending' OR EXCLUDED.status <> 'pending'`

// PoolConfig holds connection pool settings.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens and pings a PostgreSQL pool.
func Connect(ctx context.Context, url string, pool PoolConfig) (*sqlx.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxLifetime / 2)

	return db, nil
}

// BookingRepository implements domain.BookingStore on PostgreSQL.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Migrate creates the bookings table if it does not exist.
func (r *BookingRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}
	return nil
}

// LookupBookingBySessionID returns the booking row for the payment session.
// No row yet means the webhook has not run, which is reported as pending.
func (r *BookingRepository) LookupBookingBySessionID(ctx context.Context, sessionID string) (*domain.BookingRecord, error) {
	var record domain.BookingRecord
	err := r.db.GetContext(ctx, &record, selectBooking, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.BookingRecord{SessionID: sessionID, Status: domain.BookingPending}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking %s: %w", sessionID, err)
	}
	return &record, nil
}

// RecordBooking upserts the booking row.
func (r *BookingRepository) RecordBooking(ctx context.Context, record domain.BookingRecord) error {
	if record.SessionID == "" {
		return domain.WrapInvalidRequest("payment session id is required")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, upsertBooking, record); err != nil {
		return fmt.Errorf("failed to record booking %s: %w", record.SessionID, err)
	}
	return nil
}
