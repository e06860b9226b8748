// Package memory provides an in-process booking status store for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/travel-booking/flight-booking/internal/domain"
)

// BookingStore implements domain.BookingStore in memory.
type BookingStore struct {
	mu      sync.RWMutex
	records map[string]domain.BookingRecord
}

// NewBookingStore creates an empty store.
func NewBookingStore() *BookingStore {
	return &BookingStore{records: make(map[string]domain.BookingRecord)}
}

// LookupBookingBySessionID returns the record, or a pending record when none exists.
func (s *BookingStore) LookupBookingBySessionID(ctx context.Context, sessionID string) (*domain.BookingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[sessionID]
	if !ok {
		return &domain.BookingRecord{SessionID: sessionID, Status: domain.BookingPending}, nil
	}
	return &record, nil
}

// RecordBooking upserts the record.
func (s *BookingStore) RecordBooking(ctx context.Context, record domain.BookingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record.SessionID == "" {
		return domain.WrapInvalidRequest("payment session id is required")
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.SessionID] = s.records[record.SessionID].Merge(record)
	return nil
}
