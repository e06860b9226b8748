package domain

import "context"

// BookingRecorder persists booking status reported by payment and order webhooks.
type BookingRecorder interface {
	// RecordBooking upserts the record keyed by payment session id.
	// A terminal status is never replaced by pending.
	RecordBooking(ctx context.Context, record BookingRecord) error
}

// BookingStore is the full booking status store.
type BookingStore interface {
	BookingLookup
	BookingRecorder
}

// Merge returns the record to store when next arrives for a session already at current.
// Webhooks may be delivered out of order, so a terminal status wins over pending.
func (current BookingRecord) Merge(next BookingRecord) BookingRecord {
	if current.Status.IsTerminal() && !next.Status.IsTerminal() {
		return current
	}
	return next
}
