// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"sync"
	"time"
)

// Clock provides an abstraction over the system time for testability.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After waits for the duration to elapse and then sends the current time on the returned channel.
	After(d time.Duration) <-chan time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// After delegates to time.After.
func (RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// MockClock returns a controllable time for testing.
// After advances the clock immediately instead of sleeping, so poll loops
// run to completion without wall-clock delay.
type MockClock struct {
	mu        sync.Mutex
	fixedTime time.Time
	sleeps    []time.Duration
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 time string.
// Panics if the time string is invalid (for use in tests only).
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{fixedTime: t}
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fixedTime
}

// After records the wait, advances the clock by d and returns an already-fired channel.
func (m *MockClock) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	m.fixedTime = m.fixedTime.Add(d)
	m.sleeps = append(m.sleeps, d)
	now := m.fixedTime
	m.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// Sleeps returns the durations passed to After, in call order.
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixedTime = t
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixedTime = m.fixedTime.Add(d)
}

// AdvanceMinutes moves the mock clock forward by the given number of minutes.
func (m *MockClock) AdvanceMinutes(minutes int) {
	m.Advance(time.Duration(minutes) * time.Minute)
}

// AdvanceDays moves the mock clock forward by the given number of days.
func (m *MockClock) AdvanceDays(days int) {
	m.Advance(time.Duration(days) * 24 * time.Hour)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
