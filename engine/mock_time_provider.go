package engine

import (
	"sync"
	"time"
)

type mockTimer struct {
	deadline time.Time
	ch       chan time.Time
}

// MockTimeProvider provides a controllable time source for testing
// Timers created by After fire only when Advance or Now moves time past their deadline
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	step        time.Duration
	timers      []mockTimer
}

// NewMockTimeProvider creates a mock that advances by step on every Now call
func NewMockTimeProvider(startTime time.Time, step time.Duration) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
		step:        step,
	}
}

// Now returns the current mocked time, then advances it by step
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.currentTime
	m.currentTime = m.currentTime.Add(m.step)
	m.fireLocked()
	return now
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.fireLocked()
}

// After returns a channel fed once mocked time reaches now+d
func (m *MockTimeProvider) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan time.Time, 1)
	m.timers = append(m.timers, mockTimer{deadline: m.currentTime.Add(d), ch: ch})
	m.fireLocked()
	return ch
}

// Pending returns the number of timers not yet fired
func (m *MockTimeProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (m *MockTimeProvider) fireLocked() {
	kept := m.timers[:0]
	for _, t := range m.timers {
		if t.deadline.After(m.currentTime) {
			kept = append(kept, t)
			continue
		}
		t.ch <- m.currentTime
	}
	m.timers = kept
}
