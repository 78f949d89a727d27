package adapter

import "time"

// Clock stamps journal entries and ticket events
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current time in UTC
	Now() time.Time
}

type utcClock struct{}

// NewClock returns the wall clock
func NewClock() Clock {
	return utcClock{}
}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}
