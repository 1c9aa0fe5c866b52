package utils

import "time"

// TimeProvider makes mocking time.Now() easier
type TimeProvider interface {
	Now() time.Time
}

func NewTimeProvider() TimeProvider {
	return &timeProvider{}
}

type timeProvider struct{}

func (*timeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider always reports the same instant
type FixedTimeProvider struct {
	Time time.Time
}

func (p FixedTimeProvider) Now() time.Time {
	return p.Time
}
