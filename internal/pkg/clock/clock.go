// Package clock lets repositories stamp CreatedAt and UpdatedAt from a source
// tests can pin.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-alignment/internal/pkg/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns wall time in UTC
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return systemClock{}
}
