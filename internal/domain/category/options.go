package category

import (
	"time"

	"github.com/google/uuid"
)

// Option customizes how New assigns identity and creation time.
type Option func(*settings)

type settings struct {
	now   func() time.Time
	newID func() uuid.UUID
}

// WithClock sets the source of the creation time. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDSource sets the generator for new category IDs. Defaults to uuid.New.
func WithIDSource(newID func() uuid.UUID) Option {
	return func(s *settings) {
		if newID != nil {
			s.newID = newID
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
