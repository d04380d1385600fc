package progression

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fitcoach/internal/progression/events"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progression_test

var ErrProfileNotFound = errors.New("progression profile not found")

// ActivityLogStore returns a nil entry and no error when nothing was logged
// for the given day.
type ActivityLogStore interface {
	GetEntry(ctx context.Context, clientID uuid.UUID, day time.Time) (*ActivityLogEntry, error)
}

type ProfileStore interface {
	GetOrCreate(ctx context.Context, clientID uuid.UUID) (*Profile, error)
	Apply(ctx context.Context, change ProfileChange) (*Profile, error)
}

// Locker gives mutual exclusion per client. The returned unlock func
// must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, clientID uuid.UUID) (unlock func(), err error)
}

type EventRecorder interface {
	Record(event events.Event)
}
