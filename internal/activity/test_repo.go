package activity

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/2beens/fitcoach/internal/calendar"
	"github.com/2beens/fitcoach/internal/progression"

	"github.com/google/uuid"
)

type entryKey struct {
	clientID uuid.UUID
	day      string
}

// TestRepo is an in-memory Repo.
type TestRepo struct {
	mutex    sync.Mutex
	entries  map[entryKey]progression.ActivityLogEntry
	sessions map[string]uuid.UUID
}

func NewTestRepo() *TestRepo {
	return &TestRepo{
		entries:  map[entryKey]progression.ActivityLogEntry{},
		sessions: map[string]uuid.UUID{},
	}
}

func (r *TestRepo) entry(clientID uuid.UUID, day time.Time) progression.ActivityLogEntry {
	key := entryKey{clientID, calendar.Format(day)}
	entry, ok := r.entries[key]
	if !ok {
		entry = progression.ActivityLogEntry{
			ClientID:        clientID,
			Date:            calendar.Day(day),
			HabitsCompleted: []string{},
		}
	}
	return entry
}

func (r *TestRepo) put(entry progression.ActivityLogEntry) {
	r.entries[entryKey{entry.ClientID, calendar.Format(entry.Date)}] = entry
}

func (r *TestRepo) GetEntry(_ context.Context, clientID uuid.UUID, day time.Time) (*progression.ActivityLogEntry, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	entry, ok := r.entries[entryKey{clientID, calendar.Format(day)}]
	if !ok {
		return nil, nil
	}
	entry.HabitsCompleted = slices.Clone(entry.HabitsCompleted)
	return &entry, nil
}

func (r *TestRepo) MarkWorkoutCompleted(_ context.Context, clientID uuid.UUID, day time.Time) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	entry := r.entry(clientID, day)
	entry.WorkoutCompleted = true
	r.put(entry)
	return nil
}

func (r *TestRepo) AddHabit(_ context.Context, clientID uuid.UUID, day time.Time, habitID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	entry := r.entry(clientID, day)
	entry.HabitsCompleted = append(slices.Clone(entry.HabitsCompleted), habitID)
	r.put(entry)
	return nil
}

func (r *TestRepo) ListRange(_ context.Context, clientID uuid.UUID, from, to time.Time) ([]progression.ActivityLogEntry, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	from, to = calendar.Day(from), calendar.Day(to)
	entries := make([]progression.ActivityLogEntry, 0)
	for key, entry := range r.entries {
		if key.clientID != clientID || entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		entry.HabitsCompleted = slices.Clone(entry.HabitsCompleted)
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

func (r *TestRepo) AddSessionCompletion(_ context.Context, clientID uuid.UUID, session progression.SessionCompletion) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.sessions[session.SessionID]; ok {
		return false, nil
	}
	r.sessions[session.SessionID] = clientID
	return true, nil
}
