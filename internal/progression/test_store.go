package progression

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/2beens/fitcoach/internal/calendar"

	"github.com/google/uuid"
)

type entryKey struct {
	clientID uuid.UUID
	day      string
}

// TestStore is an in-memory ActivityLogStore and ProfileStore.
type TestStore struct {
	mutex    sync.Mutex
	entries  map[entryKey]ActivityLogEntry
	profiles map[uuid.UUID]Profile
	// ApplyCalls counts the writes reaching the store.
	ApplyCalls int
}

func NewTestStore() *TestStore {
	return &TestStore{
		entries:  map[entryKey]ActivityLogEntry{},
		profiles: map[uuid.UUID]Profile{},
	}
}

func (s *TestStore) SetEntry(entry ActivityLogEntry) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	entry.Date = calendar.Day(entry.Date)
	entry.HabitsCompleted = slices.Clone(entry.HabitsCompleted)
	s.entries[entryKey{entry.ClientID, calendar.Format(entry.Date)}] = entry
}

// SetProfile stores p as is, replacing any existing profile.
func (s *TestStore) SetProfile(p Profile) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.profiles[p.ClientID] = cloneProfile(p)
}

func (s *TestStore) GetEntry(_ context.Context, clientID uuid.UUID, day time.Time) (*ActivityLogEntry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	entry, ok := s.entries[entryKey{clientID, calendar.Format(day)}]
	if !ok {
		return nil, nil
	}
	entry.HabitsCompleted = slices.Clone(entry.HabitsCompleted)
	return &entry, nil
}

func (s *TestStore) Get(_ context.Context, clientID uuid.UUID) (*Profile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	p, ok := s.profiles[clientID]
	if !ok {
		return nil, nil
	}
	p = cloneProfile(p)
	return &p, nil
}

func (s *TestStore) GetOrCreate(_ context.Context, clientID uuid.UUID) (*Profile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	p, ok := s.profiles[clientID]
	if !ok {
		p = *NewProfile(clientID)
		s.profiles[clientID] = p
	}
	p = cloneProfile(p)
	return &p, nil
}

func (s *TestStore) Apply(_ context.Context, change ProfileChange) (*Profile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.ApplyCalls++

	p, ok := s.profiles[change.ClientID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	p = cloneProfile(p)

	p.XP += change.XP
	p.TotalWorkouts += change.Workouts
	p.TotalHabits += change.Habits
	p.Level = max(p.Level, change.Level)
	if change.Streak != nil {
		p.StreakDays = change.Streak.Days
		p.BestStreak = max(p.BestStreak, change.Streak.BestStreak)
		day := change.Streak.LastActiveDate
		p.LastActiveDate = &day
	}
	for _, b := range change.NewBadges {
		if !p.HasBadge(b) {
			p.Badges = append(p.Badges, b)
		}
	}
	if change.Credit != nil && change.Credit.Date != nil {
		p.Credit = *change.Credit
	}

	s.profiles[p.ClientID] = p
	p = cloneProfile(p)
	return &p, nil
}

func cloneProfile(p Profile) Profile {
	p.Badges = slices.Clone(p.Badges)
	if p.Badges == nil {
		p.Badges = []BadgeID{}
	}
	if p.LastActiveDate != nil {
		d := *p.LastActiveDate
		p.LastActiveDate = &d
	}
	if p.Credit.Date != nil {
		d := *p.Credit.Date
		p.Credit.Date = &d
	}
	return p
}
