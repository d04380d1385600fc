package progression

import (
	"slices"
	"time"

	"github.com/2beens/fitcoach/internal/calendar"

	"github.com/google/uuid"
)

// ActivityLogEntry is a client's logged activity for one calendar day.
// Habits may repeat; they are counted, not deduplicated.
type ActivityLogEntry struct {
	ClientID         uuid.UUID `json:"clientId"`
	Date             time.Time `json:"date"`
	WorkoutCompleted bool      `json:"workoutCompleted"`
	HabitsCompleted  []string  `json:"habitsCompleted"`
}

// DailyCredit is the part of one day's activity log already converted into XP.
type DailyCredit struct {
	Date    *time.Time
	Workout bool
	Habits  int
}

// On returns the credit recorded for day, or an empty credit when the
// stored one belongs to another day.
func (c DailyCredit) On(day time.Time) DailyCredit {
	if c.Date == nil || !calendar.SameDay(*c.Date, day) {
		return DailyCredit{}
	}
	return c
}

type Profile struct {
	ClientID       uuid.UUID   `json:"clientId"`
	XP             int         `json:"xp"`
	Level          int         `json:"level"`
	StreakDays     int         `json:"streakDays"`
	BestStreak     int         `json:"bestStreak"`
	LastActiveDate *time.Time  `json:"lastActiveDate"`
	TotalWorkouts  int         `json:"totalWorkouts"`
	TotalHabits    int         `json:"totalHabits"`
	Badges         []BadgeID   `json:"badges"`
	Credit         DailyCredit `json:"-"`
}

func NewProfile(clientID uuid.UUID) *Profile {
	return &Profile{
		ClientID: clientID,
		Level:    1,
		Badges:   []BadgeID{},
	}
}

func (p *Profile) HasBadge(id BadgeID) bool {
	return slices.Contains(p.Badges, id)
}

// StreakChange replaces the streak state of a profile.
type StreakChange struct {
	Days           int
	BestStreak     int
	LastActiveDate time.Time
}

// ProfileChange is applied by a ProfileStore in one atomic write.
// XP, Workouts and Habits are increments. Level and BestStreak never go down,
// badges are only ever added. Nil Streak or Credit leave those untouched.
type ProfileChange struct {
	ClientID  uuid.UUID
	XP        int
	Workouts  int
	Habits    int
	Level     int
	Streak    *StreakChange
	NewBadges []BadgeID
	Credit    *DailyCredit
}

func (c ProfileChange) IsNoop() bool {
	return c.XP == 0 && c.Workouts == 0 && c.Habits == 0 && len(c.NewBadges) == 0
}

// Result is returned to the client after every reward evaluation,
// also when nothing changed.
type Result struct {
	TodayXP             int       `json:"todayXp"`
	TotalXP             int       `json:"totalXp"`
	Level               int       `json:"level"`
	StreakDays          int       `json:"streakDays"`
	BestStreak          int       `json:"bestStreak"`
	LeveledUp           bool      `json:"leveledUp"`
	NewlyUnlockedBadges []BadgeID `json:"newlyUnlockedBadges"`
}

type SessionCompletion struct {
	SessionID     string `json:"sessionId"`
	CompletedSets int    `json:"completedSets"`
}
