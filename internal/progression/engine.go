package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/calendar"
	"github.com/2beens/fitcoach/internal/progression/events"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// XP awarded by the daily recompute and the session completion paths.
const (
	WorkoutXP                = 30
	HabitXP                  = 5
	DailyHabitBonus          = 10
	DailyHabitBonusThreshold = 3

	SessionBaseXP  = 50
	SessionSetXP   = 5
	HighVolumeSets = 20
)

const (
	outcomeRewarded = "rewarded"
	outcomeNoop     = "noop"
	outcomeError    = "error"
)

var ErrInvalidSession = errors.New("invalid session completion")

type profileCache interface {
	Set(profile Profile)
}

// Engine turns logged activity into XP, levels, streaks and badges.
// Both reward paths (daily recompute and session completion) run under the
// same per-client lock and write through the same ProfileStore.
type Engine struct {
	activityLog    ActivityLogStore
	profiles       ProfileStore
	locker         Locker
	recorder       EventRecorder
	cache          profileCache
	metricsManager *metrics.Manager
	now            func() time.Time
}

type NewEngineParams struct {
	ActivityLog ActivityLogStore
	Profiles    ProfileStore
	// Locker defaults to an in-process LocalLocker.
	Locker Locker
	// Recorder, Cache and Metrics are optional.
	Recorder EventRecorder
	Cache    profileCache
	Metrics  *metrics.Manager
	Now      func() time.Time
}

func NewEngine(params NewEngineParams) *Engine {
	e := &Engine{
		activityLog:    params.ActivityLog,
		profiles:       params.Profiles,
		locker:         params.Locker,
		recorder:       params.Recorder,
		cache:          params.Cache,
		metricsManager: params.Metrics,
		now:            params.Now,
	}
	if e.locker == nil {
		e.locker = NewLocalLocker()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

type dailyAward struct {
	xp       int
	workouts int
	habits   int
	credit   DailyCredit
}

// computeDailyAward credits only what the entry holds beyond what was
// already credited today, so reruns over an unchanged entry award nothing.
func computeDailyAward(entry *ActivityLogEntry, credited DailyCredit, today time.Time) dailyAward {
	award := dailyAward{credit: credited}
	award.credit.Date = &today
	if entry == nil {
		return award
	}

	if entry.WorkoutCompleted && !credited.Workout {
		award.xp += WorkoutXP
		award.workouts = 1
		award.credit.Workout = true
	}

	habits := len(entry.HabitsCompleted)
	if habits > credited.Habits {
		award.habits = habits - credited.Habits
		award.xp += award.habits * HabitXP
		if credited.Habits < DailyHabitBonusThreshold && habits >= DailyHabitBonusThreshold {
			award.xp += DailyHabitBonus
		}
		award.credit.Habits = habits
	}

	return award
}

// nextStreak returns the streak after activity on today, and whether
// a running streak was broken by a gap.
func nextStreak(p *Profile, today time.Time) (streak int, broken bool) {
	switch {
	case p.LastActiveDate == nil:
		return 1, false
	case calendar.SameDay(*p.LastActiveDate, today):
		return p.StreakDays, false
	case calendar.IsDayBefore(*p.LastActiveDate, today):
		return p.StreakDays + 1, false
	default:
		// gap of 2+ days, or last active date in the future
		return 1, p.StreakDays > 0
	}
}

// RecomputeToday converts the client's activity log for the current server
// day into progression. Missing log entries and profiles are zero state.
// Store errors are returned unchanged in meaning, without retries.
func (e *Engine) RecomputeToday(ctx context.Context, clientID uuid.UUID) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.engine.recompute_today")
	start := time.Now()
	outcome := outcomeError
	defer func() {
		e.observe(metrics.SourceDaily, outcome, start)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client", clientID.String()))

	unlock, err := e.locker.Lock(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("lock client %s: %w", clientID, err)
	}
	defer unlock()

	today := calendar.Day(e.now())

	entry, err := e.activityLog.GetEntry(ctx, clientID, today)
	if err != nil {
		return nil, fmt.Errorf("get activity log entry: %w", err)
	}

	profile, err := e.profiles.GetOrCreate(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get progression profile: %w", err)
	}

	award := computeDailyAward(entry, profile.Credit.On(today), today)
	change := ProfileChange{
		ClientID: clientID,
		XP:       award.xp,
		Workouts: award.workouts,
		Habits:   award.habits,
	}

	updated := *profile
	streakBrokenAt := 0
	if award.xp > 0 {
		streak, broken := nextStreak(profile, today)
		if broken {
			streakBrokenAt = profile.StreakDays
		}
		updated.StreakDays = streak
		updated.BestStreak = max(profile.BestStreak, streak)
		updated.LastActiveDate = &today
		change.Streak = &StreakChange{
			Days:           updated.StreakDays,
			BestStreak:     updated.BestStreak,
			LastActiveDate: today,
		}
		change.Credit = &award.credit
	}
	updated.XP += award.xp
	updated.TotalWorkouts += award.workouts
	updated.TotalHabits += award.habits
	updated.Level = Level(updated.XP)
	change.Level = updated.Level
	change.NewBadges = EvaluateDailyBadges(updated)

	result, err := e.commit(ctx, metrics.SourceDaily, profile, change)
	if err != nil {
		return nil, err
	}

	if change.IsNoop() {
		outcome = outcomeNoop
		return result, nil
	}
	outcome = outcomeRewarded
	if streakBrokenAt > 0 {
		log.Debugf("client %s streak of %d days broken, restarting", clientID, streakBrokenAt)
		e.record(events.NewStreakResetEvent(clientID, streakBrokenAt, e.now()))
		if e.metricsManager != nil {
			e.metricsManager.CounterStreakResets.Inc()
		}
	}

	return result, nil
}

// RewardSession rewards a completed workout session: a flat amount plus a
// per-set amount, and the high volume badge for big sessions. Streak,
// lifetime totals and the daily credit are not touched.
func (e *Engine) RewardSession(ctx context.Context, clientID uuid.UUID, session SessionCompletion) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.engine.reward_session")
	start := time.Now()
	outcome := outcomeError
	defer func() {
		e.observe(metrics.SourceSession, outcome, start)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client", clientID.String()),
		attribute.String("session", session.SessionID),
		attribute.Int("sets", session.CompletedSets),
	)

	if session.SessionID == "" || session.CompletedSets < 0 {
		return nil, fmt.Errorf("%w: session [%s], sets %d", ErrInvalidSession, session.SessionID, session.CompletedSets)
	}

	unlock, err := e.locker.Lock(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("lock client %s: %w", clientID, err)
	}
	defer unlock()

	profile, err := e.profiles.GetOrCreate(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get progression profile: %w", err)
	}

	xp := SessionBaseXP + SessionSetXP*session.CompletedSets
	change := ProfileChange{
		ClientID: clientID,
		XP:       xp,
		Level:    Level(profile.XP + xp),
	}
	if session.CompletedSets >= HighVolumeSets && !profile.HasBadge(BadgeHighVolume) {
		change.NewBadges = []BadgeID{BadgeHighVolume}
	}

	result, err := e.commit(ctx, metrics.SourceSession, profile, change)
	if err != nil {
		return nil, err
	}
	outcome = outcomeRewarded

	return result, nil
}

// commit writes change unless it is a no-op, then emits metrics, audit
// events and refreshes the read cache. Must be called under the client lock.
func (e *Engine) commit(ctx context.Context, source string, before *Profile, change ProfileChange) (*Result, error) {
	if change.IsNoop() {
		return &Result{
			TodayXP:             0,
			TotalXP:             before.XP,
			Level:               before.Level,
			StreakDays:          before.StreakDays,
			BestStreak:          before.BestStreak,
			LeveledUp:           false,
			NewlyUnlockedBadges: []BadgeID{},
		}, nil
	}

	saved, err := e.profiles.Apply(ctx, change)
	if err != nil {
		return nil, fmt.Errorf("apply progression change: %w", err)
	}

	newBadges := change.NewBadges
	if newBadges == nil {
		newBadges = []BadgeID{}
	}
	result := &Result{
		TodayXP:             change.XP,
		TotalXP:             saved.XP,
		Level:               saved.Level,
		StreakDays:          saved.StreakDays,
		BestStreak:          saved.BestStreak,
		LeveledUp:           saved.Level > before.Level,
		NewlyUnlockedBadges: newBadges,
	}

	now := e.now()
	if change.XP > 0 {
		e.record(events.NewXPAwardedEvent(change.ClientID, source, change.XP, saved.XP, now))
	}
	if result.LeveledUp {
		log.Debugf("client %s leveled up %d -> %d", change.ClientID, before.Level, saved.Level)
		e.record(events.NewLevelUpEvent(change.ClientID, before.Level, saved.Level, now))
	}
	for _, badge := range newBadges {
		e.record(events.NewBadgeUnlockedEvent(change.ClientID, string(badge), now))
	}

	if e.metricsManager != nil {
		e.metricsManager.CounterXPAwarded.WithLabelValues(source).Add(float64(change.XP))
		if result.LeveledUp {
			e.metricsManager.CounterLevelUps.Inc()
		}
		for _, badge := range newBadges {
			e.metricsManager.CounterBadgesUnlocked.WithLabelValues(string(badge)).Inc()
		}
	}

	if e.cache != nil {
		e.cache.Set(*saved)
	}

	return result, nil
}

func (e *Engine) record(event events.Event) {
	if e.recorder != nil {
		e.recorder.Record(event)
	}
}

func (e *Engine) observe(source, outcome string, start time.Time) {
	if e.metricsManager == nil {
		return
	}
	e.metricsManager.CounterRecomputes.WithLabelValues(source, outcome).Inc()
	e.metricsManager.HistRewardDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}
