package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/calendar"
	"github.com/2beens/fitcoach/internal/progression"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=activity_test

const maxHabitIDLength = 64

var (
	ErrInvalidHabit            = errors.New("invalid habit id")
	ErrSessionAlreadyCompleted = errors.New("session already completed")
)

type activityWriter interface {
	MarkWorkoutCompleted(ctx context.Context, clientID uuid.UUID, day time.Time) error
	AddHabit(ctx context.Context, clientID uuid.UUID, day time.Time, habitID string) error
	AddSessionCompletion(ctx context.Context, clientID uuid.UUID, session progression.SessionCompletion) (bool, error)
}

type rewarder interface {
	RecomputeToday(ctx context.Context, clientID uuid.UUID) (*progression.Result, error)
	RewardSession(ctx context.Context, clientID uuid.UUID, session progression.SessionCompletion) (*progression.Result, error)
}

// LogResult is returned after logging activity. When rewards could not be
// computed the activity stays logged and RewardsPending is set; the next
// recompute for the same day picks it up.
type LogResult struct {
	Day            string              `json:"day"`
	Rewards        *progression.Result `json:"rewards,omitempty"`
	SessionRewards *progression.Result `json:"sessionRewards,omitempty"`
	RewardsPending bool                `json:"rewardsPending"`
}

// Service writes today's activity log entry, then asks the progression
// engine for rewards.
type Service struct {
	store          activityWriter
	rewarder       rewarder
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(store activityWriter, rewarder rewarder, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:          store,
		rewarder:       rewarder,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) LogWorkout(ctx context.Context, clientID uuid.UUID) (_ *LogResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activity.service.log_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := calendar.Day(s.now())
	if err := s.store.MarkWorkoutCompleted(ctx, clientID, today); err != nil {
		return nil, fmt.Errorf("mark workout completed: %w", err)
	}
	s.logged("workout")

	return s.recompute(ctx, clientID, today), nil
}

func (s *Service) LogHabit(ctx context.Context, clientID uuid.UUID, habitID string) (_ *LogResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activity.service.log_habit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	habitID = strings.TrimSpace(habitID)
	if habitID == "" || len(habitID) > maxHabitIDLength {
		return nil, fmt.Errorf("%w: [%s]", ErrInvalidHabit, habitID)
	}

	today := calendar.Day(s.now())
	if err := s.store.AddHabit(ctx, clientID, today, habitID); err != nil {
		return nil, fmt.Errorf("add habit: %w", err)
	}
	s.logged("habit")

	return s.recompute(ctx, clientID, today), nil
}

// CompleteSession records the session once, counts it as today's workout
// and runs both reward paths.
func (s *Service) CompleteSession(ctx context.Context, clientID uuid.UUID, session progression.SessionCompletion) (_ *LogResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activity.service.complete_session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.SessionID == "" || session.CompletedSets < 0 {
		return nil, fmt.Errorf("%w: session [%s], sets %d", progression.ErrInvalidSession, session.SessionID, session.CompletedSets)
	}

	// the workout upsert is idempotent, so it goes first: a failure here
	// leaves the session unclaimed and a retry can still reward it
	today := calendar.Day(s.now())
	if err := s.store.MarkWorkoutCompleted(ctx, clientID, today); err != nil {
		return nil, fmt.Errorf("mark workout completed: %w", err)
	}

	created, err := s.store.AddSessionCompletion(ctx, clientID, session)
	if err != nil {
		return nil, fmt.Errorf("add session completion: %w", err)
	}
	if !created {
		return nil, fmt.Errorf("%w: [%s]", ErrSessionAlreadyCompleted, session.SessionID)
	}
	s.logged("session")

	sessionRewards, err := s.rewarder.RewardSession(ctx, clientID, session)
	if err != nil {
		log.Errorf("reward session [%s] for client %s: %s", session.SessionID, clientID, err)
	}

	result := s.recompute(ctx, clientID, today)
	result.SessionRewards = sessionRewards
	if sessionRewards == nil {
		result.RewardsPending = true
	}

	return result, nil
}

func (s *Service) recompute(ctx context.Context, clientID uuid.UUID, today time.Time) *LogResult {
	result := &LogResult{
		Day: calendar.Format(today),
	}
	rewards, err := s.rewarder.RecomputeToday(ctx, clientID)
	if err != nil {
		log.Errorf("recompute progression for client %s: %s", clientID, err)
		result.RewardsPending = true
		return result
	}
	result.Rewards = rewards
	return result
}

func (s *Service) logged(kind string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterActivityLogged.WithLabelValues(kind).Inc()
	}
}
