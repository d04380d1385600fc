package progression

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/2beens/fitcoach/internal/calendar"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const profileColumns = `
	client_id, xp, level, streak_days, best_streak, last_active_date,
	total_workouts, total_habits, badges,
	credit_date, credit_workout, credit_habits
`

type ProfileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{
		db: db,
	}
}

// Get returns nil and no error when the client has no profile yet.
func (r *ProfileRepo) Get(ctx context.Context, clientID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client", clientID.String()))

	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM progression_profile WHERE client_id = $1`, clientID)
	profile, err := scanProfile(row)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepo) GetOrCreate(ctx context.Context, clientID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.profile.get_or_create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client", clientID.String()))

	if _, err = r.db.Exec(ctx, `
		INSERT INTO progression_profile (client_id)
		VALUES ($1)
		ON CONFLICT (client_id) DO NOTHING
	`, clientID); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM progression_profile WHERE client_id = $1`, clientID)
	return scanProfile(row)
}

// Apply increments the counters in place and returns the stored profile.
func (r *ProfileRepo) Apply(ctx context.Context, change ProfileChange) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.profile.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client", change.ClientID.String()),
		attribute.Int("xp", change.XP),
	)

	var (
		streakDays     *int
		bestStreak     *int
		lastActiveDate *time.Time
	)
	if change.Streak != nil {
		streakDays = &change.Streak.Days
		bestStreak = &change.Streak.BestStreak
		lastActiveDate = &change.Streak.LastActiveDate
	}

	var (
		creditDate    *time.Time
		creditWorkout bool
		creditHabits  int
	)
	if change.Credit != nil && change.Credit.Date != nil {
		creditDate = change.Credit.Date
		creditWorkout = change.Credit.Workout
		creditHabits = change.Credit.Habits
	}

	newBadges := make([]string, 0, len(change.NewBadges))
	for _, b := range change.NewBadges {
		newBadges = append(newBadges, string(b))
	}

	row := r.db.QueryRow(ctx, `
		UPDATE progression_profile
		SET xp               = xp + $2,
		    total_workouts   = total_workouts + $3,
		    total_habits     = total_habits + $4,
		    level            = GREATEST(level, $5),
		    streak_days      = COALESCE($6, streak_days),
		    best_streak      = GREATEST(best_streak, COALESCE($7, best_streak)),
		    last_active_date = COALESCE($8, last_active_date),
		    badges           = ARRAY(SELECT DISTINCT unnest(badges || $9::text[])),
		    credit_date      = COALESCE($10, credit_date),
		    credit_workout   = CASE WHEN $10::date IS NULL THEN credit_workout ELSE $11 END,
		    credit_habits    = CASE WHEN $10::date IS NULL THEN credit_habits ELSE $12 END,
		    updated_at       = now()
		WHERE client_id = $1
		RETURNING `+profileColumns,
		change.ClientID,
		change.XP,
		change.Workouts,
		change.Habits,
		change.Level,
		streakDays,
		bestStreak,
		lastActiveDate,
		newBadges,
		creditDate,
		creditWorkout,
		creditHabits,
	)
	profile, err := scanProfile(row)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, change.ClientID)
		}
		return nil, err
	}
	return profile, nil
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var (
		p              Profile
		lastActiveDate *time.Time
		badges         []string
		creditDate     *time.Time
	)
	if err := row.Scan(
		&p.ClientID,
		&p.XP,
		&p.Level,
		&p.StreakDays,
		&p.BestStreak,
		&lastActiveDate,
		&p.TotalWorkouts,
		&p.TotalHabits,
		&badges,
		&creditDate,
		&p.Credit.Workout,
		&p.Credit.Habits,
	); err != nil {
		return nil, err
	}

	if lastActiveDate != nil {
		day := calendar.FromDate(*lastActiveDate)
		p.LastActiveDate = &day
	}
	if creditDate != nil {
		day := calendar.FromDate(*creditDate)
		p.Credit.Date = &day
	}

	slices.Sort(badges)
	p.Badges = make([]BadgeID, 0, len(badges))
	for _, b := range badges {
		id, err := ParseBadgeID(b)
		if err != nil {
			log.Warnf("profile %s: %s, skipping", p.ClientID, err)
			continue
		}
		p.Badges = append(p.Badges, id)
	}

	return &p, nil
}
