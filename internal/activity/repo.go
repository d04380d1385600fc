package activity

import (
	"context"
	"time"

	"github.com/2beens/fitcoach/internal/calendar"
	"github.com/2beens/fitcoach/internal/progression"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo keeps one activity_log row per client and day. All writes are upserts.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetEntry returns nil and no error when nothing was logged on day.
func (r *Repo) GetEntry(ctx context.Context, clientID uuid.UUID, day time.Time) (_ *progression.ActivityLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.get_entry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client", clientID.String()),
		attribute.String("day", calendar.Format(day)),
	)

	var (
		entry progression.ActivityLogEntry
		date  time.Time
	)
	err = r.db.QueryRow(ctx, `
		SELECT client_id, day, workout_completed, habits
		FROM activity_log
		WHERE client_id = $1 AND day = $2
	`, clientID, calendar.Day(day)).Scan(
		&entry.ClientID,
		&date,
		&entry.WorkoutCompleted,
		&entry.HabitsCompleted,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, nil
		}
		return nil, err
	}
	entry.Date = calendar.FromDate(date)

	return &entry, nil
}

func (r *Repo) MarkWorkoutCompleted(ctx context.Context, clientID uuid.UUID, day time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.mark_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client", clientID.String()))

	_, err = r.db.Exec(ctx, `
		INSERT INTO activity_log (client_id, day, workout_completed)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (client_id, day) DO UPDATE
		SET workout_completed = TRUE,
		    updated_at        = now()
	`, clientID, calendar.Day(day))
	return err
}

func (r *Repo) AddHabit(ctx context.Context, clientID uuid.UUID, day time.Time, habitID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.add_habit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client", clientID.String()),
		attribute.String("habit", habitID),
	)

	_, err = r.db.Exec(ctx, `
		INSERT INTO activity_log (client_id, day, habits)
		VALUES ($1, $2, ARRAY[$3::text])
		ON CONFLICT (client_id, day) DO UPDATE
		SET habits     = array_append(activity_log.habits, $3::text),
		    updated_at = now()
	`, clientID, calendar.Day(day), habitID)
	return err
}

// ListRange returns the entries between from and to, both days included, oldest first.
func (r *Repo) ListRange(ctx context.Context, clientID uuid.UUID, from, to time.Time) (_ []progression.ActivityLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.list_range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client", clientID.String()),
		attribute.String("from", calendar.Format(from)),
		attribute.String("to", calendar.Format(to)),
	)

	rows, err := r.db.Query(ctx, `
		SELECT client_id, day, workout_completed, habits
		FROM activity_log
		WHERE client_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day
	`, clientID, calendar.Day(from), calendar.Day(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]progression.ActivityLogEntry, 0)
	for rows.Next() {
		var (
			entry progression.ActivityLogEntry
			date  time.Time
		)
		if err := rows.Scan(&entry.ClientID, &date, &entry.WorkoutCompleted, &entry.HabitsCompleted); err != nil {
			return nil, err
		}
		entry.Date = calendar.FromDate(date)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// AddSessionCompletion stores a completed session. It returns false when
// the session was already completed before.
func (r *Repo) AddSessionCompletion(ctx context.Context, clientID uuid.UUID, session progression.SessionCompletion) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.add_session_completion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client", clientID.String()),
		attribute.String("session", session.SessionID),
	)

	tag, err := r.db.Exec(ctx, `
		INSERT INTO session_completion (session_id, client_id, completed_sets)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO NOTHING
	`, session.SessionID, clientID, session.CompletedSets)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
