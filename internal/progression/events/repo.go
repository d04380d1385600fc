package events

import (
	"context"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ListParams struct {
	ClientID uuid.UUID
	Type     *EventType
	Page     int
	Size     int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event Event) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", event.Type.String()))

	_, err = r.db.Exec(ctx, `
		INSERT INTO progression_event (id, client_id, type, data, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`,
		event.ID,
		event.ClientID,
		event.Type,
		event.Data,
		event.Timestamp,
	)
	return err
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client", params.ClientID.String()))
	if params.Type != nil {
		span.SetAttributes(attribute.String("type", params.Type.String()))
	}

	var eventType *string
	if params.Type != nil {
		t := params.Type.String()
		eventType = &t
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, client_id, type, data, timestamp
		FROM progression_event
		WHERE client_id = $1
		  AND ($2::text IS NULL OR type = $2)
		ORDER BY timestamp DESC
		LIMIT $3 OFFSET $4;
	`,
		params.ClientID,
		eventType,
		params.Size, params.Size*params.Page,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0, params.Size)
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.ClientID, &event.Type, &event.Data, &event.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *Repo) Count(ctx context.Context, clientID uuid.UUID) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.events.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM progression_event WHERE client_id = $1
	`, clientID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
