package db

// Schema holds every table the service owns. Statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS activity_log
(
    client_id         UUID        NOT NULL,
    day               DATE        NOT NULL,
    workout_completed BOOLEAN     NOT NULL DEFAULT FALSE,
    habits            TEXT[]      NOT NULL DEFAULT '{}',
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (client_id, day)
);

CREATE TABLE IF NOT EXISTS session_completion
(
    session_id     VARCHAR     PRIMARY KEY,
    client_id      UUID        NOT NULL,
    completed_sets INTEGER     NOT NULL CHECK (completed_sets >= 0),
    completed_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS progression_profile
(
    client_id        UUID PRIMARY KEY,
    xp               INTEGER     NOT NULL DEFAULT 0 CHECK (xp >= 0),
    level            INTEGER     NOT NULL DEFAULT 1 CHECK (level >= 1),
    streak_days      INTEGER     NOT NULL DEFAULT 0 CHECK (streak_days >= 0),
    best_streak      INTEGER     NOT NULL DEFAULT 0,
    last_active_date DATE,
    total_workouts   INTEGER     NOT NULL DEFAULT 0,
    total_habits     INTEGER     NOT NULL DEFAULT 0,
    badges           TEXT[]      NOT NULL DEFAULT '{}',
    credit_date      DATE,
    credit_workout   BOOLEAN     NOT NULL DEFAULT FALSE,
    credit_habits    INTEGER     NOT NULL DEFAULT 0,
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS progression_event
(
    id        UUID PRIMARY KEY,
    client_id UUID        NOT NULL,
    type      VARCHAR     NOT NULL,
    data      JSONB       NOT NULL DEFAULT '{}',
    timestamp TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_progression_event_client_ts
    ON progression_event (client_id, timestamp DESC);
`
