package database

// Schema contains all SQL statements for creating tables and indexes
const Schema = `
-- Day completions: compact ledger of completed calendar days.
-- day is a local-date string (YYYY-MM-DD), one row per completed day.
CREATE TABLE IF NOT EXISTS day_completions (
    day TEXT PRIMARY KEY,
    completed_at INTEGER NOT NULL
);

-- Progress: single-row streak/total counters, updated atomically together
-- with the day-completion insert.
CREATE TABLE IF NOT EXISTS progress (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    current_streak INTEGER NOT NULL DEFAULT 0,
    longest_streak INTEGER NOT NULL DEFAULT 0,
    total_days INTEGER NOT NULL DEFAULT 0,
    last_visit_day TEXT,
    updated_at INTEGER NOT NULL
);

-- Recent affirmations: bounded FIFO of recently served texts.
CREATE TABLE IF NOT EXISTS recent_affirmations (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL
);

-- Favorites: corpus indices the user has starred.
CREATE TABLE IF NOT EXISTS favorites (
    affirmation_id INTEGER PRIMARY KEY,
    created_at INTEGER NOT NULL
);

-- Notification preferences: single row, created on first save.
CREATE TABLE IF NOT EXISTS notification_prefs (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    enabled BOOLEAN NOT NULL DEFAULT 0,
    start_time TEXT NOT NULL DEFAULT '08:00',
    end_time TEXT NOT NULL DEFAULT '20:00',
    updated_at INTEGER NOT NULL
);

-- Scheduled notifications: registry of platform notification handles and
-- their payloads. Doubles as the delivery queue for the worker.
CREATE TABLE IF NOT EXISTS scheduled_notifications (
    id TEXT PRIMARY KEY,
    fire_at INTEGER NOT NULL,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    delivered BOOLEAN NOT NULL DEFAULT 0,
    delivered_at INTEGER,
    created_at INTEGER NOT NULL
);

-- App state: small residual key-value surface (onboarding flag, selected
-- areas, sticky today-affirmation).
CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scheduled_notifications_fire_at ON scheduled_notifications(fire_at);
CREATE INDEX IF NOT EXISTS idx_scheduled_notifications_delivered ON scheduled_notifications(delivered, fire_at);
CREATE INDEX IF NOT EXISTS idx_day_completions_completed_at ON day_completions(completed_at);
`
