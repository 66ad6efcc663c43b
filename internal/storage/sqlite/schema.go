package sqlite

const schema = `
-- Health events table (notifications, alerts, monitor lifecycle)
CREATE TABLE IF NOT EXISTS health_events (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    severity TEXT NOT NULL DEFAULT 'info',
    title TEXT NOT NULL,
    message TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_health_events_type ON health_events(type);
CREATE INDEX IF NOT EXISTS idx_health_events_severity ON health_events(severity);
CREATE INDEX IF NOT EXISTS idx_health_events_created_at ON health_events(created_at);

-- Mood check-ins table
CREATE TABLE IF NOT EXISTS checkins (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    mood INTEGER NOT NULL CHECK(mood >= 1 AND mood <= 5),
    stress INTEGER NOT NULL CHECK(stress >= 1 AND stress <= 5),
    note TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_checkins_created_at ON checkins(created_at);
`
