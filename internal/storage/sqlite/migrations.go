package sqlite

import "database/sql"

// schema sets up the database tables. It runs on startup so tables exist.
// Users must be created before rides and rides before their child tables
// because of the foreign keys.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    photo TEXT NOT NULL DEFAULT '',
    preferred_ride_type TEXT NOT NULL DEFAULT '',
    emergency_name TEXT,
    emergency_phone TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rides (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    destination_name TEXT NOT NULL,
    maps_link TEXT NOT NULL DEFAULT '',
    date_ms INTEGER NOT NULL,
    reminder TEXT NOT NULL,
    status TEXT NOT NULL,
    created_by TEXT NOT NULL,
    distance_km REAL,
    duration TEXT,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (created_by) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS ride_participants (
    ride_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (ride_id, user_id),
    FOREIGN KEY (ride_id) REFERENCES rides(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS ride_ratings (
    ride_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
    position INTEGER NOT NULL,
    PRIMARY KEY (ride_id, user_id),
    FOREIGN KEY (ride_id) REFERENCES rides(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS messages (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    ride_id TEXT NOT NULL,
    sender_id TEXT NOT NULL,
    text TEXT NOT NULL,
    timestamp_ms INTEGER NOT NULL,
    FOREIGN KEY (ride_id) REFERENCES rides(id) ON DELETE CASCADE,
    FOREIGN KEY (sender_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_rides_date ON rides(date_ms);
CREATE INDEX IF NOT EXISTS idx_ride_participants_user_id ON ride_participants(user_id);
CREATE INDEX IF NOT EXISTS idx_messages_ride_id ON messages(ride_id, timestamp_ms);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
