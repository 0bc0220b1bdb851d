package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteTimeLayout matches SQLite's CURRENT_TIMESTAMP output. All timestamps
// are stored in UTC in this format so that string comparison orders them
// chronologically (the unlock sweep relies on this).
const sqliteTimeLayout = "2006-01-02 15:04:05"

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS capsules (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			visibility TEXT NOT NULL DEFAULT 'group',
			state TEXT NOT NULL DEFAULT 'locked',
			unlock_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			capsule_id TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT 'you',
			kind TEXT NOT NULL,
			text_content TEXT,
			media_url TEXT,
			mime_type TEXT,
			size_bytes INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (capsule_id) REFERENCES capsules(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_items_capsule ON items(capsule_id);`,
		`CREATE INDEX IF NOT EXISTS idx_items_created ON items(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_capsules_due ON capsules(state, unlock_at);`,
		`CREATE TABLE IF NOT EXISTS likes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item_id TEXT NOT NULL,
			user_handle TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (item_id, user_handle),
			FOREIGN KEY (item_id) REFERENCES items(id)
		);`,
		`CREATE TABLE IF NOT EXISTS comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item_id TEXT NOT NULL,
			user_handle TEXT NOT NULL,
			text TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (item_id) REFERENCES items(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_comments_item ON comments(item_id);`,
		`CREATE TABLE IF NOT EXISTS invites (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			capsule_id TEXT NOT NULL,
			invitee_email TEXT,
			invitee_username TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (capsule_id) REFERENCES capsules(id)
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// formatTime renders a timestamp in the storage layout, normalized to UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

// parseTime parses a timestamp stored by this package or by SQLite's
// CURRENT_TIMESTAMP default.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeLayout, s)
	if err != nil {
		// Try alternative format (SQLite might use different format)
		return time.Parse(time.RFC3339, s)
	}
	return t, nil
}
