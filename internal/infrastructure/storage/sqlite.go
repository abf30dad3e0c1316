package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Vaqt belgilari UTC da, qat'iy uzunlikda saqlanadi: satrlarni solishtirish
// vaqtlarni solishtirish bilan bir xil bo'ladi.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", s, err)
	}
	return t, nil
}

// OpenSQLite SQLite bazasini ochish va sxemani yaratish
func OpenSQLite(dbPath string) (*sqlx.DB, error) {
	if dbPath == "" {
		return nil, errors.New("db path bo'sh bo'lmasligi kerak")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("db papkasini yaratib bo'lmadi: %w", err)
	}

	db, err := sqlx.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite ochilmadi: %w", err)
	}
	// Yozuvlar bitta ulanish orqali ketma-ket bajariladi
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func createSchema(db *sqlx.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id INTEGER PRIMARY KEY,
	username TEXT NOT NULL DEFAULT '',
	first_name TEXT NOT NULL DEFAULT '',
	last_name TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	last_active TEXT NOT NULL,
	message_count INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	customer_name TEXT NOT NULL,
	customer_phone TEXT NOT NULL,
	customer_email TEXT NOT NULL DEFAULT '',
	bike_model TEXT NOT NULL,
	frame_size TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS admin_actions (
	id TEXT PRIMARY KEY,
	user_id INTEGER NOT NULL,
	action TEXT NOT NULL,
	details TEXT NOT NULL DEFAULT '',
	ts TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_admin_actions_ts ON admin_actions (ts);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema yaratib bo'lmadi: %w", err)
	}
	return nil
}
