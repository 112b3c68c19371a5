// Package sqlite is the embedded storage backend: a single-file database
// (or :memory: in tests) carrying the same repository contracts as the
// remote PostgreSQL backend. The schema is auto-migrated on open and an
// empty database is seeded with the standard leave catalogue and the 2026
// holiday calendar.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/holiday"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339Nano
)

type DB struct {
	*sql.DB
}

// Open opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single writer avoids SQLITE_BUSY under concurrent mutations.
	db.SetMaxOpenConns(1)

	d := &DB{DB: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return d, nil
}

func (d *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE COLLATE NOCASE,
		role TEXT NOT NULL,
		gender TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		join_date TEXT NOT NULL,
		manager_id TEXT,
		quotas TEXT NOT NULL DEFAULT '{}',
		password_hash TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS leave_types (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		applicable_to TEXT NOT NULL,
		default_quota REAL NOT NULL DEFAULT 0,
		display_order INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS leave_requests (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		employee_name TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		submitted_at TEXT NOT NULL,
		reviewed_at TEXT,
		manager_comment TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_leave_requests_employee
		ON leave_requests(employee_id);

	CREATE TABLE IF NOT EXISTS holidays (
		date TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		check_in TEXT,
		check_out TEXT,
		status TEXT NOT NULL DEFAULT 'present',
		penalty_applied INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		UNIQUE(user_id, date)
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		is_read INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_notifications_user
		ON notifications(user_id);
	`
	_, err := d.Exec(schema)
	return err
}

// Seed loads the standard leave catalogue and the 2026 holiday calendar
// into an empty database. Existing data is left alone.
func (d *DB) Seed(ctx context.Context) error {
	var typeCount int
	if err := d.QueryRowContext(ctx, `SELECT COUNT(*) FROM leave_types`).Scan(&typeCount); err != nil {
		return fmt.Errorf("failed to count leave types: %w", err)
	}
	if typeCount == 0 {
		for _, t := range leave.SeedTypes() {
			_, err := d.ExecContext(ctx,
				`INSERT INTO leave_types (id, label, applicable_to, default_quota, display_order, is_active)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				t.ID, t.Label, string(t.ApplicableTo), t.DefaultQuota, t.Order, boolToInt(t.IsActive))
			if err != nil {
				return fmt.Errorf("failed to seed leave type %s: %w", t.ID, err)
			}
		}
	}

	var holidayCount int
	if err := d.QueryRowContext(ctx, `SELECT COUNT(*) FROM holidays`).Scan(&holidayCount); err != nil {
		return fmt.Errorf("failed to count holidays: %w", err)
	}
	if holidayCount == 0 {
		for date, name := range holiday.Seed2026() {
			if _, err := d.ExecContext(ctx, `INSERT INTO holidays (date, name) VALUES (?, ?)`, date, name); err != nil {
				return fmt.Errorf("failed to seed holiday %s: %w", date, err)
			}
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
