// Package sqlite provides a SQLite-backed widget failure store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	sqlitemigrate "github.com/prestonhollow/detailing/internal/platform/storage/sqlitemigrate"
	"github.com/prestonhollow/detailing/internal/services/web/storage"
	"github.com/prestonhollow/detailing/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
	// maxFieldLength bounds client-supplied text columns.
	maxFieldLength = 2048
)

// Store persists widget failure reports in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.WidgetFailureStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordWidgetFailure inserts one failure report.
func (s *Store) RecordWidgetFailure(ctx context.Context, failure storage.WidgetFailure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	src := truncate(strings.TrimSpace(failure.Src))
	if src == "" {
		return storage.ErrInvalidReport
	}
	origin := strings.TrimSpace(failure.Origin)
	if origin == "" {
		origin = storage.OriginServer
	}
	occurredAt := failure.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO widget_failures (
		   src,
		   reason,
		   page,
		   origin,
		   user_agent,
		   occurred_at
		 ) VALUES (?, ?, ?, ?, ?, ?)`,
		src,
		truncate(strings.TrimSpace(failure.Reason)),
		truncate(strings.TrimSpace(failure.Page)),
		origin,
		truncate(strings.TrimSpace(failure.UserAgent)),
		toMillis(occurredAt),
	)
	if err != nil {
		return fmt.Errorf("record widget failure: %w", err)
	}
	return nil
}

// ListWidgetFailures returns the most recent reports, newest first.
func (s *Store) ListWidgetFailures(ctx context.Context, limit int) ([]storage.WidgetFailure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, src, reason, page, origin, user_agent, occurred_at
		 FROM widget_failures
		 ORDER BY occurred_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list widget failures: %w", err)
	}
	defer rows.Close()

	failures := make([]storage.WidgetFailure, 0, limit)
	for rows.Next() {
		var (
			failure    storage.WidgetFailure
			occurredAt int64
		)
		if err := rows.Scan(
			&failure.ID,
			&failure.Src,
			&failure.Reason,
			&failure.Page,
			&failure.Origin,
			&failure.UserAgent,
			&occurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan widget failure: %w", err)
		}
		failure.OccurredAt = fromMillis(occurredAt)
		failures = append(failures, failure)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate widget failures: %w", err)
	}
	return failures, nil
}

func truncate(value string) string {
	if len(value) <= maxFieldLength {
		return value
	}
	cut := maxFieldLength
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}
