package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/tablekit/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/tablekit/internal/platform/timeouts"
	"github.com/louisbranch/tablekit/internal/services/web/storage"
	"github.com/louisbranch/tablekit/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const sessionColumns = `id, title, system, description, start_at, end_at, duration_minutes,
	seats_taken, capacity, join_url, rrule, timezone_label, cover_asset, created_at, updated_at`

// Store provides SQLite-backed persistence for scheduled sessions.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.SessionStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a session SQLite store at the provided path and applies
// pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSession inserts or replaces one session row.
func (s *Store) PutSession(ctx context.Context, record storage.SessionRecord) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	normalized, err := normalizeSessionRecord(record)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.StorageQuery)
	defer cancel()

	var endAt sql.NullInt64
	if normalized.End != nil {
		endAt = sql.NullInt64{Int64: toMillis(*normalized.End), Valid: true}
	}
	var duration sql.NullInt64
	if normalized.DurationMinutes != nil {
		duration = sql.NullInt64{Int64: int64(*normalized.DurationMinutes), Valid: true}
	}

	_, err = s.sqlDB.ExecContext(ctx, `
	INSERT INTO scheduled_sessions (`+sessionColumns+`)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		system = excluded.system,
		description = excluded.description,
		start_at = excluded.start_at,
		end_at = excluded.end_at,
		duration_minutes = excluded.duration_minutes,
		seats_taken = excluded.seats_taken,
		capacity = excluded.capacity,
		join_url = excluded.join_url,
		rrule = excluded.rrule,
		timezone_label = excluded.timezone_label,
		cover_asset = excluded.cover_asset,
		updated_at = excluded.updated_at
	`,
		normalized.ID,
		normalized.Title,
		normalized.System,
		normalized.Description,
		toMillis(normalized.Start),
		endAt,
		duration,
		normalized.SeatsTaken,
		normalized.Capacity,
		normalized.JoinURL,
		normalized.Rule,
		normalized.TimezoneLabel,
		normalized.CoverAssetID,
		toMillis(normalized.CreatedAt),
		toMillis(normalized.UpdatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession loads one session by id.
func (s *Store) GetSession(ctx context.Context, id string) (storage.SessionRecord, error) {
	if err := s.ready(ctx); err != nil {
		return storage.SessionRecord{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.SessionRecord{}, storage.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.StorageQuery)
	defer cancel()

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM scheduled_sessions WHERE id = ?`, id)
	record, err := scanSession(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.SessionRecord{}, storage.ErrNotFound
		}
		return storage.SessionRecord{}, fmt.Errorf("get session: %w", err)
	}
	return record, nil
}

// ListSessions returns every session ordered by start, then id.
func (s *Store) ListSessions(ctx context.Context) ([]storage.SessionRecord, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.StorageQuery)
	defer cancel()

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+sessionColumns+` FROM scheduled_sessions ORDER BY start_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []storage.SessionRecord
	for rows.Next() {
		record, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}
	return records, nil
}

// CountSessions returns the number of stored sessions.
func (s *Store) CountSessions(ctx context.Context) (int, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.StorageQuery)
	defer cancel()

	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM scheduled_sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func (s *Store) ready(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func normalizeSessionRecord(record storage.SessionRecord) (storage.SessionRecord, error) {
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return storage.SessionRecord{}, fmt.Errorf("session id is required")
	}
	record.Title = strings.TrimSpace(record.Title)
	if record.Title == "" {
		return storage.SessionRecord{}, fmt.Errorf("session title is required")
	}
	if record.Start.IsZero() {
		return storage.SessionRecord{}, fmt.Errorf("session start is required")
	}
	if record.SeatsTaken < 0 || record.Capacity < 0 {
		return storage.SessionRecord{}, fmt.Errorf("session seats must not be negative")
	}
	record.System = strings.TrimSpace(record.System)
	record.Description = strings.TrimSpace(record.Description)
	record.JoinURL = strings.TrimSpace(record.JoinURL)
	record.Rule = strings.TrimSpace(record.Rule)
	record.TimezoneLabel = strings.TrimSpace(record.TimezoneLabel)
	record.CoverAssetID = strings.TrimSpace(record.CoverAssetID)
	record.Start = record.Start.UTC()
	if record.End != nil {
		end := record.End.UTC()
		record.End = &end
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = record.CreatedAt
	}
	return record, nil
}

type scanner func(dest ...any) error

func scanSession(scan scanner) (storage.SessionRecord, error) {
	var record storage.SessionRecord
	var startAt, createdAt, updatedAt int64
	var endAt, duration sql.NullInt64
	if err := scan(
		&record.ID,
		&record.Title,
		&record.System,
		&record.Description,
		&startAt,
		&endAt,
		&duration,
		&record.SeatsTaken,
		&record.Capacity,
		&record.JoinURL,
		&record.Rule,
		&record.TimezoneLabel,
		&record.CoverAssetID,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.SessionRecord{}, err
	}
	record.Start = fromMillis(startAt)
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	if endAt.Valid {
		value := fromMillis(endAt.Int64)
		record.End = &value
	}
	if duration.Valid {
		value := int(duration.Int64)
		record.DurationMinutes = &value
	}
	return record, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
