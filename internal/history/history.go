// Package history keeps a local log of panel interactions and what their
// result elements showed.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
	"github.com/ziadkadry99/opspanel/internal/db"
)

// Source identifies which surface ran an interaction.
type Source string

const (
	SourceCLI   Source = "cli"
	SourcePanel Source = "panel"
	SourceMCP   Source = "mcp"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one recorded interaction.
type Entry struct {
	ID         string
	RecordedAt time.Time
	Endpoint   string
	Method     string
	URL        string
	Status     int
	OK         bool
	Rendered   string
	Error      string
	Duration   time.Duration
	Source     Source
}

// FromResult builds an entry from a finished interaction. ok is the outcome
// that was shown alongside rendered, so envelope rejections count as
// failures even on a 2xx reply.
func FromResult(res apiclient.Result, rendered string, ok bool, source Source) Entry {
	return Entry{
		Endpoint: res.Endpoint,
		Method:   res.Method,
		URL:      res.URL,
		Status:   res.Status,
		OK:       ok,
		Rendered: rendered,
		Error:    res.Err,
		Duration: res.Duration,
		Source:   source,
	}
}

// Store provides access to recorded interactions.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Record inserts an entry. Empty ID and zero RecordedAt are filled in.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = s.now()
	}
	if e.Source == "" {
		e.Source = SourceCLI
	}

	ok := 0
	if e.OK {
		ok = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions (
			id, recorded_at, endpoint, method, url, status, ok,
			rendered, error, duration_ms, source
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.RecordedAt.UTC().Format(timeLayout),
		e.Endpoint,
		e.Method,
		e.URL,
		e.Status,
		ok,
		e.Rendered,
		e.Error,
		e.Duration.Milliseconds(),
		string(e.Source),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting interaction: %w", err)
	}
	return e, nil
}

// Filter controls which entries Recent returns.
type Filter struct {
	Endpoint string
	Source   Source
	Since    *time.Time
	// Limit caps the result; zero means 20.
	Limit int
}

// Recent returns the newest entries first.
func (s *Store) Recent(ctx context.Context, filter Filter) ([]Entry, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Endpoint != "" {
		clauses = append(clauses, "endpoint = ?")
		args = append(args, filter.Endpoint)
	}
	if filter.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, string(filter.Source))
	}
	if filter.Since != nil {
		clauses = append(clauses, "recorded_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}

	query := "SELECT id, recorded_at, endpoint, method, url, status, ok, rendered, error, duration_ms, source FROM interactions"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY recorded_at DESC, rowid DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query += fmt.Sprintf(" LIMIT %d", limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every entry and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM interactions")
	if err != nil {
		return 0, fmt.Errorf("clearing interactions: %w", err)
	}
	return res.RowsAffected()
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e          Entry
		recordedAt string
		ok         int
		durationMS int64
		source     string
	)
	if err := rows.Scan(
		&e.ID, &recordedAt, &e.Endpoint, &e.Method, &e.URL, &e.Status, &ok,
		&e.Rendered, &e.Error, &durationMS, &source,
	); err != nil {
		return Entry{}, fmt.Errorf("scanning interaction: %w", err)
	}
	if t, err := time.Parse(timeLayout, recordedAt); err == nil {
		e.RecordedAt = t
	}
	e.OK = ok != 0
	e.Duration = time.Duration(durationMS) * time.Millisecond
	e.Source = Source(source)
	return e, nil
}
