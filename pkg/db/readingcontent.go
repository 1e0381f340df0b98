package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"readings-index/pkg/domain"
)

// DefaultTable is the table (or collection) reading text is stored in.
const DefaultTable = "reading_content"

func quoteTable(table string) string {
	if table == "" {
		table = DefaultTable
	}
	return pgx.Identifier{table}.Sanitize()
}

func createTableQuery(table string) string {
	// id is the conflict key for upserts.
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  id TEXT PRIMARY KEY,
  reading_id TEXT NOT NULL,
  week_num INTEGER NOT NULL,
  title TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL DEFAULT '',
  page_count INTEGER NOT NULL DEFAULT 0,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`, quoteTable(table))
}

func upsertQuery(table string) string {
	return fmt.Sprintf(`
INSERT INTO %s (id, reading_id, week_num, title, content, page_count, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
  reading_id = EXCLUDED.reading_id,
  week_num = EXCLUDED.week_num,
  title = EXCLUDED.title,
  content = EXCLUDED.content,
  page_count = EXCLUDED.page_count,
  updated_at = EXCLUDED.updated_at`, quoteTable(table))
}

// sqlHandle adapts a bare *sql.DB to DBProvider.
type sqlHandle struct{ db *sql.DB }

func (h sqlHandle) DB() *sql.DB { return h.db }

// prepareDirect pings db and creates the reading content table. db is closed
// on any failure so the caller never holds a half-initialized handle.
func prepareDirect(ctx context.Context, db *sql.DB, table string) error {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping: %w", err)
	}
	if err := ensureReadingContentSchema(ctx, sqlHandle{db}, table); err != nil {
		_ = db.Close()
		return err
	}
	return nil
}

// ensureReadingContentSchema creates the reading content table if it is absent.
func ensureReadingContentSchema(ctx context.Context, p DBProvider, table string) error {
	if p.DB() == nil {
		return fmt.Errorf("postgres DB not connected")
	}
	if _, err := p.DB().ExecContext(ctx, createTableQuery(table)); err != nil {
		return fmt.Errorf("create %s table: %w", table, err)
	}
	return nil
}

// upsertReadingContentSQL inserts rc or replaces the row with the same id.
func upsertReadingContentSQL(ctx context.Context, p DBProvider, table string, rc *domain.ReadingContent) error {
	if p.DB() == nil {
		return fmt.Errorf("postgres DB not connected")
	}
	if rc == nil || rc.ID == "" {
		return fmt.Errorf("reading content id is required")
	}

	_, err := p.DB().ExecContext(ctx, upsertQuery(table),
		rc.ID, rc.ReadingID, rc.WeekNum, rc.Title, rc.Content, rc.PageCount, rc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert reading content id=%q: %w", rc.ID, err)
	}
	return nil
}

// countReadingContentSQL returns the number of rows in the table.
func countReadingContentSQL(ctx context.Context, p DBProvider, table string) (int, error) {
	if p.DB() == nil {
		return 0, fmt.Errorf("postgres DB not connected")
	}

	var n int
	row := p.DB().QueryRowContext(ctx, fmt.Sprintf("SELECT count(*) FROM %s", quoteTable(table)))
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
