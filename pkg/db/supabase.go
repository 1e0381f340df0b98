package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	supabase "github.com/supabase-community/supabase-go"

	"readings-index/pkg/domain"
)

// SupabaseConfig holds configuration required to reach a Supabase project.
type SupabaseConfig struct {
	// SupabaseURL is the project URL, e.g. "https://[project-ref].supabase.co".
	SupabaseURL string

	// SupabaseKey is the service_role API key used for REST writes.
	SupabaseKey string

	// Password is the database password, not the API key. When set, rows are
	// written over a direct Postgres connection instead of the REST API.
	Password string

	// Table is the reading content table. Defaults to DefaultTable.
	Table string
}

// SupabaseClient writes reading content to Supabase, either through the REST
// API (URL + service key) or a direct database connection (URL + password).
type SupabaseClient struct {
	db   *sql.DB
	rest *supabase.Client
	cfg  SupabaseConfig
}

// NewSupabaseClient constructs a Supabase client. Call Connect before use.
func NewSupabaseClient(cfg SupabaseConfig) *SupabaseClient {
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	return &SupabaseClient{cfg: cfg}
}

// Connect opens the direct connection when a password is configured and the
// REST client otherwise. A direct connection that cannot be established is an
// error; there is no silent switch to REST.
func (c *SupabaseClient) Connect(ctx context.Context) error {
	if c.cfg.Password != "" {
		connStr, err := c.buildConnectionString()
		if err != nil {
			return fmt.Errorf("build connection string: %w", err)
		}

		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return fmt.Errorf("open supabase postgres: %w", err)
		}
		if err := prepareDirect(ctx, db, c.cfg.Table); err != nil {
			return fmt.Errorf("supabase postgres: %w", err)
		}
		c.db = db
		return nil
	}

	if c.cfg.SupabaseURL == "" || c.cfg.SupabaseKey == "" {
		return fmt.Errorf("supabase URL and service key (or database password) must be provided")
	}

	client, err := supabase.NewClient(c.cfg.SupabaseURL, c.cfg.SupabaseKey, nil)
	if err != nil {
		return fmt.Errorf("initialize supabase SDK: %w", err)
	}
	c.rest = client
	return nil
}

// Close closes the direct database connection, if any.
func (c *SupabaseClient) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// DB returns the direct connection, or nil in REST mode.
func (c *SupabaseClient) DB() *sql.DB {
	return c.db
}

// HasDirectDB reports whether rows go over a direct database connection.
func (c *SupabaseClient) HasDirectDB() bool {
	return c.db != nil
}

// UpsertReadingContent inserts rc or replaces the row with the same id.
// In REST mode this is a POST with on_conflict=id and merge-duplicates.
func (c *SupabaseClient) UpsertReadingContent(ctx context.Context, rc *domain.ReadingContent) error {
	if c.db != nil {
		return upsertReadingContentSQL(ctx, c, c.cfg.Table, rc)
	}
	if c.rest == nil {
		return fmt.Errorf("supabase client not connected")
	}
	if rc == nil || rc.ID == "" {
		return fmt.Errorf("reading content id is required")
	}

	_, _, err := c.rest.From(c.cfg.Table).
		Upsert(rc, "id", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("upsert reading content id=%q: %w", rc.ID, err)
	}
	return nil
}

// buildConnectionString derives the direct Postgres DSN from the project URL.
func (c *SupabaseClient) buildConnectionString() (string, error) {
	if c.cfg.SupabaseURL == "" {
		return "", fmt.Errorf("supabase URL is required for a direct connection")
	}
	if c.cfg.Password == "" {
		return "", fmt.Errorf("database password is required for a direct connection")
	}

	parsedURL, err := url.Parse(c.cfg.SupabaseURL)
	if err != nil {
		return "", fmt.Errorf("parse supabase URL: %w", err)
	}

	// "abcdefgh.supabase.co" -> "abcdefgh"
	parts := strings.Split(parsedURL.Host, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid supabase URL format: expected [project-ref].supabase.co")
	}
	projectRef := parts[0]

	// The pooler does not keep prepared statements across transactions, so
	// no statement cache and the simple protocol.
	connStr := fmt.Sprintf(
		"postgresql://postgres:%s@db.%s.supabase.co:5432/postgres?sslmode=require&statement_cache_capacity=0&default_query_exec_mode=simple_protocol",
		url.QueryEscape(c.cfg.Password), projectRef)

	return connStr, nil
}
