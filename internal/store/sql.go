package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Dialect selects placeholder syntax for the SQL store.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// SQL stores keys in the browser_kv table created by the database package.
type SQL struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQL wraps a migrated database handle.
func NewSQL(db *sql.DB, dialect Dialect) *SQL {
	return &SQL{db: db, dialect: dialect}
}

func (s *SQL) placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = s.dialect.placeholder(i + 1)
	}
	return strings.Join(ph, ", ")
}

func toArgs(keys []string) []any {
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return args
}

func (s *SQL) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	query := fmt.Sprintf(`SELECT cache_key, payload FROM browser_kv WHERE cache_key IN (%s)`,
		s.placeholders(len(keys)))
	rows, err := s.db.QueryContext(ctx, query, toArgs(keys)...)
	if err != nil {
		return nil, fmt.Errorf("query keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (s *SQL) SetMany(ctx context.Context, kv map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO browser_kv (cache_key, payload)
		VALUES (%s, %s)
		ON CONFLICT (cache_key) DO UPDATE SET payload = EXCLUDED.payload
	`, s.dialect.placeholder(1), s.dialect.placeholder(2))
	for k, v := range kv {
		if _, err := tx.ExecContext(ctx, query, k, v); err != nil {
			return fmt.Errorf("upsert %s: %w", k, err)
		}
	}
	return tx.Commit()
}

func (s *SQL) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query := fmt.Sprintf(`DELETE FROM browser_kv WHERE cache_key IN (%s)`, s.placeholders(len(keys)))
	if _, err := s.db.ExecContext(ctx, query, toArgs(keys)...); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}
