package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type queries struct {
	get    string
	upsert string
	del    string
}

var sqliteQueries = queries{
	get: `SELECT value FROM records WHERE key = ?`,
	upsert: `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`,
	del: `DELETE FROM records WHERE key = ?`,
}

var postgresQueries = queries{
	get: `SELECT value FROM records WHERE key = $1`,
	upsert: `
		INSERT INTO records (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`,
	del: `DELETE FROM records WHERE key = $1`,
}

// SQLRepository implements Store over a DBTX (either *sql.DB or *sql.Tx).
// The dialect only changes placeholder syntax.
type SQLRepository struct {
	db DBTX
	q  queries
}

// NewSQLiteRepository binds a repository using SQLite placeholders.
func NewSQLiteRepository(db DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: sqliteQueries}
}

// NewPostgresRepository binds a repository using PostgreSQL placeholders.
func NewPostgresRepository(db DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: postgresQueries}
}

func (r *SQLRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, r.q.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLRepository) Set(ctx context.Context, key string, value []byte) error {
	if _, err := r.db.ExecContext(ctx, r.q.upsert, key, value); err != nil {
		return fmt.Errorf("failed to set record[%s]: %w", key, err)
	}
	return nil
}

// Delete removes a record. Deleting an absent key is not an error.
func (r *SQLRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, r.q.del, key); err != nil {
		return fmt.Errorf("failed to delete record[%s]: %w", key, err)
	}
	return nil
}

// Atomic opens a transaction when the repository is bound to *sql.DB.
// A repository already bound to a transaction runs fn directly.
func (r *SQLRepository) Atomic(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	conn, ok := r.db.(*sql.DB)
	if !ok {
		return fn(ctx, r)
	}
	return withTx(ctx, conn, func(tx DBTX) error {
		return fn(ctx, &SQLRepository{db: tx, q: r.q})
	})
}
