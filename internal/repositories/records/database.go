package records

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/siteadmin/internal/repositories/records/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Backend names reported by Database.Backend.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// MemoryDSN selects the in-process store; nothing survives the process.
const MemoryDSN = "memory:"

// Database owns the connection behind a Store.
type Database struct {
	backend string
	conn    *sql.DB
	store   Store
}

func (d *Database) Store() Store    { return d.store }
func (d *Database) Backend() string { return d.backend }
func (d *Database) Conn() *sql.DB   { return d.conn }

// Close releases the underlying connection, if any.
func (d *Database) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

// backendForDSN picks a backend from the DSN shape:
// postgres:// or postgresql:// URLs use pgx, "memory:" the in-process map,
// anything else is treated as a SQLite file path or URI.
func backendForDSN(dsn string) string {
	switch {
	case dsn == MemoryDSN:
		return BackendMemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}

// gooseUp is a seam for testing goose.UpContext.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// RunMigrations applies the embedded migrations for the given backend.
func RunMigrations(ctx context.Context, db *sql.DB, backend string) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	dialect, dir := "sqlite3", migrations.SQLiteDir
	if backend == BackendPostgres {
		dialect, dir = "postgres", migrations.PostgresDir
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUp(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// Open connects to the backend selected by dsn and migrates the schema.
func Open(ctx context.Context, dsn string) (*Database, error) {
	backend := backendForDSN(dsn)
	if backend == BackendMemory {
		return &Database{backend: backend, store: NewMemoryRepository()}, nil
	}

	driver := "sqlite"
	if backend == BackendPostgres {
		driver = "pgx"
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if backend == BackendSQLite {
		// one writer; avoids SQLITE_BUSY between pooled connections
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := RunMigrations(ctx, conn, backend); err != nil {
		_ = conn.Close()
		return nil, err
	}

	var store Store
	if backend == BackendPostgres {
		store = NewPostgresRepository(conn)
	} else {
		store = NewSQLiteRepository(conn)
	}

	return &Database{backend: backend, conn: conn, store: store}, nil
}
