// Package db contains the SQL statements, models and connection utilities used
// by the storage package.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/lib/pq" // postgres sql.DB driver initialization
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite" // sqlite sql.DB driver initialization
)

// MemoryDB is the SQLite source for a private in-memory database.
const MemoryDB = ":memory:"

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

var registerHook sync.Once

// Open initializes a connection pool for dialect at source, and then migrates
// the database to match the current state expected of the system. For SQLite,
// source is a file path; if the file does not exist, its parent directory is
// created. For PostgreSQL, source is a connection string.
func Open(ctx context.Context, logger *slog.Logger, dialect Dialect, source string) (*sql.DB, error) {
	var (
		handle *sql.DB
		err    error
	)
	switch dialect {
	case DialectSQLite:
		handle, err = openSQLite(ctx, source)
	case DialectPostgres:
		handle, err = openPostgres(ctx, source)
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", dialect)
	}
	if err != nil {
		return nil, err
	}
	if err = migrate(ctx, logger, dialect, handle); err != nil {
		_ = handle.Close()
		return nil, err
	}
	return handle, nil
}

func openSQLite(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == MemoryDB { //nolint:revive // for documentation
		// noop
	} else if _, err := os.Stat(dbPath); err != nil {
		const userOnlyDirPerms = 0o700
		if err = os.MkdirAll(filepath.Dir(dbPath), userOnlyDirPerms); err != nil {
			return nil, fmt.Errorf("failed to create db parent directory: %w", err)
		}
	}

	if strings.ContainsRune(dbPath, '?') {
		dbPath += "&"
	} else {
		dbPath += "?"
	}
	dbPath += "_time_format=sqlite"

	registerHook.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, _ string) error {
			const initSQL = `
			pragma journal_mode = WAL; -- allow concurrent writes
			pragma synchronous = normal; -- don't wait for fsync except on checkpointing
			pragma temp_store = memory; -- temporary indices
			pragma mmap_size = 1000000000; -- up to 1GB, keep it all in RAM
			pragma foreign_keys = on; -- cascade deletes to associations and posts
			`
			_, err := conn.ExecContext(context.Background(), initSQL, nil)
			return err
		})
	})

	handle, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB handler: %w", err)
	}
	// a single connection also keeps an in-memory database alive and shared
	handle.SetMaxOpenConns(1)
	if err = handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return handle, nil
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	handle, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB handler: %w", err)
	}
	if err = handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return handle, nil
}

func migrate(ctx context.Context, logger *slog.Logger, dialect Dialect, handle *sql.DB) error {
	gooseDialect := goose.DialectSQLite3
	if dialect == DialectPostgres {
		gooseDialect = goose.DialectPostgres
	}
	fsys, err := fs.Sub(migrations, "migrations/"+string(dialect))
	if err != nil {
		return fmt.Errorf("failed to locate %s migrations: %w", dialect, err)
	}
	provider, err := goose.NewProvider(gooseDialect, handle, fsys,
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger = logger.With(slog.String("dialect", string(dialect)))
	for _, res := range results {
		logger.DebugContext(ctx, "applied migration",
			slog.Int64("version", res.Source.Version),
			slog.String("path", res.Source.Path),
			slog.Duration("duration", res.Duration),
		)
	}
	return nil
}
