package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqrl "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect selects the SQL flavour for DDL and placeholders.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// SQL implements Store on top of sqlx. Only this package and main know which driver is behind it.
type SQL struct {
	db      *sqlx.DB
	dialect Dialect
	sb      sqrl.StatementBuilderType
	onClose func()
}

// Open connects to databaseURL. postgres:// and postgresql:// URLs go through a pgx pool;
// sqlite:// and file: URLs open a go-sqlite3 database.
func Open(ctx context.Context, databaseURL string) (*SQL, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		pool, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return NewPostgres(pool), nil
	case strings.HasPrefix(databaseURL, "sqlite://"), strings.HasPrefix(databaseURL, "file:"):
		return NewSQLite(strings.TrimPrefix(databaseURL, "sqlite://"))
	default:
		return nil, fmt.Errorf("unsupported database url scheme: %q", databaseURL)
	}
}

// NewPostgres returns a Store backed by the given pool. Close releases the pool.
func NewPostgres(pool *pgxpool.Pool) *SQL {
	db := sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")
	return newSQL(db, DialectPostgres, pool.Close)
}

// NewSQLite opens the sqlite database at path with foreign keys enforced.
func NewSQLite(path string) (*SQL, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := sqlx.Open("sqlite3", path+sep+"_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single writer
	db.SetMaxOpenConns(1)
	return newSQL(db, DialectSQLite, nil), nil
}

func newSQL(db *sqlx.DB, dialect Dialect, onClose func()) *SQL {
	format := sqrl.PlaceholderFormat(sqrl.Question)
	if dialect == DialectPostgres {
		format = sqrl.Dollar
	}
	return &SQL{
		db:      db,
		dialect: dialect,
		sb:      sqrl.StatementBuilder.PlaceholderFormat(format),
		onClose: onClose,
	}
}

// Dialect reports which backend is in use.
func (s *SQL) Dialect() Dialect {
	return s.dialect
}

// Ping checks the database connection.
func (s *SQL) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database and any underlying pool.
func (s *SQL) Close() error {
	err := s.db.Close()
	if s.onClose != nil {
		s.onClose()
	}
	return err
}

// Migrate creates every table and index that does not exist yet.
func (s *SQL) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, renderDDL(stmt, s.dialect)); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders for hand-written queries.
func (s *SQL) rebind(query string) string {
	return s.db.Rebind(query)
}

// upsertSuffix renders ON CONFLICT (target) DO UPDATE SET col = excluded.col for each column.
func upsertSuffix(target string, cols ...string) string {
	sets := make([]string, 0, len(cols))
	for _, c := range cols {
		sets = append(sets, c+" = excluded."+c)
	}
	return "ON CONFLICT (" + target + ") DO UPDATE SET " + strings.Join(sets, ", ")
}

func (s *SQL) exec(ctx context.Context, b sqrl.Sqlizer) (sql.Result, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return s.db.ExecContext(ctx, q, args...)
}

func (s *SQL) get(ctx context.Context, dest any, b sqrl.Sqlizer) error {
	q, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if err := s.db.GetContext(ctx, dest, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *SQL) selectAll(ctx context.Context, dest any, b sqrl.Sqlizer) error {
	q, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return s.db.SelectContext(ctx, dest, q, args...)
}
