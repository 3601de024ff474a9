package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

const driverName = "sqlite"

var (
	_ types.Catalog = (*Store)(nil)
	_ types.Cart    = (*Store)(nil)
)

// Store implements types.Catalog and types.Cart on a single SQLite file.
// It holds no connection: every operation opens the file, runs in its own
// transaction, and closes it again.
type Store struct {
	config types.Config
	path   string
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for statement tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore validates config and returns a Store for config.DBPath().
// Nothing is opened until the first operation.
func NewStore(config types.Config, opts ...Option) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s := &Store{
		config: config,
		path:   config.DBPath(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("db", s.path))
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// InitializeSchema creates the data directory, the database file and every
// table and index that does not exist yet. Existing rows are left alone.
func (s *Store) InitializeSchema(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	return s.withConnection(ctx, func(tx *sql.Tx) error {
		for _, ddl := range schemaDDL {
			if _, err := tx.ExecContext(ctx, ddl); err != nil {
				return fmt.Errorf("create table: %w", err)
			}
		}
		for _, ddl := range indexDDL {
			if _, err := tx.ExecContext(ctx, ddl); err != nil {
				return fmt.Errorf("create index: %w", err)
			}
		}
		return nil
	})
}

// Tables returns the names of the user tables in the database, sorted.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	var names []string
	err := s.withConnection(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
		if err != nil {
			return fmt.Errorf("listing tables: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return fmt.Errorf("scanning table name: %w", err)
			}
			names = append(names, name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// withConnection opens the database, runs op inside a transaction, and
// releases everything on every exit path. The transaction commits only when
// op returns nil; on error or panic it is rolled back. The handle is always
// closed.
func (s *Store) withConnection(ctx context.Context, op func(tx *sql.Tx) error) (err error) {
	db, err := sql.Open(driverName, s.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", s.path, cerr)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := op(tx); err != nil {
		s.logger.Debug("operation failed", zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
// The message check covers connections that only report primary result codes.
func isUniqueViolation(err error) bool {
	var serr *sqlitedrv.Error
	if !errors.As(err, &serr) {
		return false
	}
	code := serr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(serr.Error(), "UNIQUE constraint failed")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
