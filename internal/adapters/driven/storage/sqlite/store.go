package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/custodia-labs/orgsync/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
	"github.com/custodia-labs/orgsync/internal/logger"
)

const dbFile = "outline.db"

// Pragmas go in the DSN so every pooled connection gets them.
const pragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// Store owns the outline database. NodeStore and IndexStore are thin views
// over the same connection pool.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens <dataDir>/outline.db, creating the directory and applying
// pending migrations. An empty dataDir means ~/.orgsync/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".orgsync", "data")
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite", path+pragmas)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(context.Background(), migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Path() string { return s.path }

func (s *Store) NodeStore() driven.NodeStore { return &nodeStore{store: s} }

func (s *Store) IndexStore() driven.IndexStore { return &indexStore{store: s} }

// SchemaVersion reports the highest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

type migration struct {
	version int
	name    string
}

// pendingMigrations returns the *.up.sql files in fsys newer than current,
// ordered by version. Files without a numeric prefix are ignored.
func pendingMigrations(fsys fs.FS, current int) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations: %w", err)
	}

	seen := make(map[int]string)
	var out []migration
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migrations %s and %s share version %d", prev, name, version)
		}
		seen[version] = name
		if version > current {
			out = append(out, migration{version: version, name: name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

// migrate applies each pending migration in its own transaction so a
// failing script leaves the schema at the previous version.
func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	pending, err := pendingMigrations(fsys, current)
	if err != nil {
		return err
	}

	for _, m := range pending {
		script, err := fs.ReadFile(fsys, m.name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", m.name, err)
		}
		if err := s.apply(ctx, m, string(script)); err != nil {
			return err
		}
		logger.Debug("sqlite: applied %s", m.name)
	}
	return nil
}

func (s *Store) apply(ctx context.Context, m migration, script string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("executing %s: %w", m.name, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
		return fmt.Errorf("recording %s: %w", m.name, err)
	}
	return tx.Commit()
}

// nullInt64 maps the zero ID to SQL NULL.
func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
