// Package sqlite provides a SQLite-backed audit store for generation
// runs. It is an optional side-channel: the pipeline itself never
// depends on it.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/propoundhq/propound-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/propoundhq/propound-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.AuditStore = (*Store)(nil)

// Store persists runs and phase traces in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the audit database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating audit directory: %w", err)
		}
	}

	// WAL mode for concurrent readers during long runs
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening audit database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// BeginRun records the start of a generation run.
func (s *Store) BeginRun(ctx context.Context, runID, caseName string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, case_name) VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`, runID, caseName)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// TracePhase persists one phase trace with its payload as JSON.
func (s *Store) TracePhase(ctx context.Context, trace driven.PhaseTrace) error {
	payload, err := json.Marshal(trace.Payload)
	if err != nil {
		return fmt.Errorf("marshalling %s trace: %w", trace.Phase, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO phase_traces (run_id, seq, phase, dataset_index, doc_type, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`, trace.RunID, trace.Seq, trace.Phase, trace.DatasetIndex, string(trace.DocType), string(payload))
	if err != nil {
		return fmt.Errorf("saving phase trace: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}
