package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"time"

	"voice-task-tracker/pkg/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

var migrationNameRe = regexp.MustCompile(`^(\d+)_(\w+)\.(up|down)\.sql$`)

// Migration is one versioned schema change.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// Migrator applies and reverts the embedded schema migrations. Applied
// versions are recorded in the schema_migrations table.
type Migrator struct {
	db         *sql.DB
	l          log.Logger
	migrations []Migration
}

// NewMigrator loads the embedded migrations.
func NewMigrator(db *sql.DB, l log.Logger) (*Migrator, error) {
	migrations, err := loadMigrations(migrationFiles)
	if err != nil {
		return nil, err
	}
	return &Migrator{db: db, l: l, migrations: migrations}, nil
}

// Migrations returns the known migrations in ascending version order.
func (m *Migrator) Migrations() []Migration {
	return m.migrations
}

// Version returns the highest applied version, or 0 on a fresh database.
func (m *Migrator) Version(ctx context.Context) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}
	var v sql.NullInt64
	if err := m.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(v.Int64), nil
}

// Migrate applies every pending migration and returns how many ran.
func (m *Migrator) Migrate(ctx context.Context) (int, error) {
	current, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, mg := range m.migrations {
		if mg.Version <= current {
			continue
		}
		err := m.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, mg.Up); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
				mg.Version, mg.Name, formatTime(time.Now()))
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("migration %d_%s up: %w", mg.Version, mg.Name, err)
		}
		m.l.Infof(ctx, "sqlite.Migrate: applied %d_%s", mg.Version, mg.Name)
		applied++
	}
	return applied, nil
}

// Rollback reverts applied migrations newer than target, newest first, and
// returns how many ran.
func (m *Migrator) Rollback(ctx context.Context, target int) (int, error) {
	if target < 0 {
		return 0, fmt.Errorf("invalid rollback target %d", target)
	}
	current, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}

	reverted := 0
	for i := len(m.migrations) - 1; i >= 0; i-- {
		mg := m.migrations[i]
		if mg.Version <= target || mg.Version > current {
			continue
		}
		err := m.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, mg.Down); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = ?`, mg.Version)
			return err
		})
		if err != nil {
			return reverted, fmt.Errorf("migration %d_%s down: %w", mg.Version, mg.Name, err)
		}
		m.l.Infof(ctx, "sqlite.Rollback: reverted %d_%s", mg.Version, mg.Name)
		reverted++
	}
	return reverted, nil
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TEXT NOT NULL
		)`
	if _, err := m.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

func (m *Migrator) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// loadMigrations pairs NNNN_name.up.sql and NNNN_name.down.sql files.
func loadMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	byVersion := make(map[int]*Migration)
	for _, e := range entries {
		g := migrationNameRe.FindStringSubmatch(e.Name())
		if g == nil {
			continue
		}
		version, _ := strconv.Atoi(g[1])
		body, err := fs.ReadFile(fsys, path.Join("migrations", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		mg, ok := byVersion[version]
		if !ok {
			mg = &Migration{Version: version, Name: g[2]}
			byVersion[version] = mg
		}
		if g[3] == "up" {
			mg.Up = string(body)
		} else {
			mg.Down = string(body)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, mg := range byVersion {
		if mg.Up == "" || mg.Down == "" {
			return nil, fmt.Errorf("migration %d_%s is missing its up or down file", mg.Version, mg.Name)
		}
		migrations = append(migrations, *mg)
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}
