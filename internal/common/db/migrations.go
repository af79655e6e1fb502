package db

import (
	"context"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every embedded migration not yet recorded in
// schema_migrations, each in its own transaction.
func (c *Conn) Migrate(ctx context.Context) error {
	_, err := c.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SERIAL PRIMARY KEY,
			migration_name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)`)
	if err != nil {
		return errors.Wrap(err, "failed to create migrations table")
	}

	files, err := MigrationFiles(migrationsFS)
	if err != nil {
		return errors.Wrap(err, "failed to list migrations")
	}
	applied, err := c.appliedMigrations(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read applied migrations")
	}

	for _, name := range Pending(files, applied) {
		if err := c.apply(ctx, name); err != nil {
			return errors.Wrapf(err, "failed to run migration %s", name)
		}
		c.log.Info("migration_applied", map[string]any{"migration": name})
	}
	return nil
}

func (c *Conn) apply(ctx context.Context, name string) error {
	body, err := fs.ReadFile(migrationsFS, path.Join("migrations", name))
	if err != nil {
		return err
	}
	tx, err := c.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, string(body)); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (migration_name) VALUES ($1)`, name); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (c *Conn) appliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := c.Query(ctx, `SELECT migration_name FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

// MigrationFiles lists the .sql files under migrations/ in name order.
func MigrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, "migrations")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Pending keeps the order of files and drops the applied ones.
func Pending(files []string, applied map[string]bool) []string {
	var out []string
	for _, f := range files {
		if !applied[f] {
			out = append(out, f)
		}
	}
	return out
}
