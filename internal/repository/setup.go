package repository

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedded embed.FS

// Migrations returns the schema files shipped with the binary.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

func Migrate(db *sql.DB, migrationsFS fs.FS, log *zap.Logger) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);
	`)
	if err != nil {
		return err
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&current)
	if err != nil {
		return err
	}

	entries, err := fs.Glob(migrationsFS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)

	for _, name := range entries {
		version, err := ParseMigrationVersion(name)
		if err != nil {
			log.Warn("skipping invalid migration file", zap.String("file", name), zap.Error(err))
			continue
		}
		if version <= current {
			continue
		}
		if err := applyMigration(db, migrationsFS, name, version); err != nil {
			return err
		}
		log.Info("schema migrated", zap.Int("version", version))
	}

	return nil
}

func applyMigration(db *sql.DB, migrationsFS fs.FS, name string, version int) error {
	sqlBytes, err := fs.ReadFile(migrationsFS, name)
	if err != nil {
		return fmt.Errorf("reading migration %s: %w", name, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx for migration %d: %w", version, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(string(sqlBytes)); err != nil {
		return fmt.Errorf("migration %d failed: %w", version, err)
	}
	if _, err := tx.Exec(`INSERT OR REPLACE INTO schema_version(version) VALUES (?)`, version); err != nil {
		return fmt.Errorf("recording migration %d: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %d: %w", version, err)
	}
	return nil
}

func ParseMigrationVersion(filename string) (int, error) {
	base := filename
	if idx := strings.LastIndex(filename, "/"); idx >= 0 {
		base = filename[idx+1:]
	}

	name, ok := strings.CutSuffix(base, ".sql")
	if !ok {
		return 0, fmt.Errorf("migration %q: invalid extension", base)
	}

	prefix, _, _ := strings.Cut(name, "_")
	if prefix == "" {
		return 0, fmt.Errorf("migration %q: missing version prefix", base)
	}

	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, fmt.Errorf("migration %q: invalid version number", base)
	}

	return version, nil
}
