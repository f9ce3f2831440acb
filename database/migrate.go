package database

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"jobportal/config"
	"jobportal/logging"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

var ErrNoMigrations = errors.New("no migration patterns configured")

// MigrationSource expands the glob patterns and returns the single directory
// holding the matched files. golang-migrate reads every file in that
// directory and records one version per database, so patterns only select
// the directory: a pattern that matches nothing, or matches files in a second
// directory, is an error.
func MigrationSource(patterns []string) (string, error) {
	if len(patterns) == 0 {
		return "", ErrNoMigrations
	}

	var source string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", fmt.Errorf("bad migration pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return "", fmt.Errorf("no migration files match %q", pattern)
		}

		for _, m := range matches {
			dir, err := filepath.Abs(filepath.Dir(m))
			if err != nil {
				return "", fmt.Errorf("resolving %q: %w", m, err)
			}
			if source == "" {
				source = dir
			} else if dir != source {
				return "", fmt.Errorf("migrations must live in one directory, found %s and %s", source, dir)
			}
		}
	}

	return source, nil
}

// Migrate applies or reverts every migration in the data source's migration
// directory and returns the schema version afterwards.
func (d *Database) Migrate(direction Direction) (uint, error) {
	conf := d.Source.Conf
	logger := logging.WithComponent("migrate")

	if conf.Type != config.Postgres {
		return 0, fmt.Errorf("migrations are not supported for %s", conf.Type)
	}

	dir, err := MigrationSource(conf.Migrations)
	if err != nil {
		return 0, err
	}

	m, err := d.newMigrate(dir)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	if direction == Down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("running migrations %s from %s: %w", direction, dir, err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("reading migration version: %w", err)
	}

	logger.Info().
		Str("source", dir).
		Str("direction", direction.String()).
		Uint("version", version).
		Msg("migrations applied")

	return version, nil
}

// Version reports the current schema version and whether the last
// migration left the schema dirty.
func (d *Database) Version() (uint, bool, error) {
	conf := d.Source.Conf

	if conf.Type != config.Postgres {
		return 0, false, fmt.Errorf("migrations are not supported for %s", conf.Type)
	}

	dir, err := MigrationSource(conf.Migrations)
	if err != nil {
		return 0, false, err
	}

	m, err := d.newMigrate(dir)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return version, dirty, err
}

// newMigrate opens a dedicated connection; closing the migrate instance
// closes it without touching the engine pool.
func (d *Database) newMigrate(dir string) (*migrate.Migrate, error) {
	conn, err := sql.Open("postgres", d.Source.Conf.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening migration connection: %w", err)
	}

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(dir), "postgres", driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("creating migrate instance: %w", err)
	}

	return m, nil
}
