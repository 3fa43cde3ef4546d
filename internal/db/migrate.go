package db

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/vibe-gaming/tourism/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

// Migrations returns the embedded migration files for driver.
func Migrations(driver string) (fs.FS, error) {
	switch driver {
	case config.DriverPostgres, config.DriverMySQL:
		return fs.Sub(migrations, "migrations/"+driver)
	}
	return nil, fmt.Errorf("no migrations for driver %q", driver)
}

// Migrate brings the schema up to the latest version. It opens its own
// connection and closes it before returning.
func Migrate(cfg config.Database) (uint, error) {
	files, err := Migrations(cfg.Driver)
	if err != nil {
		return 0, err
	}

	src, err := iofs.New(files, ".")
	if err != nil {
		return 0, fmt.Errorf("migrations source: %w", err)
	}

	dsn, err := DSN(cfg)
	if err != nil {
		return 0, err
	}
	if cfg.Driver == config.DriverMySQL {
		dsn = "mysql://" + dsn
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return 0, fmt.Errorf("migrate init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("migrate version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	return version, nil
}
