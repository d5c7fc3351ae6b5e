package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"notifyads/db/migrations"
)

// Migrate brings the notification ad schema at addr to migrations.Version.
// A dirty schema is reported with its version and left for manual repair.
func Migrate(addr string) (err error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := mg.Close(); err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("notification ad schema is dirty at version %d", current)
	case current > migrations.Version:
		return fmt.Errorf("notification ad schema version %d is newer than %d", current, migrations.Version)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate to version %d: %w", migrations.Version, err)
	}
	return nil
}
