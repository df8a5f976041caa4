package storage

import (
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
)

// Migrate applies every pending migration from sourceURL (e.g. "file://migrations")
// and returns the schema versions before and after.
func Migrate(db *sql.DB, sourceURL string) (uint, uint, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, 0, errors.Wrap(err, "postgres.WithInstance")
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return 0, 0, errors.Wrap(err, "migrate.NewWithDatabaseInstance")
	}

	preMigrationVersion, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		preMigrationVersion = 0
	} else if err != nil {
		return 0, 0, errors.Wrap(err, "version before migration")
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return preMigrationVersion, 0, errors.Wrap(err, "migrate up")
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil {
		return preMigrationVersion, 0, errors.Wrap(err, "version after migration")
	}

	return preMigrationVersion, postMigrationVersion, nil
}
