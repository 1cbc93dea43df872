package db

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies the embedded schema migrations. It returns true if
// migrations actually ran; false if the schema was already current.
func Migrate(dsn string) (bool, error) {
	url, err := migrateURL(dsn)
	if err != nil {
		return false, err
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return false, fmt.Errorf("unable to open migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return false, fmt.Errorf("unable to create migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("unable to run migrations: %w", err)
	}
	return true, nil
}

// migrateURL rewrites a postgres URL DSN to the pgx5 scheme expected by the
// migrate driver. Keyword/value DSNs are not supported.
func migrateURL(dsn string) (string, error) {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix), nil
		}
	}
	if strings.HasPrefix(dsn, "pgx5://") {
		return dsn, nil
	}
	return "", errors.New("migrations require a postgres:// URL DSN")
}
