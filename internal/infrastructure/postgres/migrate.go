package postgres

import (
	"fmt"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib" // driver database/sql pour goose
)

// Migrate applique les migrations goose du répertoire dir sur la base.
// Idempotent : goose tient son propre journal de versions.
func Migrate(dsn, dir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("ouvrir la connexion de migration: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("appliquer les migrations: %w", err)
	}
	return nil
}
