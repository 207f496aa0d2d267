package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	_ "github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/postgres/migrations"
)

// Migrate runs the registered goose migrations over the pgx stdlib driver.
// The pgxpool used for serving traffic does not expose a *sql.DB, so a
// short-lived connection is opened just for this.
func Migrate(dbURL string) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(db, "internal/adapter/storage/postgres/migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
