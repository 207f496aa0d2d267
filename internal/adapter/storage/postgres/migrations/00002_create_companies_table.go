package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(UpCompaniesTable, DownCompaniesTable)
}

func UpCompaniesTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE companies
(
    id UUID PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL DEFAULT '',
    owner_id UUID NOT NULL REFERENCES users (id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE dispatchers
(
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL UNIQUE REFERENCES users (id),
    company_id UUID NOT NULL REFERENCES companies (id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE drivers
(
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL UNIQUE REFERENCES users (id),
    company_id UUID NOT NULL REFERENCES companies (id),
    driving_license VARCHAR(255) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX idx_dispatchers_company ON dispatchers (company_id);
CREATE INDEX idx_drivers_company ON drivers (company_id);`)
	return err
}

func DownCompaniesTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE drivers; DROP TABLE dispatchers; DROP TABLE companies;")
	return err
}
