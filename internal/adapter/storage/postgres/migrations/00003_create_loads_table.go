package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(UpLoadsTable, DownLoadsTable)
}

func UpLoadsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE loads
(
    id UUID PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    description TEXT NOT NULL,
    category VARCHAR(255) NOT NULL,
    pickup_location VARCHAR(255) NOT NULL,
    delivery_location VARCHAR(255) NOT NULL,
    company_id UUID NOT NULL REFERENCES companies (id),
    created_by UUID NOT NULL REFERENCES users (id),
    ask_price BIGINT,
    driver_id UUID REFERENCES users (id),
    order_status VARCHAR(32) NOT NULL DEFAULT 'pending',
    pickup_date TIMESTAMPTZ,
    note TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX idx_loads_company ON loads (company_id);
CREATE INDEX idx_loads_created_by ON loads (created_by);
CREATE INDEX idx_loads_driver ON loads (driver_id);`)
	return err
}

func DownLoadsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE loads;")
	return err
}
