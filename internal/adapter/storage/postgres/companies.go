package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

const companyColumns = `id, name, email, owner_id, created_at, updated_at`

func scanCompany(row pgx.Row) (domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Company{}, domain.ErrCompanyNotFound
	}
	return c, err
}

const createCompany = `
INSERT INTO companies (id, name, email, owner_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + companyColumns

type CreateCompanyParams struct {
	ID      uuid.UUID
	Name    string
	Email   string
	OwnerID uuid.UUID
}

func (q *Queries) CreateCompany(ctx context.Context, arg CreateCompanyParams) (domain.Company, error) {
	return scanCompany(q.db.QueryRow(ctx, createCompany, arg.ID, arg.Name, arg.Email, arg.OwnerID))
}

const getCompany = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

func (q *Queries) GetCompany(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	return scanCompany(q.db.QueryRow(ctx, getCompany, id))
}

const getCompanyByOwner = `SELECT ` + companyColumns + ` FROM companies WHERE owner_id = $1`

func (q *Queries) GetCompanyByOwner(ctx context.Context, ownerID uuid.UUID) (domain.Company, error) {
	return scanCompany(q.db.QueryRow(ctx, getCompanyByOwner, ownerID))
}

const createDispatcher = `
INSERT INTO dispatchers (id, user_id, company_id)
VALUES ($1, $2, $3)
RETURNING id, user_id, company_id, created_at`

type CreateDispatcherParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CompanyID uuid.UUID
}

func (q *Queries) CreateDispatcher(ctx context.Context, arg CreateDispatcherParams) (domain.Dispatcher, error) {
	var d domain.Dispatcher
	err := q.db.QueryRow(ctx, createDispatcher, arg.ID, arg.UserID, arg.CompanyID).
		Scan(&d.ID, &d.UserID, &d.CompanyID, &d.CreatedAt)
	return d, err
}

const getDispatcherByUser = `
SELECT id, user_id, company_id, created_at FROM dispatchers WHERE user_id = $1`

func (q *Queries) GetDispatcherByUser(ctx context.Context, userID uuid.UUID) (domain.Dispatcher, error) {
	var d domain.Dispatcher
	err := q.db.QueryRow(ctx, getDispatcherByUser, userID).
		Scan(&d.ID, &d.UserID, &d.CompanyID, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Dispatcher{}, domain.ErrDispatcherNotFound
	}
	return d, err
}

const listDispatchersByCompany = `
SELECT id, user_id, company_id, created_at FROM dispatchers
WHERE company_id = $1 ORDER BY created_at`

func (q *Queries) ListDispatchersByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Dispatcher, error) {
	rows, err := q.db.Query(ctx, listDispatchersByCompany, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dispatchers []domain.Dispatcher
	for rows.Next() {
		var d domain.Dispatcher
		if err := rows.Scan(&d.ID, &d.UserID, &d.CompanyID, &d.CreatedAt); err != nil {
			return nil, err
		}
		dispatchers = append(dispatchers, d)
	}
	return dispatchers, rows.Err()
}

const createDriver = `
INSERT INTO drivers (id, user_id, company_id, driving_license)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, company_id, driving_license, created_at`

type CreateDriverParams struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CompanyID      uuid.UUID
	DrivingLicense string
}

func (q *Queries) CreateDriver(ctx context.Context, arg CreateDriverParams) (domain.Driver, error) {
	var d domain.Driver
	err := q.db.QueryRow(ctx, createDriver, arg.ID, arg.UserID, arg.CompanyID, arg.DrivingLicense).
		Scan(&d.ID, &d.UserID, &d.CompanyID, &d.DrivingLicense, &d.CreatedAt)
	return d, err
}

const getDriver = `
SELECT id, user_id, company_id, driving_license, created_at FROM drivers WHERE id = $1`

func (q *Queries) GetDriver(ctx context.Context, id uuid.UUID) (domain.Driver, error) {
	var d domain.Driver
	err := q.db.QueryRow(ctx, getDriver, id).
		Scan(&d.ID, &d.UserID, &d.CompanyID, &d.DrivingLicense, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Driver{}, domain.ErrDriverNotFound
	}
	return d, err
}

const listDriversByCompany = `
SELECT id, user_id, company_id, driving_license, created_at FROM drivers
WHERE company_id = $1 ORDER BY created_at`

func (q *Queries) ListDriversByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Driver, error) {
	rows, err := q.db.Query(ctx, listDriversByCompany, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.UserID, &d.CompanyID, &d.DrivingLicense, &d.CreatedAt); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}
