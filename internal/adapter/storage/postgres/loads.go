package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

const loadColumns = `id, title, description, category, pickup_location, delivery_location,
	company_id, created_by, ask_price, driver_id, order_status, pickup_date, note,
	created_at, updated_at`

func scanLoad(row pgx.Row) (domain.Load, error) {
	var (
		l          domain.Load
		askPrice   pgtype.Int8
		driverID   pgtype.UUID
		pickupDate pgtype.Timestamptz
	)
	err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Category, &l.PickupLocation, &l.DeliveryLocation,
		&l.CompanyID, &l.CreatedBy, &askPrice, &driverID, &l.OrderStatus, &pickupDate, &l.Note,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return domain.Load{}, err
	}
	l.AskPrice = int8Ptr(askPrice)
	l.DriverID = uuidPtr(driverID)
	l.PickupDate = timePtr(pickupDate)
	return l, nil
}

const createLoad = `
INSERT INTO loads (id, title, description, category, pickup_location, delivery_location,
	company_id, created_by, order_status, pickup_date, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + loadColumns

type CreateLoadParams struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Category         string
	PickupLocation   string
	DeliveryLocation string
	CompanyID        uuid.UUID
	CreatedBy        uuid.UUID
	OrderStatus      domain.OrderStatus
	PickupDate       *time.Time
	Note             string
}

func (q *Queries) CreateLoad(ctx context.Context, arg CreateLoadParams) (domain.Load, error) {
	row := q.db.QueryRow(ctx, createLoad,
		arg.ID, arg.Title, arg.Description, arg.Category, arg.PickupLocation,
		arg.DeliveryLocation, arg.CompanyID, arg.CreatedBy, arg.OrderStatus,
		timeParam(arg.PickupDate), arg.Note,
	)
	return scanLoad(row)
}

const getLoad = `SELECT ` + loadColumns + ` FROM loads WHERE id = $1`

func (q *Queries) GetLoad(ctx context.Context, id uuid.UUID) (domain.Load, error) {
	l, err := scanLoad(q.db.QueryRow(ctx, getLoad, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Load{}, domain.ErrLoadNotFound
	}
	return l, err
}

// listLoads evaluates the visibility predicate in SQL: the AND block is the
// role predicate (nil fields do not constrain), the trailing OR block is the
// literal-id search extension.
const listLoads = `
SELECT ` + loadColumns + ` FROM loads
WHERE (
	($1::uuid IS NULL OR created_by = $1)
	AND ($2::uuid IS NULL OR driver_id = $2)
	AND ($3::uuid IS NULL OR company_id = $3)
)
OR ($4::uuid IS NOT NULL AND (company_id = $4 OR driver_id = $4 OR created_by = $4))
ORDER BY created_at DESC`

func (q *Queries) ListLoads(ctx context.Context, filter domain.LoadFilter) ([]domain.Load, error) {
	rows, err := q.db.Query(ctx, listLoads,
		uuidParam(filter.CreatedBy), uuidParam(filter.DriverID),
		uuidParam(filter.CompanyID), uuidParam(filter.Search),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loads []domain.Load
	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}
	return loads, rows.Err()
}

const updateLoadDetails = `
UPDATE loads
SET title = $2, description = $3, category = $4, pickup_location = $5,
	delivery_location = $6, updated_at = now()
WHERE id = $1`

type UpdateLoadDetailsParams struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Category         string
	PickupLocation   string
	DeliveryLocation string
}

func (q *Queries) UpdateLoadDetails(ctx context.Context, arg UpdateLoadDetailsParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateLoadDetails,
		arg.ID, arg.Title, arg.Description, arg.Category, arg.PickupLocation, arg.DeliveryLocation,
	)
	return tag.RowsAffected(), err
}

const setLoadPrice = `
UPDATE loads SET ask_price = $2, order_status = $3, updated_at = now() WHERE id = $1`

type SetLoadPriceParams struct {
	ID          uuid.UUID
	AskPrice    int64
	OrderStatus domain.OrderStatus
}

func (q *Queries) SetLoadPrice(ctx context.Context, arg SetLoadPriceParams) (int64, error) {
	tag, err := q.db.Exec(ctx, setLoadPrice, arg.ID, arg.AskPrice, arg.OrderStatus)
	return tag.RowsAffected(), err
}

// setLoadStatus carries the expected current status in the predicate so a
// concurrent transition loses instead of clobbering.
const setLoadStatus = `
UPDATE loads SET order_status = $2, updated_at = now()
WHERE id = $1 AND order_status = $3`

type SetLoadStatusParams struct {
	ID         uuid.UUID
	Status     domain.OrderStatus
	FromStatus domain.OrderStatus
}

func (q *Queries) SetLoadStatus(ctx context.Context, arg SetLoadStatusParams) (int64, error) {
	tag, err := q.db.Exec(ctx, setLoadStatus, arg.ID, arg.Status, arg.FromStatus)
	return tag.RowsAffected(), err
}

const assignDriverToLoad = `
UPDATE loads SET driver_id = $2, order_status = $3, updated_at = now() WHERE id = $1`

type AssignDriverToLoadParams struct {
	ID           uuid.UUID
	DriverUserID uuid.UUID
	OrderStatus  domain.OrderStatus
}

func (q *Queries) AssignDriverToLoad(ctx context.Context, arg AssignDriverToLoadParams) (int64, error) {
	tag, err := q.db.Exec(ctx, assignDriverToLoad, arg.ID, arg.DriverUserID, arg.OrderStatus)
	return tag.RowsAffected(), err
}

const deleteLoad = `DELETE FROM loads WHERE id = $1`

func (q *Queries) DeleteLoad(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteLoad, id)
	return tag.RowsAffected(), err
}
