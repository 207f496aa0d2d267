package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

type Querier interface {
	CreateLoad(ctx context.Context, arg CreateLoadParams) (domain.Load, error)
	GetLoad(ctx context.Context, id uuid.UUID) (domain.Load, error)
	ListLoads(ctx context.Context, filter domain.LoadFilter) ([]domain.Load, error)
	UpdateLoadDetails(ctx context.Context, arg UpdateLoadDetailsParams) (int64, error)
	SetLoadPrice(ctx context.Context, arg SetLoadPriceParams) (int64, error)
	SetLoadStatus(ctx context.Context, arg SetLoadStatusParams) (int64, error)
	AssignDriverToLoad(ctx context.Context, arg AssignDriverToLoadParams) (int64, error)
	DeleteLoad(ctx context.Context, id uuid.UUID) (int64, error)

	CreateUser(ctx context.Context, arg CreateUserParams) (domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	CreateCompany(ctx context.Context, arg CreateCompanyParams) (domain.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (domain.Company, error)
	GetCompanyByOwner(ctx context.Context, ownerID uuid.UUID) (domain.Company, error)
	CreateDispatcher(ctx context.Context, arg CreateDispatcherParams) (domain.Dispatcher, error)
	GetDispatcherByUser(ctx context.Context, userID uuid.UUID) (domain.Dispatcher, error)
	ListDispatchersByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Dispatcher, error)
	CreateDriver(ctx context.Context, arg CreateDriverParams) (domain.Driver, error)
	GetDriver(ctx context.Context, id uuid.UUID) (domain.Driver, error)
	ListDriversByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Driver, error)

	InsertNotifications(ctx context.Context, records []domain.Notification) error
	ListNotifications(ctx context.Context, arg ListNotificationsParams) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, arg MarkNotificationReadParams) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error
}

var _ Querier = (*Queries)(nil)
