package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/postgres"
	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

type MockStore struct {
	mock.Mock
}

var _ postgres.Store = (*MockStore)(nil)

func (m *MockStore) CreateLoad(ctx context.Context, arg postgres.CreateLoadParams) (domain.Load, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.Load), args.Error(1)
}

func (m *MockStore) GetLoad(ctx context.Context, id uuid.UUID) (domain.Load, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Load), args.Error(1)
}

func (m *MockStore) ListLoads(ctx context.Context, filter domain.LoadFilter) ([]domain.Load, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Load), args.Error(1)
}

func (m *MockStore) UpdateLoadDetails(ctx context.Context, arg postgres.UpdateLoadDetailsParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) SetLoadPrice(ctx context.Context, arg postgres.SetLoadPriceParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) SetLoadStatus(ctx context.Context, arg postgres.SetLoadStatusParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) AssignDriverToLoad(ctx context.Context, arg postgres.AssignDriverToLoadParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) DeleteLoad(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateUser(ctx context.Context, arg postgres.CreateUserParams) (domain.User, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockStore) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockStore) CreateCompany(ctx context.Context, arg postgres.CreateCompanyParams) (domain.Company, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.Company), args.Error(1)
}

func (m *MockStore) GetCompany(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Company), args.Error(1)
}

func (m *MockStore) GetCompanyByOwner(ctx context.Context, ownerID uuid.UUID) (domain.Company, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Company), args.Error(1)
}

func (m *MockStore) CreateDispatcher(ctx context.Context, arg postgres.CreateDispatcherParams) (domain.Dispatcher, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.Dispatcher), args.Error(1)
}

func (m *MockStore) GetDispatcherByUser(ctx context.Context, userID uuid.UUID) (domain.Dispatcher, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Dispatcher), args.Error(1)
}

func (m *MockStore) ListDispatchersByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Dispatcher, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]domain.Dispatcher), args.Error(1)
}

func (m *MockStore) CreateDriver(ctx context.Context, arg postgres.CreateDriverParams) (domain.Driver, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(domain.Driver), args.Error(1)
}

func (m *MockStore) GetDriver(ctx context.Context, id uuid.UUID) (domain.Driver, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Driver), args.Error(1)
}

func (m *MockStore) ListDriversByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Driver, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]domain.Driver), args.Error(1)
}

func (m *MockStore) InsertNotifications(ctx context.Context, records []domain.Notification) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockStore) ListNotifications(ctx context.Context, arg postgres.ListNotificationsParams) ([]domain.Notification, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockStore) MarkNotificationRead(ctx context.Context, arg postgres.MarkNotificationReadParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStore) ExecTx(ctx context.Context, fn func(postgres.Querier) error) error {
	args := m.Called(ctx, fn)

	if fn != nil {
		if err := fn(m); err != nil {
			return err
		}
	}

	return args.Error(0)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) Notify(ctx context.Context, event domain.Event) {
	m.Called(ctx, event)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, payload any) error {
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}
