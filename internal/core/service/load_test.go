package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/postgres"
	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

func newLoadService(store *MockStore, sink *MockEventSink, defaultCompany uuid.UUID) *LoadService {
	return NewLoadService(store, defaultCompany, sink, zap.NewNop())
}

func validCreateInput() CreateLoadInput {
	return CreateLoadInput{
		Title:            "Steel coils",
		Description:      "22t of coils on 6 pallets",
		Category:         "metal",
		PickupLocation:   "Hamburg",
		DeliveryLocation: "Rotterdam",
	}
}

func TestLoadService_Create(t *testing.T) {
	defaultCompany := uuid.New()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleUser}

	t.Run("missing required field persists nothing", func(t *testing.T) {
		store := new(MockStore)
		sink := new(MockEventSink)
		svc := newLoadService(store, sink, defaultCompany)

		input := validCreateInput()
		input.PickupLocation = "  "

		_, err := svc.Create(context.Background(), actor, input)

		assert.ErrorIs(t, err, domain.ErrValidation)
		store.AssertNotCalled(t, "CreateLoad", mock.Anything, mock.Anything)
		sink.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("default company missing", func(t *testing.T) {
		store := new(MockStore)
		sink := new(MockEventSink)
		svc := newLoadService(store, sink, defaultCompany)

		store.On("GetCompany", mock.Anything, defaultCompany).
			Return(domain.Company{}, domain.ErrCompanyNotFound)

		_, err := svc.Create(context.Background(), actor, validCreateInput())

		assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
		store.AssertNotCalled(t, "CreateLoad", mock.Anything, mock.Anything)
	})

	t.Run("malformed explicit company token", func(t *testing.T) {
		store := new(MockStore)
		sink := new(MockEventSink)
		svc := newLoadService(store, sink, defaultCompany)

		input := validCreateInput()
		input.CompanyToken = "not-a-uuid"

		_, err := svc.Create(context.Background(), actor, input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("success emits load created event", func(t *testing.T) {
		store := new(MockStore)
		sink := new(MockEventSink)
		svc := newLoadService(store, sink, defaultCompany)

		store.On("GetCompany", mock.Anything, defaultCompany).
			Return(domain.Company{ID: defaultCompany}, nil)
		store.On("CreateLoad", mock.Anything, mock.MatchedBy(func(arg postgres.CreateLoadParams) bool {
			return arg.CompanyID == defaultCompany &&
				arg.CreatedBy == actor.UserID &&
				arg.OrderStatus == domain.StatusPending
		})).Return(domain.Load{
			ID:          uuid.New(),
			Title:       "Steel coils",
			CompanyID:   defaultCompany,
			CreatedBy:   actor.UserID,
			OrderStatus: domain.StatusPending,
		}, nil)
		sink.On("Notify", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventLoadCreated
		})).Return()

		load, err := svc.Create(context.Background(), actor, validCreateInput())

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, load.OrderStatus)
		store.AssertExpectations(t)
		sink.AssertExpectations(t)
	})
}

func TestLoadService_SetAskPrice(t *testing.T) {
	loadID := uuid.New()
	dispatcher := domain.Actor{UserID: uuid.New(), Role: domain.RoleDispatcher}

	t.Run("shipping user may not propose", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		_, err := svc.SetAskPrice(context.Background(), domain.Actor{UserID: uuid.New(), Role: domain.RoleUser}, loadID, 1000)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("price must be positive", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		_, err := svc.SetAskPrice(context.Background(), dispatcher, loadID, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("delivered load cannot be asked", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, OrderStatus: domain.StatusDelivered}, nil)

		_, err := svc.SetAskPrice(context.Background(), dispatcher, loadID, 1000)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		store.AssertNotCalled(t, "SetLoadPrice", mock.Anything, mock.Anything)
	})

	t.Run("pending load moves to asked", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, OrderStatus: domain.StatusPending}, nil)
		store.On("SetLoadPrice", mock.Anything, postgres.SetLoadPriceParams{
			ID: loadID, AskPrice: 125000, OrderStatus: domain.StatusAsked,
		}).Return(int64(1), nil)

		load, err := svc.SetAskPrice(context.Background(), dispatcher, loadID, 125000)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusAsked, load.OrderStatus)
		assert.Equal(t, int64(125000), *load.AskPrice)
		store.AssertExpectations(t)
	})
}

func TestLoadService_ResolveAskPrice(t *testing.T) {
	loadID := uuid.New()
	creator := domain.Actor{UserID: uuid.New(), Role: domain.RoleUser}

	t.Run("unknown decision does not touch status", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		_, err := svc.ResolveAskPrice(context.Background(), creator, loadID, domain.OrderStatus("maybe"))

		assert.ErrorIs(t, err, domain.ErrValidation)
		store.AssertNotCalled(t, "GetLoad", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "SetLoadStatus", mock.Anything, mock.Anything)
	})

	t.Run("only the creator decides", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, CreatedBy: uuid.New(), OrderStatus: domain.StatusAsked}, nil)

		_, err := svc.ResolveAskPrice(context.Background(), creator, loadID, domain.StatusAccepted)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("asked load accepts", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, CreatedBy: creator.UserID, OrderStatus: domain.StatusAsked}, nil)
		store.On("SetLoadStatus", mock.Anything, postgres.SetLoadStatusParams{
			ID: loadID, Status: domain.StatusAccepted, FromStatus: domain.StatusAsked,
		}).Return(int64(1), nil)

		load, err := svc.ResolveAskPrice(context.Background(), creator, loadID, domain.StatusAccepted)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, load.OrderStatus)
	})

	t.Run("concurrent transition loses", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, CreatedBy: creator.UserID, OrderStatus: domain.StatusAsked}, nil)
		store.On("SetLoadStatus", mock.Anything, mock.Anything).Return(int64(0), nil)

		_, err := svc.ResolveAskPrice(context.Background(), creator, loadID, domain.StatusRejected)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestLoadService_AssignDriver(t *testing.T) {
	loadID := uuid.New()
	driverID := uuid.New()
	driverUserID := uuid.New()
	dispatcher := domain.Actor{UserID: uuid.New(), Role: domain.RoleDispatcher}

	t.Run("unknown driver leaves load untouched", func(t *testing.T) {
		store := new(MockStore)
		sink := new(MockEventSink)
		svc := newLoadService(store, sink, uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, OrderStatus: domain.StatusPending}, nil)
		store.On("GetDriver", mock.Anything, driverID).
			Return(domain.Driver{}, domain.ErrDriverNotFound)

		_, err := svc.AssignDriver(context.Background(), dispatcher, loadID, driverID)

		assert.ErrorIs(t, err, domain.ErrDriverNotFound)
		store.AssertNotCalled(t, "AssignDriverToLoad", mock.Anything, mock.Anything)
		sink.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("unknown load reported independently", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{}, domain.ErrLoadNotFound)

		_, err := svc.AssignDriver(context.Background(), dispatcher, loadID, driverID)
		assert.ErrorIs(t, err, domain.ErrLoadNotFound)
	})

	t.Run("driver role may not assign", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		_, err := svc.AssignDriver(context.Background(), domain.Actor{UserID: driverUserID, Role: domain.RoleDriver}, loadID, driverID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("success notifies exactly the driver user", func(t *testing.T) {
		store := new(MockStore)
		sink := new(MockEventSink)
		svc := newLoadService(store, sink, uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, OrderStatus: domain.StatusAccepted}, nil)
		store.On("GetDriver", mock.Anything, driverID).
			Return(domain.Driver{ID: driverID, UserID: driverUserID}, nil)
		store.On("AssignDriverToLoad", mock.Anything, postgres.AssignDriverToLoadParams{
			ID: loadID, DriverUserID: driverUserID, OrderStatus: domain.StatusDriverPending,
		}).Return(int64(1), nil)
		sink.On("Notify", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventDriverAssigned && e.DriverUserID == driverUserID
		})).Return()

		load, err := svc.AssignDriver(context.Background(), dispatcher, loadID, driverID)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDriverPending, load.OrderStatus)
		assert.Equal(t, driverUserID, *load.DriverID)
		store.AssertExpectations(t)
		sink.AssertExpectations(t)
	})
}

func TestLoadService_AdvanceStatus(t *testing.T) {
	loadID := uuid.New()
	driverUserID := uuid.New()

	t.Run("driver advances own load", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, DriverID: &driverUserID, OrderStatus: domain.StatusDriverPending}, nil)
		store.On("SetLoadStatus", mock.Anything, postgres.SetLoadStatusParams{
			ID: loadID, Status: domain.StatusPickup, FromStatus: domain.StatusDriverPending,
		}).Return(int64(1), nil)

		load, err := svc.AdvanceStatus(context.Background(), domain.Actor{UserID: driverUserID, Role: domain.RoleDriver}, loadID, domain.StatusPickup)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPickup, load.OrderStatus)
	})

	t.Run("driver may not advance a foreign load", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		other := uuid.New()
		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, DriverID: &other, OrderStatus: domain.StatusDriverPending}, nil)

		_, err := svc.AdvanceStatus(context.Background(), domain.Actor{UserID: driverUserID, Role: domain.RoleDriver}, loadID, domain.StatusPickup)
		assert.ErrorIs(t, err, domain.ErrLoadNotFound)
		store.AssertNotCalled(t, "SetLoadStatus", mock.Anything, mock.Anything)
	})

	t.Run("dispatcher may not advance another company's load", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		dispatcherUser := uuid.New()
		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, CompanyID: uuid.New(), OrderStatus: domain.StatusProcessing}, nil)
		store.On("GetDispatcherByUser", mock.Anything, dispatcherUser).
			Return(domain.Dispatcher{ID: uuid.New(), UserID: dispatcherUser, CompanyID: uuid.New()}, nil)

		_, err := svc.AdvanceStatus(context.Background(), domain.Actor{UserID: dispatcherUser, Role: domain.RoleDispatcher}, loadID, domain.StatusDriverPending)
		assert.ErrorIs(t, err, domain.ErrLoadNotFound)
		store.AssertNotCalled(t, "SetLoadStatus", mock.Anything, mock.Anything)
	})

	t.Run("dispatcher advances a load of their own company", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		dispatcherUser := uuid.New()
		companyID := uuid.New()
		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, CompanyID: companyID, OrderStatus: domain.StatusProcessing}, nil)
		store.On("GetDispatcherByUser", mock.Anything, dispatcherUser).
			Return(domain.Dispatcher{ID: uuid.New(), UserID: dispatcherUser, CompanyID: companyID}, nil)
		store.On("SetLoadStatus", mock.Anything, postgres.SetLoadStatusParams{
			ID: loadID, Status: domain.StatusDriverPending, FromStatus: domain.StatusProcessing,
		}).Return(int64(1), nil)

		load, err := svc.AdvanceStatus(context.Background(), domain.Actor{UserID: dispatcherUser, Role: domain.RoleDispatcher}, loadID, domain.StatusDriverPending)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDriverPending, load.OrderStatus)
	})

	t.Run("shipping user may not advance at all", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		creator := uuid.New()
		_, err := svc.AdvanceStatus(context.Background(), domain.Actor{UserID: creator, Role: domain.RoleUser}, loadID, domain.StatusProcessing)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		store.AssertNotCalled(t, "GetLoad", mock.Anything, mock.Anything)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, DriverID: &driverUserID, OrderStatus: domain.StatusDriverPending}, nil)

		_, err := svc.AdvanceStatus(context.Background(), domain.Actor{UserID: driverUserID, Role: domain.RoleDriver}, loadID, domain.StatusOnTheWay)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		store.AssertNotCalled(t, "SetLoadStatus", mock.Anything, mock.Anything)
	})
}

func TestLoadService_Get(t *testing.T) {
	loadID := uuid.New()
	creator := uuid.New()
	companyID := uuid.New()
	stored := domain.Load{ID: loadID, CreatedBy: creator, CompanyID: companyID, OrderStatus: domain.StatusPending}

	t.Run("creator fetches own load", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).Return(stored, nil)

		load, err := svc.Get(context.Background(), domain.Actor{UserID: creator, Role: domain.RoleUser}, loadID)
		assert.NoError(t, err)
		assert.Equal(t, loadID, load.ID)
	})

	t.Run("foreign user reads not found, not forbidden", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).Return(stored, nil)

		_, err := svc.Get(context.Background(), domain.Actor{UserID: uuid.New(), Role: domain.RoleUser}, loadID)
		assert.ErrorIs(t, err, domain.ErrLoadNotFound)
	})

	t.Run("unassigned driver reads not found", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).Return(stored, nil)

		_, err := svc.Get(context.Background(), domain.Actor{UserID: uuid.New(), Role: domain.RoleDriver}, loadID)
		assert.ErrorIs(t, err, domain.ErrLoadNotFound)
	})

	t.Run("dispatcher of another company reads not found", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		dispatcherUser := uuid.New()
		store.On("GetLoad", mock.Anything, loadID).Return(stored, nil)
		store.On("GetDispatcherByUser", mock.Anything, dispatcherUser).
			Return(domain.Dispatcher{ID: uuid.New(), UserID: dispatcherUser, CompanyID: uuid.New()}, nil)

		_, err := svc.Get(context.Background(), domain.Actor{UserID: dispatcherUser, Role: domain.RoleDispatcher}, loadID)
		assert.ErrorIs(t, err, domain.ErrLoadNotFound)
	})

	t.Run("admin fetches any load", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).Return(stored, nil)

		load, err := svc.Get(context.Background(), domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}, loadID)
		assert.NoError(t, err)
		assert.Equal(t, loadID, load.ID)
	})
}

func TestLoadService_UpdateDelete_Ownership(t *testing.T) {
	loadID := uuid.New()
	creator := uuid.New()
	stranger := domain.Actor{UserID: uuid.New(), Role: domain.RoleUser}

	input := UpdateLoadInput{
		Title: "t", Description: "d", Category: "c",
		PickupLocation: "p", DeliveryLocation: "dl",
	}

	t.Run("update requires creator", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, CreatedBy: creator}, nil)

		_, err := svc.Update(context.Background(), stranger, loadID, input)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("update rejects partial input", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		partial := input
		partial.Category = ""
		_, err := svc.Update(context.Background(), stranger, loadID, partial)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("delete requires creator", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, CreatedBy: creator}, nil)

		err := svc.Delete(context.Background(), stranger, loadID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		store.AssertNotCalled(t, "DeleteLoad", mock.Anything, mock.Anything)
	})

	t.Run("creator deletes", func(t *testing.T) {
		store := new(MockStore)
		svc := newLoadService(store, new(MockEventSink), uuid.New())

		store.On("GetLoad", mock.Anything, loadID).
			Return(domain.Load{ID: loadID, CreatedBy: creator}, nil)
		store.On("DeleteLoad", mock.Anything, loadID).Return(int64(1), nil)

		err := svc.Delete(context.Background(), domain.Actor{UserID: creator, Role: domain.RoleUser}, loadID)
		assert.NoError(t, err)
		store.AssertExpectations(t)
	})
}
