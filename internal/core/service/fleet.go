package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/postgres"
	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

// FleetService manages the company directory: companies, and the driver and
// dispatcher records the visibility filter and notification fan-out consume.
type FleetService struct {
	store postgres.Store
	auth  *AuthService
	// memberPassword is the initial password for users created through
	// driver/dispatcher onboarding.
	memberPassword string
	logger         *zap.Logger
}

func NewFleetService(store postgres.Store, auth *AuthService, memberPassword string, logger *zap.Logger) *FleetService {
	return &FleetService{store: store, auth: auth, memberPassword: memberPassword, logger: logger}
}

type CreateCompanyInput struct {
	Name  string
	Email string
}

func (s *FleetService) CreateCompany(ctx context.Context, actor domain.Actor, input CreateCompanyInput) (domain.Company, error) {
	if actor.Role != domain.RoleCompany && actor.Role != domain.RoleAdmin {
		return domain.Company{}, domain.ErrForbidden
	}
	if strings.TrimSpace(input.Name) == "" {
		return domain.Company{}, domain.Validationf("company name is required")
	}

	return s.store.CreateCompany(ctx, postgres.CreateCompanyParams{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		OwnerID: actor.UserID,
	})
}

type CreateMemberInput struct {
	Name  string
	Email string
	Phone string
	// DrivingLicense is only meaningful for drivers.
	DrivingLicense string
}

func (in CreateMemberInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return domain.Validationf("name and email are required")
	}
	return nil
}

// CreateDriver onboards a driver for the actor's company: it creates the
// backing user row and the driver directory record in one transaction.
func (s *FleetService) CreateDriver(ctx context.Context, actor domain.Actor, input CreateMemberInput) (domain.Driver, error) {
	if !actor.Role.CanManageFleet() {
		return domain.Driver{}, domain.ErrForbidden
	}
	company, err := s.actorCompany(ctx, actor)
	if err != nil {
		return domain.Driver{}, err
	}
	if err := input.validate(); err != nil {
		return domain.Driver{}, err
	}

	hash, err := s.auth.HashPassword(s.memberPassword)
	if err != nil {
		return domain.Driver{}, err
	}

	var driver domain.Driver
	err = s.store.ExecTx(ctx, func(q postgres.Querier) error {
		user, err := s.createMemberUser(ctx, q, input, domain.RoleDriver, hash)
		if err != nil {
			return err
		}
		driver, err = q.CreateDriver(ctx, postgres.CreateDriverParams{
			ID:             uuid.New(),
			UserID:         user.ID,
			CompanyID:      company.ID,
			DrivingLicense: input.DrivingLicense,
		})
		return err
	})
	if err != nil {
		return domain.Driver{}, err
	}

	s.logger.Info("driver onboarded",
		zap.String("driver_id", driver.ID.String()),
		zap.String("company_id", company.ID.String()))
	return driver, nil
}

// CreateDispatcher mirrors CreateDriver for the dispatcher role.
func (s *FleetService) CreateDispatcher(ctx context.Context, actor domain.Actor, input CreateMemberInput) (domain.Dispatcher, error) {
	if !actor.Role.CanManageFleet() {
		return domain.Dispatcher{}, domain.ErrForbidden
	}
	company, err := s.actorCompany(ctx, actor)
	if err != nil {
		return domain.Dispatcher{}, err
	}
	if err := input.validate(); err != nil {
		return domain.Dispatcher{}, err
	}

	hash, err := s.auth.HashPassword(s.memberPassword)
	if err != nil {
		return domain.Dispatcher{}, err
	}

	var dispatcher domain.Dispatcher
	err = s.store.ExecTx(ctx, func(q postgres.Querier) error {
		user, err := s.createMemberUser(ctx, q, input, domain.RoleDispatcher, hash)
		if err != nil {
			return err
		}
		dispatcher, err = q.CreateDispatcher(ctx, postgres.CreateDispatcherParams{
			ID:        uuid.New(),
			UserID:    user.ID,
			CompanyID: company.ID,
		})
		return err
	})
	if err != nil {
		return domain.Dispatcher{}, err
	}

	s.logger.Info("dispatcher onboarded",
		zap.String("dispatcher_id", dispatcher.ID.String()),
		zap.String("company_id", company.ID.String()))
	return dispatcher, nil
}

func (s *FleetService) createMemberUser(ctx context.Context, q postgres.Querier, input CreateMemberInput, role domain.Role, passwordHash string) (domain.User, error) {
	_, err := q.GetUserByEmail(ctx, input.Email)
	if err == nil {
		return domain.User{}, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	return q.CreateUser(ctx, postgres.CreateUserParams{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         role,
		PasswordHash: passwordHash,
	})
}

func (s *FleetService) ListDrivers(ctx context.Context, actor domain.Actor) ([]domain.Driver, error) {
	company, err := s.actorCompany(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.store.ListDriversByCompany(ctx, company.ID)
}

func (s *FleetService) ListDispatchers(ctx context.Context, actor domain.Actor) ([]domain.Dispatcher, error) {
	company, err := s.actorCompany(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.store.ListDispatchersByCompany(ctx, company.ID)
}

// actorCompany resolves which company the actor manages. Only company owners
// and admins may manage fleet membership; dispatchers read but do not create.
func (s *FleetService) actorCompany(ctx context.Context, actor domain.Actor) (domain.Company, error) {
	switch actor.Role {
	case domain.RoleCompany, domain.RoleAdmin:
		return s.store.GetCompanyByOwner(ctx, actor.UserID)
	case domain.RoleDispatcher:
		dispatcher, err := s.store.GetDispatcherByUser(ctx, actor.UserID)
		if err != nil {
			return domain.Company{}, err
		}
		return s.store.GetCompany(ctx, dispatcher.CompanyID)
	default:
		return domain.Company{}, domain.ErrForbidden
	}
}
