package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/postgres"
	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

// LoadService gates every load-status-affecting operation through one
// authority: it validates input, enforces the transition graph and the
// role rules, persists through the store and emits lifecycle events for the
// notification fan-out.
type LoadService struct {
	store postgres.Store
	// defaultCompanyID is the configured fallback company used when a load
	// is created without an explicit company reference.
	defaultCompanyID uuid.UUID
	events           EventSink
	logger           *zap.Logger
}

func NewLoadService(store postgres.Store, defaultCompanyID uuid.UUID, events EventSink, logger *zap.Logger) *LoadService {
	return &LoadService{
		store:            store,
		defaultCompanyID: defaultCompanyID,
		events:           events,
		logger:           logger,
	}
}

// DefaultCompanyToken is the sentinel callers pass instead of a company id to
// request the configured default company.
const DefaultCompanyToken = "default"

type CreateLoadInput struct {
	Title            string
	Description      string
	Category         string
	PickupLocation   string
	DeliveryLocation string
	CompanyToken     string
	PickupDate       *time.Time
	Note             string
}

func (in CreateLoadInput) validate() error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.PickupLocation) == "" ||
		strings.TrimSpace(in.DeliveryLocation) == "" {
		return domain.Validationf("please provide all required fields")
	}
	return nil
}

func (s *LoadService) Create(ctx context.Context, actor domain.Actor, input CreateLoadInput) (domain.Load, error) {
	if err := input.validate(); err != nil {
		return domain.Load{}, err
	}

	companyID, err := s.resolveCompany(ctx, input.CompanyToken)
	if err != nil {
		return domain.Load{}, err
	}

	load, err := s.store.CreateLoad(ctx, postgres.CreateLoadParams{
		ID:               uuid.New(),
		Title:            input.Title,
		Description:      input.Description,
		Category:         input.Category,
		PickupLocation:   input.PickupLocation,
		DeliveryLocation: input.DeliveryLocation,
		CompanyID:        companyID,
		CreatedBy:        actor.UserID,
		OrderStatus:      domain.StatusPending,
		PickupDate:       input.PickupDate,
		Note:             input.Note,
	})
	if err != nil {
		return domain.Load{}, err
	}

	s.events.Notify(ctx, domain.Event{Type: domain.EventLoadCreated, Load: load})
	return load, nil
}

func (s *LoadService) resolveCompany(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" || token == DefaultCompanyToken {
		company, err := s.store.GetCompany(ctx, s.defaultCompanyID)
		if err != nil {
			return uuid.Nil, err
		}
		return company.ID, nil
	}

	id, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, domain.Validationf("invalid company id %q", token)
	}
	company, err := s.store.GetCompany(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	return company.ID, nil
}

func (s *LoadService) List(ctx context.Context, actor domain.Actor, search string) ([]domain.Load, error) {
	filter, err := visibilityFor(ctx, s.store, actor, search)
	if err != nil {
		return nil, err
	}
	return s.store.ListLoads(ctx, filter)
}

// Get applies the same role predicate as listing. A load outside the actor's
// visibility reads as absent rather than forbidden, so ids cannot be probed.
func (s *LoadService) Get(ctx context.Context, actor domain.Actor, loadID uuid.UUID) (domain.Load, error) {
	load, err := s.store.GetLoad(ctx, loadID)
	if err != nil {
		return domain.Load{}, err
	}

	filter, err := visibilityFor(ctx, s.store, actor, "")
	if err != nil {
		return domain.Load{}, err
	}
	if !filter.Matches(load) {
		return domain.Load{}, domain.ErrLoadNotFound
	}
	return load, nil
}

func (s *LoadService) SetAskPrice(ctx context.Context, actor domain.Actor, loadID uuid.UUID, price int64) (domain.Load, error) {
	if !actor.Role.CanProposePrice() {
		return domain.Load{}, domain.ErrForbidden
	}
	if price <= 0 {
		return domain.Load{}, domain.Validationf("ask price must be positive")
	}

	load, err := s.store.GetLoad(ctx, loadID)
	if err != nil {
		return domain.Load{}, err
	}
	if !load.OrderStatus.CanTransition(domain.StatusAsked) {
		return domain.Load{}, domain.ErrInvalidTransition
	}

	if _, err := s.store.SetLoadPrice(ctx, postgres.SetLoadPriceParams{
		ID:          load.ID,
		AskPrice:    price,
		OrderStatus: domain.StatusAsked,
	}); err != nil {
		return domain.Load{}, err
	}

	load.AskPrice = &price
	load.OrderStatus = domain.StatusAsked
	return load, nil
}

// ResolveAskPrice records the creator's decision on a proposed price.
func (s *LoadService) ResolveAskPrice(ctx context.Context, actor domain.Actor, loadID uuid.UUID, decision domain.OrderStatus) (domain.Load, error) {
	if decision != domain.StatusAccepted && decision != domain.StatusRejected {
		return domain.Load{}, domain.Validationf("invalid action %q, must be 'accepted' or 'rejected'", decision)
	}

	load, err := s.store.GetLoad(ctx, loadID)
	if err != nil {
		return domain.Load{}, err
	}
	if actor.Role != domain.RoleAdmin && load.CreatedBy != actor.UserID {
		return domain.Load{}, domain.ErrForbidden
	}

	if err := s.transition(ctx, load, decision); err != nil {
		return domain.Load{}, err
	}
	load.OrderStatus = decision
	return load, nil
}

func (s *LoadService) AssignDriver(ctx context.Context, actor domain.Actor, loadID uuid.UUID, driverID uuid.UUID) (domain.Load, error) {
	if !actor.Role.CanAssignDriver() {
		return domain.Load{}, domain.ErrForbidden
	}

	load, err := s.store.GetLoad(ctx, loadID)
	if err != nil {
		return domain.Load{}, err
	}
	driver, err := s.store.GetDriver(ctx, driverID)
	if err != nil {
		return domain.Load{}, err
	}

	if !load.OrderStatus.CanTransition(domain.StatusDriverPending) {
		return domain.Load{}, domain.ErrInvalidTransition
	}

	// Last-write-wins between concurrent assignments on the same load; the
	// store only guarantees single-row atomicity per update.
	if _, err := s.store.AssignDriverToLoad(ctx, postgres.AssignDriverToLoadParams{
		ID:           load.ID,
		DriverUserID: driver.UserID,
		OrderStatus:  domain.StatusDriverPending,
	}); err != nil {
		return domain.Load{}, err
	}

	load.DriverID = &driver.UserID
	load.OrderStatus = domain.StatusDriverPending

	s.events.Notify(ctx, domain.Event{
		Type:         domain.EventDriverAssigned,
		Load:         load,
		DriverUserID: driver.UserID,
	})
	return load, nil
}

// AdvanceStatus moves a load one step along the delivery workflow. Shipping
// users cannot advance at all; everyone else is held to the same visibility
// predicate as reads, so a driver only advances loads assigned to them and a
// dispatcher or company only loads of their own company. Out-of-scope loads
// read as absent.
func (s *LoadService) AdvanceStatus(ctx context.Context, actor domain.Actor, loadID uuid.UUID, next domain.OrderStatus) (domain.Load, error) {
	if !next.IsValid() {
		return domain.Load{}, domain.Validationf("unknown order status %q", next)
	}
	if actor.Role == domain.RoleUser {
		return domain.Load{}, domain.ErrForbidden
	}

	load, err := s.store.GetLoad(ctx, loadID)
	if err != nil {
		return domain.Load{}, err
	}

	filter, err := visibilityFor(ctx, s.store, actor, "")
	if err != nil {
		return domain.Load{}, err
	}
	if !filter.Matches(load) {
		return domain.Load{}, domain.ErrLoadNotFound
	}

	if err := s.transition(ctx, load, next); err != nil {
		return domain.Load{}, err
	}
	load.OrderStatus = next
	return load, nil
}

type UpdateLoadInput struct {
	Title            string
	Description      string
	Category         string
	PickupLocation   string
	DeliveryLocation string
}

// Update replaces the five descriptive fields verbatim; partial updates are
// rejected, matching the write shape clients already depend on.
func (s *LoadService) Update(ctx context.Context, actor domain.Actor, loadID uuid.UUID, input UpdateLoadInput) (domain.Load, error) {
	if input.Title == "" || input.Description == "" || input.Category == "" ||
		input.PickupLocation == "" || input.DeliveryLocation == "" {
		return domain.Load{}, domain.Validationf("please provide all required fields")
	}

	load, err := s.store.GetLoad(ctx, loadID)
	if err != nil {
		return domain.Load{}, err
	}
	if actor.Role != domain.RoleAdmin && load.CreatedBy != actor.UserID {
		return domain.Load{}, domain.ErrForbidden
	}

	if _, err := s.store.UpdateLoadDetails(ctx, postgres.UpdateLoadDetailsParams{
		ID:               load.ID,
		Title:            input.Title,
		Description:      input.Description,
		Category:         input.Category,
		PickupLocation:   input.PickupLocation,
		DeliveryLocation: input.DeliveryLocation,
	}); err != nil {
		return domain.Load{}, err
	}

	load.Title = input.Title
	load.Description = input.Description
	load.Category = input.Category
	load.PickupLocation = input.PickupLocation
	load.DeliveryLocation = input.DeliveryLocation
	return load, nil
}

func (s *LoadService) Delete(ctx context.Context, actor domain.Actor, loadID uuid.UUID) error {
	load, err := s.store.GetLoad(ctx, loadID)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleAdmin && load.CreatedBy != actor.UserID {
		return domain.ErrForbidden
	}

	if _, err := s.store.DeleteLoad(ctx, load.ID); err != nil {
		return err
	}
	s.logger.Info("load deleted",
		zap.String("load_id", load.ID.String()),
		zap.String("actor_id", actor.UserID.String()))
	return nil
}

// transition applies a compare-and-set status update. A zero row count means
// either the graph rejected the step or a concurrent writer moved the load
// first; both read as an invalid transition.
func (s *LoadService) transition(ctx context.Context, load domain.Load, next domain.OrderStatus) error {
	if !load.OrderStatus.CanTransition(next) {
		return domain.ErrInvalidTransition
	}

	rows, err := s.store.SetLoadStatus(ctx, postgres.SetLoadStatusParams{
		ID:         load.ID,
		Status:     next,
		FromStatus: load.OrderStatus,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}
