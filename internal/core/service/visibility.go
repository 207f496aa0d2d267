package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/FSDTeam-SAA/loadboard/internal/adapter/storage/postgres"
	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

// visibilityFn builds the load predicate for one role. Dispatcher and company
// actors need a directory lookup to resolve their company; the other roles
// are pure functions of the actor id.
type visibilityFn func(ctx context.Context, q postgres.Querier, actor domain.Actor) (domain.LoadFilter, error)

var visibilityByRole = map[domain.Role]visibilityFn{
	domain.RoleUser: func(_ context.Context, _ postgres.Querier, actor domain.Actor) (domain.LoadFilter, error) {
		id := actor.UserID
		return domain.LoadFilter{CreatedBy: &id}, nil
	},
	domain.RoleDriver: func(_ context.Context, _ postgres.Querier, actor domain.Actor) (domain.LoadFilter, error) {
		id := actor.UserID
		return domain.LoadFilter{DriverID: &id}, nil
	},
	domain.RoleDispatcher: func(ctx context.Context, q postgres.Querier, actor domain.Actor) (domain.LoadFilter, error) {
		dispatcher, err := q.GetDispatcherByUser(ctx, actor.UserID)
		if err != nil {
			return domain.LoadFilter{}, err
		}
		return domain.LoadFilter{CompanyID: &dispatcher.CompanyID}, nil
	},
	domain.RoleCompany: func(ctx context.Context, q postgres.Querier, actor domain.Actor) (domain.LoadFilter, error) {
		company, err := q.GetCompanyByOwner(ctx, actor.UserID)
		if err != nil {
			return domain.LoadFilter{}, err
		}
		return domain.LoadFilter{CompanyID: &company.ID}, nil
	},
	// Admin sees everything.
	domain.RoleAdmin: func(context.Context, postgres.Querier, domain.Actor) (domain.LoadFilter, error) {
		return domain.LoadFilter{}, nil
	},
}

// visibilityFor computes the predicate restricting which loads the actor may
// enumerate or fetch. A search term, when it parses as an id, OR-extends the
// predicate with a literal match on company, driver and creator ids.
func visibilityFor(ctx context.Context, q postgres.Querier, actor domain.Actor, search string) (domain.LoadFilter, error) {
	build, ok := visibilityByRole[actor.Role]
	if !ok {
		return domain.LoadFilter{}, domain.ErrForbidden
	}

	filter, err := build(ctx, q, actor)
	if err != nil {
		return domain.LoadFilter{}, err
	}

	if search != "" {
		if id, err := uuid.Parse(search); err == nil {
			filter.Search = &id
		}
	}
	return filter, nil
}
