package domain

import (
	"time"

	"github.com/google/uuid"
)

// Load is a freight shipment request posted by a user and tracked through
// price negotiation, driver assignment and delivery.
type Load struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Category         string
	PickupLocation   string
	DeliveryLocation string
	// CompanyID is resolved once at creation time and never changes.
	CompanyID uuid.UUID
	CreatedBy uuid.UUID
	// AskPrice is in cents and only meaningful once the load has entered
	// the ask-price workflow.
	AskPrice *int64
	// DriverID holds the assigned driver's user id, matching what driver
	// actors carry in their token.
	DriverID    *uuid.UUID
	OrderStatus OrderStatus
	PickupDate  *time.Time
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LoadFilter is the visibility predicate computed from the actor role.
// A nil field does not constrain. Search OR-extends the role predicate with a
// literal id match on company, driver and creator.
type LoadFilter struct {
	CreatedBy *uuid.UUID
	DriverID  *uuid.UUID
	CompanyID *uuid.UUID
	Search    *uuid.UUID
}

// Matches reports whether a load satisfies the filter. The postgres store
// evaluates the same predicate in SQL; this form exists for in-memory checks
// and tests.
func (f LoadFilter) Matches(l Load) bool {
	if f.Search != nil {
		s := *f.Search
		if l.CompanyID == s || l.CreatedBy == s || (l.DriverID != nil && *l.DriverID == s) {
			return true
		}
	}
	if f.CreatedBy != nil && l.CreatedBy != *f.CreatedBy {
		return false
	}
	if f.DriverID != nil && (l.DriverID == nil || *l.DriverID != *f.DriverID) {
		return false
	}
	if f.CompanyID != nil && l.CompanyID != *f.CompanyID {
		return false
	}
	return true
}
