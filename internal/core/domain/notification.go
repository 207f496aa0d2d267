package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a persisted alert addressed to a single user. Rows are
// written only by the fan-out component and never mutated after creation,
// except for the read flag.
type Notification struct {
	ID     uuid.UUID
	UserID uuid.UUID
	// CompanyID and DispatcherID widen who can see the row: company owners
	// match on CompanyID, dispatchers on DispatcherID, mirroring how the
	// fan-out addressed them.
	CompanyID    *uuid.UUID
	DispatcherID *uuid.UUID
	Title        string
	Message      string
	Type         string
	IsRead       bool
	CreatedAt    time.Time
}

const (
	NotificationTypeLoadCreated    = "load_created"
	NotificationTypeDriverAssigned = "driver_assigned"
)
