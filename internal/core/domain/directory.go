package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Company struct {
	ID        uuid.UUID
	Name      string
	Email     string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Dispatcher links a user with the dispatcher role to the company whose loads
// they manage.
type Dispatcher struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CompanyID uuid.UUID
	CreatedAt time.Time
}

// Driver links a user with the driver role to a company. Loads reference the
// driver's UserID once assigned.
type Driver struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CompanyID      uuid.UUID
	DrivingLicense string
	CreatedAt      time.Time
}
