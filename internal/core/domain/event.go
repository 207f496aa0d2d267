package domain

import "github.com/google/uuid"

type EventType string

const (
	EventLoadCreated    EventType = "load.created"
	EventDriverAssigned EventType = "driver.assigned"
)

// Event is emitted by the lifecycle engine after a load mutation commits and
// consumed by the notification fan-out. It carries a snapshot of the load, not
// a reference, so the fan-out never observes later mutations.
type Event struct {
	Type EventType
	Load Load
	// DriverUserID is set for driver.assigned events.
	DriverUserID uuid.UUID
}
