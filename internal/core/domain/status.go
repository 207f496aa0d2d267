package domain

// OrderStatus is the single lifecycle field of a load. The tags fall into
// three informal phases: the system phase (pending, processing, delivered),
// the driver phase (driver_pending through driver_delivered) and the
// ask-price phase (ask_pending through rejected).
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusDelivered  OrderStatus = "delivered"

	StatusDriverPending   OrderStatus = "driver_pending"
	StatusPickup          OrderStatus = "pickup"
	StatusOnTheWay        OrderStatus = "on_the_way"
	StatusDriverDelivered OrderStatus = "driver_delivered"

	StatusAskPending OrderStatus = "ask_pending"
	StatusAsked      OrderStatus = "asked"
	StatusAccepted   OrderStatus = "accepted"
	StatusRejected   OrderStatus = "rejected"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// transitions is the authoritative graph. Historically the status was an
// unguarded free-form assignment; every mutation now has to pass through
// CanTransition, which rejects regressions and cross-phase jumps.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:         {StatusAsked, StatusProcessing, StatusDriverPending},
	StatusAskPending:      {StatusAsked},
	StatusAsked:           {StatusAccepted, StatusRejected},
	StatusAccepted:        {StatusProcessing, StatusDriverPending},
	StatusRejected:        {StatusAsked},
	StatusProcessing:      {StatusDriverPending},
	StatusDriverPending:   {StatusPickup},
	StatusPickup:          {StatusOnTheWay},
	StatusOnTheWay:        {StatusDriverDelivered},
	StatusDriverDelivered: {StatusDelivered},
	StatusDelivered:       {},
}

func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InDriverPhase reports whether the status belongs to the driver workflow.
// A load must be in this phase whenever a driver is assigned to it.
func (s OrderStatus) InDriverPhase() bool {
	switch s {
	case StatusDriverPending, StatusPickup, StatusOnTheWay, StatusDriverDelivered:
		return true
	default:
		return false
	}
}
