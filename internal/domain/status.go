package domain

// Status is the fulfillment status of an order. Exactly one is active at a
// time; transitions are restricted to the validNext table.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusPreparing  Status = "preparing"
	StatusReady      Status = "ready"
	StatusDispatched Status = "dispatched"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// AllStatuses lists every status the subsystem recognizes.
var AllStatuses = []Status{
	StatusPending,
	StatusAccepted,
	StatusPreparing,
	StatusReady,
	StatusDispatched,
	StatusDelivered,
	StatusCancelled,
	StatusRefunded,
}

// validNext is the directed transition table. No back-edges except the
// explicit cancel and refund paths.
var validNext = map[Status]map[Status]bool{
	StatusPending:    {StatusAccepted: true, StatusCancelled: true},
	StatusAccepted:   {StatusPreparing: true, StatusCancelled: true},
	StatusPreparing:  {StatusReady: true, StatusCancelled: true},
	StatusReady:      {StatusDispatched: true},
	StatusDispatched: {StatusDelivered: true},
	StatusDelivered:  {StatusRefunded: true},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the recognized statuses.
func (s Status) IsValid() bool {
	_, ok := validNext[s]
	return ok
}

// CanTransitionTo reports whether the directed edge s -> to exists in the
// transition table.
func (s Status) CanTransitionTo(to Status) bool {
	return validNext[s][to]
}

// IsTerminal reports whether no further transitions leave s.
func (s Status) IsTerminal() bool {
	return len(validNext[s]) == 0
}
