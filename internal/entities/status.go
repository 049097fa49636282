package entities

type JobKind string

const (
	KindTrip     JobKind = "trip"
	KindDelivery JobKind = "delivery"
)

func (k JobKind) String() string {
	return string(k)
}

type PricingModel string

const (
	PricingFixed   PricingModel = "fixed"
	PricingBidding PricingModel = "bidding"
)

func (m PricingModel) String() string {
	return string(m)
}

type JobStatus string

const (
	// trip flow
	StatusAwaitingOffers       JobStatus = "awaiting_offers"
	StatusSearchingForProvider JobStatus = "searching_for_provider"
	StatusAssigned             JobStatus = "assigned"
	StatusArrived              JobStatus = "arrived"
	StatusInProgress           JobStatus = "in_progress"
	StatusCompleted            JobStatus = "completed"

	// delivery flow
	StatusPending            JobStatus = "pending"
	StatusRestaurantAccepted JobStatus = "restaurant_accepted"
	StatusPreparing          JobStatus = "preparing"
	StatusReadyForPickup     JobStatus = "ready_for_pickup"
	StatusBiddingOpen        JobStatus = "bidding_open"
	StatusProviderAssigned   JobStatus = "provider_assigned"
	StatusPickedUp           JobStatus = "picked_up"
	StatusInTransit          JobStatus = "in_transit"
	StatusDelivered          JobStatus = "delivered"

	// shared terminal
	StatusCancelled JobStatus = "cancelled"
)

func (s JobStatus) String() string {
	return string(s)
}

// tripTransitions encodes the trip state graph. Cancellation is reachable
// from every non-terminal state; the Cancel operation applies its own
// policy on top of this graph.
var tripTransitions = map[JobStatus][]JobStatus{
	StatusAwaitingOffers:       {StatusSearchingForProvider, StatusAssigned, StatusCancelled},
	StatusSearchingForProvider: {StatusAssigned, StatusCancelled},
	StatusAssigned:             {StatusArrived, StatusCancelled},
	StatusArrived:              {StatusInProgress, StatusCancelled},
	StatusInProgress:           {StatusCompleted, StatusCancelled},
}

var deliveryTransitions = map[JobStatus][]JobStatus{
	StatusPending:            {StatusRestaurantAccepted, StatusCancelled},
	StatusRestaurantAccepted: {StatusPreparing, StatusCancelled},
	StatusPreparing:          {StatusReadyForPickup, StatusCancelled},
	StatusReadyForPickup:     {StatusBiddingOpen, StatusCancelled},
	StatusBiddingOpen:        {StatusProviderAssigned, StatusCancelled},
	StatusProviderAssigned:   {StatusPickedUp, StatusCancelled},
	StatusPickedUp:           {StatusInTransit, StatusCancelled},
	StatusInTransit:          {StatusDelivered, StatusCancelled},
}

func CanTransition(kind JobKind, from, to JobStatus) bool {
	var graph map[JobStatus][]JobStatus
	switch kind {
	case KindTrip:
		graph = tripTransitions
	case KindDelivery:
		graph = deliveryTransitions
	default:
		return false
	}

	for _, next := range graph[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsTerminal(s JobStatus) bool {
	switch s {
	case StatusCompleted, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpenForOffers reports whether a job in this status accepts new bids.
func IsOpenForOffers(s JobStatus) bool {
	return s == StatusAwaitingOffers || s == StatusBiddingOpen
}

// InitialStatus is the status a freshly created job starts in. Bidding trips
// open directly for offers; fixed-price trips go straight to provider search.
// Delivery orders always start pending restaurant confirmation.
func InitialStatus(kind JobKind, model PricingModel) JobStatus {
	if kind == KindDelivery {
		return StatusPending
	}
	if model == PricingFixed {
		return StatusSearchingForProvider
	}
	return StatusAwaitingOffers
}

// Cancellable reports whether the given actor role may cancel a job in this
// status. Operators may cancel anything non-terminal; owners and providers
// only before the physical hand-off (trip start / order pickup).
func Cancellable(kind JobKind, s JobStatus, role Role) bool {
	if IsTerminal(s) {
		return false
	}
	if role == RoleOperator || role == RoleSystem {
		return true
	}

	switch kind {
	case KindTrip:
		switch s {
		case StatusAwaitingOffers, StatusSearchingForProvider, StatusAssigned, StatusArrived:
			return true
		}
	case KindDelivery:
		switch s {
		case StatusPending, StatusRestaurantAccepted, StatusPreparing,
			StatusReadyForPickup, StatusBiddingOpen, StatusProviderAssigned:
			return true
		}
	}
	return false
}
