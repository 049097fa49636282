package entities

import "time"

type Place struct {
	Lat     float64
	Lng     float64
	Address string
}

type TimelineEntry struct {
	Status JobStatus
	At     time.Time
	Note   string
}

// Assignment is the denormalized "who is doing this job" record, written in
// the same atomic step that flips the winning offer to accepted.
type Assignment struct {
	OfferID    string
	ProviderID string
	Amount     float64
	AcceptedAt time.Time
}

// Job is the unit being matched: a trip or a delivery order.
type Job struct {
	ID           string
	Kind         JobKind
	OwnerID      string
	RestaurantID string // delivery only
	Origin       Place
	Destination  Place
	DistanceKm   float64
	VehicleClass string
	Status       JobStatus
	PricingModel PricingModel

	ProposedPrice float64
	SuggestedMin  float64
	SuggestedMax  float64
	FinalPrice    float64
	Surge         float64

	Assignment *Assignment
	OTP        string // trips: required to start the ride

	BiddingClosesAt *time.Time // delivery only
	CancelReason    string

	Timeline  []TimelineEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (j *Job) Terminal() bool {
	return IsTerminal(j.Status)
}

func (j *Job) Assigned() bool {
	return j.Assignment != nil
}

// ProviderRole is the role allowed to bid on this job.
func (j *Job) ProviderRole() Role {
	return ProviderRoleFor(j.Kind)
}
