package job

import "time"

type JobDB struct {
	ID           string
	Kind         string
	OwnerID      string
	RestaurantID *string
	OriginLat    float64
	OriginLng    float64
	OriginAddr   string
	DestLat      float64
	DestLng      float64
	DestAddr     string
	DistanceKm   float64
	VehicleClass string
	Status       string
	PricingModel string

	ProposedPrice float64
	SuggestedMin  float64
	SuggestedMax  float64
	FinalPrice    float64
	Surge         float64

	AssignedOfferID    *string
	AssignedProviderID *string
	AssignedAmount     *float64
	AssignedAt         *time.Time
	OTP                *string

	BiddingClosesAt *time.Time
	CancelReason    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TimelineEntryDB struct {
	JobID  string
	Status string
	At     time.Time
	Note   *string
}
