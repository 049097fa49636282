package job

import (
	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
)

func ToDomain(m *JobDB, timeline []TimelineEntryDB) *entities.Job {
	if m == nil {
		return nil
	}

	j := &entities.Job{
		ID:           m.ID,
		Kind:         entities.JobKind(m.Kind),
		OwnerID:      m.OwnerID,
		Origin:       entities.Place{Lat: m.OriginLat, Lng: m.OriginLng, Address: m.OriginAddr},
		Destination:  entities.Place{Lat: m.DestLat, Lng: m.DestLng, Address: m.DestAddr},
		DistanceKm:   m.DistanceKm,
		VehicleClass: m.VehicleClass,
		Status:       entities.JobStatus(m.Status),
		PricingModel: entities.PricingModel(m.PricingModel),

		ProposedPrice: m.ProposedPrice,
		SuggestedMin:  m.SuggestedMin,
		SuggestedMax:  m.SuggestedMax,
		FinalPrice:    m.FinalPrice,
		Surge:         m.Surge,

		BiddingClosesAt: m.BiddingClosesAt,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.RestaurantID != nil {
		j.RestaurantID = *m.RestaurantID
	}
	if m.CancelReason != nil {
		j.CancelReason = *m.CancelReason
	}
	if m.OTP != nil {
		j.OTP = *m.OTP
	}

	if m.AssignedOfferID != nil && m.AssignedProviderID != nil && m.AssignedAmount != nil && m.AssignedAt != nil {
		j.Assignment = &entities.Assignment{
			OfferID:    *m.AssignedOfferID,
			ProviderID: *m.AssignedProviderID,
			Amount:     *m.AssignedAmount,
			AcceptedAt: *m.AssignedAt,
		}
	}

	j.Timeline = make([]entities.TimelineEntry, 0, len(timeline))
	for _, e := range timeline {
		entry := entities.TimelineEntry{
			Status: entities.JobStatus(e.Status),
			At:     e.At,
		}
		if e.Note != nil {
			entry.Note = *e.Note
		}
		j.Timeline = append(j.Timeline, entry)
	}

	return j
}

func FromDomain(j *entities.Job) *JobDB {
	if j == nil {
		return nil
	}

	m := &JobDB{
		ID:           j.ID,
		Kind:         string(j.Kind),
		OwnerID:      j.OwnerID,
		OriginLat:    j.Origin.Lat,
		OriginLng:    j.Origin.Lng,
		OriginAddr:   j.Origin.Address,
		DestLat:      j.Destination.Lat,
		DestLng:      j.Destination.Lng,
		DestAddr:     j.Destination.Address,
		DistanceKm:   j.DistanceKm,
		VehicleClass: j.VehicleClass,
		Status:       string(j.Status),
		PricingModel: string(j.PricingModel),

		ProposedPrice: j.ProposedPrice,
		SuggestedMin:  j.SuggestedMin,
		SuggestedMax:  j.SuggestedMax,
		FinalPrice:    j.FinalPrice,
		Surge:         j.Surge,

		BiddingClosesAt: j.BiddingClosesAt,

		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}

	if j.RestaurantID != "" {
		m.RestaurantID = pointer.To(j.RestaurantID)
	}
	if j.CancelReason != "" {
		m.CancelReason = pointer.To(j.CancelReason)
	}
	if j.OTP != "" {
		m.OTP = pointer.To(j.OTP)
	}

	if j.Assignment != nil {
		m.AssignedOfferID = pointer.To(j.Assignment.OfferID)
		m.AssignedProviderID = pointer.To(j.Assignment.ProviderID)
		m.AssignedAmount = pointer.To(j.Assignment.Amount)
		m.AssignedAt = pointer.To(j.Assignment.AcceptedAt)
	}

	return m
}
