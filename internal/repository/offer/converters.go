package offer

import (
	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
)

func ToDomain(m *OfferDB) *entities.Offer {
	if m == nil {
		return nil
	}

	o := &entities.Offer{
		ID:         m.ID,
		JobID:      m.JobID,
		BidderID:   m.BidderID,
		Amount:     m.Amount,
		EtaMinutes: m.EtaMinutes,
		Status:     entities.OfferStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
	if m.Message != nil {
		o.Message = *m.Message
	}
	if m.ExpiresAt != nil {
		o.ExpiresAt = *m.ExpiresAt
	}
	return o
}

func FromDomain(o *entities.Offer) *OfferDB {
	if o == nil {
		return nil
	}

	m := &OfferDB{
		ID:         o.ID,
		JobID:      o.JobID,
		BidderID:   o.BidderID,
		Amount:     o.Amount,
		EtaMinutes: o.EtaMinutes,
		Status:     o.Status.String(),
		CreatedAt:  o.CreatedAt,
	}
	if o.Message != "" {
		m.Message = pointer.To(o.Message)
	}
	if !o.ExpiresAt.IsZero() {
		m.ExpiresAt = pointer.To(o.ExpiresAt.UTC())
	}
	return m
}
