package offer_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"marketplace/internal/pkg/middlewares/actor"
	"marketplace/internal/service/lifecycle"
	"marketplace/internal/service/negotiation"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := actor.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	jobID := mux.Vars(r)["id"]
	if jobID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req OfferCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offer, err := h.service.SubmitOffer(r.Context(), jobID, caller, req.Amount, req.Message, req.EtaMinutes)
	if err != nil {
		switch {
		case errors.Is(err, negotiation.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrJobNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, negotiation.ErrForbiddenRole):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, negotiation.ErrJobNotOpen),
			errors.Is(err, negotiation.ErrDuplicateBidder):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("submit offer")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := OfferCreateResponse{
		ID:         offer.ID,
		JobID:      offer.JobID,
		BidderID:   offer.BidderID,
		Amount:     offer.Amount,
		Message:    offer.Message,
		EtaMinutes: offer.EtaMinutes,
		Status:     offer.Status.String(),
		CreatedAt:  offer.CreatedAt,
	}
	if !offer.ExpiresAt.IsZero() {
		expiresAt := offer.ExpiresAt
		response.ExpiresAt = &expiresAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
