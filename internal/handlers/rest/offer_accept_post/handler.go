package offer_accept_post

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

	vars := mux.Vars(r)
	jobID := vars["id"]
	offerID := vars["offer_id"]
	if jobID == "" || offerID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AcceptOffer(r.Context(), jobID, offerID, caller)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrJobNotFound),
			errors.Is(err, negotiation.ErrOfferNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, negotiation.ErrNotJobOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, negotiation.ErrOfferExpired):
			w.WriteHeader(http.StatusGone)
		case errors.Is(err, negotiation.ErrAlreadyAssigned),
			errors.Is(err, negotiation.ErrOfferResolved),
			errors.Is(err, lifecycle.ErrInvalidTransition),
			errors.Is(err, lifecycle.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("accept offer")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := AssignmentResponse{
		OfferID:    assignment.OfferID,
		ProviderID: assignment.ProviderID,
		Amount:     assignment.Amount,
		AcceptedAt: assignment.AcceptedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
