package job_offers_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"marketplace/internal/pkg/middlewares/actor"
	"marketplace/internal/service/lifecycle"
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

	offers, err := h.service.ListOffers(r.Context(), jobID, caller)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrJobNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list offers")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := OffersResponse{Offers: make([]OfferDTO, 0, len(offers))}
	for _, offer := range offers {
		dto := OfferDTO{
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
			dto.ExpiresAt = &expiresAt
		}
		response.Offers = append(response.Offers, dto)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
