package job_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"marketplace/internal/entities"
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
	jobID := mux.Vars(r)["id"]
	if jobID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	job, err := h.service.GetJob(r.Context(), jobID)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrJobNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get job")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toJobResponse(job)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toJobResponse(job *entities.Job) JobResponse {
	res := JobResponse{
		ID:              job.ID,
		Kind:            string(job.Kind),
		OwnerID:         job.OwnerID,
		RestaurantID:    job.RestaurantID,
		Origin:          PlaceDTO{Lat: job.Origin.Lat, Lng: job.Origin.Lng, Address: job.Origin.Address},
		Destination:     PlaceDTO{Lat: job.Destination.Lat, Lng: job.Destination.Lng, Address: job.Destination.Address},
		DistanceKm:      job.DistanceKm,
		VehicleClass:    job.VehicleClass,
		Status:          string(job.Status),
		PricingModel:    string(job.PricingModel),
		ProposedPrice:   job.ProposedPrice,
		SuggestedMin:    job.SuggestedMin,
		SuggestedMax:    job.SuggestedMax,
		FinalPrice:      job.FinalPrice,
		Surge:           job.Surge,
		BiddingClosesAt: job.BiddingClosesAt,
		CancelReason:    job.CancelReason,
		Timeline:        make([]TimelineEntryDTO, 0, len(job.Timeline)),
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
	if job.Assignment != nil {
		res.Assignment = &AssignmentDTO{
			OfferID:    job.Assignment.OfferID,
			ProviderID: job.Assignment.ProviderID,
			Amount:     job.Assignment.Amount,
			AcceptedAt: job.Assignment.AcceptedAt,
		}
	}
	for _, entry := range job.Timeline {
		res.Timeline = append(res.Timeline, TimelineEntryDTO{
			Status: string(entry.Status),
			At:     entry.At,
			Note:   entry.Note,
		})
	}
	return res
}
