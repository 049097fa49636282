package job_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/middlewares/actor"
	"marketplace/internal/service/dispatch"
	"marketplace/internal/service/pricing"
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

	var req JobCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	spec := dispatch.JobSpec{
		Kind:          entities.JobKind(req.Kind),
		PricingModel:  entities.PricingModel(req.PricingModel),
		VehicleClass:  req.VehicleClass,
		Origin:        entities.Place{Lat: req.Origin.Lat, Lng: req.Origin.Lng, Address: req.Origin.Address},
		Destination:   entities.Place{Lat: req.Destination.Lat, Lng: req.Destination.Lng, Address: req.Destination.Address},
		DistanceKm:    req.DistanceKm,
		ProposedPrice: req.ProposedPrice,
		RestaurantID:  req.RestaurantID,
	}

	job, err := h.service.CreateJob(r.Context(), spec, caller)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidKind),
			errors.Is(err, dispatch.ErrInvalidPricingModel),
			errors.Is(err, dispatch.ErrInvalidPlace),
			errors.Is(err, dispatch.ErrMissingRequiredFields),
			errors.Is(err, pricing.ErrUnknownClass),
			errors.Is(err, pricing.ErrInvalidDistance):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create job")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := JobCreateResponse{
		ID:           job.ID,
		Status:       string(job.Status),
		DistanceKm:   job.DistanceKm,
		FinalPrice:   job.FinalPrice,
		SuggestedMin: job.SuggestedMin,
		SuggestedMax: job.SuggestedMax,
		Surge:        job.Surge,
		CreatedAt:    job.CreatedAt,
	}
	if job.Assignment != nil {
		response.ProviderID = job.Assignment.ProviderID
	}
	// the pickup code goes to the owner only, at creation time
	if caller.ID == job.OwnerID {
		response.OTP = job.OTP
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
