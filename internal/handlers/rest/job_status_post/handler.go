package job_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"marketplace/internal/entities"
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

	var req StatusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	job, err := h.service.AdvanceJob(r.Context(), jobID, entities.JobStatus(req.Status), caller, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrJobNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrForbiddenActor),
			errors.Is(err, lifecycle.ErrOTPMismatch):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, lifecycle.ErrInvalidTransition),
			errors.Is(err, lifecycle.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("advance job status")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := StatusChangeResponse{
		ID:        job.ID,
		Status:    string(job.Status),
		UpdatedAt: job.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
