package job_cancel_post

import (
	"encoding/json"
	"errors"
	"io"
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

	// body is optional, an empty request cancels without a reason
	var req CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	job, err := h.service.CancelJob(r.Context(), jobID, caller, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrJobNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrForbiddenActor):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, lifecycle.ErrCancelNotAllowed),
			errors.Is(err, lifecycle.ErrInvalidTransition),
			errors.Is(err, lifecycle.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("cancel job")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := CancelResponse{
		ID:           job.ID,
		Status:       string(job.Status),
		CancelReason: job.CancelReason,
		UpdatedAt:    job.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
