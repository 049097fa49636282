package provider_location_post

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/middlewares/actor"
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
	if caller.Role != entities.RoleDriver && caller.Role != entities.RoleCourier {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.service.RecordLocation(r.Context(), caller, req.Lat, req.Lng); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("record provider location")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
