package shipment_route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"shipping/internal/dto"
	"shipping/internal/service/route"
	"shipping/internal/service/shipment"
	"shipping/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req dto.RoutePlan
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := dto.Validate(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	legs, err := h.service.PlanRoute(r.Context(), id, req.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, route.ErrEmptyRoute),
			errors.Is(err, route.ErrInvalidRoute):
			h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrInvalidWarehouse),
			errors.Is(err, shipment.ErrInvalidShipper):
			h.writeJSON(w, http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, route.ErrShipmentNotPending),
			errors.Is(err, route.ErrRouteAlreadyPlanned):
			h.writeJSON(w, http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		default:
			h.log.With(
				logger.NewField("shipment_id", id.String()),
				logger.NewField("error", err),
			).Error("plan route")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, dto.FromSubShipments(legs))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
