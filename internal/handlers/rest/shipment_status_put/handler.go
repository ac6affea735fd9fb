package shipment_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"shipping/internal/dto"
	"shipping/internal/entities"
	"shipping/internal/service/shipment"
	"shipping/pkg/logger"
	"shipping/pkg/statemachine"
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

	var req dto.ShipmentStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := dto.Validate(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, entities.ShipmentStatusType(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, statemachine.ErrInvalidTransition),
			errors.Is(err, shipment.ErrRelayedShipment):
			h.writeJSON(w, http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		default:
			h.log.With(
				logger.NewField("shipment_id", id.String()),
				logger.NewField("error", err),
			).Error("update shipment status")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.FromShipment(updated))
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
