package carrier_register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"shipping/internal/dto"
	"shipping/internal/service/carrier"
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

	registration, err := h.service.RegisterForPickup(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, carrier.ErrAlreadyRegistered),
			errors.Is(err, carrier.ErrNotRegisterable):
			h.writeJSON(w, http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, carrier.ErrOverweight),
			errors.Is(err, carrier.ErrCarrierRejected):
			h.writeJSON(w, http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, carrier.ErrCarrierUnreachable):
			h.log.With(
				logger.NewField("shipment_id", id.String()),
				logger.NewField("error", err),
			).Warn("carrier unreachable")
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			h.log.With(
				logger.NewField("shipment_id", id.String()),
				logger.NewField("error", err),
			).Error("register shipment with carrier")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.FromCarrierRegistration(registration))
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
