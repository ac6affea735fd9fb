package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipping/internal/dto"
	"shipping/internal/service/order"
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
	var req dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := dto.Validate(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	created, err := h.service.CreateShipment(r.Context(), req.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, shipment.ErrShopNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrOrderNotConfirmed),
			errors.Is(err, shipment.ErrDuplicateShipment):
			h.writeJSON(w, http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, shipment.ErrInvalidWarehouse),
			errors.Is(err, shipment.ErrInvalidShipper),
			errors.Is(err, shipment.ErrInvalidWeight),
			errors.Is(err, shipment.ErrAddressUnavailable):
			h.writeJSON(w, http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
		default:
			h.log.With(
				logger.NewField("order_id", req.OrderID.String()),
				logger.NewField("error", err),
			).Error("create shipment")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, dto.FromShipment(created))
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
