package carrier_callback_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipping/internal/dto"
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

// ServeHTTP вебхук перевозчика. Повтор уже применённого статуса отвечает 200.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CarrierCallback
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := dto.Validate(req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.OnCarrierCallback(r.Context(), req.PartnerID, req.StatusID.String())
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, statemachine.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("shipment_id", req.PartnerID.String()),
				logger.NewField("carrier_status", req.StatusID.String()),
				logger.NewField("error", err),
			).Error("apply carrier callback")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
