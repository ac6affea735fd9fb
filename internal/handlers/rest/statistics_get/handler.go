package statistics_get

import (
	"encoding/json"
	"net/http"

	"shipping/internal/dto"
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

// ServeHTTP считает по текущим статусам на каждый запрос, кеша нет.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.service.ShipmentStatistics(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment statistics")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orders, err := h.service.OrderStatistics(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order statistics")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromStatistics(shipments, orders))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
