package shipments_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"shipping/internal/dto"
	"shipping/internal/entities"
	"shipping/internal/service/shipment"
	"shipping/pkg/logger"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

var errBadQuery = errors.New("bad query parameter")

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

// ServeHTTP фильтры: status, warehouse_id, shipper_id, registered, limit.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipments, err := h.service.ListShipments(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list shipments")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromShipments(shipments))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.ShipmentFilter, error) {
	query := r.URL.Query()
	filter := entities.ShipmentFilter{Limit: defaultLimit}

	if v := query.Get("status"); v != "" {
		status := entities.ShipmentStatusType(v)
		filter.Status = &status
	}
	if v := query.Get("warehouse_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errBadQuery
		}
		filter.WarehouseID = &id
	}
	if v := query.Get("shipper_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errBadQuery
		}
		filter.ShipperID = &id
	}
	if v := query.Get("registered"); v != "" {
		registered, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errBadQuery
		}
		filter.Registered = &registered
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil || limit == 0 || limit > maxLimit {
			return filter, errBadQuery
		}
		filter.Limit = limit
	}
	return filter, nil
}
