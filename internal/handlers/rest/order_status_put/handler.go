package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"shipping/internal/dto"
	"shipping/internal/entities"
	"shipping/internal/service/order"
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

	var req dto.OrderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := dto.Validate(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	updated, err := h.service.Transition(r.Context(), id, entities.OrderStatusType(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, statemachine.ErrInvalidTransition):
			h.writeJSON(w, http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		default:
			h.log.With(
				logger.NewField("order_id", id.String()),
				logger.NewField("error", err),
			).Error("transition order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.FromOrder(updated))
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
