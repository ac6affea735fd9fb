package ping_get

import (
	"encoding/json"
	"net/http"
	"time"

	"shipping/internal/dto"
	"shipping/pkg/logger"
)

const serviceName = "shipping"

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	return NewWithClock(log, time.Now)
}

func NewWithClock(log handlerLogger, now func() time.Time) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		now: now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message: &message,
		Service: serviceName,
		Time:    h.now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
