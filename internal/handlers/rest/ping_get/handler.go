package ping_get

import (
	"encoding/json"
	"net/http"

	"github.com/nelsontanko/foody-sub000/internal/generated/dto"
	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{log: log.With()}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"
	body := dto.PingResponse{Message: &message}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}
