package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает 204, пока сервис жив, и 503 после начала остановки,
// чтобы балансировщик перестал слать трафик.
type Handler struct {
	shuttingDown *atomic.Bool
}

func New(shuttingDown *atomic.Bool) *Handler {
	return &Handler{shuttingDown: shuttingDown}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	status := http.StatusNoContent
	if h.shuttingDown.Load() {
		status = http.StatusServiceUnavailable
	}
	w.WriteHeader(status)
}
