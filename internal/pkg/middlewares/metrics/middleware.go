package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

// Middleware пишет прометеевские метрики и access-лог по каждому запросу.
// Лейбл маршрута берется из шаблона mux, чтобы не плодить кардинальность
// по конкретным id в пути.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			status := strconv.Itoa(sw.status)
			route := routeTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, route, status).Observe(elapsed.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, status).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", status),
				logger.NewField("duration", elapsed.String()),
			).Info("HTTP request")
		}
		return http.HandlerFunc(fn)
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
