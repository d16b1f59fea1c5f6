package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

// Middleware отклоняет запросы сверх лимита с 429 и заголовком Retry-After.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`)); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("route", route),
				).Error("failed to write rate limit response")
			}
		}
		return http.HandlerFunc(fn)
	}
}
