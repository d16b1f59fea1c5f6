package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal считает запросы, отклоненные лимитером,
// в разрезе метода и маршрута.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "foody",
		Name:      "rate_limit_exceeded_total",
		Help:      "Requests rejected by the rate limiter",
	},
	[]string{"method", "route"},
)
