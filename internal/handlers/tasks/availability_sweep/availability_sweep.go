package availability_sweep

import (
	"context"
	"time"

	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

type Service interface {
	ReleaseExpired(ctx context.Context) (int64, error)
}

// AvailabilitySweep страхует от потерянных нотификаций и рестартов:
// периодически возвращает в строй рестораны и курьеров, чье окно
// занятости истекло, даже если TTL-ключ так и не сработал.
type AvailabilitySweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAvailabilitySweep(log logger.Logger, service Service, interval time.Duration) *AvailabilitySweep {
	return &AvailabilitySweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AvailabilitySweep) TTL() time.Duration {
	return a.interval
}

func (a *AvailabilitySweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.ReleaseExpired(ctxWithTimeout)

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("released", rowsAffected),
		).Info("availability sweep")
	}

	return err
}

func (a *AvailabilitySweep) Info() string {
	return "availability sweep"
}
