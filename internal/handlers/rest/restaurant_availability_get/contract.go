//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_availability_get_test
package restaurant_availability_get

import (
	"context"
	"time"

	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	IsRestaurantAvailable(ctx context.Context, restaurantID int64) (bool, error)
	RemainingBusyTime(ctx context.Context, restaurantID int64) (time.Duration, error)
	RestaurantOrderID(ctx context.Context, restaurantID int64) (int64, error)
}
