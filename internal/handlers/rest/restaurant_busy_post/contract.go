//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_busy_post_test
package restaurant_busy_post

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
	MarkRestaurantBusy(ctx context.Context, restaurantID, orderID int64, until time.Time) error
}
