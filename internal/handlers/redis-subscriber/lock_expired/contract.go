package lock_expired

import (
	"context"

	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CompleteActiveOrderForRestaurant(ctx context.Context, restaurantID int64) error
}
