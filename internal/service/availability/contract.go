//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_test
package availability

import (
	"context"
	"time"

	"github.com/nelsontanko/foody-sub000/internal/entities"
	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

type RestaurantRepository interface {
	Reserve(ctx context.Context, id int64, until time.Time) error
	Release(ctx context.Context, id int64) error
	ReleaseExpired(ctx context.Context) (int64, error)
}

type CourierRepository interface {
	ReserveByRestaurant(ctx context.Context, restaurantID int64, until time.Time) error
	ReleaseByRestaurant(ctx context.Context, restaurantID int64) error
	ReleaseExpired(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetActiveByRestaurant(ctx context.Context, restaurantID int64) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

// LockStore — TTL-хранилище busy-блокировок (см. repository/lockstore).
type LockStore interface {
	MarkBusy(ctx context.Context, restaurantID, orderID int64, until time.Time) error
	IsAvailable(ctx context.Context, restaurantID int64) (bool, error)
	RemainingBusy(ctx context.Context, restaurantID int64) (time.Duration, error)
	OrderIDFor(ctx context.Context, restaurantID int64) (int64, error)
	Release(ctx context.Context, restaurantID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
