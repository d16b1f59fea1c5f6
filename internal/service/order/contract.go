//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"github.com/nelsontanko/foody-sub000/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type RestaurantRepository interface {
	GetEligible(ctx context.Context) ([]entities.EligibleRestaurant, error)
}

type AddressRepository interface {
	Create(ctx context.Context, addressEntity entities.Address) (*entities.Address, error)
	FindByUserAndDetails(ctx context.Context, userID int64, street, city, country string) (*entities.Address, error)
	GetMostRecentByUser(ctx context.Context, userID int64) (*entities.Address, error)
}

type FoodRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Food, error)
}

// AvailabilityService выполняет обе записи занятости: условное
// резервирование пары в БД и best-effort TTL-блокировку.
type AvailabilityService interface {
	ReservePair(ctx context.Context, restaurantID int64, until time.Time) error
	MarkBusyLock(ctx context.Context, restaurantID, orderID int64, until time.Time)
}

// ReleaseService освобождает пару ресторан+курьер при терминальном
// переходе заказа; вызывается обработчиками статусов из фабрики.
type ReleaseService interface {
	CompleteOrderAndFreeRestaurant(ctx context.Context, orderID int64) error
	CancelOrderAndFreeRestaurant(ctx context.Context, orderID int64) error
}

type EstimateFactory interface {
	Calculate(baseTime time.Time) time.Time
}

type (
	ExecuteFn      func(ctx context.Context, orderID int64) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
