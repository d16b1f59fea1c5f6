//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/nelsontanko/foody-sub000/internal/handlers/tasks/availability_sweep"
	"github.com/nelsontanko/foody-sub000/internal/pkg/config"
	"github.com/nelsontanko/foody-sub000/internal/pkg/factory/delivery_estimate"
	"github.com/nelsontanko/foody-sub000/internal/pkg/factory/status_handle"

	addressRepo "github.com/nelsontanko/foody-sub000/internal/repository/address"
	courierRepo "github.com/nelsontanko/foody-sub000/internal/repository/courier"
	foodRepo "github.com/nelsontanko/foody-sub000/internal/repository/food"
	"github.com/nelsontanko/foody-sub000/internal/repository/lockstore"
	orderRepo "github.com/nelsontanko/foody-sub000/internal/repository/order"
	restaurantRepo "github.com/nelsontanko/foody-sub000/internal/repository/restaurant"
	availabilityService "github.com/nelsontanko/foody-sub000/internal/service/availability"
	orderService "github.com/nelsontanko/foody-sub000/internal/service/order"

	"github.com/nelsontanko/foody-sub000/pkg/logger"
	"github.com/nelsontanko/foody-sub000/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	goredis "github.com/go-redis/redis/v8"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rdb *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,

		provideRestaurantRepository,
		provideCourierRepository,
		provideOrderRepository,
		provideAddressRepository,
		provideFoodRepository,
		provideLockStore,

		provideServiceAvailability,
		provideEstimateFactory,
		provideStatusHandlerFactory,
		provideServiceOrder,

		provideAvailabilitySweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceAvailability), new(*availabilityService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.RestaurantRepository), new(*restaurantRepo.Repository)),
		wire.Bind(new(orderService.AddressRepository), new(*addressRepo.Repository)),
		wire.Bind(new(orderService.FoodRepository), new(*foodRepo.Repository)),
		wire.Bind(new(orderService.AvailabilityService), new(*availabilityService.Service)),
		wire.Bind(new(orderService.ReleaseService), new(*availabilityService.Service)),
		wire.Bind(new(orderService.EstimateFactory), new(*delivery_estimate.DeliveryTimeFactory)),
		wire.Bind(new(orderService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),

		wire.Bind(new(availabilityService.RestaurantRepository), new(*restaurantRepo.Repository)),
		wire.Bind(new(availabilityService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(availabilityService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(availabilityService.LockStore), new(*lockstore.Store)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(availabilityService.TxManager), new(*tx.Manager)),

		wire.Bind(new(availability_sweep.Service), new(*availabilityService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rdb *goredis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideRestaurantRepository,
		provideCourierRepository,
		provideOrderRepository,
		provideAddressRepository,
		provideFoodRepository,
		provideLockStore,

		provideServiceAvailability,
		provideEstimateFactory,
		provideStatusHandlerFactory,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.RestaurantRepository), new(*restaurantRepo.Repository)),
		wire.Bind(new(orderService.AddressRepository), new(*addressRepo.Repository)),
		wire.Bind(new(orderService.FoodRepository), new(*foodRepo.Repository)),
		wire.Bind(new(orderService.AvailabilityService), new(*availabilityService.Service)),
		wire.Bind(new(orderService.ReleaseService), new(*availabilityService.Service)),
		wire.Bind(new(orderService.EstimateFactory), new(*delivery_estimate.DeliveryTimeFactory)),
		wire.Bind(new(orderService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),

		wire.Bind(new(availabilityService.RestaurantRepository), new(*restaurantRepo.Repository)),
		wire.Bind(new(availabilityService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(availabilityService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(availabilityService.LockStore), new(*lockstore.Store)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(availabilityService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
