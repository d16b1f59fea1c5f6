package app

import (
	"context"
	"time"

	"github.com/nelsontanko/foody-sub000/internal/handlers/redis-subscriber/lock_expired"
	"github.com/nelsontanko/foody-sub000/internal/handlers/rest/order_complete_post"
	"github.com/nelsontanko/foody-sub000/internal/handlers/rest/order_post"
	"github.com/nelsontanko/foody-sub000/internal/handlers/rest/order_status_put"
	"github.com/nelsontanko/foody-sub000/internal/handlers/rest/orders_get"
	"github.com/nelsontanko/foody-sub000/internal/handlers/rest/restaurant_availability_get"
	"github.com/nelsontanko/foody-sub000/internal/handlers/rest/restaurant_busy_post"
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

	"github.com/nelsontanko/foody-sub000/pkg/background"
	"github.com/nelsontanko/foody-sub000/pkg/logger"
	"github.com/nelsontanko/foody-sub000/pkg/querier"
	"github.com/nelsontanko/foody-sub000/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	goredis "github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceOrder        ServiceOrder
	ServiceAvailability ServiceAvailability
	BackgroundWorkers   *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_status_put.Service
}

type ServiceAvailability interface {
	order_complete_post.Service
	restaurant_busy_post.Service
	restaurant_availability_get.Service
	lock_expired.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Order
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideRestaurantRepository(querier *querier.Querier) *restaurantRepo.Repository {
	return restaurantRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAddressRepository(querier *querier.Querier) *addressRepo.Repository {
	return addressRepo.New(querier)
}

func provideFoodRepository(querier *querier.Querier) *foodRepo.Repository {
	return foodRepo.New(querier)
}

func provideLockStore(rdb *goredis.Client, cfg *config.Config) *lockstore.Store {
	return lockstore.New(rdb, cfg.Delivery.BusyTTLFloor)
}

func provideServiceAvailability(
	restaurants availabilityService.RestaurantRepository,
	couriers availabilityService.CourierRepository,
	orders availabilityService.OrderRepository,
	lock availabilityService.LockStore,
	txManager availabilityService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *availabilityService.Service {
	return availabilityService.New(
		restaurants,
		couriers,
		orders,
		lock,
		txManager,
		log,
		cfg.Delivery.Estimate,
	)
}

func provideEstimateFactory(cfg *config.Config) *delivery_estimate.DeliveryTimeFactory {
	return delivery_estimate.New(cfg.Delivery.Estimate)
}

func provideStatusHandlerFactory(releaseService orderService.ReleaseService) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(releaseService)
}

func provideServiceOrder(
	repository orderService.Repository,
	restaurants orderService.RestaurantRepository,
	addresses orderService.AddressRepository,
	foods orderService.FoodRepository,
	availability orderService.AvailabilityService,
	estimateFactory orderService.EstimateFactory,
	statusFactory orderService.HandlerFactory,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(
		repository,
		restaurants,
		addresses,
		foods,
		availability,
		estimateFactory,
		statusFactory,
		txManager,
	)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.AvailabilitySweepInterval)
}

func provideAvailabilitySweepTask(
	log logger.Logger,
	sweepService availability_sweep.Service,
	interval SweepInterval,
) *availability_sweep.AvailabilitySweep {
	return availability_sweep.NewAvailabilitySweep(log, sweepService, time.Duration(interval))
}

func provideTaskList(
	availabilitySweepTask *availability_sweep.AvailabilitySweep,
) []background.Task {
	return []background.Task{
		availabilitySweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
