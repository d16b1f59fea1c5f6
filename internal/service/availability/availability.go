package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nelsontanko/foody-sub000/internal/entities"
	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

// Service прячет двойную запись (реляционные флаги + TTL-блокировка)
// за одним вызовом: вызывающие не рассуждают о двух хранилищах.
// Записи не атомарны между собой: авторитетна БД, расхождение с
// lock store чинится фоновым свипом либо истечением TTL.
const defaultBusyWindow = time.Minute * 15

type Service struct {
	restaurants RestaurantRepository
	couriers    CourierRepository
	orders      OrderRepository
	lock        LockStore
	txManager   TxManager
	log         serviceLogger
	busyWindow  time.Duration
}

func New(
	restaurants RestaurantRepository,
	couriers CourierRepository,
	orders OrderRepository,
	lock LockStore,
	txManager TxManager,
	log serviceLogger,
	busyWindow time.Duration,
) *Service {
	if busyWindow <= 0 {
		busyWindow = defaultBusyWindow
	}
	return &Service{
		restaurants: restaurants,
		couriers:    couriers,
		orders:      orders,
		lock:        lock,
		txManager:   txManager,
		log:         log.With(),
		busyWindow:  busyWindow,
	}
}

// ReservePair условно резервирует пару ресторан+курьер в БД.
// Присоединяется к транзакции вызывающего; ноль затронутых строк
// у ресторана транслируется репозиторием в ErrRestaurantAlreadyReserved.
func (s *Service) ReservePair(ctx context.Context, restaurantID int64, until time.Time) error {
	if restaurantID <= 0 {
		return ErrInvalidRestaurantID
	}

	if err := s.restaurants.Reserve(ctx, restaurantID, until); err != nil {
		return fmt.Errorf("reserve restaurant: %w", err)
	}

	err := s.couriers.ReserveByRestaurant(ctx, restaurantID, until)
	if err != nil && !errors.Is(err, ErrCourierNotFound) {
		return fmt.Errorf("reserve courier: %w", err)
	}

	return nil
}

// MarkBusyLock выставляет TTL-блокировку. Запись best-effort: при отказе
// lock store полагаемся на реляционные флаги и свип, ошибка только логируется.
func (s *Service) MarkBusyLock(ctx context.Context, restaurantID, orderID int64, until time.Time) {
	err := s.lock.MarkBusy(ctx, restaurantID, orderID, until)
	if err != nil {
		s.log.With(
			logger.NewField("restaurant", restaurantID),
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		).Warn("lock store write failed, relying on reconciliation sweep")
	}
}

// MarkRestaurantBusy — составная операция для внешних вызовов:
// транзакционное резервирование пары плюс TTL-блокировка.
func (s *Service) MarkRestaurantBusy(ctx context.Context, restaurantID, orderID int64, until time.Time) error {
	if restaurantID <= 0 {
		return ErrInvalidRestaurantID
	}
	if orderID <= 0 {
		return ErrInvalidOrderID
	}

	if until.IsZero() {
		until = time.Now().UTC().Add(s.busyWindow)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.ReservePair(ctx, restaurantID, until)
	})
	if err != nil {
		return err
	}

	s.MarkBusyLock(ctx, restaurantID, orderID, until)
	return nil
}

func (s *Service) IsRestaurantAvailable(ctx context.Context, restaurantID int64) (bool, error) {
	if restaurantID <= 0 {
		return false, ErrInvalidRestaurantID
	}

	available, err := s.lock.IsAvailable(ctx, restaurantID)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}
	return available, nil
}

func (s *Service) RemainingBusyTime(ctx context.Context, restaurantID int64) (time.Duration, error) {
	if restaurantID <= 0 {
		return 0, ErrInvalidRestaurantID
	}

	remaining, err := s.lock.RemainingBusy(ctx, restaurantID)
	if err != nil {
		return 0, fmt.Errorf("remaining busy time: %w", err)
	}
	return remaining, nil
}

func (s *Service) RestaurantOrderID(ctx context.Context, restaurantID int64) (int64, error) {
	if restaurantID <= 0 {
		return 0, ErrInvalidRestaurantID
	}

	orderID, err := s.lock.OrderIDFor(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, ErrBusyLockNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("restaurant order id: %w", err)
	}
	return orderID, nil
}

// CompleteOrderAndFreeRestaurant — идемпотентный переход: заказ доставлен,
// пара ресторан+курьер свободна. Безопасен при повторном вызове: уже
// доставленный заказ не мутируется, освобождение флагов повторяемо.
func (s *Service) CompleteOrderAndFreeRestaurant(ctx context.Context, orderID int64) error {
	return s.finishOrder(ctx, orderID, entities.OrderDelivered)
}

// CompleteActiveOrderForRestaurant завершает текущий доставляемый заказ
// ресторана. Нотификация об истечении ключа несет только имя ключа,
// поэтому заказ разрешается по ресторану.
func (s *Service) CompleteActiveOrderForRestaurant(ctx context.Context, restaurantID int64) error {
	if restaurantID <= 0 {
		return ErrInvalidRestaurantID
	}

	order, err := s.orders.GetActiveByRestaurant(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("resolve active order: %w", err)
	}

	return s.CompleteOrderAndFreeRestaurant(ctx, order.ID)
}

// CancelOrderAndFreeRestaurant освобождает пару при отмене заказа.
// Семантика освобождения та же, что и у завершения, отличается только
// конечный статус заказа.
func (s *Service) CancelOrderAndFreeRestaurant(ctx context.Context, orderID int64) error {
	return s.finishOrder(ctx, orderID, entities.OrderCancelled)
}

func (s *Service) finishOrder(ctx context.Context, orderID int64, finalStatus entities.OrderStatusType) error {
	if orderID <= 0 {
		return ErrInvalidOrderID
	}

	var restaurantID int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		restaurantID = order.RestaurantID

		if !order.Status.IsTerminal() {
			_, err = s.orders.Update(ctx, entities.OrderModify{
				ID:     &order.ID,
				Status: &finalStatus,
			})
			if err != nil {
				return fmt.Errorf("mark order %s: %w", finalStatus, err)
			}
		}

		if err := s.restaurants.Release(ctx, order.RestaurantID); err != nil {
			return fmt.Errorf("free restaurant: %w", err)
		}

		err = s.couriers.ReleaseByRestaurant(ctx, order.RestaurantID)
		if err != nil && !errors.Is(err, ErrCourierNotFound) {
			return fmt.Errorf("free courier: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Ключи к этому моменту обычно уже истекли; явное удаление закрывает
	// окно гонки между нотификацией и чтениями.
	if err := s.lock.Release(ctx, restaurantID); err != nil {
		s.log.With(
			logger.NewField("restaurant", restaurantID),
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		).Warn("lock store release failed")
	}

	return nil
}

// ReleaseExpired возвращает в строй рестораны и курьеров с истекшим окном
// занятости. Статусы заказов свип не трогает — этим занимается слушатель
// истечения ключей.
func (s *Service) ReleaseExpired(ctx context.Context) (int64, error) {
	restaurantsFreed, err := s.restaurants.ReleaseExpired(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("availability sweep timed out: %w", err)
		}
		return 0, fmt.Errorf("availability sweep restaurants: %w", err)
	}

	couriersFreed, err := s.couriers.ReleaseExpired(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return restaurantsFreed, fmt.Errorf("availability sweep timed out: %w", err)
		}
		return restaurantsFreed, fmt.Errorf("availability sweep couriers: %w", err)
	}

	return restaurantsFreed + couriersFreed, nil
}
