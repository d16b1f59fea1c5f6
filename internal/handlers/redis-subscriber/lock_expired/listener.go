package lock_expired

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/nelsontanko/foody-sub000/internal/repository/lockstore"
	orderservice "github.com/nelsontanko/foody-sub000/internal/service/order"
	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

// Паттерн подписки на события истечения ключей; требует
// notify-keyspace-events "Ex" на стороне сервера.
const expiredEventsPattern = "__keyevent@*__:expired"

const processTimeout = 30 * time.Second

// Listener превращает истечение ключа order:info:<id> в завершение
// заказа: доставка считается выполненной по таймеру. Доставка событий
// pub/sub негарантированная, пропуски добирает фоновый свип.
type Listener struct {
	rdb     *redis.Client
	service Service
	log     handlerLogger
}

func New(log handlerLogger, rdb *redis.Client, service Service) *Listener {
	handlerLog := log.With()

	return &Listener{
		rdb:     rdb,
		service: service,
		log:     handlerLog,
	}
}

// Start блокирует до отмены контекста. Подписка восстанавливается
// самим клиентом, Start завершается только по ctx.
func (l *Listener) Start(ctx context.Context) error {
	pubsub := l.rdb.PSubscribe(ctx, expiredEventsPattern)
	defer func() {
		err := pubsub.Close()
		if err != nil {
			l.log.With(
				logger.NewField("error", err),
			).Error("close expired-events subscription")
		}
	}()

	// Проверяем, что подписка реально установлена
	_, err := pubsub.Receive(ctx)
	if err != nil {
		return err
	}

	l.log.Info("expired-events listener starting")

	messages := pubsub.Channel()
	for {
		select {
		case message, ok := <-messages:
			if !ok {
				l.log.Info("expired-events channel closed, exiting")
				return nil
			}
			l.handleExpired(ctx, message.Payload)

		case <-ctx.Done():
			l.log.Info("context cancelled, stopping expired-events listener")
			return ctx.Err()
		}
	}
}

func (l *Listener) handleExpired(ctx context.Context, key string) {
	restaurantID, ok := lockstore.ParseInfoKey(key)
	if !ok {
		// чужой ключ: истекают и busy-ключи, и ключи других подсистем
		return
	}

	msgLog := l.log.With(
		logger.NewField("key", key),
		logger.NewField("restaurant", restaurantID),
	)
	msgLog.Info("busy lock expired, completing order")

	processCtx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()

	err := l.service.CompleteActiveOrderForRestaurant(processCtx, restaurantID)
	if err != nil {
		// заказ уже завершен вручную или свипом — это не ошибка
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			msgLog.Info("no active order for expired lock, already completed")
			return
		}

		msgLog.With(
			logger.NewField("error", err),
		).Error("complete order on lock expiry")
	}
}
