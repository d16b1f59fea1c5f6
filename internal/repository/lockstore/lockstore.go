package lockstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/nelsontanko/foody-sub000/internal/service/availability"
)

const (
	busyKeyPrefix = "restaurant:busy:"
	infoKeyPrefix = "order:info:"

	// DefaultTTLFloor страхует от оценки доставки, которая уже в прошлом.
	DefaultTTLFloor = 15 * time.Minute
)

// Store — тонкая обертка над TTL-хранилищем. Владеет двумя семействами
// ключей: restaurant:busy:<id> -> orderID и order:info:<id> ->
// "orderID:restaurantID". Оба живут одинаковый TTL; истечение второго
// ключа служит распределенным таймером завершения заказа.
type Store struct {
	rdb      *redis.Client
	ttlFloor time.Duration
}

func New(rdb *redis.Client, ttlFloor time.Duration) *Store {
	if ttlFloor <= 0 {
		ttlFloor = DefaultTTLFloor
	}
	return &Store{
		rdb:      rdb,
		ttlFloor: ttlFloor,
	}
}

// BusyTTL возвращает время жизни busy-ключей до момента until, но не
// меньше floor: оценка доставки в прошлом или слишком близкая не должна
// давать мгновенно истекающую блокировку.
func BusyTTL(until time.Time, floor time.Duration) time.Duration {
	ttl := time.Until(until)
	if ttl < floor {
		return floor
	}
	return ttl
}

// MarkBusy идемпотентен: повторный вызов перезаписывает ключи со свежим TTL.
func (s *Store) MarkBusy(ctx context.Context, restaurantID, orderID int64, until time.Time) error {
	ttl := BusyTTL(until, s.ttlFloor)

	err := s.rdb.Set(ctx, busyKey(restaurantID), orderID, ttl).Err()
	if err != nil {
		return fmt.Errorf("lock store set busy key: %w", err)
	}

	info := fmt.Sprintf("%d:%d", orderID, restaurantID)
	err = s.rdb.Set(ctx, infoKey(restaurantID), info, ttl).Err()
	if err != nil {
		return fmt.Errorf("lock store set info key: %w", err)
	}

	return nil
}

// IsAvailable: ресторан свободен тогда и только тогда, когда busy-ключ отсутствует.
func (s *Store) IsAvailable(ctx context.Context, restaurantID int64) (bool, error) {
	exists, err := s.rdb.Exists(ctx, busyKey(restaurantID)).Result()
	if err != nil {
		return false, fmt.Errorf("lock store exists: %w", err)
	}
	return exists == 0, nil
}

func (s *Store) RemainingBusy(ctx context.Context, restaurantID int64) (time.Duration, error) {
	ttl, err := s.rdb.TTL(ctx, busyKey(restaurantID)).Result()
	if err != nil {
		return 0, fmt.Errorf("lock store ttl: %w", err)
	}

	// -2 — ключа нет, -1 — ключ без TTL; в обоих случаях окна занятости нет
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

func (s *Store) OrderIDFor(ctx context.Context, restaurantID int64) (int64, error) {
	orderID, err := s.rdb.Get(ctx, busyKey(restaurantID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, availability.ErrBusyLockNotFound
		}
		return 0, fmt.Errorf("lock store get: %w", err)
	}
	return orderID, nil
}

// Release удаляет оба ключа. После истечения TTL они и так отсутствуют,
// но явное удаление закрывает окно гонки с нотификацией.
func (s *Store) Release(ctx context.Context, restaurantID int64) error {
	err := s.rdb.Del(ctx, busyKey(restaurantID), infoKey(restaurantID)).Err()
	if err != nil {
		return fmt.Errorf("lock store del: %w", err)
	}
	return nil
}

func busyKey(restaurantID int64) string {
	return busyKeyPrefix + strconv.FormatInt(restaurantID, 10)
}

func infoKey(restaurantID int64) string {
	return infoKeyPrefix + strconv.FormatInt(restaurantID, 10)
}

// ParseInfoKey выделяет id ресторана из имени ключа order:info:<id>.
// Нотификация об истечении несет только имя ключа, без значения.
func ParseInfoKey(key string) (int64, bool) {
	suffix, found := strings.CutPrefix(key, infoKeyPrefix)
	if !found {
		return 0, false
	}

	restaurantID, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, false
	}
	return restaurantID, true
}
