// Package integration_test держит общий пул соединений и хелперы
// подготовки базы для репозиторных интеграционных тестов.
package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/nelsontanko/foody-sub000/internal/pkg/config"
	"github.com/nelsontanko/foody-sub000/internal/pkg/postgres"
	"github.com/nelsontanko/foody-sub000/pkg/logger/zap_adapter"
	"github.com/nelsontanko/foody-sub000/pkg/querier"
)

const dbTimeout = 2 * time.Second

var (
	sharedPool    *pgxpool.Pool
	sharedQuerier *querier.Querier
	initOnce      sync.Once
)

// GetQuerier лениво поднимает пул к тестовой базе.
// Переменные окружения приходят из .env.test через Makefile.
func GetQuerier() *querier.Querier {
	initOnce.Do(func() {
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		zl, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		defer func() {
			if err := zl.Sync(); err != nil {
				log.Printf("sync logger: %v", err)
			}
		}()

		pool, err := postgres.NewConnPool(context.Background(), zl, cfg)
		if err != nil {
			panic(err)
		}

		sharedPool = pool
		sharedQuerier = querier.New(pool, pgxv5.DefaultCtxGetter)
	})

	return sharedQuerier
}

// GetPool отдает сырой пул для тестов, которым нужен менеджер транзакций.
func GetPool() *pgxpool.Pool {
	GetQuerier()
	return sharedPool
}

// SetupDB выполняет sql с фикстурами теста.
func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

// TeardownDB чистит все таблицы и сбрасывает последовательности.
func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_items, orders, couriers, foods, restaurants, addresses RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
