//go:build integration

package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"shipping/internal/pkg/migrations"
	"shipping/pkg/querier"
	"shipping/pkg/tx"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// контейнер поднимается один раз на пакет и живёт до конца процесса тестов
func setup() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("shipping"),
		postgres.WithUsername("shipping"),
		postgres.WithPassword("shipping"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("postgres connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		log.Fatalf("connection pool: %v", err)
	}

	if err := migrations.Up(ctx, pool); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	poolInstance = pool
	querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
}

func GetQuerier() *querier.Querier {
	querierOnce.Do(setup)
	return querierInstance
}

func GetTxManager() *tx.Manager {
	querierOnce.Do(setup)
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE shipment_logs, sub_shipment_orders, shipment_orders,
			order_items, orders, product_variants, shippers, warehouses, shops
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
