package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "shipping/internal/app"
	"shipping/internal/handlers/rest/carrier_callback_post"
	"shipping/internal/handlers/rest/carrier_register_post"
	"shipping/internal/handlers/rest/healthcheck_head"
	"shipping/internal/handlers/rest/order_status_put"
	"shipping/internal/handlers/rest/orders_ready_get"
	"shipping/internal/handlers/rest/ping_get"
	"shipping/internal/handlers/rest/shipment_get"
	"shipping/internal/handlers/rest/shipment_logs_get"
	"shipping/internal/handlers/rest/shipment_post"
	"shipping/internal/handlers/rest/shipment_route_post"
	"shipping/internal/handlers/rest/shipment_shipper_put"
	"shipping/internal/handlers/rest/shipment_status_put"
	"shipping/internal/handlers/rest/shipments_get"
	"shipping/internal/handlers/rest/statistics_get"
	"shipping/internal/handlers/rest/sub_shipment_status_put"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/dotenv"
	"shipping/internal/pkg/grpchealth"
	"shipping/internal/pkg/kafka"
	metrics_system "shipping/internal/pkg/metrics"
	"shipping/internal/pkg/middlewares/graceful_shutdown"
	"shipping/internal/pkg/middlewares/metrics"
	"shipping/internal/pkg/middlewares/rate_limiter"
	"shipping/internal/pkg/middlewares/timeout"
	"shipping/internal/pkg/migrations"
	"shipping/internal/pkg/postgres"
	"shipping/pkg/logger"
	"shipping/pkg/logger/zap_adapter"
	"shipping/pkg/token_bucket"
)

const (
	healthWatchInterval   = 10 * time.Second
	systemMetricsInterval = 5 * time.Second

	carrierRegisterRoute = "/shipments/{id}/carrier/register"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting shipping application")

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := migrations.Up(ctx, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, cfg.Kafka.BrokerList())
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close Kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, systemMetricsInterval)

	// регистрация у перевозчика ждёт внешний вызов дольше обычного запроса
	routeTimeouts := map[string]time.Duration{
		carrierRegisterRoute: cfg.Server.RequestTimeout + cfg.Carrier.RequestTimeout,
	}

	// ongoingCtx не отменяется по SIGTERM, только после server.Shutdown().
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, cfg.Server, routeTimeouts),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// gRPC health
	healthLis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("gRPC health listen: %w", err)
	}
	healthServer := grpchealth.New(log, pool)
	go healthServer.Watch(ctx, healthWatchInterval)

	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)
		if err := healthServer.Serve(healthLis); err != nil {
			healthServerErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("gRPC health server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthServer.Shutdown()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	db healthcheck_head.Pinger,
	cfg config.HTTPServer,
	routeTimeouts map[string]time.Duration,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout, routeTimeouts))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/orders/ready-for-shipment", orders_ready_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	router.Handle("/orders/{id}/status", order_status_put.New(log, app.ServiceOrder)).Methods(http.MethodPut)

	router.Handle("/shipments", shipment_post.New(log, app.ServiceShipment)).Methods(http.MethodPost)
	router.Handle("/shipments", shipments_get.New(log, app.ServiceShipment)).Methods(http.MethodGet)
	router.Handle("/shipments/{id}", shipment_get.New(log, app.ServiceShipment)).Methods(http.MethodGet)
	router.Handle("/shipments/{id}/status", shipment_status_put.New(log, app.ServiceShipment)).Methods(http.MethodPut)
	router.Handle("/shipments/{id}/shipper", shipment_shipper_put.New(log, app.ServiceShipment)).Methods(http.MethodPut)
	router.Handle("/shipments/{id}/logs", shipment_logs_get.New(log, app.ServiceShipment)).Methods(http.MethodGet)

	router.Handle("/shipments/{id}/route", shipment_route_post.New(log, app.ServiceRoute)).Methods(http.MethodPost)
	router.Handle("/sub-shipments/{id}/status", sub_shipment_status_put.New(log, app.ServiceRoute)).Methods(http.MethodPut)

	router.Handle(carrierRegisterRoute, carrier_register_post.New(log, app.ServiceCarrier)).Methods(http.MethodPost)
	router.Handle("/carrier/callback", carrier_callback_post.New(log, app.ServiceCarrier)).Methods(http.MethodPost)

	router.Handle("/statistics", statistics_get.New(log, app.ServiceStatistics)).Methods(http.MethodGet)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
