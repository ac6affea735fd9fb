// Package grpchealth поднимает стандартный grpc.health.v1 сервис, по которому оркестратор проверяет готовность.
package grpchealth

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"shipping/pkg/logger"
)

const (
	ServiceName = "shipping"

	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second

	pingTimeout = time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Server struct {
	log    handlerLogger
	grpc   *grpc.Server
	health *health.Server
	deps   []Pinger
}

func New(log handlerLogger, deps ...Pinger) *Server {
	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{
		log:    log.With(logger.NewField("component", "grpc-health")),
		grpc:   grpcServer,
		health: healthServer,
		deps:   deps,
	}
}

// Serve блокирует до остановки сервера.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC health server starting", logger.NewField("addr", lis.Addr().String()))
	return s.grpc.Serve(lis)
}

// Watch периодически пингует зависимости и переключает статус сервиса.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Check один проход по зависимостям.
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	for _, dep := range s.deps {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := dep.Ping(pingCtx)
		cancel()
		if err != nil {
			s.log.Warn("dependency ping failed", logger.NewField("error", err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
			break
		}
	}

	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Shutdown переводит все сервисы в NOT_SERVING и дожидается активных вызовов.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
