package health

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
)

const (
	ServiceName = "bookmarker"

	refreshInterval = 5 * time.Second
	pingTimeout     = 2 * time.Second
)

// Pinger is anything whose reachability decides the serving status.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	pinger     Pinger
	logger     *zap.SugaredLogger

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewGRPCServer(lc fx.Lifecycle, cfg *config.Config, pinger Pinger, logger *zap.SugaredLogger) *Server {
	instance := newServer(pinger, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", cfg.GRPCAddr())
			if err != nil {
				return errors.Wrap(err, "failed to listen")
			}

			logger.Infow("Starting GRPC server.", "addr", lis.Addr().String())
			instance.Start(lis)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping GRPC server.")
			instance.Stop()
			return nil
		},
	})

	return instance
}

func newServer(pinger Pinger, logger *zap.SugaredLogger) *Server {
	instance := Server{
		grpcServer: grpc.NewServer(),
		health:     health.NewServer(),
		pinger:     pinger,
		logger:     logger,
		stop:       make(chan struct{}),
	}

	healthpb.RegisterHealthServer(instance.grpcServer, instance.health)
	reflection.Register(instance.grpcServer)

	return &instance
}

// Start serves on lis and keeps the serving status in sync with the pinger.
func (s *Server) Start(lis net.Listener) {
	s.refresh(context.Background())

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		if err := s.grpcServer.Serve(lis); err != nil {
			s.logger.Errorw("failed to serve", "error", err)
		}
	}()
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.refresh(context.Background())
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Server) Stop() {
	close(s.stop)
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
	s.wg.Wait()
}

func (s *Server) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warnw("database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
