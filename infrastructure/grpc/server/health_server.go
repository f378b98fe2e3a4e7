package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name probes ask about. The empty name reports the whole process.
const ServiceName = "greeting-hub.Broker"

// Liveness reports whether the broker is accepting connections.
type Liveness interface {
	Started() bool
}

// HealthServer follows the broker state and publishes it through grpc_health_v1.
type HealthServer struct {
	log      *slog.Logger
	health   *health.Server
	liveness Liveness
	interval time.Duration
}

func NewHealthServer(log *slog.Logger, liveness Liveness, interval time.Duration) *HealthServer {
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{log: log, health: h, liveness: liveness, interval: interval}
}

func (s *HealthServer) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, s.health)
}

// Run polls the broker until ctx ends, then reports NOT_SERVING for good.
func (s *HealthServer) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.refresh()
	for {
		select {
		case <-ctx.Done():
			s.health.Shutdown()
			return nil
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *HealthServer) refresh() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if s.liveness.Started() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
