package healthserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	servicePrefix      = "bankdata."
	defaultInterval    = 15 * time.Second
	defaultPingTimeout = 3 * time.Second
)

// ErrInvalidMonitorConfig reports a missing monitor dependency.
var ErrInvalidMonitorConfig = errors.New("invalid health monitor config")

// Pinger checks the connection pool behind one storage target.
type Pinger interface {
	Ping(ctx context.Context, target bank.Target) error
}

// ServiceName is the health service name reported for target, e.g. "bankdata.PROD".
// The empty service name reports SERVING only while every target is reachable.
func ServiceName(target bank.Target) string {
	return servicePrefix + target.String()
}

// Monitor drives a gRPC health server from periodic store pings.
type Monitor struct {
	health   *health.Server
	pinger   Pinger
	interval time.Duration
	logger   *zap.Logger

	mu     sync.Mutex
	failed map[bank.Target]bool
}

// NewMonitor wires a Monitor. Every status starts as NOT_SERVING until the first check.
func NewMonitor(pinger Pinger, interval time.Duration, logger *zap.Logger) (*Monitor, error) {
	if pinger == nil {
		return nil, fmt.Errorf("%w: pinger is nil", ErrInvalidMonitorConfig)
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	for _, target := range bank.Targets() {
		healthServer.SetServingStatus(ServiceName(target), healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return &Monitor{
		health:   healthServer,
		pinger:   pinger,
		interval: interval,
		logger:   logger,
		failed:   make(map[bank.Target]bool),
	}, nil
}

// Register exposes the health service on server.
func (monitor *Monitor) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, monitor.health)
}

// Check pings every target once and updates the serving statuses.
func (monitor *Monitor) Check(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING
	for _, target := range bank.Targets() {
		status := healthpb.HealthCheckResponse_SERVING
		pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
		err := monitor.pinger.Ping(pingCtx, target)
		cancel()
		if err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		monitor.record(target, err)
		monitor.health.SetServingStatus(ServiceName(target), status)
	}
	monitor.health.SetServingStatus("", overall)
}

// record logs status transitions only.
func (monitor *Monitor) record(target bank.Target, err error) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	wasFailed := monitor.failed[target]
	switch {
	case err != nil && !wasFailed:
		monitor.logger.Warn("database target unreachable", zap.String("target", target.String()), zap.Error(err))
	case err == nil && wasFailed:
		monitor.logger.Info("database target recovered", zap.String("target", target.String()))
	}
	monitor.failed[target] = err != nil
}

// Run checks immediately and then on every interval until ctx is cancelled.
func (monitor *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(monitor.interval)
	defer ticker.Stop()
	monitor.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			monitor.health.Shutdown()
			return
		case <-ticker.C:
			monitor.Check(ctx)
		}
	}
}

// Serve runs the health gRPC server on listener until ctx is cancelled.
func Serve(ctx context.Context, listener net.Listener, monitor *Monitor) error {
	grpcServer := grpc.NewServer()
	monitor.Register(grpcServer)

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()
	go monitor.Run(monitorCtx)

	errCh := make(chan error, 1)
	go func() {
		monitor.logger.Info("health gRPC server starting", zap.String("listen_addr", listener.Addr().String()))
		errCh <- grpcServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		monitor.logger.Info("health shutdown requested")
		grpcServer.GracefulStop()
		if serveErr := <-errCh; serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			return serveErr
		}
		return nil
	case serveErr := <-errCh:
		if errors.Is(serveErr, grpc.ErrServerStopped) {
			return nil
		}
		return serveErr
	}
}
