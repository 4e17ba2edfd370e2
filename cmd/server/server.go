package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-alignment/internal/config"
	"github.com/KirkDiggler/rpg-alignment/internal/handlers/alignment/v1alpha1"
	"github.com/KirkDiggler/rpg-alignment/internal/handlers/view"
	"github.com/KirkDiggler/rpg-alignment/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort int
	httpPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and view servers",
	Long: `Start the alignment gRPC server and the HTTP view server.

Settings come from ALIGNMENT_* environment variables; --port and --http-port
override the listen ports.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides ALIGNMENT_GRPC_PORT)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", -1, "HTTP view port, 0 disables (overrides ALIGNMENT_HTTP_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if grpcPort > 0 {
		cfg.GRPCPort = grpcPort
	}
	if httpPort >= 0 {
		cfg.HTTPPort = httpPort
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	svcs, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svcs.close()

	alignmentHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		AlignmentService: svcs.alignment,
		GridService:      svcs.grid,
	})
	if err != nil {
		return fmt.Errorf("failed to create alignment handler: %w", err)
	}

	viewHandler, err := view.NewHandler(&view.HandlerConfig{GridService: svcs.grid})
	if err != nil {
		return fmt.Errorf("failed to create view handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterAlignmentServiceServer(srv, alignmentHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "storage", cfg.StorageBackend())
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	var httpSrv *http.Server
	if cfg.HTTPPort > 0 {
		httpSrv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           viewHandler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			slog.Info("View server starting", "port", cfg.HTTPPort)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("failed to serve views: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers...")
	case err := <-errChan:
		srv.Stop()
		if httpSrv != nil {
			_ = httpSrv.Close()
		}
		return err
	}

	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if httpSrv != nil {
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("View server shutdown failed", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	return nil
}

// loadConfig reads the environment and installs the default logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	return cfg, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
