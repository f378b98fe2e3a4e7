package main

import (
	"context"
	"errors"
	"fmt"
	"greeting-hub/auth"
	"greeting-hub/infrastructure/api"
	"greeting-hub/infrastructure/grpc/server"
	"greeting-hub/infrastructure/storage"
	"greeting-hub/infrastructure/ws"
	"greeting-hub/internal"
	"greeting-hub/lifecycle"
	"greeting-hub/notification"
	"greeting-hub/runtime"
	"greeting-hub/runtime/workers"
	"greeting-hub/services"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Greeting hub terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and owns the process lifecycle, so that deferred
// closes of Badger and Bluge always run before exiting.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env is fine, the environment may already be set.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, storage.InspectRow)
	}

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	greetingRepository := storage.NewGreetingRepository(db, logger)
	notificationRepository := storage.NewNotificationRepository(db, logger)
	messageRepository := storage.NewMessageRepository(db, storage.NewMessageIndex(blugeWriter), logger, config.LimitMessages)
	memberRepository := storage.NewMemberRepository(db, logger)
	userRepository := storage.NewUserRepository(db)
	mediaRepository := storage.NewMediaRepository(db)

	if config.AdminEmail != "" {
		if err := userRepository.GrantRole(config.AdminEmail, "admin"); err != nil {
			logger.Warn("Admin role not granted", "email", config.AdminEmail, "error", err)
		}
	}

	// 3. Realtime layer
	moderator, err := runtime.NewEmbeddedModerator(logger, charReplacement)
	if err != nil {
		return exitConfig, fmt.Errorf("moderation setup failed: %w", err)
	}
	tokens := auth.NewTokens(config.AuthSecret, config.AuthTokenDuration)
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	registry := runtime.NewRegistry()
	router := runtime.NewRouter(registry)
	dispatcher := runtime.NewDispatcher(logger, registry, router,
		config.NumberOfWorkers, config.BufferSize, config.SinkTimeout, config.MaxDeliveryFailures)
	scheduler := runtime.NewScheduler(logger)
	materializer := notification.NewMaterializer(logger, notificationRepository, dispatcher)
	machine := lifecycle.NewMachine(logger, greetingRepository, dispatcher, materializer, router, scheduler)
	broker := runtime.NewBroker(logger, supervisor, registry, dispatcher, scheduler, machine, tokens,
		runtime.Stores{Greetings: greetingRepository, Members: memberRepository, Chats: messageRepository},
		moderator, config.DiagnosticsInterval)

	// 4. Write path
	svc := api.Services{
		Auth:          services.NewAuthService(userRepository, tokens),
		Greetings:     services.NewGreetingService(logger, greetingRepository, mediaRepository, memberRepository, userRepository, broker, config.MaxMediaBytes),
		Groups:        services.NewGroupService(logger, memberRepository, messageRepository, userRepository, broker),
		Notifications: materializer,
	}
	wsOpts := ws.DefaultOptions()
	wsOpts.BufferSize = config.ConnectionBufferSize
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:           api.NewRouter(logger, svc, tokens, ws.NewHandler(logger, broker, wsOpts)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)

	// 6. Start the broker (dispatch shards, scheduler recovery, diagnostics)
	brokerDone := make(chan struct{})
	go func() {
		defer close(brokerDone)
		broker.Start(ctx)
	}()

	// 7. gRPC health
	healthAddress := fmt.Sprintf("%s:%d", config.Host, config.HealthPort)
	listener, err := net.Listen("tcp", healthAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", healthAddress, err)
	}
	grpcServer := grpc.NewServer()
	health := server.NewHealthServer(logger, broker, config.HealthInterval)
	health.Register(grpcServer)
	go func() { _ = health.Run(ctx) }()
	go func() {
		logger.Info("Starting gRPC health server", "address", healthAddress)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. HTTP + websocket
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 9. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 10. Graceful shutdown: stop accepting, then drain the broker before storage closes.
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	grpcServer.GracefulStop()
	broker.Stop()
	select {
	case <-brokerDone:
	case <-shutdownCtx.Done():
		logger.Warn("Broker did not stop in time")
	}
	logger.Info("Program stopped cleanly")

	return code, runErr
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
