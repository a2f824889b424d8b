package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Software78/payment-instruction-parser/log"
)

// Config holds the runtime configuration read from the environment.
type Config struct {
	Address         string
	LogLevel        log.Level
	ShutdownTimeout time.Duration
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// sane defaults for anything unset or unparseable.
func ConfigFromEnv() Config {
	cfg := Config{
		Address:         GetenvOrDefault("ADDRESS", ":8080"),
		LogLevel:        log.LevelInfo,
		ShutdownTimeout: 30 * time.Second,
	}

	if level, err := log.ParseLevel(GetenvOrDefault("LOG_LEVEL", "info")); err == nil {
		cfg.LogLevel = level
	}

	if timeout, err := time.ParseDuration(GetenvOrDefault("SHUTDOWN_TIMEOUT", "30s")); err == nil && timeout > 0 {
		cfg.ShutdownTimeout = timeout
	}

	return cfg
}

// GetenvOrDefault returns the trimmed value of an environment variable, or
// fallback when the variable is unset or blank.
func GetenvOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return fallback
}

// Server wires the fiber app, routes, middleware, and graceful shutdown.
type Server struct {
	app             *fiber.App
	logger          log.Logger
	address         string
	shutdownTimeout time.Duration
}

// New builds the HTTP server around a handler. Panics anywhere below the
// middleware stack are recovered, logged, and answered with a generic 500;
// the fault is never masked into a domain status code.
func New(cfg Config, handler *Handler, logger log.Logger) *Server {
	if logger == nil {
		logger = log.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "payment-instruction-parser",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(WithLogging(logger))

	app.Get("/health", Health)
	app.Get("/version", Version)
	app.Post("/payment-instructions", handler.ProcessInstruction)

	return &Server{
		app:             app,
		logger:          logger,
		address:         cfg.Address,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// App exposes the underlying fiber app for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests within
// the shutdown timeout.
func (s *Server) Run() error {
	listenErr := make(chan error, 1)

	go func() {
		listenErr <- s.app.Listen(s.address)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return err
	case sig := <-quit:
		s.logger.Log(context.Background(), log.LevelInfo, "shutting down",
			log.String("signal", sig.String()),
		)

		return s.app.ShutdownWithTimeout(s.shutdownTimeout)
	}
}

// errorHandler converts errors escaping the handler chain into responses.
// Unexpected faults (including recovered panics) are logged before the
// generic 500 goes out.
func errorHandler(logger log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return WriteError(c, fiberErr.Code, "request_error", fiberErr.Message)
		}

		logger.Log(c.UserContext(), log.LevelError, "unexpected failure",
			log.String("method", c.Method()),
			log.String("path", c.Path()),
			log.Err(err),
		)

		return InternalServerError(c)
	}
}
