package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shoot-calendar-api/core/cache"
	"shoot-calendar-api/core/config"
	"shoot-calendar-api/core/constants"
	"shoot-calendar-api/core/database"
	"shoot-calendar-api/core/logger"
	"shoot-calendar-api/core/middleware"
	"shoot-calendar-api/core/queue"
	"shoot-calendar-api/modules/calendar"
	"shoot-calendar-api/modules/mark"
	"shoot-calendar-api/modules/shoot"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run loads config, connects the stores, starts the HTTP server, the
// regeneration worker and the sweep, and blocks until SIGINT or SIGTERM.
func Run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Log.Level, cfg.Server.Env)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	err = db.Migrate(migrateCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	redisCache, err := cache.InitRedis(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisCache.Close()

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestLoggerWithConfig(requestLoggerConfig()))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	v1 := e.Group("/api/v1")
	mw := middleware.NewMiddleware(cfg.JWT.Secret)

	calendarModule := calendar.Init(e, v1, &db, redisCache, queueClient, mw, cfg.Calendar, cfg.Server.PublicBaseURL)
	shoot.Init(v1, db, mw)
	mark.Init(v1, db, mw, calendarModule.Scheduler)

	worker := queue.NewServer(cfg.Redis)
	mux := asynq.NewServeMux()
	calendarModule.Handler.Register(mux)
	if err := worker.Start(mux); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer worker.Shutdown()

	if err := calendarModule.Sweeper.Start(); err != nil {
		return fmt.Errorf("start sweeper: %w", err)
	}
	defer calendarModule.Sweeper.Stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server:Run:Listening", "addr", addr, "env", cfg.Server.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("Server:Run:Shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(ctx)
}

func requestLoggerConfig() echoMiddleware.RequestLoggerConfig {
	return echoMiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURIPath:   true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			// The feed token travels in the query string, so only the path is logged.
			if v.Error != nil {
				logger.Warn("HTTP:Request", "method", v.Method, "path", v.URIPath, "status", v.Status,
					"latency", v.Latency.String(), "request_id", v.RequestID, "error", v.Error)
				return nil
			}
			logger.Info("HTTP:Request", "method", v.Method, "path", v.URIPath, "status", v.Status,
				"latency", v.Latency.String(), "request_id", v.RequestID)
			return nil
		},
	}
}
