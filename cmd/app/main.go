package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"standup-report-service/api"
	"standup-report-service/internal/config"
	"standup-report-service/internal/database"
	"standup-report-service/internal/handler"
	"standup-report-service/internal/keyword"
	"standup-report-service/internal/repository"
	"standup-report-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// Запросы
	queries := database.New(db)

	// Репозитории
	userRepo := repository.NewUserRepository(db, queries)
	teamRepo := repository.NewTeamRepository(db, queries)
	reportRepo := repository.NewReportRepository(db, queries)
	statsRepo := repository.NewStatsRepository(queries)

	// Экстрактор ключевых слов
	extractor := keyword.NewStopWordExtractor()

	// Use Cases
	userUC := usecase.NewUserUseCase(userRepo)
	teamUC := usecase.NewTeamUseCase(teamRepo, userRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, userRepo, extractor)
	statsUC := usecase.NewStatsUseCase(statsRepo, teamRepo)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(userUC, teamUC, reportUC, statsUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
