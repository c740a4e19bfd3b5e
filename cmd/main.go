package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/crisis_awareness_system/internal/broker"
	"github.com/shenikar/crisis_awareness_system/internal/config"
	v1 "github.com/shenikar/crisis_awareness_system/internal/handler/http/v1"
	"github.com/shenikar/crisis_awareness_system/internal/service"
	"github.com/shenikar/crisis_awareness_system/internal/simulator"
	"github.com/shenikar/crisis_awareness_system/internal/state"
	"github.com/shenikar/crisis_awareness_system/internal/webhook"
	"github.com/shenikar/crisis_awareness_system/pkg/logger"
	natsclient "github.com/shenikar/crisis_awareness_system/pkg/nats"
	redisclient "github.com/shenikar/crisis_awareness_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/crisis_awareness_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crisis Awareness System API
// @version 1.0
// @description Real-time situational awareness API: live incident feed, agency routing, analytics and operator commands.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя и воркера вебхуков о критических инцидентах
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)
	alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Контроллер состояния дашборда
	controller := state.NewController(cfg.MaxEvents, cfg.RecentWindow)

	// Подключение к брокеру; при недоступности дашборд продолжает работать
	// по уже буферизованным или локально сгенерированным событиям
	var brokerClient *broker.Client
	var commandPublisher broker.CommandPublisher
	if !cfg.SimulatorEnabled {
		nc, err := natsclient.NewNatsConn(cfg.BrokerURL, cfg.BrokerUser, cfg.BrokerPass)
		if err != nil {
			log.WithError(err).Error("Failed to connect to broker")
			controller.SetStatus(state.StatusError)
		} else {
			log.Info("Successfully connected to broker")
			brokerClient = broker.NewClient(nc, log)
			commandPublisher = brokerClient
		}
	}

	// Инициализация сервиса дашборда
	dashboardService := service.NewDashboardService(controller, commandPublisher, alertPublisher, log, cfg)

	// Подписка на темы инцидентов либо запуск симулятора
	switch {
	case brokerClient != nil:
		err := brokerClient.SubscribeIncidents(cfg.BrokerTopicPattern, dashboardService.Ingest)
		if err != nil {
			log.WithError(err).Error("Failed to subscribe to incident topics")
			controller.SetStatus(state.StatusError)
		} else {
			controller.SetStatus(state.StatusStreaming)
		}
	case cfg.SimulatorEnabled:
		sim := simulator.New(cfg.SimulatorInterval, dashboardService.Ingest, log)
		sim.Start(ctx)
		controller.SetStatus(state.StatusStreaming)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Остановка подписки и дренаж соединения с брокером, ошибки проглатываются
	if brokerClient != nil {
		brokerClient.Close()
	}

	log.Info("Server gracefully stopped")
}
