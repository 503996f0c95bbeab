/*
Package cmd wires the order service together: configuration, logging,
MySQL repositories, Kafka producers and consumers, the domain and
application services, and the HTTP API.
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"orderservice/api"
	"orderservice/api/health"
	orderctrl "orderservice/api/order"
	apporder "orderservice/application/order"
	"orderservice/config"
	"orderservice/domain/order"
	"orderservice/domain/shared"
	msgkafka "orderservice/infrastructure/messaging/kafka"
	"orderservice/infrastructure/persistence/mysql"
	"orderservice/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App Assembled order service
type App struct {
	config *config.Config
	server *http.Server
	db     *gorm.DB

	paymentProducer  *msgkafka.Producer
	approvalProducer *msgkafka.Producer
	paymentConsumer  *msgkafka.Consumer
	approvalConsumer *msgkafka.Consumer
}

// NewApp Build the application from configuration
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := mysql.Connect(&cfg.Database, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	// Outbound adapters
	paymentProducer := msgkafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.PaymentRequest)
	approvalProducer := msgkafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.RestaurantApprovalRequest)

	// Core services
	appService := apporder.NewApplicationService(
		order.NewDomainService(shared.UTCClock{}),
		mysql.NewOrderRepository(db),
		mysql.NewCustomerRepository(db),
		mysql.NewRestaurantRepository(db),
		msgkafka.NewPaymentRequestPublisher(paymentProducer),
		msgkafka.NewRestaurantApprovalRequestPublisher(approvalProducer),
	)

	// Inbound message adapters
	paymentConsumer := msgkafka.NewConsumer(
		cfg.Kafka.Brokers,
		cfg.Kafka.Topics.PaymentResponse,
		cfg.Kafka.ConsumerGroup,
		msgkafka.NewPaymentResponseListener(appService).Handle,
	)
	approvalConsumer := msgkafka.NewConsumer(
		cfg.Kafka.Brokers,
		cfg.Kafka.Topics.RestaurantApprovalResponse,
		cfg.Kafka.ConsumerGroup,
		msgkafka.NewRestaurantApprovalResponseListener(appService).Handle,
	)

	// HTTP API
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	router := api.NewRouter(
		cfg,
		health.NewController(cfg, sqlDB),
		orderctrl.NewController(appService),
	)
	router.SetupRoutes()

	return &App{
		config: cfg,
		server: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router.GetEngine(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		db:               db,
		paymentProducer:  paymentProducer,
		approvalProducer: approvalProducer,
		paymentConsumer:  paymentConsumer,
		approvalConsumer: approvalConsumer,
	}, nil
}

// Run Start the consumers and the HTTP server, then block until a
// termination signal arrives and everything has shut down.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.paymentConsumer.Run(ctx)
	go a.approvalConsumer.Run(ctx)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("addr", a.server.Addr),
			zap.String("env", a.config.App.Env))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	a.close()
	logger.Info("Server stopped")
	return logger.Sync()
}

func (a *App) close() {
	if err := a.paymentConsumer.Close(); err != nil {
		logger.Error("Failed to close payment response consumer", zap.Error(err))
	}
	if err := a.approvalConsumer.Close(); err != nil {
		logger.Error("Failed to close approval response consumer", zap.Error(err))
	}
	if err := a.paymentProducer.Close(); err != nil {
		logger.Error("Failed to close payment request producer", zap.Error(err))
	}
	if err := a.approvalProducer.Close(); err != nil {
		logger.Error("Failed to close approval request producer", zap.Error(err))
	}
	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}
}
