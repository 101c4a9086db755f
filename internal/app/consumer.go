package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/billing"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/dispatch"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/events"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka/consumer"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	billingService := billing.NewService(
		sqlDB,
		billing.NewRepository(gormDB),
		dispatch.NewRepository(gormDB),
		kafka.NewOutboxRepository(sqlDB),
		zap.L(),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.LoadCreatedTopic,
		GroupID:        "freightops-load-billing",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLoadLifecycle(ctx, reader, billingService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
