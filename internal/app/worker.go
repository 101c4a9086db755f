package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/accounting"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka/producer"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/recurring"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/connection"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/counter"

	"go.uber.org/zap"
)

const recurringPollInterval = time.Hour

func RunWorker() error {
	logger := zap.L().Named("app.worker")

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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	recurringService := recurring.NewService(
		sqlDB,
		recurring.NewRepository(gormDB),
		accounting.NewRepository(gormDB),
		counter.NewRepository(gormDB),
		outboxRepo,
		zap.L(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	go runRecurringInvoices(ctx, recurringService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func runRecurringInvoices(ctx context.Context, svc recurring.Service, logger *zap.Logger) {
	log := logger.Named("recurring")
	ticker := time.NewTicker(recurringPollInterval)
	defer ticker.Stop()

	log.Info("recurring invoice scheduler started", zap.Duration("poll_interval", recurringPollInterval))

	// One pass at startup so a restarted worker catches up immediately.
	processRecurring(ctx, svc, log)

	for {
		select {
		case <-ctx.Done():
			log.Info("recurring invoice scheduler stopped")
			return
		case <-ticker.C:
			processRecurring(ctx, svc, log)
		}
	}
}

func processRecurring(ctx context.Context, svc recurring.Service, log *zap.Logger) {
	result, err := svc.ProcessDue(ctx)
	if err != nil {
		log.Error("process due recurring templates failed", zap.Error(err))
		return
	}
	if result.Generated > 0 || result.Failed > 0 {
		log.Info("recurring templates processed",
			zap.Int("generated", result.Generated),
			zap.Int("failed", result.Failed),
		)
	}
}
