package consumer

import (
	"context"
	"encoding/json"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/billing"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLoadLifecycle provisions a billing record for every created load.
// EnsureForLoad is idempotent, so redelivered events converge.
func ConsumeLoadLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	billingService billing.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.load_lifecycle")
	log.Info("load lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("load lifecycle consumer stopped")
				return
			}
			log.Error("fetch load lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.LoadCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode load lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.EventType != "load_created" {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := billingService.EnsureForLoad(ctx, event.CompanyID, event.LoadID); err != nil {
			log.Error("provision billing for load failed",
				zap.String("load_id", event.LoadID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit load lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("billing provisioned from load_created event",
			zap.String("load_id", event.LoadID),
			zap.String("company_id", event.CompanyID),
		)
	}
}
