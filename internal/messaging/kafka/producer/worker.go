package producer

import (
	"context"
	"time"

	"github.com/SalimDiallo/LouraBackend/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const dispatchBatchSize = 50

// RunOutboxDispatcher polls the outbox table and relays pending rows to
// Kafka until the context is cancelled. Rows are marked sent or failed one
// by one so a bad event never blocks the rest of the batch.
func RunOutboxDispatcher(
	ctx context.Context,
	outbox kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("outbox.dispatcher")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox dispatcher started", zap.Duration("poll_interval", pollInterval))

	// Drain whatever accumulated before this instance came up, then fall
	// into the polling loop.
	if err := dispatchPending(ctx, outbox, writer, log); err != nil {
		log.Error("outbox dispatch failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox dispatcher stopped")
			return
		case <-ticker.C:
			if err := dispatchPending(ctx, outbox, writer, log); err != nil {
				log.Error("outbox dispatch failed", zap.Error(err))
			}
		}
	}
}

func dispatchPending(
	ctx context.Context,
	outbox kafka.OutboxRepository,
	writer *kafkago.Writer,
	log *zap.Logger,
) error {
	pending, err := outbox.ListPending(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	log.Debug("dispatching outbox batch", zap.Int("pending", len(pending)))

	for _, event := range pending {
		if err := writeEvent(ctx, writer, event); err != nil {
			log.Error("outbox event write failed",
				zap.String("event_id", event.ID),
				zap.String("request_id", event.RequestID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = outbox.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := outbox.MarkSent(ctx, event.ID); err != nil {
			log.Error("outbox event sent but not marked",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		log.Info("outbox event dispatched",
			zap.String("event_id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
