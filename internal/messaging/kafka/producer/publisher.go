package producer

import (
	"context"

	"github.com/SalimDiallo/LouraBackend/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// writeEvent keys the message by aggregate so every event for one employee
// or leave request lands on the same partition, in order. The request_id
// header lets consumers correlate events back to the API call that queued
// them.
func writeEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return writer.WriteMessages(ctx, kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	})
}
