package kafka

import (
	"context"
	"errors"
	"time"

	"orderservice/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler processes one inbound message. A returned error is logged and
// the message is dropped; delivery is at-least-once, so handlers must
// treat duplicates as no-ops.
type Handler func(ctx context.Context, msg kafka.Message) error

// Consumer Group consumer for one topic. Run loops until the context is
// cancelled.
type Consumer struct {
	reader  *kafka.Reader
	handler Handler
}

// NewConsumer Create a group consumer for the given topic
func NewConsumer(brokers []string, topic, groupID string, handler Handler) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 10e3,
			MaxBytes: 10e6,
		}),
		handler: handler,
	}
}

// Run Consume messages until ctx is cancelled. Read errors back off and
// retry; handler errors are logged and the offset advances anyway.
func (c *Consumer) Run(ctx context.Context) {
	topic := c.reader.Config().Topic
	logger.Info("Consumer started", zap.String("topic", topic))

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				logger.Info("Consumer stopped", zap.String("topic", topic))
				return
			}
			logger.Error("Kafka read failed", zap.String("topic", topic), zap.Error(err))
			time.Sleep(2 * time.Second)
			continue
		}

		if err := c.handler(ctx, msg); err != nil {
			logger.Error("Message handling failed",
				zap.String("topic", topic),
				zap.String("key", string(msg.Key)),
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
		}
	}
}

// Close Release the reader
func (c *Consumer) Close() error {
	return c.reader.Close()
}
