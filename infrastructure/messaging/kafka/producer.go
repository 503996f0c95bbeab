/*
Package kafka carries the order service's Kafka adapters: an asynchronous
producer behind the publisher ports and a consumer loop feeding the
response listeners.
*/
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"orderservice/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer Asynchronous JSON producer for one topic. WriteMessages hands
// the message to the writer's internal queue and returns; the broker
// outcome arrives later on the completion callback, where it is logged.
// Callers therefore never block on the broker and never see a publish
// error. Messages are keyed so that all messages of one order land on the
// same partition, preserving per-order ordering.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer Create an async producer for the given topic
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			Completion:   logCompletion(topic),
		},
	}
}

// Publish Marshal the payload and enqueue it keyed by key. Failures are
// logged, never returned; a message that cannot be delivered is healed by
// the reconciliation process, not by the caller.
func (p *Producer) Publish(ctx context.Context, key string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal outbound message",
			zap.String("topic", p.writer.Topic),
			zap.String("key", key),
			zap.Error(err))
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		// With Async set this only fires when the writer is closed or the
		// context is already done; broker errors go to the completion callback.
		logger.Error("Failed to enqueue outbound message",
			zap.String("topic", p.writer.Topic),
			zap.String("key", key),
			zap.Error(err))
	}
}

// Close Flush pending messages and release the writer
func (p *Producer) Close() error {
	return p.writer.Close()
}

func logCompletion(topic string) func([]kafka.Message, error) {
	return func(messages []kafka.Message, err error) {
		for _, msg := range messages {
			if err != nil {
				logger.Error("Message delivery failed",
					zap.String("topic", topic),
					zap.String("key", string(msg.Key)),
					zap.ByteString("value", msg.Value),
					zap.Error(err))
				continue
			}
			logger.Info("Message delivered",
				zap.String("topic", topic),
				zap.String("key", string(msg.Key)),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset))
		}
	}
}
