// Package events publishes wallet transactions and user notifications to Kafka.
package events

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher sends events to Kafka. Publishing never fails the caller:
// errors are logged and dropped.
type Publisher struct {
	transactions  KafkaWriter
	notifications KafkaWriter
	now           func() time.Time
}

// NewPublisher creates a Publisher. A nil writer disables that stream.
func NewPublisher(transactions, notifications KafkaWriter) *Publisher {
	return &Publisher{
		transactions:  transactions,
		notifications: notifications,
		now:           time.Now,
	}
}

func (p *Publisher) write(ctx context.Context, w KafkaWriter, stream, key string, v any) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "stream", stream, "key", key)
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "stream", stream, "key", key, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "stream", stream, "key", key, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "stream", stream, "key", key)
	}
}

// PublishTransaction publishes a wallet movement.
func (p *Publisher) PublishTransaction(ctx context.Context, txn models.Transaction) {
	p.write(ctx, p.transactions, "transactions", txn.TransactionID, txn)
}

// Notify publishes a notification addressed to the user.
func (p *Publisher) Notify(ctx context.Context, userID, event string, payload map[string]any) {
	n := models.Notification{
		UserID:    userID,
		Event:     event,
		Payload:   payload,
		Timestamp: p.now().Unix(),
	}
	p.write(ctx, p.notifications, "notifications", userID, n)
}

// Close closes both writers.
func (p *Publisher) Close() error {
	var firstErr error
	for _, w := range []KafkaWriter{p.transactions, p.notifications} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
