package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/providers"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaAnalyticsSink publishes search events to a Kafka topic
type KafkaAnalyticsSink struct {
	writer messageWriter
}

var _ providers.AnalyticsSink = (*KafkaAnalyticsSink)(nil)

// NewKafkaAnalyticsSink creates a sink writing to topic on brokers. Writes
// are batched and asynchronous.
func NewKafkaAnalyticsSink(brokers []string, topic string) *KafkaAnalyticsSink {
	return &KafkaAnalyticsSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			BatchTimeout: 500 * time.Millisecond,
		},
	}
}

// Publish sends one event keyed by its session so a session's searches stay ordered
func (s *KafkaAnalyticsSink) Publish(ctx context.Context, event *entities.SearchEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish search event: %w", err)
	}
	return nil
}

// Close flushes pending messages
func (s *KafkaAnalyticsSink) Close() error {
	return s.writer.Close()
}

func buildMessage(event *entities.SearchEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal search event: %w", err)
	}

	key := event.SessionID
	if key == "" {
		key = event.ID
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  event.CreatedAt,
	}, nil
}
