package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/trip-aggregator/internal/config"
	"github.com/trip-aggregator/internal/domain"
)

const eventSource = "trip-aggregator/fare-records"

// CloudEvent - конверт события в формате CloudEvents 1.0 (structured mode)
type CloudEvent struct {
	SpecVersion     string          `json:"specversion"`
	ID              string          `json:"id"`
	Source          string          `json:"source"`
	Type            string          `json:"type"`
	Subject         string          `json:"subject,omitempty"`
	Time            time.Time       `json:"time"`
	DataContentType string          `json:"datacontenttype"`
	Data            json.RawMessage `json:"data"`
}

// ParseData decodes the event payload into v.
func (e CloudEvent) ParseData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// FareEventPublisher публикует события записей тарифов в Kafka
type FareEventPublisher struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

// NewFareEventPublisher создает продюсера для топика cfg.FareTopic
func NewFareEventPublisher(cfg config.KafkaConfig, logger *zap.Logger) (*FareEventPublisher, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("kafka brokers are not configured")
	}

	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.FareTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}

	return newFareEventPublisher(writer, cfg.FareTopic, logger), nil
}

func newFareEventPublisher(writer messageWriter, topic string, logger *zap.Logger) *FareEventPublisher {
	return &FareEventPublisher{
		writer: writer,
		topic:  topic,
		logger: logger.With(zap.String("topic", topic)),
	}
}

// PublishFareEvent keys messages by record id so events for one record stay ordered.
func (p *FareEventPublisher) PublishFareEvent(ctx context.Context, event domain.FareRecordEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal fare event: %w", err)
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	key := strconv.FormatInt(event.RecordID, 10)
	envelope := CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.NewString(),
		Source:          eventSource,
		Type:            event.Type,
		Subject:         key,
		Time:            occurredAt,
		DataContentType: "application/json",
		Data:            data,
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal cloud event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(key),
		Value: value,
		Time:  occurredAt,
	}); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	p.logger.Debug("Fare event published",
		zap.String("type", event.Type),
		zap.Int64("record_id", event.RecordID))
	return nil
}

// Close flushes pending messages.
func (p *FareEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher используется, когда Kafka не настроена
type NoopPublisher struct{}

func (NoopPublisher) PublishFareEvent(context.Context, domain.FareRecordEvent) error { return nil }
func (NoopPublisher) Close() error                                                   { return nil }
