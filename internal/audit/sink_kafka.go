package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"vetgate/internal/platform/kafka/producer"
)

// DefaultTopic is the audit event topic.
const DefaultTopic = "vetgate.audit.events"

// KafkaSink publishes audit events to Kafka, keyed by inquiry id so events
// for one inquiry stay ordered within a partition.
type KafkaSink struct {
	producer *producer.Producer
	topic    string
}

// NewKafkaSink wraps a producer. An empty topic falls back to DefaultTopic.
func NewKafkaSink(p *producer.Producer, topic string) *KafkaSink {
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaSink{producer: p, topic: topic}
}

func (s *KafkaSink) Append(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	return s.producer.Produce(ctx, &producer.Message{
		Topic: s.topic,
		Key:   []byte(event.InquiryID),
		Value: payload,
		Headers: map[string]string{
			"action": string(event.Action),
		},
	})
}
