package events

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
)

// DefaultKafkaTopic is the topic content events land on when the config
// names none.
const DefaultKafkaTopic = "cms.events"

// KafkaConfig configures KafkaSink.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// KafkaSink publishes content events to Kafka. Messages are keyed by the
// application table so saves and deletes of one table stay on a single
// partition and replay in order.
type KafkaSink struct {
	Producer sarama.AsyncProducer
	Topic    string
}

// NewKafkaSink creates a KafkaSink from config, or nil when the sink is
// disabled or has no brokers.
func NewKafkaSink(c KafkaConfig) (*KafkaSink, error) {
	if !c.Enabled || len(c.Brokers) == 0 {
		return nil, nil
	}
	cfg := sarama.NewConfig()
	cfg.ClientID = "gcms"
	prod, err := sarama.NewAsyncProducer(c.Brokers, cfg)
	if err != nil {
		return nil, err
	}
	topic := c.Topic
	if topic == "" {
		topic = DefaultKafkaTopic
	}
	return &KafkaSink{Producer: prod, Topic: topic}, nil
}

// partitionKey keys the message by the table the event belongs to, falling
// back to the event name for payloads without one.
func partitionKey(e Event) string {
	switch d := e.Data.(type) {
	case PageEvent:
		return d.Table
	case ValidationEvent:
		return d.Table
	}
	return e.Name
}

func (s *KafkaSink) Emit(ctx context.Context, e Event) error {
	if s == nil || s.Producer == nil {
		return nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: s.Topic,
		Key:   sarama.StringEncoder(partitionKey(e)),
		Value: sarama.ByteEncoder(data),
	}
	select {
	case s.Producer.Input() <- msg:
		return nil
	case err := <-s.Producer.Errors():
		return err.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}
