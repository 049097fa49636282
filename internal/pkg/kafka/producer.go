package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
	"marketplace/internal/pkg/config"
)

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		producer: producer,
		topic:    cfg.EventsTopic,
	}, nil
}

// Send publishes value keyed by key. Messages sharing a key land on the same
// partition, which keeps per-job event order.
func (p *Producer) Send(key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send message to topic %q: %w", p.topic, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
