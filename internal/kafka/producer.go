package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"expo-ticketing/internal/logger"
)

// Producer publishes booking lifecycle events. In mock mode nothing is
// written to the broker; the payload is logged instead, which keeps local
// development independent of a running Kafka.
type Producer struct {
	writer *kafka.Writer
	mock   bool
	logger *logger.Logger
}

func NewProducer(brokers []string, mock bool, log *logger.Logger) *Producer {
	p := &Producer{mock: mock, logger: log}
	if !mock {
		p.writer = &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		}
	}
	return p
}

func (p *Producer) Publish(topic string, key string, value []byte) error {
	if p.mock {
		p.logger.Info("KAFKA", fmt.Sprintf("[mock] %s key=%s payload=%s", topic, key, string(value)))
		return nil
	}
	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
