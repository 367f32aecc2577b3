package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

// Producer wraps kafka.Writer.
type Producer struct {
	w *kafka.Writer
}

// NewProducer creates a producer for cfg. Close it after use.
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send writes one message.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	return p.w.Close()
}
