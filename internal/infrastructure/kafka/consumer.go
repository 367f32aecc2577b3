package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

// reader is the part of kafka.Reader the consumer needs.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// defaultRetryDelay is the pause between attempts to handle a rejected message.
const defaultRetryDelay = time.Second

// Consumer decodes evaluation events and hands them to the use case.
type Consumer struct {
	r          reader
	uc         ports.ICalculatorUseCase
	log        *slog.Logger
	retryDelay time.Duration
}

// NewConsumer creates a consumer for cfg. Close it after use.
func NewConsumer(cfg *Config, uc ports.ICalculatorUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Run fetches messages until ctx is cancelled or a read fails. Undecodable messages
// are committed and skipped. A message the use case rejects is retried until it
// succeeds or ctx ends; later offsets are not fetched meanwhile.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var ev domain.Evaluation
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.r.CommitMessages(ctx, msg)
			continue
		}

		if err := c.handle(ctx, msg, ev); err != nil {
			return err
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle calls the use case until it accepts ev. It fails only when ctx ends.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message, ev domain.Evaluation) error {
	delay := c.retryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	for attempt := 1; ; attempt++ {
		err := c.uc.HandleEvaluationEvent(ctx, ev)
		if err == nil {
			return nil
		}
		c.log.Warn("kafka handle error, retrying", "error", err, "attempt", attempt, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Close closes the reader.
func (c *Consumer) Close() error {
	return c.r.Close()
}
