package kafka

import (
	"strings"

	"github.com/segmentio/kafka-go"
)

// Config holds Kafka settings. Variables: CALCULATOR_KAFKA_*.
type Config struct {
	Enabled bool   `envconfig:"ENABLED" default:"false"`
	Brokers string `envconfig:"BROKERS" default:"localhost:9092"` // comma separated
	Topic   string `envconfig:"TOPIC" default:"calculator.evaluations"`
	GroupID string `envconfig:"GROUP_ID" default:"calculator-analytics"`
}

func (c *Config) brokersSlice() []string {
	if c == nil || c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	parts := strings.Split(c.Brokers, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Client builds producers and consumers. Nothing connects until a Writer or Reader
// is used.
type Client struct {
	cfg *Config
}

// New creates a client for cfg.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

// Producer returns a producer for the configured topic. Close it after use.
func (c *Client) Producer() *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.cfg.brokersSlice()...),
		Topic:                  c.cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{w: w}
}

// Consumer returns a consumer-group reader for the configured topic. Close it after use.
func (c *Client) Consumer() *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.cfg.brokersSlice(),
		Topic:   c.cfg.Topic,
		GroupID: c.cfg.GroupID,
	})
	return &Consumer{r: r}
}
