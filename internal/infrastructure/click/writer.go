package click

import (
	"context"
	"fmt"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

const evaluationsAnalyticsTable = "evaluations_analytics"

var _ ports.IEvaluationAnalytics = (*EvaluationWriter)(nil)

// EvaluationWriter stores evaluations in a MergeTree table shaped for GROUP BY
// operation and time queries.
type EvaluationWriter struct {
	db *Client
}

// NewEvaluationWriter creates the analytics writer.
func NewEvaluationWriter(db *Client) *EvaluationWriter {
	return &EvaluationWriter{db: db}
}

// EnsureTable creates the analytics table if it does not exist.
func (w *EvaluationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			first Float64,
			second Float64,
			operation LowCardinality(String),
			kind LowCardinality(String),
			result Nullable(Float64),
			diagnostic String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, kind)
		PARTITION BY toYYYYMM(created_at)`,
		evaluationsAnalyticsTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteEvaluation implements ports.IEvaluationAnalytics.
func (w *EvaluationWriter) WriteEvaluation(ctx context.Context, ev domain.Evaluation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (first, second, operation, kind, result, diagnostic, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		evaluationsAnalyticsTable,
	)
	var result *float64
	if v, ok := ev.Outcome.Number(); ok {
		result = &v
	}
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.Input.First, ev.Input.Second, ev.Input.Operation, ev.Input.Kind().String(), result, ev.Outcome.Message(), ev.Timestamp)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}
