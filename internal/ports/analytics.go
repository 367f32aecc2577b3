package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
)

// IEvaluationAnalytics writes evaluations to an analytics store (ClickHouse).
type IEvaluationAnalytics interface {
	WriteEvaluation(ctx context.Context, ev domain.Evaluation) error
}
