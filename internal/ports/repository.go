package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
)

// IEvaluationRepository stores and lists evaluations.
type IEvaluationRepository interface {
	SaveEvaluation(ctx context.Context, ev domain.Evaluation) error
	GetHistory(ctx context.Context) ([]domain.Evaluation, error)
	Ping(ctx context.Context) error
}
