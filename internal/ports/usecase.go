package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
)

// ICalculatorUseCase is the calculator business logic shared by HTTP, gRPC and the
// Kafka consumer.
type ICalculatorUseCase interface {
	Calculate(ctx context.Context, in domain.Input) (*domain.Evaluation, error)
	History(ctx context.Context) ([]domain.Evaluation, error)
	HandleEvaluationEvent(ctx context.Context, ev domain.Evaluation) error
	RunTable(ctx context.Context, page string) (*table.Report, error)
}
