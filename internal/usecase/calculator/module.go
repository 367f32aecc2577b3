package calculator

import (
	"log/slog"
	"strconv"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
)

// cacheKey builds a readable cache key, e.g. "10 add 5". The operation is the
// resolved kind so "ADD" and "add" share an entry.
func cacheKey(in domain.Input) string {
	return strconv.FormatFloat(in.First, 'f', -1, 64) + " " + in.Kind().String() + " " + strconv.FormatFloat(in.Second, 'f', -1, 64)
}

// UseCase is the calculator business logic. cache, broker and analytics are optional.
type UseCase struct {
	repo      ports.IEvaluationRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.IEvaluationAnalytics
	runner    *table.Runner
	log       *slog.Logger
}

// New creates the calculator use case.
func New(repo ports.IEvaluationRepository, cache ports.ICache, broker ports.IProducer, analytics ports.IEvaluationAnalytics, runner *table.Runner, log *slog.Logger) *UseCase {
	return &UseCase{
		repo:      repo,
		cache:     cache,
		broker:    broker,
		analytics: analytics,
		runner:    runner,
		log:       log,
	}
}
