package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/fixture"
	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
)

// ErrNoRunner is returned by RunTable when the use case was built without a runner.
var ErrNoRunner = errors.New("table runner not configured")

// Calculate checks the cache; on a miss it evaluates, saves to the repository, caches
// numeric results and publishes the evaluation. Diagnostics are evaluations too.
func (u *UseCase) Calculate(ctx context.Context, in domain.Input) (*domain.Evaluation, error) {
	kind := in.Kind()
	key := cacheKey(in)
	if u.cache != nil && kind.Known() {
		cached, found, err := u.cache.Get(ctx, key)
		switch {
		case err != nil:
			u.log.Warn("cache get", "key", key, "error", err)
		case found:
			cacheLookupsTotal.WithLabelValues("hit").Inc()
			evaluationsTotal.WithLabelValues(kind.String(), "cached").Inc()
			return &domain.Evaluation{
				Input:     in,
				Outcome:   domain.Value(cached),
				Timestamp: time.Now(),
			}, nil
		default:
			cacheLookupsTotal.WithLabelValues("miss").Inc()
		}
	}

	outcome := fixture.Evaluate(in)
	ev := domain.Evaluation{
		Input:     in,
		Outcome:   outcome,
		Timestamp: time.Now(),
	}
	label := "value"
	if outcome.IsDiagnostic() {
		label = "diagnostic"
	}
	evaluationsTotal.WithLabelValues(kind.String(), label).Inc()

	if err := u.repo.SaveEvaluation(ctx, ev); err != nil {
		return nil, err
	}
	u.log.Info("evaluation saved", "key", key, "result", outcome.String())

	if v, ok := outcome.Number(); ok && u.cache != nil {
		if err := u.cache.Set(ctx, key, v); err != nil {
			return nil, err
		}
	}

	if u.broker != nil {
		value, err := json.Marshal(ev)
		if err != nil {
			return nil, err
		}
		if err := u.broker.Send(ctx, []byte(key), value); err != nil {
			u.log.Warn("broker send", "key", key, "error", err)
		} else {
			u.log.Info("evaluation published", "key", key)
		}
	}

	return &ev, nil
}

// History returns stored evaluations, newest first.
func (u *UseCase) History(ctx context.Context) ([]domain.Evaluation, error) {
	return u.repo.GetHistory(ctx)
}

// HandleEvaluationEvent is called by the Kafka consumer for every published evaluation.
func (u *UseCase) HandleEvaluationEvent(ctx context.Context, ev domain.Evaluation) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteEvaluation(ctx, ev); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("evaluation stored to click", "first", ev.Input.First, "operation", ev.Input.Operation, "second", ev.Input.Second, "result", ev.Outcome.String())
	return nil
}

// RunTable runs every decision table in a wiki page.
func (u *UseCase) RunTable(ctx context.Context, page string) (*table.Report, error) {
	if u.runner == nil {
		return nil, ErrNoRunner
	}
	rep, err := u.runner.RunPage(ctx, page)
	if err != nil {
		return nil, err
	}
	observeReport(rep)
	u.log.Info("tables executed", "tables", len(rep.Tables), "summary", rep.Counts.String())
	return rep, nil
}
