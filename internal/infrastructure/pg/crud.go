package pg

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

var _ ports.IEvaluationRepository = (*EvaluationRepo)(nil)

// EvaluationRepo implements ports.IEvaluationRepository on PostgreSQL. Numeric
// outcomes go to result, diagnostics to diagnostic; exactly one is non-NULL.
type EvaluationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewEvaluationRepo returns the evaluation repository.
func NewEvaluationRepo(db *DB, log *slog.Logger) *EvaluationRepo {
	return &EvaluationRepo{db: db, log: log}
}

// SaveEvaluation inserts one evaluation.
func (r *EvaluationRepo) SaveEvaluation(ctx context.Context, ev domain.Evaluation) error {
	var (
		result     sql.NullFloat64
		diagnostic sql.NullString
	)
	if v, ok := ev.Outcome.Number(); ok {
		result = sql.NullFloat64{Float64: v, Valid: true}
	} else {
		diagnostic = sql.NullString{String: ev.Outcome.Message(), Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO evaluations (first, second, operation, result, diagnostic, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ev.Input.First, ev.Input.Second, ev.Input.Operation, result, diagnostic, ev.Timestamp)
	if err != nil {
		r.log.Debug("SaveEvaluation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory returns evaluations, newest first.
func (r *EvaluationRepo) GetHistory(ctx context.Context) ([]domain.Evaluation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, first, second, operation, result, diagnostic, created_at
		 FROM evaluations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Evaluation
	for rows.Next() {
		var (
			ev         domain.Evaluation
			result     sql.NullFloat64
			diagnostic sql.NullString
		)
		err := rows.Scan(&ev.ID, &ev.Input.First, &ev.Input.Second, &ev.Input.Operation, &result, &diagnostic, &ev.Timestamp)
		if err != nil {
			return nil, err
		}
		if diagnostic.Valid {
			ev.Outcome = domain.Diagnostic(diagnostic.String)
		} else {
			ev.Outcome = domain.Value(result.Float64)
		}
		list = append(list, ev)
	}
	return list, rows.Err()
}

// Ping checks the database (readiness).
func (r *EvaluationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
