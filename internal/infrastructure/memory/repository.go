// Package memory keeps evaluations and cached results in process memory. It backs
// STORAGE=memory and the local table runner.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

var _ ports.IEvaluationRepository = (*EvaluationRepo)(nil)

// EvaluationRepo is a mutex-guarded slice of evaluations.
type EvaluationRepo struct {
	mu     sync.RWMutex
	nextID int
	items  []domain.Evaluation
}

// NewEvaluationRepo returns an empty repository.
func NewEvaluationRepo() *EvaluationRepo {
	return &EvaluationRepo{}
}

// SaveEvaluation appends ev with the next ID.
func (r *EvaluationRepo) SaveEvaluation(_ context.Context, ev domain.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ev.ID = r.nextID
	r.items = append(r.items, ev)
	return nil
}

// GetHistory returns a copy of the stored evaluations, newest first.
func (r *EvaluationRepo) GetHistory(_ context.Context) ([]domain.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Evaluation, len(r.items))
	copy(list, r.items)
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].Timestamp.After(list[j].Timestamp)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

// Ping always succeeds.
func (r *EvaluationRepo) Ping(context.Context) error {
	return nil
}
