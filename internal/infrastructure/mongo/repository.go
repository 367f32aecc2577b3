package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

var _ ports.IEvaluationRepository = (*EvaluationRepo)(nil)

// evaluationDoc is one document of the evaluations collection. Result is nil for
// diagnostics. Documents carry no integer ID, so domain IDs read back as 0.
type evaluationDoc struct {
	First      float64   `bson:"first"`
	Second     float64   `bson:"second"`
	Operation  string    `bson:"operation"`
	Result     *float64  `bson:"result,omitempty"`
	Diagnostic string    `bson:"diagnostic,omitempty"`
	CreatedAt  time.Time `bson:"created_at"`
}

func toDoc(ev domain.Evaluation) evaluationDoc {
	doc := evaluationDoc{
		First:      ev.Input.First,
		Second:     ev.Input.Second,
		Operation:  ev.Input.Operation,
		Diagnostic: ev.Outcome.Message(),
		CreatedAt:  ev.Timestamp,
	}
	if v, ok := ev.Outcome.Number(); ok {
		doc.Result = &v
	}
	return doc
}

func (d evaluationDoc) toDomain() domain.Evaluation {
	ev := domain.Evaluation{
		Input:     domain.Input{First: d.First, Second: d.Second, Operation: d.Operation},
		Timestamp: d.CreatedAt,
	}
	if d.Result != nil {
		ev.Outcome = domain.Value(*d.Result)
	} else {
		ev.Outcome = domain.Diagnostic(d.Diagnostic)
	}
	return ev
}

// EvaluationRepo implements ports.IEvaluationRepository on MongoDB.
type EvaluationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewEvaluationRepo returns the evaluation repository.
func NewEvaluationRepo(client *Client, log *slog.Logger) *EvaluationRepo {
	return &EvaluationRepo{client: client, log: log}
}

// SaveEvaluation inserts one document.
func (r *EvaluationRepo) SaveEvaluation(ctx context.Context, ev domain.Evaluation) error {
	_, err := r.client.Coll().InsertOne(ctx, toDoc(ev))
	if err != nil {
		r.log.Debug("SaveEvaluation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory returns evaluations, newest first.
func (r *EvaluationRepo) GetHistory(ctx context.Context) ([]domain.Evaluation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []evaluationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Evaluation, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toDomain())
	}
	return list, nil
}

// Ping checks the server.
func (r *EvaluationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
