package pg

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newMockRepo(t *testing.T) (*EvaluationRepo, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
	})
	return NewEvaluationRepo(&DB{conn}, newTestLogger()), mock
}

func TestEvaluationRepo_SaveValue(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO evaluations").
		WithArgs(5.0, 3.0, "add", 8.0, nil, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveEvaluation(context.Background(), domain.Evaluation{
		Input:     domain.Input{First: 5, Second: 3, Operation: "add"},
		Outcome:   domain.Value(8),
		Timestamp: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepo_SaveDiagnostic(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO evaluations").
		WithArgs(10.0, 0.0, "divide", nil, "error: Cannot divide by zero", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveEvaluation(context.Background(), domain.Evaluation{
		Input:     domain.Input{First: 10, Second: 0, Operation: "divide"},
		Outcome:   domain.DivisionByZero(),
		Timestamp: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepo_SaveError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO evaluations").WillReturnError(errors.New("boom"))

	err := repo.SaveEvaluation(context.Background(), domain.Evaluation{Outcome: domain.Value(1)})
	assert.EqualError(t, err, "boom")
}

func TestEvaluationRepo_GetHistory(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "first", "second", "operation", "result", "diagnostic", "created_at"}).
		AddRow(2, 10.0, 0.0, "divide", nil, "error: Cannot divide by zero", now).
		AddRow(1, 5.0, 3.0, "ADD", 8.0, nil, now.Add(-time.Minute))
	mock.ExpectQuery("SELECT id, first, second, operation, result, diagnostic, created_at").WillReturnRows(rows)

	list, err := repo.GetHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, "error: Cannot divide by zero", list[0].Outcome.String())
	assert.Equal(t, domain.Input{First: 5, Second: 3, Operation: "ADD"}, list[1].Input)
	assert.Equal(t, domain.Value(8), list[1].Outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluationRepo_Ping(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectPing()
	assert.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, repo.Ping(context.Background()))
}

func TestMigrate(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS evaluations").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, Migrate(context.Background(), &DB{conn}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
