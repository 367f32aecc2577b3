package pg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/testutil"
)

func setupPostgres(t *testing.T) *EvaluationRepo {
	t.Helper()
	testutil.SkipIfShort(t)

	ctx := context.Background()
	c, err := testutil.NewPostgresContainer(ctx)
	require.NoError(t, err)
	testutil.TerminateOnCleanup(t, c.PostgresContainer)

	db, err := New(&Config{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		DBName:   c.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	require.NoError(t, Migrate(ctx, db))

	return NewEvaluationRepo(db, newTestLogger())
}

func TestIntegration_EvaluationRepo(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, repo.SaveEvaluation(ctx, domain.Evaluation{
		Input:     domain.Input{First: 5, Second: 3, Operation: "add"},
		Outcome:   domain.Value(8),
		Timestamp: now.Add(-time.Minute),
	}))
	require.NoError(t, repo.SaveEvaluation(ctx, domain.Evaluation{
		Input:     domain.Input{First: 10, Second: 0, Operation: "divide"},
		Outcome:   domain.DivisionByZero(),
		Timestamp: now,
	}))

	list, err := repo.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "error: Cannot divide by zero", list[0].Outcome.String())
	assert.Equal(t, "8.0", list[1].Outcome.String())
	assert.Equal(t, "add", list[1].Input.Operation)
	assert.NoError(t, repo.Ping(ctx))
}
