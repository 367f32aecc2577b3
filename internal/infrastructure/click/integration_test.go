package click

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/testutil"
)

func TestIntegration_EvaluationWriter(t *testing.T) {
	testutil.SkipIfShort(t)
	ctx := context.Background()

	c, err := testutil.NewClickHouseContainer(ctx)
	require.NoError(t, err)
	testutil.TerminateOnCleanup(t, c.ClickHouseContainer)

	client, err := New(&Config{
		Host:     c.Host,
		Port:     c.Port,
		Database: c.Database,
		Username: c.User,
		Password: c.Password,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Close()
	})

	writer := NewEvaluationWriter(client)
	require.NoError(t, writer.EnsureTable(ctx))

	require.NoError(t, writer.WriteEvaluation(ctx, domain.Evaluation{
		Input:     domain.Input{First: 10, Second: 5, Operation: "ADD"},
		Outcome:   domain.Value(15),
		Timestamp: time.Now(),
	}))
	require.NoError(t, writer.WriteEvaluation(ctx, domain.Evaluation{
		Input:     domain.Input{First: 10, Second: 0, Operation: "divide"},
		Outcome:   domain.DivisionByZero(),
		Timestamp: time.Now(),
	}))

	var count uint64
	err = client.DB().QueryRowContext(ctx,
		"SELECT count() FROM "+evaluationsAnalyticsTable+" WHERE kind = 'add' AND result = 15").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	err = client.DB().QueryRowContext(ctx,
		"SELECT count() FROM "+evaluationsAnalyticsTable+" WHERE result IS NULL").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
	assert.NoError(t, client.Ping(ctx))
}
