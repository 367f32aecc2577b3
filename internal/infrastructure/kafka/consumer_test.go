package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeReader replays msgs and then returns io.EOF.
type fakeReader struct {
	msgs      []kafka.Message
	committed []int64
}

func (f *fakeReader) FetchMessage(context.Context) (kafka.Message, error) {
	if len(f.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func (f *fakeReader) Close() error { return nil }

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICalculatorUseCase(ctrl)

	ok := domain.Evaluation{Input: domain.Input{First: 5, Second: 3, Operation: "add"}, Outcome: domain.Value(8)}
	failing := domain.Evaluation{Input: domain.Input{First: 10, Second: 0, Operation: "divide"}, Outcome: domain.DivisionByZero()}
	okData, err := json.Marshal(ok)
	require.NoError(t, err)
	failingData, err := json.Marshal(failing)
	require.NoError(t, err)

	r := &fakeReader{msgs: []kafka.Message{
		{Offset: 1, Value: okData},
		{Offset: 2, Value: []byte("not json")},
		{Offset: 3, Value: failingData},
	}}

	gomock.InOrder(
		uc.EXPECT().HandleEvaluationEvent(gomock.Any(), ok).Return(nil),
		uc.EXPECT().HandleEvaluationEvent(gomock.Any(), failing).Return(errors.New("click down")).Times(2),
		uc.EXPECT().HandleEvaluationEvent(gomock.Any(), failing).Return(nil),
	)

	c := &Consumer{r: r, uc: uc, log: newTestLogger(), retryDelay: time.Millisecond}
	err = c.Run(context.Background())

	assert.ErrorIs(t, err, io.EOF)
	// offset 3 is committed only after the retries succeed
	assert.Equal(t, []int64{1, 2, 3}, r.committed)
}

func TestConsumer_RejectedMessageIsNeverSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICalculatorUseCase(ctrl)

	first := domain.Evaluation{Input: domain.Input{First: 1, Second: 1, Operation: "add"}, Outcome: domain.Value(2)}
	second := domain.Evaluation{Input: domain.Input{First: 2, Second: 2, Operation: "add"}, Outcome: domain.Value(4)}
	firstData, err := json.Marshal(first)
	require.NoError(t, err)
	secondData, err := json.Marshal(second)
	require.NoError(t, err)

	r := &fakeReader{msgs: []kafka.Message{
		{Offset: 1, Value: firstData},
		{Offset: 2, Value: secondData},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	attempts := 0
	uc.EXPECT().HandleEvaluationEvent(gomock.Any(), first).DoAndReturn(func(context.Context, domain.Evaluation) error {
		attempts++
		if attempts == 3 {
			cancel()
		}
		return errors.New("click down")
	}).MinTimes(3)

	c := &Consumer{r: r, uc: uc, log: newTestLogger(), retryDelay: time.Millisecond}
	err = c.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	// the later offset was never fetched, so nothing moved past the rejected one
	assert.Empty(t, r.committed)
	assert.Len(t, r.msgs, 1)
}

func TestConsumer_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Consumer{r: &fakeReader{}, log: newTestLogger()}
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestConfig_BrokersSlice(t *testing.T) {
	cfg := &Config{Brokers: "a:9092, b:9092,,"}
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.brokersSlice())

	var empty *Config
	assert.Equal(t, []string{"localhost:9092"}, empty.brokersSlice())
}
