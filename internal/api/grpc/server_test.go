package grpc

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/klagrida/fitnesse-calculator-demo/internal/api/grpc/calculatorv1"
	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func startServer(t *testing.T, uc *mocks.MockICalculatorUseCase) calculatorv1.CalculatorServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := NewServer("bufnet", uc, newTestLogger())
	go func() {
		_ = srv.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})
	return calculatorv1.NewCalculatorServiceClient(conn)
}

func TestCalculatorService(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	t.Run("calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICalculatorUseCase(ctrl)
		client := startServer(t, uc)
		ctx := context.Background()

		in := domain.Input{First: 5, Second: 3, Operation: "ADD"}
		uc.EXPECT().Calculate(gomock.Any(), in).Return(&domain.Evaluation{Input: in, Outcome: domain.Value(8)}, nil)
		resp, err := client.Calculate(ctx, &calculatorv1.CalculateRequest{First: 5, Second: 3, Operation: "ADD"})
		require.NoError(t, err)
		assert.True(t, resp.HasResult)
		assert.Equal(t, 8.0, resp.Result)
		assert.Equal(t, "8.0", resp.Display)

		in = domain.Input{First: 10, Second: 0, Operation: "divide"}
		uc.EXPECT().Calculate(gomock.Any(), in).Return(&domain.Evaluation{Input: in, Outcome: domain.DivisionByZero()}, nil)
		resp, err = client.Calculate(ctx, &calculatorv1.CalculateRequest{First: 10, Second: 0, Operation: "divide"})
		require.NoError(t, err)
		assert.False(t, resp.HasResult)
		assert.Equal(t, "error: Cannot divide by zero", resp.Error)

		uc.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		_, err = client.Calculate(ctx, &calculatorv1.CalculateRequest{Operation: "add"})
		assert.Equal(t, codes.Internal, status.Code(err))

		now := time.Now()
		uc.EXPECT().History(gomock.Any()).Return([]domain.Evaluation{
			{ID: 1 << 40, Input: domain.Input{First: 1, Second: 2, Operation: "add"}, Outcome: domain.Value(3), Timestamp: now},
		}, nil)
		hist, err := client.History(ctx, &calculatorv1.HistoryRequest{})
		require.NoError(t, err)
		require.Len(t, hist.Items, 1)
		assert.Equal(t, int64(1<<40), hist.Items[0].ID)
		assert.Equal(t, "3.0", hist.Items[0].Display)
		assert.Equal(t, now.UnixNano(), hist.Items[0].TimestampUnixNano)
	})
}

func TestUnimplemented(t *testing.T) {
	var s calculatorv1.UnimplementedCalculatorServiceServer
	_, err := s.Calculate(context.Background(), &calculatorv1.CalculateRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
