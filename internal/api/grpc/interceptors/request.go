package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor logs method, latency and status code of every unary call.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		latency := time.Since(start)

		attrs := []any{"method", info.FullMethod, "latency_ms", latency.Milliseconds()}
		if err != nil {
			st := status.Convert(err)
			attrs = append(attrs, "grpc_code", st.Code().String(), "error", st.Message())
			log.Warn("grpc request", attrs...)
			return resp, err
		}
		attrs = append(attrs, "grpc_code", codes.OK.String())
		log.Info("grpc request", attrs...)
		return resp, nil
	}
}
