package calculator

import (
	"context"
	"log/slog"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/klagrida/fitnesse-calculator-demo/internal/api/grpc/calculatorv1"
	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

// Server implements calculatorv1.CalculatorServiceServer on top of the use case.
type Server struct {
	calculatorv1.UnimplementedCalculatorServiceServer
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New creates the gRPC calculator service.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// Calculate evaluates one row. Diagnostics are successful responses with Error set.
func (s *Server) Calculate(ctx context.Context, req *calculatorv1.CalculateRequest) (*calculatorv1.CalculateResponse, error) {
	ev, err := s.uc.Calculate(ctx, domain.Input{
		First:     req.First,
		Second:    req.Second,
		Operation: req.Operation,
	})
	if err != nil {
		s.log.Error("calculate failed", "error", err)
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	resp := &calculatorv1.CalculateResponse{
		Display: ev.Outcome.String(),
		Error:   ev.Outcome.Message(),
	}
	if v, ok := ev.Outcome.Number(); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		resp.Result = v
		resp.HasResult = true
	}
	return resp, nil
}

// History returns stored evaluations.
func (s *Server) History(ctx context.Context, _ *calculatorv1.HistoryRequest) (*calculatorv1.HistoryResponse, error) {
	list, err := s.uc.History(ctx)
	if err != nil {
		s.log.Error("history failed", "error", err)
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	items := make([]*calculatorv1.HistoryItem, len(list))
	for i, ev := range list {
		items[i] = &calculatorv1.HistoryItem{
			ID:                int64(ev.ID),
			First:             ev.Input.First,
			Second:            ev.Input.Second,
			Operation:         ev.Input.Operation,
			Display:           ev.Outcome.String(),
			Error:             ev.Outcome.Message(),
			TimestampUnixNano: ev.Timestamp.UnixNano(),
		}
	}
	return &calculatorv1.HistoryResponse{Items: items}, nil
}
