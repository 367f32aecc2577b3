package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	"github.com/klagrida/fitnesse-calculator-demo/internal/api/grpc/calculator"
	"github.com/klagrida/fitnesse-calculator-demo/internal/api/grpc/calculatorv1"
	"github.com/klagrida/fitnesse-calculator-demo/internal/api/grpc/interceptors"
	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

// Config holds gRPC settings. Variables: CALCULATOR_GRPC_*.
type Config struct {
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	Host    string `envconfig:"HOST" default:"0.0.0.0"`
	Port    string `envconfig:"PORT" default:"9090"`
}

// Addr returns "host:port".
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server registers the calculator service and serves it.
type Server struct {
	grpc *grpc.Server
	addr string
}

// NewServer creates the gRPC server with the logging interceptor.
func NewServer(addr string, uc ports.ICalculatorUseCase, log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)))
	calculatorv1.RegisterCalculatorServiceServer(s, calculator.New(uc, log))
	return &Server{grpc: s, addr: addr}
}

// Start listens on the configured address and blocks until Stop.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve accepts connections on lis and blocks until Stop.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop stops gracefully, or hard when ctx ends first.
func (s *Server) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
