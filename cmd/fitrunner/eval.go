package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/klagrida/fitnesse-calculator-demo/internal/api/grpc/calculatorv1"
	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/fixture"
)

func newEvalCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "eval <first> <second> <operation>",
		Short: "Evaluate one row, locally or over gRPC with --grpc",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("first number: %w", err)
			}
			second, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("second number: %w", err)
			}
			in := domain.Input{First: first, Second: second, Operation: args[2]}

			if addr == "" {
				fmt.Fprintln(cmd.OutOrStdout(), fixture.Evaluate(in).String())
				return nil
			}
			display, err := evalRemote(cmd.Context(), addr, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display)
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "grpc", "", "calculator gRPC address (host:port)")
	return cmd
}

func evalRemote(ctx context.Context, addr string, in domain.Input) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return "", err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	resp, err := calculatorv1.NewCalculatorServiceClient(conn).Calculate(ctx, &calculatorv1.CalculateRequest{
		First:     in.First,
		Second:    in.Second,
		Operation: in.Operation,
	})
	if err != nil {
		return "", err
	}
	return resp.Display, nil
}
