package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
)

type remoteOptions struct {
	url     string
	wait    time.Duration
	timeout time.Duration
}

func newRemoteCmd() *cobra.Command {
	opts := remoteOptions{}
	cmd := &cobra.Command{
		Use:   "remote <page...>",
		Short: "Post wiki pages to a running calculator server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := expandPages(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			client := &http.Client{Timeout: opts.timeout}
			if err := waitReady(ctx, client, opts.url, opts.wait); err != nil {
				return err
			}
			return postPages(ctx, cmd.OutOrStdout(), client, opts.url, pages)
		},
	}
	cmd.Flags().StringVar(&opts.url, "url", "http://localhost:8080", "server base URL")
	cmd.Flags().DurationVar(&opts.wait, "wait", 30*time.Second, "how long to wait for /readiness")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "per request timeout")
	return cmd
}

// waitReady polls GET /readiness until it answers 200 or wait elapses.
func waitReady(ctx context.Context, client *http.Client, base string, wait time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	url := strings.TrimRight(base, "/") + "/readiness"
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("server %s not ready: %w", base, ctx.Err())
		case <-ticker.C:
		}
	}
}

type runTableResponse struct {
	Passed  bool          `json:"passed"`
	Summary string        `json:"summary"`
	Report  *table.Report `json:"report"`
	Error   string        `json:"error"`
}

func postPages(ctx context.Context, out io.Writer, client *http.Client, base string, pages []string) error {
	url := strings.TrimRight(base, "/") + "/api/v1/tables/run"
	total := &table.Report{}
	for _, p := range pages {
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rep, err := postPage(ctx, client, url, data)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		fmt.Fprintln(out, p)
		if err := rep.Write(out); err != nil {
			return err
		}
		total.Merge(rep)
	}
	if len(pages) > 1 {
		fmt.Fprintf(out, "total: %s\n", total.Counts)
	}
	if !total.Passed() {
		return errFailed
	}
	return nil
}

func postPage(ctx context.Context, client *http.Client, url string, page []byte) (*table.Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(page)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body runTableResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusUnprocessableEntity:
	default:
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Error)
	}
	if body.Report == nil {
		return nil, fmt.Errorf("server returned no report")
	}
	return body.Report, nil
}
