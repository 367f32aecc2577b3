package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/klagrida/fitnesse-calculator-demo/internal/api/http"
	"github.com/klagrida/fitnesse-calculator-demo/internal/api/http/controllers/calculator"
	"github.com/klagrida/fitnesse-calculator-demo/internal/api/http/controllers/system"
	"github.com/klagrida/fitnesse-calculator-demo/internal/fixture"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/memory"
	"github.com/klagrida/fitnesse-calculator-demo/internal/pkg/logger"
	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
	calcUsecase "github.com/klagrida/fitnesse-calculator-demo/internal/usecase/calculator"
)

const failingPage = `!|CalculatorFixture|
|first number|second number|operation|result?|
|2|2|add|5.0|
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writePage(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.wiki")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_AcceptancePages(t *testing.T) {
	out, err := execute(t, "run", filepath.Join("..", "..", "acceptance", "*.wiki"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "0 wrong, 0 ignored, 0 exceptions")
}

func TestRun_Failure(t *testing.T) {
	out, err := execute(t, "run", writePage(t, failingPage))
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "result? expected [5.0] actual [4.0]")
	assert.Contains(t, out, "0 right, 1 wrong, 0 ignored, 0 exceptions")
}

func TestRun_MissingFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "nope.wiki"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errFailed)
}

func TestEval_Local(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"5", "3", "ADD"}, want: "8.0\n"},
		{args: []string{"10", "0", "divide"}, want: "error: Cannot divide by zero\n"},
		{args: []string{"5", "3", "modulo"}, want: "Unknown operation: modulo\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, append([]string{"eval"}, tt.args...)...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out)
	}

	_, err := execute(t, "eval", "five", "3", "add")
	assert.ErrorContains(t, err, "first number")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.NewWithWriter(&bytes.Buffer{}, "error")
	repo := memory.NewEvaluationRepo()
	reg := table.NewRegistry()
	fixture.Register(reg)
	uc := calcUsecase.New(repo, memory.NewCache(), nil, nil, table.NewRunner(reg, log), log)

	srv := apihttp.NewServer(apihttp.ServerConfig{})
	srv.AddController(system.New(repo, log), calculator.New(uc, log))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestRemote(t *testing.T) {
	ts := newTestServer(t)
	acceptance := filepath.Join("..", "..", "acceptance", "*.wiki")

	out, err := execute(t, "remote", "--url", ts.URL, acceptance)
	require.NoError(t, err, out)
	assert.Contains(t, out, "0 wrong, 0 ignored, 0 exceptions")

	out, err = execute(t, "remote", "--url", ts.URL, writePage(t, failingPage))
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "1 wrong")
}

func TestRemote_NotReady(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL
	ts.Close()

	_, err := execute(t, "remote", "--url", url, "--wait", "600ms", writePage(t, failingPage))
	assert.ErrorContains(t, err, "not ready")
}
