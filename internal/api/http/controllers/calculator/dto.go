package calculator

import (
	"math"
	"time"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
)

// CalculateRequest is the body of POST /api/v1/calculate. Missing numbers are zero.
type CalculateRequest struct {
	First     float64 `json:"first"`
	Second    float64 `json:"second"`
	Operation string  `json:"operation"`
}

// Input converts the request to a domain input.
func (r CalculateRequest) Input() domain.Input {
	return domain.Input{First: r.First, Second: r.Second, Operation: r.Operation}
}

// CalculateResponse carries an outcome. Result is null for diagnostics and for
// non-finite numbers; Display always holds the table rendering.
type CalculateResponse struct {
	Result  *float64 `json:"result"`
	Display string   `json:"display"`
	Error   string   `json:"error,omitempty"`
}

// HistoryItem is one stored evaluation.
type HistoryItem struct {
	ID        int       `json:"id"`
	First     float64   `json:"first"`
	Second    float64   `json:"second"`
	Operation string    `json:"operation"`
	Result    *float64  `json:"result"`
	Display   string    `json:"display"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse lists evaluations, newest first.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// ErrorResponse is returned on request and server errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RunTableResponse is the result of POST /api/v1/tables/run.
type RunTableResponse struct {
	Passed  bool          `json:"passed"`
	Summary string        `json:"summary"`
	Report  *table.Report `json:"report"`
}

func newCalculateResponse(o domain.Outcome) CalculateResponse {
	resp := CalculateResponse{Display: o.String(), Error: o.Message()}
	if v, ok := finite(o); ok {
		resp.Result = &v
	}
	return resp
}

func newHistoryItem(ev domain.Evaluation) HistoryItem {
	item := HistoryItem{
		ID:        ev.ID,
		First:     ev.Input.First,
		Second:    ev.Input.Second,
		Operation: ev.Input.Operation,
		Display:   ev.Outcome.String(),
		Error:     ev.Outcome.Message(),
		Timestamp: ev.Timestamp,
	}
	if v, ok := finite(ev.Outcome); ok {
		item.Result = &v
	}
	return item
}

func finite(o domain.Outcome) (float64, bool) {
	v, ok := o.Number()
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
