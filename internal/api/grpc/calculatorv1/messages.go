// Package calculatorv1 is the calculator.v1 RPC contract: messages, service
// descriptor and client. Messages travel as JSON.
package calculatorv1

// CalculateRequest is one row to evaluate.
type CalculateRequest struct {
	First     float64 `json:"first"`
	Second    float64 `json:"second"`
	Operation string  `json:"operation"`
}

// CalculateResponse carries the rendered outcome. HasResult is false for diagnostics
// and non-finite numbers.
type CalculateResponse struct {
	Result    float64 `json:"result"`
	HasResult bool    `json:"has_result"`
	Display   string  `json:"display"`
	Error     string  `json:"error,omitempty"`
}

// HistoryRequest is empty.
type HistoryRequest struct{}

// HistoryItem is one stored evaluation.
type HistoryItem struct {
	ID                int64   `json:"id"`
	First             float64 `json:"first"`
	Second            float64 `json:"second"`
	Operation         string  `json:"operation"`
	Display           string  `json:"display"`
	Error             string  `json:"error,omitempty"`
	TimestampUnixNano int64   `json:"timestamp_unix_nano"`
}

// HistoryResponse lists evaluations, newest first.
type HistoryResponse struct {
	Items []*HistoryItem `json:"items"`
}
