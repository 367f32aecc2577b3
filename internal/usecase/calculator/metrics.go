package calculator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
)

var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_evaluations_total",
			Help: "Total number of evaluations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_cache_lookups_total",
			Help: "Result cache lookups by result",
		},
		[]string{"result"},
	)

	tableCellsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_table_cells_total",
			Help: "Decision table cells checked, by status",
		},
		[]string{"status"},
	)
)

func observeReport(rep *table.Report) {
	tableCellsTotal.WithLabelValues(string(table.StatusRight)).Add(float64(rep.Counts.Right))
	tableCellsTotal.WithLabelValues(string(table.StatusWrong)).Add(float64(rep.Counts.Wrong))
	tableCellsTotal.WithLabelValues(string(table.StatusIgnored)).Add(float64(rep.Counts.Ignored))
	tableCellsTotal.WithLabelValues("exception").Add(float64(rep.Counts.Exceptions))
}
