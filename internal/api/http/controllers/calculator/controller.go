package calculator

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

const maxPageBytes = 1 << 20

// Controller serves calculate, history and decision table routes.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New creates the calculator controller.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes implements http.Controller.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/calculate", c.calculate)
	api.GET("/history", c.history)
	api.POST("/tables/run", c.runTable)
}

// @Summary Evaluate one row
// @Description Takes two numbers and an operation name (add, subtract, multiply, divide; any case).
// @Description Division by zero and unknown operations answer 200 with error set.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Row"
// @Success 200 {object} CalculateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/calculate [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	ev, err := c.uc.Calculate(ctx.Request.Context(), req.Input())
	if err != nil {
		c.log.Error("calculate failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newCalculateResponse(ev.Outcome))
}

// @Summary Evaluation history
// @Tags calculator
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, ev := range list {
		items[i] = newHistoryItem(ev)
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

// @Summary Run decision tables
// @Description Body is a wiki page. 200 when every row passes, 422 otherwise.
// @Tags tables
// @Accept plain
// @Produce json
// @Success 200 {object} RunTableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} RunTableResponse
// @Router /api/v1/tables/run [post]
func (c *Controller) runTable(ctx *gin.Context) {
	page, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxPageBytes+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "read body: " + err.Error()})
		return
	}
	if len(page) > maxPageBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "page too large"})
		return
	}

	rep, err := c.uc.RunTable(ctx.Request.Context(), string(page))
	if err != nil {
		c.log.Warn("run table failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	status := http.StatusOK
	if !rep.Passed() {
		status = http.StatusUnprocessableEntity
	}
	ctx.JSON(status, RunTableResponse{Passed: rep.Passed(), Summary: rep.Counts.String(), Report: rep})
}
