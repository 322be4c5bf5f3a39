package handler

import (
	"errors"
	"net/http"
	"strconv"

	"tradegate/internal/domain"
	"tradegate/internal/execution"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// AuthorizeTrade godoc
// @Summary      Dry-run the authorization gate
// @Description  Runs every check against the intent without executing anything; a denial is data, not an error
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        intent  body  domain.TradeIntent  true  "Trade intent"
// @Success      200  {object}  domain.GateResult
// @Failure      400  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/trades/authorize [post]
func (h *Handler) AuthorizeTrade(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.authorize-trade")
	defer span.End()

	var intent domain.TradeIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.String("symbol", intent.Symbol))

	result, err := h.auth.Authorize(ctx, intent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExecuteTrade godoc
// @Summary      Authorize and execute a trade
// @Description  Runs the gate and records the execution when allowed; the record stays undoable for 30 seconds
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        intent  body  domain.TradeIntent  true  "Trade intent"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/trades/execute [post]
func (h *Handler) ExecuteTrade(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.execute-trade")
	defer span.End()

	var intent domain.TradeIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.String("symbol", intent.Symbol))

	rec, result, err := h.auth.Execute(ctx, intent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !result.Allowed {
		c.JSON(http.StatusOK, gin.H{"result": result})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"record": rec,
	})
}

// UndoTrade godoc
// @Summary      Undo a recorded execution
// @Description  Reverses an execution while its 30-second window is still open
// @Tags         trades
// @Produce      json
// @Param        id  path  string  true  "Execution ID"
// @Success      200  {object}  domain.ExecutionRecord
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/trades/{id}/undo [post]
func (h *Handler) UndoTrade(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.undo-trade")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(attribute.String("execution_id", id))

	rec, err := h.auth.Undo(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, execution.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, execution.ErrUndoExpired), errors.Is(err, execution.ErrAlreadyUndone):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RecordOutcome godoc
// @Summary      Record a closed trade outcome
// @Description  Appends a win or loss to the outcome stream that drives the emotional read
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        trade  body  domain.TradeRecord  true  "Closed trade"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/trades/outcome [post]
func (h *Handler) RecordOutcome(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.record-outcome")
	defer span.End()

	var trade domain.TradeRecord
	if err := c.ShouldBindJSON(&trade); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.RecordOutcome(ctx, trade); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

// ListExecutions godoc
// @Summary      List recent executions
// @Description  Returns the execution window, most recent first
// @Tags         trades
// @Produce      json
// @Param        limit  query  int  false  "Max records (default 50)"  default(50)
// @Success      200  {object}  map[string]interface{}
// @Security     ApiKeyAuth
// @Router       /api/trades [get]
func (h *Handler) ListExecutions(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.list-executions")
	defer span.End()

	limit := 50
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	c.JSON(http.StatusOK, gin.H{"executions": h.auth.Recent(limit)})
}

// GetDayStats godoc
// @Summary      Get today's aggregates
// @Description  Trade count, realized PnL, loss streak, and error count for the current day
// @Tags         trades
// @Produce      json
// @Param        include_undone  query  bool  false  "Count undone executions (default true)"  default(true)
// @Success      200  {object}  domain.DayStats
// @Security     ApiKeyAuth
// @Router       /api/trades/stats [get]
func (h *Handler) GetDayStats(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-day-stats")
	defer span.End()

	includeUndone := true
	if v := c.Query("include_undone"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			includeUndone = b
		}
	}

	c.JSON(http.StatusOK, h.auth.Stats(ctx, includeUndone))
}

// GetAuditLog godoc
// @Summary      Get recent audit events
// @Description  Returns the newest entries of the append-only compliance trail
// @Tags         audit
// @Produce      json
// @Param        limit  query  int  false  "Max events (default 50)"  default(50)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/audit [get]
func (h *Handler) GetAuditLog(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-audit-log")
	defer span.End()

	limit := 50
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	events, err := h.auth.AuditLog(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
