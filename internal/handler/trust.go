package handler

import (
	"errors"
	"net/http"

	"tradegate/internal/domain"
	"tradegate/internal/trust"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type trustLevelRequest struct {
	Level string `json:"level" example:"trust"`
}

type pauseRequest struct {
	Paused *bool `json:"paused"`
}

type emergencyStopRequest struct {
	Active *bool `json:"active"`
}

// GetTrustStatus godoc
// @Summary      Get the trust state machine snapshot
// @Description  Returns the current level, interlocks, and any pending elevation
// @Tags         trust
// @Produce      json
// @Success      200  {object}  domain.TrustStatus
// @Security     ApiKeyAuth
// @Router       /api/trust [get]
func (h *Handler) GetTrustStatus(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-trust-status")
	defer span.End()

	c.JSON(http.StatusOK, h.auth.Status(ctx))
}

// RequestTrustLevel godoc
// @Summary      Request a trust level change
// @Description  Downgrades commit immediately; elevations into auto-execution return a pending confirmation
// @Tags         trust
// @Accept       json
// @Produce      json
// @Param        request  body  trustLevelRequest  true  "Target level: off, confirm, trust, autopilot"
// @Success      200  {object}  domain.TrustStatus
// @Failure      400  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/trust [put]
func (h *Handler) RequestTrustLevel(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.request-trust-level")
	defer span.End()

	var req trustLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.String("level", req.Level))

	status, err := h.auth.RequestLevel(ctx, domain.TrustLevel(req.Level))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// ConfirmTrustLevel godoc
// @Summary      Confirm a pending trust elevation
// @Tags         trust
// @Produce      json
// @Success      200  {object}  domain.TrustStatus
// @Failure      409  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/trust/confirm [post]
func (h *Handler) ConfirmTrustLevel(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.confirm-trust-level")
	defer span.End()

	status, err := h.auth.ConfirmLevel(ctx)
	if err != nil {
		if errors.Is(err, trust.ErrNoPending) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// CancelTrustLevel godoc
// @Summary      Cancel a pending trust elevation
// @Tags         trust
// @Produce      json
// @Success      200  {object}  domain.TrustStatus
// @Security     ApiKeyAuth
// @Router       /api/trust/cancel [post]
func (h *Handler) CancelTrustLevel(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.cancel-trust-level")
	defer span.End()

	c.JSON(http.StatusOK, h.auth.CancelLevel(ctx))
}

// SetPaused godoc
// @Summary      Pause or resume auto-execution
// @Tags         trust
// @Accept       json
// @Produce      json
// @Param        request  body  pauseRequest  true  "Pause flag"
// @Success      200  {object}  domain.TrustStatus
// @Failure      400  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/trust/pause [put]
func (h *Handler) SetPaused(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.set-paused")
	defer span.End()

	var req pauseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Paused == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must carry a paused flag"})
		return
	}

	if err := h.auth.SetPaused(ctx, *req.Paused); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.auth.Status(ctx))
}

// SetEmergencyStop godoc
// @Summary      Latch or release the emergency stop
// @Description  While latched, every authorization request denies immediately
// @Tags         trust
// @Accept       json
// @Produce      json
// @Param        request  body  emergencyStopRequest  true  "Latch flag"
// @Success      200  {object}  domain.TrustStatus
// @Failure      400  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/trust/emergency-stop [post]
func (h *Handler) SetEmergencyStop(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.set-emergency-stop")
	defer span.End()

	var req emergencyStopRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must carry an active flag"})
		return
	}

	h.auth.SetEmergencyStop(ctx, *req.Active)
	c.JSON(http.StatusOK, h.auth.Status(ctx))
}

// GetLimits godoc
// @Summary      Get the trading limits
// @Tags         limits
// @Produce      json
// @Success      200  {object}  domain.TradingLimits
// @Security     ApiKeyAuth
// @Router       /api/limits [get]
func (h *Handler) GetLimits(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-limits")
	defer span.End()

	c.JSON(http.StatusOK, h.auth.Limits(ctx))
}

// UpdateLimits godoc
// @Summary      Update the trading limits
// @Description  Validates and persists new caps; invalid hour windows reset to the default
// @Tags         limits
// @Accept       json
// @Produce      json
// @Param        limits  body  domain.TradingLimits  true  "New caps"
// @Success      200  {object}  domain.TradingLimits
// @Failure      400  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/limits [put]
func (h *Handler) UpdateLimits(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.update-limits")
	defer span.End()

	var limits domain.TradingLimits
	if err := c.ShouldBindJSON(&limits); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.auth.UpdateLimits(ctx, limits)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
