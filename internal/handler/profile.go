package handler

import (
	"net/http"

	"tradegate/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetProfile godoc
// @Summary      Get the personality profile
// @Description  Returns the stored trait scores and the archetype they classify to
// @Tags         profile
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     ApiKeyAuth
// @Router       /api/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-profile")
	defer span.End()

	profile := h.signals.Profile(ctx)
	match := h.signals.Archetype(ctx)

	c.JSON(http.StatusOK, gin.H{
		"profile":   profile,
		"archetype": match,
	})
}

// UpdateProfile godoc
// @Summary      Update the personality profile
// @Description  Persists new trait scores (clamped to 0-100) and returns the resulting archetype
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body  domain.PersonalityProfile  true  "Trait scores"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.update-profile")
	defer span.End()

	var profile domain.PersonalityProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, match, err := h.signals.UpdateProfile(ctx, profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":   updated,
		"archetype": match,
	})
}

// GetEmotion godoc
// @Summary      Get the current emotional read
// @Description  Returns the detected emotional state, its intensity, and the active streak
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.EmotionalRead
// @Security     ApiKeyAuth
// @Router       /api/emotion [get]
func (h *Handler) GetEmotion(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-emotion")
	defer span.End()

	c.JSON(http.StatusOK, h.signals.Current(ctx))
}

// PersonalizeSignal godoc
// @Summary      Personalize a scored signal
// @Description  Shapes sizing, exits, entry style and advisories around the stored profile and current emotional state
// @Tags         signals
// @Accept       json
// @Produce      json
// @Param        score  body  domain.ScoreResult  true  "Objective score"
// @Success      200  {object}  domain.PersonalizedSignal
// @Failure      400  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /api/signal [post]
func (h *Handler) PersonalizeSignal(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.personalize-signal")
	defer span.End()

	var score domain.ScoreResult
	if err := c.ShouldBindJSON(&score); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signal, err := h.signals.Personalize(ctx, score)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, signal)
}
