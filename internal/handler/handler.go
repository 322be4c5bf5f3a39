package handler

import (
	"tradegate/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer  trace.Tracer
	signals *service.SignalService
	auth    *service.AuthorizationService
}

func New(tracer trace.Tracer, signals *service.SignalService, auth *service.AuthorizationService) *Handler {
	return &Handler{
		tracer:  tracer,
		signals: signals,
		auth:    auth,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, apiKey string) {
	r.GET("/health", h.Health)

	api := r.Group("/api", APIKeyAuth(apiKey))

	api.GET("/profile", h.GetProfile)
	api.PUT("/profile", h.UpdateProfile)
	api.GET("/emotion", h.GetEmotion)
	api.POST("/signal", h.PersonalizeSignal)

	api.GET("/trust", h.GetTrustStatus)
	api.PUT("/trust", h.RequestTrustLevel)
	api.POST("/trust/confirm", h.ConfirmTrustLevel)
	api.POST("/trust/cancel", h.CancelTrustLevel)
	api.PUT("/trust/pause", h.SetPaused)
	api.POST("/trust/emergency-stop", h.SetEmergencyStop)

	api.GET("/limits", h.GetLimits)
	api.PUT("/limits", h.UpdateLimits)

	api.POST("/trades/authorize", h.AuthorizeTrade)
	api.POST("/trades/execute", h.ExecuteTrade)
	api.POST("/trades/:id/undo", h.UndoTrade)
	api.POST("/trades/outcome", h.RecordOutcome)
	api.GET("/trades", h.ListExecutions)
	api.GET("/trades/stats", h.GetDayStats)

	api.GET("/audit", h.GetAuditLog)
}
