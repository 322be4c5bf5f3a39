package domain

import (
	"encoding/json"
	"time"
)

type AuditEventType string

const (
	AuditTrustLevelChanged AuditEventType = "trust-level-changed"
	AuditTradeExecuted     AuditEventType = "trade-executed"
	AuditTradeUndone       AuditEventType = "trade-undone"
	AuditTradeRejected     AuditEventType = "trade-rejected"
	AuditTradingPaused     AuditEventType = "trading-paused"
	AuditTradingResumed    AuditEventType = "trading-resumed"
	AuditEmergencyStop     AuditEventType = "emergency-stop"
	AuditLimitsUpdated     AuditEventType = "limits-updated"
	AuditProfileUpdated    AuditEventType = "profile-updated"
)

// AuditEvent is one append-only entry in the compliance trail. Events are
// never updated or deleted.
type AuditEvent struct {
	ID        int64           `json:"id"`
	Type      AuditEventType  `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
