package domain

import "time"

// TrustLevel is how much autonomy the user has granted the engine.
type TrustLevel string

const (
	TrustLevelOff       TrustLevel = "off"
	TrustLevelConfirm   TrustLevel = "confirm"
	TrustLevelTrust     TrustLevel = "trust"
	TrustLevelAutopilot TrustLevel = "autopilot"
)

// TrustLevels lists the levels in ascending order of autonomy.
var TrustLevels = []TrustLevel{TrustLevelOff, TrustLevelConfirm, TrustLevelTrust, TrustLevelAutopilot}

func (l TrustLevel) IsValid() bool {
	return l.Rank() >= 0
}

// Rank returns the position of the level on the autonomy ladder, -1 if unknown.
func (l TrustLevel) Rank() int {
	for i, level := range TrustLevels {
		if l == level {
			return i
		}
	}
	return -1
}

// AutoExecute reports whether the engine may place trades without a
// per-trade confirmation at this level.
func (l TrustLevel) AutoExecute() bool {
	return l == TrustLevelTrust || l == TrustLevelAutopilot
}

func ParseTrustLevel(s string) (TrustLevel, bool) {
	l := TrustLevel(s)
	return l, l.IsValid()
}

// PendingConfirmation is an elevation request waiting for an explicit yes.
// The trust level does not move until it is confirmed.
type PendingConfirmation struct {
	Target      TrustLevel `json:"target"`
	Message     string     `json:"message"`
	RequestedAt time.Time  `json:"requested_at"`
}

// TrustStatus is the full state machine snapshot served to clients.
type TrustStatus struct {
	Level         TrustLevel           `json:"level"`
	AutoExecute   bool                 `json:"auto_execute"`
	Paused        bool                 `json:"paused"`
	EmergencyStop bool                 `json:"emergency_stop"`
	Pending       *PendingConfirmation `json:"pending,omitempty"`
}

// RiskBand grades the per-trade risk assessment.
type RiskBand string

const (
	RiskLow      RiskBand = "low"
	RiskModerate RiskBand = "moderate"
	RiskElevated RiskBand = "elevated"
	RiskExtreme  RiskBand = "extreme"
)

// RiskAssessment explains how risky a single intent looks right now.
type RiskAssessment struct {
	Band    RiskBand `json:"band"`
	Score   int      `json:"score"`
	Factors []string `json:"factors,omitempty"`
}

// GateResult reports the outcome of the ordered authorization checks.
// A denial is data, not an error: Check names the first check that failed
// and Reason carries both the offending value and the limit it broke.
type GateResult struct {
	Allowed  bool            `json:"allowed"`
	Check    string          `json:"check,omitempty"`
	Reason   string          `json:"reason,omitempty"`
	Severity Severity        `json:"severity,omitempty"`
	Risk     *RiskAssessment `json:"risk,omitempty"`
}
