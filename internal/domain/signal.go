package domain

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Warning flags a mismatch between the setup and the trader's state or
// archetype. High-severity warnings force a confirmation step.
type Warning struct {
	Type       string   `json:"type"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Encouragement is the positive counterpart: the setup fits who the trader is.
type Encouragement struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type RecommendedAction string

const (
	RecommendProceed RecommendedAction = "proceed"
	RecommendConfirm RecommendedAction = "confirm"
	RecommendSkip    RecommendedAction = "skip"
)

// PersonalizedSignal is the engine's answer to a scored setup: sizing, exits
// and entry style shaped by who the trader is, plus advisories shaped by how
// they are doing today.
type PersonalizedSignal struct {
	Symbol               string            `json:"symbol"`
	Direction            SignalDirection   `json:"direction"`
	Archetype            ArchetypeMatch    `json:"archetype"`
	Emotion              EmotionalRead     `json:"emotion"`
	PositionSizeFraction float64           `json:"position_size_fraction"`
	StopLossPct          float64           `json:"stop_loss_pct"`
	TakeProfitPct        float64           `json:"take_profit_pct"`
	EntryStrategy        string            `json:"entry_strategy"`
	ConfidenceAdjustment int               `json:"confidence_adjustment"`
	Warnings             []Warning         `json:"warnings"`
	Encouragements       []Encouragement   `json:"encouragements"`
	RequiresConfirmation bool              `json:"requires_confirmation"`
	RecommendedAction    RecommendedAction `json:"recommended_action"`
}
