package domain

// EmotionalState labels the trader's inferred state of mind, derived purely
// from recent trade outcomes.
type EmotionalState string

const (
	EmotionFrustrated EmotionalState = "frustrated"
	EmotionGreedy     EmotionalState = "greedy"
	EmotionConfident  EmotionalState = "confident"
	EmotionFearful    EmotionalState = "fearful"
	EmotionExhausted  EmotionalState = "exhausted"
	EmotionCautious   EmotionalState = "cautious"
	EmotionNeutral    EmotionalState = "neutral"
)

func (s EmotionalState) IsValid() bool {
	switch s {
	case EmotionFrustrated, EmotionGreedy, EmotionConfident, EmotionFearful,
		EmotionExhausted, EmotionCautious, EmotionNeutral:
		return true
	}
	return false
}

// Streak is a run of identical outcomes ending at the most recent trade.
type Streak struct {
	Outcome TradeOutcome `json:"outcome,omitempty"`
	Count   int          `json:"count"`
}

// EmotionalRead is the detector output: the state, how strongly it applies
// (0-100) and the current streak it was derived from.
type EmotionalRead struct {
	State     EmotionalState `json:"state"`
	Intensity int            `json:"intensity"`
	Streak    Streak         `json:"streak"`
}
