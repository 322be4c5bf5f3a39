package domain

type SignalDirection string

const (
	DirectionLong  SignalDirection = "long"
	DirectionShort SignalDirection = "short"
	DirectionHold  SignalDirection = "hold"
)

// Tier buckets a composite setup score into a quality grade. The tier, not
// the raw score, decides the base position size.
type Tier string

const (
	TierUltraElite Tier = "ultra_elite"
	TierElite      Tier = "elite"
	TierStrong     Tier = "strong"
	TierModerate   Tier = "moderate"
	TierWeak       Tier = "weak"
	TierAvoid      Tier = "avoid"
)

// Tiers lists all grades from best to worst.
var Tiers = []Tier{TierUltraElite, TierElite, TierStrong, TierModerate, TierWeak, TierAvoid}

func (t Tier) IsValid() bool {
	switch t {
	case TierUltraElite, TierElite, TierStrong, TierModerate, TierWeak, TierAvoid:
		return true
	}
	return false
}

// ScoreComponents carries the sub-scores behind a composite setup score.
// All component scores are on a 0-100 scale.
type ScoreComponents struct {
	Trend             float64 `json:"trend"`
	Momentum          float64 `json:"momentum"`
	Volume            float64 `json:"volume"`
	Sentiment         float64 `json:"sentiment"`
	Volatility        float64 `json:"volatility"`
	TimeframesAligned int     `json:"timeframes_aligned"`
	BaseStopPct       float64 `json:"base_stop_pct,omitempty"`
	BaseTargetPct     float64 `json:"base_target_pct,omitempty"`
}

// ScoreResult is the objective setup evaluation handed to the engine by the
// upstream scorer. The engine never computes scores; it personalizes them.
type ScoreResult struct {
	Symbol     string          `json:"symbol"`
	Direction  SignalDirection `json:"direction"`
	Score      float64         `json:"score"`
	Tier       Tier            `json:"tier"`
	Components ScoreComponents `json:"components"`
}
