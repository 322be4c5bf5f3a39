package personalize

import (
	"tradegate/internal/domain"
)

const (
	maxPositionFraction  = 0.25
	defaultBaseStopPct   = 2.0
	defaultBaseTargetPct = 4.0
)

// tierBaseSize is the objective starting fraction of the account per tier,
// before any personality or emotional scaling.
var tierBaseSize = map[domain.Tier]float64{
	domain.TierUltraElite: 0.15,
	domain.TierElite:      0.12,
	domain.TierStrong:     0.10,
	domain.TierModerate:   0.08,
	domain.TierWeak:       0.05,
	domain.TierAvoid:      0,
}

// archetypeParams collects the per-archetype multipliers and the canned
// entry strategy applied on top of the objective score.
type archetypeParams struct {
	positionMult float64
	stopMult     float64
	profitMult   float64
	entry        string
}

var archetypeTable = map[domain.Archetype]archetypeParams{
	domain.ArchetypeSurgeon:       {0.70, 0.75, 1.00, "Wait for the pullback to support and a confirmation candle before entering."},
	domain.ArchetypeSniper:        {0.85, 0.85, 1.10, "One decisive entry at your level. No scaling, no chasing."},
	domain.ArchetypeMomentumRider: {1.00, 1.10, 1.30, "Enter on the breakout with volume behind it and add only while momentum holds."},
	domain.ArchetypeContrarian:    {0.90, 1.50, 1.20, "Fade the move in thirds and keep dry powder for the exhaustion extreme."},
	domain.ArchetypeGuardian:      {0.60, 0.80, 0.90, "Scale in with 25% tranches, four entries maximum."},
	domain.ArchetypeHunter:        {1.30, 1.25, 1.50, "Take the trigger at full allocation; speed is the edge."},
}

// emotionSizeMult cuts size while the trader is compromised. States missing
// from the table trade at full size.
var emotionSizeMult = map[domain.EmotionalState]float64{
	domain.EmotionFrustrated: 0.50,
	domain.EmotionExhausted:  0.50,
	domain.EmotionFearful:    0.75,
	domain.EmotionGreedy:     0.80,
	domain.EmotionCautious:   0.85,
}

// Build turns an objective score into trade parameters shaped by who the
// trader is (archetype, risk appetite) and how they are doing right now
// (emotional state), then attaches the advisory read on the pairing.
func Build(score domain.ScoreResult, match domain.ArchetypeMatch, emotion domain.EmotionalRead, profile domain.PersonalityProfile) domain.PersonalizedSignal {
	p := profile.Clamp()
	params := paramsFor(match.Archetype)

	sig := domain.PersonalizedSignal{
		Symbol:               score.Symbol,
		Direction:            score.Direction,
		Archetype:            match,
		Emotion:              emotion,
		PositionSizeFraction: positionFraction(score.Tier, params, p, emotion.State),
		StopLossPct:          stopLossPct(score.Components, params, p),
		TakeProfitPct:        takeProfitPct(score.Components, params),
		EntryStrategy:        params.entry,
		ConfidenceAdjustment: confidenceAdjustment(match, emotion.State),
	}

	sig.Warnings, sig.Encouragements = advise(score, match, emotion)
	sig.RequiresConfirmation = mustConfirm(emotion.State, sig.Warnings)
	sig.RecommendedAction = recommend(score.Tier, sig.PositionSizeFraction, sig.RequiresConfirmation)
	return sig
}

func paramsFor(a domain.Archetype) archetypeParams {
	if p, ok := archetypeTable[a]; ok {
		return p
	}
	return archetypeParams{positionMult: 1, stopMult: 1, profitMult: 1}
}

// positionFraction composes base size, archetype scaling, risk appetite and
// emotional throttle, hard-capped at a quarter of the account.
func positionFraction(tier domain.Tier, params archetypeParams, p domain.PersonalityProfile, state domain.EmotionalState) float64 {
	size := tierBaseSize[tier] * params.positionMult * riskMult(p) * emotionMult(state)
	if size < 0 {
		return 0
	}
	if size > maxPositionFraction {
		return maxPositionFraction
	}
	return size
}

// riskMult maps risk tolerance onto 0.5x-1.5x.
func riskMult(p domain.PersonalityProfile) float64 {
	return 0.5 + p.RiskTolerance/100
}

func emotionMult(state domain.EmotionalState) float64 {
	if m, ok := emotionSizeMult[state]; ok {
		return m
	}
	return 1.0
}

func stopLossPct(c domain.ScoreComponents, params archetypeParams, p domain.PersonalityProfile) float64 {
	base := c.BaseStopPct
	if base <= 0 {
		base = defaultBaseStopPct
	}
	mult := 1.0
	switch {
	case p.LossAversion > 70:
		mult = 0.75
	case p.LossAversion < 30:
		mult = 1.25
	}
	return base * params.stopMult * mult
}

func takeProfitPct(c domain.ScoreComponents, params archetypeParams) float64 {
	base := c.BaseTargetPct
	if base <= 0 {
		base = defaultBaseTargetPct
	}
	return base * params.profitMult
}

func confidenceAdjustment(match domain.ArchetypeMatch, state domain.EmotionalState) int {
	adj := 0
	switch {
	case match.Confidence > 80:
		adj += 5
	case match.Confidence > 60:
		adj += 3
	}
	switch state {
	case domain.EmotionConfident:
		adj += 5
	case domain.EmotionFrustrated:
		adj -= 10
	case domain.EmotionFearful:
		adj -= 5
	case domain.EmotionGreedy:
		adj -= 3
	}
	return adj
}

func recommend(tier domain.Tier, size float64, confirm bool) domain.RecommendedAction {
	switch {
	case tier == domain.TierAvoid || size == 0:
		return domain.RecommendSkip
	case confirm:
		return domain.RecommendConfirm
	default:
		return domain.RecommendProceed
	}
}
