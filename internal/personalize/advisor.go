package personalize

import (
	"fmt"

	"tradegate/internal/domain"
)

// emotionalRule is the fixed advisory attached to a detected state. The
// confirm flag forces a confirmation step regardless of trust level.
type emotionalRule struct {
	severity   domain.Severity
	message    string
	suggestion string
	confirm    bool
}

var emotionalRules = map[domain.EmotionalState]emotionalRule{
	domain.EmotionFrustrated: {
		severity:   domain.SeverityHigh,
		message:    "Three or more losses in a row. Revenge trades pay the market, not you.",
		suggestion: "Step away for thirty minutes before the next entry.",
		confirm:    true,
	},
	domain.EmotionGreedy: {
		severity:   domain.SeverityHigh,
		message:    "A hot streak is exactly when sizing discipline slips.",
		suggestion: "Keep size at plan; the streak does not change the math.",
		confirm:    true,
	},
	domain.EmotionExhausted: {
		severity:   domain.SeverityHigh,
		message:    "Fifteen or more trades today. Decision quality decays with volume.",
		suggestion: "Stop for the day; tomorrow's setups will still be there.",
		confirm:    true,
	},
	domain.EmotionFearful: {
		severity:   domain.SeverityMedium,
		message:    "Recent losses are pulling your entries tighter than your plan.",
		suggestion: "Cut size and take only setups that pass every checklist item.",
	},
	domain.EmotionCautious: {
		severity:   domain.SeverityLow,
		message:    "A couple of recent losses. Nothing broken, stay mechanical.",
		suggestion: "Trade the plan at normal size.",
	},
}

// advise builds the warning and encouragement lists for a score/trader
// pairing: the emotional read first, then archetype-vs-setup friction, then
// alignment notes when the setup is the trader's natural shape.
func advise(score domain.ScoreResult, match domain.ArchetypeMatch, emotion domain.EmotionalRead) ([]domain.Warning, []domain.Encouragement) {
	var warnings []domain.Warning
	var encouragements []domain.Encouragement

	if rule, ok := emotionalRules[emotion.State]; ok {
		warnings = append(warnings, domain.Warning{
			Type:       "emotional",
			Severity:   rule.severity,
			Message:    rule.message,
			Suggestion: rule.suggestion,
		})
	}
	if emotion.State == domain.EmotionConfident {
		encouragements = append(encouragements, domain.Encouragement{
			Type:    "momentum",
			Message: "Four of your last five trades hit. Keep doing exactly what you are doing.",
		})
	}

	if w := archetypeFriction(score, match.Archetype); w != nil {
		warnings = append(warnings, *w)
	}
	if e := archetypeAlignment(score, match.Archetype); e != nil {
		encouragements = append(encouragements, *e)
	}
	if match.Confidence > 80 {
		encouragements = append(encouragements, domain.Encouragement{
			Type:    "identity",
			Message: fmt.Sprintf("%s fit at %d%%. Lean on your playbook.", domain.ArchetypeDisplayName[match.Archetype], match.Confidence),
		})
	}

	return warnings, encouragements
}

// archetypeFriction flags setups that cut against the archetype's grain.
func archetypeFriction(score domain.ScoreResult, a domain.Archetype) *domain.Warning {
	c := score.Components
	switch a {
	case domain.ArchetypeSurgeon:
		if c.Trend < 50 {
			return &domain.Warning{
				Type: "structure", Severity: domain.SeverityLow,
				Message:    "Trend structure is weak for a precision entry.",
				Suggestion: "Let the tape organize before you operate.",
			}
		}
	case domain.ArchetypeSniper:
		if score.Score < 85 || c.TimeframesAligned < 3 {
			return &domain.Warning{
				Type: "patience", Severity: domain.SeverityMedium,
				Message:    "This is not an A-grade shot for you.",
				Suggestion: "You take one perfect entry, not three decent ones.",
			}
		}
	case domain.ArchetypeMomentumRider:
		if c.Volume < 40 {
			return &domain.Warning{
				Type: "volume", Severity: domain.SeverityLow,
				Message:    "Volume is thin; moves without fuel fade on you.",
				Suggestion: "Wait for participation before riding this.",
			}
		}
	case domain.ArchetypeContrarian:
		if c.Sentiment > 80 {
			return &domain.Warning{
				Type: "sentiment", Severity: domain.SeverityMedium,
				Message:    "The crowd is euphoric and you would be joining it.",
				Suggestion: "Your edge is fading this move, not chasing it.",
			}
		}
	case domain.ArchetypeGuardian:
		if c.Volatility > 60 {
			return &domain.Warning{
				Type: "volatility", Severity: domain.SeverityMedium,
				Message:    "Volatility is outside your comfort band.",
				Suggestion: "Halve the first tranche or stand aside.",
			}
		}
	case domain.ArchetypeHunter:
		if score.Score < 70 {
			return &domain.Warning{
				Type: "conviction", Severity: domain.SeverityLow,
				Message:    "Setup lacks conviction-grade strength.",
				Suggestion: "Save the aggression for a cleaner trigger.",
			}
		}
	}
	return nil
}

// archetypeAlignment rewards setups that match the archetype's preferred shape.
func archetypeAlignment(score domain.ScoreResult, a domain.Archetype) *domain.Encouragement {
	c := score.Components
	switch a {
	case domain.ArchetypeSurgeon:
		if c.Trend >= 60 && c.Volatility <= 40 {
			return &domain.Encouragement{Type: "alignment", Message: "Calm, structured tape. These are your conditions."}
		}
	case domain.ArchetypeSniper:
		if score.Score >= 85 && c.TimeframesAligned >= 3 {
			return &domain.Encouragement{Type: "alignment", Message: "A-grade setup with timeframes stacked. This is your shot."}
		}
	case domain.ArchetypeMomentumRider:
		if c.Momentum >= 70 && c.Volume >= 60 {
			return &domain.Encouragement{Type: "alignment", Message: "Real momentum with real volume behind it. Your lane."}
		}
	case domain.ArchetypeContrarian:
		if c.Sentiment <= 30 {
			return &domain.Encouragement{Type: "alignment", Message: "The crowd is fearful. Your edge lives exactly here."}
		}
	case domain.ArchetypeGuardian:
		if score.Score >= 80 && c.Volatility <= 30 {
			return &domain.Encouragement{Type: "alignment", Message: "High quality and low volatility. A setup worth your capital."}
		}
	case domain.ArchetypeHunter:
		if score.Score >= 70 && c.Momentum >= 60 {
			return &domain.Encouragement{Type: "alignment", Message: "Strong and moving fast. Exactly what you hunt."}
		}
	}
	return nil
}

// mustConfirm reports whether the signal needs an explicit go-ahead: either
// the emotional state mandates one or any warning reached high severity.
func mustConfirm(state domain.EmotionalState, warnings []domain.Warning) bool {
	if rule, ok := emotionalRules[state]; ok && rule.confirm {
		return true
	}
	for _, w := range warnings {
		if w.Severity == domain.SeverityHigh {
			return true
		}
	}
	return false
}
