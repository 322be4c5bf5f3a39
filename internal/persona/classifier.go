package persona

import (
	"math"

	"tradegate/internal/domain"
)

// archetypeScorers maps each archetype to its weighted trait sum. Weights per
// archetype add up to 1 so match scores stay on the 0-100 trait scale; an
// inverted term (100 - trait) rewards the low end. Order matters: score ties
// resolve to the earliest entry.
var archetypeScorers = []struct {
	archetype domain.Archetype
	score     func(p domain.PersonalityProfile) float64
}{
	{domain.ArchetypeSurgeon, func(p domain.PersonalityProfile) float64 {
		return 0.30*(100-p.RiskTolerance) + 0.25*p.Patience + 0.30*p.AnalyticalDepth + 0.15*(100-p.FOMO)
	}},
	{domain.ArchetypeSniper, func(p domain.PersonalityProfile) float64 {
		return 0.30*p.Patience + 0.25*p.AnalyticalDepth + 0.25*(100-p.FOMO) + 0.20*p.Conviction
	}},
	{domain.ArchetypeMomentumRider, func(p domain.PersonalityProfile) float64 {
		return 0.25*p.RiskTolerance + 0.20*p.FOMO + 0.30*p.Adaptability + 0.25*(100-p.Patience)
	}},
	{domain.ArchetypeContrarian, func(p domain.PersonalityProfile) float64 {
		return 0.35*p.Independence + 0.25*p.AnalyticalDepth + 0.25*p.Conviction + 0.15*(100-p.FOMO)
	}},
	{domain.ArchetypeGuardian, func(p domain.PersonalityProfile) float64 {
		return 0.35*p.LossAversion + 0.30*(100-p.RiskTolerance) + 0.20*p.Patience + 0.15*p.AnalyticalDepth
	}},
	{domain.ArchetypeHunter, func(p domain.PersonalityProfile) float64 {
		return 0.35*p.RiskTolerance + 0.25*(100-p.LossAversion) + 0.15*(100-p.Patience) + 0.25*p.Conviction
	}},
}

// Classify maps a personality profile onto its best-fitting archetype.
// Same profile in, same match out, always.
func Classify(profile domain.PersonalityProfile) domain.ArchetypeMatch {
	p := profile.Clamp()
	best := archetypeScorers[0].archetype
	bestScore := archetypeScorers[0].score(p)
	for _, s := range archetypeScorers[1:] {
		if score := s.score(p); score > bestScore {
			best, bestScore = s.archetype, score
		}
	}
	return domain.ArchetypeMatch{Archetype: best, Confidence: int(math.Round(bestScore))}
}
