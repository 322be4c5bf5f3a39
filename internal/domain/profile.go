package domain

// PersonalityProfile holds the eight trait scores that drive archetype
// classification and parameter personalization. Every trait lives on a
// 0-100 scale with 50 as the neutral midpoint.
type PersonalityProfile struct {
	RiskTolerance   float64 `json:"risk_tolerance"`
	Patience        float64 `json:"patience"`
	LossAversion    float64 `json:"loss_aversion"`
	FOMO            float64 `json:"fomo"`
	AnalyticalDepth float64 `json:"analytical_depth"` // analytical 100, intuitive 0
	Independence    float64 `json:"independence"`     // independent 100, conformist 0
	Conviction      float64 `json:"conviction"`
	Adaptability    float64 `json:"adaptability"`
}

// DefaultProfile is the profile assumed until the user completes an
// assessment: every trait at the midpoint.
func DefaultProfile() PersonalityProfile {
	return PersonalityProfile{
		RiskTolerance:   50,
		Patience:        50,
		LossAversion:    50,
		FOMO:            50,
		AnalyticalDepth: 50,
		Independence:    50,
		Conviction:      50,
		Adaptability:    50,
	}
}

// Clamp forces every trait into the 0-100 range. Out-of-range input is a
// caller bug but must never propagate into sizing math.
func (p PersonalityProfile) Clamp() PersonalityProfile {
	p.RiskTolerance = clampTrait(p.RiskTolerance)
	p.Patience = clampTrait(p.Patience)
	p.LossAversion = clampTrait(p.LossAversion)
	p.FOMO = clampTrait(p.FOMO)
	p.AnalyticalDepth = clampTrait(p.AnalyticalDepth)
	p.Independence = clampTrait(p.Independence)
	p.Conviction = clampTrait(p.Conviction)
	p.Adaptability = clampTrait(p.Adaptability)
	return p
}

func clampTrait(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
