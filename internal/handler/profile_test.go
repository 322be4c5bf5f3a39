package handler

import (
	"net/http"
	"testing"

	"tradegate/internal/domain"
)

func TestGetProfileReturnsArchetype(t *testing.T) {
	f := newTestHandler(t)

	w := f.do(t, http.MethodGet, "/api/profile", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		Profile   domain.PersonalityProfile `json:"profile"`
		Archetype domain.ArchetypeMatch     `json:"archetype"`
	}
	decodeJSON(t, w, &body)
	if body.Profile.RiskTolerance != 50 {
		t.Errorf("risk tolerance = %v, want the default 50", body.Profile.RiskTolerance)
	}
	if body.Archetype.Archetype != domain.ArchetypeSurgeon {
		t.Errorf("archetype = %s, want surgeon for the midpoint profile", body.Archetype.Archetype)
	}
}

func TestUpdateProfileClampsTraits(t *testing.T) {
	f := newTestHandler(t)

	profile := domain.DefaultProfile()
	profile.RiskTolerance = 140
	profile.FOMO = -10

	w := f.do(t, http.MethodPut, "/api/profile", profile)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	var body struct {
		Profile domain.PersonalityProfile `json:"profile"`
	}
	decodeJSON(t, w, &body)
	if body.Profile.RiskTolerance != 100 || body.Profile.FOMO != 0 {
		t.Errorf("profile not clamped: %+v", body.Profile)
	}
	if f.store.profile.RiskTolerance != 100 {
		t.Error("clamped profile not persisted")
	}
	if len(f.audit.types) == 0 || f.audit.types[len(f.audit.types)-1] != domain.AuditProfileUpdated {
		t.Errorf("audit types = %v", f.audit.types)
	}
}

func TestUpdateProfileRejectsMalformedBody(t *testing.T) {
	f := newTestHandler(t)

	w := f.do(t, http.MethodPut, "/api/profile", "not an object")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetEmotionDefaultsNeutral(t *testing.T) {
	f := newTestHandler(t)

	w := f.do(t, http.MethodGet, "/api/emotion", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var read domain.EmotionalRead
	decodeJSON(t, w, &read)
	if read.State != domain.EmotionNeutral {
		t.Errorf("state = %s, want neutral with no trades", read.State)
	}
}

func TestPersonalizeSignal(t *testing.T) {
	f := newTestHandler(t)

	score := domain.ScoreResult{
		Symbol:    "AAPL",
		Direction: domain.DirectionLong,
		Score:     88,
		Tier:      domain.TierElite,
	}
	w := f.do(t, http.MethodPost, "/api/signal", score)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	var signal domain.PersonalizedSignal
	decodeJSON(t, w, &signal)
	if signal.Symbol != "AAPL" {
		t.Errorf("symbol = %q", signal.Symbol)
	}
	if signal.PositionSizeFraction <= 0 || signal.PositionSizeFraction > 0.25 {
		t.Errorf("size fraction = %v, want within (0, 0.25]", signal.PositionSizeFraction)
	}
	if signal.EntryStrategy == "" {
		t.Error("entry strategy should be populated")
	}
}

func TestPersonalizeSignalRejectsUnknownDirection(t *testing.T) {
	f := newTestHandler(t)

	score := domain.ScoreResult{Symbol: "AAPL", Direction: "sideways", Score: 50, Tier: domain.TierWeak}
	w := f.do(t, http.MethodPost, "/api/signal", score)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
