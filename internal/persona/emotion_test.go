package persona

import (
	"testing"
	"time"

	"tradegate/internal/domain"
)

var detectNow = time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

// outcomes builds a history from a compact string, oldest first, with every
// trade stamped earlier today.
func outcomes(s string) []domain.TradeRecord {
	records := make([]domain.TradeRecord, 0, len(s))
	for i, c := range s {
		outcome := domain.OutcomeLoss
		if c == 'W' {
			outcome = domain.OutcomeWin
		}
		records = append(records, domain.TradeRecord{
			Symbol:    "BTC",
			Outcome:   outcome,
			Timestamp: detectNow.Add(time.Duration(i-len(s)) * time.Minute),
		})
	}
	return records
}

func TestDetectEmotionalState(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name          string
		history       []domain.TradeRecord
		wantState     domain.EmotionalState
		wantIntensity int
	}{
		{"empty history", nil, domain.EmotionNeutral, 0},
		{"single win", outcomes("W"), domain.EmotionNeutral, 0},
		{"three losses", outcomes("LLL"), domain.EmotionFrustrated, 50},
		{"five losses", outcomes("LLLLL"), domain.EmotionFrustrated, 80},
		{"long loss streak caps at 100", outcomes("LLLLLLLLLL"), domain.EmotionFrustrated, 100},
		{"four wins running", outcomes("WWWW"), domain.EmotionGreedy, 50},
		{"six wins running", outcomes("WWWWWW"), domain.EmotionGreedy, 80},
		{"four of five wins", outcomes("WWLWW"), domain.EmotionConfident, 60},
		{"four of five losses", outcomes("LLLWL"), domain.EmotionFearful, 60},
		{"three of five losses", outcomes("LWLLW"), domain.EmotionCautious, 40},
		{"two of five losses", outcomes("WWWLL"), domain.EmotionCautious, 40},
		{"two scattered losses", outcomes("WLWWL"), domain.EmotionCautious, 40},
		{"single loss", outcomes("L"), domain.EmotionNeutral, 0},
	}

	for _, tc := range cases {
		got := DetectEmotionalState(tc.history, detectNow)
		if got.State != tc.wantState {
			t.Errorf("%s: state = %s, want %s", tc.name, got.State, tc.wantState)
			continue
		}
		if got.Intensity != tc.wantIntensity {
			t.Errorf("%s: intensity = %d, want %d", tc.name, got.Intensity, tc.wantIntensity)
		}
	}
}

func TestDetectFrustratedBeatsFearful(t *testing.T) {
	t.Parallel()
	// LLLL satisfies both the streak rule and the fearful window; the streak
	// rule sits higher in precedence.
	got := DetectEmotionalState(outcomes("WLLLL"), detectNow)
	if got.State != domain.EmotionFrustrated {
		t.Fatalf("expected frustrated, got %s", got.State)
	}
	if got.Intensity != 65 {
		t.Fatalf("expected intensity 65 for a 4-loss streak, got %d", got.Intensity)
	}
}

func TestDetectExhaustedByTradeCount(t *testing.T) {
	t.Parallel()
	history := outcomes("WLWLWLWLWLWLWLW") // 15 trades today, no other rule fires
	got := DetectEmotionalState(history, detectNow)
	if got.State != domain.EmotionExhausted {
		t.Fatalf("expected exhausted, got %s", got.State)
	}
	if got.Intensity != 50 {
		t.Fatalf("expected intensity 50 at exactly 15 trades, got %d", got.Intensity)
	}
}

func TestDetectExhaustedIgnoresYesterday(t *testing.T) {
	t.Parallel()
	history := outcomes("WLWLWLWLWLWLWLW")
	for i := range history {
		history[i].Timestamp = history[i].Timestamp.Add(-48 * time.Hour)
	}
	got := DetectEmotionalState(history, detectNow)
	if got.State == domain.EmotionExhausted {
		t.Fatal("trades from two days ago should not count toward exhaustion")
	}
}

func TestCurrentStreak(t *testing.T) {
	t.Parallel()
	s := CurrentStreak(outcomes("WWLLL"))
	if s.Outcome != domain.OutcomeLoss || s.Count != 3 {
		t.Fatalf("streak = %+v, want 3 losses", s)
	}
	s = CurrentStreak(outcomes("LW"))
	if s.Outcome != domain.OutcomeWin || s.Count != 1 {
		t.Fatalf("streak = %+v, want 1 win", s)
	}
	if s = CurrentStreak(nil); s.Count != 0 {
		t.Fatalf("empty history should have no streak, got %+v", s)
	}
}
