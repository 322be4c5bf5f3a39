package persona

import (
	"time"

	"tradegate/internal/domain"
)

const (
	lossStreakThreshold = 3
	winStreakThreshold  = 4
	exhaustionThreshold = 15
	recentWindow        = 5
)

// CurrentStreak returns the run of identical outcomes ending at the most
// recent trade. History is ordered oldest first.
func CurrentStreak(history []domain.TradeRecord) domain.Streak {
	if len(history) == 0 {
		return domain.Streak{}
	}
	last := history[len(history)-1]
	streak := domain.Streak{Outcome: last.Outcome, Count: 1}
	for i := len(history) - 2; i >= 0; i-- {
		if history[i].Outcome != last.Outcome {
			break
		}
		streak.Count++
	}
	return streak
}

// DetectEmotionalState reads the trader's state of mind off the outcome
// stream. Rules apply in strict precedence and the first match wins, so a
// loss streak reports frustrated even when the fearful condition also holds.
func DetectEmotionalState(history []domain.TradeRecord, now time.Time) domain.EmotionalRead {
	streak := CurrentStreak(history)
	wins, losses := countRecent(history, recentWindow)
	today := tradesOn(history, now)

	switch {
	case streak.Outcome == domain.OutcomeLoss && streak.Count >= lossStreakThreshold:
		return read(domain.EmotionFrustrated, 50+15*(streak.Count-lossStreakThreshold), streak)
	case streak.Outcome == domain.OutcomeWin && streak.Count >= winStreakThreshold:
		return read(domain.EmotionGreedy, 50+15*(streak.Count-winStreakThreshold), streak)
	case wins >= 4 && losses <= 1:
		return read(domain.EmotionConfident, 60+10*(wins-4), streak)
	case losses >= 3 && wins <= 1:
		return read(domain.EmotionFearful, 50+10*(losses-3), streak)
	case today >= exhaustionThreshold:
		return read(domain.EmotionExhausted, 50+5*(today-exhaustionThreshold), streak)
	case losses >= 2:
		return read(domain.EmotionCautious, 40, streak)
	default:
		return read(domain.EmotionNeutral, 0, streak)
	}
}

func read(state domain.EmotionalState, intensity int, streak domain.Streak) domain.EmotionalRead {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 100 {
		intensity = 100
	}
	return domain.EmotionalRead{State: state, Intensity: intensity, Streak: streak}
}

func countRecent(history []domain.TradeRecord, n int) (wins, losses int) {
	start := len(history) - n
	if start < 0 {
		start = 0
	}
	for _, r := range history[start:] {
		switch r.Outcome {
		case domain.OutcomeWin:
			wins++
		case domain.OutcomeLoss:
			losses++
		}
	}
	return wins, losses
}

func tradesOn(history []domain.TradeRecord, now time.Time) int {
	y, m, d := now.Date()
	count := 0
	for _, r := range history {
		ry, rm, rd := r.Timestamp.In(now.Location()).Date()
		if ry == y && rm == m && rd == d {
			count++
		}
	}
	return count
}
