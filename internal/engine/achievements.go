package engine

import "secret-casino-bot/internal/domain"

// EvaluateAchievements returns the catalog with newly met requirements
// unlocked, plus just those new unlocks. Already unlocked entries are never
// touched, so calling it twice with the same metrics unlocks nothing new.
func EvaluateAchievements(m domain.Metrics, catalog []domain.Achievement) (updated, unlocked []domain.Achievement) {
	updated = make([]domain.Achievement, len(catalog))
	copy(updated, catalog)
	for i := range updated {
		a := &updated[i]
		if a.Unlocked {
			continue
		}
		if a.Metric.Value(m) >= a.Requirement {
			a.Unlocked = true
			unlocked = append(unlocked, *a)
		}
	}
	return updated, unlocked
}

func rewardTotal(unlocked []domain.Achievement) int64 {
	var total int64
	for _, a := range unlocked {
		total += a.Reward
	}
	return total
}
