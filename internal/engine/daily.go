package engine

import (
	"time"

	"secret-casino-bot/internal/domain"
)

type DailyRules struct {
	BaseReward int64 `yaml:"base_reward"`
	StreakStep int64 `yaml:"streak_step"`
}

func DefaultDailyRules() DailyRules {
	return DailyRules{BaseReward: 100, StreakStep: 50}
}

func CheckEligible(today string, lastClaimed *string) bool {
	return lastClaimed == nil || *lastClaimed != today
}

// ClaimReward prices a claim made on today. It does not guard against a
// second claim on the same day; callers gate on CheckEligible.
func ClaimReward(today string, lastClaimed *string, streak int64, r DailyRules) domain.DailyClaim {
	next := int64(1)
	if lastClaimed != nil {
		if prev := previousDay(today); prev != "" && *lastClaimed == prev {
			next = streak + 1
		}
	}
	return domain.DailyClaim{
		Reward: r.BaseReward + (next-1)*r.StreakStep,
		Streak: next,
	}
}

func previousDay(day string) string {
	t, err := time.Parse(domain.DateLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(domain.DateLayout)
}

func dayOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(domain.DateLayout)
}
