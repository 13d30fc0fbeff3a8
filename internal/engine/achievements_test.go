package engine

import (
	"testing"

	"secret-casino-bot/internal/domain"
)

func unlockedIDs(list []domain.Achievement) map[string]bool {
	ids := make(map[string]bool)
	for _, a := range list {
		if a.Unlocked {
			ids[a.ID] = true
		}
	}
	return ids
}

func TestEvaluateAchievements_Thresholds(t *testing.T) {
	tests := []struct {
		name    string
		metrics domain.Metrics
		want    []string
	}{
		{"nothing yet", domain.Metrics{TotalSpins: 9, Balance: 1000}, nil},
		{"ten spins", domain.Metrics{TotalSpins: 10}, []string{"spins_10"}},
		{"hundred spins", domain.Metrics{TotalSpins: 100}, []string{"spins_10", "spins_50", "spins_100"}},
		{"wins", domain.Metrics{TotalWins: 5000}, []string{"win_1000", "win_5000"}},
		{"streak", domain.Metrics{WinStreak: 5}, []string{"streak_5"}},
		{"jackpot", domain.Metrics{JackpotWins: 1}, []string{"jackpot_1"}},
		{"balance", domain.Metrics{Balance: 5000}, []string{"balance_5000"}},
		{"bonus", domain.Metrics{BonusCollected: 10}, []string{"bonus_10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, unlocked := EvaluateAchievements(tt.metrics, domain.DefaultAchievements())
			if len(unlocked) != len(tt.want) {
				t.Fatalf("unlocked %d achievements, want %d: %+v", len(unlocked), len(tt.want), unlocked)
			}
			got := unlockedIDs(unlocked)
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("%s not unlocked", id)
				}
			}
		})
	}
}

func TestEvaluateAchievements_Idempotent(t *testing.T) {
	m := domain.Metrics{TotalSpins: 50, WinStreak: 10}
	catalog, first := EvaluateAchievements(m, domain.DefaultAchievements())
	if len(first) != 4 {
		t.Fatalf("first pass unlocked %d, want 4", len(first))
	}
	if rewardTotal(first) != 100+500+300+1000 {
		t.Errorf("reward total = %d", rewardTotal(first))
	}

	again, second := EvaluateAchievements(m, catalog)
	if len(second) != 0 {
		t.Errorf("second pass unlocked %+v, want none", second)
	}
	if len(unlockedIDs(again)) != 4 {
		t.Errorf("unlock flags changed on second pass")
	}
}

func TestEvaluateAchievements_NeverRelocks(t *testing.T) {
	catalog, _ := EvaluateAchievements(domain.Metrics{WinStreak: 5}, domain.DefaultAchievements())
	catalog, _ = EvaluateAchievements(domain.Metrics{WinStreak: 0}, catalog)
	if !unlockedIDs(catalog)["streak_5"] {
		t.Error("streak_5 reverted after streak dropped")
	}
}

func TestEvaluateAchievements_DoesNotMutateInput(t *testing.T) {
	catalog := domain.DefaultAchievements()
	EvaluateAchievements(domain.Metrics{TotalSpins: 100}, catalog)
	for _, a := range catalog {
		if a.Unlocked {
			t.Fatalf("input catalog mutated: %s", a.ID)
		}
	}
}

func TestMergeUnlocked(t *testing.T) {
	saved := []domain.Achievement{
		{ID: "spins_10", Unlocked: true},
		{ID: "retired", Unlocked: true},
	}
	merged := domain.MergeUnlocked(domain.DefaultAchievements(), saved)
	ids := unlockedIDs(merged)
	if len(ids) != 1 || !ids["spins_10"] {
		t.Errorf("merged unlocks = %v, want only spins_10", ids)
	}
	if len(merged) != len(domain.DefaultAchievements()) {
		t.Errorf("merged catalog has %d entries", len(merged))
	}
}
