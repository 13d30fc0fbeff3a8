package domain

type Metric string

const (
	MetricSpins    Metric = "spins"
	MetricWins     Metric = "wins"
	MetricStreak   Metric = "streak"
	MetricJackpots Metric = "jackpots"
	MetricBalance  Metric = "balance"
	MetricBonus    Metric = "bonus"
)

func (m Metric) Valid() bool {
	switch m {
	case MetricSpins, MetricWins, MetricStreak, MetricJackpots, MetricBalance, MetricBonus:
		return true
	}
	return false
}

// Value picks the counter this metric is measured by.
func (m Metric) Value(v Metrics) int64 {
	switch m {
	case MetricSpins:
		return v.TotalSpins
	case MetricWins:
		return v.TotalWins
	case MetricStreak:
		return v.WinStreak
	case MetricJackpots:
		return v.JackpotWins
	case MetricBalance:
		return v.Balance
	case MetricBonus:
		return v.BonusCollected
	}
	return 0
}

type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
	Metric      Metric `json:"metric" yaml:"metric"`
	Requirement int64  `json:"requirement" yaml:"requirement"`
	Reward      int64  `json:"reward" yaml:"reward"`
	Unlocked    bool   `json:"unlocked" yaml:"-"`
}

func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "spins_10", Title: "Новичок", Description: "Сделать 10 спинов", Icon: "🎰", Metric: MetricSpins, Requirement: 10, Reward: 100},
		{ID: "spins_50", Title: "Игрок", Description: "Сделать 50 спинов", Icon: "🎲", Metric: MetricSpins, Requirement: 50, Reward: 500},
		{ID: "spins_100", Title: "Профи", Description: "Сделать 100 спинов", Icon: "🎯", Metric: MetricSpins, Requirement: 100, Reward: 1000},
		{ID: "win_1000", Title: "Везунчик", Description: "Выиграть 1000 монет", Icon: "🍀", Metric: MetricWins, Requirement: 1000, Reward: 500},
		{ID: "win_5000", Title: "Богач", Description: "Выиграть 5000 монет", Icon: "💰", Metric: MetricWins, Requirement: 5000, Reward: 2000},
		{ID: "streak_5", Title: "Горячая серия", Description: "5 побед подряд", Icon: "🔥", Metric: MetricStreak, Requirement: 5, Reward: 300},
		{ID: "streak_10", Title: "Непобедимый", Description: "10 побед подряд", Icon: "⚡", Metric: MetricStreak, Requirement: 10, Reward: 1000},
		{ID: "jackpot_1", Title: "Счастливчик", Description: "Выиграть джекпот", Icon: "🎁", Metric: MetricJackpots, Requirement: 1, Reward: 5000},
		{ID: "balance_5000", Title: "Миллионер", Description: "Накопить 5000 монет", Icon: "💎", Metric: MetricBalance, Requirement: 5000, Reward: 1000},
		{ID: "bonus_10", Title: "Бонус Мастер", Description: "Собрать 10 бонусных спинов", Icon: "🎯", Metric: MetricBonus, Requirement: 10, Reward: 500},
	}
}

// Relock returns a copy of the catalog with every unlock flag cleared.
func Relock(catalog []Achievement) []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	for i := range out {
		out[i].Unlocked = false
	}
	return out
}

// MergeUnlocked lays persisted unlock flags over the catalog. Ids no longer
// in the catalog are dropped; new catalog entries start locked.
func MergeUnlocked(catalog, saved []Achievement) []Achievement {
	unlocked := make(map[string]bool, len(saved))
	for _, a := range saved {
		if a.Unlocked {
			unlocked[a.ID] = true
		}
	}
	out := Relock(catalog)
	for i := range out {
		out[i].Unlocked = unlocked[out[i].ID]
	}
	return out
}
