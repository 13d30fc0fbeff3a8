package domain

import "time"

// DateLayout is the calendar-day key used for daily claims.
const DateLayout = "2006-01-02"

type DailyRewardRecord struct {
	LastClaimedDate *string `json:"lastClaimedDate"`
	DailyStreak     int64   `json:"dailyStreak"`
}

type DailyClaim struct {
	Reward int64
	Streak int64
}

const SnapshotVersion = 1

// Snapshot is the flat persisted record of one engine.
type Snapshot struct {
	Version      int               `json:"version"`
	Session      Session           `json:"session"`
	Achievements []Achievement     `json:"achievements"`
	Daily        DailyRewardRecord `json:"daily"`
	SavedAt      time.Time         `json:"savedAt"`
}

type Payout struct {
	Coins             int64
	BonusSpinsGranted int64
	IsJackpot         bool
	Multiplier        float64
}

type SpinResult struct {
	ID        string
	Outcome   Outcome
	Payout    Payout
	Bet       int64
	UsedBonus bool
	Session   Session
	Unlocked  []Achievement
	At        time.Time
}

// SpinRecord is one row of spin history.
type SpinRecord struct {
	ID        string
	PlayerID  int64
	Outcome   string
	Bet       int64
	Coins     int64
	Balance   int64
	UsedBonus bool
	Jackpot   bool
	CreatedAt time.Time
}
