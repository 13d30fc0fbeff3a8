package repository

import (
	"errors"
	"time"

	"secret-casino-bot/internal/domain"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnknownSnapshotFormat = errors.New("unknown snapshot format")

func EncodeSnapshot(s domain.Snapshot) ([]byte, error) {
	if s.Version == 0 {
		s.Version = domain.SnapshotVersion
	}
	return json.Marshal(s)
}

// legacySnapshot is the flat record written by the browser build: every
// counter at top level and the daily date in Date.toDateString form.
type legacySnapshot struct {
	Balance           *int64               `json:"balance"`
	TotalSpins        int64                `json:"totalSpins"`
	TotalWins         int64                `json:"totalWins"`
	Jackpot           int64                `json:"jackpot"`
	BonusRounds       int64                `json:"bonusRounds"`
	WinStreak         int64                `json:"winStreak"`
	MaxWinStreak      int64                `json:"maxWinStreak"`
	Achievements      []domain.Achievement `json:"achievements"`
	LastDailyReward   *string              `json:"lastDailyReward"`
	DailyStreak       int64                `json:"dailyStreak"`
	JackpotWins       int64                `json:"jackpotWins"`
	MaxBonusCollected int64                `json:"maxBonusCollected"`
}

const legacyDateLayout = "Mon Jan 02 2006"

func DecodeSnapshot(data []byte) (*domain.Snapshot, error) {
	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if probe.Version > 0 {
		var snap domain.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, err
		}
		return &snap, nil
	}

	// Fallback: flat legacy record
	var old legacySnapshot
	if err := json.Unmarshal(data, &old); err != nil {
		return nil, err
	}
	if old.Balance == nil {
		return nil, ErrUnknownSnapshotFormat
	}
	return old.upgrade(), nil
}

func (l legacySnapshot) upgrade() *domain.Snapshot {
	s := domain.DefaultSession()
	// zero meant "unset" in the legacy writer
	if *l.Balance != 0 {
		s.Balance = *l.Balance
	}
	if l.Jackpot != 0 {
		s.Jackpot = l.Jackpot
	}
	s.TotalSpins = l.TotalSpins
	s.TotalWins = l.TotalWins
	s.BonusRounds = l.BonusRounds
	s.WinStreak = l.WinStreak
	s.MaxWinStreak = max(l.MaxWinStreak, l.WinStreak)
	s.JackpotWins = l.JackpotWins
	s.MaxBonusCollected = max(l.MaxBonusCollected, l.BonusRounds)

	daily := domain.DailyRewardRecord{DailyStreak: l.DailyStreak}
	if l.LastDailyReward != nil {
		if t, err := time.Parse(legacyDateLayout, *l.LastDailyReward); err == nil {
			d := t.Format(domain.DateLayout)
			daily.LastClaimedDate = &d
		}
	}

	return &domain.Snapshot{
		Version:      domain.SnapshotVersion,
		Session:      s,
		Achievements: l.Achievements,
		Daily:        daily,
	}
}
