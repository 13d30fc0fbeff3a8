package domain

const (
	InitialBalance int64 = 1000
	BaseJackpot    int64 = 5000
	MinBet         int64 = 10
	MaxBet         int64 = 500
)

type SpinState int

const (
	Idle SpinState = iota
	Spinning
	Resolved
)

func (s SpinState) String() string {
	switch s {
	case Spinning:
		return "spinning"
	case Resolved:
		return "resolved"
	default:
		return "idle"
	}
}

// Session is the whole economic state of one player.
type Session struct {
	Balance           int64 `json:"balance"`
	Bet               int64 `json:"bet"`
	Jackpot           int64 `json:"jackpot"`
	BonusRounds       int64 `json:"bonusRounds"`
	InBonusMode       bool  `json:"inBonusMode"`
	WinStreak         int64 `json:"winStreak"`
	MaxWinStreak      int64 `json:"maxWinStreak"`
	TotalSpins        int64 `json:"totalSpins"`
	TotalWins         int64 `json:"totalWins"`
	JackpotWins       int64 `json:"jackpotWins"`
	MaxBonusCollected int64 `json:"maxBonusCollected"`
	LastWin           int64 `json:"lastWin"`
}

func NewSession(balance, jackpot, bet int64) Session {
	return Session{
		Balance: balance,
		Bet:     bet,
		Jackpot: jackpot,
	}
}

func DefaultSession() Session {
	return NewSession(InitialBalance, BaseJackpot, MinBet)
}

// CanSpin is false when the stake cannot be paid and no free spin is owed.
func (s Session) CanSpin() bool {
	return s.BonusRounds > 0 || s.Balance >= s.Bet
}

func (s Session) Metrics() Metrics {
	return Metrics{
		TotalSpins:     s.TotalSpins,
		TotalWins:      s.TotalWins,
		WinStreak:      s.WinStreak,
		JackpotWins:    s.JackpotWins,
		Balance:        s.Balance,
		BonusCollected: s.MaxBonusCollected,
	}
}

// Metrics is the read-only view achievements are evaluated against.
type Metrics struct {
	TotalSpins     int64
	TotalWins      int64
	WinStreak      int64
	JackpotWins    int64
	Balance        int64
	BonusCollected int64
}
