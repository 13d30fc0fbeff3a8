package engine

import (
	"math"

	"secret-casino-bot/internal/domain"
	"secret-casino-bot/internal/slot"
)

type Limits struct {
	MinBet         int64   `yaml:"min_bet"`
	MaxBet         int64   `yaml:"max_bet"`
	InitialBalance int64   `yaml:"initial_balance"`
	BaseJackpot    int64   `yaml:"base_jackpot"`
	JackpotRate    float64 `yaml:"jackpot_rate"`
}

func DefaultLimits() Limits {
	return Limits{
		MinBet:         domain.MinBet,
		MaxBet:         domain.MaxBet,
		InitialBalance: domain.InitialBalance,
		BaseJackpot:    domain.BaseJackpot,
		JackpotRate:    0.1,
	}
}

// MaxBetFor is the highest bet the balance allows.
func (l Limits) MaxBetFor(balance int64) int64 {
	return min(l.MaxBet, balance)
}

func (l Limits) ValidBet(bet, balance int64) bool {
	return bet >= l.MinBet && bet <= l.MaxBetFor(balance)
}

func (l Limits) FreshSession() domain.Session {
	return domain.NewSession(l.InitialBalance, l.BaseJackpot, l.MinBet)
}

// Stake is what Begin took for the spin in flight.
type Stake struct {
	Bet       int64
	UsedBonus bool
}

// Begin is the Idle -> Spinning transition. ok is false, with s returned
// untouched, when the player can neither pay nor use a free spin.
func Begin(s domain.Session, l Limits) (next domain.Session, st Stake, ok bool) {
	if !s.CanSpin() {
		return s, Stake{}, false
	}
	if s.BonusRounds > 0 {
		s.BonusRounds--
		s.InBonusMode = true
		return s, Stake{Bet: s.Bet, UsedBonus: true}, true
	}
	s.Balance -= s.Bet
	s.Jackpot += int64(math.Floor(float64(s.Bet) * l.JackpotRate))
	s.InBonusMode = false
	return s, Stake{Bet: s.Bet}, true
}

// Payout prices an outcome for the session produced by Begin.
func Payout(s domain.Session, st Stake, o domain.Outcome, table slot.Paytable) domain.Payout {
	return table.ComputePayout(o, st.Bet, s.InBonusMode, s.Jackpot)
}

// Resolve is the Spinning -> Resolved transition.
func Resolve(s domain.Session, st Stake, p domain.Payout, l Limits) domain.Session {
	s.Balance += p.Coins
	s.TotalWins += p.Coins
	s.TotalSpins++
	s.LastWin = p.Coins

	if p.IsJackpot {
		s.Jackpot = l.BaseJackpot
		s.JackpotWins++
	}

	s.BonusRounds += p.BonusSpinsGranted
	s.MaxBonusCollected = max(s.MaxBonusCollected, s.BonusRounds)

	if p.IsJackpot || p.Coins > 0 {
		s.WinStreak++
	} else {
		s.WinStreak = 0
	}
	s.MaxWinStreak = max(s.MaxWinStreak, s.WinStreak)

	if st.UsedBonus && s.BonusRounds == 0 {
		s.InBonusMode = false
	}
	return s
}
