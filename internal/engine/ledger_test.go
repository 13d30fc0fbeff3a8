package engine

import (
	"testing"

	"secret-casino-bot/internal/domain"
	"secret-casino-bot/internal/slot"
)

func triple(s domain.Symbol) domain.Outcome {
	return domain.Outcome{s, s, s}
}

var noMatch = domain.Outcome{domain.Cherry, domain.Lemon, domain.Orange}

func spinOnce(t *testing.T, s domain.Session, o domain.Outcome) (domain.Session, domain.Payout) {
	t.Helper()
	l := DefaultLimits()
	next, st, ok := Begin(s, l)
	if !ok {
		t.Fatalf("Begin rejected session %+v", s)
	}
	p := Payout(next, st, o, slot.DefaultPaytable())
	return Resolve(next, st, p, l), p
}

func TestScenarioA_TierATriple(t *testing.T) {
	s := domain.DefaultSession()
	got, p := spinOnce(t, s, triple(domain.Diamond))

	if p.Coins != 500 || p.BonusSpinsGranted != 5 {
		t.Fatalf("payout = %+v, want 500 coins and 5 spins", p)
	}
	if got.Balance != 1490 {
		t.Errorf("Balance = %d, want 1490", got.Balance)
	}
	if got.BonusRounds != 5 {
		t.Errorf("BonusRounds = %d, want 5", got.BonusRounds)
	}
	if got.Jackpot != 5001 {
		t.Errorf("Jackpot = %d, want 5001", got.Jackpot)
	}
	if got.WinStreak != 1 || got.MaxWinStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", got.WinStreak, got.MaxWinStreak)
	}
}

func TestScenarioB_JackpotResetsPool(t *testing.T) {
	s := domain.DefaultSession()
	s.BonusRounds = 1
	got, p := spinOnce(t, s, triple(domain.Gift))

	if !p.IsJackpot || p.Coins != 5000 {
		t.Fatalf("payout = %+v, want jackpot of 5000", p)
	}
	if got.Jackpot != domain.BaseJackpot {
		t.Errorf("Jackpot = %d, want %d", got.Jackpot, domain.BaseJackpot)
	}
	if got.BonusRounds != 10 {
		t.Errorf("BonusRounds = %d, want 10", got.BonusRounds)
	}
	if got.JackpotWins != 1 {
		t.Errorf("JackpotWins = %d, want 1", got.JackpotWins)
	}
	if got.Balance != 6000 {
		t.Errorf("Balance = %d, want 6000", got.Balance)
	}
}

func TestJackpotOnPaidSpinIncludesContribution(t *testing.T) {
	s := domain.DefaultSession()
	s.Bet = 100
	got, p := spinOnce(t, s, triple(domain.Gift))
	if p.Coins != 5010 {
		t.Errorf("Coins = %d, want 5010", p.Coins)
	}
	if got.Jackpot != domain.BaseJackpot {
		t.Errorf("Jackpot = %d, want reset to base", got.Jackpot)
	}
}

func TestScenarioC_InsufficientFunds(t *testing.T) {
	s := domain.DefaultSession()
	s.Balance = 5
	next, st, ok := Begin(s, DefaultLimits())
	if ok {
		t.Fatal("Begin accepted a spin it cannot pay for")
	}
	if next != s {
		t.Errorf("session changed on rejected spin: %+v", next)
	}
	if st != (Stake{}) {
		t.Errorf("stake = %+v, want zero", st)
	}
}

func TestScenarioD_BonusModeClearsWhenRoundsRunOut(t *testing.T) {
	s := domain.DefaultSession()
	s.BonusRounds = 3
	balance := s.Balance

	for i := 1; i <= 3; i++ {
		s, _ = spinOnce(t, s, noMatch)
		if s.Balance != balance {
			t.Fatalf("spin %d debited a free spin: balance %d", i, s.Balance)
		}
		if i < 3 && !s.InBonusMode {
			t.Fatalf("spin %d: InBonusMode cleared early", i)
		}
	}
	if s.InBonusMode {
		t.Error("InBonusMode still set after last free spin")
	}
	if s.BonusRounds != 0 {
		t.Errorf("BonusRounds = %d, want 0", s.BonusRounds)
	}
	if s.Jackpot != domain.BaseJackpot {
		t.Errorf("free spins fed the pool: %d", s.Jackpot)
	}
}

func TestBonusModeDoublesTriple(t *testing.T) {
	s := domain.DefaultSession()
	s.BonusRounds = 1
	_, p := spinOnce(t, s, triple(domain.Cherry))
	if p.Coins != 200 {
		t.Errorf("Coins = %d, want 200", p.Coins)
	}
}

func TestPaidSpinClearsBonusMode(t *testing.T) {
	s := domain.DefaultSession()
	s.InBonusMode = true
	got, _ := spinOnce(t, s, noMatch)
	if got.InBonusMode {
		t.Error("paid spin left InBonusMode set")
	}
}

func TestStreaks(t *testing.T) {
	pair := domain.Outcome{domain.Cherry, domain.Cherry, domain.Lemon}
	seq := []struct {
		o          domain.Outcome
		wantStreak int64
		wantMax    int64
	}{
		{pair, 1, 1},
		{triple(domain.Lemon), 2, 2},
		{pair, 3, 3},
		{noMatch, 0, 3},
		{pair, 1, 3},
		{noMatch, 0, 3},
	}

	s := domain.DefaultSession()
	for i, step := range seq {
		before := s.Balance
		var p domain.Payout
		s, p = spinOnce(t, s, step.o)
		if s.WinStreak != step.wantStreak {
			t.Errorf("step %d: WinStreak = %d, want %d", i, s.WinStreak, step.wantStreak)
		}
		if s.MaxWinStreak != step.wantMax {
			t.Errorf("step %d: MaxWinStreak = %d, want %d", i, s.MaxWinStreak, step.wantMax)
		}
		if s.Balance != before-s.Bet+p.Coins {
			t.Errorf("step %d: Balance = %d, want %d", i, s.Balance, before-s.Bet+p.Coins)
		}
	}
	if s.TotalSpins != int64(len(seq)) {
		t.Errorf("TotalSpins = %d, want %d", s.TotalSpins, len(seq))
	}
}

func TestMaxBonusCollectedIsHighWater(t *testing.T) {
	s := domain.DefaultSession()
	s, _ = spinOnce(t, s, triple(domain.Diamond))
	s, _ = spinOnce(t, s, noMatch)
	s, _ = spinOnce(t, s, noMatch)
	if s.BonusRounds != 3 {
		t.Fatalf("BonusRounds = %d, want 3", s.BonusRounds)
	}
	if s.MaxBonusCollected != 5 {
		t.Errorf("MaxBonusCollected = %d, want 5", s.MaxBonusCollected)
	}
}

func TestValidBet(t *testing.T) {
	l := DefaultLimits()
	tests := []struct {
		name    string
		bet     int64
		balance int64
		want    bool
	}{
		{"minimum", 10, 1000, true},
		{"below minimum", 9, 1000, false},
		{"maximum", 500, 1000, true},
		{"above maximum", 501, 1000, false},
		{"capped by balance", 100, 50, false},
		{"equal to balance", 50, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.ValidBet(tt.bet, tt.balance); got != tt.want {
				t.Errorf("ValidBet(%d, %d) = %v, want %v", tt.bet, tt.balance, got, tt.want)
			}
		})
	}
}
