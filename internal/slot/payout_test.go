package slot

import (
	"testing"

	"secret-casino-bot/internal/domain"
)

func TestComputePayout(t *testing.T) {
	d, s, g, c, l, o := domain.Diamond, domain.Star, domain.Grape, domain.Cherry, domain.Lemon, domain.Orange
	gift := domain.Gift

	tests := []struct {
		name      string
		outcome   domain.Outcome
		bet       int64
		bonus     bool
		wantCoins int64
		wantSpins int64
		wantJP    bool
	}{
		{"jackpot pays pool", domain.Outcome{gift, gift, gift}, 10, false, 5000, 10, true},
		{"jackpot ignores bonus mode", domain.Outcome{gift, gift, gift}, 10, true, 5000, 10, true},
		{"tier A", domain.Outcome{d, d, d}, 10, false, 500, 5, false},
		{"tier A bonus", domain.Outcome{d, d, d}, 10, true, 1000, 5, false},
		{"tier B", domain.Outcome{s, s, s}, 25, false, 750, 3, false},
		{"tier C", domain.Outcome{g, g, g}, 10, false, 200, 2, false},
		{"plain triple", domain.Outcome{c, c, c}, 10, false, 100, 0, false},
		{"plain triple bonus", domain.Outcome{c, c, c}, 10, true, 200, 0, false},
		{"pair left", domain.Outcome{c, c, l}, 10, false, 20, 0, false},
		{"pair split", domain.Outcome{l, c, l}, 10, false, 20, 0, false},
		{"pair right", domain.Outcome{o, gift, gift}, 10, false, 20, 0, false},
		{"pair bonus", domain.Outcome{c, c, l}, 10, true, 30, 0, false},
		{"no match", domain.Outcome{c, l, o}, 100, false, 0, 0, false},
		{"no match bonus", domain.Outcome{c, l, o}, 100, true, 0, 0, false},
	}

	table := DefaultPaytable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.ComputePayout(tt.outcome, tt.bet, tt.bonus, 5000)
			if got.Coins != tt.wantCoins {
				t.Errorf("Coins = %d, want %d", got.Coins, tt.wantCoins)
			}
			if got.BonusSpinsGranted != tt.wantSpins {
				t.Errorf("BonusSpinsGranted = %d, want %d", got.BonusSpinsGranted, tt.wantSpins)
			}
			if got.IsJackpot != tt.wantJP {
				t.Errorf("IsJackpot = %v, want %v", got.IsJackpot, tt.wantJP)
			}
		})
	}
}

func TestComputePayout_FloorsFractionalMultiplier(t *testing.T) {
	table := DefaultPaytable()
	table.PairMultiplier = 1.5
	got := table.ComputePayout(domain.Outcome{domain.Cherry, domain.Cherry, domain.Lemon}, 15, false, 0)
	if got.Coins != 22 {
		t.Errorf("Coins = %d, want 22", got.Coins)
	}
}
