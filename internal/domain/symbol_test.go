package domain

import "testing"

func TestOutcomePredicates(t *testing.T) {
	tests := []struct {
		name                     string
		o                        Outcome
		triple, jackpot, hasPair bool
	}{
		{"jackpot", Outcome{Gift, Gift, Gift}, true, true, false},
		{"plain triple", Outcome{Lemon, Lemon, Lemon}, true, false, false},
		{"pair left", Outcome{Cherry, Cherry, Lemon}, false, false, true},
		{"pair split", Outcome{Star, Lemon, Star}, false, false, true},
		{"pair right", Outcome{Orange, Gift, Gift}, false, false, true},
		{"no match", Outcome{Cherry, Lemon, Orange}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.IsTriple(); got != tt.triple {
				t.Errorf("IsTriple() = %v", got)
			}
			if got := tt.o.IsJackpot(); got != tt.jackpot {
				t.Errorf("IsJackpot() = %v", got)
			}
			if got := tt.o.HasPair(); got != tt.hasPair {
				t.Errorf("HasPair() = %v", got)
			}
		})
	}
}

func TestSymbolValid(t *testing.T) {
	for _, s := range Alphabet {
		if !s.Valid() {
			t.Errorf("%s not valid", s)
		}
	}
	if Symbol("🐸").Valid() {
		t.Error("foreign symbol accepted")
	}
}

func TestCanSpin(t *testing.T) {
	s := DefaultSession()
	if !s.CanSpin() {
		t.Error("default session cannot spin")
	}
	s.Balance = 5
	if s.CanSpin() {
		t.Error("spin allowed with balance below bet")
	}
	s.BonusRounds = 1
	if !s.CanSpin() {
		t.Error("bonus round not honoured")
	}
}
