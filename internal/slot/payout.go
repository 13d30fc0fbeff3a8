package slot

import (
	"math"

	"secret-casino-bot/internal/domain"
)

type Tier struct {
	Multiplier float64 `yaml:"multiplier"`
	BonusSpins int64   `yaml:"bonus_spins"`
}

type Paytable struct {
	Tiers               map[domain.Symbol]Tier `yaml:"tiers"`
	TripleMultiplier    float64                `yaml:"triple_multiplier"`
	PairMultiplier      float64                `yaml:"pair_multiplier"`
	BonusPairMultiplier float64                `yaml:"bonus_pair_multiplier"`
	JackpotBonusSpins   int64                  `yaml:"jackpot_bonus_spins"`
}

func DefaultPaytable() Paytable {
	return Paytable{
		Tiers: map[domain.Symbol]Tier{
			domain.Diamond: {Multiplier: 50, BonusSpins: 5},
			domain.Star:    {Multiplier: 30, BonusSpins: 3},
			domain.Grape:   {Multiplier: 20, BonusSpins: 2},
		},
		TripleMultiplier:    10,
		PairMultiplier:      2,
		BonusPairMultiplier: 3,
		JackpotBonusSpins:   10,
	}
}

// ComputePayout resolves an outcome against the table. pool is the current
// progressive jackpot; resetting it is left to the caller.
func (p Paytable) ComputePayout(o domain.Outcome, bet int64, inBonusMode bool, pool int64) domain.Payout {
	switch {
	case o.IsJackpot():
		return domain.Payout{
			Coins:             pool,
			BonusSpinsGranted: p.JackpotBonusSpins,
			IsJackpot:         true,
		}
	case o.IsTriple():
		mult := p.TripleMultiplier
		var spins int64
		if t, ok := p.Tiers[o[0]]; ok {
			mult, spins = t.Multiplier, t.BonusSpins
		}
		if inBonusMode {
			mult *= 2
		}
		return domain.Payout{Coins: stake(bet, mult), BonusSpinsGranted: spins, Multiplier: mult}
	case o.HasPair():
		mult := p.PairMultiplier
		if inBonusMode {
			mult = p.BonusPairMultiplier
		}
		return domain.Payout{Coins: stake(bet, mult), Multiplier: mult}
	}
	return domain.Payout{}
}

func stake(bet int64, mult float64) int64 {
	return int64(math.Floor(float64(bet) * mult))
}
