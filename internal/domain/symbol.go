package domain

type Symbol string

const (
	Cherry  Symbol = "🍒"
	Lemon   Symbol = "🍋"
	Orange  Symbol = "🍊"
	Grape   Symbol = "🍇"
	Diamond Symbol = "💎"
	Star    Symbol = "⭐"
	Gift    Symbol = "🎁"
)

// Alphabet is ordered; the generator's streak assist draws from its head.
var Alphabet = []Symbol{Cherry, Lemon, Orange, Grape, Diamond, Star, Gift}

const JackpotSymbol = Gift

type Outcome [3]Symbol

func (o Outcome) IsTriple() bool {
	return o[0] == o[1] && o[1] == o[2]
}

func (o Outcome) IsJackpot() bool {
	return o.IsTriple() && o[0] == JackpotSymbol
}

// HasPair reports exactly two matching reels in any position.
func (o Outcome) HasPair() bool {
	if o.IsTriple() {
		return false
	}
	return o[0] == o[1] || o[1] == o[2] || o[0] == o[2]
}

func (o Outcome) String() string {
	return string(o[0]) + string(o[1]) + string(o[2])
}

func (s Symbol) Valid() bool {
	for _, a := range Alphabet {
		if a == s {
			return true
		}
	}
	return false
}
