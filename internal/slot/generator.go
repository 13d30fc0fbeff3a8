package slot

import "secret-casino-bot/internal/domain"

type GeneratorConfig struct {
	JackpotChance float64 `yaml:"jackpot_chance"`
	AssistChance  float64 `yaml:"assist_chance"`
	AssistStreak  int64   `yaml:"assist_streak"`
	AssistPool    int     `yaml:"assist_pool"`
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		JackpotChance: 0.001,
		AssistChance:  0.05,
		AssistStreak:  3,
		AssistPool:    3,
	}
}

type Generator struct {
	cfg      GeneratorConfig
	rng      RNG
	alphabet []domain.Symbol
}

func NewGenerator(cfg GeneratorConfig, rng RNG) *Generator {
	if cfg.AssistPool <= 0 || cfg.AssistPool > len(domain.Alphabet) {
		cfg.AssistPool = len(domain.Alphabet)
	}
	return &Generator{cfg: cfg, rng: rng, alphabet: domain.Alphabet}
}

// Generate draws one outcome. Rules are tried in order and the first hit
// wins: forced jackpot, streak assist, then three independent reels.
func (g *Generator) Generate(winStreak int64) domain.Outcome {
	if g.rng.Float64() < g.cfg.JackpotChance {
		return domain.Outcome{domain.JackpotSymbol, domain.JackpotSymbol, domain.JackpotSymbol}
	}
	if winStreak >= g.cfg.AssistStreak && g.rng.Float64() < g.cfg.AssistChance {
		s := g.alphabet[g.rng.IntN(g.cfg.AssistPool)]
		return domain.Outcome{s, s, s}
	}
	var o domain.Outcome
	for i := range o {
		o[i] = g.alphabet[g.rng.IntN(len(g.alphabet))]
	}
	return o
}
