package config

import (
	"errors"
	"fmt"
	"os"

	"secret-casino-bot/internal/domain"
	"secret-casino-bot/internal/engine"
	"secret-casino-bot/internal/slot"

	"gopkg.in/yaml.v3"
)

// rulesFile is the on-disk layout of rules.yaml. Keys that are absent keep
// their built-in value; tiers merge by symbol; achievements replace the
// whole catalog.
type rulesFile struct {
	Limits       engine.Limits        `yaml:"limits"`
	Paytable     slot.Paytable        `yaml:"paytable"`
	Generator    slot.GeneratorConfig `yaml:"generator"`
	Daily        engine.DailyRules    `yaml:"daily"`
	Achievements []domain.Achievement `yaml:"achievements"`
}

func DefaultRules() engine.Rules {
	return engine.DefaultRules()
}

// LoadRules reads game rules from path. A missing file yields the defaults.
func LoadRules(path string) (engine.Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultRules(), nil
		}
		return engine.Rules{}, err
	}
	return ParseRules(data)
}

func ParseRules(data []byte) (engine.Rules, error) {
	def := DefaultRules()
	f := rulesFile{
		Limits:       def.Limits,
		Paytable:     def.Paytable,
		Generator:    def.Generator,
		Daily:        def.Daily,
		Achievements: def.Catalog,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return engine.Rules{}, fmt.Errorf("parsing rules: %w", err)
	}

	rules := engine.Rules{
		Limits:    f.Limits,
		Paytable:  f.Paytable,
		Generator: f.Generator,
		Daily:     f.Daily,
		Catalog:   domain.Relock(f.Achievements),
	}
	if err := validateRules(rules); err != nil {
		return engine.Rules{}, err
	}
	return rules, nil
}

func validateRules(r engine.Rules) error {
	l := r.Limits
	switch {
	case l.MinBet <= 0:
		return fmt.Errorf("limits.min_bet must be positive, got %d", l.MinBet)
	case l.MaxBet < l.MinBet:
		return fmt.Errorf("limits.max_bet %d is below min_bet %d", l.MaxBet, l.MinBet)
	case l.InitialBalance < 0 || l.BaseJackpot < 0:
		return fmt.Errorf("limits: balances must not be negative")
	case l.JackpotRate < 0 || l.JackpotRate > 1:
		return fmt.Errorf("limits.jackpot_rate must be within [0,1], got %v", l.JackpotRate)
	}

	g := r.Generator
	if g.JackpotChance < 0 || g.JackpotChance > 1 || g.AssistChance < 0 || g.AssistChance > 1 {
		return fmt.Errorf("generator: chances must be within [0,1]")
	}
	if g.AssistPool <= 0 || g.AssistPool > len(domain.Alphabet) {
		return fmt.Errorf("generator.assist_pool must be within [1,%d], got %d", len(domain.Alphabet), g.AssistPool)
	}

	for sym := range r.Paytable.Tiers {
		if !sym.Valid() {
			return fmt.Errorf("paytable.tiers: unknown symbol %q", sym)
		}
	}

	seen := make(map[string]bool, len(r.Catalog))
	for _, a := range r.Catalog {
		if a.ID == "" {
			return fmt.Errorf("achievement without id")
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if !a.Metric.Valid() {
			return fmt.Errorf("achievement %q: unknown metric %q", a.ID, a.Metric)
		}
	}
	return nil
}
