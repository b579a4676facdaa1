package config

import (
	_ "embed"

	"github.com/KIM-17/matching-card-game/internal/deck"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

const defaultHideDelayMS = 1000

// Default returns the built-in configuration.
func Default() Config {
	tiers := deck.DefaultTiers()
	cfg := Config{
		HideDelayMS:       defaultHideDelayMS,
		DefaultDifficulty: string(deck.Medium),
		Tiers:             make([]TierConfig, len(tiers)),
	}
	for i, t := range tiers {
		cfg.Tiers[i] = TierConfig{
			Name:    string(t.Difficulty),
			Alias:   t.Alias,
			Pairs:   t.Pairs,
			Columns: t.Columns,
			Symbols: t.Symbols,
		}
	}
	return cfg
}
