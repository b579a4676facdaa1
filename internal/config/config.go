// Package config provides YAML-based configuration for the memory game:
// the tier table, the mismatch hide delay and the starting difficulty.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/KIM-17/matching-card-game/internal/deck"
)

// ErrUnknownDifficulty is returned when a difficulty name matches no tier.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Config is the full game configuration.
type Config struct {
	HideDelayMS       int          `yaml:"hide_delay_ms"`      // How long a mismatched pair stays up
	DefaultDifficulty string       `yaml:"default_difficulty"` // Tier name or alias
	Tiers             []TierConfig `yaml:"tiers"`
}

// TierConfig defines one difficulty tier.
type TierConfig struct {
	Name    string   `yaml:"name"`
	Alias   string   `yaml:"alias"`
	Pairs   int      `yaml:"pairs"`
	Columns int      `yaml:"columns"`
	Symbols []string `yaml:"symbols"`
}

// HideDelay returns the mismatch hide delay.
func (c Config) HideDelay() time.Duration {
	if c.HideDelayMS <= 0 {
		return time.Duration(defaultHideDelayMS) * time.Millisecond
	}
	return time.Duration(c.HideDelayMS) * time.Millisecond
}

// DeckTiers converts the tier table for the deck generator.
func (c Config) DeckTiers() []deck.Tier {
	tiers := make([]deck.Tier, len(c.Tiers))
	for i, t := range c.Tiers {
		symbols := make([]string, len(t.Symbols))
		copy(symbols, t.Symbols)
		tiers[i] = deck.Tier{
			Difficulty: deck.Difficulty(t.Name),
			Alias:      t.Alias,
			Pairs:      t.Pairs,
			Columns:    t.Columns,
			Symbols:    symbols,
		}
	}
	return tiers
}

// Validate checks the tier table and the default difficulty.
func (c Config) Validate() error {
	if c.HideDelayMS < 0 {
		return fmt.Errorf("config: hide_delay_ms must not be negative, got %d", c.HideDelayMS)
	}
	if err := deck.ValidateTiers(c.DeckTiers()); err != nil {
		return fmt.Errorf("config: invalid tiers: %w", err)
	}
	if c.DefaultDifficulty != "" {
		if _, err := c.ResolveDifficulty(c.DefaultDifficulty); err != nil {
			return err
		}
	}
	return nil
}
