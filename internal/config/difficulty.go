package config

import (
	"fmt"
	"strings"

	"github.com/KIM-17/matching-card-game/internal/deck"
)

// ResolveDifficulty maps a tier name or alias to its difficulty.
// An empty name resolves to the configured default, or the first tier.
func (c Config) ResolveDifficulty(name string) (deck.Difficulty, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.DefaultDifficulty
	}
	if name == "" {
		if len(c.Tiers) == 0 {
			return "", fmt.Errorf("%w: no tiers configured", ErrUnknownDifficulty)
		}
		return deck.Difficulty(c.Tiers[0].Name), nil
	}

	for _, t := range c.Tiers {
		if strings.EqualFold(name, t.Name) || (t.Alias != "" && strings.EqualFold(name, t.Alias)) {
			return deck.Difficulty(t.Name), nil
		}
	}
	return "", fmt.Errorf("%w %q (choose from %s)", ErrUnknownDifficulty, name, strings.Join(c.TierNames(), ", "))
}

// TierNames lists tier names in table order.
func (c Config) TierNames() []string {
	names := make([]string, len(c.Tiers))
	for i, t := range c.Tiers {
		names[i] = t.Name
	}
	return names
}
