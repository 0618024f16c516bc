package balance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads balance tables from a YAML file.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read balance file: %w", err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse balance file: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects tables the formula library cannot work with.
func (t *Tables) Validate() error {
	if t.XP.Base <= 0 || t.XP.Exponent <= 1 {
		return fmt.Errorf("balance: xp curve must have base > 0 and exponent > 1")
	}
	if t.Tiers.LevelsPerTier <= 0 || t.Tiers.MaxTier <= 0 {
		return fmt.Errorf("balance: tier table must have positive levels_per_tier and max_tier")
	}
	if len(t.Skills) == 0 {
		return fmt.Errorf("balance: at least one skill is required")
	}
	if t.Skills[0].Category == CategorySupport {
		return fmt.Errorf("balance: the starting skill cannot be a support skill")
	}
	if len(t.Quality) == 0 {
		return fmt.Errorf("balance: quality table cannot be empty")
	}
	totalWeight := 0.0
	for _, q := range t.Quality {
		if q.Weight < 0 {
			return fmt.Errorf("balance: quality tier %q has negative weight", q.Key)
		}
		totalWeight += q.Weight
	}
	if totalWeight <= 0 {
		return fmt.Errorf("balance: quality weights must sum to a positive value")
	}
	for _, r := range t.Recipes {
		if r.DurationMS <= 0 {
			return fmt.Errorf("balance: recipe %q has non-positive duration", r.ID)
		}
		if t.Skill(r.Skill) == nil {
			return fmt.Errorf("balance: recipe %q references unknown skill %q", r.ID, r.Skill)
		}
	}
	if t.Mana.BaseMax <= 0 || t.Mana.RegenPerSecond < 0 {
		return fmt.Errorf("balance: mana table must have positive base_max and non-negative regen")
	}
	if t.Prestige.RequiredLevel <= 1 {
		return fmt.Errorf("balance: prestige required_level must be above 1")
	}
	return nil
}
