// Package balance holds the game-balance tables: XP curves, tier
// multipliers, recipes, talents, spells, and achievement thresholds.
// Tables are pure data. Tuning lives in YAML; compiled-in defaults keep
// the engine runnable without a config file.
package balance

// SkillCategory groups skills by how they are unlocked and reset.
type SkillCategory string

// Skill categories
const (
	CategoryGathering SkillCategory = "gathering"
	CategoryCrafting  SkillCategory = "crafting"
	CategorySupport   SkillCategory = "support"
)

// XPCurve defines the cumulative experience curve.
// TotalXPForLevel(L) = floor(Base * (L-1)^Exponent).
type XPCurve struct {
	Base     float64 `yaml:"base"`
	Exponent float64 `yaml:"exponent"`
}

// TierTable controls tier progression and tier scaling.
type TierTable struct {
	LevelsPerTier   int     `yaml:"levels_per_tier"`
	MaxTier         int     `yaml:"max_tier"`
	ValueMultiplier float64 `yaml:"value_multiplier"`
	XPMultiplier    float64 `yaml:"xp_multiplier"`
}

// GatherTable controls per-tap yield and the two independent bonus rolls.
type GatherTable struct {
	CritChance      float64 `yaml:"crit_chance"`
	CritMultiplier  float64 `yaml:"crit_multiplier"`
	LuckyChance     float64 `yaml:"lucky_chance"`
	LuckyMultiplier float64 `yaml:"lucky_multiplier"`
}

// SkillDef defines a skill. Slice order in Tables.Skills is the unlock
// order for non-support skills.
type SkillDef struct {
	Key       string        `yaml:"key"`
	Name      string        `yaml:"name"`
	Category  SkillCategory `yaml:"category"`
	BaseXP    float64       `yaml:"base_xp"`
	BaseYield int           `yaml:"base_yield"`
	BaseValue float64       `yaml:"base_value"`
}

// UnlockTable prices skill unlocks.
type UnlockTable struct {
	BaseCost     float64 `yaml:"base_cost"`
	Growth       float64 `yaml:"growth"`
	SupportChaos int64   `yaml:"support_chaos"`
}

// QualityTier is one entry in the weighted quality table.
type QualityTier struct {
	Key             string  `yaml:"key"`
	Weight          float64 `yaml:"weight"`
	ValueMultiplier float64 `yaml:"value_multiplier"`
}

// Recipe defines a craftable output. Recipes with a non-empty Slot
// produce equipment on collection instead of ledger stock.
type Recipe struct {
	ID         string         `yaml:"id"`
	Skill      string         `yaml:"skill"`
	LevelReq   int            `yaml:"level_req"`
	DurationMS int64          `yaml:"duration_ms"`
	Inputs     map[string]int `yaml:"inputs"`
	XP         float64        `yaml:"xp"`
	BaseValue  float64        `yaml:"base_value"`
	Slot       string         `yaml:"slot,omitempty"`
	StatBudget int            `yaml:"stat_budget,omitempty"`
}

// EffectKind names what a talent rank or active spell modifies.
type EffectKind string

// Effect kinds
const (
	EffectXPBonus     EffectKind = "xp_bonus"
	EffectYieldBonus  EffectKind = "yield_bonus"
	EffectBonusTaps   EffectKind = "bonus_taps"
	EffectCraftSpeed  EffectKind = "craft_speed"
	EffectMaxMana     EffectKind = "max_mana"
	EffectGoldBonus   EffectKind = "gold_bonus"
)

// TalentDef defines a purchasable talent.
type TalentDef struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	MaxRank  int        `yaml:"max_rank"`
	BaseCost int64      `yaml:"base_cost"`
	CostStep int64      `yaml:"cost_step"`
	Effect   EffectKind `yaml:"effect"`
	PerRank  float64    `yaml:"per_rank"`
}

// SpellDef defines a castable spell.
type SpellDef struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	ManaCost   float64    `yaml:"mana_cost"`
	DurationMS int64      `yaml:"duration_ms"`
	CooldownMS int64      `yaml:"cooldown_ms"`
	Effect     EffectKind `yaml:"effect"`
	Amount     float64    `yaml:"amount"`
}

// ManaTable controls the mana pool and its continuous regeneration.
type ManaTable struct {
	BaseMax        float64 `yaml:"base_max"`
	RegenPerSecond float64 `yaml:"regen_per_second"`
}

// PrestigeTable controls the prestige gate and the chaos-point award.
// The award formula is floor(LevelCoeff*Σlevels + GoldCoeff*sqrt(gold)),
// computed from the pre-reset snapshot.
type PrestigeTable struct {
	RequiredLevel int     `yaml:"required_level"`
	LevelCoeff    float64 `yaml:"level_coeff"`
	GoldCoeff     float64 `yaml:"gold_coeff"`
}

// AchievementKind selects the predicate an achievement checks.
type AchievementKind string

// Achievement kinds
const (
	AchievementTaps     AchievementKind = "taps"
	AchievementLevel    AchievementKind = "level"
	AchievementGold     AchievementKind = "gold"
	AchievementCrafts   AchievementKind = "crafts"
	AchievementPrestige AchievementKind = "prestige"
)

// AchievementDef defines one achievement: a threshold predicate plus a
// gold reward.
type AchievementDef struct {
	ID        string          `yaml:"id"`
	Name      string          `yaml:"name"`
	Kind      AchievementKind `yaml:"kind"`
	Threshold float64         `yaml:"threshold"`
	Reward    float64         `yaml:"reward"`
}

// Tables is the full balance configuration.
type Tables struct {
	XP           XPCurve          `yaml:"xp"`
	Tiers        TierTable        `yaml:"tiers"`
	Gather       GatherTable      `yaml:"gather"`
	Skills       []SkillDef       `yaml:"skills"`
	Unlock       UnlockTable      `yaml:"unlock"`
	Quality      []QualityTier    `yaml:"quality"`
	Recipes      []Recipe         `yaml:"recipes"`
	Talents      []TalentDef      `yaml:"talents"`
	Spells       []SpellDef       `yaml:"spells"`
	Mana         ManaTable        `yaml:"mana"`
	Prestige     PrestigeTable    `yaml:"prestige"`
	Achievements []AchievementDef `yaml:"achievements"`
}

// Skill returns the skill definition for key, or nil.
func (t *Tables) Skill(key string) *SkillDef {
	for i := range t.Skills {
		if t.Skills[i].Key == key {
			return &t.Skills[i]
		}
	}
	return nil
}

// Recipe returns the recipe with the given id, or nil.
func (t *Tables) Recipe(id string) *Recipe {
	for i := range t.Recipes {
		if t.Recipes[i].ID == id {
			return &t.Recipes[i]
		}
	}
	return nil
}

// Talent returns the talent definition with the given id, or nil.
func (t *Tables) Talent(id string) *TalentDef {
	for i := range t.Talents {
		if t.Talents[i].ID == id {
			return &t.Talents[i]
		}
	}
	return nil
}

// Spell returns the spell definition with the given id, or nil.
func (t *Tables) Spell(id string) *SpellDef {
	for i := range t.Spells {
		if t.Spells[i].ID == id {
			return &t.Spells[i]
		}
	}
	return nil
}

// UnlockSequence returns the non-support skill keys in fixed unlock
// order. The ordering is a design constraint, not player choice.
func (t *Tables) UnlockSequence() []string {
	seq := make([]string, 0, len(t.Skills))
	for _, s := range t.Skills {
		if s.Category != CategorySupport {
			seq = append(seq, s.Key)
		}
	}
	return seq
}
