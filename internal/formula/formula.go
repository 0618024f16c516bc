// Package formula contains the pure progression math: XP curves, tier
// scaling, gather yields, quality rolls, and cost curves. Every function
// is deterministic given the balance tables and, where rolls are
// involved, an injected random source.
package formula

import (
	"math"

	"github.com/forgebound/forge-api/internal/balance"
	"github.com/forgebound/forge-api/internal/pkg/rng"
)

// MaxLevel caps skill levels.
const MaxLevel = 999

// TotalXPForLevel returns the cumulative XP required to reach level.
// Level 1 costs nothing; the curve is strictly increasing above that.
func TotalXPForLevel(t *balance.Tables, level int) float64 {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return math.Floor(t.XP.Base * math.Pow(float64(level-1), t.XP.Exponent))
}

// LevelFromTotalXP returns the greatest level whose cumulative XP
// requirement does not exceed xp, clamped to [1, MaxLevel].
func LevelFromTotalXP(t *balance.Tables, xp float64) int {
	if xp <= 0 {
		return 1
	}
	lo, hi := 1, MaxLevel
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if TotalXPForLevel(t, mid) <= xp {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// TierFromLevel maps a skill level to its resource tier.
func TierFromLevel(t *balance.Tables, level int) int {
	tier := (level-1)/t.Tiers.LevelsPerTier + 1
	if tier > t.Tiers.MaxTier {
		tier = t.Tiers.MaxTier
	}
	return tier
}

// XPPerAction returns the XP granted by one gather or craft action.
// Percentage bonuses stack additively.
func XPPerAction(t *balance.Tables, baseXP float64, tier int, bonus float64) float64 {
	scaled := baseXP * math.Pow(t.Tiers.XPMultiplier, float64(tier-1))
	return math.Floor(scaled * (1 + bonus))
}

// GatherRolls holds the outcome of the two independent bonus draws for
// a single gather action. Both may trigger on the same tap.
type GatherRolls struct {
	Crit  bool
	Lucky bool
}

// RollGather performs the two independent Bernoulli draws.
func RollGather(t *balance.Tables, r rng.Roller) GatherRolls {
	return GatherRolls{
		Crit:  r.Float64() < t.Gather.CritChance,
		Lucky: r.Float64() < t.Gather.LuckyChance,
	}
}

// GatherYield returns the resource count for one tap: base amount plus
// flat bonus taps, then each triggered roll multiplies independently.
func GatherYield(t *balance.Tables, base, bonusTaps int, rolls GatherRolls) int {
	amount := float64(base + bonusTaps)
	if rolls.Crit {
		amount *= t.Gather.CritMultiplier
	}
	if rolls.Lucky {
		amount *= t.Gather.LuckyMultiplier
	}
	n := int(math.Floor(amount))
	if n < 1 {
		n = 1
	}
	return n
}

// RollQuality selects a quality tier with a single draw mapped through
// the cumulative weight distribution, so tier probabilities are exactly
// weight/totalWeight regardless of table size.
func RollQuality(t *balance.Tables, r rng.Roller) balance.QualityTier {
	total := 0.0
	for _, q := range t.Quality {
		total += q.Weight
	}
	draw := r.Float64() * total
	cum := 0.0
	for _, q := range t.Quality {
		cum += q.Weight
		if draw < cum {
			return q
		}
	}
	// Float accumulation can leave draw a hair past the final bucket.
	return t.Quality[len(t.Quality)-1]
}

// UnlockCost returns the gold cost of the nth non-support skill unlock
// (1-based over skills already unlocked, not counting the starter).
func UnlockCost(t *balance.Tables, nth int) float64 {
	if nth < 1 {
		nth = 1
	}
	return math.Floor(t.Unlock.BaseCost * math.Pow(t.Unlock.Growth, float64(nth-1)))
}

// TalentCost returns the chaos-point cost of buying the next rank when
// the talent currently sits at rank.
func TalentCost(def *balance.TalentDef, rank int) int64 {
	return def.BaseCost + int64(rank)*def.CostStep
}

// SellValue returns the unit sale price of a tiered resource or item.
func SellValue(t *balance.Tables, baseValue float64, tier int) float64 {
	return baseValue * math.Pow(t.Tiers.ValueMultiplier, float64(tier-1))
}

// ChaosPointsOnPrestige computes the prestige award from the skill
// levels and gold being reset. Coefficients are balance data.
func ChaosPointsOnPrestige(t *balance.Tables, levels []int, gold float64) int64 {
	levelSum := 0
	for _, l := range levels {
		levelSum += l
	}
	if gold < 0 {
		gold = 0
	}
	raw := t.Prestige.LevelCoeff*float64(levelSum) + t.Prestige.GoldCoeff*math.Sqrt(gold)
	return int64(math.Floor(raw))
}
