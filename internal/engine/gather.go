package engine

import (
	"math"
	"time"

	"github.com/forgebound/forge-api/internal/balance"
	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/formula"
)

func (e *Engine) gather(state *entities.GameState, a Gather, now time.Time) Outcome {
	def := e.balance.Skill(a.Skill)
	if def == nil {
		return rejectedf("unknown skill %q", a.Skill)
	}
	if def.Category != balance.CategoryGathering {
		return rejectedf("skill %q is not a gathering skill", a.Skill)
	}
	sk := state.Skill(a.Skill)
	if sk == nil || !sk.Unlocked {
		return rejectedf("skill %q is locked", a.Skill)
	}

	tier := formula.TierFromLevel(e.balance, sk.Level)
	rolls := formula.RollGather(e.balance, e.roller)

	amount := formula.GatherYield(e.balance, def.BaseYield, e.bonusTaps(state, now), rolls)
	if yieldBonus := e.effectBonus(state, balance.EffectYieldBonus, now); yieldBonus > 0 {
		amount = int(math.Floor(float64(amount) * (1 + yieldBonus)))
		if amount < 1 {
			amount = 1
		}
	}

	xp := formula.XPPerAction(e.balance, def.BaseXP, tier, e.effectBonus(state, balance.EffectXPBonus, now))

	state.Resources[ResourceKey(a.Skill, tier)] += amount
	leveled := e.addXP(sk, xp)
	state.Stats.TotalTaps++

	// Overwritten every tap: the UI only ever sees the latest result.
	state.LastGather = &entities.GatherResult{
		Skill:     a.Skill,
		Amount:    amount,
		XP:        xp,
		Crit:      rolls.Crit,
		Lucky:     rolls.Lucky,
		LeveledUp: leveled,
		At:        now.UnixMilli(),
	}

	return applied()
}
