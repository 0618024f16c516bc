package engine

import (
	"github.com/forgebound/forge-api/internal/balance"
	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/formula"
)

func (e *Engine) prestige(state *entities.GameState) Outcome {
	eligible := false
	for _, sk := range state.Skills {
		if sk.Unlocked && sk.Level >= e.balance.Prestige.RequiredLevel {
			eligible = true
			break
		}
	}
	if !eligible {
		return rejectedf("prestige requires a skill at level %d", e.balance.Prestige.RequiredLevel)
	}

	// The award is a function of the pre-reset snapshot; compute it
	// before touching anything.
	levels := make([]int, 0, len(state.Skills))
	for _, sk := range state.Skills {
		if sk.Unlocked {
			levels = append(levels, sk.Level)
		}
	}
	earned := formula.ChaosPointsOnPrestige(e.balance, levels, state.Gold)

	starter := e.balance.Skills[0].Key
	for key, sk := range state.Skills {
		sk.Level = 1
		sk.TotalXP = 0
		def := e.balance.Skill(key)
		if def != nil && def.Category == balance.CategorySupport {
			continue // support unlock status survives prestige
		}
		sk.Unlocked = key == starter
	}

	state.Resources = make(map[string]int)
	state.CraftQueue = nil
	state.CraftedItems = make(map[string]int)
	state.Gold = 0
	state.Inventory = nil
	state.Equipped = make(map[string]*entities.Equipment)
	state.Spells = make(map[string]*entities.SpellState)
	state.LastGather = nil
	recomputeCharacter(state)

	// Talents persist, so the mana cap they grant does too.
	state.MaxMana = e.maxManaFor(state)
	state.Mana = state.MaxMana

	state.ChaosPoints += earned
	state.PrestigeCount++
	return applied()
}

func (e *Engine) buyTalent(state *entities.GameState, a BuyTalent) Outcome {
	def := e.balance.Talent(a.TalentID)
	if def == nil {
		return rejectedf("unknown talent %q", a.TalentID)
	}
	rank := state.Talents[a.TalentID]
	if rank >= def.MaxRank {
		return rejectedf("talent %q is at max rank", a.TalentID)
	}
	cost := formula.TalentCost(def, rank)
	if state.ChaosPoints < cost {
		return rejected("insufficient chaos points")
	}

	state.ChaosPoints -= cost
	state.Talents[a.TalentID] = rank + 1

	if def.Effect == balance.EffectMaxMana {
		state.MaxMana = e.maxManaFor(state)
	}
	return applied()
}
