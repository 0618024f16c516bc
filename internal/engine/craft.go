package engine

import (
	"math"
	"time"

	"github.com/forgebound/forge-api/internal/balance"
	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/formula"
)

func (e *Engine) startCraft(state *entities.GameState, a StartCraft, now time.Time) Outcome {
	if a.Quantity < 1 {
		return rejected("quantity must be at least 1")
	}
	recipe := e.balance.Recipe(a.RecipeID)
	if recipe == nil {
		return rejectedf("unknown recipe %q", a.RecipeID)
	}
	sk := state.Skill(recipe.Skill)
	if sk == nil || !sk.Unlocked {
		return rejectedf("skill %q is locked", recipe.Skill)
	}
	if sk.Level < recipe.LevelReq {
		return rejectedf("recipe %q requires level %d", a.RecipeID, recipe.LevelReq)
	}
	for key, perUnit := range recipe.Inputs {
		if state.Resources[key] < perUnit*a.Quantity {
			return rejectedf("insufficient %s", key)
		}
	}

	// Materials are committed up front; cancellation never refunds.
	for key, perUnit := range recipe.Inputs {
		state.Resources[key] -= perUnit * a.Quantity
	}

	duration := recipe.DurationMS
	if speed := e.effectBonus(state, balance.EffectCraftSpeed, now); speed > 0 {
		duration = int64(math.Floor(float64(duration) / (1 + speed)))
		if duration < 1 {
			duration = 1
		}
	}

	ms := now.UnixMilli()
	state.CraftQueue = append(state.CraftQueue, entities.CraftQueueEntry{
		ID:        e.idGen.Generate(),
		RecipeID:  a.RecipeID,
		Quantity:  a.Quantity,
		StartedAt: ms,
		EndsAt:    ms + duration*int64(a.Quantity),
	})

	return applied()
}

func (e *Engine) cancelCraft(state *entities.GameState, a CancelCraft) Outcome {
	for i := range state.CraftQueue {
		if state.CraftQueue[i].ID == a.EntryID {
			state.CraftQueue = append(state.CraftQueue[:i], state.CraftQueue[i+1:]...)
			return applied()
		}
	}
	return rejectedf("no queue entry %q", a.EntryID)
}

func (e *Engine) collectCraft(state *entities.GameState, a CollectCraft, now time.Time) Outcome {
	recipe := e.balance.Recipe(a.RecipeID)
	if recipe == nil {
		return rejectedf("unknown recipe %q", a.RecipeID)
	}

	// Collection is all-or-nothing: every queued batch of the recipe
	// must have finished, or the action is a no-op.
	ms := now.UnixMilli()
	for _, entry := range state.CraftQueue {
		if entry.RecipeID == a.RecipeID && entry.EndsAt > ms {
			return rejectedf("craft of %q is still in progress", a.RecipeID)
		}
	}

	collected := 0
	remaining := state.CraftQueue[:0]
	for _, entry := range state.CraftQueue {
		if entry.RecipeID == a.RecipeID {
			collected += entry.Quantity
			continue
		}
		remaining = append(remaining, entry)
	}
	if collected == 0 {
		return rejectedf("no completed entries for %q", a.RecipeID)
	}
	// Entries are consumed on collection, so collecting twice is a
	// no-op the second time.
	state.CraftQueue = remaining

	if recipe.Slot != "" {
		for i := 0; i < collected; i++ {
			state.Inventory = append(state.Inventory, e.forgeEquipment(recipe))
		}
	} else if a.Liquidate {
		e.grantGold(state, recipe.BaseValue*float64(collected), now)
	} else {
		state.CraftedItems[recipe.ID] += collected
	}

	if sk := state.Skill(recipe.Skill); sk != nil {
		e.addXP(sk, recipe.XP*float64(collected))
	}
	state.Stats.TotalCrafts += int64(collected)

	return applied()
}

// forgeEquipment rolls quality for one produced item and spreads the
// recipe's stat budget across the stat block.
func (e *Engine) forgeEquipment(recipe *balance.Recipe) entities.Equipment {
	quality := formula.RollQuality(e.balance, e.roller)
	budget := int(math.Ceil(float64(recipe.StatBudget) * quality.ValueMultiplier))

	stats := entities.StatBlock{}
	for i := 0; i < budget; i++ {
		switch int(e.roller.Float64() * 4) {
		case 0:
			stats.Strength++
		case 1:
			stats.Intellect++
		case 2:
			stats.Agility++
		default:
			stats.Stamina++
		}
	}

	return entities.Equipment{
		ID:        e.idGen.Generate(),
		Name:      recipe.ID,
		Slot:      recipe.Slot,
		Rarity:    quality.Key,
		Stats:     stats,
		SellValue: math.Floor(recipe.BaseValue * quality.ValueMultiplier),
	}
}
