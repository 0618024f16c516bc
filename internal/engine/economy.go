package engine

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/forgebound/forge-api/internal/balance"
	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/formula"
)

// grantGold credits a sale or reward, applying the additive gold bonus
// and tracking lifetime earnings. The bonus window is evaluated at the
// acting time, not the previous action's timestamp.
func (e *Engine) grantGold(state *entities.GameState, amount float64, now time.Time) {
	amount *= 1 + e.effectBonus(state, balance.EffectGoldBonus, now)
	amount = math.Floor(amount*100) / 100
	state.Gold += amount
	state.Stats.GoldEarned += amount
}

// splitResourceKey parses "{kind}_t{tier}" composite identifiers.
func splitResourceKey(key string) (kind string, tier int, ok bool) {
	idx := strings.LastIndex(key, "_t")
	if idx <= 0 {
		return "", 0, false
	}
	tier, err := strconv.Atoi(key[idx+2:])
	if err != nil || tier < 1 {
		return "", 0, false
	}
	return key[:idx], tier, true
}

func (e *Engine) sellResource(state *entities.GameState, a SellResource, now time.Time) Outcome {
	held := state.Resources[a.Key]
	if held <= 0 {
		return rejectedf("no %s held", a.Key)
	}
	kind, tier, ok := splitResourceKey(a.Key)
	if !ok {
		return rejectedf("malformed resource key %q", a.Key)
	}
	def := e.balance.Skill(kind)
	if def == nil {
		return rejectedf("unknown resource kind %q", kind)
	}

	qty := a.Quantity
	if qty <= 0 || qty > held {
		qty = held
	}

	unit := formula.SellValue(e.balance, def.BaseValue, tier)
	e.grantGold(state, unit*float64(qty), now)
	state.Stats.ItemsSold += int64(qty)

	if remaining := held - qty; remaining > 0 {
		state.Resources[a.Key] = remaining
	} else {
		delete(state.Resources, a.Key)
	}
	return applied()
}

func (e *Engine) sellAllResources(state *entities.GameState, now time.Time) Outcome {
	sold := false
	for key := range state.Resources {
		if out := e.sellResource(state, SellResource{Key: key}, now); out.Applied {
			sold = true
		}
	}
	if !sold {
		return rejected("nothing to sell")
	}
	return applied()
}

func (e *Engine) sellCrafted(state *entities.GameState, a SellCrafted, now time.Time) Outcome {
	held := state.CraftedItems[a.RecipeID]
	if held <= 0 {
		return rejectedf("no crafted %s held", a.RecipeID)
	}
	recipe := e.balance.Recipe(a.RecipeID)
	if recipe == nil {
		return rejectedf("unknown recipe %q", a.RecipeID)
	}

	qty := a.Quantity
	if qty <= 0 || qty > held {
		qty = held
	}

	e.grantGold(state, recipe.BaseValue*float64(qty), now)
	state.Stats.ItemsSold += int64(qty)

	if remaining := held - qty; remaining > 0 {
		state.CraftedItems[a.RecipeID] = remaining
	} else {
		delete(state.CraftedItems, a.RecipeID)
	}
	return applied()
}

func (e *Engine) sellEquipment(state *entities.GameState, a SellEquipment, now time.Time) Outcome {
	idx := state.FindInventory(a.ItemID)
	if idx < 0 {
		return rejectedf("item %q is not in the inventory", a.ItemID)
	}
	item := state.Inventory[idx]

	e.grantGold(state, item.SellValue, now)
	state.Stats.ItemsSold++
	state.Inventory = append(state.Inventory[:idx], state.Inventory[idx+1:]...)
	return applied()
}

func (e *Engine) unlockSkill(state *entities.GameState, a UnlockSkill) Outcome {
	def := e.balance.Skill(a.Skill)
	if def == nil {
		return rejectedf("unknown skill %q", a.Skill)
	}
	sk := state.Skill(a.Skill)
	if sk == nil || sk.Unlocked {
		return rejectedf("skill %q is already unlocked", a.Skill)
	}

	if def.Category == balance.CategorySupport {
		if state.PrestigeCount < 1 {
			return rejected("support skills unlock after the first prestige")
		}
		if state.ChaosPoints < e.balance.Unlock.SupportChaos {
			return rejected("insufficient chaos points")
		}
		state.ChaosPoints -= e.balance.Unlock.SupportChaos
		sk.Unlocked = true
		return applied()
	}

	// Non-support skills unlock in a fixed sequence; the next one is
	// not player choice.
	unlocked := 0
	var next string
	for _, key := range e.balance.UnlockSequence() {
		if s := state.Skill(key); s != nil && s.Unlocked {
			unlocked++
			continue
		}
		if next == "" {
			next = key
		}
	}
	if a.Skill != next {
		return rejectedf("skill %q is not the next unlock", a.Skill)
	}

	// unlocked counts the free starter skill, so the first purchase is
	// the curve's nth=1 and costs exactly BaseCost. Growth applies from
	// the second purchase on.
	cost := formula.UnlockCost(e.balance, unlocked)
	if state.Gold < cost {
		return rejected("insufficient gold")
	}
	state.Gold -= cost
	sk.Unlocked = true
	return applied()
}
