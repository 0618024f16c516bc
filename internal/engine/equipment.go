package engine

import (
	"github.com/forgebound/forge-api/internal/entities"
)

// recomputeCharacter rebuilds the aggregate stat totals from base
// stats plus every equipped item. Called on every placement change so
// the totals can never drift from equipment state.
func recomputeCharacter(state *entities.GameState) {
	total := state.Character.Base
	for _, item := range state.Equipped {
		total = total.Add(item.Stats)
	}
	state.Character.Total = total
}

func (e *Engine) equipItem(state *entities.GameState, a EquipItem) Outcome {
	idx := state.FindInventory(a.ItemID)
	if idx < 0 {
		return rejectedf("item %q is not in the inventory", a.ItemID)
	}
	item := state.Inventory[idx]
	if item.Slot == "" {
		return rejectedf("item %q is not equippable", a.ItemID)
	}

	// Placement is mutually exclusive: the item leaves the inventory
	// as it enters the slot, and a displaced item goes the other way.
	state.Inventory = append(state.Inventory[:idx], state.Inventory[idx+1:]...)
	if current, ok := state.Equipped[item.Slot]; ok {
		state.Inventory = append(state.Inventory, *current)
	}
	state.Equipped[item.Slot] = &item

	recomputeCharacter(state)
	return applied()
}

func (e *Engine) unequipItem(state *entities.GameState, a UnequipItem) Outcome {
	item, ok := state.Equipped[a.Slot]
	if !ok {
		return rejectedf("nothing equipped in slot %q", a.Slot)
	}

	state.Inventory = append(state.Inventory, *item)
	delete(state.Equipped, a.Slot)

	recomputeCharacter(state)
	return applied()
}
