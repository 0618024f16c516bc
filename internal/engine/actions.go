package engine

// Action is a discrete player intent. Each concrete action is a plain
// struct; the engine validates and applies it in Apply.
type Action interface {
	actionName() string
}

// Gather taps a gathering skill once.
type Gather struct {
	Skill string
}

func (Gather) actionName() string { return "gather" }

// StartCraft enqueues a batch craft, deducting materials up front.
type StartCraft struct {
	RecipeID string
	Quantity int
}

func (StartCraft) actionName() string { return "start_craft" }

// CancelCraft removes a queue entry. Materials are not refunded.
type CancelCraft struct {
	EntryID string
}

func (CancelCraft) actionName() string { return "cancel_craft" }

// CollectCraft collects all completed queue entries for a recipe.
// With Liquidate set, output is sold for gold instead of stocking the
// crafted-item ledger.
type CollectCraft struct {
	RecipeID  string
	Liquidate bool
}

func (CollectCraft) actionName() string { return "collect_craft" }

// SellResource sells up to Quantity units of one resource.
type SellResource struct {
	Key      string
	Quantity int
}

func (SellResource) actionName() string { return "sell_resource" }

// SellAllResources liquidates every held resource.
type SellAllResources struct{}

func (SellAllResources) actionName() string { return "sell_all_resources" }

// SellCrafted sells up to Quantity units from the crafted-item ledger.
type SellCrafted struct {
	RecipeID string
	Quantity int
}

func (SellCrafted) actionName() string { return "sell_crafted" }

// SellEquipment sells an unequipped inventory item.
type SellEquipment struct {
	ItemID string
}

func (SellEquipment) actionName() string { return "sell_equipment" }

// UnlockSkill unlocks the named skill. Non-support skills follow the
// fixed unlock sequence and cost gold; support skills cost chaos
// points and require at least one prestige.
type UnlockSkill struct {
	Skill string
}

func (UnlockSkill) actionName() string { return "unlock_skill" }

// EquipItem moves an inventory item into its slot, swapping out
// whatever occupied the slot.
type EquipItem struct {
	ItemID string
}

func (EquipItem) actionName() string { return "equip_item" }

// UnequipItem moves the item in Slot back to the inventory.
type UnequipItem struct {
	Slot string
}

func (UnequipItem) actionName() string { return "unequip_item" }

// Prestige resets progression for chaos points.
type Prestige struct{}

func (Prestige) actionName() string { return "prestige" }

// BuyTalent purchases the next rank of a talent with chaos points.
type BuyTalent struct {
	TalentID string
}

func (BuyTalent) actionName() string { return "buy_talent" }

// CastSpell activates a spell, deducting mana.
type CastSpell struct {
	SpellID string
}

func (CastSpell) actionName() string { return "cast_spell" }

// ClaimAchievement claims the reward of an unlocked achievement.
type ClaimAchievement struct {
	AchievementID string
}

func (ClaimAchievement) actionName() string { return "claim_achievement" }
