// Package entities defines the progression state aggregate and the
// account/save records. Types here are plain data; all gameplay
// mutation goes through the engine.
package entities

// AchievementStatus tracks the lifecycle of one achievement.
type AchievementStatus string

// Achievement statuses. Locked achievements have no map entry.
const (
	AchievementUnlocked AchievementStatus = "unlocked"
	AchievementClaimed  AchievementStatus = "claimed"
)

// Skill is one trainable skill. Level is always derived from TotalXP;
// any mutation to TotalXP recomputes it.
type Skill struct {
	Key      string  `json:"key"`
	Level    int     `json:"level"`
	TotalXP  float64 `json:"totalXp"`
	Unlocked bool    `json:"unlocked"`
}

// CraftQueueEntry is one batch of in-progress crafts. Materials are
// deducted when the entry is created; EndsAt = StartedAt +
// duration * quantity.
type CraftQueueEntry struct {
	ID        string `json:"id"`
	RecipeID  string `json:"recipeId"`
	Quantity  int    `json:"quantity"`
	StartedAt int64  `json:"startedAt"`
	EndsAt    int64  `json:"endsAt"`
}

// StatBlock holds the four equipment stats.
type StatBlock struct {
	Strength  int `json:"strength"`
	Intellect int `json:"intellect"`
	Agility   int `json:"agility"`
	Stamina   int `json:"stamina"`
}

// Add returns the element-wise sum of two stat blocks.
func (s StatBlock) Add(o StatBlock) StatBlock {
	return StatBlock{
		Strength:  s.Strength + o.Strength,
		Intellect: s.Intellect + o.Intellect,
		Agility:   s.Agility + o.Agility,
		Stamina:   s.Stamina + o.Stamina,
	}
}

// Equipment is an item instance. It lives either in the inventory list
// or in exactly one equipment slot, never both.
type Equipment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slot      string    `json:"slot"`
	Rarity    string    `json:"rarity"`
	Stats     StatBlock `json:"stats"`
	SellValue float64   `json:"sellValue"`
}

// CharacterSheet aggregates base stats plus equipped contributions.
// Totals are recomputed on every equip/unequip and never drift.
type CharacterSheet struct {
	Base  StatBlock `json:"base"`
	Total StatBlock `json:"total"`
}

// SpellState tracks one spell's active and cooldown windows as absolute
// timestamps; expiry is checked lazily against the caller's clock.
type SpellState struct {
	ActiveUntil   int64 `json:"activeUntil"`
	CooldownUntil int64 `json:"cooldownUntil"`
}

// GatherResult is the UI feedback snapshot for the most recent gather.
// It is overwritten on every gather, never queued.
type GatherResult struct {
	Skill     string `json:"skill"`
	Amount    int    `json:"amount"`
	XP        float64 `json:"xp"`
	Crit      bool   `json:"crit"`
	Lucky     bool   `json:"lucky"`
	LeveledUp bool   `json:"leveledUp"`
	At        int64  `json:"at"`
}

// LifetimeStats are monotonic counters consumed by achievements.
type LifetimeStats struct {
	TotalTaps   int64   `json:"totalTaps"`
	TotalCrafts int64   `json:"totalCrafts"`
	GoldEarned  float64 `json:"goldEarned"`
	ItemsSold   int64   `json:"itemsSold"`
}

// GameState is the single owned aggregate for one player. Timestamps
// are unix milliseconds.
type GameState struct {
	Skills        map[string]*Skill            `json:"skills"`
	Resources     map[string]int               `json:"resources"`
	CraftQueue    []CraftQueueEntry            `json:"craftQueue"`
	CraftedItems  map[string]int               `json:"craftedItems"`
	Gold          float64                      `json:"gold"`
	Mana          float64                      `json:"mana"`
	MaxMana       float64                      `json:"maxMana"`
	ManaUpdatedAt int64                        `json:"manaUpdatedAt"`
	ChaosPoints   int64                        `json:"chaosPoints"`
	Inventory     []Equipment                  `json:"inventory"`
	Equipped      map[string]*Equipment        `json:"equipped"`
	Character     CharacterSheet               `json:"character"`
	Talents       map[string]int               `json:"talents"`
	Spells        map[string]*SpellState       `json:"spells"`
	Achievements  map[string]AchievementStatus `json:"achievements"`
	PrestigeCount int                          `json:"prestigeCount"`
	Stats         LifetimeStats                `json:"stats"`
	LastGather    *GatherResult                `json:"lastGather,omitempty"`
	CreatedAt     int64                        `json:"createdAt"`
	UpdatedAt     int64                        `json:"updatedAt"`
}

// Skill returns the named skill, or nil.
func (g *GameState) Skill(key string) *Skill {
	return g.Skills[key]
}

// Normalize allocates any map left nil by decoding a snapshot from an
// older schema, so a missing field defaults to empty instead of
// panicking on the first write.
func (g *GameState) Normalize() {
	if g.Skills == nil {
		g.Skills = make(map[string]*Skill)
	}
	if g.Resources == nil {
		g.Resources = make(map[string]int)
	}
	if g.CraftedItems == nil {
		g.CraftedItems = make(map[string]int)
	}
	if g.Equipped == nil {
		g.Equipped = make(map[string]*Equipment)
	}
	if g.Talents == nil {
		g.Talents = make(map[string]int)
	}
	if g.Spells == nil {
		g.Spells = make(map[string]*SpellState)
	}
	if g.Achievements == nil {
		g.Achievements = make(map[string]AchievementStatus)
	}
}

// FindInventory returns the index of an inventory item by id, or -1.
func (g *GameState) FindInventory(id string) int {
	for i := range g.Inventory {
		if g.Inventory[i].ID == id {
			return i
		}
	}
	return -1
}
