package engine_test

import (
	"time"

	"github.com/forgebound/forge-api/internal/balance"
	"github.com/forgebound/forge-api/internal/engine"
)

func talentCraftSpeed() balance.TalentDef {
	return balance.TalentDef{
		ID:       "swift_forge",
		Name:     "Swift Forge",
		MaxRank:  5,
		BaseCost: 1,
		CostStep: 1,
		Effect:   balance.EffectCraftSpeed,
		PerRank:  0.25,
	}
}

// unlockSmithing flips the crafting skill on directly; unlock pricing
// is covered by the economy tests.
func (s *EngineSuite) unlockSmithing() {
	s.state.Skills["smithing"].Unlocked = true
}

func (s *EngineSuite) TestStartCraftDeductsUpFront() {
	s.unlockSmithing()
	s.state.Resources["mining_t1"] = 10

	out := s.apply(engine.StartCraft{RecipeID: "copper_bar", Quantity: 2})
	s.Require().True(out.Applied, out.Reason)

	s.Equal(4, s.state.Resources["mining_t1"], "3 per unit, committed immediately")
	s.Require().Len(s.state.CraftQueue, 1)

	entry := s.state.CraftQueue[0]
	s.Equal("craft_1", entry.ID)
	s.Equal("copper_bar", entry.RecipeID)
	s.Equal(2, entry.Quantity)
	s.Equal(s.now.UnixMilli(), entry.StartedAt)
	s.Equal(s.now.UnixMilli()+10_000, entry.EndsAt, "5s per unit, two units")
}

func (s *EngineSuite) TestStartCraftRejections() {
	s.unlockSmithing()
	s.state.Resources["mining_t1"] = 5

	tests := []struct {
		name   string
		action engine.StartCraft
	}{
		{name: "zero quantity", action: engine.StartCraft{RecipeID: "copper_bar"}},
		{name: "unknown recipe", action: engine.StartCraft{RecipeID: "mystery", Quantity: 1}},
		{name: "locked skill", action: engine.StartCraft{RecipeID: "oak_plank", Quantity: 1}},
		{name: "level too low", action: engine.StartCraft{RecipeID: "iron_bar", Quantity: 1}},
		{name: "insufficient materials", action: engine.StartCraft{RecipeID: "copper_bar", Quantity: 2}},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			out := s.apply(tc.action)
			s.False(out.Applied)
			s.NotEmpty(out.Reason)
		})
	}
	s.Equal(5, s.state.Resources["mining_t1"], "rejections never touch materials")
	s.Empty(s.state.CraftQueue)
}

func (s *EngineSuite) TestCancelCraftKeepsMaterials() {
	s.unlockSmithing()
	s.state.Resources["mining_t1"] = 6
	s.apply(engine.StartCraft{RecipeID: "copper_bar", Quantity: 2})

	out := s.apply(engine.CancelCraft{EntryID: "craft_1"})
	s.Require().True(out.Applied)

	s.Empty(s.state.CraftQueue)
	s.Equal(0, s.state.Resources["mining_t1"], "cancellation never refunds")

	out = s.apply(engine.CancelCraft{EntryID: "craft_1"})
	s.False(out.Applied, "already removed")
}

func (s *EngineSuite) TestCollectCraftWindow() {
	s.unlockSmithing()
	s.state.Resources["mining_t1"] = 9
	s.apply(engine.StartCraft{RecipeID: "copper_bar", Quantity: 3}) // 15s total

	out := s.apply(engine.CollectCraft{RecipeID: "copper_bar"})
	s.False(out.Applied, "nothing done at start")

	s.advance(14*time.Second + 999*time.Millisecond)
	out = s.apply(engine.CollectCraft{RecipeID: "copper_bar"})
	s.False(out.Applied, "one millisecond short")

	s.advance(time.Millisecond)
	out = s.apply(engine.CollectCraft{RecipeID: "copper_bar"})
	s.Require().True(out.Applied)

	s.Equal(3, s.state.CraftedItems["copper_bar"])
	s.Equal(60.0, s.state.Skills["smithing"].TotalXP, "craft XP lands on collection")
	s.Equal(int64(3), s.state.Stats.TotalCrafts)
	s.Empty(s.state.CraftQueue)
}

func (s *EngineSuite) TestCollectCraftWaitsForEveryBatch() {
	s.unlockSmithing()
	s.state.Resources["mining_t1"] = 6
	s.apply(engine.StartCraft{RecipeID: "copper_bar", Quantity: 1}) // ends at +5s
	s.advance(4 * time.Second)
	s.apply(engine.StartCraft{RecipeID: "copper_bar", Quantity: 1}) // ends at +9s

	// The first batch is done but the second is not: all batches of a
	// recipe must finish before any output is handed over.
	s.advance(2 * time.Second)
	out := s.apply(engine.CollectCraft{RecipeID: "copper_bar"})
	s.False(out.Applied, "a batch is still in progress")
	s.Len(s.state.CraftQueue, 2, "rejection leaves the queue untouched")
	s.Zero(s.state.CraftedItems["copper_bar"])
	s.Zero(s.state.Stats.TotalCrafts)

	s.advance(3 * time.Second)
	out = s.apply(engine.CollectCraft{RecipeID: "copper_bar"})
	s.Require().True(out.Applied, out.Reason)
	s.Equal(2, s.state.CraftedItems["copper_bar"], "both batches land together")
	s.Empty(s.state.CraftQueue)
}

func (s *EngineSuite) TestCollectCraftIsIdempotent() {
	s.unlockSmithing()
	s.state.Resources["mining_t1"] = 3
	s.apply(engine.StartCraft{RecipeID: "copper_bar", Quantity: 1})
	s.advance(5 * time.Second)

	s.Require().True(s.apply(engine.CollectCraft{RecipeID: "copper_bar"}).Applied)
	s.Equal(1, s.state.CraftedItems["copper_bar"])

	out := s.apply(engine.CollectCraft{RecipeID: "copper_bar"})
	s.False(out.Applied, "entries are consumed on collection")
	s.Equal(1, s.state.CraftedItems["copper_bar"])
	s.Equal(int64(1), s.state.Stats.TotalCrafts)
}

func (s *EngineSuite) TestCollectCraftLiquidates() {
	s.unlockSmithing()
	s.state.Resources["mining_t1"] = 6
	s.apply(engine.StartCraft{RecipeID: "copper_bar", Quantity: 2})
	s.advance(10 * time.Second)

	out := s.apply(engine.CollectCraft{RecipeID: "copper_bar", Liquidate: true})
	s.Require().True(out.Applied)

	s.Equal(24.0, s.state.Gold, "two bars at base value 12")
	s.Zero(s.state.CraftedItems["copper_bar"])
}

func (s *EngineSuite) TestCollectCraftForgesEquipment() {
	s.unlockSmithing()
	s.setLevel("smithing", 5)
	s.state.Resources["mining_t1"] = 8

	s.Require().True(s.apply(engine.StartCraft{RecipeID: "copper_dagger", Quantity: 1}).Applied)
	s.advance(15 * time.Second)
	s.Require().True(s.apply(engine.CollectCraft{RecipeID: "copper_dagger"}).Applied)

	s.Require().Len(s.state.Inventory, 1)
	item := s.state.Inventory[0]
	s.Equal("weapon", item.Slot)
	// Quality draw 0.99 maps to epic on the cumulative weight walk
	// (70 + 20 + 8 = 98, epic ends at 99.8). Epic multiplies the stat
	// budget of 6 to 30, and every stat draw of 0.99 lands on stamina.
	s.Equal("epic", item.Rarity)
	s.Equal(30, item.Stats.Stamina)
	s.Equal(250.0, item.SellValue)
	s.Empty(s.state.CraftedItems, "slot recipes never stack in the ledger")
}

func (s *EngineSuite) TestStartCraftHonorsCraftSpeed() {
	s.unlockSmithing()
	s.state.Resources["mining_t1"] = 3
	// No default talent grants craft speed; script one in.
	tables := s.engine.Balance()
	tables.Talents = append(tables.Talents, talentCraftSpeed())
	s.state.Talents["swift_forge"] = 1

	s.apply(engine.StartCraft{RecipeID: "copper_bar", Quantity: 1})
	s.Require().Len(s.state.CraftQueue, 1)
	s.Equal(s.now.UnixMilli()+4_000, s.state.CraftQueue[0].EndsAt, "5s reduced by +25% speed")
}
