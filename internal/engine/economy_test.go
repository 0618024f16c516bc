package engine_test

import (
	"time"

	"github.com/forgebound/forge-api/internal/balance"
	"github.com/forgebound/forge-api/internal/engine"
	"github.com/forgebound/forge-api/internal/entities"
)

func (s *EngineSuite) TestSellResourceClampsToHeld() {
	s.state.Resources["mining_t1"] = 5

	out := s.apply(engine.SellResource{Key: "mining_t1", Quantity: 10})
	s.Require().True(out.Applied)

	s.Equal(10.0, s.state.Gold, "5 units at base value 2")
	s.Equal(int64(5), s.state.Stats.ItemsSold)
	s.NotContains(s.state.Resources, "mining_t1", "empty stacks are removed")
}

func (s *EngineSuite) TestSellResourcePartial() {
	s.state.Resources["mining_t1"] = 5

	out := s.apply(engine.SellResource{Key: "mining_t1", Quantity: 2})
	s.Require().True(out.Applied)

	s.Equal(4.0, s.state.Gold)
	s.Equal(3, s.state.Resources["mining_t1"])
}

func (s *EngineSuite) TestSellResourceScalesWithTier() {
	s.state.Resources["mining_t3"] = 1

	out := s.apply(engine.SellResource{Key: "mining_t3"})
	s.Require().True(out.Applied)
	s.Equal(12.5, s.state.Gold, "base 2 times 2.5 squared")
}

func (s *EngineSuite) TestSellResourceRejections() {
	s.state.Resources["weird"] = 3
	s.state.Resources["dragon_t1"] = 3

	tests := []struct {
		name string
		key  string
	}{
		{name: "nothing held", key: "mining_t1"},
		{name: "malformed key", key: "weird"},
		{name: "unknown kind", key: "dragon_t1"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			out := s.apply(engine.SellResource{Key: tc.key})
			s.False(out.Applied)
		})
	}
	s.Zero(s.state.Gold)
}

func (s *EngineSuite) TestSellAllResources() {
	s.state.Resources["mining_t1"] = 2
	s.state.Resources["mining_t2"] = 1

	out := s.apply(engine.SellAllResources{})
	s.Require().True(out.Applied)

	s.Equal(9.0, s.state.Gold, "2*2 at tier 1 plus 5 at tier 2")
	s.Empty(s.state.Resources)

	out = s.apply(engine.SellAllResources{})
	s.False(out.Applied, "nothing left to sell")
}

func (s *EngineSuite) TestSellCrafted() {
	s.state.CraftedItems["copper_bar"] = 3

	out := s.apply(engine.SellCrafted{RecipeID: "copper_bar"})
	s.Require().True(out.Applied)

	s.Equal(36.0, s.state.Gold, "3 bars at base value 12")
	s.NotContains(s.state.CraftedItems, "copper_bar")

	out = s.apply(engine.SellCrafted{RecipeID: "copper_bar"})
	s.False(out.Applied)
}

func (s *EngineSuite) TestSellEquipment() {
	s.state.Inventory = append(s.state.Inventory, entities.Equipment{
		ID: "item_1", Name: "copper_dagger", Slot: "weapon", SellValue: 40,
	})

	out := s.apply(engine.SellEquipment{ItemID: "item_1"})
	s.Require().True(out.Applied)
	s.Equal(40.0, s.state.Gold)
	s.Empty(s.state.Inventory)
}

func (s *EngineSuite) TestSellEquippedItemRejected() {
	s.state.Equipped["weapon"] = &entities.Equipment{ID: "item_1", Slot: "weapon", SellValue: 40}

	out := s.apply(engine.SellEquipment{ItemID: "item_1"})
	s.False(out.Applied, "equipped items must be unequipped first")
	s.Zero(s.state.Gold)
}

func (s *EngineSuite) TestGoldBonusAppliesToSales() {
	tables := s.engine.Balance()
	tables.Talents = append(tables.Talents, balance.TalentDef{
		ID: "market_sense", MaxRank: 4, BaseCost: 1, CostStep: 1,
		Effect: balance.EffectGoldBonus, PerRank: 0.25,
	})
	s.state.Talents["market_sense"] = 1
	s.state.Resources["mining_t1"] = 5

	out := s.apply(engine.SellResource{Key: "mining_t1"})
	s.Require().True(out.Applied)
	s.Equal(12.5, s.state.Gold, "10 gold boosted by +25%")
	s.Equal(12.5, s.state.Stats.GoldEarned)
}

func (s *EngineSuite) TestGoldBonusWindowTracksActionTime() {
	tables := s.engine.Balance()
	tables.Spells = append(tables.Spells, balance.SpellDef{
		ID: "midas_charm", Name: "Midas Charm", ManaCost: 10,
		DurationMS: 30_000, CooldownMS: 60_000,
		Effect: balance.EffectGoldBonus, Amount: 1.0,
	})
	s.state.Resources["mining_t1"] = 10

	s.Require().True(s.apply(engine.CastSpell{SpellID: "midas_charm"}).Applied)

	s.advance(10 * time.Second)
	out := s.apply(engine.SellResource{Key: "mining_t1", Quantity: 5})
	s.Require().True(out.Applied)
	s.Equal(20.0, s.state.Gold, "5 units at base value 2, doubled inside the window")

	// After expiry the bonus is gone, even though the previous applied
	// action still fell inside the window.
	s.advance(30 * time.Second)
	out = s.apply(engine.SellResource{Key: "mining_t1"})
	s.Require().True(out.Applied)
	s.Equal(30.0, s.state.Gold, "remaining 5 sell unboosted")
}

func (s *EngineSuite) TestUnlockSkillFollowsSequence() {
	s.state.Gold = 500

	out := s.apply(engine.UnlockSkill{Skill: "woodcutting"})
	s.False(out.Applied, "smithing comes first in the sequence")

	out = s.apply(engine.UnlockSkill{Skill: "smithing"})
	s.Require().True(out.Applied)
	s.True(s.state.Skills["smithing"].Unlocked)
	s.Zero(s.state.Gold)

	// The next unlock costs base 500 times growth 6.
	s.state.Gold = 2_999
	out = s.apply(engine.UnlockSkill{Skill: "woodcutting"})
	s.False(out.Applied)

	s.state.Gold = 3_000
	out = s.apply(engine.UnlockSkill{Skill: "woodcutting"})
	s.True(out.Applied)
	s.Zero(s.state.Gold)
}

func (s *EngineSuite) TestUnlockSkillRejections() {
	out := s.apply(engine.UnlockSkill{Skill: "basketweaving"})
	s.False(out.Applied)

	out = s.apply(engine.UnlockSkill{Skill: "mining"})
	s.False(out.Applied, "already unlocked")

	s.state.Gold = 499
	out = s.apply(engine.UnlockSkill{Skill: "smithing"})
	s.False(out.Applied, "cannot afford")
	s.Equal(499.0, s.state.Gold)
}

func (s *EngineSuite) TestUnlockSupportSkill() {
	out := s.apply(engine.UnlockSkill{Skill: "enchanting"})
	s.False(out.Applied, "gated behind the first prestige")

	s.state.PrestigeCount = 1
	s.state.ChaosPoints = 24
	out = s.apply(engine.UnlockSkill{Skill: "enchanting"})
	s.False(out.Applied, "costs 25 chaos")

	s.state.ChaosPoints = 25
	out = s.apply(engine.UnlockSkill{Skill: "enchanting"})
	s.Require().True(out.Applied)
	s.True(s.state.Skills["enchanting"].Unlocked)
	s.Zero(s.state.ChaosPoints)
}
