package engine_test

import (
	"github.com/forgebound/forge-api/internal/engine"
	"github.com/forgebound/forge-api/internal/entities"
)

func (s *EngineSuite) TestPrestigeGate() {
	s.setLevel("mining", 99)

	out := s.apply(engine.Prestige{})
	s.False(out.Applied)
	s.Equal(99, s.state.Skills["mining"].Level, "a rejected prestige touches nothing")
	s.Zero(s.state.PrestigeCount)
}

func (s *EngineSuite) TestPrestigeAwardsFromPreResetSnapshot() {
	s.setLevel("mining", 100)
	s.state.Gold = 10_000

	out := s.apply(engine.Prestige{})
	s.Require().True(out.Applied)

	// floor(0.1*100 + 0.01*sqrt(10000)) = 11, computed before the reset
	// zeroed the inputs.
	s.Equal(int64(11), s.state.ChaosPoints)
	s.Equal(1, s.state.PrestigeCount)
	s.Zero(s.state.Gold)
}

func (s *EngineSuite) TestPrestigeResetsProgression() {
	s.setLevel("mining", 100)
	s.state.Skills["smithing"].Unlocked = true
	s.setLevel("smithing", 30)
	s.state.Resources["mining_t1"] = 50
	s.state.CraftedItems["copper_bar"] = 2
	s.state.Inventory = []entities.Equipment{{ID: "item_1", Slot: "weapon"}}
	s.apply(engine.EquipItem{ItemID: "item_1"})
	s.state.LastGather = &entities.GatherResult{Skill: "mining"}

	s.Require().True(s.apply(engine.Prestige{}).Applied)

	for key, sk := range s.state.Skills {
		s.Equal(1, sk.Level, "skill %s resets to level 1", key)
		s.Zero(sk.TotalXP)
	}
	s.True(s.state.Skills["mining"].Unlocked, "the starter stays unlocked")
	s.False(s.state.Skills["smithing"].Unlocked, "paid unlocks are wiped")
	s.Empty(s.state.Resources)
	s.Empty(s.state.CraftQueue)
	s.Empty(s.state.CraftedItems)
	s.Empty(s.state.Inventory)
	s.Empty(s.state.Equipped)
	s.Nil(s.state.LastGather)
	s.Zero(s.state.Character.Total.Strength)
}

func (s *EngineSuite) TestPrestigePreservesMetaProgression() {
	s.setLevel("mining", 100)
	s.state.ChaosPoints = 5
	s.state.Talents["keen_eye"] = 3
	s.state.Skills["enchanting"].Unlocked = true
	s.setLevel("enchanting", 40)
	s.state.Achievements["first_steps"] = entities.AchievementClaimed
	s.state.Stats.TotalTaps = 4_000

	s.Require().True(s.apply(engine.Prestige{}).Applied)

	s.Equal(int64(19), s.state.ChaosPoints, "banked 5 plus floor(0.1*(100+40))")
	s.Equal(3, s.state.Talents["keen_eye"], "talents survive")
	s.True(s.state.Skills["enchanting"].Unlocked, "support unlocks survive")
	s.Equal(1, s.state.Skills["enchanting"].Level, "but support levels still reset")
	s.Equal(entities.AchievementClaimed, s.state.Achievements["first_steps"])
	s.Equal(int64(4_000), s.state.Stats.TotalTaps, "lifetime stats survive")
}

func (s *EngineSuite) TestPrestigeRefillsManaWithTalentCap() {
	s.setLevel("mining", 100)
	s.state.Talents["deep_reserves"] = 2 // +40 max mana
	s.state.MaxMana = 140
	s.state.Mana = 3

	s.Require().True(s.apply(engine.Prestige{}).Applied)

	s.Equal(140.0, s.state.MaxMana)
	s.Equal(140.0, s.state.Mana)
}

func (s *EngineSuite) TestBuyTalent() {
	s.state.ChaosPoints = 10

	out := s.apply(engine.BuyTalent{TalentID: "keen_eye"})
	s.Require().True(out.Applied)
	s.Equal(1, s.state.Talents["keen_eye"])
	s.Equal(int64(9), s.state.ChaosPoints, "rank 1 costs the base")

	out = s.apply(engine.BuyTalent{TalentID: "keen_eye"})
	s.Require().True(out.Applied)
	s.Equal(2, s.state.Talents["keen_eye"])
	s.Equal(int64(7), s.state.ChaosPoints, "each rank adds the cost step")
}

func (s *EngineSuite) TestBuyTalentRejections() {
	out := s.apply(engine.BuyTalent{TalentID: "nope"})
	s.False(out.Applied)

	out = s.apply(engine.BuyTalent{TalentID: "keen_eye"})
	s.False(out.Applied, "no chaos banked")

	s.state.ChaosPoints = 100
	s.state.Talents["keen_eye"] = 10
	out = s.apply(engine.BuyTalent{TalentID: "keen_eye"})
	s.False(out.Applied, "already at max rank")
	s.Equal(int64(100), s.state.ChaosPoints)
}

func (s *EngineSuite) TestBuyTalentRaisesManaCap() {
	s.state.ChaosPoints = 10

	out := s.apply(engine.BuyTalent{TalentID: "deep_reserves"})
	s.Require().True(out.Applied)
	s.Equal(120.0, s.state.MaxMana, "base 100 plus 20 per rank")
	s.Equal(100.0, s.state.Mana, "current mana is not granted retroactively")
}
