package engine_test

import (
	"github.com/forgebound/forge-api/internal/engine"
	"github.com/forgebound/forge-api/internal/entities"
)

func (s *EngineSuite) TestEvaluateAchievements() {
	s.state.Stats.TotalTaps = 10

	unlocked := s.engine.EvaluateAchievements(s.state)
	s.Equal([]string{"first_steps"}, unlocked)
	s.Equal(entities.AchievementUnlocked, s.state.Achievements["first_steps"])

	// Re-evaluation is a no-op for anything already tracked.
	s.Empty(s.engine.EvaluateAchievements(s.state))
}

func (s *EngineSuite) TestEvaluateAchievementKinds() {
	s.setLevel("mining", 10)
	s.state.Stats.GoldEarned = 10_000
	s.state.Stats.TotalCrafts = 100
	s.state.PrestigeCount = 1

	unlocked := s.engine.EvaluateAchievements(s.state)
	s.ElementsMatch(
		[]string{"apprentice", "first_fortune", "artisan", "reborn"},
		unlocked,
	)
}

func (s *EngineSuite) TestGoldAchievementTracksLifetimeEarnings() {
	// Spending gold cannot re-lock the milestone: the predicate reads
	// lifetime earnings, not the current balance.
	s.state.Stats.GoldEarned = 10_000
	s.state.Gold = 0

	unlocked := s.engine.EvaluateAchievements(s.state)
	s.Contains(unlocked, "first_fortune")
}

func (s *EngineSuite) TestClaimAchievementPaysOnce() {
	s.state.Achievements["first_steps"] = entities.AchievementUnlocked

	out := s.apply(engine.ClaimAchievement{AchievementID: "first_steps"})
	s.Require().True(out.Applied)
	s.Equal(50.0, s.state.Gold)
	s.Equal(entities.AchievementClaimed, s.state.Achievements["first_steps"])

	out = s.apply(engine.ClaimAchievement{AchievementID: "first_steps"})
	s.False(out.Applied, "already claimed")
	s.Equal(50.0, s.state.Gold)
}

func (s *EngineSuite) TestClaimAchievementRejections() {
	out := s.apply(engine.ClaimAchievement{AchievementID: "nope"})
	s.False(out.Applied)

	out = s.apply(engine.ClaimAchievement{AchievementID: "journeyman"})
	s.False(out.Applied, "locked achievements cannot be claimed")
	s.Zero(s.state.Gold)
}
