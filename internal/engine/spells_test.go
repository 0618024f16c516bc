package engine_test

import (
	"time"

	"github.com/forgebound/forge-api/internal/engine"
)

func (s *EngineSuite) TestRegenManaAccrues() {
	s.state.Mana = 0
	s.state.ManaUpdatedAt = s.now.UnixMilli()

	s.advance(10 * time.Second)
	s.engine.RegenMana(s.state, s.now)

	s.Equal(5.0, s.state.Mana, "0.5 per second for 10 seconds")
	s.Equal(s.now.UnixMilli(), s.state.ManaUpdatedAt)
}

func (s *EngineSuite) TestRegenManaCatchUpMatchesSmallTicks() {
	s.state.Mana = 0
	s.state.ManaUpdatedAt = s.now.UnixMilli()

	// One late tick after 30s must accrue exactly what thirty 1s ticks
	// would have.
	big := *s.state
	bigState := &big
	s.engine.RegenMana(bigState, s.now.Add(30*time.Second))

	for i := 0; i < 30; i++ {
		s.advance(time.Second)
		s.engine.RegenMana(s.state, s.now)
	}

	s.InDelta(bigState.Mana, s.state.Mana, 1e-9)
	s.InDelta(15.0, s.state.Mana, 1e-9)
}

func (s *EngineSuite) TestRegenManaClampsAtCap() {
	s.state.Mana = 99

	s.advance(time.Hour)
	s.engine.RegenMana(s.state, s.now)

	s.Equal(100.0, s.state.Mana)
}

func (s *EngineSuite) TestRegenManaIgnoresBackwardsClock() {
	s.state.Mana = 40
	s.state.ManaUpdatedAt = s.now.UnixMilli()

	s.engine.RegenMana(s.state, s.now.Add(-time.Minute))
	s.Equal(40.0, s.state.Mana, "no regen for negative elapsed time")
}

func (s *EngineSuite) TestCastSpell() {
	out := s.apply(engine.CastSpell{SpellID: "miners_focus"})
	s.Require().True(out.Applied, out.Reason)

	s.Equal(70.0, s.state.Mana, "full pool minus the 30 mana cost")
	st := s.state.Spells["miners_focus"]
	s.Require().NotNil(st)
	s.Equal(s.now.UnixMilli()+60_000, st.ActiveUntil)
	s.Equal(s.now.UnixMilli()+240_000, st.CooldownUntil, "cooldown runs from natural expiry")
}

func (s *EngineSuite) TestCastSpellWindows() {
	s.Require().True(s.apply(engine.CastSpell{SpellID: "miners_focus"}).Applied)

	s.advance(30 * time.Second)
	out := s.apply(engine.CastSpell{SpellID: "miners_focus"})
	s.False(out.Applied, "still active")

	s.advance(31 * time.Second) // past the 60s duration
	out = s.apply(engine.CastSpell{SpellID: "miners_focus"})
	s.False(out.Applied, "expired but cooling down")

	s.advance(180 * time.Second) // past duration + cooldown
	out = s.apply(engine.CastSpell{SpellID: "miners_focus"})
	s.True(out.Applied, out.Reason)
}

func (s *EngineSuite) TestCastSpellAccruesRegenBeforeAffordability() {
	s.state.Mana = 0
	s.state.ManaUpdatedAt = s.now.UnixMilli()

	out := s.apply(engine.CastSpell{SpellID: "golden_surge"})
	s.False(out.Applied, "cannot afford 50 mana")

	// 100 seconds of regen covers the cost exactly even though no tick
	// ran in between.
	s.advance(100 * time.Second)
	out = s.apply(engine.CastSpell{SpellID: "golden_surge"})
	s.Require().True(out.Applied, out.Reason)
	s.Equal(0.0, s.state.Mana)
}

func (s *EngineSuite) TestActiveSpellBoostsGather() {
	s.Require().True(s.apply(engine.CastSpell{SpellID: "miners_focus"}).Applied)

	s.apply(engine.Gather{Skill: "mining"})
	s.Equal(15.0, s.state.LastGather.XP, "base 10 with the +50% XP buff")

	// The buff lapses with its window, no cleanup action required.
	s.advance(2 * time.Minute)
	s.apply(engine.Gather{Skill: "mining"})
	s.Equal(10.0, s.state.LastGather.XP)
}

func (s *EngineSuite) TestCastUnknownSpell() {
	out := s.apply(engine.CastSpell{SpellID: "fireball"})
	s.False(out.Applied)
}
