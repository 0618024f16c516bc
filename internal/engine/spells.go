package engine

import (
	"time"

	"github.com/forgebound/forge-api/internal/entities"
)

// RegenMana accrues continuous mana regeneration up to now. It is the
// one mutation driven by the periodic tick rather than a player
// action, and it is idempotent under variable tick intervals: a single
// late tick after a suspended tab catches up exactly.
func (e *Engine) RegenMana(state *entities.GameState, now time.Time) {
	ms := now.UnixMilli()
	elapsed := float64(ms-state.ManaUpdatedAt) / 1000
	if elapsed > 0 {
		state.Mana += e.balance.Mana.RegenPerSecond * elapsed
		if state.Mana > state.MaxMana {
			state.Mana = state.MaxMana
		}
	}
	state.ManaUpdatedAt = ms
}

func (e *Engine) castSpell(state *entities.GameState, a CastSpell, now time.Time) Outcome {
	def := e.balance.Spell(a.SpellID)
	if def == nil {
		return rejectedf("unknown spell %q", a.SpellID)
	}

	ms := now.UnixMilli()
	st := state.Spells[a.SpellID]
	if st != nil {
		if st.ActiveUntil > ms {
			return rejectedf("spell %q is already active", a.SpellID)
		}
		if st.CooldownUntil > ms {
			return rejectedf("spell %q is on cooldown", a.SpellID)
		}
	}

	// Accrue regen before the affordability check so a stale tick
	// never blocks a cast the player could afford.
	e.RegenMana(state, now)
	if state.Mana < def.ManaCost {
		return rejected("insufficient mana")
	}

	state.Mana -= def.ManaCost
	state.Spells[a.SpellID] = &entities.SpellState{
		ActiveUntil: ms + def.DurationMS,
		// Cooldown runs from natural expiry; both windows are fixed at
		// cast time and checked lazily.
		CooldownUntil: ms + def.DurationMS + def.CooldownMS,
	}
	return applied()
}
