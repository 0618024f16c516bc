// Package engine implements the progression state machine. A single
// entry point, Apply, accepts discrete player actions and advances the
// GameState. The engine is a deterministic function of (state, action,
// now): wall-clock time is threaded in by the caller, and all
// randomness comes from the injected roller. Invalid actions are
// no-ops; they never error and never partially mutate.
package engine

import (
	"fmt"
	"time"

	"github.com/forgebound/forge-api/internal/balance"
	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/errors"
	"github.com/forgebound/forge-api/internal/formula"
	"github.com/forgebound/forge-api/internal/pkg/idgen"
	"github.com/forgebound/forge-api/internal/pkg/rng"
)

// Config holds the dependencies for the engine
type Config struct {
	Balance *balance.Tables
	Roller  rng.Roller
	IDGen   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Balance == nil {
		vb.RequiredField("Balance")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

// Engine applies player actions to a GameState. It owns no state of
// its own beyond its (immutable) dependencies, so one engine can serve
// any number of states.
type Engine struct {
	balance *balance.Tables
	roller  rng.Roller
	idGen   idgen.Generator
}

// New creates an engine with the provided dependencies
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := cfg.Balance.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid balance tables")
	}

	return &Engine{
		balance: cfg.Balance,
		roller:  cfg.Roller,
		idGen:   cfg.IDGen,
	}, nil
}

// Balance exposes the engine's balance tables to read-only consumers.
func (e *Engine) Balance() *balance.Tables {
	return e.balance
}

// NewState produces the initial progression state: the first skill
// unlocked at level 1, full mana, everything else empty.
func (e *Engine) NewState(now time.Time) *entities.GameState {
	ms := now.UnixMilli()
	state := &entities.GameState{
		Skills:        make(map[string]*entities.Skill, len(e.balance.Skills)),
		Resources:     make(map[string]int),
		CraftedItems:  make(map[string]int),
		Equipped:      make(map[string]*entities.Equipment),
		Talents:       make(map[string]int),
		Spells:        make(map[string]*entities.SpellState),
		Achievements:  make(map[string]entities.AchievementStatus),
		MaxMana:       e.balance.Mana.BaseMax,
		Mana:          e.balance.Mana.BaseMax,
		ManaUpdatedAt: ms,
		CreatedAt:     ms,
		UpdatedAt:     ms,
	}
	for i, def := range e.balance.Skills {
		state.Skills[def.Key] = &entities.Skill{
			Key:      def.Key,
			Level:    1,
			Unlocked: i == 0,
		}
	}
	return state
}

// Outcome reports whether an action was applied. Rejected actions
// carry a diagnostic reason for the UI; they are not errors.
type Outcome struct {
	Applied bool
	Reason  string
}

func applied() Outcome {
	return Outcome{Applied: true}
}

func rejected(reason string) Outcome {
	return Outcome{Reason: reason}
}

func rejectedf(format string, args ...any) Outcome {
	return Outcome{Reason: fmt.Sprintf(format, args...)}
}

// Apply advances state by one action at the given time. The reducer
// re-validates every precondition itself; it never trusts that the UI
// gated the action correctly.
func (e *Engine) Apply(state *entities.GameState, action Action, now time.Time) Outcome {
	if state == nil || action == nil {
		return rejected("no state or action")
	}

	var out Outcome
	switch a := action.(type) {
	case Gather:
		out = e.gather(state, a, now)
	case StartCraft:
		out = e.startCraft(state, a, now)
	case CancelCraft:
		out = e.cancelCraft(state, a)
	case CollectCraft:
		out = e.collectCraft(state, a, now)
	case SellResource:
		out = e.sellResource(state, a, now)
	case SellAllResources:
		out = e.sellAllResources(state, now)
	case SellCrafted:
		out = e.sellCrafted(state, a, now)
	case SellEquipment:
		out = e.sellEquipment(state, a, now)
	case UnlockSkill:
		out = e.unlockSkill(state, a)
	case EquipItem:
		out = e.equipItem(state, a)
	case UnequipItem:
		out = e.unequipItem(state, a)
	case Prestige:
		out = e.prestige(state)
	case BuyTalent:
		out = e.buyTalent(state, a)
	case CastSpell:
		out = e.castSpell(state, a, now)
	case ClaimAchievement:
		out = e.claimAchievement(state, a, now)
	default:
		out = rejectedf("unknown action %T", action)
	}

	if out.Applied {
		state.UpdatedAt = now.UnixMilli()
	}
	return out
}

// ResourceKey builds the composite identifier for a tiered resource.
func ResourceKey(kind string, tier int) string {
	return fmt.Sprintf("%s_t%d", kind, tier)
}

// addXP adds experience to a skill and recomputes the derived level.
// Returns whether a level-up occurred.
func (e *Engine) addXP(sk *entities.Skill, xp float64) bool {
	sk.TotalXP += xp
	level := formula.LevelFromTotalXP(e.balance, sk.TotalXP)
	if level > sk.Level {
		sk.Level = level
		return true
	}
	return false
}

// effectBonus sums the additive contribution of talents and currently
// active spells for one effect kind.
func (e *Engine) effectBonus(state *entities.GameState, kind balance.EffectKind, now time.Time) float64 {
	total := 0.0
	for id, rank := range state.Talents {
		def := e.balance.Talent(id)
		if def != nil && def.Effect == kind {
			total += def.PerRank * float64(rank)
		}
	}
	ms := now.UnixMilli()
	for id, st := range state.Spells {
		def := e.balance.Spell(id)
		if def != nil && def.Effect == kind && st.ActiveUntil > ms {
			total += def.Amount
		}
	}
	return total
}

// bonusTaps returns the flat additive gather term.
func (e *Engine) bonusTaps(state *entities.GameState, now time.Time) int {
	return int(e.effectBonus(state, balance.EffectBonusTaps, now))
}

// maxManaFor recomputes the mana cap from the base pool plus talents.
func (e *Engine) maxManaFor(state *entities.GameState) float64 {
	return e.balance.Mana.BaseMax + e.effectBonus(state, balance.EffectMaxMana, time.UnixMilli(0))
}
