package engine

import (
	"time"

	"github.com/forgebound/forge-api/internal/balance"
	"github.com/forgebound/forge-api/internal/entities"
)

// EvaluateAchievements checks every still-locked achievement against
// the current state and unlocks the ones whose predicate holds. The
// check is pull-based: because the tracked counters are monotonic,
// polling can never miss a transition, and re-checking an unlocked
// achievement is a no-op. Returns the ids unlocked by this call.
func (e *Engine) EvaluateAchievements(state *entities.GameState) []string {
	var unlocked []string
	for _, def := range e.balance.Achievements {
		if _, done := state.Achievements[def.ID]; done {
			continue
		}
		if achievementSatisfied(state, def) {
			state.Achievements[def.ID] = entities.AchievementUnlocked
			unlocked = append(unlocked, def.ID)
		}
	}
	return unlocked
}

func achievementSatisfied(state *entities.GameState, def balance.AchievementDef) bool {
	switch def.Kind {
	case balance.AchievementTaps:
		return float64(state.Stats.TotalTaps) >= def.Threshold
	case balance.AchievementLevel:
		for _, sk := range state.Skills {
			if float64(sk.Level) >= def.Threshold {
				return true
			}
		}
		return false
	case balance.AchievementGold:
		return state.Stats.GoldEarned >= def.Threshold
	case balance.AchievementCrafts:
		return float64(state.Stats.TotalCrafts) >= def.Threshold
	case balance.AchievementPrestige:
		return float64(state.PrestigeCount) >= def.Threshold
	default:
		return false
	}
}

func (e *Engine) claimAchievement(state *entities.GameState, a ClaimAchievement, now time.Time) Outcome {
	def := achievementDef(e.balance, a.AchievementID)
	if def == nil {
		return rejectedf("unknown achievement %q", a.AchievementID)
	}
	if state.Achievements[a.AchievementID] != entities.AchievementUnlocked {
		return rejectedf("achievement %q is not claimable", a.AchievementID)
	}

	// The claimed marker guarantees the reward is granted exactly once.
	state.Achievements[a.AchievementID] = entities.AchievementClaimed
	e.grantGold(state, def.Reward, now)
	return applied()
}

func achievementDef(t *balance.Tables, id string) *balance.AchievementDef {
	for i := range t.Achievements {
		if t.Achievements[i].ID == id {
			return &t.Achievements[i]
		}
	}
	return nil
}
