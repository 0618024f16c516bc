package balance

// Default returns the shipped balance tables.
func Default() *Tables {
	return &Tables{
		XP: XPCurve{
			Base:     100,
			Exponent: 2.1,
		},
		Tiers: TierTable{
			LevelsPerTier:   20,
			MaxTier:         10,
			ValueMultiplier: 2.5,
			XPMultiplier:    1.6,
		},
		Gather: GatherTable{
			CritChance:      0.05,
			CritMultiplier:  2.0,
			LuckyChance:     0.10,
			LuckyMultiplier: 3.0,
		},
		Skills: []SkillDef{
			{Key: "mining", Name: "Mining", Category: CategoryGathering, BaseXP: 10, BaseYield: 1, BaseValue: 2},
			{Key: "smithing", Name: "Smithing", Category: CategoryCrafting, BaseXP: 14, BaseYield: 1, BaseValue: 5},
			{Key: "woodcutting", Name: "Woodcutting", Category: CategoryGathering, BaseXP: 10, BaseYield: 1, BaseValue: 2},
			{Key: "carpentry", Name: "Carpentry", Category: CategoryCrafting, BaseXP: 14, BaseYield: 1, BaseValue: 5},
			{Key: "fishing", Name: "Fishing", Category: CategoryGathering, BaseXP: 12, BaseYield: 1, BaseValue: 3},
			{Key: "alchemy", Name: "Alchemy", Category: CategoryCrafting, BaseXP: 16, BaseYield: 1, BaseValue: 7},
			{Key: "enchanting", Name: "Enchanting", Category: CategorySupport, BaseXP: 20, BaseYield: 1, BaseValue: 0},
			{Key: "runecraft", Name: "Runecraft", Category: CategorySupport, BaseXP: 20, BaseYield: 1, BaseValue: 0},
		},
		Unlock: UnlockTable{
			BaseCost:     500,
			Growth:       6,
			SupportChaos: 25,
		},
		Quality: []QualityTier{
			{Key: "common", Weight: 70, ValueMultiplier: 1.0},
			{Key: "uncommon", Weight: 20, ValueMultiplier: 1.5},
			{Key: "rare", Weight: 8, ValueMultiplier: 2.5},
			{Key: "epic", Weight: 1.8, ValueMultiplier: 5.0},
			{Key: "legendary", Weight: 0.2, ValueMultiplier: 12.0},
		},
		Recipes: []Recipe{
			{
				ID: "copper_bar", Skill: "smithing", LevelReq: 1,
				DurationMS: 5000, Inputs: map[string]int{"mining_t1": 3},
				XP: 20, BaseValue: 12,
			},
			{
				ID: "iron_bar", Skill: "smithing", LevelReq: 21,
				DurationMS: 10000, Inputs: map[string]int{"mining_t2": 3},
				XP: 45, BaseValue: 40,
			},
			{
				ID: "copper_dagger", Skill: "smithing", LevelReq: 5,
				DurationMS: 15000, Inputs: map[string]int{"mining_t1": 8},
				XP: 60, BaseValue: 50, Slot: "weapon", StatBudget: 6,
			},
			{
				ID: "oak_plank", Skill: "carpentry", LevelReq: 1,
				DurationMS: 4000, Inputs: map[string]int{"woodcutting_t1": 2},
				XP: 16, BaseValue: 9,
			},
			{
				ID: "oak_shield", Skill: "carpentry", LevelReq: 10,
				DurationMS: 20000, Inputs: map[string]int{"woodcutting_t1": 12},
				XP: 80, BaseValue: 70, Slot: "offhand", StatBudget: 8,
			},
			{
				ID: "minor_potion", Skill: "alchemy", LevelReq: 1,
				DurationMS: 6000, Inputs: map[string]int{"fishing_t1": 2},
				XP: 22, BaseValue: 15,
			},
		},
		Talents: []TalentDef{
			{ID: "keen_eye", Name: "Keen Eye", MaxRank: 10, BaseCost: 1, CostStep: 1, Effect: EffectXPBonus, PerRank: 0.05},
			{ID: "heavy_hands", Name: "Heavy Hands", MaxRank: 10, BaseCost: 1, CostStep: 1, Effect: EffectYieldBonus, PerRank: 0.04},
			{ID: "quick_fingers", Name: "Quick Fingers", MaxRank: 5, BaseCost: 2, CostStep: 2, Effect: EffectBonusTaps, PerRank: 1},
			{ID: "deep_reserves", Name: "Deep Reserves", MaxRank: 5, BaseCost: 2, CostStep: 1, Effect: EffectMaxMana, PerRank: 20},
			{ID: "gilded_touch", Name: "Gilded Touch", MaxRank: 10, BaseCost: 3, CostStep: 2, Effect: EffectGoldBonus, PerRank: 0.03},
		},
		Spells: []SpellDef{
			{ID: "miners_focus", Name: "Miner's Focus", ManaCost: 30, DurationMS: 60_000, CooldownMS: 180_000, Effect: EffectXPBonus, Amount: 0.5},
			{ID: "golden_surge", Name: "Golden Surge", ManaCost: 50, DurationMS: 30_000, CooldownMS: 300_000, Effect: EffectYieldBonus, Amount: 1.0},
		},
		Mana: ManaTable{
			BaseMax:        100,
			RegenPerSecond: 0.5,
		},
		Prestige: PrestigeTable{
			RequiredLevel: 100,
			LevelCoeff:    0.1,
			GoldCoeff:     0.01,
		},
		Achievements: []AchievementDef{
			{ID: "first_steps", Name: "First Steps", Kind: AchievementTaps, Threshold: 10, Reward: 50},
			{ID: "busy_hands", Name: "Busy Hands", Kind: AchievementTaps, Threshold: 1000, Reward: 500},
			{ID: "apprentice", Name: "Apprentice", Kind: AchievementLevel, Threshold: 10, Reward: 100},
			{ID: "journeyman", Name: "Journeyman", Kind: AchievementLevel, Threshold: 50, Reward: 1000},
			{ID: "first_fortune", Name: "First Fortune", Kind: AchievementGold, Threshold: 10_000, Reward: 1000},
			{ID: "artisan", Name: "Artisan", Kind: AchievementCrafts, Threshold: 100, Reward: 750},
			{ID: "reborn", Name: "Reborn", Kind: AchievementPrestige, Threshold: 1, Reward: 5000},
		},
	}
}
