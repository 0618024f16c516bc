package engine_test

import (
	"github.com/forgebound/forge-api/internal/engine"
	"github.com/forgebound/forge-api/internal/entities"
)

func (s *EngineSuite) TestEquipItem() {
	s.state.Inventory = []entities.Equipment{
		{ID: "item_1", Slot: "weapon", Stats: entities.StatBlock{Strength: 3}},
	}

	out := s.apply(engine.EquipItem{ItemID: "item_1"})
	s.Require().True(out.Applied)

	s.Empty(s.state.Inventory, "equipping removes the item from the inventory")
	s.Require().NotNil(s.state.Equipped["weapon"])
	s.Equal("item_1", s.state.Equipped["weapon"].ID)
	s.Equal(3, s.state.Character.Total.Strength)
}

func (s *EngineSuite) TestEquipSwapsDisplacedItem() {
	s.state.Inventory = []entities.Equipment{
		{ID: "item_1", Slot: "weapon", Stats: entities.StatBlock{Strength: 3}},
		{ID: "item_2", Slot: "weapon", Stats: entities.StatBlock{Agility: 5}},
	}

	s.Require().True(s.apply(engine.EquipItem{ItemID: "item_1"}).Applied)
	s.Require().True(s.apply(engine.EquipItem{ItemID: "item_2"}).Applied)

	s.Equal("item_2", s.state.Equipped["weapon"].ID)
	s.Require().Len(s.state.Inventory, 1)
	s.Equal("item_1", s.state.Inventory[0].ID, "the displaced item returns to the inventory")
	s.Equal(0, s.state.Character.Total.Strength)
	s.Equal(5, s.state.Character.Total.Agility)
}

func (s *EngineSuite) TestUnequipItem() {
	s.state.Inventory = []entities.Equipment{
		{ID: "item_1", Slot: "offhand", Stats: entities.StatBlock{Stamina: 2}},
	}
	s.apply(engine.EquipItem{ItemID: "item_1"})

	out := s.apply(engine.UnequipItem{Slot: "offhand"})
	s.Require().True(out.Applied)

	s.NotContains(s.state.Equipped, "offhand")
	s.Require().Len(s.state.Inventory, 1)
	s.Equal("item_1", s.state.Inventory[0].ID)
	s.Equal(0, s.state.Character.Total.Stamina)
}

func (s *EngineSuite) TestEquipRejections() {
	s.state.Inventory = []entities.Equipment{
		{ID: "trinket", Slot: ""},
	}

	out := s.apply(engine.EquipItem{ItemID: "missing"})
	s.False(out.Applied)

	out = s.apply(engine.EquipItem{ItemID: "trinket"})
	s.False(out.Applied, "items without a slot cannot be equipped")

	out = s.apply(engine.UnequipItem{Slot: "weapon"})
	s.False(out.Applied, "nothing equipped")
}

func (s *EngineSuite) TestCharacterTotalsIncludeBaseStats() {
	s.state.Character.Base = entities.StatBlock{Intellect: 4}
	s.state.Inventory = []entities.Equipment{
		{ID: "item_1", Slot: "weapon", Stats: entities.StatBlock{Intellect: 2}},
	}

	s.apply(engine.EquipItem{ItemID: "item_1"})
	s.Equal(6, s.state.Character.Total.Intellect)
}
