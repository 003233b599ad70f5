package dungeon

import "github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"

func newOrc(x, y int) entity.Entity {
	orc := entity.New(x, y, 'o', "Orc", entity.ColorDesatGreen, true)
	orc.Fighter = &entity.Fighter{
		BaseMaxHP:   20,
		HP:          20,
		BaseDefense: 0,
		BasePower:   4,
		XP:          35,
		OnDeath:     entity.MonsterPolicy,
	}
	orc.AI = entity.BasicAI()
	return orc
}

func newTroll(x, y int) entity.Entity {
	troll := entity.New(x, y, 'T', "Troll", entity.ColorDarkerGreen, true)
	troll.Fighter = &entity.Fighter{
		BaseMaxHP:   30,
		HP:          30,
		BaseDefense: 2,
		BasePower:   8,
		XP:          100,
		OnDeath:     entity.MonsterPolicy,
	}
	troll.AI = entity.BasicAI()
	return troll
}

func newHealingPotion(x, y int) entity.Entity {
	item := entity.New(x, y, '!', "Healing Potion", entity.ColorViolet, false)
	item.Item = entity.ItemHeal
	return item
}

func newLightningScroll(x, y int) entity.Entity {
	item := entity.New(x, y, '#', "Scroll of Lightning Bolt", entity.ColorLightYellow, false)
	item.Item = entity.ItemLightning
	return item
}

func newFireballScroll(x, y int) entity.Entity {
	item := entity.New(x, y, '#', "Scroll of Fireball", entity.ColorLightYellow, false)
	item.Item = entity.ItemFireball
	return item
}

func newConfusionScroll(x, y int) entity.Entity {
	item := entity.New(x, y, '#', "Scroll of Confusion", entity.ColorLightYellow, false)
	item.Item = entity.ItemConfuse
	return item
}

func newSword(x, y int) entity.Entity {
	item := entity.New(x, y, '/', "Sword", entity.ColorSky, false)
	item.Item = entity.ItemSword
	item.Equipment = &entity.Equipment{Slot: entity.SlotRightHand, PowerBonus: 3}
	return item
}

func newShield(x, y int) entity.Entity {
	item := entity.New(x, y, '[', "Shield", entity.ColorDarkerOrange, false)
	item.Item = entity.ItemShield
	item.Equipment = &entity.Equipment{Slot: entity.SlotLeftHand, DefenseBonus: 1}
	return item
}

// NewDagger is the player's starting weapon: already equipped in the
// left hand.
func NewDagger() entity.Entity {
	item := entity.New(0, 0, '-', "Dagger", entity.ColorSky, false)
	item.Item = entity.ItemSword
	item.Equipment = &entity.Equipment{
		Slot:       entity.SlotLeftHand,
		Equipped:   true,
		PowerBonus: 2,
	}
	return item
}
