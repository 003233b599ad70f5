package entity

import "testing"

func testPlayer() Entity {
	p := New(5, 5, '@', PlayerName, ColorWhite, true)
	p.Alive = true
	p.Fighter = &Fighter{
		BaseMaxHP:   100,
		HP:          100,
		BaseDefense: 1,
		BasePower:   2,
		OnDeath:     PlayerPolicy,
	}
	return p
}

func testSword(equipped bool) Entity {
	s := New(0, 0, '/', "Sword", ColorSky, false)
	s.Item = ItemSword
	s.Equipment = &Equipment{Slot: SlotRightHand, Equipped: equipped, PowerBonus: 3}
	return s
}

func TestStatAggregation(t *testing.T) {
	player := testPlayer()
	inv := List{testSword(true)}

	if got := player.Power(inv); got != 5 {
		t.Errorf("expected power 5 with equipped sword, got %d", got)
	}
	if got := player.Defense(inv); got != 1 {
		t.Errorf("expected defense 1, got %d", got)
	}
	if got := player.MaxHP(inv); got != 100 {
		t.Errorf("expected max HP 100, got %d", got)
	}
}

func TestStatAggregationIgnoresUnequipped(t *testing.T) {
	player := testPlayer()
	inv := List{testSword(false)}

	if got := player.Power(inv); got != 2 {
		t.Errorf("expected base power 2 with unequipped sword, got %d", got)
	}
}

func TestMonsterIgnoresInventory(t *testing.T) {
	orc := New(1, 1, 'o', "Orc", ColorDesatGreen, true)
	orc.Fighter = &Fighter{BaseMaxHP: 20, HP: 20, BasePower: 4, OnDeath: MonsterPolicy}
	inv := List{testSword(true)}

	if got := orc.Power(inv); got != 4 {
		t.Errorf("expected monster power 4 regardless of inventory, got %d", got)
	}
}

func TestHealClampsToMax(t *testing.T) {
	player := testPlayer()
	player.Fighter.HP = 90

	player.Heal(40, nil)

	if player.Fighter.HP != 100 {
		t.Errorf("expected HP clamped to 100, got %d", player.Fighter.HP)
	}
}

func TestEquippedInSlot(t *testing.T) {
	inv := List{testSword(false), testSword(true)}

	if got := EquippedInSlot(SlotRightHand, inv); got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
	if got := EquippedInSlot(SlotLeftHand, inv); got != -1 {
		t.Errorf("expected -1 for empty slot, got %d", got)
	}
}
