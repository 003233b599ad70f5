package entity

// Slot identifies where a piece of equipment is worn. The values double
// as display strings in log messages.
type Slot string

const (
	SlotHead      Slot = "head"
	SlotRightHand Slot = "right hand"
	SlotLeftHand  Slot = "left hand"
)

// Equipment is the wearable component of an item entity. At most one
// equipped item per slot may exist in the player's inventory.
type Equipment struct {
	Slot         Slot `json:"slot"`
	Equipped     bool `json:"equipped"`
	PowerBonus   int  `json:"power_bonus"`
	DefenseBonus int  `json:"defense_bonus"`
	HPBonus      int  `json:"hp_bonus"`
}

// EquippedInSlot returns the inventory index of the equipped item
// occupying the given slot, or -1 if the slot is free.
func EquippedInSlot(slot Slot, inv List) int {
	for i := range inv {
		if eq := inv[i].Equipment; eq != nil && eq.Equipped && eq.Slot == slot {
			return i
		}
	}
	return -1
}
