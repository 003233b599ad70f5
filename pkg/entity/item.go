package entity

// ItemKind is the closed set of usable item effects. The kind decides
// which effect fires on use; wearables (sword, shield) toggle their
// equipment instead of being consumed.
type ItemKind string

const (
	ItemNone      ItemKind = ""
	ItemHeal      ItemKind = "heal"
	ItemLightning ItemKind = "lightning"
	ItemConfuse   ItemKind = "confuse"
	ItemFireball  ItemKind = "fireball"
	ItemSword     ItemKind = "sword"
	ItemShield    ItemKind = "shield"
)

// IsItem reports whether the entity can be picked up and used.
func (e *Entity) IsItem() bool {
	return e.Item != ItemNone
}
