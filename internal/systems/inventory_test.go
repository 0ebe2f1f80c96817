package systems

import (
	"strings"
	"testing"

	"tombs-core/internal/domain"
)

func TestPickUp(t *testing.T) {
	objects, g := newTestGame()
	itemID := addPotion(&objects, 10, 10)

	if !PickUp(itemID, &objects, g, 26) {
		t.Fatal("pickup must succeed with room in the inventory")
	}
	if len(g.Inventory) != 1 || g.Inventory[0].Name != "лечебное зелье" {
		t.Errorf("inventory = %v", g.Inventory)
	}
	if len(objects) != 1 {
		t.Errorf("world still holds %d objects, want only the player", len(objects))
	}
}

func TestPickUpFullInventory(t *testing.T) {
	objects, g := newTestGame()
	for i := 0; i < 26; i++ {
		kind := domain.ItemHeal
		filler := domain.NewEntity(domain.EntityTypeItem, 0, 0, "!", "лечебное зелье", domain.ColorViolet, false)
		filler.Item = &kind
		g.Inventory = append(g.Inventory, filler)
	}
	itemID := addPotion(&objects, 10, 10)

	if PickUp(itemID, &objects, g, 26) {
		t.Fatal("27th item must not fit")
	}
	if len(g.Inventory) != 26 {
		t.Errorf("inventory size = %d, want 26", len(g.Inventory))
	}
	if len(objects) != 2 {
		t.Error("item must stay in the world when inventory is full")
	}
	msg, _ := g.Log.Last()
	if !strings.Contains(msg.Text, "Инвентарь полон") {
		t.Errorf("expected full-inventory message, got %q", msg.Text)
	}
}

func TestPickUpAutoEquipsFreeSlot(t *testing.T) {
	objects, g := newTestGame()
	sword := newSword()
	sword.Pos = domain.Position{X: 10, Y: 10}
	objects = append(objects, sword)

	PickUp(1, &objects, g, 26)

	if !sword.Equipment.IsEquipped {
		t.Error("equipment picked up into a free slot must auto-equip")
	}
}

func TestPickUpDoesNotAutoEquipBusySlot(t *testing.T) {
	objects, g := newTestGame()
	dagger := newSword()
	dagger.Name = "кинжал"
	dagger.Equipment.IsEquipped = true
	g.Inventory = []*domain.Entity{dagger}

	sword := newSword()
	sword.Pos = domain.Position{X: 10, Y: 10}
	objects = append(objects, sword)

	PickUp(1, &objects, g, 26)

	if sword.Equipment.IsEquipped {
		t.Error("slot is busy, new equipment must stay unequipped")
	}
	if !dagger.Equipment.IsEquipped {
		t.Error("already equipped item must stay equipped")
	}
}

func TestEquipSwapsSlotOccupant(t *testing.T) {
	_, g := newTestGame()
	dagger := newSword()
	dagger.Name = "кинжал"
	dagger.Equipment.IsEquipped = true
	sword := newSword()
	g.Inventory = []*domain.Entity{dagger, sword}

	Equip(sword, g)

	if dagger.Equipment.IsEquipped {
		t.Error("old occupant must be dequipped")
	}
	if !sword.Equipment.IsEquipped {
		t.Error("new item must be equipped")
	}
	// Инвариант: в слоте не больше одного предмета
	if GetEquippedInSlot(domain.SlotRightHand, g) != sword {
		t.Error("slot must resolve to the newly equipped item")
	}
}

func TestDropItemDequipsAndReturnsToWorld(t *testing.T) {
	objects, g := newTestGame()
	sword := newSword()
	sword.Equipment.IsEquipped = true
	g.Inventory = []*domain.Entity{sword}

	DropItem(0, &objects, g)

	if len(g.Inventory) != 0 {
		t.Error("inventory must be empty after drop")
	}
	if sword.Equipment.IsEquipped {
		t.Error("dropped equipment must be dequipped first")
	}
	if sword.Pos != objects[domain.PlayerIdx].Pos {
		t.Error("dropped item must land on the player's tile")
	}
	if objects[len(objects)-1] != sword {
		t.Error("dropped item must return to the world collection")
	}
}

func TestToggleEquip(t *testing.T) {
	_, g := newTestGame()
	shield := newShield()
	g.Inventory = []*domain.Entity{shield}

	ToggleEquip(shield, g)
	if !shield.Equipment.IsEquipped {
		t.Fatal("first toggle must equip")
	}
	ToggleEquip(shield, g)
	if shield.Equipment.IsEquipped {
		t.Fatal("second toggle must dequip")
	}
}
