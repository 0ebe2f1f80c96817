package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tombs-core/internal/domain"
	"tombs-core/pkg/logger"
)

// PickUp переносит предмет из мира в инвентарь героя.
// Возвращает false, если инвентарь полон.
func PickUp(objectID int, objects *[]*domain.Entity, g *domain.Game, capacity int) bool {
	item := (*objects)[objectID]

	if len(g.Inventory) >= capacity {
		g.Log.Add(fmt.Sprintf("Инвентарь полон, не удалось подобрать %s.", item.Name), domain.ColorRed)
		return false
	}

	// Убираем предмет из мира: последняя сущность встает на его место
	last := len(*objects) - 1
	(*objects)[objectID] = (*objects)[last]
	*objects = (*objects)[:last]

	g.Inventory = append(g.Inventory, item)
	g.Log.Add(fmt.Sprintf("Вы подобрали %s!", item.Name), domain.ColorGreen)

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"item":      item.Name,
		"inventory": len(g.Inventory),
	}).Debug("Item picked up")

	// Экипировка с пустым слотом надевается сразу
	if item.Equipment != nil && GetEquippedInSlot(item.Equipment.Slot, g) == nil {
		Equip(item, g)
	}
	return true
}

// DropItem возвращает предмет из инвентаря на клетку героя.
func DropItem(invIdx int, objects *[]*domain.Entity, g *domain.Game) {
	item := g.Inventory[invIdx]
	g.Inventory = append(g.Inventory[:invIdx], g.Inventory[invIdx+1:]...)

	if item.Equipment != nil && item.Equipment.IsEquipped {
		Dequip(item, g)
	}

	item.Pos = (*objects)[domain.PlayerIdx].Pos
	*objects = append(*objects, item)
	g.Log.Add(fmt.Sprintf("Вы бросили %s.", item.Name), domain.ColorYellow)
}

// GetEquippedInSlot возвращает предмет, надетый в слот, либо nil.
func GetEquippedInSlot(slot string, g *domain.Game) *domain.Entity {
	for _, item := range g.Inventory {
		if item.Equipment != nil && item.Equipment.IsEquipped && item.Equipment.Slot == slot {
			return item
		}
	}
	return nil
}

// Equip надевает предмет, предварительно освободив его слот.
func Equip(item *domain.Entity, g *domain.Game) {
	if item.Equipment == nil {
		g.Log.Add(fmt.Sprintf("%s нельзя надеть.", item.Name), domain.ColorRed)
		return
	}
	if current := GetEquippedInSlot(item.Equipment.Slot, g); current != nil && current != item {
		Dequip(current, g)
	}

	item.Equipment.IsEquipped = true
	g.Log.Add(fmt.Sprintf("Надето: %s (%s).", item.Name, item.Equipment.Slot), domain.ColorLightGreen)
}

// Dequip снимает предмет.
func Dequip(item *domain.Entity, g *domain.Game) {
	if item.Equipment == nil || !item.Equipment.IsEquipped {
		return
	}
	item.Equipment.IsEquipped = false
	g.Log.Add(fmt.Sprintf("Снято: %s (%s).", item.Name, item.Equipment.Slot), domain.ColorYellow)
}

// ToggleEquip - "использование" экипируемого предмета.
func ToggleEquip(item *domain.Entity, g *domain.Game) {
	if item.Equipment != nil && item.Equipment.IsEquipped {
		Dequip(item, g)
	} else {
		Equip(item, g)
	}
}
