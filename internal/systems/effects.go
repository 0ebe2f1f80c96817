package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tombs-core/internal/domain"
	"tombs-core/pkg/logger"
)

// UseResult - исход использования предмета.
type UseResult uint8

const (
	// UseUsedUp - предмет сработал и исчезает из инвентаря.
	UseUsedUp UseResult = iota
	// UseUsedAndKept - предмет сработал, но остается (экипировка).
	UseUsedAndKept
	// UseCancelled - применение отменено, предмет остается.
	UseCancelled
)

// SpellParams - численные параметры эффектов, берутся из конфига.
type SpellParams struct {
	HealAmount      int
	LightningDamage int
	LightningRange  int
	ConfuseRange    int
	ConfuseTurns    int
	FireballRadius  int
	FireballDamage  int
}

// Targeter поставляет цель для заклинаний, требующих выбора.
// Вызовы блокируют симуляцию до клика или отмены.
type Targeter interface {
	// SelectTile ждет клика по видимой клетке; maxRange < 0 - без ограничения дальности.
	SelectTile(maxRange float64) (domain.Position, bool)
	// SelectMonster ждет клика по видимому монстру в пределах maxRange.
	SelectMonster(maxRange float64) (monsterID int, ok bool)
}

// UseItem применяет предмет инвентаря по индексу.
// Израсходованный предмет удаляется с сохранением порядка остальных.
func UseItem(invIdx int, objects []*domain.Entity, g *domain.Game, p SpellParams, vis Visibility, targeter Targeter) {
	item := g.Inventory[invIdx]

	// Экипировка: "использовать" значит надеть или снять
	if item.Equipment != nil {
		ToggleEquip(item, g)
		return
	}

	if item.Item == nil {
		g.Log.Add(fmt.Sprintf("%s нельзя использовать.", item.Name), domain.ColorWhite)
		return
	}

	var result UseResult
	switch *item.Item {
	case domain.ItemHeal:
		result = CastHeal(objects, g, p)
	case domain.ItemLightning:
		result = CastLightning(objects, g, p, vis)
	case domain.ItemConfuse:
		result = CastConfuse(objects, g, p, targeter)
	case domain.ItemFireball:
		result = CastFireball(objects, g, p, targeter)
	default:
		g.Log.Add(fmt.Sprintf("%s нельзя использовать.", item.Name), domain.ColorWhite)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "effects_system",
		"item":      item.Name,
		"result":    result,
	}).Debug("Item use resolved")

	switch result {
	case UseUsedUp:
		g.Inventory = append(g.Inventory[:invIdx], g.Inventory[invIdx+1:]...)
	case UseCancelled:
		g.Log.Add("Отмена.", domain.ColorWhite)
	}
}

// CastHeal лечит героя. При полном здоровье применение отменяется.
func CastHeal(objects []*domain.Entity, g *domain.Game, p SpellParams) UseResult {
	player := objects[domain.PlayerIdx]
	if player.Fighter == nil {
		return UseCancelled
	}

	maxHP := EffectiveMaxHP(domain.PlayerIdx, objects, g)
	if player.Fighter.HP == maxHP {
		g.Log.Add("Вы и так полностью здоровы.", domain.ColorRed)
		return UseCancelled
	}

	g.Log.Add("Ваши раны затягиваются!", domain.ColorLightViolet)
	player.Fighter.Heal(p.HealAmount, maxHP)
	return UseUsedUp
}

// CastLightning бьет ближайшего видимого монстра. Цель выбирается
// автоматически; вне досягаемости - отмена.
func CastLightning(objects []*domain.Entity, g *domain.Game, p SpellParams, vis Visibility) UseResult {
	monsterID := closestMonster(p.LightningRange, objects, vis)
	if monsterID < 0 {
		g.Log.Add("Ни одного врага в пределах досягаемости молнии.", domain.ColorRed)
		return UseCancelled
	}

	monster := objects[monsterID]
	g.Log.Add(fmt.Sprintf("Молния ударяет %s с оглушительным треском! Урон: %d.", monster.Name, p.LightningDamage), domain.ColorLightBlue)

	xp, _ := TakeDamage(monsterID, p.LightningDamage, objects, g)
	if player := objects[domain.PlayerIdx]; player.Fighter != nil {
		player.Fighter.XP += xp
	}
	return UseUsedUp
}

// CastConfuse вводит выбранного монстра в замешательство,
// запоминая его прежнее состояние.
func CastConfuse(objects []*domain.Entity, g *domain.Game, p SpellParams, targeter Targeter) UseResult {
	monsterID, ok := targeter.SelectMonster(float64(p.ConfuseRange))
	if !ok {
		return UseCancelled
	}

	monster := objects[monsterID]
	monster.AI = domain.NewConfusedAI(monster.AI, p.ConfuseTurns)
	g.Log.Add(fmt.Sprintf("Глаза %s стекленеют, и он начинает бесцельно бродить!", monster.Name), domain.ColorLightGreen)
	return UseUsedUp
}

// CastFireball взрывается в выбранной клетке и жжет всех в радиусе,
// включая героя. Опыт начисляется только за монстров.
func CastFireball(objects []*domain.Entity, g *domain.Game, p SpellParams, targeter Targeter) UseResult {
	pos, ok := targeter.SelectTile(-1)
	if !ok {
		return UseCancelled
	}

	g.Log.Add(fmt.Sprintf("Огненный шар взрывается, сжигая все в радиусе %d клеток!", p.FireballRadius), domain.ColorOrange)

	xpToGain := 0
	for id := range objects {
		obj := objects[id]
		if obj.Fighter == nil || obj.Pos.DistanceToXY(pos.X, pos.Y) > float64(p.FireballRadius) {
			continue
		}
		g.Log.Add(fmt.Sprintf("%s получает %d урона от огня.", obj.Name, p.FireballDamage), domain.ColorOrange)
		xp, _ := TakeDamage(id, p.FireballDamage, objects, g)
		if id != domain.PlayerIdx {
			xpToGain += xp
		}
	}

	if player := objects[domain.PlayerIdx]; player.Fighter != nil {
		player.Fighter.XP += xpToGain
	}
	return UseUsedUp
}

// closestMonster возвращает индекс ближайшего видимого монстра
// в пределах maxRange, либо -1.
func closestMonster(maxRange int, objects []*domain.Entity, vis Visibility) int {
	closest := -1
	closestDist := float64(maxRange) + 1

	player := objects[domain.PlayerIdx]
	for id, obj := range objects {
		if id == domain.PlayerIdx || obj.Fighter == nil || obj.AI == nil {
			continue
		}
		if !vis.IsVisible(obj.Pos.X, obj.Pos.Y) {
			continue
		}
		if dist := player.DistanceTo(obj); dist < closestDist {
			closest = id
			closestDist = dist
		}
	}
	return closest
}
