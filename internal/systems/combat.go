package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tombs-core/internal/domain"
	"tombs-core/pkg/logger"
)

// allEquipped возвращает надетую экипировку сущности.
// Инвентарь есть только у героя; для остальных список пуст.
func allEquipped(id int, g *domain.Game) []*domain.Equipment {
	if id != domain.PlayerIdx {
		return nil
	}
	var equipped []*domain.Equipment
	for _, item := range g.Inventory {
		if item.Equipment != nil && item.Equipment.IsEquipped {
			equipped = append(equipped, item.Equipment)
		}
	}
	return equipped
}

// EffectivePower - базовая сила плюс бонусы надетой экипировки.
func EffectivePower(id int, objects []*domain.Entity, g *domain.Game) int {
	power := 0
	if objects[id].Fighter != nil {
		power = objects[id].Fighter.BasePower
	}
	for _, eq := range allEquipped(id, g) {
		power += eq.PowerBonus
	}
	return power
}

// EffectiveDefense - базовая защита плюс бонусы надетой экипировки.
func EffectiveDefense(id int, objects []*domain.Entity, g *domain.Game) int {
	defense := 0
	if objects[id].Fighter != nil {
		defense = objects[id].Fighter.BaseDefense
	}
	for _, eq := range allEquipped(id, g) {
		defense += eq.DefenseBonus
	}
	return defense
}

// EffectiveMaxHP - базовый максимум здоровья плюс бонусы экипировки.
func EffectiveMaxHP(id int, objects []*domain.Entity, g *domain.Game) int {
	maxHP := 0
	if objects[id].Fighter != nil {
		maxHP = objects[id].Fighter.BaseMaxHP
	}
	for _, eq := range allEquipped(id, g) {
		maxHP += eq.MaxHPBonus
	}
	return maxHP
}

// Attack - атака ближнего боя. Урон = сила атакующего минус защита цели;
// неположительный урон не наносится вовсе.
func Attack(attackerID, targetID int, objects []*domain.Entity, g *domain.Game) {
	attacker := objects[attackerID]
	target := objects[targetID]

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_name": attacker.Name,
		"target_name":   target.Name,
	})

	damage := EffectivePower(attackerID, objects, g) - EffectiveDefense(targetID, objects, g)
	if damage <= 0 {
		g.Log.Add(fmt.Sprintf("%s атакует %s, но безрезультатно!", attacker.Name, target.Name), domain.ColorWhite)
		combatLogger.Debug("Attack resolved with no damage")
		return
	}

	g.Log.Add(fmt.Sprintf("%s атакует %s и наносит %d урона.", attacker.Name, target.Name, damage), domain.ColorWhite)

	xp, died := TakeDamage(targetID, damage, objects, g)
	if attacker.Fighter != nil {
		attacker.Fighter.XP += xp
	}

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"target_died": died,
		"xp_gained":   xp,
	}).Debug("Attack resolved")
}

// TakeDamage наносит урон и обрабатывает гибель.
// Возвращает опыт за убийство (0, если цель выжила или это герой).
func TakeDamage(targetID, damage int, objects []*domain.Entity, g *domain.Game) (xp int, died bool) {
	target := objects[targetID]
	if target.Fighter == nil || damage <= 0 {
		return 0, false
	}

	target.Fighter.HP -= damage
	if target.Fighter.HP > 0 {
		return 0, false
	}

	switch target.Fighter.Death {
	case domain.DeathPlayer:
		playerDeath(target, g)
		return 0, true
	case domain.DeathMonster:
		xp = target.Fighter.XP
		monsterDeath(target, g)
		return xp, true
	}
	return 0, true
}

// playerDeath завершает игру. Боевой компонент героя сохраняется,
// чтобы экран персонажа работал и после гибели.
func playerDeath(player *domain.Entity, g *domain.Game) {
	g.Log.Add("Вы погибли!", domain.ColorRed)
	g.State = domain.StateDead

	player.Glyph = "%"
	player.Color = domain.ColorDarkRed

	logger.Log.WithField("component", "combat_system").Info("Player died, session over")
}

// monsterDeath превращает монстра в останки: труп не блокирует проход,
// не атакует и не может быть атакован.
func monsterDeath(monster *domain.Entity, g *domain.Game) {
	g.Log.Add(fmt.Sprintf("%s погибает! Вы получаете %d опыта.", monster.Name, monster.Fighter.XP), domain.ColorOrange)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"monster":   monster.Name,
		"xp":        monster.Fighter.XP,
	}).Debug("Monster died")

	monster.Glyph = "%"
	monster.Color = domain.ColorDarkRed
	monster.Blocks = false
	monster.Fighter = nil
	monster.AI = nil
	monster.Name = "останки " + monster.Name
}
