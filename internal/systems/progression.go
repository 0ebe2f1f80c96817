package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tombs-core/internal/domain"
	"tombs-core/pkg/logger"
)

// Варианты прокачки при получении уровня.
const (
	LevelUpHP = iota
	LevelUpPower
	LevelUpDefense
)

// Presenter показывает герою блокирующие меню.
type Presenter interface {
	// ChooseLevelUp возвращает один из вариантов LevelUp*.
	// Меню нельзя закрыть без выбора.
	ChooseLevelUp(level, hp, power, defense int) int
}

// LevelUpXP - порог опыта для следующего уровня героя.
func LevelUpXP(level, base, factor int) int {
	return base + level*factor
}

// CheckLevelUp повышает уровень героя, пока опыта хватает на порог.
// Излишек опыта переносится на следующий уровень.
func CheckLevelUp(objects []*domain.Entity, g *domain.Game, base, factor int, ui Presenter) {
	player := objects[domain.PlayerIdx]
	if player.Fighter == nil {
		return
	}

	for player.Fighter.XP >= LevelUpXP(player.Level, base, factor) {
		threshold := LevelUpXP(player.Level, base, factor)
		player.Level++
		player.Fighter.XP -= threshold

		g.Log.Add(fmt.Sprintf("Ваше боевое мастерство растёт! Вы достигли уровня %d!", player.Level), domain.ColorYellow)

		choice := ui.ChooseLevelUp(
			player.Level,
			player.Fighter.BaseMaxHP,
			player.Fighter.BasePower,
			player.Fighter.BaseDefense,
		)
		switch choice {
		case LevelUpHP:
			player.Fighter.BaseMaxHP += 20
			player.Fighter.HP += 20
		case LevelUpPower:
			player.Fighter.BasePower++
		case LevelUpDefense:
			player.Fighter.BaseDefense++
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "progression_system",
			"level":     player.Level,
			"choice":    choice,
			"xp_left":   player.Fighter.XP,
		}).Info("Player leveled up")
	}
}
