package actions

import (
	"fmt"

	"tombs-core/internal/domain"
	"tombs-core/internal/engine/handlers"
	"tombs-core/internal/systems"
)

// HandleCharacter - лист персонажа. Работает и после гибели героя.
func HandleCharacter(ctx handlers.Context) (handlers.Result, error) {
	player := ctx.Player()
	if player.Fighter == nil {
		return handlers.EmptyResult(), nil
	}

	objects := *ctx.Objects
	sheet := fmt.Sprintf(
		"Информация о персонаже: уровень %d, опыт %d (до следующего уровня: %d), здоровье %d/%d, сила %d, защита %d.",
		player.Level,
		player.Fighter.XP,
		systems.LevelUpXP(player.Level, ctx.LevelUpBase, ctx.LevelUpFactor),
		player.Fighter.HP,
		systems.EffectiveMaxHP(domain.PlayerIdx, objects, ctx.Game),
		systems.EffectivePower(domain.PlayerIdx, objects, ctx.Game),
		systems.EffectiveDefense(domain.PlayerIdx, objects, ctx.Game),
	)

	return handlers.Result{Msg: sheet, Color: domain.ColorLightCyan}, nil
}
