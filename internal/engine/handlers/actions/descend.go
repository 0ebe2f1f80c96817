package actions

import (
	"tombs-core/internal/domain"
	"tombs-core/internal/engine/handlers"
)

// HandleDescend проверяет, что герой стоит на лестнице, и сигналит
// движку о переходе. Сам переход выполняет сессия.
func HandleDescend(ctx handlers.Context) (handlers.Result, error) {
	playerPos := ctx.Player().Pos

	for _, obj := range *ctx.Objects {
		if obj.Type == domain.EntityTypeStairs && obj.Pos == playerPos {
			return handlers.Result{Descend: true}, nil
		}
	}

	return handlers.Result{
		Msg:   "Лестницы здесь нет.",
		Color: domain.ColorWhite,
	}, nil
}
