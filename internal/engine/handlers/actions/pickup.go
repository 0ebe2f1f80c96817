package actions

import (
	"tombs-core/internal/domain"
	"tombs-core/internal/engine/handlers"
	"tombs-core/internal/systems"
)

// HandlePickup подбирает предмет с клетки героя. Ход не тратится.
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	playerPos := ctx.Player().Pos

	for id, obj := range *ctx.Objects {
		if obj.Item != nil && obj.Pos == playerPos {
			systems.PickUp(id, ctx.Objects, ctx.Game, ctx.Capacity)
			return handlers.EmptyResult(), nil
		}
	}

	return handlers.Result{
		Msg:   "Здесь нечего подбирать.",
		Color: domain.ColorWhite,
	}, nil
}
