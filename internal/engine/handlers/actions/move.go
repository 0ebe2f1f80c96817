package actions

import (
	"tombs-core/internal/domain"
	"tombs-core/internal/engine/handlers"
	"tombs-core/internal/systems"
)

// HandleMove - шаг или атака по направлению. Ход тратится всегда,
// даже если путь прегражден: неудачный замах тоже стоит времени.
func HandleMove(ctx handlers.Context, p domain.DirectionPayload) (handlers.Result, error) {
	objects := *ctx.Objects
	target := ctx.Player().Pos.Shift(p.Dx, p.Dy)

	// Живая цель на клетке - атакуем вместо шага
	for id, obj := range objects {
		if id != domain.PlayerIdx && obj.Fighter != nil && obj.Pos == target {
			systems.Attack(domain.PlayerIdx, id, objects, ctx.Game)
			return handlers.Result{TookTurn: true}, nil
		}
	}

	if systems.MoveBy(domain.PlayerIdx, p.Dx, p.Dy, objects, ctx.Game) {
		ctx.Game.FOVRecompute = true
		return handlers.Result{TookTurn: true}, nil
	}

	return handlers.Result{
		Msg:      "Путь прегражден.",
		Color:    domain.ColorWhite,
		TookTurn: true,
	}, nil
}
