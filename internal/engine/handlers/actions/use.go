package actions

import (
	"fmt"

	"tombs-core/internal/domain"
	"tombs-core/internal/engine/handlers"
	"tombs-core/internal/systems"
)

// HandleUse применяет предмет инвентаря. Ход не тратится.
func HandleUse(ctx handlers.Context, p domain.IndexPayload) (handlers.Result, error) {
	if p.Index >= len(ctx.Game.Inventory) {
		return handlers.EmptyResult(), fmt.Errorf("no inventory item at index %d", p.Index)
	}

	systems.UseItem(p.Index, *ctx.Objects, ctx.Game, ctx.Spells, ctx.Vis, ctx.Targeter)
	return handlers.EmptyResult(), nil
}
