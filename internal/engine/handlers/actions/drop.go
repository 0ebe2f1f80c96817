package actions

import (
	"fmt"

	"tombs-core/internal/domain"
	"tombs-core/internal/engine/handlers"
	"tombs-core/internal/systems"
)

// HandleDrop кладет предмет инвентаря на клетку героя. Ход не тратится.
func HandleDrop(ctx handlers.Context, p domain.IndexPayload) (handlers.Result, error) {
	if p.Index >= len(ctx.Game.Inventory) {
		return handlers.EmptyResult(), fmt.Errorf("no inventory item at index %d", p.Index)
	}

	systems.DropItem(p.Index, ctx.Objects, ctx.Game)
	return handlers.EmptyResult(), nil
}
