package actions

import (
	"tombs-core/internal/engine/handlers"
)

// HandleWait - пропуск хода: герой стоит, монстры ходят.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{TookTurn: true}, nil
}
