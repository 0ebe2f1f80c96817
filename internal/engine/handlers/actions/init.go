package actions

import (
	"tombs-core/internal/domain"
	"tombs-core/internal/engine/handlers"
)

// HandleInit приветствует героя в начале сессии.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	ctx.Game.FOVRecompute = true
	return handlers.Result{
		Msg:   "Добро пожаловать, странник! Готовься сгинуть в Гробницах Древних Королей.",
		Color: domain.ColorRed,
	}, nil
}
