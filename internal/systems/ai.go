package systems

import (
	"fmt"
	"math/rand"

	"tombs-core/internal/domain"
)

// Visibility отвечает на вопрос "видна ли клетка герою".
// Поле зрения симметрично: монстр на видимой клетке видит героя.
type Visibility interface {
	IsVisible(x, y int) bool
}

// TakeTurn выполняет ход монстра согласно его состоянию ИИ.
func TakeTurn(id int, objects []*domain.Entity, g *domain.Game, vis Visibility, rng *rand.Rand) {
	monster := objects[id]
	if monster.AI == nil {
		return
	}

	switch monster.AI.Kind {
	case domain.AIBasic:
		basicTurn(id, objects, g, vis)
	case domain.AIConfused:
		confusedTurn(id, objects, g, rng)
	}
}

// basicTurn - обычное поведение: видит героя - сближается и бьет.
func basicTurn(id int, objects []*domain.Entity, g *domain.Game, vis Visibility) {
	monster := objects[id]
	if !vis.IsVisible(monster.Pos.X, monster.Pos.Y) {
		return
	}

	player := objects[domain.PlayerIdx]
	if monster.DistanceTo(player) >= 2 {
		MoveTowards(id, player.Pos.X, player.Pos.Y, objects, g)
	} else if player.Fighter != nil && player.Fighter.HP > 0 {
		Attack(id, domain.PlayerIdx, objects, g)
	}
}

// confusedTurn - случайный шаг (возможно, в стену) и тиканье таймера.
// По истечении срока восстанавливается прежнее состояние - ровно один раз.
func confusedTurn(id int, objects []*domain.Entity, g *domain.Game, rng *rand.Rand) {
	monster := objects[id]
	ai := monster.AI

	if ai.TurnsLeft > 0 {
		MoveBy(id, rng.Intn(3)-1, rng.Intn(3)-1, objects, g)
		ai.TurnsLeft--
		return
	}

	monster.AI = ai.Prior
	g.Log.Add(fmt.Sprintf("%s больше не в замешательстве!", monster.Name), domain.ColorRed)
}
