package systems

import (
	"math"

	"tombs-core/internal/domain"
)

// IsBlocked - занята ли клетка стеной или блокирующей сущностью.
func IsBlocked(x, y int, gameMap *domain.GameMap, objects []*domain.Entity) bool {
	if gameMap.IsWall(x, y) {
		return true
	}
	for _, obj := range objects {
		if obj.Blocks && obj.Pos.X == x && obj.Pos.Y == y {
			return true
		}
	}
	return false
}

// MoveBy смещает сущность на (dx, dy), если клетка свободна.
// Возвращает true, если движение состоялось.
func MoveBy(id int, dx, dy int, objects []*domain.Entity, g *domain.Game) bool {
	target := objects[id].Pos.Shift(dx, dy)
	if IsBlocked(target.X, target.Y, g.Map, objects) {
		return false
	}
	objects[id].Pos = target
	return true
}

// MoveTowards делает один шаг в сторону цели: вектор нормализуется
// до единичной длины и округляется, диагональные шаги разрешены.
func MoveTowards(id int, targetX, targetY int, objects []*domain.Entity, g *domain.Game) {
	dx := float64(targetX - objects[id].Pos.X)
	dy := float64(targetY - objects[id].Pos.Y)
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance == 0 {
		return
	}

	stepX := int(math.Round(dx / distance))
	stepY := int(math.Round(dy / distance))
	MoveBy(id, stepX, stepY, objects, g)
}
