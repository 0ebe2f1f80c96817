package fov

import (
	"tombs-core/internal/domain"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Service хранит результат последнего пересчета поля зрения.
// Пересчет выполняется только после хода, изменившего позицию героя
// или геометрию карты; между пересчетами IsVisible отвечает из кэша.
type Service struct {
	visible map[int]bool
	width   int
}

func NewService() *Service {
	return &Service{visible: map[int]bool{}}
}

// Recompute пересчитывает видимые клетки от origin в радиусе radius.
func (s *Service) Recompute(gameMap *domain.GameMap, origin domain.Position, radius int) {
	s.width = gameMap.Width
	s.visible = make(map[int]bool)
	if radius <= 0 {
		return
	}

	// Центр всегда виден
	s.visible[origin.Y*s.width+origin.X] = true

	// Рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(gameMap, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], s.visible)
	}
}

// IsVisible отвечает по последнему пересчету.
func (s *Service) IsVisible(x, y int) bool {
	return s.visible[y*s.width+x]
}

// VisibleCount возвращает число видимых клеток (для логов и тестов).
func (s *Service) VisibleCount() int {
	return len(s.visible)
}

func castLight(gameMap *domain.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visibleMap map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			// Проверка границ и радиуса
			if gameMap.InBounds(x, y) && float64(dx*dx+dy*dy) < radiusSq {
				visibleMap[y*gameMap.Width+x] = true
			}

			// Логика теней
			if blocked {
				// Мы идем вдоль стены...
				if blocksSight(gameMap, x, y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else {
				// Мы шли по пустоте и наткнулись на стену
				if blocksSight(gameMap, x, y) && j < radius {
					blocked = true
					// Рекурсивно запускаем сканирование следующего ряда
					castLight(gameMap, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visibleMap)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// blocksSight проверяет, блокирует ли клетка взгляд.
// Выход за границы считается блокирующим.
func blocksSight(gameMap *domain.GameMap, x, y int) bool {
	if !gameMap.InBounds(x, y) {
		return true
	}
	return gameMap.Tiles[y][x].BlocksSight
}
