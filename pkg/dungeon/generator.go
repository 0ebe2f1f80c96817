package dungeon

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"tombs-core/internal/config"
	"tombs-core/internal/domain"
	"tombs-core/pkg/logger"
)

// Generate создает новый уровень: карту, стартовую позицию героя
// и заселение (монстры, предметы, лестница вниз). Героя в списке нет -
// его создает и ставит на startPos вызывающая сторона.
func Generate(cfg *config.Config, level int, rng *rand.Rand) (*domain.GameMap, domain.Position, []*domain.Entity) {
	gameMap := domain.NewGameMap(cfg.Map.Width, cfg.Map.Height)

	var rooms []Rect
	var objects []*domain.Entity
	startPos := domain.Position{}

	// Генерируем комнаты: MaxRooms попыток, пересекающиеся отбрасываются
	for i := 0; i < cfg.Rooms.MaxRooms; i++ {
		w := randRange(rng, cfg.Rooms.MinSize, cfg.Rooms.MaxSize)
		h := randRange(rng, cfg.Rooms.MinSize, cfg.Rooms.MaxSize)
		x := rng.Intn(cfg.Map.Width - w - 1)
		y := rng.Intn(cfg.Map.Height - h - 1)

		newRoom := NewRect(x, y, w, h)
		failed := false
		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(gameMap, newRoom)
		cx, cy := newRoom.Center()

		if len(rooms) == 0 {
			// Позиция героя фиксируется ДО заселения первой комнаты,
			// чтобы монстр не мог родиться на его клетке.
			startPos = domain.Position{X: cx, Y: cy}
		} else {
			// Соединяем с предыдущей комнатой L-образным тоннелем
			prevX, prevY := rooms[len(rooms)-1].Center()
			if rng.Intn(2) == 0 {
				createHTunnel(gameMap, prevX, cx, prevY)
				createVTunnel(gameMap, prevY, cy, cx)
			} else {
				createVTunnel(gameMap, prevY, cy, prevX)
				createHTunnel(gameMap, prevX, cx, cy)
			}
		}

		placeObjects(newRoom, gameMap, &objects, startPos, level, rng)
		rooms = append(rooms, newRoom)
	}

	// Лестница вниз - в центре последней комнаты. Видна на
	// исследованных клетках даже вне поля зрения.
	if len(rooms) > 0 {
		lx, ly := rooms[len(rooms)-1].Center()
		stairs := domain.NewEntity(domain.EntityTypeStairs, lx, ly, "<", "лестница вниз", domain.ColorWhite, false)
		stairs.AlwaysVisible = true
		objects = append(objects, stairs)
	}

	logger.Log.WithFields(logrus.Fields{
		"dungeon_level": level,
		"rooms":         len(rooms),
		"objects":       len(objects),
	}).Debug("Dungeon level generated")

	return gameMap, startPos, objects
}

// placeObjects заселяет комнату монстрами и предметами.
// Количество и состав зависят от глубины подземелья.
func placeObjects(room Rect, gameMap *domain.GameMap, objects *[]*domain.Entity, playerPos domain.Position, level int, rng *rand.Rand) {
	numMonsters := rng.Intn(fromDungeonLevel(maxMonstersTable, level) + 1)
	for i := 0; i < numMonsters; i++ {
		x := randRange(rng, room.X1+1, room.X2-1)
		y := randRange(rng, room.Y1+1, room.Y2-1)
		if occupied(x, y, gameMap, *objects, playerPos) {
			continue
		}

		trollWeight := fromDungeonLevel(trollWeightTable, level)
		if weightedChoice([]int{orcWeight, trollWeight}, rng) == 0 {
			*objects = append(*objects, newOrc(x, y))
		} else {
			*objects = append(*objects, newTroll(x, y))
		}
	}

	numItems := rng.Intn(fromDungeonLevel(maxItemsTable, level) + 1)
	for i := 0; i < numItems; i++ {
		x := randRange(rng, room.X1+1, room.X2-1)
		y := randRange(rng, room.Y1+1, room.Y2-1)
		if occupied(x, y, gameMap, *objects, playerPos) {
			continue
		}

		weights := []int{
			healPotionWeight,
			fromDungeonLevel(lightningWeightTable, level),
			fromDungeonLevel(fireballWeightTable, level),
			fromDungeonLevel(confuseWeightTable, level),
			fromDungeonLevel(swordWeightTable, level),
			fromDungeonLevel(shieldWeightTable, level),
		}
		switch weightedChoice(weights, rng) {
		case 0:
			*objects = append(*objects, newHealPotion(x, y))
		case 1:
			*objects = append(*objects, newLightningScroll(x, y))
		case 2:
			*objects = append(*objects, newFireballScroll(x, y))
		case 3:
			*objects = append(*objects, newConfuseScroll(x, y))
		case 4:
			*objects = append(*objects, newSword(x, y))
		case 5:
			*objects = append(*objects, newShield(x, y))
		}
	}
}

// occupied - занята ли клетка стеной, блокирующей сущностью или героем.
func occupied(x, y int, gameMap *domain.GameMap, objects []*domain.Entity, playerPos domain.Position) bool {
	if gameMap.IsWall(x, y) {
		return true
	}
	if playerPos.X == x && playerPos.Y == y {
		return true
	}
	for _, obj := range objects {
		if obj.Blocks && obj.Pos.X == x && obj.Pos.Y == y {
			return true
		}
	}
	return false
}

// --- Вспомогательные функции ---

func createRoom(gameMap *domain.GameMap, room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			gameMap.Carve(x, y)
		}
	}
}

func createHTunnel(gameMap *domain.GameMap, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		gameMap.Carve(x, y)
	}
}

func createVTunnel(gameMap *domain.GameMap, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		gameMap.Carve(x, y)
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
