package dungeon

import "math/rand"

// Transition - значение таблицы, действующее начиная с уровня Level.
type Transition struct {
	Level int
	Value int
}

// fromDungeonLevel возвращает значение для наибольшего порога,
// не превышающего уровень. До первого порога - ноль.
func fromDungeonLevel(table []Transition, level int) int {
	for i := len(table) - 1; i >= 0; i-- {
		if level >= table[i].Level {
			return table[i].Value
		}
	}
	return 0
}

// weightedChoice выбирает индекс пропорционально весам.
// Нулевые веса не выпадают; суммарный вес обязан быть положительным.
func weightedChoice(weights []int, rng *rand.Rand) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Таблицы заселения по глубине подземелья.
var (
	maxMonstersTable = []Transition{{1, 2}, {4, 3}, {6, 5}}
	maxItemsTable    = []Transition{{1, 1}, {4, 2}}
	trollWeightTable = []Transition{{3, 15}, {5, 30}, {7, 60}}

	lightningWeightTable = []Transition{{4, 25}}
	fireballWeightTable  = []Transition{{6, 25}}
	confuseWeightTable   = []Transition{{2, 10}}
	swordWeightTable     = []Transition{{4, 5}}
	shieldWeightTable    = []Transition{{8, 15}}
)

const (
	orcWeight        = 80
	healPotionWeight = 35
)
