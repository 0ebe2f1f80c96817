package domain

// GameState - фаза сессии.
type GameState uint8

const (
	// StatePlaying - игрок жив, команды принимаются.
	StatePlaying GameState = iota
	// StateDead - игрок погиб; принимаются только запросы чтения.
	StateDead
)

// Game - агрегат состояния одной сессии: все, что не является
// сущностью мира, но нужно системам для принятия решений.
type Game struct {
	State        GameState   `json:"state"`
	DungeonLevel int         `json:"dungeonLevel"`
	Map          *GameMap    `json:"map"`
	FOVRecompute bool        `json:"-"`
	Log          *MessageLog `json:"log"`
	// Inventory - предметы, подобранные игроком. Инвентарь есть
	// только у игрока, поэтому живет в агрегате, а не в Entity.
	Inventory []*Entity `json:"inventory"`
}
