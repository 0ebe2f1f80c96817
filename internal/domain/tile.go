package domain

// Tile - одна клетка карты.
// Все клетки рождаются стенами; генератор "вырезает" пол комнат и тоннелей.
type Tile struct {
	Blocked     bool `json:"blocked"`
	BlocksSight bool `json:"blocksSight"`

	// Explored выставляется один раз, когда клетка впервые попадает
	// в поле зрения, и больше никогда не сбрасывается.
	Explored bool `json:"explored"`
}

// WallTile возвращает непройденную стену (стартовое состояние клетки)
func WallTile() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// GameMap - двумерная сетка клеток уровня. Индексация Tiles[y][x].
type GameMap struct {
	Tiles  [][]Tile `json:"tiles"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

// NewGameMap создает карту, целиком заполненную стенами.
func NewGameMap(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = WallTile()
		}
		tiles[y] = row
	}
	return &GameMap{Tiles: tiles, Width: width, Height: height}
}

// InBounds проверяет, что координаты лежат внутри карты.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWall возвращает true для стен и для координат за границей карты.
func (m *GameMap) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].Blocked
}

// Carve превращает клетку в пол.
func (m *GameMap) Carve(x, y int) {
	m.Tiles[y][x].Blocked = false
	m.Tiles[y][x].BlocksSight = false
}
