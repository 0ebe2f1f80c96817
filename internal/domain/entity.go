package domain

// PlayerIdx - индекс игрока в коллекции сущностей уровня.
// Игрок создается первым и живет под этим индексом весь уровень.
const PlayerIdx = 0

// Типы сущностей
const (
	EntityTypePlayer  = "PLAYER"
	EntityTypeMonster = "MONSTER"
	EntityTypeItem    = "ITEM"
	EntityTypeStairs  = "STAIRS"
)

// Entity - игровой объект: игрок, монстр, предмет, лестница.
// Идентичность сущности - ее индекс в упорядоченной коллекции уровня.
type Entity struct {
	Type  string   `json:"type"`
	Pos   Position `json:"pos"`
	Glyph string   `json:"glyph"`
	Name  string   `json:"name"`
	Color string   `json:"color"`

	// Blocks - занимает ли сущность клетку (живые монстры - да, трупы и предметы - нет)
	Blocks bool `json:"blocks"`

	// AlwaysVisible - рисуется на исследованных клетках даже вне поля зрения (лестница)
	AlwaysVisible bool `json:"alwaysVisible"`

	// Level - уровень персонажа (имеет смысл только для игрока)
	Level int `json:"level"`

	// Компоненты (nil - способность отсутствует)
	Fighter   *Fighter   `json:"fighter,omitempty"`
	AI        *AIState   `json:"ai,omitempty"`
	Item      *ItemKind  `json:"item,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
}

// NewEntity создает сущность без компонентов.
func NewEntity(entityType string, x, y int, glyph, name, color string, blocks bool) *Entity {
	return &Entity{
		Type:   entityType,
		Pos:    Position{X: x, Y: y},
		Glyph:  glyph,
		Name:   name,
		Color:  color,
		Blocks: blocks,
	}
}

// DistanceTo возвращает расстояние до другой сущности.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Pos.DistanceTo(other.Pos)
}
