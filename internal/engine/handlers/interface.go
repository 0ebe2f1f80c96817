package handlers

import (
	"encoding/json"

	"tombs-core/internal/domain"
	"tombs-core/internal/systems"
)

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Game    *domain.Game
	Objects *[]*domain.Entity // Указатель: подбор и сброс меняют состав мира

	Vis      systems.Visibility
	UI       systems.Presenter
	Targeter systems.Targeter

	Spells   systems.SpellParams
	Capacity int // Вместимость инвентаря

	// Параметры порога опыта: base + level * factor
	LevelUpBase   int
	LevelUpFactor int
}

// Player - сущность героя (всегда под индексом PlayerIdx).
func (c Context) Player() *domain.Entity {
	return (*c.Objects)[domain.PlayerIdx]
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в журнал напрямую, он возвращает данные.
type Result struct {
	Msg   string // Текст для игрового журнала
	Color string // Цвет сообщения

	// TookTurn - потратила ли команда ход героя (после него ходят монстры)
	TookTurn bool

	// Descend - герой спускается на следующий уровень
	Descend bool
}

// HandlerFunc - это контракт для любой команды (MOVE, USE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Validator реализуют payload-структуры с собственными проверками.
type Validator interface {
	Validate() error
}
