package domain

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Message - одна запись игрового журнала.
type Message struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

// MessageLog - ограниченный FIFO-журнал сообщений.
// При переполнении вытесняется самое старое сообщение.
type MessageLog struct {
	Messages []Message `json:"messages"`
	Capacity int       `json:"capacity"`
}

// NewMessageLog создает журнал на capacity записей.
func NewMessageLog(capacity int) *MessageLog {
	return &MessageLog{Capacity: capacity}
}

// Add добавляет сообщение, вытесняя старейшее при переполнении.
func (l *MessageLog) Add(text, color string) {
	if len(l.Messages) >= l.Capacity {
		l.Messages = l.Messages[1:]
	}
	l.Messages = append(l.Messages, Message{
		ID:    uuid.NewString(),
		Text:  text,
		Color: color,
	})
}

// Last возвращает последнее сообщение (для тестов и отладки).
func (l *MessageLog) Last() (Message, bool) {
	if len(l.Messages) == 0 {
		return Message{}, false
	}
	return l.Messages[len(l.Messages)-1], true
}

// Command - одно дискретное намерение игрока, поставляемое вводом.
type Command struct {
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DirectionPayload: для движения/атаки по направлению.
// Используется в: MOVE
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// Validate: шаг не длиннее одной клетки по каждой оси.
func (p DirectionPayload) Validate() error {
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("direction components must be in [-1, 1]")
	}
	return nil
}

// IndexPayload: индекс предмета в инвентаре.
// Используется в: USE, DROP
type IndexPayload struct {
	Index int `json:"index"`
}

func (p IndexPayload) Validate() error {
	if p.Index < 0 {
		return errors.New("index must be non-negative")
	}
	return nil
}

// ClickButton - кнопка клика при выборе цели.
type ClickButton uint8

const (
	ClickLeft ClickButton = iota
	ClickRight
	// ClickCancel - эквивалент Escape: отмена выбора без клика.
	ClickCancel
)

// TargetClick - сырой клик по карте во время выбора цели заклинания.
type TargetClick struct {
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Button ClickButton `json:"button"`
}
