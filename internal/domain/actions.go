package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия игрока.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionWait
	ActionPickup
	ActionUse
	ActionDrop
	ActionCharacter
	ActionDescend
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":      ActionInit,
	"MOVE":      ActionMove,
	"WAIT":      ActionWait,
	"PICKUP":    ActionPickup,
	"USE":       ActionUse,
	"DROP":      ActionDrop,
	"CHARACTER": ActionCharacter,
	"DESCEND":   ActionDescend,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:      "INIT",
	ActionMove:      "MOVE",
	ActionWait:      "WAIT",
	ActionPickup:    "PICKUP",
	ActionUse:       "USE",
	ActionDrop:      "DROP",
	ActionCharacter: "CHARACTER",
	ActionDescend:   "DESCEND",
}

// ParseAction конвертирует строку в ActionType (без учета регистра).
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
