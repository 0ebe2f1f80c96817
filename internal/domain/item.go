package domain

// ItemKind - эффект предмета при использовании.
type ItemKind uint8

const (
	// ItemNone - предмет без собственного эффекта: его "использование"
	// целиком делегируется компоненту Equipment (надеть/снять).
	ItemNone ItemKind = iota
	ItemHeal
	ItemLightning
	ItemFireball
	ItemConfuse
)

// Equipment - экипируемый предмет: слот и бонусы, действующие пока надет.
// Слот - произвольная строка ("правая рука", "левая рука"...), не enum:
// новые слоты добавляются данными, без изменения кода. Два предмета
// с одинаковой строкой слота конфликтуют.
type Equipment struct {
	Slot         string `json:"slot"`
	IsEquipped   bool   `json:"isEquipped"`
	PowerBonus   int    `json:"powerBonus"`
	DefenseBonus int    `json:"defenseBonus"`
	MaxHPBonus   int    `json:"maxHpBonus"`
}

// Названия слотов экипировки
const (
	SlotRightHand = "правая рука"
	SlotLeftHand  = "левая рука"
)
