package domain

// DeathKind определяет, что происходит при гибели сущности.
// Явный вариант вместо хранимого коллбэка: проще сериализовать и читать.
type DeathKind uint8

const (
	DeathNone DeathKind = iota
	DeathPlayer
	DeathMonster
)

// Fighter - боевой компонент: здоровье, статы, опыт.
// Поля Base* не учитывают экипировку; эффективные значения
// считаются по требованию (см. systems.EffectivePower и др.).
type Fighter struct {
	BaseMaxHP   int       `json:"baseMaxHp"`
	HP          int       `json:"hp"`
	BaseDefense int       `json:"baseDefense"`
	BasePower   int       `json:"basePower"`
	XP          int       `json:"xp"`
	Death       DeathKind `json:"death"`
}

// Heal лечит на amount, не превышая maxHP.
// maxHP передается снаружи, так как бонусы экипировки компоненту неизвестны.
func (f *Fighter) Heal(amount, maxHP int) {
	f.HP += amount
	if f.HP > maxHP {
		f.HP = maxHP
	}
}
