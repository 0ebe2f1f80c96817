package dungeon

import "tombs-core/internal/domain"

func itemKind(k domain.ItemKind) *domain.ItemKind {
	return &k
}

// NewPlayer создает героя со стартовыми характеристиками.
func NewPlayer(x, y, hp, defense, power int) *domain.Entity {
	player := domain.NewEntity(domain.EntityTypePlayer, x, y, "@", "игрок", domain.ColorWhite, true)
	player.Level = 1
	player.Fighter = &domain.Fighter{
		BaseMaxHP:   hp,
		HP:          hp,
		BaseDefense: defense,
		BasePower:   power,
		Death:       domain.DeathPlayer,
	}
	return player
}

// NewDagger - стартовое оружие героя.
func NewDagger(x, y int) *domain.Entity {
	dagger := domain.NewEntity(domain.EntityTypeItem, x, y, "-", "кинжал", domain.ColorSky, false)
	dagger.Item = itemKind(domain.ItemNone)
	dagger.Equipment = &domain.Equipment{Slot: domain.SlotRightHand, PowerBonus: 2}
	return dagger
}

func newOrc(x, y int) *domain.Entity {
	orc := domain.NewEntity(domain.EntityTypeMonster, x, y, "o", "орк", domain.ColorDesatGreen, true)
	orc.Fighter = &domain.Fighter{
		BaseMaxHP:   20,
		HP:          20,
		BaseDefense: 0,
		BasePower:   4,
		XP:          35,
		Death:       domain.DeathMonster,
	}
	orc.AI = domain.NewBasicAI()
	return orc
}

func newTroll(x, y int) *domain.Entity {
	troll := domain.NewEntity(domain.EntityTypeMonster, x, y, "T", "тролль", domain.ColorDarkGreen, true)
	troll.Fighter = &domain.Fighter{
		BaseMaxHP:   30,
		HP:          30,
		BaseDefense: 2,
		BasePower:   8,
		XP:          100,
		Death:       domain.DeathMonster,
	}
	troll.AI = domain.NewBasicAI()
	return troll
}

func newHealPotion(x, y int) *domain.Entity {
	potion := domain.NewEntity(domain.EntityTypeItem, x, y, "!", "лечебное зелье", domain.ColorViolet, false)
	potion.Item = itemKind(domain.ItemHeal)
	return potion
}

func newLightningScroll(x, y int) *domain.Entity {
	scroll := domain.NewEntity(domain.EntityTypeItem, x, y, "#", "свиток молнии", domain.ColorYellow, false)
	scroll.Item = itemKind(domain.ItemLightning)
	return scroll
}

func newFireballScroll(x, y int) *domain.Entity {
	scroll := domain.NewEntity(domain.EntityTypeItem, x, y, "#", "свиток огненного шара", domain.ColorYellow, false)
	scroll.Item = itemKind(domain.ItemFireball)
	return scroll
}

func newConfuseScroll(x, y int) *domain.Entity {
	scroll := domain.NewEntity(domain.EntityTypeItem, x, y, "#", "свиток замешательства", domain.ColorYellow, false)
	scroll.Item = itemKind(domain.ItemConfuse)
	return scroll
}

func newSword(x, y int) *domain.Entity {
	sword := domain.NewEntity(domain.EntityTypeItem, x, y, "/", "меч", domain.ColorSky, false)
	sword.Item = itemKind(domain.ItemNone)
	sword.Equipment = &domain.Equipment{Slot: domain.SlotRightHand, PowerBonus: 3}
	return sword
}

func newShield(x, y int) *domain.Entity {
	shield := domain.NewEntity(domain.EntityTypeItem, x, y, "[", "щит", domain.ColorDarkOrange, false)
	shield.Item = itemKind(domain.ItemNone)
	shield.Equipment = &domain.Equipment{Slot: domain.SlotLeftHand, DefenseBonus: 1}
	return shield
}
