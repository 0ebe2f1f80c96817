package agent

import (
	"encoding/json"
	"math/rand"

	"github.com/sirupsen/logrus"

	"tombs-core/internal/domain"
	"tombs-core/internal/engine"
	"tombs-core/internal/systems"
	"tombs-core/pkg/logger"
)

// Bot - "игрок-компьютер" (Headless Agent). Он управляет героем,
// глядя на то же состояние сессии, что видел бы живой игрок,
// и отправляет обычные команды через ProcessCommand.
//
// Bot реализует engine.InputSource (клики выбора цели) и
// systems.Presenter (меню прокачки), поэтому сессия может блокироваться
// на его решениях так же, как на вводе человека.
type Bot struct {
	session *engine.Session
	rng     *rand.Rand

	// clicksServed защищает от зацикливания выбора цели: если движок
	// переспрашивает (клик отвергнут), бот отменяет заклинание.
	clicksServed int
}

func New(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewSource(seed))}
}

// Attach привязывает бота к сессии. Вызывается после engine.NewSession,
// так как сессии при создании уже нужны InputSource и Presenter.
func (b *Bot) Attach(s *engine.Session) {
	b.session = s
}

// NextTargetClick кликает по ближайшему видимому монстру.
func (b *Bot) NextTargetClick() domain.TargetClick {
	b.clicksServed++
	if b.clicksServed > 1 {
		return domain.TargetClick{Button: domain.ClickCancel}
	}

	id := b.nearestVisibleMonster()
	if id < 0 {
		return domain.TargetClick{Button: domain.ClickCancel}
	}
	pos := b.session.Objects[id].Pos
	return domain.TargetClick{X: pos.X, Y: pos.Y, Button: domain.ClickLeft}
}

// ChooseLevelUp выбирает вариант прокачки случайно.
func (b *Bot) ChooseLevelUp(level, hp, power, defense int) int {
	return b.rng.Intn(3)
}

// Run играет не более turns ходов или до гибели героя.
// Возвращает число сделанных ходов.
func (b *Bot) Run(turns int) int {
	for i := 0; i < turns; i++ {
		if b.session.Game.State != domain.StatePlaying {
			logger.Log.WithFields(logrus.Fields{
				"component": "agent",
				"turns":     i,
			}).Info("Bot stopped: hero is dead")
			return i
		}
		b.takeTurn()
	}
	return turns
}

// takeTurn - мозг бота: одно решение за вызов.
func (b *Bot) takeTurn() {
	s := b.session
	player := s.Objects[domain.PlayerIdx]
	b.clicksServed = 0

	// 1. Стоим на лестнице - спускаемся
	for _, obj := range s.Objects {
		if obj.Type == domain.EntityTypeStairs && obj.Pos == player.Pos {
			b.send(domain.ActionDescend, nil)
			return
		}
	}

	// 2. Предмет под ногами - подбираем
	if len(s.Game.Inventory) < s.Cfg.Session.InventoryCapacity {
		for _, obj := range s.Objects {
			if obj.Item != nil && obj.Pos == player.Pos {
				b.send(domain.ActionPickup, nil)
				return
			}
		}
	}

	// 3. Тяжело ранены - пьем зелье
	if player.Fighter != nil {
		maxHP := systems.EffectiveMaxHP(domain.PlayerIdx, s.Objects, s.Game)
		if player.Fighter.HP*2 < maxHP {
			if idx := b.findInInventory(domain.ItemHeal); idx >= 0 {
				b.send(domain.ActionUse, domain.IndexPayload{Index: idx})
				return
			}
		}
	}

	// 4. Видим монстра - свиток или сближение
	if monsterID := b.nearestVisibleMonster(); monsterID >= 0 {
		monster := s.Objects[monsterID]

		if player.DistanceTo(monster) >= 2 && b.rng.Intn(4) == 0 {
			for _, kind := range []domain.ItemKind{domain.ItemLightning, domain.ItemFireball, domain.ItemConfuse} {
				if idx := b.findInInventory(kind); idx >= 0 {
					b.send(domain.ActionUse, domain.IndexPayload{Index: idx})
					return
				}
			}
		}

		b.send(domain.ActionMove, domain.DirectionPayload{
			Dx: sign(monster.Pos.X - player.Pos.X),
			Dy: sign(monster.Pos.Y - player.Pos.Y),
		})
		return
	}

	// 5. Никого не видно - блуждаем
	dx, dy := b.rng.Intn(3)-1, b.rng.Intn(3)-1
	if dx == 0 && dy == 0 {
		b.send(domain.ActionWait, nil)
		return
	}
	b.send(domain.ActionMove, domain.DirectionPayload{Dx: dx, Dy: dy})
}

func (b *Bot) nearestVisibleMonster() int {
	s := b.session
	player := s.Objects[domain.PlayerIdx]

	closest := -1
	closestDist := 0.0
	for id, obj := range s.Objects {
		if id == domain.PlayerIdx || obj.Fighter == nil || obj.AI == nil {
			continue
		}
		if !s.FOV.IsVisible(obj.Pos.X, obj.Pos.Y) {
			continue
		}
		if dist := player.DistanceTo(obj); closest < 0 || dist < closestDist {
			closest = id
			closestDist = dist
		}
	}
	return closest
}

func (b *Bot) findInInventory(kind domain.ItemKind) int {
	for idx, item := range b.session.Game.Inventory {
		if item.Item != nil && *item.Item == kind {
			return idx
		}
	}
	return -1
}

func (b *Bot) send(action domain.ActionType, payload any) {
	cmd := domain.Command{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.Log.WithError(err).Error("Bot failed to marshal payload")
			return
		}
		cmd.Payload = raw
	}

	if err := b.session.ProcessCommand(cmd); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "agent",
			"action":    action.String(),
		}).WithError(err).Warn("Bot command rejected")
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
