package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"tombs-core/internal/config"
	"tombs-core/internal/domain"
	"tombs-core/internal/engine/handlers"
	"tombs-core/internal/engine/handlers/actions"
	"tombs-core/internal/fov"
	"tombs-core/internal/systems"
	"tombs-core/pkg/dungeon"
	"tombs-core/pkg/logger"
)

// InputSource поставляет клики выбора цели для заклинаний.
type InputSource interface {
	NextTargetClick() domain.TargetClick
}

// Session - одна игровая сессия: мир, герой, генератор случайностей
// и реестр обработчиков команд.
type Session struct {
	Cfg     *config.Config
	Game    *domain.Game
	Objects []*domain.Entity
	Rng     *rand.Rand
	FOV     *fov.Service

	Input InputSource
	UI    systems.Presenter

	registry map[domain.ActionType]handlers.HandlerFunc
}

// NewSession создает новую игру: герой с кинжалом, первый уровень,
// приветственное сообщение.
func NewSession(cfg *config.Config, input InputSource, ui systems.Presenter) *Session {
	s := &Session{
		Cfg:   cfg,
		Rng:   rand.New(rand.NewSource(cfg.Seed)),
		FOV:   fov.NewService(),
		Input: input,
		UI:    ui,
	}
	s.registerHandlers()

	player := dungeon.NewPlayer(0, 0, cfg.Player.HP, cfg.Player.Defense, cfg.Player.Power)

	// Стартовый кинжал надет с рождения, сообщение не нужно
	dagger := dungeon.NewDagger(0, 0)
	dagger.Equipment.IsEquipped = true

	s.Game = &domain.Game{
		State:        domain.StatePlaying,
		DungeonLevel: 1,
		Log:          domain.NewMessageLog(cfg.Session.LogCapacity),
		Inventory:    []*domain.Entity{dagger},
	}
	s.Objects = []*domain.Entity{player}
	s.buildLevel()

	if err := s.ProcessCommand(domain.Command{Action: domain.ActionInit}); err != nil {
		logger.Log.WithError(err).Warn("Init command failed")
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      cfg.Seed,
	}).Info("New session started")
	return s
}

// Restore собирает сессию вокруг загруженного состояния.
func Restore(cfg *config.Config, game *domain.Game, objects []*domain.Entity, input InputSource, ui systems.Presenter) *Session {
	s := &Session{
		Cfg:     cfg,
		Game:    game,
		Objects: objects,
		Rng:     rand.New(rand.NewSource(cfg.Seed)),
		FOV:     fov.NewService(),
		Input:   input,
		UI:      ui,
	}
	s.registerHandlers()

	game.FOVRecompute = true
	s.refreshFOV()
	return s
}

func (s *Session) registerHandlers() {
	s.registry = map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionInit:      handlers.WithEmptyPayload(actions.HandleInit),
		domain.ActionMove:      handlers.WithPayload(actions.HandleMove),
		domain.ActionWait:      handlers.WithEmptyPayload(actions.HandleWait),
		domain.ActionPickup:    handlers.WithEmptyPayload(actions.HandlePickup),
		domain.ActionUse:       handlers.WithPayload(actions.HandleUse),
		domain.ActionDrop:      handlers.WithPayload(actions.HandleDrop),
		domain.ActionCharacter: handlers.WithEmptyPayload(actions.HandleCharacter),
		domain.ActionDescend:   handlers.WithEmptyPayload(actions.HandleDescend),
	}
}

// buildLevel генерирует уровень текущей глубины. Из прежнего состава
// мира выживает только герой.
func (s *Session) buildLevel() {
	gameMap, start, spawned := dungeon.Generate(s.Cfg, s.Game.DungeonLevel, s.Rng)
	s.Game.Map = gameMap
	s.Objects = append(s.Objects[:domain.PlayerIdx+1], spawned...)
	s.Objects[domain.PlayerIdx].Pos = start
	s.Game.FOVRecompute = true
	s.refreshFOV()
}

func (s *Session) handlerContext() handlers.Context {
	sp := s.Cfg.Spells
	return handlers.Context{
		Game:    s.Game,
		Objects: &s.Objects,

		Vis:      s.FOV,
		UI:       s.UI,
		Targeter: &clickTargeter{s: s},

		Spells: systems.SpellParams{
			HealAmount:      sp.HealAmount,
			LightningDamage: sp.LightningDamage,
			LightningRange:  sp.LightningRange,
			ConfuseRange:    sp.ConfuseRange,
			ConfuseTurns:    sp.ConfuseTurns,
			FireballRadius:  sp.FireballRadius,
			FireballDamage:  sp.FireballDamage,
		},
		Capacity:      s.Cfg.Session.InventoryCapacity,
		LevelUpBase:   s.Cfg.LevelUp.Base,
		LevelUpFactor: s.Cfg.LevelUp.Factor,
	}
}

// ProcessCommand выполняет одну команду героя и, если она потратила
// ход, дает сходить монстрам.
func (s *Session) ProcessCommand(cmd domain.Command) error {
	// После гибели доступен только лист персонажа
	if s.Game.State != domain.StatePlaying && cmd.Action != domain.ActionCharacter {
		return nil
	}

	handler, ok := s.registry[cmd.Action]
	if !ok {
		return fmt.Errorf("unknown action: %s", cmd.Action)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"action":    cmd.Action.String(),
	}).Debug("Processing command")

	res, err := handler(s.handlerContext(), cmd.Payload)
	if err != nil {
		return err
	}

	if res.Msg != "" {
		color := res.Color
		if color == "" {
			color = domain.ColorWhite
		}
		s.Game.Log.Add(res.Msg, color)
	}

	if res.Descend {
		s.nextLevel()
		return nil
	}

	s.refreshFOV()
	systems.CheckLevelUp(s.Objects, s.Game, s.Cfg.LevelUp.Base, s.Cfg.LevelUp.Factor, s.UI)

	if res.TookTurn && s.Game.State == domain.StatePlaying {
		s.monsterTurns()
	}
	return nil
}

// monsterTurns: монстры ходят в порядке убывания индексов, чтобы
// перестановки в хвосте коллекции не пропустили чей-то ход.
func (s *Session) monsterTurns() {
	for id := len(s.Objects) - 1; id > domain.PlayerIdx; id-- {
		if s.Objects[id].AI != nil {
			systems.TakeTurn(id, s.Objects, s.Game, s.FOV, s.Rng)
		}
	}
}

// refreshFOV пересчитывает поле зрения, если оно устарело,
// и помечает видимые клетки исследованными.
func (s *Session) refreshFOV() {
	if !s.Game.FOVRecompute {
		return
	}
	s.Game.FOVRecompute = false

	pos := s.Objects[domain.PlayerIdx].Pos
	s.FOV.Recompute(s.Game.Map, pos, s.Cfg.Session.TorchRadius)

	for y := 0; y < s.Game.Map.Height; y++ {
		for x := 0; x < s.Game.Map.Width; x++ {
			if s.FOV.IsVisible(x, y) {
				s.Game.Map.Tiles[y][x].Explored = true
			}
		}
	}
}

// nextLevel: передышка, лечение на половину максимума и спуск.
func (s *Session) nextLevel() {
	g := s.Game
	g.Log.Add("Вы переводите дух и восстанавливаете силы.", domain.ColorViolet)

	player := s.Objects[domain.PlayerIdx]
	if player.Fighter != nil {
		maxHP := systems.EffectiveMaxHP(domain.PlayerIdx, s.Objects, g)
		player.Fighter.Heal(maxHP/2, maxHP)
	}

	g.Log.Add("После редкой минуты покоя вы спускаетесь глубже в сердце подземелья...", domain.ColorRed)
	g.DungeonLevel++
	s.buildLevel()

	logger.Log.WithFields(logrus.Fields{
		"component":     "engine",
		"dungeon_level": g.DungeonLevel,
	}).Info("Descended to the next level")
}
