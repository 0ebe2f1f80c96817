package engine

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"tombs-core/internal/config"
	"tombs-core/internal/domain"
	"tombs-core/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// scriptedInput выдает клики по списку; по исчерпании - отмена.
type scriptedInput struct {
	clicks []domain.TargetClick
}

func (s *scriptedInput) NextTargetClick() domain.TargetClick {
	if len(s.clicks) == 0 {
		return domain.TargetClick{Button: domain.ClickCancel}
	}
	c := s.clicks[0]
	s.clicks = s.clicks[1:]
	return c
}

// scriptedUI всегда выбирает один вариант прокачки.
type scriptedUI struct{ choice int }

func (u scriptedUI) ChooseLevelUp(level, hp, power, defense int) int { return u.choice }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Seed = 1
	return cfg
}

// testSession собирает сессию с открытой картой 20x20 и героем в (10,10).
func testSession(input InputSource, extra ...*domain.Entity) *Session {
	cfg := testConfig()

	gameMap := domain.NewGameMap(20, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			gameMap.Carve(x, y)
		}
	}

	player := domain.NewEntity(domain.EntityTypePlayer, 10, 10, "@", "игрок", domain.ColorWhite, true)
	player.Level = 1
	player.Fighter = &domain.Fighter{
		BaseMaxHP:   100,
		HP:          100,
		BaseDefense: 1,
		BasePower:   2,
		Death:       domain.DeathPlayer,
	}

	game := &domain.Game{
		State:        domain.StatePlaying,
		DungeonLevel: 1,
		Map:          gameMap,
		Log:          domain.NewMessageLog(cfg.Session.LogCapacity),
	}

	objects := append([]*domain.Entity{player}, extra...)
	if input == nil {
		input = &scriptedInput{}
	}
	return Restore(cfg, game, objects, input, scriptedUI{})
}

func testOrc(x, y int) *domain.Entity {
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

func mustPayload(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestNewSession(t *testing.T) {
	s := NewSession(testConfig(), &scriptedInput{}, scriptedUI{})

	player := s.Objects[domain.PlayerIdx]
	if player.Type != domain.EntityTypePlayer {
		t.Fatal("player must live at index 0")
	}
	if s.Game.Map.IsWall(player.Pos.X, player.Pos.Y) {
		t.Error("player spawned inside a wall")
	}

	// Стартовый кинжал надет
	if len(s.Game.Inventory) != 1 {
		t.Fatalf("inventory size = %d, want the starting dagger", len(s.Game.Inventory))
	}
	dagger := s.Game.Inventory[0]
	if dagger.Equipment == nil || !dagger.Equipment.IsEquipped {
		t.Error("starting dagger must be equipped")
	}

	// Приветствие в журнале
	found := false
	for _, msg := range s.Game.Log.Messages {
		if strings.Contains(msg.Text, "Добро пожаловать") {
			found = true
		}
	}
	if !found {
		t.Error("welcome message missing from the log")
	}

	// Клетка героя исследована после первого пересчета поля зрения
	if !s.Game.Map.Tiles[player.Pos.Y][player.Pos.X].Explored {
		t.Error("player's tile must be explored")
	}
}

func TestNewSessionDeterministic(t *testing.T) {
	a := NewSession(testConfig(), &scriptedInput{}, scriptedUI{})
	b := NewSession(testConfig(), &scriptedInput{}, scriptedUI{})

	if a.Objects[domain.PlayerIdx].Pos != b.Objects[domain.PlayerIdx].Pos {
		t.Error("same seed must give the same start position")
	}
	if len(a.Objects) != len(b.Objects) {
		t.Errorf("same seed gave %d vs %d objects", len(a.Objects), len(b.Objects))
	}
}

func TestMoveSpendsTurnAndMonstersAct(t *testing.T) {
	s := testSession(nil, testOrc(15, 10))
	orc := s.Objects[1]
	start := orc.Pos

	err := s.ProcessCommand(domain.Command{
		Action:  domain.ActionMove,
		Payload: mustPayload(t, domain.DirectionPayload{Dx: 0, Dy: -1}),
	})
	if err != nil {
		t.Fatal(err)
	}

	if s.Objects[domain.PlayerIdx].Pos != (domain.Position{X: 10, Y: 9}) {
		t.Error("player did not move")
	}
	if orc.Pos == start {
		t.Error("orc must take a turn after the player's move")
	}
}

func TestMoveIntoMonsterAttacks(t *testing.T) {
	s := testSession(nil, testOrc(11, 10))
	orc := s.Objects[1]

	err := s.ProcessCommand(domain.Command{
		Action:  domain.ActionMove,
		Payload: mustPayload(t, domain.DirectionPayload{Dx: 1, Dy: 0}),
	})
	if err != nil {
		t.Fatal(err)
	}

	if s.Objects[domain.PlayerIdx].Pos != (domain.Position{X: 10, Y: 10}) {
		t.Error("attacking must not move the player")
	}
	// Сила 2 + кинжала нет, защита орка 0: 2 урона... но и ответ орка прилетел
	if orc.Fighter.HP != 18 {
		t.Errorf("orc HP = %d, want 18", orc.Fighter.HP)
	}
}

func TestBlockedMoveStillSpendsTurn(t *testing.T) {
	s := testSession(nil, testOrc(15, 10))
	orc := s.Objects[1]
	start := orc.Pos

	// Стена прямо над героем
	s.Game.Map.Tiles[9][10].Blocked = true
	s.Game.Map.Tiles[9][10].BlocksSight = true

	err := s.ProcessCommand(domain.Command{
		Action:  domain.ActionMove,
		Payload: mustPayload(t, domain.DirectionPayload{Dx: 0, Dy: -1}),
	})
	if err != nil {
		t.Fatal(err)
	}

	if orc.Pos == start {
		t.Error("a blocked move still costs the turn, monsters must act")
	}
	msg, _ := s.Game.Log.Last()
	if !strings.Contains(msg.Text, "Путь прегражден") {
		t.Errorf("expected blocked-path message, got %q", msg.Text)
	}
}

func TestPickupDoesNotSpendTurn(t *testing.T) {
	kind := domain.ItemHeal
	potion := domain.NewEntity(domain.EntityTypeItem, 10, 10, "!", "лечебное зелье", domain.ColorViolet, false)
	potion.Item = &kind

	s := testSession(nil, testOrc(15, 10), potion)
	orc := s.Objects[1]
	start := orc.Pos

	if err := s.ProcessCommand(domain.Command{Action: domain.ActionPickup}); err != nil {
		t.Fatal(err)
	}

	if len(s.Game.Inventory) != 1 {
		t.Error("potion must land in the inventory")
	}
	if orc.Pos != start {
		t.Error("pickup is free, monsters must not act")
	}
}

func TestUseCommandSpendsNoTurnAndConsumesItem(t *testing.T) {
	s := testSession(nil, testOrc(15, 10))
	orc := s.Objects[1]
	start := orc.Pos

	kind := domain.ItemHeal
	potion := domain.NewEntity(domain.EntityTypeItem, 0, 0, "!", "лечебное зелье", domain.ColorViolet, false)
	potion.Item = &kind
	s.Game.Inventory = []*domain.Entity{potion}
	s.Objects[domain.PlayerIdx].Fighter.HP = 10

	err := s.ProcessCommand(domain.Command{
		Action:  domain.ActionUse,
		Payload: mustPayload(t, domain.IndexPayload{Index: 0}),
	})
	if err != nil {
		t.Fatal(err)
	}

	if s.Objects[domain.PlayerIdx].Fighter.HP != 50 {
		t.Errorf("HP = %d, want 50 after the potion", s.Objects[domain.PlayerIdx].Fighter.HP)
	}
	if len(s.Game.Inventory) != 0 {
		t.Error("used potion must disappear")
	}
	if orc.Pos != start {
		t.Error("using an item is free, monsters must not act")
	}
}

func TestUseCommandBadIndex(t *testing.T) {
	s := testSession(nil)

	err := s.ProcessCommand(domain.Command{
		Action:  domain.ActionUse,
		Payload: mustPayload(t, domain.IndexPayload{Index: 3}),
	})
	if err == nil {
		t.Fatal("out-of-range inventory index must error")
	}
}

func TestDescendHealsAndRebuildsLevel(t *testing.T) {
	stairs := domain.NewEntity(domain.EntityTypeStairs, 10, 10, "<", "лестница вниз", domain.ColorWhite, false)
	stairs.AlwaysVisible = true

	s := testSession(nil, testOrc(15, 10), stairs)
	player := s.Objects[domain.PlayerIdx]
	player.Fighter.HP = 40

	if err := s.ProcessCommand(domain.Command{Action: domain.ActionDescend}); err != nil {
		t.Fatal(err)
	}

	if s.Game.DungeonLevel != 2 {
		t.Errorf("dungeon level = %d, want 2", s.Game.DungeonLevel)
	}
	// Лечение на половину максимума: 40 + 50
	if player.Fighter.HP != 90 {
		t.Errorf("HP = %d, want 90 after resting", player.Fighter.HP)
	}
	// Старый состав мира не переживает спуск
	if s.Objects[domain.PlayerIdx] != player {
		t.Error("player must survive the descent at index 0")
	}
	for _, obj := range s.Objects[1:] {
		if obj == stairs {
			t.Error("old stairs must not survive the descent")
		}
	}
}

func TestDescendWithoutStairs(t *testing.T) {
	s := testSession(nil)

	if err := s.ProcessCommand(domain.Command{Action: domain.ActionDescend}); err != nil {
		t.Fatal(err)
	}

	if s.Game.DungeonLevel != 1 {
		t.Error("descend away from stairs must not change the level")
	}
	msg, _ := s.Game.Log.Last()
	if !strings.Contains(msg.Text, "Лестницы здесь нет") {
		t.Errorf("expected no-stairs message, got %q", msg.Text)
	}
}

func TestDeadPlayerCommandsIgnored(t *testing.T) {
	s := testSession(nil, testOrc(15, 10))
	s.Game.State = domain.StateDead
	start := s.Objects[domain.PlayerIdx].Pos

	err := s.ProcessCommand(domain.Command{
		Action:  domain.ActionMove,
		Payload: mustPayload(t, domain.DirectionPayload{Dx: 1, Dy: 0}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.Objects[domain.PlayerIdx].Pos != start {
		t.Error("dead player must not move")
	}

	// Лист персонажа доступен и после гибели
	if err := s.ProcessCommand(domain.Command{Action: domain.ActionCharacter}); err != nil {
		t.Fatal(err)
	}
	msg, _ := s.Game.Log.Last()
	if !strings.Contains(msg.Text, "Информация о персонаже") {
		t.Errorf("expected character sheet, got %q", msg.Text)
	}
}

func TestUnknownActionErrors(t *testing.T) {
	s := testSession(nil)
	if err := s.ProcessCommand(domain.Command{Action: domain.ActionUnknown}); err == nil {
		t.Fatal("unknown action must error")
	}
}

func TestLevelUpAfterTurn(t *testing.T) {
	s := testSession(nil)
	s.UI = scriptedUI{choice: 1} // +1 к силе
	player := s.Objects[domain.PlayerIdx]
	player.Fighter.XP = 350

	if err := s.ProcessCommand(domain.Command{Action: domain.ActionWait}); err != nil {
		t.Fatal(err)
	}

	if player.Level != 2 {
		t.Errorf("level = %d, want 2", player.Level)
	}
	if player.Fighter.BasePower != 3 {
		t.Errorf("BasePower = %d, want 3", player.Fighter.BasePower)
	}
}

func TestSelectTileFiltersClicks(t *testing.T) {
	input := &scriptedInput{clicks: []domain.TargetClick{
		{X: 100, Y: 100, Button: domain.ClickLeft}, // вне карты
		{X: 12, Y: 10, Button: domain.ClickLeft},   // валидный
	}}
	s := testSession(input)
	targeter := &clickTargeter{s: s}

	pos, ok := targeter.SelectTile(-1)
	if !ok || pos != (domain.Position{X: 12, Y: 10}) {
		t.Errorf("SelectTile = %+v, %v; want (12,10), true", pos, ok)
	}
}

func TestSelectTileRangeAndCancel(t *testing.T) {
	input := &scriptedInput{clicks: []domain.TargetClick{
		{X: 18, Y: 10, Button: domain.ClickLeft}, // дальше 5 клеток
		{X: 12, Y: 10, Button: domain.ClickRight},
	}}
	s := testSession(input)
	targeter := &clickTargeter{s: s}

	if _, ok := targeter.SelectTile(5); ok {
		t.Error("out-of-range click must be skipped, right click must cancel")
	}
}

func TestSelectMonster(t *testing.T) {
	input := &scriptedInput{clicks: []domain.TargetClick{
		{X: 11, Y: 11, Button: domain.ClickLeft}, // пустая клетка
		{X: 12, Y: 10, Button: domain.ClickLeft}, // орк
	}}
	s := testSession(input, testOrc(12, 10))
	targeter := &clickTargeter{s: s}

	id, ok := targeter.SelectMonster(8)
	if !ok || id != 1 {
		t.Errorf("SelectMonster = %d, %v; want 1, true", id, ok)
	}
}
