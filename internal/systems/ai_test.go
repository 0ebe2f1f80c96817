package systems

import (
	"math/rand"
	"strings"
	"testing"

	"tombs-core/internal/domain"
)

func TestBasicAIApproachesAndAttacks(t *testing.T) {
	objects, g := newTestGame()
	orcID := addOrc(&objects, 14, 10)
	rng := rand.New(rand.NewSource(1))

	// Четыре хода хватает, чтобы дойти и ударить
	for i := 0; i < 4; i++ {
		TakeTurn(orcID, objects, g, allVisible{}, rng)
	}

	player := objects[domain.PlayerIdx]
	if player.Fighter.HP == 100 {
		t.Errorf("player HP = %d, orc never attacked", player.Fighter.HP)
	}
	if objects[orcID].DistanceTo(player) >= 2 {
		t.Errorf("orc too far after approach: %+v", objects[orcID].Pos)
	}
}

func TestBasicAIIdlesOutOfSight(t *testing.T) {
	objects, g := newTestGame()
	orcID := addOrc(&objects, 14, 10)
	rng := rand.New(rand.NewSource(1))
	start := objects[orcID].Pos

	TakeTurn(orcID, objects, g, nothingVisible{}, rng)

	if objects[orcID].Pos != start {
		t.Error("monster outside the player's FOV must not move")
	}
}

func TestConfusedAIExpiresExactlyOnce(t *testing.T) {
	objects, g := newTestGame()
	orcID := addOrc(&objects, 14, 10)
	rng := rand.New(rand.NewSource(7))

	orc := objects[orcID]
	orc.AI = domain.NewConfusedAI(orc.AI, 3)

	// 3 хода в замешательстве
	for i := 0; i < 3; i++ {
		TakeTurn(orcID, objects, g, allVisible{}, rng)
		if orc.AI.Kind != domain.AIConfused {
			t.Fatalf("confusion expired early on turn %d", i)
		}
	}

	// 4-й ход: таймер истек, состояние восстановлено
	TakeTurn(orcID, objects, g, allVisible{}, rng)
	if orc.AI.Kind != domain.AIBasic {
		t.Fatalf("AI kind = %v, want AIBasic after expiry", orc.AI.Kind)
	}
	msg, _ := g.Log.Last()
	if !strings.Contains(msg.Text, "больше не в замешательстве") {
		t.Errorf("expected recovery message, got %q", msg.Text)
	}
}

func TestConfusedAIRandomStepsRespectWalls(t *testing.T) {
	objects, g := newTestGame()
	orcID := addOrc(&objects, 14, 10)
	rng := rand.New(rand.NewSource(3))

	// Запираем орка в клетку 1x1
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		g.Map.Tiles[10+d[1]][14+d[0]].Blocked = true
	}

	orc := objects[orcID]
	orc.AI = domain.NewConfusedAI(orc.AI, 10)
	for i := 0; i < 10; i++ {
		TakeTurn(orcID, objects, g, allVisible{}, rng)
	}

	if orc.Pos != (domain.Position{X: 14, Y: 10}) {
		t.Errorf("walled-in confused orc escaped to %+v", orc.Pos)
	}
}

func TestNestedConfusionRestoresChain(t *testing.T) {
	objects, g := newTestGame()
	orcID := addOrc(&objects, 14, 10)
	rng := rand.New(rand.NewSource(5))

	orc := objects[orcID]
	orc.AI = domain.NewConfusedAI(orc.AI, 1)
	orc.AI = domain.NewConfusedAI(orc.AI, 1)

	// Внешнее замешательство: шаг + истечение
	TakeTurn(orcID, objects, g, nothingVisible{}, rng)
	TakeTurn(orcID, objects, g, nothingVisible{}, rng)
	if orc.AI.Kind != domain.AIConfused {
		t.Fatal("inner confusion must be restored first")
	}

	// Внутреннее: шаг + истечение
	TakeTurn(orcID, objects, g, nothingVisible{}, rng)
	TakeTurn(orcID, objects, g, nothingVisible{}, rng)
	if orc.AI.Kind != domain.AIBasic {
		t.Error("basic AI must be restored after both confusions expire")
	}
}
