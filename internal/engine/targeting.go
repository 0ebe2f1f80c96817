package engine

import (
	"tombs-core/internal/domain"
)

// clickTargeter реализует выбор цели кликами из InputSource.
// Невалидные клики (вне поля зрения, вне дальности) игнорируются,
// правый клик или отмена прерывают выбор.
type clickTargeter struct {
	s *Session
}

func (t *clickTargeter) SelectTile(maxRange float64) (domain.Position, bool) {
	s := t.s
	playerPos := s.Objects[domain.PlayerIdx].Pos

	for {
		click := s.Input.NextTargetClick()
		if click.Button != domain.ClickLeft {
			return domain.Position{}, false
		}
		if !s.Game.Map.InBounds(click.X, click.Y) || !s.FOV.IsVisible(click.X, click.Y) {
			continue
		}
		if maxRange >= 0 && playerPos.DistanceToXY(click.X, click.Y) > maxRange {
			continue
		}
		return domain.Position{X: click.X, Y: click.Y}, true
	}
}

func (t *clickTargeter) SelectMonster(maxRange float64) (int, bool) {
	for {
		pos, ok := t.SelectTile(maxRange)
		if !ok {
			return 0, false
		}
		for id, obj := range t.s.Objects {
			if id != domain.PlayerIdx && obj.Fighter != nil && obj.AI != nil && obj.Pos == pos {
				return id, true
			}
		}
	}
}
