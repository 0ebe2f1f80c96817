package dungeon

// Rect - Вспомогательная структура для комнаты.
// Полуоткрытый прямоугольник: интерьер комнаты - (X1+1..X2-1, Y1+1..Y2-1),
// внешний контур остается стеной и служит буфером между комнатами.
type Rect struct {
	X1, Y1, X2, Y2 int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects - пересечение включительное: комнаты, касающиеся
// контурами, тоже считаются пересекающимися.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
