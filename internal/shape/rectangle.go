package shape

import (
	"fmt"

	"github.com/annel0/flatsquares/internal/vec"
)

// Rectangle представляет прямоугольник, выровненный по осям.
// X, Y задают левый верхний угол, Width и Height - размеры.
// Размеры не проверяются: допускаются нулевые и отрицательные значения.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRectangle создаёт прямоугольник с указанными координатами и размерами
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// Center возвращает центр прямоугольника. Вычисляется при каждом вызове.
func (r Rectangle) Center() vec.Vector {
	return vec.New(r.X+r.Width/2.0, r.Y+r.Height/2.0)
}

// IsEmpty возвращает true, если ширина и высота равны нулю
func (r Rectangle) IsEmpty() bool {
	return r.Width == 0 && r.Height == 0
}

// Compare проверяет точное равенство всех четырёх полей
func (r Rectangle) Compare(other Rectangle) bool {
	return r.X == other.X &&
		r.Y == other.Y &&
		r.Width == other.Width &&
		r.Height == other.Height
}

// Contains проверяет, лежит ли прямоугольник (x, y, width, height) внутри r.
// Нижняя граница включается, верхняя нет, поэтому прямоугольник
// не содержит свою точную копию.
func (r Rectangle) Contains(x, y, width, height float64) bool {
	return x >= r.X &&
		x+width < r.X+r.Width &&
		y >= r.Y &&
		y+height < r.Y+r.Height
}

// ContainsPoint проверяет, находится ли точка внутри прямоугольника
func (r Rectangle) ContainsPoint(x, y float64) bool {
	return r.Contains(x, y, 0, 0)
}

// Intersects проверяет пересечение r с прямоугольником (x, y, width, height).
// Интервалы открытые: касание краями пересечением не считается.
func (r Rectangle) Intersects(x, y, width, height float64) bool {
	return x < r.X+r.Width &&
		x+width > r.X &&
		y < r.Y+r.Height &&
		y+height > r.Y
}

// IntersectsPoint проверяет пересечение с вырожденным прямоугольником в точке (x, y)
func (r Rectangle) IntersectsPoint(x, y float64) bool {
	return r.Intersects(x, y, 0, 0)
}

// String возвращает прямоугольник в виде [x;y w×h]
func (r Rectangle) String() string {
	return fmt.Sprintf("[%g;%g %g×%g]", r.X, r.Y, r.Width, r.Height)
}
