package vec

import (
	"fmt"
	"math"
)

// Vector представляет 2D координаты с плавающей точкой.
// Используется и как точка, и как смещение: операции одинаковы.
// Методы с указателем на получателя изменяют вектор на месте.
type Vector struct {
	X, Y float64
}

// New создаёт вектор с заданными координатами
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Zero возвращает вектор (0;0)
func Zero() Vector {
	return Vector{}
}

// Polar создаёт вектор по длине и углу в радианах
func Polar(length, angle float64) Vector {
	return Vector{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// Lerp линейно интерполирует между from и to.
// amount не ограничивается отрезком [0,1].
func Lerp(from, to Vector, amount float64) Vector {
	return Vector{
		X: from.X + (to.X-from.X)*amount,
		Y: from.Y + (to.Y-from.Y)*amount,
	}
}

// Round округляет обе координаты до ближайшего целого.
// Половины округляются от нуля: -2.5 -> -3.
func (v *Vector) Round() {
	v.X = math.Round(v.X)
	v.Y = math.Round(v.Y)
}

// Length возвращает длину вектора
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Add прибавляет другой вектор
func (v *Vector) Add(other Vector) {
	v.X += other.X
	v.Y += other.Y
}

// Subtract вычитает другой вектор
func (v *Vector) Subtract(other Vector) {
	v.X -= other.X
	v.Y -= other.Y
}

// Multiply умножает координаты на x и y соответственно
func (v *Vector) Multiply(x, y float64) {
	v.X *= x
	v.Y *= y
}

// Scale умножает обе координаты на s
func (v *Vector) Scale(s float64) {
	v.Multiply(s, s)
}

// Divide делит координаты на координаты другого вектора.
// Деление на ноль даёт Inf/NaN по IEEE-754.
func (v *Vector) Divide(other Vector) {
	v.X /= other.X
	v.Y /= other.Y
}

// Normalize приводит вектор к единичной длине.
// Для нулевого вектора координаты становятся NaN.
func (v *Vector) Normalize() {
	v.Scale(1.0 / v.Length())
}

// Compare проверяет точное равенство координат
func (v Vector) Compare(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

// Distance вычисляет расстояние до другой точки
func (v Vector) Distance(other Vector) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// String возвращает координаты в виде (x;y)
func (v Vector) String() string {
	return fmt.Sprintf("(%g;%g)", v.X, v.Y)
}
