package vec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func randomPair(rng *rand.Rand) (Vector, Vector) {
	return New(rng.Float64(), rng.Float64()), New(rng.Float64(), rng.Float64())
}

func TestVector_Construction(t *testing.T) {
	v := New(1.5, -2.0)
	assert.Equal(t, 1.5, v.X)
	assert.Equal(t, -2.0, v.Y)

	// Нулевое значение и Zero() дают (0;0)
	var zero Vector
	assert.Equal(t, 0.0, zero.X)
	assert.Equal(t, 0.0, zero.Y)
	assert.True(t, Zero().Compare(zero))
}

func TestVector_Arithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		a, b := randomPair(rng)
		x, y := a.X, a.Y

		sum := a
		sum.Add(b)
		assert.Equal(t, x+b.X, sum.X)
		assert.Equal(t, y+b.Y, sum.Y)

		diff := a
		diff.Subtract(b)
		assert.Equal(t, x-b.X, diff.X)
		assert.Equal(t, y-b.Y, diff.Y)

		prod := a
		prod.Multiply(b.X, b.Y)
		assert.Equal(t, x*b.X, prod.X)
		assert.Equal(t, y*b.Y, prod.Y)

		scaled := a
		scaled.Scale(b.X)
		assert.Equal(t, x*b.X, scaled.X)
		assert.Equal(t, y*b.X, scaled.Y)

		quot := a
		quot.Divide(b)
		assert.Equal(t, x/b.X, quot.X)
		assert.Equal(t, y/b.Y, quot.Y)

		// Аргумент не изменяется
		assert.Equal(t, New(b.X, b.Y), b)
	}
}

func TestVector_AddSubtractRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		a, b := randomPair(rng)
		original := a

		a.Add(b)
		a.Subtract(b)

		assert.InDelta(t, original.X, a.X, delta)
		assert.InDelta(t, original.Y, a.Y, delta)
	}
}

func TestVector_Round(t *testing.T) {
	v := New(1.4, 2.6)
	v.Round()
	assert.Equal(t, New(1, 3), v)

	v = New(2.5, -2.5)
	v.Round()
	assert.Equal(t, New(3, -3), v, "половина округляется от нуля")
}

func TestVector_LengthAndDistance(t *testing.T) {
	assert.Equal(t, 5.0, New(3, 4).Length())
	assert.Equal(t, 0.0, Zero().Length())

	a := New(1, 1)
	b := New(4, 5)
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, a.Distance(b), b.Distance(a))
	assert.Equal(t, 0.0, a.Distance(a))
}

func TestVector_Normalize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		v := New(rng.Float64()*200-100, rng.Float64()*200-100)
		if v.Length() == 0 {
			continue
		}
		inv := 1.0 / math.Sqrt(v.X*v.X+v.Y*v.Y)
		expected := New(v.X*inv, v.Y*inv)

		v.Normalize()

		assert.InDelta(t, expected.X, v.X, delta)
		assert.InDelta(t, expected.Y, v.Y, delta)
		assert.InDelta(t, 1.0, v.Length(), delta)
	}
}

func TestVector_Compare(t *testing.T) {
	a := New(0.1, 0.2)
	b := New(0.1, 0.2)
	c := New(0.1, 0.2000001)

	assert.True(t, a.Compare(a))
	assert.True(t, a.Compare(b))
	assert.True(t, b.Compare(a))
	assert.False(t, a.Compare(c), "сравнение точное, без допуска")

	n := New(math.NaN(), 0)
	assert.False(t, n.Compare(n), "NaN не равен самому себе")
}

func TestVector_Polar(t *testing.T) {
	length := 2.5
	v := Polar(length, math.Pi)
	assert.Equal(t, length*math.Cos(math.Pi), v.X)
	assert.Equal(t, length*math.Sin(math.Pi), v.Y)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		l := rng.Float64() * 50
		angle := rng.Float64() * 2 * math.Pi
		assert.InDelta(t, l, Polar(l, angle).Length(), delta)
	}
}

func TestVector_Lerp(t *testing.T) {
	from := New(2, -4)
	to := New(10, 8)

	assert.Equal(t, from, Lerp(from, to, 0))
	assert.Equal(t, to, Lerp(from, to, 1))
	assert.Equal(t, New(6, 2), Lerp(from, to, 0.5))

	// Экстраполяция за пределы [0,1]
	assert.Equal(t, New(18, 20), Lerp(from, to, 2))
	assert.Equal(t, New(-6, -16), Lerp(from, to, -1))

	rng := rand.New(rand.NewSource(5))
	a, b := randomPair(rng)
	amount := rng.Float64()
	got := Lerp(a, b, amount)
	assert.InDelta(t, a.X+(b.X-a.X)*amount, got.X, delta)
	assert.InDelta(t, a.Y+(b.Y-a.Y)*amount, got.Y, delta)
}

func TestVector_Degenerate(t *testing.T) {
	// Деление на ноль не паникует
	v := New(1, 0)
	v.Divide(Zero())
	require.True(t, math.IsInf(v.X, 1))
	require.True(t, math.IsNaN(v.Y))

	// Нормализация нулевого вектора
	z := Zero()
	z.Normalize()
	assert.True(t, math.IsNaN(z.X))
	assert.True(t, math.IsNaN(z.Y))
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "(1.5;-2)", New(1.5, -2).String())
}
