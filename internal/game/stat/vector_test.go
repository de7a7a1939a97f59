package stat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/statcore/internal/game/stat"
)

func drawVector(rt *rapid.T, label string) stat.Vector {
	return stat.Vector{
		Health:  rapid.Int32().Draw(rt, label+".health"),
		Attack:  rapid.Int32().Draw(rt, label+".attack"),
		Defense: rapid.Int32().Draw(rt, label+".defense"),
		Magic:   rapid.Int32().Draw(rt, label+".magic"),
	}
}

func vec(h, a, d, m int32) stat.Vector {
	return stat.Vector{Health: h, Attack: a, Defense: d, Magic: m}
}

var rhs = vec(-10, 0, 100, 19)

func TestAdd_Table(t *testing.T) {
	cases := []struct {
		in, want stat.Vector
	}{
		{vec(10, 10, 10, 10), vec(0, 10, 110, 29)},
		{vec(0, 0, 0, 0), vec(-10, 0, 100, 19)},
		{vec(-10, -10, -10, -10), vec(-20, -10, 90, 9)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stat.Add(tc.in, rhs))
		assert.Equal(t, tc.want, tc.in.Add(rhs))
	}
}

func TestSub_Table(t *testing.T) {
	cases := []struct {
		in, want stat.Vector
	}{
		{vec(10, 10, 10, 10), vec(20, 10, -90, -9)},
		{vec(0, 0, 0, 0), vec(10, 0, -100, -19)},
		{vec(-10, -10, -10, -10), vec(0, -10, -110, -29)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stat.Sub(tc.in, rhs))
		assert.Equal(t, tc.want, tc.in.Sub(rhs))
	}
}

func TestAddAssign(t *testing.T) {
	v := vec(-10, -10, -10, -10)
	v.AddAssign(vec(10, 10, 10, 10))
	assert.Equal(t, stat.Zero, v)
}

func TestSubAssign(t *testing.T) {
	v := vec(10, 10, 10, 10)
	v.SubAssign(vec(10, 10, 10, 10))
	assert.Equal(t, stat.Zero, v)
	assert.True(t, v.IsZero())
}

func TestScale(t *testing.T) {
	v := stat.Vector{Attack: 15, Defense: 4}
	assert.Equal(t, stat.Vector{Attack: 30, Defense: 8}, v.Scale(2))
	assert.Equal(t, stat.Zero, v.Scale(0))
}

func TestString(t *testing.T) {
	v := stat.Vector{Health: 100, Attack: 100, Defense: 100, Magic: 100}
	assert.Equal(t, "State: [health: 100, attack: 100, defense: 100, magic: 100]\n", v.String())
}

func TestString_FieldOrder(t *testing.T) {
	v := stat.Vector{Health: 1, Attack: -2, Defense: 3, Magic: -4}
	assert.Equal(t, "State: [health: 1, attack: -2, defense: 3, magic: -4]\n", v.String())
}

// Property: Add is commutative.
func TestAdd_Commutative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := drawVector(rt, "a")
		b := drawVector(rt, "b")
		if stat.Add(a, b) != stat.Add(b, a) {
			rt.Fatalf("Add(%v, %v) != Add(%v, %v)", a, b, b, a)
		}
	})
}

// Property: Sub undoes Add.
func TestSub_InvertsAdd(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := drawVector(rt, "a")
		b := drawVector(rt, "b")
		if got := stat.Sub(stat.Add(a, b), b); got != a {
			rt.Fatalf("Sub(Add(a, b), b) = %v, want %v", got, a)
		}
	})
}

// Property: Zero is the additive identity.
func TestAdd_ZeroIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := drawVector(rt, "a")
		if stat.Add(a, stat.Zero) != a {
			rt.Fatalf("Add(%v, Zero) changed the vector", a)
		}
	})
}

// Property: the in-place forms agree with the pure forms.
func TestAssign_MatchesPure(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := drawVector(rt, "a")
		b := drawVector(rt, "b")
		sum := a
		sum.AddAssign(b)
		diff := a
		diff.SubAssign(b)
		if sum != stat.Add(a, b) || diff != stat.Sub(a, b) {
			rt.Fatalf("assign forms disagree with pure forms for %v, %v", a, b)
		}
	})
}
