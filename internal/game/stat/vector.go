// Package stat defines the four-field attribute vector shared by characters,
// items, and professions, and the holder capability used to mutate it.
package stat

import "fmt"

// Vector is a character attribute vector.
//
// Fields are unbounded signed integers; negative values are valid and are
// commonly used as deltas. Clamping is the caller's concern.
type Vector struct {
	Health  int32 `yaml:"health"`
	Attack  int32 `yaml:"attack"`
	Defense int32 `yaml:"defense"`
	Magic   int32 `yaml:"magic"`
}

// Zero is the additive identity.
var Zero = Vector{}

// Add returns the field-wise sum of a and b.
//
// Postcondition: Add(a, b) == Add(b, a).
func Add(a, b Vector) Vector {
	return Vector{
		Health:  a.Health + b.Health,
		Attack:  a.Attack + b.Attack,
		Defense: a.Defense + b.Defense,
		Magic:   a.Magic + b.Magic,
	}
}

// Sub returns the field-wise difference a - b.
//
// Postcondition: Sub(Add(a, b), b) == a.
func Sub(a, b Vector) Vector {
	return Vector{
		Health:  a.Health - b.Health,
		Attack:  a.Attack - b.Attack,
		Defense: a.Defense - b.Defense,
		Magic:   a.Magic - b.Magic,
	}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector { return Add(v, o) }

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector { return Sub(v, o) }

// AddAssign adds o to v in place.
func (v *Vector) AddAssign(o Vector) {
	v.Health += o.Health
	v.Attack += o.Attack
	v.Defense += o.Defense
	v.Magic += o.Magic
}

// SubAssign subtracts o from v in place.
func (v *Vector) SubAssign(o Vector) {
	v.Health -= o.Health
	v.Attack -= o.Attack
	v.Defense -= o.Defense
	v.Magic -= o.Magic
}

// Scale multiplies every field by n.
func (v Vector) Scale(n int32) Vector {
	return Vector{
		Health:  v.Health * n,
		Attack:  v.Attack * n,
		Defense: v.Defense * n,
		Magic:   v.Magic * n,
	}
}

// IsZero reports whether every field is zero.
func (v Vector) IsZero() bool {
	return v == Zero
}

// String renders v in the fixed display layout, including the trailing newline.
func (v Vector) String() string {
	return fmt.Sprintf("State: [health: %d, attack: %d, defense: %d, magic: %d]\n",
		v.Health, v.Attack, v.Defense, v.Magic)
}
