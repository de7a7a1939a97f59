package profession

import (
	"fmt"

	"github.com/cory-johannsen/statcore/internal/game/stat"
)

// Profession is a character class. The set of implementations is closed.
//
// Queries read the holder passed to them, never the profession's own Base.
type Profession interface {
	// Kind returns the discriminant.
	Kind() Kind
	// Name returns the display name.
	Name() string
	// Base returns the starting attribute vector for this profession.
	Base() stat.Vector
	// IsEffectiveAgainst reports whether other is the kind this profession dominates.
	IsEffectiveAgainst(other Profession) bool
	// IsSuppressedBy reports whether other is the kind that dominates this profession.
	IsSuppressedBy(other Profession) bool
	// AttackPoints returns the offense score this profession derives from h.
	AttackPoints(h stat.Holder) int32
	// DefensePoints returns the defense score this profession derives from h.
	DefensePoints(h stat.Holder) int32

	sealed()
}

// common holds the behavior shared by every profession.
type common struct {
	kind Kind
	base stat.Vector
}

func (c common) Kind() Kind        { return c.kind }
func (c common) Base() stat.Vector { return c.base }
func (common) sealed()             {}

func (c common) IsEffectiveAgainst(other Profession) bool {
	return other.Kind() == c.kind.Beats()
}

func (c common) IsSuppressedBy(other Profession) bool {
	return other.Kind() == c.kind.BeatenBy()
}

// DefensePoints reads Defense for every profession.
func (common) DefensePoints(h stat.Holder) int32 {
	return h.Stats().Defense
}

// Warrior is a physical fighter. Offense reads Attack.
type Warrior struct{ common }

// NewWarrior returns a Warrior with base (90, 40, 55, 0).
func NewWarrior() *Warrior {
	return &Warrior{common{kind: KindWarrior, base: stat.Vector{Health: 90, Attack: 40, Defense: 55}}}
}

// Name returns "Warrior".
func (*Warrior) Name() string { return "Warrior" }

// AttackPoints returns h's Attack.
func (*Warrior) AttackPoints(h stat.Holder) int32 { return h.Stats().Attack }

// Knight is an armored fighter. Offense reads Attack.
type Knight struct{ common }

// NewKnight returns a Knight with base (100, 40, 30, 0).
func NewKnight() *Knight {
	return &Knight{common{kind: KindKnight, base: stat.Vector{Health: 100, Attack: 40, Defense: 30}}}
}

// Name returns "Knight".
func (*Knight) Name() string { return "Knight" }

// AttackPoints returns h's Attack.
func (*Knight) AttackPoints(h stat.Holder) int32 { return h.Stats().Attack }

// Sorcerer is a caster. Offense reads Magic.
type Sorcerer struct{ common }

// NewSorcerer returns a Sorcerer with base (70, 0, 20, 50).
func NewSorcerer() *Sorcerer {
	return &Sorcerer{common{kind: KindSorcerer, base: stat.Vector{Health: 70, Defense: 20, Magic: 50}}}
}

// Name returns "Sorcerer".
func (*Sorcerer) Name() string { return "Sorcerer" }

// AttackPoints returns h's Magic.
func (*Sorcerer) AttackPoints(h stat.Holder) int32 { return h.Stats().Magic }

// New returns a fresh profession of the given kind.
//
// Postcondition: Returns a Profession with p.Kind() == kind, or an error wrapping ErrUnknownKind.
func New(kind Kind) (Profession, error) {
	switch kind {
	case KindWarrior:
		return NewWarrior(), nil
	case KindKnight:
		return NewKnight(), nil
	case KindSorcerer:
		return NewSorcerer(), nil
	default:
		return nil, fmt.Errorf("profession.New: %w: %d", ErrUnknownKind, int(kind))
	}
}
