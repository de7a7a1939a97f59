// Package item provides the fixed equipment archetypes and the effect each one
// applies to a stat.Holder.
package item

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/statcore/internal/game/stat"
)

// ErrUnknownKind is returned when a Kind is not one of the known archetypes.
var ErrUnknownKind = errors.New("unknown item kind")

// Kind identifies an item archetype.
type Kind string

const (
	KindHelmet     Kind = "helmet"
	KindChestPlate Kind = "chest_plate"
	KindLeggings   Kind = "leggings"
	KindSword      Kind = "sword"
	KindBloodBag   Kind = "blood_bag"
	KindWand       Kind = "wand"
)

// archetype is the static definition behind a Kind.
type archetype struct {
	name  string
	delta stat.Vector
}

var archetypes = map[Kind]archetype{
	KindHelmet:     {name: "Helmet", delta: stat.Vector{Defense: 10}},
	KindChestPlate: {name: "Chest Plate", delta: stat.Vector{Defense: 15}},
	KindLeggings:   {name: "Leggings", delta: stat.Vector{Defense: 10}},
	KindSword:      {name: "Sword", delta: stat.Vector{Attack: 15, Defense: 4}},
	KindBloodBag:   {name: "Blood Bag", delta: stat.Vector{Health: 30}},
	KindWand:       {name: "Wand", delta: stat.Vector{Magic: 70}},
}

// order fixes iteration order for Kinds.
var order = []Kind{KindHelmet, KindChestPlate, KindLeggings, KindSword, KindBloodBag, KindWand}

// Kinds returns every item kind in declaration order.
//
// Postcondition: the returned slice is a fresh copy.
func Kinds() []Kind {
	out := make([]Kind, len(order))
	copy(out, order)
	return out
}

// Valid reports whether k names a known archetype.
func (k Kind) Valid() bool {
	_, ok := archetypes[k]
	return ok
}

// Item is an immutable equipment definition carrying one fixed delta.
//
// The zero Item has no kind and a zero delta; use a constructor.
type Item struct {
	kind  Kind
	name  string
	delta stat.Vector
}

// New returns the Item for kind.
//
// Postcondition: Returns the archetype or an error wrapping ErrUnknownKind.
func New(kind Kind) (Item, error) {
	a, ok := archetypes[kind]
	if !ok {
		return Item{}, fmt.Errorf("item.New: %w: %q", ErrUnknownKind, kind)
	}
	return Item{kind: kind, name: a.name, delta: a.delta}, nil
}

func mustNew(kind Kind) Item {
	it, err := New(kind)
	if err != nil {
		panic(err)
	}
	return it
}

// NewHelmet returns a Helmet (+10 defense).
func NewHelmet() Item { return mustNew(KindHelmet) }

// NewChestPlate returns a ChestPlate (+15 defense).
func NewChestPlate() Item { return mustNew(KindChestPlate) }

// NewLeggings returns Leggings (+10 defense).
func NewLeggings() Item { return mustNew(KindLeggings) }

// NewSword returns a Sword (+15 attack, +4 defense).
func NewSword() Item { return mustNew(KindSword) }

// NewBloodBag returns a BloodBag (+30 health).
func NewBloodBag() Item { return mustNew(KindBloodBag) }

// NewWand returns a Wand (+70 magic).
func NewWand() Item { return mustNew(KindWand) }

// Kind returns the archetype of it.
func (it Item) Kind() Kind { return it.kind }

// Name returns the display name of it.
func (it Item) Name() string { return it.name }

// Delta returns the fixed vector it adds to a holder.
func (it Item) Delta() stat.Vector { return it.delta }

// ApplyEffect adds the item's delta to target's current vector and writes the
// result back. Repeated application accumulates.
//
// Precondition: target must be non-nil.
// Postcondition: target.Stats() == previous + it.Delta().
func (it Item) ApplyEffect(target stat.Holder) {
	stat.Modify(target, func(cur stat.Vector) stat.Vector {
		return stat.Add(it.delta, cur)
	})
}

// ApplyAll applies each item to target in order.
//
// Precondition: target must be non-nil.
func ApplyAll(target stat.Holder, items ...Item) {
	for _, it := range items {
		it.ApplyEffect(target)
	}
}

// Sum returns the combined delta of items.
func Sum(items ...Item) stat.Vector {
	var total stat.Vector
	for _, it := range items {
		total.AddAssign(it.delta)
	}
	return total
}
