// Package character defines a concrete attribute holder and its creation from
// YAML character sheets.
package character

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/statcore/internal/game/item"
	"github.com/cory-johannsen/statcore/internal/game/profession"
	"github.com/cory-johannsen/statcore/internal/game/stat"
)

// Character is a named actor with a profession and a live attribute vector.
//
// Character implements stat.Holder and stat.Updater; all access to the vector
// is serialized, so items may be applied from concurrent goroutines.
type Character struct {
	ID         uuid.UUID
	Name       string
	Profession profession.Profession

	stats *stat.Store
}

// New creates a Character whose vector starts at initial.
//
// Precondition: p must be non-nil.
// Postcondition: Returns a Character with a fresh random ID and Stats() == initial.
func New(name string, p profession.Profession, initial stat.Vector) *Character {
	return &Character{
		ID:         uuid.New(),
		Name:       name,
		Profession: p,
		stats:      stat.NewStore(initial),
	}
}

// Stats returns the character's current vector.
func (c *Character) Stats() stat.Vector { return c.stats.Stats() }

// SetStats replaces the character's vector.
func (c *Character) SetStats(v stat.Vector) { c.stats.SetStats(v) }

// Update replaces the character's vector with fn(current) atomically.
func (c *Character) Update(fn func(stat.Vector) stat.Vector) stat.Vector {
	return c.stats.Update(fn)
}

// Equip applies each item to the character in order.
//
// Postcondition: Stats() increases by item.Sum(items...).
func (c *Character) Equip(items ...item.Item) {
	item.ApplyAll(c, items...)
}

// AttackPoints returns the offense score the character's profession reads.
func (c *Character) AttackPoints() int32 { return c.Profession.AttackPoints(c) }

// DefensePoints returns the defense score the character's profession reads.
func (c *Character) DefensePoints() int32 { return c.Profession.DefensePoints(c) }

// Summary renders a one-line header followed by the character's vector.
func (c *Character) Summary() string {
	return fmt.Sprintf("%s the %s (attack points: %d, defense points: %d)\n%s",
		c.Name, c.Profession.Name(), c.AttackPoints(), c.DefensePoints(), c.Stats())
}
