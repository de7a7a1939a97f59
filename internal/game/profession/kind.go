// Package profession provides the playable professions, their effectiveness
// triangle, and the attribute each one reads for offense and defense.
package profession

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a name or value is not a known profession kind.
var ErrUnknownKind = errors.New("unknown profession kind")

// Kind discriminates the closed set of professions.
//
// Invariant: kinds are ordered so that each kind is effective against its
// successor modulo numKinds, which makes the relation a strict 3-cycle:
// Warrior beats Knight, Knight beats Sorcerer, Sorcerer beats Warrior.
type Kind int

const (
	KindWarrior Kind = iota
	KindKnight
	KindSorcerer

	numKinds
)

var kindNames = [numKinds]string{
	KindWarrior:  "warrior",
	KindKnight:   "knight",
	KindSorcerer: "sorcerer",
}

// Kinds returns every profession kind.
func Kinds() []Kind {
	return []Kind{KindWarrior, KindKnight, KindSorcerer}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Beats returns the kind k is effective against.
//
// Precondition: k.Valid().
func (k Kind) Beats() Kind {
	return (k + 1) % numKinds
}

// BeatenBy returns the kind that is effective against k.
//
// Precondition: k.Valid().
// Postcondition: k.BeatenBy().Beats() == k.
func (k Kind) BeatenBy() Kind {
	return (k + numKinds - 1) % numKinds
}

// ParseKind converts a case-insensitive name into a Kind.
//
// Postcondition: Returns a valid Kind or an error wrapping ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("profession.ParseKind: %w: %q", ErrUnknownKind, s)
}

// UnmarshalText implements encoding.TextUnmarshaler so kinds can be named in
// YAML and config files.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("profession.Kind.MarshalText: %w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}
