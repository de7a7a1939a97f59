package profession

// Outcome classifies a pairing of two professions from the first one's side.
type Outcome int

const (
	// Neutral means neither side dominates (same kind).
	Neutral Outcome = iota
	// Advantage means the first profession is effective against the second.
	Advantage
	// Disadvantage means the first profession is suppressed by the second.
	Disadvantage
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Advantage:
		return "advantage"
	case Disadvantage:
		return "disadvantage"
	default:
		return "neutral"
	}
}

// Matchup reports how a fares against b.
//
// Precondition: a and b must be non-nil.
// Postcondition: for distinct kinds the result is never Neutral.
func Matchup(a, b Profession) Outcome {
	switch {
	case a.IsEffectiveAgainst(b):
		return Advantage
	case a.IsSuppressedBy(b):
		return Disadvantage
	default:
		return Neutral
	}
}
