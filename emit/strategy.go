package emit

import "fmt"

// Strategy selects one of the two matcher-source emission strategies
// documented in §4.E. Both must exist so the cross-strategy equivalence
// property (§8) can be checked.
type Strategy uint8

const (
	// Flags represents the active-set as one boolean per state (§4.E
	// Strategy 1).
	Flags Strategy = iota
	// ActiveSet represents the active-set as a fixed-capacity array of
	// state ids plus a generation-stamped membership check (§4.E
	// Strategy 2).
	ActiveSet
)

func (s Strategy) String() string {
	switch s {
	case Flags:
		return "Flags"
	case ActiveSet:
		return "ActiveSet"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}
