package buildkeep

import "fmt"

// Outcome is the ordered status of a build, worst to best. Comparisons use
// this ordering: a build that was never built ranks below one that failed,
// which ranks below an unstable build, which ranks below a success.
type Outcome int

// Outcome values, worst to best.
const (
	NotBuilt Outcome = iota
	Failure
	Unstable
	Success
)

var outcomeNames = map[Outcome]string{
	NotBuilt: "NOT_BUILT",
	Failure:  "FAILURE",
	Unstable: "UNSTABLE",
	Success:  "SUCCESS",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// BetterThan reports whether o ranks strictly above other.
func (o Outcome) BetterThan(other Outcome) bool {
	return o > other
}

// BetterOrEqual reports whether o ranks at or above other.
func (o Outcome) BetterOrEqual(other Outcome) bool {
	return o >= other
}

// ParseOutcome converts a name like "SUCCESS" back into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	for o, name := range outcomeNames {
		if name == s {
			return o, nil
		}
	}
	return NotBuilt, fmt.Errorf("unknown outcome %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	parsed, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
