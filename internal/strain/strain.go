// Package strain defines the strain profiles that parameterize the distorted
// Fibonacci engine. Each strain carries a multiplier applied to every computed
// term, together with display metadata used by the CLI and TUI.
package strain

import (
	"fmt"
	"strings"
)

// Strain identifies one of the built-in distortion profiles.
type Strain int

// Built-in strain profiles.
const (
	// Sativa amplifies every term by 20%, producing a faster-growing sequence.
	Sativa Strain = iota
	// Indica dampens every term by 20%; the distorted recurrence collapses
	// to zero after the second term.
	Indica
	// Hybrid leaves terms undistorted; the engine produces the canonical
	// Fibonacci sequence.
	Hybrid
)

// characteristics maps each strain to its multiplier and display metadata.
// The multipliers are fixed by the strain model and are not configurable
// per strain; a custom multiplier requires a custom-labeled engine.
var characteristics = map[Strain]struct {
	multiplier  float64
	name        string
	personality string
	description string
}{
	Sativa: {1.2, "Sativa", "Energetic", "Fast computation with creative optimizations"},
	Indica: {0.8, "Indica", "Relaxed", "Methodical calculation with deep caching"},
	Hybrid: {1.0, "Hybrid", "Balanced", "Optimal mix of speed and accuracy"},
}

// All returns every built-in strain in declaration order.
// The order is stable so comparison tables render deterministically.
func All() []Strain {
	return []Strain{Sativa, Indica, Hybrid}
}

// Multiplier returns the distortion factor applied to every computed term.
func (s Strain) Multiplier() float64 {
	return characteristics[s].multiplier
}

// Personality returns the one-word temperament used in comparison displays.
func (s Strain) Personality() string {
	return characteristics[s].personality
}

// Description returns the human-readable profile description.
func (s Strain) Description() string {
	return characteristics[s].description
}

// String returns the display name of the strain.
func (s Strain) String() string {
	if c, ok := characteristics[s]; ok {
		return c.name
	}
	return fmt.Sprintf("Strain(%d)", int(s))
}

// Parse converts a case-insensitive strain name into a Strain.
//
// Parameters:
//   - name: The strain name ("sativa", "indica" or "hybrid").
//
// Returns:
//   - Strain: The matching strain.
//   - error: An error if the name matches no known strain.
func Parse(name string) (Strain, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sativa":
		return Sativa, nil
	case "indica":
		return Indica, nil
	case "hybrid":
		return Hybrid, nil
	}
	return Hybrid, fmt.Errorf("unknown strain %q: valid strains are sativa, indica, hybrid", name)
}

// Names returns the lower-case names of all built-in strains, suitable for
// CLI help text and validation messages.
func Names() []string {
	names := make([]string, 0, len(characteristics))
	for _, s := range All() {
		names = append(names, strings.ToLower(s.String()))
	}
	return names
}
