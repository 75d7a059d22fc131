package cli

import (
	"fmt"

	"github.com/plantmath/strainfib/internal/ui"
)

// showWisdom prints the educational closing notes for the session.
func (m *Menu) showWisdom() {
	fmt.Fprintf(m.out, "\n%s🌿 Growers' Concurrency Wisdom 🌿%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintln(m.out, "======================================")
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Language features on display:")
	fmt.Fprintln(m.out, "• Goroutines (cheap fan-out, one per ten-index chunk)")
	fmt.Fprintln(m.out, "• Mutex-guarded memoization (lock the cache, not the math)")
	fmt.Fprintln(m.out, "• Explicit error values (overflow and range faults are data)")
	fmt.Fprintln(m.out, "• Arbitrary-precision integers (no silent wraparound)")
	fmt.Fprintln(m.out, "• Context plumbing (every long computation can be cancelled)")
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Strain-enhanced numerical insights:")
	fmt.Fprintln(m.out, "• A multiplier above 1 races toward the 128-bit ceiling")
	fmt.Fprintln(m.out, "• A multiplier below 1 collapses the sequence to zero")
	fmt.Fprintln(m.out, "• Only the identity multiplier converges on the golden ratio")
	fmt.Fprintln(m.out, "• Saturating arithmetic trades precision for predictability")
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Grow room philosophy:")
	fmt.Fprintln(m.out, "• Share memory by communicating, not the other way round")
	fmt.Fprintln(m.out, "• A panic in one worker must not silently rot the harvest")
	fmt.Fprintln(m.out, "• Measure before you optimize; the sweep is your hygrometer")
}
