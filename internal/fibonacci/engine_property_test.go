package fibonacci

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRecurrenceProperty checks the defining recurrence for arbitrary
// multipliers: a(n) = distort(a(n-1) + a(n-2), m) for every n >= 2.
func TestRecurrenceProperty(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60

	properties := gopter.NewProperties(parameters)

	properties.Property("distorted recurrence holds", prop.ForAll(
		func(multiplier float64, n uint64) bool {
			engine := NewDistorted(multiplier, "property")
			prev2, err := engine.Compute(n - 2)
			if err != nil {
				return false
			}
			prev1, err := engine.Compute(n - 1)
			if err != nil {
				return false
			}
			got, err := engine.Compute(n)
			if err != nil {
				return false
			}
			want := distort(addSaturating(prev1, prev2), multiplier)
			return got.Cmp(want) == 0
		},
		gen.Float64Range(0.1, 2.0),
		gen.UInt64Range(2, 60),
	))

	properties.Property("identity multiplier reproduces canonical Fibonacci", prop.ForAll(
		func(n uint64) bool {
			got, err := NewDistorted(1.0, "identity").Compute(n)
			if err != nil {
				return false
			}
			return got.Cmp(iterativeFib(n)) == 0
		},
		gen.UInt64Range(0, MaxSafeIndex),
	))

	properties.Property("sequence agrees with element-wise computation", prop.ForAll(
		func(multiplier float64, count int) bool {
			engine := NewDistorted(multiplier, "property")
			seq, err := engine.Sequence(count)
			if err != nil || len(seq) != count {
				return false
			}
			oracle := NewDistorted(multiplier, "property")
			for i, v := range seq {
				want, err := oracle.Compute(uint64(i))
				if err != nil || v.Cmp(want) != 0 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0.1, 1.5),
		gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}

// iterativeFib is an independent oracle for the undistorted sequence.
func iterativeFib(n uint64) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
