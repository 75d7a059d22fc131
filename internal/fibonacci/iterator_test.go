package fibonacci

import (
	"testing"

	"github.com/plantmath/strainfib/internal/strain"
)

func TestBoundedIteratorPrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		strain string
		iter   *BoundedIterator
		prefix []uint64
	}{
		{"hybrid", NewBoundedIterator(strain.Hybrid), []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}},
		{"sativa", NewBoundedIterator(strain.Sativa), []uint64{0, 1, 1, 2, 3, 5, 9, 16, 29, 53}},
		{"indica", NewBoundedIterator(strain.Indica), []uint64{0, 1, 0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.strain, func(t *testing.T) {
			t.Parallel()
			for i, want := range tc.prefix {
				v, ok := tc.iter.Next()
				if !ok {
					t.Fatalf("Next() stopped at element %d", i)
				}
				if v.Uint64() != want {
					t.Errorf("element %d = %s, want %d", i, v, want)
				}
			}
		})
	}
}

func TestBoundedIteratorCountLimit(t *testing.T) {
	t.Parallel()

	// None of the built-in strains reach the magnitude cutoff within the
	// term budget, so each iterator yields exactly the maximum count.
	for _, s := range []strain.Strain{strain.Sativa, strain.Indica, strain.Hybrid} {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()
			it := NewBoundedIterator(s)
			count := 0
			for {
				_, ok := it.Next()
				if !ok {
					break
				}
				count++
				if count > MaxIteratorTerms+1 {
					t.Fatal("iterator failed to terminate")
				}
			}
			if count != MaxIteratorTerms {
				t.Errorf("yielded %d elements, want %d", count, MaxIteratorTerms)
			}
		})
	}
}

func TestBoundedIteratorMagnitudeLimit(t *testing.T) {
	t.Parallel()

	// A huge multiplier saturates within a few steps: 0, 1, then 1e30, after
	// which the state clamps to the 128-bit ceiling and exceeds the half-max
	// cutoff.
	it := NewBoundedDistortedIterator(1e30)
	count := 0
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if v.Cmp(halfMaxUint128) > 0 {
			t.Errorf("element %d = %s exceeds the magnitude cutoff", count, v)
		}
		count++
		if count > MaxIteratorTerms {
			t.Fatal("iterator failed to terminate")
		}
	}
	if count != 3 {
		t.Errorf("yielded %d elements, want 3", count)
	}
}

func TestBoundedIteratorExhaustionIsSticky(t *testing.T) {
	t.Parallel()

	it := NewBoundedDistortedIterator(1e30)
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatal("Next() yielded after exhaustion")
		}
	}
}

func TestBoundedIteratorCollect(t *testing.T) {
	t.Parallel()

	t.Run("positive limit", func(t *testing.T) {
		t.Parallel()
		values := NewBoundedIterator(strain.Hybrid).Collect(5)
		if len(values) != 5 {
			t.Fatalf("len = %d, want 5", len(values))
		}
		want := []uint64{0, 1, 1, 2, 3}
		for i, v := range values {
			if v.Uint64() != want[i] {
				t.Errorf("values[%d] = %s, want %d", i, v, want[i])
			}
		}
	})

	t.Run("negative limit drains the iterator", func(t *testing.T) {
		t.Parallel()
		values := NewBoundedIterator(strain.Hybrid).Collect(-1)
		if len(values) != MaxIteratorTerms {
			t.Errorf("len = %d, want %d", len(values), MaxIteratorTerms)
		}
	})
}
