// This file defines the bounded lazy sequence over distorted Fibonacci terms.
// Unlike Engine, which memoizes a recursive computation, the iterator advances
// a (current, next) pair iteratively with no cache and no error path.

package fibonacci

import (
	"math/big"

	"github.com/plantmath/strainfib/internal/strain"
)

// BoundedIterator produces a lazy, finite, non-restartable sequence of
// distorted Fibonacci terms starting from (0, 1), advancing with the same
// saturating-sum-then-multiply-then-truncate rule as Engine.Compute.
//
// The sequence ends once either MaxIteratorTerms elements have been produced
// or the about-to-be-emitted value exceeds half of 2^128-1, whichever comes
// first. This is a safety bound against unbounded growth under a multiplier
// greater than 1, not a precision guarantee. A finished iterator cannot be
// restarted; construct a new one instead.
type BoundedIterator struct {
	current    *big.Int
	next       *big.Int
	multiplier float64
	produced   int
}

// NewBoundedIterator creates an iterator parameterized by a strain profile.
//
// Parameters:
//   - s: The strain providing the multiplier.
//
// Returns:
//   - *BoundedIterator: An iterator positioned before the first term.
func NewBoundedIterator(s strain.Strain) *BoundedIterator {
	return NewBoundedDistortedIterator(s.Multiplier())
}

// NewBoundedDistortedIterator creates an iterator with an explicit multiplier.
//
// Parameters:
//   - multiplier: The distortion factor applied while advancing.
//
// Returns:
//   - *BoundedIterator: An iterator positioned before the first term.
func NewBoundedDistortedIterator(multiplier float64) *BoundedIterator {
	return &BoundedIterator{
		current:    new(big.Int),
		next:       big.NewInt(1),
		multiplier: multiplier,
	}
}

// Next produces the next term, or reports the end of the sequence.
//
// Returns:
//   - *big.Int: The next term; the caller owns the value.
//   - bool: false once either safety bound has been reached.
func (it *BoundedIterator) Next() (*big.Int, bool) {
	result := it.current
	advanced := distort(addSaturating(it.current, it.next), it.multiplier)
	it.current = it.next
	it.next = advanced
	it.produced++

	if it.produced > MaxIteratorTerms || result.Cmp(halfMaxUint128) > 0 {
		return nil, false
	}
	return result, true
}

// Collect drains up to limit remaining elements into a slice. It is a
// convenience for display code; passing a negative limit drains the iterator
// to its safety bounds.
//
// Parameters:
//   - limit: The maximum number of elements to collect (negative for all).
//
// Returns:
//   - []*big.Int: The collected terms in order.
func (it *BoundedIterator) Collect(limit int) []*big.Int {
	var terms []*big.Int
	for limit < 0 || len(terms) < limit {
		v, ok := it.Next()
		if !ok {
			break
		}
		terms = append(terms, v)
	}
	return terms
}
