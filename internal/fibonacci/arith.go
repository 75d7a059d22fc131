// This file implements the saturating 128-bit arithmetic of the distorted
// recurrence. Values are held in *big.Int but clamped to the unsigned 128-bit
// domain: the pre-multiplier sum saturates instead of wrapping, and the
// multiplier is applied with truncation toward zero, never rounding.

package fibonacci

import (
	"math"
	"math/big"
)

// distortPrec is the big.Float mantissa precision used when applying the
// multiplier. A 128-bit sum times a 53-bit multiplier mantissa needs at most
// 181 bits, so 256 bits keeps the product exact before truncation.
const distortPrec = 256

var (
	// maxUint128 is 2^128 - 1, the ceiling of the value domain.
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	// halfMaxUint128 is the magnitude bound of the BoundedIterator.
	halfMaxUint128 = new(big.Int).Rsh(maxUint128, 1)
)

// addSaturating returns a+b clamped to 2^128-1. Neither operand is modified.
func addSaturating(a, b *big.Int) *big.Int {
	sum := new(big.Int).Add(a, b)
	if sum.Cmp(maxUint128) > 0 {
		sum.Set(maxUint128)
	}
	return sum
}

// distort computes floor(multiplier * sum) clamped into [0, 2^128-1].
// The product is formed exactly and truncated toward zero, so a multiplier of
// exactly 1.0 is the identity and the distorted recurrence reduces to the
// canonical Fibonacci recurrence.
func distort(sum *big.Int, multiplier float64) *big.Int {
	switch {
	case math.IsNaN(multiplier) || multiplier <= 0:
		return new(big.Int)
	case math.IsInf(multiplier, 1):
		if sum.Sign() == 0 {
			return new(big.Int)
		}
		return new(big.Int).Set(maxUint128)
	}

	product := new(big.Float).SetPrec(distortPrec).SetInt(sum)
	product.Mul(product, new(big.Float).SetPrec(distortPrec).SetFloat64(multiplier))

	result, _ := product.Int(nil)
	if result.Cmp(maxUint128) > 0 {
		result.Set(maxUint128)
	}
	return result
}
