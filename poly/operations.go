package poly

import (
	"math/big"

	"github.com/bigpoly/bigpoly/utils"
)

// Add returns a new polynomial equal to a + b. Neither operand is modified.
//
// Powers up to min(deg(a), deg(b)) are summed pairwise; higher powers are
// copied from the operand of larger degree (a on ties), the other operand
// contributing an implicit zero. The result has degree max(deg(a), deg(b)).
func Add(a, b *Polynomial) *Polynomial {

	if a == nil || b == nil {
		panic("cannot Add: nil operand")
	}

	minDeg := utils.Min(a.degree, b.degree)

	longer := a
	if b.degree > a.degree {
		longer = b
	}

	// Built from the constant term up, then reversed into storage order.
	coeffs := make([]*big.Int, 0, longer.degree+1)

	for k := 0; k <= minDeg; k++ {
		coeffs = append(coeffs, new(big.Int).Add(a.at(k), b.at(k)))
	}

	for k := minDeg + 1; k <= longer.degree; k++ {
		coeffs = append(coeffs, new(big.Int).Set(longer.at(k)))
	}

	utils.ReverseSliceInPlace(coeffs)

	return &Polynomial{degree: longer.degree, coeffs: coeffs}
}
