// Package poly implements single-variable polynomials with arbitrary precision integer coefficients.
package poly

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/bigpoly/bigpoly/utils/bignum"
	"github.com/google/go-cmp/cmp"
)

// Polynomial is a polynomial c_d * x^d + ... + c_1 * x + c_0 with *big.Int coefficients.
//
// Coefficients are stored from the highest power down to the constant term:
// the coefficient of x^k lives at position degree-k. Leading zero coefficients
// are never trimmed, the degree is the one given at construction.
//
// A Polynomial owns its coefficients: values passed in are copied and values
// returned are copies, so no *big.Int is shared with the caller.
type Polynomial struct {
	degree int
	coeffs []*big.Int
}

// New creates a new polynomial from coefficients given in storage order,
// i.e. coeffs[0] is the coefficient of the highest power and coeffs[len(coeffs)-1]
// the constant term. The degree is len(coeffs)-1.
// Returns ErrInvalidArgument if coeffs is empty or contains a nil entry.
func New(coeffs []*big.Int) (*Polynomial, error) {

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot New: coefficients may not be empty: %w", ErrInvalidArgument)
	}

	c := make([]*big.Int, len(coeffs))
	for i := range coeffs {
		if coeffs[i] == nil {
			return nil, fmt.Errorf("cannot New: coefficient at position %d is nil: %w", i, ErrInvalidArgument)
		}
		c[i] = new(big.Int).Set(coeffs[i])
	}

	return &Polynomial{degree: len(c) - 1, coeffs: c}, nil
}

// NewWithDegree creates a new polynomial of the given degree whose degree+1
// coefficients are all zero. It is meant to be filled afterward with SetCoeff.
// Returns ErrInvalidArgument if degree is negative.
func NewWithDegree(degree int) (*Polynomial, error) {

	if degree < 0 {
		return nil, fmt.Errorf("cannot NewWithDegree: degree %d < 0: %w", degree, ErrInvalidArgument)
	}

	c := make([]*big.Int, degree+1)
	for i := range c {
		c[i] = new(big.Int)
	}

	return &Polynomial{degree: degree, coeffs: c}, nil
}

// NewFromStrings creates a new polynomial from coefficients, given in storage order,
// written as integer literals in the given base.
func NewFromStrings(base int, coeffs ...string) (*Polynomial, error) {

	c := make([]*big.Int, len(coeffs))

	var err error
	for i := range coeffs {
		if c[i], err = bignum.ParseInt(coeffs[i], base); err != nil {
			return nil, fmt.Errorf("cannot NewFromStrings: %w", err)
		}
	}

	return New(c)
}

// NewUniform creates a new polynomial of the given degree whose coefficients
// are sampled uniformly in [min, max) from the bytes of reader.
func NewUniform(reader io.Reader, degree int, min, max *big.Int) (p *Polynomial, err error) {

	if p, err = NewWithDegree(degree); err != nil {
		return nil, err
	}

	for i := range p.coeffs {
		if p.coeffs[i], err = bignum.RandInt(reader, min, max); err != nil {
			return nil, fmt.Errorf("cannot NewUniform: %w", err)
		}
	}

	return
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return p.degree
}

// Coeffs returns a copy of the coefficients in storage order, highest power first.
func (p *Polynomial) Coeffs() []*big.Int {
	c := make([]*big.Int, len(p.coeffs))
	for i := range p.coeffs {
		c[i] = new(big.Int).Set(p.coeffs[i])
	}
	return c
}

// Coeff returns a copy of the coefficient of x^k.
// Returns ErrIndexOutOfRange if k is not in [0, degree].
func (p *Polynomial) Coeff(k int) (*big.Int, error) {
	if err := p.checkPower(k); err != nil {
		return nil, fmt.Errorf("cannot Coeff: %w", err)
	}
	return new(big.Int).Set(p.at(k)), nil
}

// SetCoeff replaces the coefficient of x^k by a copy of value.
// The previous coefficient is dropped. Returns ErrIndexOutOfRange if k is
// not in [0, degree] and ErrInvalidArgument if value is nil, in which
// case the polynomial is left unchanged.
func (p *Polynomial) SetCoeff(value *big.Int, k int) error {

	if err := p.checkPower(k); err != nil {
		return fmt.Errorf("cannot SetCoeff: %w", err)
	}

	if value == nil {
		return fmt.Errorf("cannot SetCoeff: nil value: %w", ErrInvalidArgument)
	}

	p.coeffs[p.degree-k] = new(big.Int).Set(value)

	return nil
}

// Clone returns a deep copy of the polynomial.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{degree: p.degree, coeffs: p.Coeffs()}
}

// Equal returns true if the receiver and other have the same degree
// and the same coefficient at every power.
func (p *Polynomial) Equal(other *Polynomial) bool {
	return p.degree == other.degree && cmp.Equal(p.coeffs, other.coeffs, cmp.Comparer(func(a, b *big.Int) bool {
		return a.Cmp(b) == 0
	}))
}

// String renders the polynomial as "c_d*x^d + ... + c_1*x + c_0", zero terms
// included so that the degree can be read back from the output.
func (p *Polynomial) String() string {
	var sb strings.Builder
	for k := p.degree; k >= 0; k-- {
		if k != p.degree {
			sb.WriteString(" + ")
		}
		sb.WriteString(p.at(k).String())
		switch k {
		case 0:
		case 1:
			sb.WriteString("*x")
		default:
			fmt.Fprintf(&sb, "*x^%d", k)
		}
	}
	return sb.String()
}

// at returns the stored coefficient of x^k without copy.
func (p *Polynomial) at(k int) *big.Int {
	return p.coeffs[p.degree-k]
}

func (p *Polynomial) checkPower(k int) error {
	if k < 0 || k > p.degree {
		return fmt.Errorf("power %d not in [0, %d]: %w", k, p.degree, ErrIndexOutOfRange)
	}
	return nil
}
