// Package bignum implements arbitrary precision integer helpers on top of math/big.
package bignum

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrInvalidInt is returned when a string cannot be parsed as an integer
// or when a sampling interval is empty.
var ErrInvalidInt = errors.New("bignum: invalid integer")

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int or *big.Int.
// Strings are parsed with base 0, so prefixes such as "0x" are honored.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		if _, ok := y.SetString(x, 0); !ok {
			panic(fmt.Sprintf("cannot NewInt: invalid string %q", x))
		}
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Int, but is %T", x))
	}

	return
}

// ParseInt parses s in the given base and returns a new *big.Int.
func ParseInt(s string, base int) (*big.Int, error) {
	y, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("cannot ParseInt: %q in base %d: %w", s, base, ErrInvalidInt)
	}
	return y, nil
}

// RandInt samples an integer uniformly in [min, max) using the bytes of reader.
func RandInt(reader io.Reader, min, max *big.Int) (n *big.Int, err error) {

	width := new(big.Int).Sub(max, min)

	if width.Sign() <= 0 {
		return nil, fmt.Errorf("cannot RandInt: empty interval [%s, %s): %w", min, max, ErrInvalidInt)
	}

	if n, err = rand.Int(reader, width); err != nil {
		return nil, fmt.Errorf("cannot RandInt: %w", err)
	}

	return n.Add(n, min), nil
}
