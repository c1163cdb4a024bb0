// Package realroots isolates the real roots of squarefree integer polynomials in
// rational intervals, refines the intervals, and merges the roots of two
// polynomials into a single ordered sequence.
package realroots

// Copyright (c) 2025 Colin McRae

import (
	"math/big"

	"github.com/predrag3141/algebraic/util"
)

// Bound is a rational number or one of -inf, +inf. The zero value is the finite
// bound 0.
type Bound struct {
	inf int      // -1 for -inf, 1 for +inf, 0 for a finite bound
	val *big.Rat // nil when inf != 0
}

// NegInf returns -inf
func NegInf() Bound {
	return Bound{inf: -1}
}

// PosInf returns +inf
func PosInf() Bound {
	return Bound{inf: 1}
}

// Finite returns the finite bound x, which it copies
func Finite(x *big.Rat) Bound {
	return Bound{val: new(big.Rat).Set(x)}
}

// IsFinite returns whether b is neither -inf nor +inf
func (b Bound) IsFinite() bool {
	return b.inf == 0
}

// IsNegInf returns whether b is -inf
func (b Bound) IsNegInf() bool {
	return b.inf < 0
}

// IsPosInf returns whether b is +inf
func (b Bound) IsPosInf() bool {
	return b.inf > 0
}

// Value returns a copy of a finite bound, or nil for an infinite one
func (b Bound) Value() *big.Rat {
	if b.inf != 0 {
		return nil
	}
	if b.val == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(b.val)
}

// Cmp returns -1, 0 or 1 as b is less than, equal to or greater than c. The
// infinities compare equal to themselves.
func (b Bound) Cmp(c Bound) int {
	if (b.inf != 0) || (c.inf != 0) {
		switch {
		case b.inf < c.inf:
			return -1
		case b.inf > c.inf:
			return 1
		}
		if b.inf != 0 {
			return 0
		}
	}
	return b.Value().Cmp(c.Value())
}

// CmpRat returns -1, 0 or 1 as b is less than, equal to or greater than x
func (b Bound) CmpRat(x *big.Rat) int {
	if b.inf != 0 {
		return b.inf
	}
	return b.Value().Cmp(x)
}

// Neg returns -b
func (b Bound) Neg() Bound {
	if b.inf != 0 {
		return Bound{inf: -b.inf}
	}
	return Bound{val: new(big.Rat).Neg(b.Value())}
}

// Add returns b + c. The sum of -inf and +inf is undefined and panics.
func (b Bound) Add(c Bound) Bound {
	util.Assert(b.inf*c.inf >= 0, "Bound-Add", "-inf + inf is undefined")
	switch {
	case b.inf != 0:
		return b
	case c.inf != 0:
		return c
	}
	return Bound{val: new(big.Rat).Add(b.Value(), c.Value())}
}

// Invert returns 1/b for a non-negative b, where 1/0 = +inf and 1/+inf = 0
func (b Bound) Invert() Bound {
	util.Assert(b.inf >= 0, "Bound-Invert", "cannot invert -inf")
	switch {
	case b.inf > 0:
		return Bound{}
	case b.Value().Sign() == 0:
		return PosInf()
	}
	util.Assert(b.Value().Sign() > 0, "Bound-Invert", "cannot invert negative %s", b.Value().RatString())
	return Bound{val: new(big.Rat).Inv(b.Value())}
}

// String returns "-inf", "+inf" or the exact rational
func (b Bound) String() string {
	switch {
	case b.inf < 0:
		return "-inf"
	case b.inf > 0:
		return "+inf"
	}
	return b.Value().RatString()
}
