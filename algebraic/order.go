package algebraic

// Copyright (c) 2025 Colin McRae

import (
	"math/big"

	"github.com/predrag3141/algebraic/util"
)

// Cmp returns -1, 0 or 1 as x is less than, equal to or greater than y. It refines
// x and y as needed, which changes their intervals but not their values.
//
// Two roots of the same canonical polynomial are equal when the tight interval of
// one lies within the wide bounds of the other. Otherwise both are refined until
// their intervals are disjoint; roots of distinct irreducible polynomials are
// never equal, so this terminates.
func (x *Real) Cmp(y *Real) int {
	switch {
	case (x.rat != nil) && (y.rat != nil):
		return x.rat.Cmp(y.rat)
	case x.rat != nil:
		return -y.root.cmpRat(x.rat)
	case y.rat != nil:
		return x.root.cmpRat(y.rat)
	}
	a, b := x.root, y.root
	if a == b {
		return 0
	}
	samePoly := a.poly.Equals(b.poly)
	for {
		if samePoly && (a.within(b) || b.within(a)) {
			return 0
		}
		if a.tightB.Cmp(b.tightA) <= 0 {
			return -1
		}
		if b.tightB.Cmp(a.tightA) <= 0 {
			return 1
		}
		a.refine()
		b.refine()
	}
}

// CmpRat returns -1, 0 or 1 as x is less than, equal to or greater than q. It may
// refine x.
func (x *Real) CmpRat(q *big.Rat) int {
	if x.rat != nil {
		return x.rat.Cmp(q)
	}
	return x.root.cmpRat(q)
}

// Sign returns -1, 0 or 1 as x is negative, zero or positive. It may refine x so
// that its interval does not contain 0 in its interior.
func (x *Real) Sign() int {
	return x.CmpRat(new(big.Rat))
}

// IsZero returns whether x is 0
func (x *Real) IsZero() bool {
	return (x.rat != nil) && (x.rat.Sign() == 0)
}

// cmpRat compares the root with q. When q lies inside the tight interval, the
// sign of the polynomial at q decides the comparison and q replaces one of the
// tight bounds.
func (r *RealRoot) cmpRat(q *big.Rat) int {
	if q.Cmp(r.tightA) <= 0 {
		return 1
	}
	if r.tightB.Cmp(q) <= 0 {
		return -1
	}
	sign := r.poly.SignAt(q)
	util.Assert(sign != 0, "RealRoot-cmpRat", "irreducible %s vanishes at %s", r.poly, q.RatString())
	if (sign > 0) == r.increasing {
		r.tightB = new(big.Rat).Set(q)
		return -1
	}
	r.tightA = new(big.Rat).Set(q)
	return 1
}

// within returns whether the tight interval of r lies within the wide bounds of
// s. When r and s share a polynomial, this means they are the same root.
func (r *RealRoot) within(s *RealRoot) bool {
	return (s.wideA.CmpRat(r.tightA) <= 0) && (s.wideB.CmpRat(r.tightB) >= 0)
}
