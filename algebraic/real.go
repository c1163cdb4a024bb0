// Package algebraic represents real and complex algebraic numbers exactly. An
// irrational real is the unique root of an irreducible integer polynomial in a
// rational interval, and a non-real complex number is the unique root of one in a
// rational box. Intervals and boxes shrink on demand, so comparisons and
// arithmetic are exact. Values are not safe for concurrent use: comparing or
// combining numbers refines them in place, though it never changes their values.
package algebraic

// Copyright (c) 2025 Colin McRae

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/predrag3141/algebraic/bigpoly"
	"github.com/predrag3141/algebraic/realroots"
	"github.com/predrag3141/algebraic/util"
)

var (
	// ErrDivideByZero is wrapped by operations that invert zero
	ErrDivideByZero = errors.New("division by zero")

	// ErrUnsupported is wrapped by complex operations not yet implemented for
	// non-real operands
	ErrUnsupported = errors.New("operation not supported for non-real complex numbers")
)

// RealRoot is the unique root of poly in the open interval (tightA, tightB).
// The tight interval shrinks as the root is refined. The wide bounds never change;
// poly has no other root between them, so any interval inside them holding a root
// of poly holds this one.
type RealRoot struct {
	poly       *bigpoly.Poly // canonical and irreducible, of degree at least 2
	tightA     *big.Rat
	tightB     *big.Rat
	wideA      realroots.Bound
	wideB      realroots.Bound
	increasing bool // poly(tightA) < 0 < poly(tightB)
}

// Real is a real algebraic number: a rational or an irrational RealRoot
type Real struct {
	rat  *big.Rat
	root *RealRoot
}

// NewRational returns the real number x, which it copies
func NewRational(x *big.Rat) *Real {
	return &Real{rat: new(big.Rat).Set(x)}
}

// NewInt64 returns the real number num/den. den must not be zero.
func NewInt64(num, den int64) *Real {
	return &Real{rat: big.NewRat(num, den)}
}

// newRealRoot returns the root of poly in (tightA, tightB), computing the
// direction from the sign of poly at tightA
func newRealRoot(poly *bigpoly.Poly, tightA, tightB *big.Rat, wideA, wideB realroots.Bound) *Real {
	return &Real{root: &RealRoot{
		poly:       poly,
		tightA:     tightA,
		tightB:     tightB,
		wideA:      wideA,
		wideB:      wideB,
		increasing: poly.SignAt(tightA) < 0,
	}}
}

// RealRoots returns the real roots of a non-zero p in increasing order, each
// repeated according to its multiplicity
func RealRoots(p *bigpoly.Poly, caller string) ([]*Real, error) {
	caller = fmt.Sprintf("%s-RealRoots", caller)
	factorization, err := p.Factor(caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not factor %s: %q", caller, p, err.Error())
	}
	var retVal []*Real
	for _, factor := range factorization.Factors {
		roots, err := realRootsOfIrreducible(factor.Poly, caller)
		if err != nil {
			return nil, fmt.Errorf("%s: could not isolate roots of %s: %q", caller, factor.Poly, err.Error())
		}
		for _, root := range roots {
			for i := 0; i < factor.Multiplicity; i++ {
				retVal = append(retVal, root.Clone())
			}
		}
	}
	SortReals(retVal)
	return retVal, nil
}

// realRootsOfIrreducible returns the real roots of a canonical irreducible p in
// increasing order. The wide bounds of each root are the adjacent endpoints of
// its neighbours' isolating intervals.
func realRootsOfIrreducible(p *bigpoly.Poly, caller string) ([]*Real, error) {
	caller = fmt.Sprintf("%s-realRootsOfIrreducible", caller)
	if p.Degree() == 1 {
		root := new(big.Rat).SetFrac(p.Coeff(0), p.Coeff(1))
		return []*Real{{rat: root.Neg(root)}}, nil
	}
	rootSet, err := realroots.Isolate(p, nil, nil, false, false, caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not isolate roots of %s: %q", caller, p, err.Error())
	}
	retVal := make([]*Real, rootSet.Len())
	for i, entry := range rootSet.Entries {
		util.Assert(!entry.IsExact(), caller, "irreducible %s has the rational root %s", p, entry.Point().RatString())
		wideA, wideB := realroots.NegInf(), realroots.PosInf()
		if i > 0 {
			wideA = realroots.Finite(rootSet.Entries[i-1].Upper())
		}
		if i < rootSet.Len()-1 {
			wideB = realroots.Finite(rootSet.Entries[i+1].Lower())
		}
		retVal[i] = newRealRoot(p, entry.Lower(), entry.Upper(), wideA, wideB)
	}
	return retVal, nil
}

// IsRational returns whether x is rational
func (x *Real) IsRational() bool {
	return x.rat != nil
}

// Rational returns a copy of x if x is rational, or nil
func (x *Real) Rational() *big.Rat {
	if x.rat == nil {
		return nil
	}
	return new(big.Rat).Set(x.rat)
}

// MinimalPoly returns the canonical irreducible polynomial with root x
func (x *Real) MinimalPoly() *bigpoly.Poly {
	if x.rat != nil {
		return bigpoly.FromRationalRoots(x.rat)
	}
	return x.root.poly
}

// Degree returns the degree of x over the rationals
func (x *Real) Degree() int {
	return x.MinimalPoly().Degree()
}

// Interval returns copies of the current bounds on x, which are equal when x is
// rational
func (x *Real) Interval() (*big.Rat, *big.Rat) {
	return x.lower(), x.upper()
}

// lower and upper return copies of the tight bounds, or of x for a rational
func (x *Real) lower() *big.Rat {
	if x.rat != nil {
		return new(big.Rat).Set(x.rat)
	}
	return new(big.Rat).Set(x.root.tightA)
}

func (x *Real) upper() *big.Rat {
	if x.rat != nil {
		return new(big.Rat).Set(x.rat)
	}
	return new(big.Rat).Set(x.root.tightB)
}

// Width returns the width of the interval holding x, which is 0 for a rational
func (x *Real) Width() *big.Rat {
	if x.rat != nil {
		return new(big.Rat)
	}
	return new(big.Rat).Sub(x.root.tightB, x.root.tightA)
}

// Refine halves the interval holding x. Rationals are unaffected.
func (x *Real) Refine() {
	if x.root != nil {
		x.root.refine()
	}
}

// RefineToWidth refines x until the width of its interval is less than w
func (x *Real) RefineToWidth(w *big.Rat) {
	for x.Width().Cmp(w) >= 0 {
		x.Refine()
	}
}

func (r *RealRoot) refine() {
	m := util.Midpoint(r.tightA, r.tightB)
	sign := r.poly.SignAt(m)
	util.Assert(sign != 0, "RealRoot-refine", "irreducible %s vanishes at %s", r.poly, m.RatString())
	if (sign > 0) == r.increasing {
		r.tightB = m
	} else {
		r.tightA = m
	}
}

// Clone returns an independent copy of x
func (x *Real) Clone() *Real {
	if x.rat != nil {
		return NewRational(x.rat)
	}
	return &Real{root: &RealRoot{
		poly:       x.root.poly,
		tightA:     new(big.Rat).Set(x.root.tightA),
		tightB:     new(big.Rat).Set(x.root.tightB),
		wideA:      x.root.wideA,
		wideB:      x.root.wideB,
		increasing: x.root.increasing,
	}}
}

// CheckInvariants returns an error describing the first broken property of x, if
// any
func (x *Real) CheckInvariants(caller string) error {
	caller = fmt.Sprintf("%s-CheckInvariants", caller)
	if x.rat != nil {
		if x.root != nil {
			return fmt.Errorf("%s: both rational and irrational", caller)
		}
		return nil
	}
	r := x.root
	if r.tightA.Cmp(r.tightB) >= 0 {
		return fmt.Errorf("%s: tight bounds %s, %s are out of order", caller, r.tightA.RatString(), r.tightB.RatString())
	}
	if r.wideA.Cmp(r.wideB) >= 0 {
		return fmt.Errorf("%s: wide bounds %s, %s are out of order", caller, r.wideA, r.wideB)
	}
	if (r.wideA.CmpRat(r.tightA) > 0) || (r.wideB.CmpRat(r.tightB) < 0) {
		return fmt.Errorf("%s: tight bounds are not within wide bounds", caller)
	}
	if !r.poly.IsCanonical() {
		return fmt.Errorf("%s: %s is not canonical", caller, r.poly)
	}
	if r.poly.Degree() < 2 {
		return fmt.Errorf("%s: %s has degree less than 2", caller, r.poly)
	}
	if !r.poly.IsIrreducible() {
		return fmt.Errorf("%s: %s is reducible", caller, r.poly)
	}
	signA, signB := r.poly.SignAt(r.tightA), r.poly.SignAt(r.tightB)
	if (signA == 0) || (signA == signB) || (r.increasing != (signA < 0)) {
		return fmt.Errorf("%s: %s has signs %d, %d at the tight bounds", caller, r.poly, signA, signB)
	}

	// Exactly one root between the wide bounds
	var lo, hi *big.Rat
	if r.wideA.IsFinite() {
		lo = r.wideA.Value()
	}
	if r.wideB.IsFinite() {
		hi = r.wideB.Value()
	}
	rootSet, err := realroots.Isolate(r.poly, lo, hi, false, false, caller)
	if err != nil {
		return fmt.Errorf("%s: could not isolate roots between the wide bounds: %q", caller, err.Error())
	}
	if rootSet.Len() != 1 {
		return fmt.Errorf("%s: %d roots between the wide bounds", caller, rootSet.Len())
	}
	return nil
}

// SortReals sorts xs in increasing order, refining them as needed
func SortReals(xs []*Real) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].Cmp(xs[j]) < 0
	})
}
