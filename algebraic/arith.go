package algebraic

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/predrag3141/algebraic/bigpoly"
	"github.com/predrag3141/algebraic/realroots"
	"github.com/predrag3141/algebraic/util"
)

// Neg returns -x
func (x *Real) Neg() *Real {
	if x.rat != nil {
		return &Real{rat: new(big.Rat).Neg(x.rat)}
	}
	r := x.root
	poly, _ := r.poly.ComposeNeg().Canonical()
	return newRealRoot(
		poly,
		new(big.Rat).Neg(r.tightB), new(big.Rat).Neg(r.tightA),
		r.wideB.Neg(), r.wideA.Neg(),
	)
}

// Add returns x + y. It refines x and y as needed.
//
// A rational operand shifts the polynomial of the other. Otherwise x + y is a root
// of the polynomial whose roots are the sums of the roots of the minimal
// polynomials of x and y. Its real roots are candidates, and candidates outside
// the interval sum of x and y are discarded, refining everything that remains,
// until a single candidate is left.
func (x *Real) Add(y *Real) (*Real, error) {
	caller := "Real-Add"
	switch {
	case (x.rat != nil) && (y.rat != nil):
		return &Real{rat: new(big.Rat).Add(x.rat, y.rat)}, nil
	case x.rat != nil:
		return y.root.shift(x.rat), nil
	case y.rat != nil:
		return x.root.shift(y.rat), nil
	}
	sumPoly := bigpoly.RootSumPoly(x.root.poly, y.root.poly)
	candidates, err := realCandidates(sumPoly, caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not find the roots of %s: %q", caller, sumPoly, err.Error())
	}
	retVal, err := selectReal(candidates, []*Real{x, y}, func() (*big.Rat, *big.Rat) {
		lo, hi := x.lower(), x.upper()
		return lo.Add(lo, y.lower()), hi.Add(hi, y.upper())
	}, caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not select the sum from the roots of %s: %q", caller, sumPoly, err.Error())
	}
	return retVal, nil
}

// Sub returns x - y. It refines x and y as needed.
func (x *Real) Sub(y *Real) (*Real, error) {
	return x.Add(y.Neg())
}

// Mul returns x y. It refines x and y as needed.
//
// A rational operand scales the polynomial of the other. Otherwise negative
// operands are negated, so that the interval product of x and y is the product of
// their lower bounds and their upper bounds, and the product is selected from the
// roots of the polynomial whose roots are the products of the roots of the minimal
// polynomials of x and y, the way Add selects a sum.
func (x *Real) Mul(y *Real) (*Real, error) {
	caller := "Real-Mul"
	switch {
	case x.IsZero() || y.IsZero():
		return NewInt64(0, 1), nil
	case (x.rat != nil) && (y.rat != nil):
		return &Real{rat: new(big.Rat).Mul(x.rat, y.rat)}, nil
	case x.rat != nil:
		return y.root.scale(x.rat), nil
	case y.rat != nil:
		return x.root.scale(y.rat), nil
	}
	if x.Sign() < 0 {
		retVal, err := x.Neg().Mul(y)
		if err != nil {
			return nil, fmt.Errorf("%s: could not multiply -x by y: %w", caller, err)
		}
		return retVal.Neg(), nil
	}
	if y.Sign() < 0 {
		retVal, err := x.Mul(y.Neg())
		if err != nil {
			return nil, fmt.Errorf("%s: could not multiply x by -y: %w", caller, err)
		}
		return retVal.Neg(), nil
	}

	// Sign leaves the lower bounds of positive roots non-negative
	productPoly := bigpoly.RootProductPoly(x.root.poly, y.root.poly)
	candidates, err := realCandidates(productPoly, caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not find the roots of %s: %q", caller, productPoly, err.Error())
	}
	retVal, err := selectReal(candidates, []*Real{x, y}, func() (*big.Rat, *big.Rat) {
		lo, hi := x.lower(), x.upper()
		return lo.Mul(lo, y.lower()), hi.Mul(hi, y.upper())
	}, caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not select the product from the roots of %s: %q", caller, productPoly, err.Error())
	}
	return retVal, nil
}

// Inv returns 1/x, or an error wrapping ErrDivideByZero if x is 0. It refines x as
// needed.
func (x *Real) Inv() (*Real, error) {
	caller := "Real-Inv"
	if x.IsZero() {
		return nil, fmt.Errorf("%s: %w", caller, ErrDivideByZero)
	}
	if x.rat != nil {
		return &Real{rat: new(big.Rat).Inv(x.rat)}, nil
	}
	if x.Sign() < 0 {
		retVal, err := x.Neg().Inv()
		if err != nil {
			return nil, fmt.Errorf("%s: could not invert -x: %w", caller, err)
		}
		return retVal.Neg(), nil
	}
	r := x.root
	for r.tightA.Sign() <= 0 {
		r.refine()
	}

	// The only root of the reversed polynomial in (1/wideB, 1/wideA) is 1/x, where
	// 1/wideA is +inf unless wideA is positive
	poly, _ := r.poly.Reverse().Canonical()
	wideB := realroots.PosInf()
	if r.wideA.CmpRat(new(big.Rat)) > 0 {
		wideB = r.wideA.Invert()
	}
	return newRealRoot(
		poly,
		new(big.Rat).Inv(r.tightB), new(big.Rat).Inv(r.tightA),
		r.wideB.Invert(), wideB,
	), nil
}

// Div returns x/y, or an error wrapping ErrDivideByZero if y is 0. It refines x
// and y as needed.
func (x *Real) Div(y *Real) (*Real, error) {
	yInv, err := y.Inv()
	if err != nil {
		return nil, fmt.Errorf("Real-Div: %w", err)
	}
	return x.Mul(yInv)
}

// Pow returns x^n for n >= 0, by repeated squaring
func (x *Real) Pow(n int) (*Real, error) {
	util.Assert(n >= 0, "Real-Pow", "negative exponent %d", n)
	retVal, base := NewInt64(1, 1), x.Clone()
	for ; n > 0; n >>= 1 {
		var err error
		if n&1 == 1 {
			if retVal, err = retVal.Mul(base); err != nil {
				return nil, fmt.Errorf("Real-Pow: could not multiply: %q", err.Error())
			}
		}
		if n > 1 {
			if base, err = base.Mul(base); err != nil {
				return nil, fmt.Errorf("Real-Pow: could not square: %q", err.Error())
			}
		}
	}
	return retVal, nil
}

// shift returns the root plus q
func (r *RealRoot) shift(q *big.Rat) *Real {
	qBound := realroots.Finite(q)
	return newRealRoot(
		r.poly.ShiftRoots(q),
		new(big.Rat).Add(r.tightA, q), new(big.Rat).Add(r.tightB, q),
		r.wideA.Add(qBound), r.wideB.Add(qBound),
	)
}

// scale returns the root times a non-zero q
func (r *RealRoot) scale(q *big.Rat) *Real {
	tightA, tightB := new(big.Rat).Mul(r.tightA, q), new(big.Rat).Mul(r.tightB, q)
	wideA, wideB := scaleBound(r.wideA, q), scaleBound(r.wideB, q)
	if q.Sign() < 0 {
		tightA, tightB = tightB, tightA
		wideA, wideB = wideB, wideA
	}
	return newRealRoot(r.poly.ScaleRoots(q), tightA, tightB, wideA, wideB)
}

// scaleBound returns b times a non-zero q
func scaleBound(b realroots.Bound, q *big.Rat) realroots.Bound {
	if b.IsFinite() {
		return realroots.Finite(new(big.Rat).Mul(b.Value(), q))
	}
	if b.IsPosInf() == (q.Sign() > 0) {
		return realroots.PosInf()
	}
	return realroots.NegInf()
}

// realCandidates returns the real roots of the irreducible factors of p
func realCandidates(p *bigpoly.Poly, caller string) ([]*Real, error) {
	caller = fmt.Sprintf("%s-realCandidates", caller)
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
		retVal = append(retVal, roots...)
	}
	return retVal, nil
}

// selectReal returns the one candidate that can lie in the open interval returned
// by bounds. Each round discards the candidates outside the interval, then refines
// the operands, which shrinks the interval, and the remaining candidates.
func selectReal(candidates, operands []*Real, bounds func() (*big.Rat, *big.Rat), caller string) (*Real, error) {
	caller = fmt.Sprintf("%s-selectReal", caller)
	for round := 0; ; round++ {
		lo, hi := bounds()
		survivors := make([]*Real, 0, len(candidates))
		for _, candidate := range candidates {
			if util.OpenIntervalsOverlap(candidate.lower(), candidate.upper(), lo, hi) {
				survivors = append(survivors, candidate)
			}
		}
		slog.Default().Debug("algebraic: filtered candidates",
			slog.String("caller", caller), slog.Int("round", round),
			slog.Int("before", len(candidates)), slog.Int("after", len(survivors)),
		)
		switch len(survivors) {
		case 0:
			return nil, fmt.Errorf("%s: no candidate lies in (%s, %s)", caller, lo.RatString(), hi.RatString())
		case 1:
			return survivors[0], nil
		}
		candidates = survivors
		for _, operand := range operands {
			operand.Refine()
		}
		for _, candidate := range candidates {
			candidate.Refine()
		}
	}
}
