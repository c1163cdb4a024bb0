package algebraic

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/predrag3141/algebraic/bigpoly"
	"github.com/predrag3141/algebraic/complexroots"
	"github.com/predrag3141/algebraic/util"
)

// ComplexRoot is the unique root of poly in box, which lies entirely above or
// below the real axis. box shrinks as the root is refined; wide is the box in which
// the root was isolated and never changes.
type ComplexRoot struct {
	poly *bigpoly.Poly // canonical and irreducible, of degree at least 2
	box  complexroots.Box
	wide complexroots.Box
}

// Complex is a complex algebraic number: a Real or a non-real ComplexRoot
type Complex struct {
	real *Real
	root *ComplexRoot
}

// NewComplex returns the complex number x, which it copies
func NewComplex(x *Real) *Complex {
	return &Complex{real: x.Clone()}
}

// ComplexRoots returns the complex roots of a non-zero p, each repeated according
// to its multiplicity. For each irreducible factor, the real roots come first in
// increasing order, followed by each root in the upper half plane and its
// conjugate.
func ComplexRoots(p *bigpoly.Poly, caller string) ([]*Complex, error) {
	caller = fmt.Sprintf("%s-ComplexRoots", caller)
	factorization, err := p.Factor(caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not factor %s: %q", caller, p, err.Error())
	}
	var retVal []*Complex
	for _, factor := range factorization.Factors {
		roots, err := complexRootsOfIrreducible(factor.Poly, caller)
		if err != nil {
			return nil, fmt.Errorf("%s: could not isolate roots of %s: %q", caller, factor.Poly, err.Error())
		}
		for _, root := range roots {
			for i := 0; i < factor.Multiplicity; i++ {
				retVal = append(retVal, root.Clone())
			}
		}
	}
	return retVal, nil
}

// complexRootsOfIrreducible returns the roots of a canonical irreducible p
func complexRootsOfIrreducible(p *bigpoly.Poly, caller string) ([]*Complex, error) {
	caller = fmt.Sprintf("%s-complexRootsOfIrreducible", caller)
	reals, err := realRootsOfIrreducible(p, caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not isolate real roots of %s: %q", caller, p, err.Error())
	}
	retVal := make([]*Complex, 0, p.Degree())
	for _, x := range reals {
		retVal = append(retVal, &Complex{real: x})
	}
	numNonReal := p.Degree() - len(reals)
	util.Assert(numNonReal%2 == 0, caller, "%s has an odd number %d of non-real roots", p, numNonReal)
	boxes, err := complexroots.IsolateUpperHalfPlane(p, numNonReal/2, caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not isolate non-real roots of %s: %q", caller, p, err.Error())
	}
	for _, box := range boxes {
		upper := &ComplexRoot{poly: p, box: box, wide: box.Clone()}
		retVal = append(retVal, &Complex{root: upper}, &Complex{root: upper.conjugate()})
	}
	return retVal, nil
}

// IsReal returns whether z is real
func (z *Complex) IsReal() bool {
	return z.real != nil
}

// AsReal returns a copy of z as a Real if z is real, or nil
func (z *Complex) AsReal() *Real {
	if z.real == nil {
		return nil
	}
	return z.real.Clone()
}

// MinimalPoly returns the canonical irreducible polynomial with root z
func (z *Complex) MinimalPoly() *bigpoly.Poly {
	if z.real != nil {
		return z.real.MinimalPoly()
	}
	return z.root.poly
}

// Box returns a copy of the current box holding z. The box of a real number has
// zero height, and zero width if the number is rational.
func (z *Complex) Box() complexroots.Box {
	if z.real != nil {
		return complexroots.Box{A: z.real.lower(), B: z.real.upper(), C: new(big.Rat), D: new(big.Rat)}
	}
	return z.root.box.Clone()
}

// Refine shrinks the interval or box holding z
func (z *Complex) Refine() error {
	if z.real != nil {
		z.real.Refine()
		return nil
	}
	box, err := complexroots.RefineBox(z.root.poly, z.root.box, "Complex-Refine")
	if err != nil {
		return fmt.Errorf("Complex-Refine: could not refine %s: %q", z.root.box, err.Error())
	}
	z.root.box = box
	return nil
}

// Clone returns an independent copy of z
func (z *Complex) Clone() *Complex {
	if z.real != nil {
		return &Complex{real: z.real.Clone()}
	}
	return &Complex{root: &ComplexRoot{poly: z.root.poly, box: z.root.box.Clone(), wide: z.root.wide.Clone()}}
}

// Equal returns whether z equals w, refining both as needed. Non-real roots of
// the same polynomial are equal when the box of one lies within the wide box of
// the other, and distinct once their boxes are disjoint.
func (z *Complex) Equal(w *Complex) (bool, error) {
	switch {
	case (z.real != nil) && (w.real != nil):
		return z.real.Cmp(w.real) == 0, nil
	case (z.real != nil) || (w.real != nil):
		return false, nil
	case !z.root.poly.Equals(w.root.poly):
		return false, nil
	}
	for {
		if boxWithin(z.root.box, w.root.wide) || boxWithin(w.root.box, z.root.wide) {
			return true, nil
		}
		if !boxesOverlap(z.root.box, w.root.box) {
			return false, nil
		}
		if err := z.Refine(); err != nil {
			return false, fmt.Errorf("Complex-Equal: %q", err.Error())
		}
		if err := w.Refine(); err != nil {
			return false, fmt.Errorf("Complex-Equal: %q", err.Error())
		}
	}
}

// Neg returns -z
func (z *Complex) Neg() *Complex {
	if z.real != nil {
		return &Complex{real: z.real.Neg()}
	}
	poly, _ := z.root.poly.ComposeNeg().Canonical()
	return &Complex{root: &ComplexRoot{poly: poly, box: negBox(z.root.box), wide: negBox(z.root.wide)}}
}

// Conjugate returns the complex conjugate of z
func (z *Complex) Conjugate() *Complex {
	if z.real != nil {
		return &Complex{real: z.real.Clone()}
	}
	return &Complex{root: z.root.conjugate()}
}

func (r *ComplexRoot) conjugate() *ComplexRoot {
	return &ComplexRoot{poly: r.poly, box: conjugateBox(r.box), wide: conjugateBox(r.wide)}
}

// Add returns z + w. It refines z and w as needed.
//
// Sums of reals and rational shifts are exact. Otherwise the candidates are the
// roots of the polynomial whose roots are the sums of the roots of the minimal
// polynomials of z and w, and those whose boxes miss the box sum of z and w are
// discarded, refining everything that remains, until a single candidate is left.
func (z *Complex) Add(w *Complex) (*Complex, error) {
	caller := "Complex-Add"
	switch {
	case (z.real != nil) && (w.real != nil):
		sum, err := z.real.Add(w.real)
		if err != nil {
			return nil, fmt.Errorf("%s: could not add reals: %q", caller, err.Error())
		}
		return &Complex{real: sum}, nil
	case (z.real != nil) && z.real.IsRational():
		return w.root.shift(z.real.rat), nil
	case (w.real != nil) && w.real.IsRational():
		return z.root.shift(w.real.rat), nil
	}
	sumPoly := bigpoly.RootSumPoly(z.MinimalPoly(), w.MinimalPoly())
	candidates, err := ComplexRoots(sumPoly, caller)
	if err != nil {
		return nil, fmt.Errorf("%s: could not find the roots of %s: %q", caller, sumPoly, err.Error())
	}
	for round := 0; ; round++ {
		zBox, wBox := z.Box(), w.Box()
		sumBox := complexroots.Box{
			A: new(big.Rat).Add(zBox.A, wBox.A),
			B: new(big.Rat).Add(zBox.B, wBox.B),
			C: new(big.Rat).Add(zBox.C, wBox.C),
			D: new(big.Rat).Add(zBox.D, wBox.D),
		}
		survivors := make([]*Complex, 0, len(candidates))
		for _, candidate := range candidates {
			if boxesOverlap(candidate.Box(), sumBox) {
				survivors = append(survivors, candidate)
			}
		}
		slog.Default().Debug("algebraic: filtered complex candidates",
			slog.Int("round", round), slog.Int("before", len(candidates)), slog.Int("after", len(survivors)),
		)
		switch len(survivors) {
		case 0:
			return nil, fmt.Errorf("%s: no root of %s lies in %s", caller, sumPoly, sumBox)
		case 1:
			return survivors[0], nil
		}
		candidates = survivors
		for _, x := range append([]*Complex{z, w}, candidates...) {
			if err := x.Refine(); err != nil {
				return nil, fmt.Errorf("%s: could not refine: %q", caller, err.Error())
			}
		}
	}
}

// Sub returns z - w. It refines z and w as needed.
func (z *Complex) Sub(w *Complex) (*Complex, error) {
	return z.Add(w.Neg())
}

// Mul returns z w when both are real or one is rational. Other products return an
// error wrapping ErrUnsupported.
func (z *Complex) Mul(w *Complex) (*Complex, error) {
	caller := "Complex-Mul"
	switch {
	case (z.real != nil) && (w.real != nil):
		product, err := z.real.Mul(w.real)
		if err != nil {
			return nil, fmt.Errorf("%s: could not multiply reals: %q", caller, err.Error())
		}
		return &Complex{real: product}, nil
	case (z.real != nil) && z.real.IsRational():
		return w.root.scale(z.real.rat), nil
	case (w.real != nil) && w.real.IsRational():
		return z.root.scale(w.real.rat), nil
	}
	return nil, fmt.Errorf("%s: %w", caller, ErrUnsupported)
}

// Inv returns 1/z for a real z, an error wrapping ErrDivideByZero if z is 0, or
// one wrapping ErrUnsupported if z is not real
func (z *Complex) Inv() (*Complex, error) {
	caller := "Complex-Inv"
	if z.real == nil {
		return nil, fmt.Errorf("%s: %w", caller, ErrUnsupported)
	}
	inv, err := z.real.Inv()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", caller, err)
	}
	return &Complex{real: inv}, nil
}

// Div returns z/w when Inv and Mul support it
func (z *Complex) Div(w *Complex) (*Complex, error) {
	wInv, err := w.Inv()
	if err != nil {
		return nil, fmt.Errorf("Complex-Div: %w", err)
	}
	return z.Mul(wInv)
}

// shift returns the root plus q
func (r *ComplexRoot) shift(q *big.Rat) *Complex {
	shiftBox := func(box complexroots.Box) complexroots.Box {
		return complexroots.Box{
			A: new(big.Rat).Add(box.A, q), B: new(big.Rat).Add(box.B, q),
			C: new(big.Rat).Set(box.C), D: new(big.Rat).Set(box.D),
		}
	}
	return &Complex{root: &ComplexRoot{poly: r.poly.ShiftRoots(q), box: shiftBox(r.box), wide: shiftBox(r.wide)}}
}

// scale returns the root times q, which is 0 when q is
func (r *ComplexRoot) scale(q *big.Rat) *Complex {
	if q.Sign() == 0 {
		return &Complex{real: NewInt64(0, 1)}
	}
	scaleBox := func(box complexroots.Box) complexroots.Box {
		retVal := complexroots.Box{
			A: new(big.Rat).Mul(box.A, q), B: new(big.Rat).Mul(box.B, q),
			C: new(big.Rat).Mul(box.C, q), D: new(big.Rat).Mul(box.D, q),
		}
		if q.Sign() < 0 {
			retVal.A, retVal.B = retVal.B, retVal.A
			retVal.C, retVal.D = retVal.D, retVal.C
		}
		return retVal
	}
	return &Complex{root: &ComplexRoot{poly: r.poly.ScaleRoots(q), box: scaleBox(r.box), wide: scaleBox(r.wide)}}
}

// CheckInvariants returns an error describing the first broken property of z, if
// any
func (z *Complex) CheckInvariants(caller string) error {
	caller = fmt.Sprintf("%s-CheckInvariants", caller)
	if z.real != nil {
		if z.root != nil {
			return fmt.Errorf("%s: both real and non-real", caller)
		}
		return z.real.CheckInvariants(caller)
	}
	r := z.root
	if (r.box.A.Cmp(r.box.B) >= 0) || (r.box.C.Cmp(r.box.D) >= 0) {
		return fmt.Errorf("%s: empty box %s", caller, r.box)
	}
	if (r.box.C.Sign() <= 0) && (r.box.D.Sign() >= 0) {
		return fmt.Errorf("%s: box %s meets the real axis", caller, r.box)
	}
	if !boxWithin(r.box, r.wide) {
		return fmt.Errorf("%s: box %s is not within %s", caller, r.box, r.wide)
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
	for _, box := range []complexroots.Box{r.box, r.wide} {
		count, ok, err := complexroots.CountRoots(r.poly, box, caller)
		if err != nil {
			return fmt.Errorf("%s: could not count roots in %s: %q", caller, box, err.Error())
		}
		if !ok || (count != 1) {
			return fmt.Errorf("%s: %s does not isolate a root of %s", caller, box, r.poly)
		}
	}
	return nil
}

// boxWithin returns whether inner lies within outer
func boxWithin(inner, outer complexroots.Box) bool {
	return (outer.A.Cmp(inner.A) <= 0) && (inner.B.Cmp(outer.B) <= 0) &&
		(outer.C.Cmp(inner.C) <= 0) && (inner.D.Cmp(outer.D) <= 0)
}

// boxesOverlap returns whether the closed boxes a and b intersect
func boxesOverlap(a, b complexroots.Box) bool {
	return util.ClosedIntervalsOverlap(a.A, a.B, b.A, b.B) && util.ClosedIntervalsOverlap(a.C, a.D, b.C, b.D)
}

func negBox(box complexroots.Box) complexroots.Box {
	return complexroots.Box{
		A: new(big.Rat).Neg(box.B), B: new(big.Rat).Neg(box.A),
		C: new(big.Rat).Neg(box.D), D: new(big.Rat).Neg(box.C),
	}
}

func conjugateBox(box complexroots.Box) complexroots.Box {
	return complexroots.Box{
		A: new(big.Rat).Set(box.A), B: new(big.Rat).Set(box.B),
		C: new(big.Rat).Neg(box.D), D: new(big.Rat).Neg(box.C),
	}
}
