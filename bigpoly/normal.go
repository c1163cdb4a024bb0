package bigpoly

// Copyright (c) 2025 Colin McRae

import (
	"math/big"
)

// Content returns the non-negative gcd of the coefficients of p, which is zero for
// the zero polynomial.
func (p *Poly) Content() *big.Int {
	retVal := big.NewInt(0)
	for i := 0; i < len(p.coeffs); i++ {
		retVal.GCD(nil, nil, retVal, new(big.Int).Abs(p.coeffs[i]))
	}
	return retVal
}

// PrimitivePart returns p divided by its content. The sign of the leading
// coefficient is kept, so the result is a positive multiple of p.
func (p *Poly) PrimitivePart() *Poly {
	if p.IsZero() {
		return Zero()
	}
	content := p.Content()
	coeffs := make([]*big.Int, len(p.coeffs))
	for i := 0; i < len(p.coeffs); i++ {
		coeffs[i] = new(big.Int).Quo(p.coeffs[i], content)
	}
	return newOwned(coeffs)
}

// Canonical returns the favorite associate of the primitive part of p: primitive,
// with a positive leading coefficient. The boolean reports whether p had to be
// negated to get there, i.e. whether the result is a negative multiple of p.
// Two polynomials with the same roots and multiplicities have equal canonical
// forms.
func (p *Poly) Canonical() (*Poly, bool) {
	primitive := p.PrimitivePart()
	if primitive.IsZero() || (primitive.LeadingCoeff().Sign() > 0) {
		return primitive, false
	}
	return primitive.Neg(), true
}

// IsCanonical returns whether p equals its canonical form
func (p *Poly) IsCanonical() bool {
	canonical, _ := p.Canonical()
	return p.Equals(canonical)
}

// Gcd returns the canonical greatest common divisor of a and b. Gcd(0, 0) is 0.
func Gcd(a, b *Poly) *Poly {
	return ratPolyGcd(toRatPoly(a), toRatPoly(b)).toCanonical()
}

// SquarefreePart returns the canonical polynomial whose roots are the distinct
// roots of p. The squarefree part of a non-zero constant is 1 and that of 0 is 0.
func (p *Poly) SquarefreePart() *Poly {
	if p.IsZero() {
		return Zero()
	}
	if p.Degree() == 0 {
		return One()
	}
	asRat := toRatPoly(p)
	g := ratPolyGcd(asRat, asRat.derivative())
	quotient, _ := ratPolyQuoRem(asRat, g)
	return quotient.toCanonical()
}

// IsSquarefree returns whether p is non-zero with no repeated roots
func (p *Poly) IsSquarefree() bool {
	if p.IsZero() {
		return false
	}
	return Gcd(p, p.Derivative()).Degree() < 1
}

// SquarefreeDecomposition returns canonical polynomials g_1, g_2, ... such that
// p is a constant multiple of g_1 g_2^2 g_3^3 ..., each g_i squarefree and the g_i
// pairwise coprime. Entry i of the result is g_(i+1); it is 1 when p has no root
// of that multiplicity. It is Yun's algorithm over the rationals:
//
//	c = gcd(p, p'),  w = p/c,  y = p'/c,  z = y - w'
//	repeat:  g = gcd(w, z),  w = w/g,  y = z/g,  z = y - w'
func (p *Poly) SquarefreeDecomposition() []*Poly {
	if p.Degree() < 1 {
		return nil
	}
	a := toRatPoly(p)
	aPrime := a.derivative()
	c := ratPolyGcd(a, aPrime)
	w, _ := ratPolyQuoRem(a, c)
	y, _ := ratPolyQuoRem(aPrime, c)
	z := ratPolySub(y, w.derivative())
	var retVal []*Poly
	for w.degree() > 0 {
		g := ratPolyGcd(w, z)
		retVal = append(retVal, g.toCanonical())
		w, _ = ratPolyQuoRem(w, g)
		y, _ = ratPolyQuoRem(z, g)
		z = ratPolySub(y, w.derivative())
	}
	return retVal
}

// ratPoly is a polynomial over the rationals used internally where Euclid's
// algorithm needs field division. Entry i multiplies x^i; the last entry is
// non-zero.
type ratPoly []*big.Rat

func toRatPoly(p *Poly) ratPoly {
	retVal := make(ratPoly, len(p.coeffs))
	for i := 0; i < len(p.coeffs); i++ {
		retVal[i] = new(big.Rat).SetInt(p.coeffs[i])
	}
	return retVal
}

func (r ratPoly) trim() ratPoly {
	n := len(r)
	for (n > 0) && (r[n-1].Sign() == 0) {
		n--
	}
	return r[:n]
}

func (r ratPoly) degree() int {
	return len(r) - 1
}

func (r ratPoly) derivative() ratPoly {
	if len(r) < 2 {
		return ratPoly{}
	}
	retVal := make(ratPoly, len(r)-1)
	for i := 1; i < len(r); i++ {
		retVal[i-1] = new(big.Rat).Mul(r[i], new(big.Rat).SetInt64(int64(i)))
	}
	return retVal.trim()
}

func (r ratPoly) monic() ratPoly {
	if len(r) == 0 {
		return r
	}
	lead := r[len(r)-1]
	retVal := make(ratPoly, len(r))
	for i := 0; i < len(r); i++ {
		retVal[i] = new(big.Rat).Quo(r[i], lead)
	}
	return retVal
}

func ratPolyAdd(a, b ratPoly) ratPoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	retVal := make(ratPoly, n)
	for i := 0; i < n; i++ {
		retVal[i] = new(big.Rat)
		if i < len(a) {
			retVal[i].Add(retVal[i], a[i])
		}
		if i < len(b) {
			retVal[i].Add(retVal[i], b[i])
		}
	}
	return retVal.trim()
}

func ratPolySub(a, b ratPoly) ratPoly {
	negB := make(ratPoly, len(b))
	for i := 0; i < len(b); i++ {
		negB[i] = new(big.Rat).Neg(b[i])
	}
	return ratPolyAdd(a, negB)
}

func ratPolyMul(a, b ratPoly) ratPoly {
	if (len(a) == 0) || (len(b) == 0) {
		return ratPoly{}
	}
	retVal := make(ratPoly, len(a)+len(b)-1)
	for i := 0; i < len(retVal); i++ {
		retVal[i] = new(big.Rat)
	}
	term := new(big.Rat)
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			term.Mul(a[i], b[j])
			retVal[i+j].Add(retVal[i+j], term)
		}
	}
	return retVal.trim()
}

// ratPolyQuoRem returns q and r with a = q b + r and deg r < deg b. b must be
// non-zero.
func ratPolyQuoRem(a, b ratPoly) (ratPoly, ratPoly) {
	remainder := make(ratPoly, len(a))
	for i := 0; i < len(a); i++ {
		remainder[i] = new(big.Rat).Set(a[i])
	}
	bDeg := b.degree()
	if a.degree() < bDeg {
		return ratPoly{}, remainder
	}
	quotient := make(ratPoly, a.degree()-bDeg+1)
	term := new(big.Rat)
	for i := a.degree(); bDeg <= i; i-- {
		q := new(big.Rat).Quo(remainder[i], b[bDeg])
		quotient[i-bDeg] = q
		if q.Sign() == 0 {
			continue
		}
		for j := 0; j <= bDeg; j++ {
			term.Mul(q, b[j])
			remainder[i-bDeg+j].Sub(remainder[i-bDeg+j], term)
		}
	}
	return quotient.trim(), remainder.trim()
}

// ratPolyGcd returns the monic gcd of a and b, or the zero polynomial if both are
// zero.
func ratPolyGcd(a, b ratPoly) ratPoly {
	a, b = a.trim(), b.trim()
	for len(b) > 0 {
		_, r := ratPolyQuoRem(a, b)
		a, b = b, r.monic()
	}
	return a.monic()
}

// toPositiveMultiple clears denominators and removes the content, returning the
// primitive integer polynomial that is a positive rational multiple of r.
func (r ratPoly) toPositiveMultiple() *Poly {
	r = r.trim()
	if len(r) == 0 {
		return Zero()
	}
	lcm := big.NewInt(1)
	g := new(big.Int)
	for i := 0; i < len(r); i++ {
		d := r[i].Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}
	coeffs := make([]*big.Int, len(r))
	for i := 0; i < len(r); i++ {
		coeffs[i] = new(big.Int).Mul(r[i].Num(), new(big.Int).Quo(lcm, r[i].Denom()))
	}
	return newOwned(coeffs).PrimitivePart()
}

func (r ratPoly) toCanonical() *Poly {
	canonical, _ := r.toPositiveMultiple().Canonical()
	return canonical
}
