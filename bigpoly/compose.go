package bigpoly

// Copyright (c) 2025 Colin McRae

import (
	"math/big"
)

// ComposeNeg returns p(-x)
func (p *Poly) ComposeNeg() *Poly {
	coeffs := p.Coeffs()
	for i := 1; i < len(coeffs); i += 2 {
		coeffs[i].Neg(coeffs[i])
	}
	return newOwned(coeffs)
}

// Reverse returns x^n p(1/x) where n is the degree of p. Its roots are the
// reciprocals of the non-zero roots of p.
func (p *Poly) Reverse() *Poly {
	n := len(p.coeffs)
	coeffs := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		coeffs[i] = new(big.Int).Set(p.coeffs[n-1-i])
	}
	return newOwned(coeffs)
}

// TaylorShift returns p(x + c). The update
//
//	for i = 0, ..., n-1:  for j = n-1, ..., i:  a_j += c a_(j+1)
//
// performs n synthetic divisions by (x - c) in place.
func (p *Poly) TaylorShift(c *big.Int) *Poly {
	a := p.Coeffs()
	n := len(a) - 1
	term := new(big.Int)
	for i := 0; i < n; i++ {
		for j := n - 1; i <= j; j-- {
			term.Mul(c, a[j+1])
			a[j].Add(a[j], term)
		}
	}
	return newOwned(a)
}

// HalveVariable returns 2^n p(x/2) where n is the degree of p. It maps the roots
// of p in [0, 1/2] onto [0, 1] while keeping integer coefficients.
func (p *Poly) HalveVariable() *Poly {
	n := p.Degree()
	coeffs := make([]*big.Int, len(p.coeffs))
	for i := 0; i < len(p.coeffs); i++ {
		coeffs[i] = new(big.Int).Lsh(p.coeffs[i], uint(n-i))
	}
	return newOwned(coeffs)
}

// ComposeAffine returns the primitive integer polynomial that is a positive
// rational multiple of p(c0 + c1 x). Signs of values are therefore preserved:
// ComposeAffine(c0, c1)(t) has the sign of p(c0 + c1 t).
func (p *Poly) ComposeAffine(c0, c1 *big.Rat) *Poly {
	if p.IsZero() {
		return Zero()
	}
	linear := ratPoly{new(big.Rat).Set(c0), new(big.Rat).Set(c1)}.trim()
	acc := ratPoly{new(big.Rat).SetInt(p.coeffs[p.Degree()])}
	for i := p.Degree() - 1; 0 <= i; i-- {
		acc = ratPolyAdd(ratPolyMul(acc, linear), ratPoly{new(big.Rat).SetInt(p.coeffs[i])})
	}
	return acc.toPositiveMultiple()
}

// Homogenize returns x^n p(t/x) as a polynomial in x, for a fixed integer t, where
// n is the degree of p. The coefficient of x^(n-i) is c_i t^i.
func (p *Poly) Homogenize(t *big.Int) *Poly {
	n := p.Degree()
	if n < 0 {
		return Zero()
	}
	coeffs := make([]*big.Int, n+1)
	tPow := big.NewInt(1)
	for i := 0; i <= n; i++ {
		coeffs[n-i] = new(big.Int).Mul(p.coeffs[i], tPow)
		tPow = new(big.Int).Mul(tPow, t)
	}
	return newOwned(coeffs)
}

// SignVariations returns the number of sign changes in the sequence of non-zero
// coefficients of p. By Descartes' rule of signs it bounds the number of positive
// roots of p, and has the same parity.
func (p *Poly) SignVariations() int {
	retVal := 0
	lastSign := 0
	for i := 0; i < len(p.coeffs); i++ {
		sign := p.coeffs[i].Sign()
		if sign == 0 {
			continue
		}
		if (lastSign != 0) && (sign != lastSign) {
			retVal++
		}
		lastSign = sign
	}
	return retVal
}

// CauchyBound returns 2 + max_(i<n) |c_i| / |c_n|, a bound that every root of p is
// strictly less than in absolute value. p must have degree at least 1.
func (p *Poly) CauchyBound() *big.Rat {
	n := p.Degree()
	maxAbs := big.NewInt(0)
	for i := 0; i < n; i++ {
		if new(big.Int).Abs(p.coeffs[i]).Cmp(maxAbs) > 0 {
			maxAbs = new(big.Int).Abs(p.coeffs[i])
		}
	}
	retVal := new(big.Rat).SetFrac(maxAbs, new(big.Int).Abs(p.coeffs[n]))
	return retVal.Add(retVal, big.NewRat(2, 1))
}

// ShiftRoots returns the canonical polynomial whose roots are those of p plus r,
// i.e. the canonical form of p(x - r).
func (p *Poly) ShiftRoots(r *big.Rat) *Poly {
	canonical, _ := p.ComposeAffine(new(big.Rat).Neg(r), big.NewRat(1, 1)).Canonical()
	return canonical
}

// ScaleRoots returns the canonical polynomial whose roots are those of p times a
// non-zero r, i.e. the canonical form of p(x/r).
func (p *Poly) ScaleRoots(r *big.Rat) *Poly {
	canonical, _ := p.ComposeAffine(new(big.Rat), new(big.Rat).Inv(r)).Canonical()
	return canonical
}
