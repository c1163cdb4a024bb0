// Package complexroots counts the complex roots of an integer polynomial inside a
// rational rectangle with the argument principle, and isolates the roots in the
// upper half plane in rectangles containing one root each.
package complexroots

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/big"

	"github.com/predrag3141/algebraic/bigpoly"
)

// Box is the closed rectangle A <= re <= B, C <= im <= D in the complex plane
type Box struct {
	A *big.Rat
	B *big.Rat
	C *big.Rat
	D *big.Rat
}

// NewBox returns the box with copies of the given bounds
func NewBox(a, b, c, d *big.Rat) Box {
	return Box{
		A: new(big.Rat).Set(a),
		B: new(big.Rat).Set(b),
		C: new(big.Rat).Set(c),
		D: new(big.Rat).Set(d),
	}
}

// Clone returns an independent copy of box
func (box Box) Clone() Box {
	return NewBox(box.A, box.B, box.C, box.D)
}

// Width returns B - A
func (box Box) Width() *big.Rat {
	return new(big.Rat).Sub(box.B, box.A)
}

// Height returns D - C
func (box Box) Height() *big.Rat {
	return new(big.Rat).Sub(box.D, box.C)
}

// String returns the box as [A, B] x [C, D]
func (box Box) String() string {
	return fmt.Sprintf(
		"[%s, %s] x [%s, %s]", box.A.RatString(), box.B.RatString(), box.C.RatString(), box.D.RatString(),
	)
}

// AtFixedRe returns integer polynomials re and im in t such that, for a = u/v in
// lowest terms and n the degree of p,
//
//	v^n p(a + ti) = re(t) + i im(t)
//
// By the binomial theorem, c_j v^(n-j) (u + vti)^j contributes
//
//	c_j C(j,k) u^(j-k) v^(n-j+k) i^k t^k
//
// for k = 0, ..., j, to re when k is even and to im when k is odd.
func AtFixedRe(p *bigpoly.Poly, a *big.Rat) (*bigpoly.Poly, *bigpoly.Poly) {
	return edgeComponents(p, a, true)
}

// AtFixedIm returns integer polynomials re and im in t such that, for a = u/v in
// lowest terms and n the degree of p,
//
//	v^n p(t + ai) = re(t) + i im(t)
//
// Here c_j v^(n-j) (vt + ui)^j contributes
//
//	c_j C(j,k) u^k v^(n-k) i^k t^(j-k)
func AtFixedIm(p *bigpoly.Poly, a *big.Rat) (*bigpoly.Poly, *bigpoly.Poly) {
	return edgeComponents(p, a, false)
}

func edgeComponents(p *bigpoly.Poly, a *big.Rat, fixedRe bool) (*bigpoly.Poly, *bigpoly.Poly) {
	n := p.Degree()
	if n < 0 {
		return bigpoly.Zero(), bigpoly.Zero()
	}
	u, v := a.Num(), a.Denom()
	uPow := make([]*big.Int, n+1)
	vPow := make([]*big.Int, n+1)
	uPow[0], vPow[0] = big.NewInt(1), big.NewInt(1)
	for i := 1; i <= n; i++ {
		uPow[i] = new(big.Int).Mul(uPow[i-1], u)
		vPow[i] = new(big.Int).Mul(vPow[i-1], v)
	}
	re := make([]*big.Int, n+1)
	im := make([]*big.Int, n+1)
	for i := 0; i <= n; i++ {
		re[i], im[i] = big.NewInt(0), big.NewInt(0)
	}

	// binomial holds row j of Pascal's triangle
	binomial := []*big.Int{big.NewInt(1)}
	term := new(big.Int)
	for j := 0; j <= n; j++ {
		if j > 0 {
			binomial = append(binomial, big.NewInt(1))
			for k := j - 1; k > 0; k-- {
				binomial[k] = new(big.Int).Add(binomial[k], binomial[k-1])
			}
		}
		cj := p.Coeff(j)
		if cj.Sign() == 0 {
			continue
		}
		for k := 0; k <= j; k++ {
			var power int
			term.Mul(cj, binomial[k])
			if fixedRe {
				power = k
				term.Mul(term, uPow[j-k])
				term.Mul(term, vPow[n-j+k])
			} else {
				power = j - k
				term.Mul(term, uPow[k])
				term.Mul(term, vPow[n-k])
			}
			switch k % 4 {
			case 0:
				re[power].Add(re[power], term)
			case 1:
				im[power].Add(im[power], term)
			case 2:
				re[power].Sub(re[power], term)
			case 3:
				im[power].Sub(im[power], term)
			}
		}
	}
	return bigpoly.New(re), bigpoly.New(im)
}
