// Package bigpoly implements dense univariate polynomials with arbitrary-precision
// integer coefficients, together with the operations that root isolation and
// algebraic-number arithmetic need from them: evaluation at rationals, composition,
// canonical forms, gcds, squarefree decomposition, resultants and factorization
// into irreducibles.
package bigpoly

// Copyright (c) 2025 Colin McRae

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrNotDivisible is wrapped by DivExact when the divisor does not divide the
// dividend exactly over the integers.
var ErrNotDivisible = errors.New("polynomial is not exactly divisible")

// Poly is a polynomial with integer coefficients. A Poly is never modified after
// it is constructed; every operation returns a new Poly.
type Poly struct {
	coeffs []*big.Int // coeffs[i] multiplies x^i; the last entry, if any, is non-zero
}

// New returns the polynomial coeffs[0] + coeffs[1] x + ... The coefficients are
// copied.
func New(coeffs []*big.Int) *Poly {
	copied := make([]*big.Int, len(coeffs))
	for i := 0; i < len(coeffs); i++ {
		if coeffs[i] == nil {
			copied[i] = big.NewInt(0)
		} else {
			copied[i] = new(big.Int).Set(coeffs[i])
		}
	}
	return newOwned(copied)
}

// NewFromInt64 returns the polynomial coeffs[0] + coeffs[1] x + ...
func NewFromInt64(coeffs ...int64) *Poly {
	bigCoeffs := make([]*big.Int, len(coeffs))
	for i := 0; i < len(coeffs); i++ {
		bigCoeffs[i] = big.NewInt(coeffs[i])
	}
	return newOwned(bigCoeffs)
}

// FromRationalRoots returns the product of (den x - num) over the given roots, the
// primitive integer polynomial whose roots are exactly roots, with multiplicity.
func FromRationalRoots(roots ...*big.Rat) *Poly {
	retVal := One()
	for _, root := range roots {
		linear := newOwned([]*big.Int{
			new(big.Int).Neg(root.Num()), new(big.Int).Set(root.Denom()),
		})
		retVal = retVal.Mul(linear)
	}
	return retVal
}

// newOwned takes ownership of coeffs and trims trailing zeros
func newOwned(coeffs []*big.Int) *Poly {
	n := len(coeffs)
	for (n > 0) && (coeffs[n-1].Sign() == 0) {
		n--
	}
	return &Poly{coeffs: coeffs[:n]}
}

// Zero returns the zero polynomial
func Zero() *Poly {
	return &Poly{}
}

// One returns the constant polynomial 1
func One() *Poly {
	return NewFromInt64(1)
}

// Var returns the polynomial x
func Var() *Poly {
	return NewFromInt64(0, 1)
}

// Monomial returns c x^n
func Monomial(c *big.Int, n int) *Poly {
	coeffs := make([]*big.Int, n+1)
	for i := 0; i < n; i++ {
		coeffs[i] = big.NewInt(0)
	}
	coeffs[n] = new(big.Int).Set(c)
	return newOwned(coeffs)
}

// Degree returns the degree of p, or -1 for the zero polynomial
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero returns whether p is the zero polynomial
func (p *Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeff returns a copy of the coefficient of x^i, which is zero when i is out of
// range.
func (p *Poly) Coeff(i int) *big.Int {
	if (i < 0) || (i >= len(p.coeffs)) {
		return big.NewInt(0)
	}
	return new(big.Int).Set(p.coeffs[i])
}

// Coeffs returns a copy of the coefficients in ascending order of degree
func (p *Poly) Coeffs() []*big.Int {
	retVal := make([]*big.Int, len(p.coeffs))
	for i := 0; i < len(p.coeffs); i++ {
		retVal[i] = new(big.Int).Set(p.coeffs[i])
	}
	return retVal
}

// LeadingCoeff returns a copy of the leading coefficient, which is zero for the
// zero polynomial.
func (p *Poly) LeadingCoeff() *big.Int {
	return p.Coeff(p.Degree())
}

// Equals returns whether p and q have identical coefficients
func (p *Poly) Equals(q *Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := 0; i < len(p.coeffs); i++ {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// String returns p in descending order of degree, e.g. "x^3 - 3x + 1"
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i := p.Degree(); 0 <= i; i-- {
		c := p.coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		absC := new(big.Int).Abs(c)
		switch {
		case first && (c.Sign() < 0):
			sb.WriteString("-")
		case !first && (c.Sign() < 0):
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false
		if (absC.Cmp(big.NewInt(1)) != 0) || (i == 0) {
			sb.WriteString(absC.String())
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			sb.WriteString(fmt.Sprintf("x^%d", i))
		}
	}
	return sb.String()
}

// Add returns p + q
func (p *Poly) Add(q *Poly) *Poly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		coeffs[i] = new(big.Int).Add(p.Coeff(i), q.Coeff(i))
	}
	return newOwned(coeffs)
}

// Sub returns p - q
func (p *Poly) Sub(q *Poly) *Poly {
	return p.Add(q.Neg())
}

// Neg returns -p
func (p *Poly) Neg() *Poly {
	coeffs := make([]*big.Int, len(p.coeffs))
	for i := 0; i < len(p.coeffs); i++ {
		coeffs[i] = new(big.Int).Neg(p.coeffs[i])
	}
	return newOwned(coeffs)
}

// Mul returns p q
func (p *Poly) Mul(q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	coeffs := make([]*big.Int, len(p.coeffs)+len(q.coeffs)-1)
	for i := 0; i < len(coeffs); i++ {
		coeffs[i] = big.NewInt(0)
	}
	term := new(big.Int)
	for i := 0; i < len(p.coeffs); i++ {
		if p.coeffs[i].Sign() == 0 {
			continue
		}
		for j := 0; j < len(q.coeffs); j++ {
			term.Mul(p.coeffs[i], q.coeffs[j])
			coeffs[i+j].Add(coeffs[i+j], term)
		}
	}
	return newOwned(coeffs)
}

// MulScalar returns c p
func (p *Poly) MulScalar(c *big.Int) *Poly {
	coeffs := make([]*big.Int, len(p.coeffs))
	for i := 0; i < len(p.coeffs); i++ {
		coeffs[i] = new(big.Int).Mul(p.coeffs[i], c)
	}
	return newOwned(coeffs)
}

// MulVarPow returns x^n p
func (p *Poly) MulVarPow(n int) *Poly {
	if p.IsZero() {
		return Zero()
	}
	coeffs := make([]*big.Int, len(p.coeffs)+n)
	for i := 0; i < n; i++ {
		coeffs[i] = big.NewInt(0)
	}
	for i := 0; i < len(p.coeffs); i++ {
		coeffs[n+i] = new(big.Int).Set(p.coeffs[i])
	}
	return newOwned(coeffs)
}

// Pow returns p^n for n >= 0
func (p *Poly) Pow(n int) *Poly {
	retVal := One()
	base := p
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			retVal = retVal.Mul(base)
		}
		if n > 1 {
			base = base.Mul(base)
		}
	}
	return retVal
}

// Derivative returns dp/dx
func (p *Poly) Derivative() *Poly {
	if p.Degree() < 1 {
		return Zero()
	}
	coeffs := make([]*big.Int, p.Degree())
	for i := 1; i < len(p.coeffs); i++ {
		coeffs[i-1] = new(big.Int).Mul(p.coeffs[i], big.NewInt(int64(i)))
	}
	return newOwned(coeffs)
}

// DivExact returns p / d when d divides p over the integers. Otherwise it returns
// an error wrapping ErrNotDivisible.
func (p *Poly) DivExact(d *Poly, caller string) (*Poly, error) {
	caller = fmt.Sprintf("%s-DivExact", caller)
	if d.IsZero() {
		return nil, fmt.Errorf("%s: division by the zero polynomial", caller)
	}
	if p.IsZero() {
		return Zero(), nil
	}
	if p.Degree() < d.Degree() {
		return nil, fmt.Errorf("%s: deg(%s) < deg(%s): %w", caller, p, d, ErrNotDivisible)
	}
	remainder := p.Coeffs()
	dDeg := d.Degree()
	dLead := d.coeffs[dDeg]
	quotient := make([]*big.Int, p.Degree()-dDeg+1)
	quo, rem, term := new(big.Int), new(big.Int), new(big.Int)
	for i := p.Degree(); dDeg <= i; i-- {
		quo.QuoRem(remainder[i], dLead, rem)
		if rem.Sign() != 0 {
			return nil, fmt.Errorf("%s: %s does not divide %s: %w", caller, d, p, ErrNotDivisible)
		}
		quotient[i-dDeg] = new(big.Int).Set(quo)
		if quo.Sign() == 0 {
			continue
		}
		for j := 0; j <= dDeg; j++ {
			term.Mul(quo, d.coeffs[j])
			remainder[i-dDeg+j].Sub(remainder[i-dDeg+j], term)
		}
	}
	for i := 0; i < dDeg; i++ {
		if remainder[i].Sign() != 0 {
			return nil, fmt.Errorf("%s: %s does not divide %s: %w", caller, d, p, ErrNotDivisible)
		}
	}
	return newOwned(quotient), nil
}

// EvalInt returns p(x)
func (p *Poly) EvalInt(x *big.Int) *big.Int {
	retVal := big.NewInt(0)
	for i := p.Degree(); 0 <= i; i-- {
		retVal.Mul(retVal, x)
		retVal.Add(retVal, p.coeffs[i])
	}
	return retVal
}

// EvalRat returns p(x)
func (p *Poly) EvalRat(x *big.Rat) *big.Rat {
	if p.IsZero() {
		return new(big.Rat)
	}
	numerator := p.homogeneousNumerator(x)
	denominator := new(big.Int).Exp(x.Denom(), big.NewInt(int64(p.Degree())), nil)
	return new(big.Rat).SetFrac(numerator, denominator)
}

// SignAt returns the sign (-1, 0 or 1) of p(x). It avoids rational arithmetic:
// with x = u/v and v > 0, p(x) has the sign of the integer v^n p(u/v).
func (p *Poly) SignAt(x *big.Rat) int {
	if p.IsZero() {
		return 0
	}
	return p.homogeneousNumerator(x).Sign()
}

// homogeneousNumerator returns v^n p(u/v) = sum c_i u^i v^(n-i) for x = u/v in
// lowest terms, via Horner's rule on the homogenized polynomial.
//
//	acc = c_n
//	acc = acc u + c_(n-1) v
//	acc = acc u + c_(n-2) v^2
//	...
func (p *Poly) homogeneousNumerator(x *big.Rat) *big.Int {
	n := p.Degree()
	u, v := x.Num(), x.Denom()
	acc := new(big.Int).Set(p.coeffs[n])
	vPow := big.NewInt(1)
	term := new(big.Int)
	for i := n - 1; 0 <= i; i-- {
		vPow.Mul(vPow, v)
		acc.Mul(acc, u)
		term.Mul(p.coeffs[i], vPow)
		acc.Add(acc, term)
	}
	return acc
}
