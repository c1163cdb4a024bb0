package bigpoly

// Copyright (c) 2025 Colin McRae

import (
	"math/big"
	"math/rand"
)

// maxFieldPrime bounds the primes used for modular factorization, so that the
// product of two residues fits in a uint64.
const maxFieldPrime = uint64(1) << 31

// primeField is the integers modulo a prime p < maxFieldPrime
type primeField struct {
	p uint64
}

// modPoly is a polynomial over a primeField. Entry i multiplies x^i; the last
// entry, if any, is non-zero.
type modPoly []uint64

// ddfPart is the product of all the irreducible factors of degree degree of a
// squarefree polynomial over a primeField.
type ddfPart struct {
	product modPoly
	degree  int
}

func (m modPoly) trim() modPoly {
	n := len(m)
	for (n > 0) && (m[n-1] == 0) {
		n--
	}
	return m[:n]
}

func (m modPoly) degree() int {
	return len(m) - 1
}

func (m modPoly) isOne() bool {
	return (len(m) == 1) && (m[0] == 1)
}

func (f primeField) fromBigInt(x *big.Int) uint64 {
	r := new(big.Int).Mod(x, new(big.Int).SetUint64(f.p))
	return r.Uint64()
}

func (f primeField) fromPoly(q *Poly) modPoly {
	retVal := make(modPoly, len(q.coeffs))
	for i := 0; i < len(q.coeffs); i++ {
		retVal[i] = f.fromBigInt(q.coeffs[i])
	}
	return retVal.trim()
}

// toPoly returns the integer polynomial with the residues of m as coefficients,
// each in [0, p).
func (f primeField) toPoly(m modPoly) *Poly {
	coeffs := make([]*big.Int, len(m))
	for i := 0; i < len(m); i++ {
		coeffs[i] = new(big.Int).SetUint64(m[i])
	}
	return newOwned(coeffs)
}

func (f primeField) add(a, b modPoly) modPoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	retVal := make(modPoly, n)
	for i := 0; i < n; i++ {
		var sum uint64
		if i < len(a) {
			sum = a[i]
		}
		if i < len(b) {
			sum = (sum + b[i]) % f.p
		}
		retVal[i] = sum
	}
	return retVal.trim()
}

func (f primeField) sub(a, b modPoly) modPoly {
	negB := make(modPoly, len(b))
	for i := 0; i < len(b); i++ {
		negB[i] = (f.p - b[i]) % f.p
	}
	return f.add(a, negB)
}

func (f primeField) mul(a, b modPoly) modPoly {
	if (len(a) == 0) || (len(b) == 0) {
		return modPoly{}
	}
	retVal := make(modPoly, len(a)+len(b)-1)
	for i := 0; i < len(a); i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j < len(b); j++ {
			retVal[i+j] = (retVal[i+j] + (a[i]*b[j])%f.p) % f.p
		}
	}
	return retVal.trim()
}

func (f primeField) scale(a modPoly, c uint64) modPoly {
	retVal := make(modPoly, len(a))
	for i := 0; i < len(a); i++ {
		retVal[i] = (a[i] * c) % f.p
	}
	return retVal.trim()
}

// inv returns the inverse of a non-zero residue, a^(p-2) by Fermat's little
// theorem.
func (f primeField) inv(a uint64) uint64 {
	retVal := uint64(1)
	base := a % f.p
	for e := f.p - 2; e > 0; e >>= 1 {
		if e&1 == 1 {
			retVal = (retVal * base) % f.p
		}
		base = (base * base) % f.p
	}
	return retVal
}

// divMod returns q and r with a = q b + r and deg r < deg b. b must be non-zero.
func (f primeField) divMod(a, b modPoly) (modPoly, modPoly) {
	remainder := make(modPoly, len(a))
	copy(remainder, a)
	bDeg := b.degree()
	if a.degree() < bDeg {
		return modPoly{}, remainder.trim()
	}
	leadInv := f.inv(b[bDeg])
	quotient := make(modPoly, a.degree()-bDeg+1)
	for i := a.degree(); bDeg <= i; i-- {
		q := (remainder[i] * leadInv) % f.p
		quotient[i-bDeg] = q
		if q == 0 {
			continue
		}
		for j := 0; j <= bDeg; j++ {
			remainder[i-bDeg+j] = (remainder[i-bDeg+j] + f.p - (q*b[j])%f.p) % f.p
		}
	}
	return quotient.trim(), remainder.trim()
}

func (f primeField) monic(a modPoly) modPoly {
	if len(a) == 0 {
		return a
	}
	return f.scale(a, f.inv(a[len(a)-1]))
}

// gcd returns the monic gcd of a and b, or the zero polynomial if both are zero
func (f primeField) gcd(a, b modPoly) modPoly {
	a, b = a.trim(), b.trim()
	for len(b) > 0 {
		_, r := f.divMod(a, b)
		a, b = b, r
	}
	return f.monic(a)
}

// extendedGcd returns the monic gcd g of a and b with s and t such that
//
//	s a + t b = g
func (f primeField) extendedGcd(a, b modPoly) (g, s, t modPoly) {
	r0, r1 := a.trim(), b.trim()
	s0, s1 := modPoly{1}, modPoly{}
	t0, t1 := modPoly{}, modPoly{1}
	for len(r1) > 0 {
		q, r := f.divMod(r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, f.sub(s0, f.mul(q, s1))
		t0, t1 = t1, f.sub(t0, f.mul(q, t1))
	}
	if len(r0) == 0 {
		return modPoly{}, modPoly{}, modPoly{}
	}
	c := f.inv(r0[len(r0)-1])
	return f.scale(r0, c), f.scale(s0, c), f.scale(t0, c)
}

// powMod returns base^e mod m for a non-negative exponent e
func (f primeField) powMod(base modPoly, e *big.Int, m modPoly) modPoly {
	_, retVal := f.divMod(modPoly{1}, m)
	_, b := f.divMod(base, m)
	for i := e.BitLen() - 1; 0 <= i; i-- {
		_, retVal = f.divMod(f.mul(retVal, retVal), m)
		if e.Bit(i) == 1 {
			_, retVal = f.divMod(f.mul(retVal, b), m)
		}
	}
	return retVal
}

func (f primeField) derivative(a modPoly) modPoly {
	if len(a) < 2 {
		return modPoly{}
	}
	retVal := make(modPoly, len(a)-1)
	for i := 1; i < len(a); i++ {
		retVal[i-1] = (a[i] * (uint64(i) % f.p)) % f.p
	}
	return retVal.trim()
}

// isSquarefree returns whether a has no repeated factor over the field
func (f primeField) isSquarefree(a modPoly) bool {
	return f.gcd(a, f.derivative(a)).degree() == 0
}

// distinctDegree splits a monic squarefree polynomial into the products of its
// irreducible factors of each degree:
//
//	h_d = x^(p^d) mod a,   part_d = gcd(a, h_d - x),   a = a / part_d
//
// stopping once 2d exceeds the degree of what remains, which is then irreducible.
func (f primeField) distinctDegree(a modPoly) []ddfPart {
	var retVal []ddfPart
	x := modPoly{0, 1}
	pBig := new(big.Int).SetUint64(f.p)
	remaining := a
	h := x
	for d := 1; 2*d <= remaining.degree(); d++ {
		h = f.powMod(h, pBig, remaining)
		part := f.gcd(remaining, f.sub(h, x))
		if part.degree() > 0 {
			retVal = append(retVal, ddfPart{product: part, degree: d})
			remaining, _ = f.divMod(remaining, part)
			_, h = f.divMod(h, remaining)
		}
	}
	if remaining.degree() > 0 {
		retVal = append(retVal, ddfPart{product: remaining, degree: remaining.degree()})
	}
	return retVal
}

// equalDegree splits a monic product of irreducible factors, all of degree d,
// into those factors with the Cantor-Zassenhaus algorithm for odd p:
//
//	b = r^((p^d - 1)/2) - 1 mod a   for random r,   split on gcd(a, b)
func (f primeField) equalDegree(a modPoly, d int, rng *rand.Rand) []modPoly {
	if a.degree() == d {
		return []modPoly{a}
	}
	exponent := new(big.Int).Exp(new(big.Int).SetUint64(f.p), big.NewInt(int64(d)), nil)
	exponent.Sub(exponent, big.NewInt(1))
	exponent.Rsh(exponent, 1)
	for {
		r := make(modPoly, a.degree())
		for i := 0; i < len(r); i++ {
			r[i] = uint64(rng.Int63n(int64(f.p)))
		}
		r = r.trim()
		if r.degree() < 1 {
			continue
		}
		b := f.sub(f.powMod(r, exponent, a), modPoly{1})
		g := f.gcd(a, b)
		if (0 < g.degree()) && (g.degree() < a.degree()) {
			cofactor, _ := f.divMod(a, g)
			return append(f.equalDegree(g, d, rng), f.equalDegree(cofactor, d, rng)...)
		}
	}
}

// factorSquarefree returns the monic irreducible factors of a monic squarefree
// polynomial.
func (f primeField) factorSquarefree(a modPoly, rng *rand.Rand) []modPoly {
	var retVal []modPoly
	for _, part := range f.distinctDegree(a) {
		retVal = append(retVal, f.equalDegree(part.product, part.degree, rng)...)
	}
	return retVal
}
