package bigpoly

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"log/slog"
	"math/big"
	"math/rand"
	"sort"

	"github.com/predrag3141/algebraic/util"
)

// numGoodPrimes is how many primes, each keeping the polynomial squarefree, are
// tried before factoring over the integers with the one giving the fewest
// modular factors.
const numGoodPrimes = 5

// Factor is an irreducible factor together with the number of times it divides
// the polynomial that was factored
type Factor struct {
	Poly         *Poly // canonical and irreducible over the integers
	Multiplicity int
}

// Factorization is p = Unit * product over Factors of Poly^Multiplicity
type Factorization struct {
	Unit    *big.Int
	Factors []Factor
}

// Factor returns the factorization of a non-zero p into canonical irreducible
// polynomials. The factors are sorted by degree and then by coefficients.
func (p *Poly) Factor(caller string) (*Factorization, error) {
	caller = fmt.Sprintf("%s-Factor", caller)
	if p.IsZero() {
		return nil, fmt.Errorf("%s: cannot factor the zero polynomial", caller)
	}
	unit := p.Content()
	if p.LeadingCoeff().Sign() < 0 {
		unit.Neg(unit)
	}
	retVal := &Factorization{Unit: unit}
	for i, squarefree := range p.SquarefreeDecomposition() {
		if squarefree.Degree() < 1 {
			continue
		}
		irreducibles, err := factorSquarefree(squarefree, caller)
		if err != nil {
			return nil, fmt.Errorf("%s: could not factor %s: %q", caller, squarefree, err.Error())
		}
		for _, irreducible := range irreducibles {
			retVal.Factors = append(retVal.Factors, Factor{Poly: irreducible, Multiplicity: i + 1})
		}
	}
	sort.Slice(retVal.Factors, func(i, j int) bool {
		return lessPoly(retVal.Factors[i].Poly, retVal.Factors[j].Poly)
	})
	return retVal, nil
}

// IsIrreducible returns whether p has positive degree and no non-trivial
// factorization over the integers, up to its content.
func (p *Poly) IsIrreducible() bool {
	if p.Degree() < 1 {
		return false
	}
	if p.Degree() == 1 {
		return true
	}
	factorization, err := p.Factor("IsIrreducible")
	if err != nil {
		return false
	}
	return (len(factorization.Factors) == 1) && (factorization.Factors[0].Multiplicity == 1)
}

// lessPoly orders polynomials by degree, then by coefficients from the top down
func lessPoly(a, b *Poly) bool {
	if a.Degree() != b.Degree() {
		return a.Degree() < b.Degree()
	}
	for i := a.Degree(); 0 <= i; i-- {
		if cmp := a.coeffs[i].Cmp(b.coeffs[i]); cmp != 0 {
			return cmp < 0
		}
	}
	return false
}

// factorSquarefree returns the canonical irreducible factors of a canonical
// squarefree polynomial f by the Zassenhaus method:
//
//  1. Choose an odd prime p not dividing lc(f) with f mod p squarefree
//  2. Factor f mod p into monic irreducibles u_1, ..., u_r
//  3. Hensel-lift to f = lc(f) u_1 ... u_r mod p^k, with p^k beyond twice the
//     coefficient bound of any factor of f, scaled by lc(f)
//  4. Recombine: for subsets S of increasing size, the primitive part of
//     lc(f) prod_S u_i (symmetric mod p^k) is a factor if it divides f
func factorSquarefree(f *Poly, caller string) ([]*Poly, error) {
	caller = fmt.Sprintf("%s-factorSquarefree", caller)
	if f.Degree() <= 1 {
		return []*Poly{f}, nil
	}
	if f.coeffs[0].Sign() == 0 {
		rest, err := f.DivExact(Var(), caller)
		if err != nil {
			return nil, fmt.Errorf("%s: could not divide %s by x: %q", caller, f, err.Error())
		}
		restFactors, err := factorSquarefree(rest, caller)
		if err != nil {
			return nil, err
		}
		return append([]*Poly{Var()}, restFactors...), nil
	}

	field, modularFactors := choosePrime(f)
	if len(modularFactors) == 1 {
		return []*Poly{f}, nil
	}
	modulus, k := liftingModulus(f, field.p)
	lifted := henselLift(f, field, modularFactors, k, modulus, caller)
	return recombine(f, lifted, modulus, caller)
}

// choosePrime returns the field, among the first numGoodPrimes good primes, over
// which f has the fewest irreducible factors, along with those factors. A prime
// is good if it is odd, does not divide the leading coefficient and keeps f
// squarefree.
func choosePrime(f *Poly) (primeField, []modPoly) {
	var bestField primeField
	var bestFactors []modPoly
	numGood := 0
	for prime := int64(3); numGood < numGoodPrimes; prime = util.NextPrime(prime) {
		field := primeField{p: uint64(prime)}
		util.Assert(field.p < maxFieldPrime, "choosePrime", "prime %d is too large", prime)
		if field.fromBigInt(f.LeadingCoeff()) == 0 {
			continue
		}
		reduced := field.fromPoly(f)
		if !field.isSquarefree(reduced) {
			continue
		}
		numGood++
		rng := rand.New(rand.NewSource(prime))
		factors := field.factorSquarefree(field.monic(reduced), rng)
		if (bestFactors == nil) || (len(factors) < len(bestFactors)) {
			bestField, bestFactors = field, factors
		}
		if len(factors) == 1 {
			break
		}
	}
	slog.Default().Debug("bigpoly: chose factoring prime",
		slog.Uint64("prime", bestField.p),
		slog.Int("degree", f.Degree()),
		slog.Int("modularFactors", len(bestFactors)),
	)
	return bestField, bestFactors
}

// liftingModulus returns p^k and k for the least k with
//
//	p^k > 2 |lc(f)| 2^n (isqrt(sum c_i^2) + 1)
//
// where 2^n ||f||_2 bounds the coefficients of every factor of f (Mignotte).
func liftingModulus(f *Poly, p uint64) (*big.Int, int) {
	sumSquares := big.NewInt(0)
	for i := 0; i < len(f.coeffs); i++ {
		sumSquares.Add(sumSquares, new(big.Int).Mul(f.coeffs[i], f.coeffs[i]))
	}
	bound := new(big.Int).Sqrt(sumSquares)
	bound.Add(bound, big.NewInt(1))
	bound.Lsh(bound, uint(f.Degree()+1))
	bound.Mul(bound, new(big.Int).Abs(f.LeadingCoeff()))
	pBig := new(big.Int).SetUint64(p)
	modulus := new(big.Int).Set(pBig)
	k := 1
	for modulus.Cmp(bound) <= 0 {
		modulus.Mul(modulus, pBig)
		k++
	}
	return modulus, k
}

// henselLift returns integer polynomials U_1, ..., U_r, monic modulo p^k, with
// U_i = u_i mod p and f = lc(f) U_1 ... U_r mod p^k. It lifts one factor at a
// time off the remaining cofactor F:
//
//	F = g h mod p  ->  F = G H mod p^k,  g = u_i,  h = lc(f) u_(i+1) ... u_r
func henselLift(f *Poly, field primeField, factors []modPoly, k int, modulus *big.Int, caller string) []*Poly {
	caller = fmt.Sprintf("%s-henselLift", caller)
	lc := field.fromBigInt(f.LeadingCoeff())
	retVal := make([]*Poly, len(factors))
	cofactor := f
	for i := 0; i < len(factors)-1; i++ {
		h0 := modPoly{lc}
		for j := i + 1; j < len(factors); j++ {
			h0 = field.mul(h0, factors[j])
		}
		retVal[i], cofactor = liftPair(cofactor, factors[i], h0, field, k, caller)
	}

	// The last cofactor is lc(f) U_r mod p^k
	lcInv := new(big.Int).ModInverse(f.LeadingCoeff(), modulus)
	util.Assert(lcInv != nil, caller, "%s is not invertible mod %s", f.LeadingCoeff(), modulus)
	retVal[len(factors)-1] = modPolyInt(cofactor.MulScalar(lcInv), modulus)
	return retVal
}

// liftPair lifts F = g0 h0 mod p, with g0 monic and coprime to h0, to
// F = G H mod p^k with G monic. With s g0 + t h0 = 1 mod p, each step from p^j
// to p^(j+1) is
//
//	e = (F - G H) / p^j mod p
//	t e = q g0 + r,  deg r < deg g0
//	G = G + p^j r,   H = H + p^j (s e + q h0)
func liftPair(F *Poly, g0, h0 modPoly, field primeField, k int, caller string) (*Poly, *Poly) {
	caller = fmt.Sprintf("%s-liftPair", caller)
	one, s, t := field.extendedGcd(g0, h0)
	util.Assert(one.isOne(), caller, "modular factors are not coprime")
	g, h := field.toPoly(g0), field.toPoly(h0)
	pBig := new(big.Int).SetUint64(field.p)
	pj := big.NewInt(1)
	rem := new(big.Int)
	for j := 1; j < k; j++ {
		pj = new(big.Int).Mul(pj, pBig)
		diff := F.Sub(g.Mul(h))
		e := make(modPoly, len(diff.coeffs))
		for i := 0; i < len(diff.coeffs); i++ {
			quo := new(big.Int)
			quo.QuoRem(diff.coeffs[i], pj, rem)
			util.Assert(rem.Sign() == 0, caller, "F - GH is not divisible by p^%d", j)
			e[i] = field.fromBigInt(quo)
		}
		e = e.trim()
		q, tauG := field.divMod(field.mul(t, e), g0)
		tauH := field.add(field.mul(s, e), field.mul(q, h0))
		g = g.Add(field.toPoly(tauG).MulScalar(pj))
		h = h.Add(field.toPoly(tauH).MulScalar(pj))
	}
	return g, h
}

// recombine finds the true factors of f among products of subsets of the lifted
// factors, trying smaller subsets first. Once twice the subset size exceeds the
// number of lifted factors left, the remaining cofactor is irreducible.
func recombine(f *Poly, lifted []*Poly, modulus *big.Int, caller string) ([]*Poly, error) {
	caller = fmt.Sprintf("%s-recombine", caller)
	var retVal []*Poly
	remaining := f
	for size := 1; 2*size <= len(lifted); {
		found := false
		forEachSubset(len(lifted), size, func(subset []int) bool {
			product := Monomial(remaining.LeadingCoeff(), 0)
			for _, idx := range subset {
				product = modPolyInt(product.Mul(lifted[idx]), modulus)
			}
			candidate := symmetricModPoly(product, modulus).PrimitivePart()
			quotient, err := remaining.DivExact(candidate, caller)
			if err != nil {
				return true
			}
			canonical, _ := candidate.Canonical()
			retVal = append(retVal, canonical)
			remaining = quotient
			lifted = removeIndices(lifted, subset)
			found = true
			return false
		})
		if !found {
			size++
		}
	}
	if remaining.Degree() > 0 {
		canonical, _ := remaining.Canonical()
		retVal = append(retVal, canonical)
	}
	if len(retVal) == 0 {
		return nil, fmt.Errorf("%s: no factor found for %s", caller, f)
	}
	return retVal, nil
}

// forEachSubset calls visit with each size-element subset of {0, ..., n-1}, in
// lexicographic order, until visit returns false
func forEachSubset(n, size int, visit func([]int) bool) {
	subset := make([]int, size)
	for i := 0; i < size; i++ {
		subset[i] = i
	}
	for {
		if !visit(subset) {
			return
		}
		i := size - 1
		for (0 <= i) && (subset[i] == n-size+i) {
			i--
		}
		if i < 0 {
			return
		}
		subset[i]++
		for j := i + 1; j < size; j++ {
			subset[j] = subset[j-1] + 1
		}
	}
}

func removeIndices(polys []*Poly, indices []int) []*Poly {
	remove := make(map[int]bool, len(indices))
	for _, idx := range indices {
		remove[idx] = true
	}
	retVal := make([]*Poly, 0, len(polys)-len(indices))
	for i := 0; i < len(polys); i++ {
		if !remove[i] {
			retVal = append(retVal, polys[i])
		}
	}
	return retVal
}

// modPolyInt reduces the coefficients of q into [0, m)
func modPolyInt(q *Poly, m *big.Int) *Poly {
	coeffs := make([]*big.Int, len(q.coeffs))
	for i := 0; i < len(q.coeffs); i++ {
		coeffs[i] = new(big.Int).Mod(q.coeffs[i], m)
	}
	return newOwned(coeffs)
}

// symmetricModPoly reduces the coefficients of q into (-m/2, m/2]
func symmetricModPoly(q *Poly, m *big.Int) *Poly {
	half := new(big.Int).Rsh(m, 1)
	coeffs := make([]*big.Int, len(q.coeffs))
	for i := 0; i < len(q.coeffs); i++ {
		coeffs[i] = new(big.Int).Mod(q.coeffs[i], m)
		if coeffs[i].Cmp(half) > 0 {
			coeffs[i].Sub(coeffs[i], m)
		}
	}
	return newOwned(coeffs)
}
