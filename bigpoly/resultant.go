package bigpoly

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/big"

	"github.com/predrag3141/algebraic/util"
)

// Resultant returns the resultant of a and b, the determinant of their Sylvester
// matrix. It is zero exactly when a and b have a common root (or either is zero).
// The resultant of two non-zero constants is 1, and for a of degree 0 it is
// a_0^deg(b), and symmetrically.
func Resultant(a, b *Poly) *big.Int {
	if a.IsZero() || b.IsZero() {
		return big.NewInt(0)
	}
	m, n := a.Degree(), b.Degree()
	if m == 0 {
		return new(big.Int).Exp(a.coeffs[0], big.NewInt(int64(n)), nil)
	}
	if n == 0 {
		return new(big.Int).Exp(b.coeffs[0], big.NewInt(int64(m)), nil)
	}

	// The Sylvester matrix has n shifted rows of a's coefficients followed by m
	// shifted rows of b's, with coefficients in descending order of degree:
	//
	//   a_m a_(m-1) ... a_0   0   ...  0
	//    0  a_m   a_(m-1) ... a_0 ...  0
	//   ...
	//   b_n b_(n-1) ... b_0   0   ...  0
	//   ...
	size := m + n
	sylvester := make([][]*big.Int, size)
	for i := 0; i < size; i++ {
		sylvester[i] = make([]*big.Int, size)
		for j := 0; j < size; j++ {
			sylvester[i][j] = big.NewInt(0)
		}
	}
	for i := 0; i < n; i++ {
		for k := 0; k <= m; k++ {
			sylvester[i][i+k].Set(a.coeffs[m-k])
		}
	}
	for i := 0; i < m; i++ {
		for k := 0; k <= n; k++ {
			sylvester[n+i][i+k].Set(b.coeffs[n-k])
		}
	}
	return bareissDeterminant(sylvester)
}

// bareissDeterminant returns the determinant of the square matrix mat, which it
// overwrites. Bareiss' fraction-free elimination keeps every entry an integer:
//
//	M[i][j] = (M[i][j] M[k][k] - M[i][k] M[k][j]) / M[k-1][k-1]
//
// with the division exact, and M[-1][-1] = 1.
func bareissDeterminant(mat [][]*big.Int) *big.Int {
	size := len(mat)
	sign := 1
	prevPivot := big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)
	for k := 0; k < size-1; k++ {
		if mat[k][k].Sign() == 0 {
			swapRow := -1
			for i := k + 1; i < size; i++ {
				if mat[i][k].Sign() != 0 {
					swapRow = i
					break
				}
			}
			if swapRow < 0 {
				return big.NewInt(0)
			}
			mat[k], mat[swapRow] = mat[swapRow], mat[k]
			sign = -sign
		}
		for i := k + 1; i < size; i++ {
			for j := k + 1; j < size; j++ {
				t1.Mul(mat[i][j], mat[k][k])
				t2.Mul(mat[i][k], mat[k][j])
				t1.Sub(t1, t2)
				mat[i][j].Quo(t1, prevPivot)
			}
		}
		prevPivot = mat[k][k]
	}
	retVal := new(big.Int).Set(mat[size-1][size-1])
	if sign < 0 {
		retVal.Neg(retVal)
	}
	return retVal
}

// RootSumPoly returns the canonical squarefree polynomial whose roots are the sums
// alpha + beta of a root alpha of p and a root beta of q, namely the squarefree
// part of
//
//	R(z) = Res_x( p(x), q(z - x) )
//
// R has degree deg(p) deg(q), so it is recovered exactly from its values at
// z = 0, 1, ..., deg(p) deg(q) by interpolation.
func RootSumPoly(p, q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	qNeg := q.ComposeNeg()
	numPoints := p.Degree()*q.Degree() + 1
	values := make([]*big.Int, numPoints)
	for z := 0; z < numPoints; z++ {
		// q(z - x) = qNeg(x - z)
		shifted := qNeg.TaylorShift(big.NewInt(int64(-z)))
		values[z] = Resultant(p, shifted)
	}
	return interpolate(values, "RootSumPoly").SquarefreePart()
}

// RootProductPoly returns the canonical squarefree polynomial whose roots are the
// products alpha beta of a root alpha of p and a root beta of q, namely the
// squarefree part of
//
//	R(t) = Res_x( p(x), x^n q(t/x) ),  n = deg(q)
//
// recovered by interpolation like RootSumPoly. Zero roots are split off first so
// that the homogenized polynomial keeps degree n at every sample point.
func RootProductPoly(p, q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	pStripped, pHadZero := stripZeroRoots(p)
	qStripped, qHadZero := stripZeroRoots(q)
	numPoints := pStripped.Degree()*qStripped.Degree() + 1
	values := make([]*big.Int, numPoints)
	for t := 0; t < numPoints; t++ {
		values[t] = Resultant(pStripped, qStripped.Homogenize(big.NewInt(int64(t))))
	}
	retVal := interpolate(values, "RootProductPoly")
	if (pHadZero && (q.Degree() > 0)) || (qHadZero && (p.Degree() > 0)) {
		retVal = retVal.MulVarPow(1)
	}
	return retVal.SquarefreePart()
}

// stripZeroRoots returns p / x^k for the largest k such that x^k divides p, and
// whether k > 0.
func stripZeroRoots(p *Poly) (*Poly, bool) {
	k := 0
	for (k < len(p.coeffs)) && (p.coeffs[k].Sign() == 0) {
		k++
	}
	if k == 0 {
		return p, false
	}
	return newOwned(p.Coeffs()[k:]), true
}

// interpolate returns the integer polynomial P of degree less than len(values)
// with P(i) = values[i] for i = 0, 1, ..., using Newton's divided differences.
// Because the sample points are consecutive integers, the divided difference of
// order j divides by j:
//
//	d[i] = (d[i] - d[i-1]) / j   for i = n, ..., j
//	P(x) = d[0] + x (d[1] + (x-1) (d[2] + (x-2) (...)))
func interpolate(values []*big.Int, caller string) *Poly {
	caller = fmt.Sprintf("%s-interpolate", caller)
	n := len(values)
	d := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		d[i] = new(big.Rat).SetInt(values[i])
	}
	for j := 1; j < n; j++ {
		divisor := new(big.Rat).SetInt64(int64(j))
		for i := n - 1; j <= i; i-- {
			d[i].Sub(d[i], d[i-1])
			d[i].Quo(d[i], divisor)
		}
	}
	acc := ratPoly{d[n-1]}.trim()
	for k := n - 2; 0 <= k; k-- {
		acc = ratPolyAdd(
			ratPolyMul(acc, ratPoly{new(big.Rat).SetInt64(int64(-k)), big.NewRat(1, 1)}),
			ratPoly{d[k]},
		)
	}
	coeffs := make([]*big.Int, len(acc))
	for i := 0; i < len(acc); i++ {
		util.Assert(acc[i].IsInt(), caller, "non-integer coefficient %s", acc[i].RatString())
		coeffs[i] = new(big.Int).Set(acc[i].Num())
	}
	return newOwned(coeffs)
}
