package algebraic

// Copyright (c) 2025 Colin McRae

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/predrag3141/algebraic/bigpoly"
)

// sqrt returns the positive square root of n as a Real
func sqrt(t *testing.T, n int64) *Real {
	roots, err := RealRoots(bigpoly.NewFromInt64(-n, 0, 1), "sqrt")
	require.NoError(t, err)
	require.Len(t, roots, 2)
	return roots[1]
}

func TestRealRoots(t *testing.T) {
	// (x - 1)^2 (x^2 - 2)
	p := bigpoly.NewFromInt64(1, -1).Neg().Pow(2).Mul(bigpoly.NewFromInt64(-2, 0, 1))
	roots, err := RealRoots(p, "TestRealRoots")
	require.NoError(t, err)
	require.Len(t, roots, 4)
	for i, root := range roots {
		require.NoErrorf(t, root.CheckInvariants("TestRealRoots"), "root %d", i)
	}
	require.False(t, roots[0].IsRational())
	require.True(t, roots[1].IsRational())
	require.True(t, roots[2].IsRational())
	require.False(t, roots[3].IsRational())
	require.Equal(t, 0, roots[1].Rational().Cmp(big.NewRat(1, 1)))
	require.Equal(t, 0, roots[0].Neg().Cmp(roots[3]))
	require.Equal(t, 2, roots[3].Degree())

	// Polynomials without real roots
	roots, err = RealRoots(bigpoly.NewFromInt64(1, 0, 1), "TestRealRoots")
	require.NoError(t, err)
	require.Len(t, roots, 0)

	_, err = RealRoots(bigpoly.Zero(), "TestRealRoots")
	require.Error(t, err)
}

func TestRealRoots_XSquaredMinusTwo(t *testing.T) {
	roots, err := RealRoots(bigpoly.NewFromInt64(-2, 0, 1), "TestRealRoots_XSquaredMinusTwo")
	require.NoError(t, err)
	require.Len(t, roots, 2)
	require.Equal(t, -1, roots[0].Sign())
	require.Equal(t, 1, roots[1].Sign())
	require.Equal(t, -1, roots[0].Cmp(roots[1]))

	product, err := roots[0].Mul(roots[1])
	require.NoError(t, err)
	require.True(t, product.IsRational())
	require.Equal(t, 0, product.Rational().Cmp(big.NewRat(-2, 1)))
}

func TestRealRoots_DegreeOne(t *testing.T) {
	const (
		numTests = 50
		maxNum   = 1000
		maxDen   = 100
	)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < numTests; i++ {
		q := big.NewRat(rng.Int63n(2*maxNum+1)-maxNum, rng.Int63n(maxDen)+1)
		roots, err := RealRoots(bigpoly.FromRationalRoots(q), "TestRealRoots_DegreeOne")
		require.NoError(t, err)
		require.Len(t, roots, 1)
		require.True(t, roots[0].IsRational())
		require.Equalf(t, 0, roots[0].Rational().Cmp(q), "expected %s, got %s", q.RatString(), roots[0])
	}
}

func TestReal_Vieta(t *testing.T) {
	// Monic polynomials whose roots are all real, with the expected sum and
	// product of the roots
	testCases := []struct {
		p               *bigpoly.Poly
		expectedSum     *big.Rat
		expectedProduct *big.Rat
	}{
		{bigpoly.NewFromInt64(1, -3, 0, 1), big.NewRat(0, 1), big.NewRat(-1, 1)},
		{bigpoly.NewFromInt64(6, 0, -5, 0, 1), big.NewRat(0, 1), big.NewRat(6, 1)},
		{bigpoly.NewFromInt64(-1, -1, 1), big.NewRat(1, 1), big.NewRat(-1, 1)},
		{bigpoly.NewFromInt64(2, -2, -1, 1), big.NewRat(1, 1), big.NewRat(-2, 1)},
		{bigpoly.NewFromInt64(-1, -4, 0, 1), big.NewRat(0, 1), big.NewRat(1, 1)},
	}
	for i, testCase := range testCases {
		roots, err := RealRoots(testCase.p, "TestReal_Vieta")
		require.NoError(t, err)
		require.Lenf(t, roots, testCase.p.Degree(), "test case %d", i)
		sum, product := NewInt64(0, 1), NewInt64(1, 1)
		for _, root := range roots {
			sum, err = sum.Add(root)
			require.NoError(t, err)
			require.NoError(t, sum.CheckInvariants("TestReal_Vieta"))
			product, err = product.Mul(root)
			require.NoError(t, err)
			require.NoError(t, product.CheckInvariants("TestReal_Vieta"))
		}
		require.Truef(t, sum.IsRational(), "test case %d: sum %s", i, sum)
		require.Equalf(t, 0, sum.Rational().Cmp(testCase.expectedSum), "test case %d: sum %s", i, sum)
		require.Truef(t, product.IsRational(), "test case %d: product %s", i, product)
		require.Equalf(t, 0, product.Rational().Cmp(testCase.expectedProduct), "test case %d: product %s", i, product)
		t.Logf("Roots of %s sum to %s and multiply to %s", testCase.p, sum, product)
	}
}

func TestReal_Cmp(t *testing.T) {
	sqrt2, sqrt3 := sqrt(t, 2), sqrt(t, 3)
	sqrt8 := sqrt(t, 8)
	halfSqrt8, err := sqrt8.Mul(NewInt64(1, 2))
	require.NoError(t, err)
	onePlusSqrt2, err := sqrt2.Add(NewInt64(1, 1))
	require.NoError(t, err)

	// Values and their ranks; equal ranks are equal values
	values := []struct {
		x    *Real
		rank int
	}{
		{sqrt3.Neg(), 0},
		{sqrt2.Neg(), 1},
		{NewInt64(-1, 1), 2},
		{NewInt64(0, 1), 3},
		{NewInt64(1, 2), 4},
		{sqrt2, 5},
		{halfSqrt8, 5},
		{NewInt64(3, 2), 6},
		{sqrt3, 7},
		{onePlusSqrt2, 8},
		{sqrt8, 9},
	}
	for i, a := range values {
		for j, b := range values {
			expected := 0
			switch {
			case a.rank < b.rank:
				expected = -1
			case a.rank > b.rank:
				expected = 1
			}
			require.Equalf(t, expected, a.x.Cmp(b.x), "values %d and %d: %s vs %s", i, j, a.x, b.x)
		}
	}

	shuffled := make([]*Real, len(values))
	for i, value := range values {
		shuffled[len(values)-1-i] = value.x.Clone()
	}
	SortReals(shuffled)
	for i := 1; i < len(shuffled); i++ {
		require.LessOrEqual(t, shuffled[i-1].Cmp(shuffled[i]), 0)
	}

	require.Equal(t, 1, sqrt2.CmpRat(big.NewRat(141, 100)))
	require.Equal(t, -1, sqrt2.CmpRat(big.NewRat(142, 100)))
	require.NoError(t, sqrt2.CheckInvariants("TestReal_Cmp"))
	require.NoError(t, halfSqrt8.CheckInvariants("TestReal_Cmp"))
}

func TestReal_Refine(t *testing.T) {
	const numRefinements = 30

	x := sqrt(t, 5)
	lo, hi := x.Interval()
	for i := 0; i < numRefinements; i++ {
		x.Refine()
		newLo, newHi := x.Interval()
		require.LessOrEqual(t, lo.Cmp(newLo), 0)
		require.GreaterOrEqual(t, hi.Cmp(newHi), 0)
		lo, hi = newLo, newHi
	}
	require.NoError(t, x.CheckInvariants("TestReal_Refine"))
	require.Equal(t, -1, x.Width().Cmp(big.NewRat(1, 1<<20)))

	x.RefineToWidth(big.NewRat(1, 1<<40))
	require.Equal(t, -1, x.Width().Cmp(big.NewRat(1, 1<<40)))

	// Rationals have width 0 and do not change
	q := NewInt64(2, 3)
	q.Refine()
	require.Equal(t, 0, q.Width().Sign())
}

func TestReal_Format(t *testing.T) {
	sqrt2 := sqrt(t, 2)
	require.True(t, strings.HasPrefix(sqrt2.DecimalString(10), "1.414213562"))
	require.True(t, strings.HasPrefix(sqrt2.Neg().DecimalString(6), "-1.41421"))
	require.True(t, strings.HasPrefix(sqrt2.String(), "≈1.41"))
	require.Contains(t, sqrt2.String(), "±")

	require.Equal(t, "0.3333", NewInt64(1, 3).DecimalString(4))
	require.Equal(t, "1/3", NewInt64(1, 3).String())
	require.Equal(t, "-5", NewInt64(-5, 1).String())
}
