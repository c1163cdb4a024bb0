package bigpoly

// Copyright (c) 2025 Colin McRae

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoly_Compose(t *testing.T) {
	const (
		numTests  = 40
		maxDegree = 6
		maxCoeff  = 15
		numPoints = 4
	)

	for testNbr := 0; testNbr < numTests; testNbr++ {
		p := randomPoly(1+rand.Intn(maxDegree), maxCoeff)
		n := p.Degree()
		c := big.NewInt(rand.Int63n(11) - 5)
		shifted := p.TaylorShift(c)
		negated := p.ComposeNeg()
		halved := p.HalveVariable()
		reversed := p.Reverse()
		for pointNbr := 0; pointNbr < numPoints; pointNbr++ {
			x := randomRat(20, 10)
			if x.Sign() == 0 {
				x.SetInt64(1)
			}

			// p(x + c)
			require.Equal(t, 0, p.EvalRat(new(big.Rat).Add(x, new(big.Rat).SetInt(c))).Cmp(shifted.EvalRat(x)))

			// p(-x)
			require.Equal(t, 0, p.EvalRat(new(big.Rat).Neg(x)).Cmp(negated.EvalRat(x)))

			// 2^n p(x/2)
			expected := p.EvalRat(new(big.Rat).Quo(x, big.NewRat(2, 1)))
			expected.Mul(expected, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(n))))
			require.Equal(t, 0, expected.Cmp(halved.EvalRat(x)))

			// x^n p(1/x)
			expected = p.EvalRat(new(big.Rat).Inv(x))
			for i := 0; i < n; i++ {
				expected.Mul(expected, x)
			}
			require.Equal(t, 0, expected.Cmp(reversed.EvalRat(x)))
		}
	}
}

func TestPoly_ComposeAffine(t *testing.T) {
	const (
		numTests  = 40
		maxDegree = 6
		maxCoeff  = 15
		numPoints = 6
	)

	for testNbr := 0; testNbr < numTests; testNbr++ {
		p := randomPoly(1+rand.Intn(maxDegree), maxCoeff)
		c0 := randomRat(10, 7)
		c1 := randomRat(10, 7)
		if c1.Sign() == 0 {
			c1.SetInt64(3)
		}
		composed := p.ComposeAffine(c0, c1)
		require.Equal(t, p.Degree(), composed.Degree())
		require.Equal(t, 0, big.NewInt(1).Cmp(composed.Content()))
		for pointNbr := 0; pointNbr < numPoints; pointNbr++ {
			x := randomRat(10, 10)
			image := new(big.Rat).Mul(c1, x)
			image.Add(image, c0)
			require.Equal(t, p.SignAt(image), composed.SignAt(x))
		}
	}
}

func TestPoly_Homogenize(t *testing.T) {
	const (
		numTests  = 30
		maxDegree = 5
		maxCoeff  = 10
	)

	for testNbr := 0; testNbr < numTests; testNbr++ {
		p := randomPoly(1+rand.Intn(maxDegree), maxCoeff)
		tInt := big.NewInt(rand.Int63n(9) - 4)
		x := randomRat(10, 5)
		if x.Sign() == 0 {
			x.SetInt64(2)
		}

		// x^n p(t/x)
		expected := p.EvalRat(new(big.Rat).Quo(new(big.Rat).SetInt(tInt), x))
		for i := 0; i < p.Degree(); i++ {
			expected.Mul(expected, x)
		}
		require.Equal(t, 0, expected.Cmp(p.Homogenize(tInt).EvalRat(x)))
	}
}

func TestPoly_SignVariations(t *testing.T) {
	require.Equal(t, 2, NewFromInt64(1, -3, 0, 1).SignVariations())
	require.Equal(t, 0, NewFromInt64(1, 2, 3).SignVariations())
	require.Equal(t, 1, NewFromInt64(-2, 0, 0, 1).SignVariations())
	require.Equal(t, 3, NewFromInt64(-1, 1, -1, 1).SignVariations())
	require.Equal(t, 0, Zero().SignVariations())
}

func TestPoly_CauchyBound(t *testing.T) {
	require.Equal(t, 0, big.NewRat(4, 1).Cmp(NewFromInt64(-2, 0, 1).CauchyBound()))
	require.Equal(t, 0, big.NewRat(7, 2).Cmp(NewFromInt64(3, -1, 2).CauchyBound()))
}

func TestPoly_ShiftAndScaleRoots(t *testing.T) {
	xSquaredMinusTwo := NewFromInt64(-2, 0, 1)

	// 1 +/- sqrt(2) are the roots of x^2 - 2x - 1
	actual := xSquaredMinusTwo.ShiftRoots(big.NewRat(1, 1))
	require.True(t, NewFromInt64(-1, -2, 1).Equals(actual), "got %s", actual)

	// +/- sqrt(2)/2 are the roots of 2x^2 - 1
	actual = xSquaredMinusTwo.ScaleRoots(big.NewRat(1, 2))
	require.True(t, NewFromInt64(-1, 0, 2).Equals(actual), "got %s", actual)

	// Scaling by a negative number keeps the result canonical
	actual = NewFromInt64(-1, 1).ScaleRoots(big.NewRat(-3, 1))
	require.True(t, NewFromInt64(3, 1).Equals(actual), "got %s", actual)
}
