package realroots

// Copyright (c) 2025 Colin McRae

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/predrag3141/algebraic/bigpoly"
)

func isolateAll(t *testing.T, p *bigpoly.Poly) *RootSet {
	rootSet, err := Isolate(p, nil, nil, false, false, "isolateAll")
	require.NoError(t, err)
	return rootSet
}

func TestSeparate(t *testing.T) {
	testCases := []struct {
		a, b     *bigpoly.Poly
		expected []int
	}{
		// -sqrt(3) < -sqrt(2) < sqrt(2) < sqrt(3)
		{bigpoly.NewFromInt64(-2, 0, 1), bigpoly.NewFromInt64(-3, 0, 1), []int{1, 0, 0, 1}},

		// -sqrt(2) < sqrt(2) < 3/2
		{bigpoly.NewFromInt64(-2, 0, 1), bigpoly.NewFromInt64(-3, 2), []int{0, 0, 1}},

		// Roots of x^2 - 2 and 1000x^2 - 2001, close to sqrt(2) and sqrt(2.001)
		{bigpoly.NewFromInt64(-2, 0, 1), bigpoly.NewFromInt64(-2001, 0, 1000), []int{1, 0, 0, 1}},

		// x^3 - 3x + 1 against x^2 + 1, which has no real roots
		{bigpoly.NewFromInt64(1, -3, 0, 1), bigpoly.NewFromInt64(1, 0, 1), []int{0, 0, 0}},
	}
	for i, testCase := range testCases {
		a, b := isolateAll(t, testCase.a), isolateAll(t, testCase.b)
		refs, err := Separate(a, b, "TestSeparate")
		require.NoError(t, err)
		require.Lenf(t, refs, len(testCase.expected), "test case %d", i)
		nextIndex := [2]int{0, 0}
		for j, ref := range refs {
			require.Equalf(t, testCase.expected[j], ref.Set, "test case %d ref %d", i, j)
			require.Equal(t, nextIndex[ref.Set], ref.Index)
			nextIndex[ref.Set]++
		}

		// Consecutive refs are disjoint and increasing
		sets := [2]*RootSet{a, b}
		for j := 1; j < len(refs); j++ {
			prev := sets[refs[j-1].Set].Entries[refs[j-1].Index]
			next := sets[refs[j].Set].Entries[refs[j].Index]
			require.LessOrEqual(t, prev.Upper().Cmp(next.Lower()), 0)
		}
		require.NoError(t, a.CheckInvariants("TestSeparate"))
		require.NoError(t, b.CheckInvariants("TestSeparate"))
	}
}

func TestSeparate_SharedRoot(t *testing.T) {
	testCases := []struct {
		a, b *bigpoly.Poly
	}{
		// sqrt(2) and -sqrt(2)
		{bigpoly.NewFromInt64(-2, 0, 1), bigpoly.NewFromInt64(0, -2, 0, 1)},

		// 1 is a root of both
		{bigpoly.NewFromInt64(-1, 1), bigpoly.NewFromInt64(-1, 0, 1)},

		// 0 is a root of both
		{bigpoly.NewFromInt64(0, 1), bigpoly.NewFromInt64(0, -5, 0, 1)},
	}
	for i, testCase := range testCases {
		a, b := isolateAll(t, testCase.a), isolateAll(t, testCase.b)
		_, err := Separate(a, b, "TestSeparate_SharedRoot")
		require.ErrorIsf(t, err, ErrSharedRoot, "test case %d", i)
	}
}

func TestBound(t *testing.T) {
	half := Finite(big.NewRat(1, 2))
	two := Finite(big.NewRat(2, 1))
	require.Equal(t, -1, NegInf().Cmp(half))
	require.Equal(t, 1, PosInf().Cmp(half))
	require.Equal(t, 0, PosInf().Cmp(PosInf()))
	require.Equal(t, -1, NegInf().Cmp(PosInf()))
	require.Equal(t, -1, half.Cmp(two))
	require.Equal(t, 0, half.CmpRat(big.NewRat(2, 4)))
	require.Equal(t, -1, NegInf().CmpRat(big.NewRat(-1000, 1)))

	require.Equal(t, 0, two.Cmp(half.Invert()))
	require.True(t, Finite(new(big.Rat)).Invert().IsPosInf())
	require.Equal(t, 0, Bound{}.Cmp(PosInf().Invert()))
	require.True(t, NegInf().Neg().IsPosInf())
	require.Equal(t, "-1/2", half.Neg().String())
	require.Equal(t, "5/2", half.Add(two).String())
	require.True(t, PosInf().Add(two).IsPosInf())
	require.Nil(t, NegInf().Value())
	require.Panics(t, func() { NegInf().Add(PosInf()) })
}
