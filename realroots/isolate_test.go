package realroots

// Copyright (c) 2025 Colin McRae

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/predrag3141/algebraic/bigpoly"
)

func TestIsolate_EndpointInclusion(t *testing.T) {
	// (x-1)(x-2)(x-3)(x-4) on the range from 1 to 4
	p := bigpoly.FromRationalRoots(big.NewRat(1, 1), big.NewRat(2, 1), big.NewRat(3, 1), big.NewRat(4, 1))
	lo, hi := big.NewRat(1, 1), big.NewRat(4, 1)
	testCases := []struct {
		includeLo, includeHi bool
		expected             int
	}{
		{false, false, 2},
		{true, false, 3},
		{false, true, 3},
		{true, true, 4},
	}
	for _, testCase := range testCases {
		rootSet, err := Isolate(p, lo, hi, testCase.includeLo, testCase.includeHi, "TestIsolate_EndpointInclusion")
		require.NoError(t, err)
		require.Equal(t, testCase.expected, rootSet.Len())
		require.NoError(t, rootSet.CheckInvariants("TestIsolate_EndpointInclusion"))
	}
}

func TestIsolate_Counts(t *testing.T) {
	testCases := []struct {
		p        *bigpoly.Poly
		expected int
	}{
		{bigpoly.NewFromInt64(3, -3, 0, 0, 0, 1), 1},
		{bigpoly.NewFromInt64(1, -3, 0, 0, 0, 1), 3},
		{bigpoly.NewFromInt64(-2, 0, 1), 2},
		{bigpoly.NewFromInt64(1, 0, 1), 0},
		{bigpoly.NewFromInt64(1, -3, 0, 1), 3},
		{bigpoly.NewFromInt64(1, 0, -10, 0, 1), 4},
		{bigpoly.NewFromInt64(0, -2, 0, 1), 3},
		{bigpoly.NewFromInt64(-1, 2), 1},
		{bigpoly.NewFromInt64(7), 0},
	}
	for i, testCase := range testCases {
		rootSet, err := Isolate(testCase.p, nil, nil, false, false, "TestIsolate_Counts")
		require.NoError(t, err)
		require.Equalf(t, testCase.expected, rootSet.Len(), "test case %d: %s", i, rootSet)
		require.NoError(t, rootSet.CheckInvariants("TestIsolate_Counts"))
	}
}

func TestIsolate_ExactRoots(t *testing.T) {
	// x (x^2 - 2) on (-1, 1) has one root, isolated by the whole range, and
	// bisection lands on it
	rootSet, err := Isolate(bigpoly.NewFromInt64(0, -2, 0, 1), big.NewRat(-1, 1), big.NewRat(1, 1), false, false, "TestIsolate_ExactRoots")
	require.NoError(t, err)
	require.Equal(t, 1, rootSet.Len())
	require.Equal(t, -1, rootSet.Entries[0].Lower().Sign())
	require.Equal(t, 1, rootSet.Entries[0].Upper().Sign())
	for i := 0; (i < 10) && !rootSet.Entries[0].IsExact(); i++ {
		rootSet.Refine(0)
	}
	require.True(t, rootSet.Entries[0].IsExact())
	require.Equal(t, 0, rootSet.Entries[0].Point().Sign())

	// x (4x^2 - 1) on (-1, 1) splits the range at its root 0
	rootSet, err = Isolate(bigpoly.NewFromInt64(0, -1, 0, 4), big.NewRat(-1, 1), big.NewRat(1, 1), false, false, "TestIsolate_ExactRoots")
	require.NoError(t, err)
	require.Equal(t, 3, rootSet.Len())
	require.NoError(t, rootSet.CheckInvariants("TestIsolate_ExactRoots"))
	require.True(t, rootSet.Entries[1].IsExact())
	require.Equal(t, 0, rootSet.Entries[1].Point().Sign())

	// 2x - 1 has the single root 1/2
	p := bigpoly.NewFromInt64(-1, 2)
	rootSet, err = Isolate(p, nil, nil, false, false, "TestIsolate_ExactRoots")
	require.NoError(t, err)
	require.Equal(t, 1, rootSet.Len())
	require.Equal(t, 0, big.NewRat(1, 2).Cmp(rootSet.Entries[0].Root))
	rootSet, err = Isolate(p, big.NewRat(0, 1), big.NewRat(1, 2), false, false, "TestIsolate_ExactRoots")
	require.NoError(t, err)
	require.Equal(t, 0, rootSet.Len())
	rootSet, err = Isolate(p, big.NewRat(0, 1), big.NewRat(1, 2), false, true, "TestIsolate_ExactRoots")
	require.NoError(t, err)
	require.Equal(t, 1, rootSet.Len())

	// A single point
	rootSet, err = Isolate(p, big.NewRat(1, 2), big.NewRat(1, 2), true, true, "TestIsolate_ExactRoots")
	require.NoError(t, err)
	require.Equal(t, 1, rootSet.Len())
	rootSet, err = Isolate(p, big.NewRat(1, 2), big.NewRat(1, 2), true, false, "TestIsolate_ExactRoots")
	require.NoError(t, err)
	require.Equal(t, 0, rootSet.Len())

	_, err = Isolate(p, big.NewRat(1, 1), big.NewRat(1, 2), true, true, "TestIsolate_ExactRoots")
	require.Error(t, err)
	_, err = Isolate(bigpoly.NewFromInt64(7), big.NewRat(1, 1), big.NewRat(1, 2), false, false, "TestIsolate_ExactRoots")
	require.Error(t, err)
	_, err = Isolate(bigpoly.Zero(), nil, nil, false, false, "TestIsolate_ExactRoots")
	require.Error(t, err)
}

func TestIsolate_HalfBounded(t *testing.T) {
	sqrt2Poly := bigpoly.NewFromInt64(-2, 0, 1)
	testCases := []struct {
		p        *bigpoly.Poly
		lo, hi   *big.Rat
		expected int
	}{
		// Ranges beyond every root
		{sqrt2Poly, big.NewRat(100, 1), nil, 0},
		{bigpoly.NewFromInt64(-3, 1), nil, big.NewRat(-10, 1), 0},

		{sqrt2Poly, big.NewRat(0, 1), nil, 1},
		{sqrt2Poly, nil, big.NewRat(0, 1), 1},
		{bigpoly.NewFromInt64(-3, 1), big.NewRat(-10, 1), nil, 1},
	}
	for i, testCase := range testCases {
		rootSet, err := Isolate(testCase.p, testCase.lo, testCase.hi, false, false, "TestIsolate_HalfBounded")
		require.NoErrorf(t, err, "test case %d", i)
		require.Equalf(t, testCase.expected, rootSet.Len(), "test case %d", i)
		require.NoError(t, rootSet.CheckInvariants("TestIsolate_HalfBounded"))
	}
}

func TestIsolate_RandomRationalRoots(t *testing.T) {
	const (
		numTests    = 25
		maxRoots    = 6
		maxNum      = 20
		maxDen      = 6
		targetWidth = 1000
	)

	for testNbr := 0; testNbr < numTests; testNbr++ {
		// Distinct rational roots, times x^2 + 1 so that not every root is real
		numRoots := 1 + rand.Intn(maxRoots)
		roots := make([]*big.Rat, 0, numRoots)
		for len(roots) < numRoots {
			r := big.NewRat(rand.Int63n(2*maxNum+1)-maxNum, 1+rand.Int63n(maxDen))
			duplicate := false
			for _, root := range roots {
				duplicate = duplicate || (root.Cmp(r) == 0)
			}
			if !duplicate {
				roots = append(roots, r)
			}
		}
		p := bigpoly.FromRationalRoots(roots...).Mul(bigpoly.NewFromInt64(1, 0, 1))
		rootSet, err := Isolate(p, nil, nil, false, false, "TestIsolate_RandomRationalRoots")
		require.NoError(t, err)
		require.Equal(t, numRoots, rootSet.Len())
		require.NoError(t, rootSet.CheckInvariants("TestIsolate_RandomRationalRoots"))

		// Refinement nests intervals, and each final interval holds one of the roots
		width := big.NewRat(1, targetWidth)
		for idx := 0; idx < rootSet.Len(); idx++ {
			for (!rootSet.Entries[idx].IsExact()) && (rootSet.Entries[idx].Interval.Width().Cmp(width) >= 0) {
				before := rootSet.Entries[idx].Clone()
				rootSet.Refine(idx)
				after := rootSet.Entries[idx]
				require.LessOrEqual(t, 0, after.Lower().Cmp(before.Lower()))
				require.LessOrEqual(t, after.Upper().Cmp(before.Upper()), 0)
			}
			numInside := 0
			for _, root := range roots {
				if (rootSet.Entries[idx].Lower().Cmp(root) <= 0) && (root.Cmp(rootSet.Entries[idx].Upper()) <= 0) {
					numInside++
				}
			}
			require.Equal(t, 1, numInside)
		}
		require.NoError(t, rootSet.CheckInvariants("TestIsolate_RandomRationalRoots"))
	}
}

func TestRootSet_RefineToWidth(t *testing.T) {
	rootSet, err := Isolate(bigpoly.NewFromInt64(-2, 0, 1), nil, nil, false, false, "TestRootSet_RefineToWidth")
	require.NoError(t, err)
	require.Equal(t, 2, rootSet.Len())
	width := big.NewRat(1, 1000000)
	for idx := 0; idx < 2; idx++ {
		rootSet.RefineToWidth(idx, width)
		require.False(t, rootSet.Entries[idx].IsExact())
		require.Equal(t, -1, rootSet.Entries[idx].Interval.Width().Cmp(width))
	}
	require.False(t, rootSet.Entries[0].Interval.Increasing)
	require.True(t, rootSet.Entries[1].Interval.Increasing)
	require.NoError(t, rootSet.CheckInvariants("TestRootSet_RefineToWidth"))

	// sqrt(2) = 1.41421356...
	require.Equal(t, 1, rootSet.Entries[1].Interval.A.Cmp(big.NewRat(1414212, 1000000)))
	require.Equal(t, -1, rootSet.Entries[1].Interval.B.Cmp(big.NewRat(1414215, 1000000)))
}
