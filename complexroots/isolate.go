package complexroots

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"log/slog"
	"math/big"
	"sort"

	"github.com/predrag3141/algebraic/bigpoly"
	"github.com/predrag3141/algebraic/util"
)

const (
	// maxSplitPrime bounds the denominators of the ratios BisectBox tries
	maxSplitPrime = 1000

	// maxLog2Radius bounds the search for a box holding all upper half plane roots
	maxLog2Radius = 1024
)

// boxCount is a box known to contain count roots
type boxCount struct {
	box   Box
	count int
}

// BisectBox splits a box known to contain n roots of p, none on its boundary,
// into two boxes whose boundaries also carry no roots. The longer side is cut at
// the fractions i/q of its length for q = 2, 3, 5, 7, ..., with i/q closest to 1/2
// tried first, until a cut avoids every root.
func BisectBox(p *bigpoly.Poly, n int, box Box, caller string) (Box, int, Box, int, error) {
	caller = fmt.Sprintf("%s-BisectBox", caller)
	splitRe := box.Width().Cmp(box.Height()) >= 0
	for q := int64(2); q < maxSplitPrime; q = util.NextPrime(q) {
		for _, i := range ratiosNearHalf(q) {
			ratio := big.NewRat(i, q)
			first, second := splitBox(box, ratio, splitRe)
			firstCount, firstOk, err := CountRoots(p, first, caller)
			if err != nil {
				return Box{}, 0, Box{}, 0, fmt.Errorf("%s: could not count roots in %s: %q", caller, first, err.Error())
			}
			if !firstOk {
				continue
			}
			secondCount, secondOk, err := CountRoots(p, second, caller)
			if err != nil {
				return Box{}, 0, Box{}, 0, fmt.Errorf("%s: could not count roots in %s: %q", caller, second, err.Error())
			}
			if !secondOk {
				continue
			}
			util.Assert(
				firstCount+secondCount == n, caller, "%s split into %d + %d roots, not %d",
				box, firstCount, secondCount, n,
			)
			return first, firstCount, second, secondCount, nil
		}
	}
	return Box{}, 0, Box{}, 0, fmt.Errorf("%s: no cut of %s with denominator below %d avoids the roots of %s", caller, box, maxSplitPrime, p)
}

// ratiosNearHalf returns 1, ..., q-1 ordered by the distance of i/q from 1/2
func ratiosNearHalf(q int64) []int64 {
	retVal := make([]int64, 0, q-1)
	for i := int64(1); i < q; i++ {
		retVal = append(retVal, i)
	}
	sort.SliceStable(retVal, func(a, b int) bool {
		distA, distB := 2*retVal[a]-q, 2*retVal[b]-q
		if distA < 0 {
			distA = -distA
		}
		if distB < 0 {
			distB = -distB
		}
		return distA < distB
	})
	return retVal
}

// splitBox cuts box at the given fraction of its width (splitRe) or height
func splitBox(box Box, ratio *big.Rat, splitRe bool) (Box, Box) {
	first, second := box.Clone(), box.Clone()
	if splitRe {
		cut := new(big.Rat).Mul(box.Width(), ratio)
		cut.Add(cut, box.A)
		first.B, second.A = cut, new(big.Rat).Set(cut)
	} else {
		cut := new(big.Rat).Mul(box.Height(), ratio)
		cut.Add(cut, box.C)
		first.D, second.C = cut, new(big.Rat).Set(cut)
	}
	return first, second
}

// IsolateUpperHalfPlane returns boxes in the open upper half plane, each holding
// exactly one root of the squarefree polynomial p, given that p has target roots
// with positive imaginary part. It looks for the boxes
//
//	[-2^k, 2^k] x [2^-k, 2^k],  k = 1, 2, ...
//
// until one holds all target roots, skipping boxes with roots on the boundary, and
// then bisects recursively. The boxes are ordered by their lower left corners.
func IsolateUpperHalfPlane(p *bigpoly.Poly, target int, caller string) ([]Box, error) {
	caller = fmt.Sprintf("%s-IsolateUpperHalfPlane", caller)
	if util.AssertionsEnabled {
		util.Assert(p.IsSquarefree(), caller, "%s is not squarefree", p)
	}
	if target == 0 {
		return []Box{}, nil
	}
	var start *boxCount
	for k := 1; k <= maxLog2Radius; k++ {
		radius := util.PowerOfTwo(k)
		box := Box{
			A: new(big.Rat).Neg(radius),
			B: radius,
			C: util.PowerOfTwo(-k),
			D: util.PowerOfTwo(k),
		}
		count, ok, err := CountRoots(p, box, caller)
		if err != nil {
			return nil, fmt.Errorf("%s: could not count roots in %s: %q", caller, box, err.Error())
		}
		if !ok {
			slog.Default().Debug("complexroots: root on boundary of search box",
				slog.String("poly", p.String()), slog.Int("log2Radius", k),
			)
			continue
		}
		util.Assert(count <= target, caller, "%s has %d roots in %s, more than %d", p, count, box, target)
		if count == target {
			start = &boxCount{box: box, count: count}
			break
		}
	}
	if start == nil {
		return nil, fmt.Errorf("%s: no box of radius up to 2^%d holds %d roots of %s", caller, maxLog2Radius, target, p)
	}

	var retVal []Box
	stack := []boxCount{*start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch current.count {
		case 0:
			continue
		case 1:
			retVal = append(retVal, current.box)
			continue
		}
		first, firstCount, second, secondCount, err := BisectBox(p, current.count, current.box, caller)
		if err != nil {
			return nil, fmt.Errorf("%s: could not bisect %s: %q", caller, current.box, err.Error())
		}
		stack = append(stack, boxCount{box: first, count: firstCount}, boxCount{box: second, count: secondCount})
	}
	sort.Slice(retVal, func(i, j int) bool {
		if cmp := retVal[i].A.Cmp(retVal[j].A); cmp != 0 {
			return cmp < 0
		}
		return retVal[i].C.Cmp(retVal[j].C) < 0
	})
	return retVal, nil
}

// RefineBox returns a box inside box that holds the single root of p that box
// holds, with its longer side cut roughly in half
func RefineBox(p *bigpoly.Poly, box Box, caller string) (Box, error) {
	caller = fmt.Sprintf("%s-RefineBox", caller)
	first, firstCount, second, _, err := BisectBox(p, 1, box, caller)
	if err != nil {
		return Box{}, fmt.Errorf("%s: could not bisect %s: %q", caller, box, err.Error())
	}
	if firstCount == 1 {
		return first, nil
	}
	return second, nil
}
