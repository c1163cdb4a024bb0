package realroots

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/predrag3141/algebraic/bigpoly"
	"github.com/predrag3141/algebraic/util"
)

// caNode is a subinterval (c/2^k, (c+1)/2^k) of [0, 1] in the Collins-Akritas
// search, together with a positive multiple of q(c/2^k + x/2^k) where q is the
// polynomial whose roots in (0, 1) are being isolated
type caNode struct {
	poly *bigpoly.Poly
	c    *big.Int
	k    int
}

// Isolate returns the real roots of the squarefree polynomial p in the range from
// lo to hi. A nil lo or hi means the range is unbounded on that side; includeLo and
// includeHi say whether the corresponding finite endpoint belongs to the range.
// Roots are returned in increasing order, each either exact or in an isolating
// interval whose endpoints are not roots of p.
//
// If lo equals hi, the range is the single point lo when both ends are included
// and empty otherwise. It is an error for lo to exceed hi, even when p is a
// non-zero constant. A half-bounded range beyond every root is empty.
func Isolate(p *bigpoly.Poly, lo, hi *big.Rat, includeLo, includeHi bool, caller string) (*RootSet, error) {
	caller = fmt.Sprintf("%s-Isolate", caller)
	if p.IsZero() {
		return nil, fmt.Errorf("%s: cannot isolate the roots of the zero polynomial", caller)
	}
	if util.AssertionsEnabled {
		util.Assert(p.IsSquarefree(), caller, "%s is not squarefree", p)
	}
	if (lo != nil) && (hi != nil) && (lo.Cmp(hi) > 0) {
		return nil, fmt.Errorf("%s: empty range from %s to %s", caller, lo.RatString(), hi.RatString())
	}
	retVal := &RootSet{Poly: p}
	if p.Degree() == 0 {
		return retVal, nil
	}

	// Substitute the Cauchy bound for missing endpoints. Every root is strictly
	// inside it, so inclusion does not matter, and a finite endpoint beyond it
	// leaves no roots.
	if (lo == nil) || (hi == nil) {
		bound := p.CauchyBound()
		if lo == nil {
			lo, includeLo = new(big.Rat).Neg(bound), false
		}
		if hi == nil {
			hi, includeHi = bound, false
		}
		if lo.Cmp(hi) >= 0 {
			return retVal, nil
		}
	}
	if lo.Cmp(hi) == 0 {
		if includeLo && includeHi && (p.SignAt(lo) == 0) {
			retVal.Entries = append(retVal.Entries, &Entry{Root: new(big.Rat).Set(lo)})
		}
		return retVal, nil
	}

	if p.Degree() == 1 {
		root := new(big.Rat).SetFrac(p.Coeff(0), p.Coeff(1))
		root.Neg(root)
		if inRange(root, lo, hi, includeLo, includeHi) {
			retVal.Entries = append(retVal.Entries, &Entry{Root: root})
		}
		return retVal, nil
	}

	// Divide out roots at the endpoints, so that the search below sees none
	var err error
	f := p
	for _, endpoint := range []struct {
		x       *big.Rat
		include bool
	}{{lo, includeLo}, {hi, includeHi}} {
		if p.SignAt(endpoint.x) != 0 {
			continue
		}
		f, err = f.DivExact(bigpoly.FromRationalRoots(endpoint.x), caller)
		if err != nil {
			return nil, fmt.Errorf("%s: could not divide out the root %s: %q", caller, endpoint.x.RatString(), err.Error())
		}
		if endpoint.include {
			retVal.Entries = append(retVal.Entries, &Entry{Root: new(big.Rat).Set(endpoint.x)})
		}
	}

	// Map (lo, hi) onto (0, 1), search, and map back
	width := new(big.Rat).Sub(hi, lo)
	toRange := func(t *big.Rat) *big.Rat {
		retVal := new(big.Rat).Mul(t, width)
		return retVal.Add(retVal, lo)
	}
	exact, intervals := collinsAkritas(f.ComposeAffine(lo, width))
	for _, t := range exact {
		retVal.Entries = append(retVal.Entries, &Entry{Root: toRange(t)})
	}
	for _, ab := range intervals {
		entry := shrinkToIsolating(p, toRange(ab[0]), toRange(ab[1]), caller)
		retVal.Entries = append(retVal.Entries, entry)
	}
	sortEntries(retVal.Entries)
	return retVal, nil
}

// inRange returns whether x lies in the range from lo to hi, with the inclusion of
// the endpoints as given
func inRange(x, lo, hi *big.Rat, includeLo, includeHi bool) bool {
	cmpLo, cmpHi := x.Cmp(lo), x.Cmp(hi)
	return ((cmpLo > 0) || (includeLo && (cmpLo == 0))) && ((cmpHi < 0) || (includeHi && (cmpHi == 0)))
}

// collinsAkritas returns the roots of q in the open interval (0, 1), where q(0)
// and q(1) are non-zero, as exact dyadic rationals and as dyadic intervals each
// containing exactly one root. The number of roots of a node's polynomial r in
// (0, 1) is bounded, with the same parity, by the sign variations of
//
//	(1+x)^n r(1/(1+x))
//
// Nodes with no variations are dropped, nodes with one hold a single root, and
// other nodes are split in half.
func collinsAkritas(q *bigpoly.Poly) ([]*big.Rat, [][2]*big.Rat) {
	var exact []*big.Rat
	var intervals [][2]*big.Rat
	stack := []caNode{{poly: q, c: big.NewInt(0), k: 0}}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		scale := util.PowerOfTwo(-node.k)
		left := new(big.Rat).Mul(new(big.Rat).SetInt(node.c), scale)
		poly := node.poly
		if poly.Coeff(0).Sign() == 0 {
			exact = append(exact, left)
			poly = newShiftedDown(poly)
		}
		variations := poly.Reverse().TaylorShift(big.NewInt(1)).SignVariations()
		switch variations {
		case 0:
			continue
		case 1:
			right := new(big.Rat).Add(left, scale)
			intervals = append(intervals, [2]*big.Rat{left, right})
			continue
		}
		leftHalf := poly.HalveVariable().PrimitivePart()
		rightHalf := leftHalf.TaylorShift(big.NewInt(1))
		c2 := new(big.Int).Lsh(node.c, 1)
		stack = append(stack, caNode{poly: rightHalf, c: new(big.Int).Add(c2, big.NewInt(1)), k: node.k + 1})
		stack = append(stack, caNode{poly: leftHalf, c: c2, k: node.k + 1})
	}
	return exact, intervals
}

// newShiftedDown returns p/x for p with p(0) = 0
func newShiftedDown(p *bigpoly.Poly) *bigpoly.Poly {
	coeffs := p.Coeffs()
	return bigpoly.New(coeffs[1:])
}

// shrinkToIsolating returns an entry for the single root of p in (a, b). If a or b
// is itself a root of p, the interval is bisected until neither endpoint is a
// root. The sign tests use p with those endpoint roots divided out, which has the
// same roots as p inside (a, b) and opposite signs at a and b.
func shrinkToIsolating(p *bigpoly.Poly, a, b *big.Rat, caller string) *Entry {
	caller = fmt.Sprintf("%s-shrinkToIsolating", caller)
	for (p.SignAt(a) == 0) || (p.SignAt(b) == 0) {
		f := p
		for _, x := range []*big.Rat{a, b} {
			if p.SignAt(x) == 0 {
				var err error
				f, err = f.DivExact(bigpoly.FromRationalRoots(x), caller)
				util.Assert(err == nil, caller, "could not divide out the root %s", x.RatString())
			}
		}
		m := util.Midpoint(a, b)
		if p.SignAt(m) == 0 {
			return &Entry{Root: m}
		}
		if f.SignAt(m) == f.SignAt(a) {
			a = m
		} else {
			b = m
		}
	}
	return &Entry{Interval: &Interval{A: a, B: b, Increasing: p.SignAt(a) < 0}}
}

// sortEntries sorts entries by position. An exact root equal to an interval's
// left endpoint comes first.
func sortEntries(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		cmp := entries[i].Lower().Cmp(entries[j].Lower())
		if cmp != 0 {
			return cmp < 0
		}
		return entries[i].IsExact() && !entries[j].IsExact()
	})
}
