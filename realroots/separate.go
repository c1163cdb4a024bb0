package realroots

// Copyright (c) 2025 Colin McRae

import (
	"errors"
	"fmt"

	"github.com/predrag3141/algebraic/bigpoly"
	"github.com/predrag3141/algebraic/util"
)

// ErrSharedRoot is wrapped by Separate when the two root sets have a root in
// common
var ErrSharedRoot = errors.New("polynomials share a root")

// Ref identifies an entry of one of the two root sets passed to Separate: Set is
// 0 for the first and 1 for the second
type Ref struct {
	Set   int
	Index int
}

// Separate merges the entries of a and b into increasing order, refining
// overlapping intervals until they are disjoint. If a and b have a root in
// common, it returns an error wrapping ErrSharedRoot. A common root inside
// overlapping intervals is detected as a sign change of gcd(a.Poly, b.Poly) over
// their intersection, since neither polynomial vanishes at the endpoints.
func Separate(a, b *RootSet, caller string) ([]Ref, error) {
	caller = fmt.Sprintf("%s-Separate", caller)
	sets := [2]*RootSet{a, b}
	var gcd *bigpoly.Poly
	retVal := make([]Ref, 0, len(a.Entries)+len(b.Entries))
	i, j := 0, 0
	for (i < len(a.Entries)) && (j < len(b.Entries)) {
		for {
			order, shared := compareEntries(a.Entries[i], b.Entries[j], sets, &gcd)
			if shared {
				return nil, fmt.Errorf(
					"%s: %s and %s share a root near %s: %w",
					caller, a.Poly, b.Poly, a.Entries[i].Point().RatString(), ErrSharedRoot,
				)
			}
			if order < 0 {
				retVal = append(retVal, Ref{Set: 0, Index: i})
				i++
				break
			}
			if order > 0 {
				retVal = append(retVal, Ref{Set: 1, Index: j})
				j++
				break
			}
			a.Refine(i)
			b.Refine(j)
		}
	}
	for ; i < len(a.Entries); i++ {
		retVal = append(retVal, Ref{Set: 0, Index: i})
	}
	for ; j < len(b.Entries); j++ {
		retVal = append(retVal, Ref{Set: 1, Index: j})
	}
	return retVal, nil
}

// compareEntries returns -1 if ea lies entirely before eb, 1 if after, and 0 if
// they cannot yet be told apart. The second return value reports a root common
// to both. gcd is computed on first use.
func compareEntries(ea, eb *Entry, sets [2]*RootSet, gcd **bigpoly.Poly) (int, bool) {
	switch {
	case ea.IsExact() && eb.IsExact():
		cmp := ea.Root.Cmp(eb.Root)
		return cmp, cmp == 0
	case ea.IsExact():
		return compareExact(ea, eb, sets[1])
	case eb.IsExact():
		order, shared := compareExact(eb, ea, sets[0])
		return -order, shared
	}
	if ea.Interval.B.Cmp(eb.Interval.A) <= 0 {
		return -1, false
	}
	if eb.Interval.B.Cmp(ea.Interval.A) <= 0 {
		return 1, false
	}
	if *gcd == nil {
		*gcd = bigpoly.Gcd(sets[0].Poly, sets[1].Poly)
	}
	if (*gcd).Degree() < 1 {
		return 0, false
	}
	lo := util.MaxRat(ea.Interval.A, eb.Interval.A)
	hi := util.MinRat(ea.Interval.B, eb.Interval.B)
	return 0, (*gcd).SignAt(lo)*(*gcd).SignAt(hi) < 0
}

// compareExact orders an exact entry ex against an interval entry ei of the set
// other
func compareExact(ex, ei *Entry, other *RootSet) (int, bool) {
	if ex.Root.Cmp(ei.Interval.A) <= 0 {
		return -1, false
	}
	if ei.Interval.B.Cmp(ex.Root) <= 0 {
		return 1, false
	}
	return 0, other.Poly.SignAt(ex.Root) == 0
}
