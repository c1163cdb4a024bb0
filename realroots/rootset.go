package realroots

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/predrag3141/algebraic/bigpoly"
	"github.com/predrag3141/algebraic/util"
)

// Interval is an open interval (A, B) containing exactly one root of a squarefree
// polynomial p, with p(A) and p(B) non-zero and of opposite signs
type Interval struct {
	A          *big.Rat
	B          *big.Rat
	Increasing bool // p(A) < 0 < p(B)
}

// Width returns B - A
func (iv *Interval) Width() *big.Rat {
	return new(big.Rat).Sub(iv.B, iv.A)
}

// Entry is a root known exactly (Root is set) or known to lie in Interval
type Entry struct {
	Root     *big.Rat
	Interval *Interval
}

// IsExact returns whether the entry holds an exact rational root
func (e *Entry) IsExact() bool {
	return e.Root != nil
}

// Lower returns a copy of the exact root or of the interval's left endpoint
func (e *Entry) Lower() *big.Rat {
	if e.Root != nil {
		return new(big.Rat).Set(e.Root)
	}
	return new(big.Rat).Set(e.Interval.A)
}

// Upper returns a copy of the exact root or of the interval's right endpoint
func (e *Entry) Upper() *big.Rat {
	if e.Root != nil {
		return new(big.Rat).Set(e.Root)
	}
	return new(big.Rat).Set(e.Interval.B)
}

// Point returns the exact root or the midpoint of the interval, a point at which
// any polynomial with no root in the interval has the sign it has throughout
func (e *Entry) Point() *big.Rat {
	if e.Root != nil {
		return new(big.Rat).Set(e.Root)
	}
	return util.Midpoint(e.Interval.A, e.Interval.B)
}

// Clone returns an independent copy of e
func (e *Entry) Clone() *Entry {
	if e.Root != nil {
		return &Entry{Root: new(big.Rat).Set(e.Root)}
	}
	return &Entry{Interval: &Interval{
		A:          new(big.Rat).Set(e.Interval.A),
		B:          new(big.Rat).Set(e.Interval.B),
		Increasing: e.Interval.Increasing,
	}}
}

// RootSet is the result of isolating the real roots of a squarefree polynomial
// within a range. Entries are in strictly increasing order and do not overlap,
// though consecutive intervals may share an endpoint that is not a root.
type RootSet struct {
	Poly    *bigpoly.Poly
	Entries []*Entry
}

// Len returns the number of roots in the set
func (rs *RootSet) Len() int {
	return len(rs.Entries)
}

// Refine halves the interval of entry idx. If the midpoint is a root, the entry
// becomes exact. Exact entries are left as they are.
func (rs *RootSet) Refine(idx int) {
	e := rs.Entries[idx]
	if e.Root != nil {
		return
	}
	m := util.Midpoint(e.Interval.A, e.Interval.B)
	sign := rs.Poly.SignAt(m)
	switch {
	case sign == 0:
		e.Root = m
		e.Interval = nil
	case (sign > 0) == e.Interval.Increasing:
		e.Interval.B = m
	default:
		e.Interval.A = m
	}
}

// RefineToWidth refines entry idx until it is exact or its width is less than w
func (rs *RootSet) RefineToWidth(idx int, w *big.Rat) {
	for (rs.Entries[idx].Root == nil) && (rs.Entries[idx].Interval.Width().Cmp(w) >= 0) {
		rs.Refine(idx)
	}
}

// CheckInvariants returns an error describing the first broken property of rs,
// if any: exact entries must be roots, intervals must have endpoint signs
// matching their direction, and entries must be strictly ordered.
func (rs *RootSet) CheckInvariants(caller string) error {
	caller = fmt.Sprintf("%s-CheckInvariants", caller)
	for i, e := range rs.Entries {
		if e.Root != nil {
			if rs.Poly.SignAt(e.Root) != 0 {
				return fmt.Errorf("%s: entry %d, %s, is not a root of %s", caller, i, e.Root.RatString(), rs.Poly)
			}
		} else {
			iv := e.Interval
			if iv.A.Cmp(iv.B) >= 0 {
				return fmt.Errorf("%s: entry %d has empty interval (%s, %s)", caller, i, iv.A.RatString(), iv.B.RatString())
			}
			signA, signB := rs.Poly.SignAt(iv.A), rs.Poly.SignAt(iv.B)
			if (signA == 0) || (signB == 0) || (signA == signB) {
				return fmt.Errorf(
					"%s: entry %d: %s has signs %d, %d at (%s, %s)",
					caller, i, rs.Poly, signA, signB, iv.A.RatString(), iv.B.RatString(),
				)
			}
			if iv.Increasing != (signA < 0) {
				return fmt.Errorf("%s: entry %d has the wrong direction", caller, i)
			}
		}
		if i == 0 {
			continue
		}
		prev := rs.Entries[i-1]
		cmp := prev.Upper().Cmp(e.Lower())
		if (cmp > 0) || ((cmp == 0) && prev.IsExact() && e.IsExact()) {
			return fmt.Errorf("%s: entries %d and %d are out of order", caller, i-1, i)
		}
	}
	return nil
}

// String lists the entries, e.g. "x^2 - 2: (-2, -1) (1, 2)"
func (rs *RootSet) String() string {
	var sb strings.Builder
	sb.WriteString(rs.Poly.String())
	sb.WriteString(":")
	for _, e := range rs.Entries {
		if e.Root != nil {
			sb.WriteString(fmt.Sprintf(" %s", e.Root.RatString()))
		} else {
			sb.WriteString(fmt.Sprintf(" (%s, %s)", e.Interval.A.RatString(), e.Interval.B.RatString()))
		}
	}
	return sb.String()
}
