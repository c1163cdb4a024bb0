package complexroots

// Copyright (c) 2025 Colin McRae

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/predrag3141/algebraic/bigpoly"
	"github.com/predrag3141/algebraic/realroots"
	"github.com/predrag3141/algebraic/util"
)

// crossing is the half-axis on which the value of the polynomial lies as the path
// along the boundary of a box crosses it. The values are quarter turns
// anticlockwise from the positive real axis.
type crossing int

const (
	posRe crossing = 0
	posIm crossing = 1
	negRe crossing = 2
	negIm crossing = 3
)

// edge is one side of a box, traversed from t = from to t = to along the line
// re = fixed (vertical) or im = fixed (horizontal). re and im are the real and
// imaginary parts of the polynomial on the line, up to a positive factor.
type edge struct {
	re, im   *bigpoly.Poly
	from, to *big.Rat
}

// CountRoots returns the number of roots of p, with multiplicity, inside the box.
// The count is the winding number of the image of the box's boundary, traversed
// anticlockwise, around 0. The winding number is computed from the sequence of
// half-axes the image crosses: consecutive crossings a quarter turn apart add 1
// or -1, repeated ones add 0, and the total is four times the winding number.
//
// The second return value is false, with a count of 0, if a root of p lies on the
// boundary, in which case the caller must choose another box.
func CountRoots(p *bigpoly.Poly, box Box, caller string) (int, bool, error) {
	caller = fmt.Sprintf("%s-CountRoots", caller)
	if (box.A.Cmp(box.B) >= 0) || (box.C.Cmp(box.D) >= 0) {
		return 0, false, fmt.Errorf("%s: empty box %s", caller, box)
	}
	if p.IsZero() {
		return 0, false, fmt.Errorf("%s: the zero polynomial has roots everywhere", caller)
	}
	if p.Degree() == 0 {
		return 0, true, nil
	}

	// Bottom, right, top, left
	bottomRe, bottomIm := AtFixedIm(p, box.C)
	rightRe, rightIm := AtFixedRe(p, box.B)
	topRe, topIm := AtFixedIm(p, box.D)
	leftRe, leftIm := AtFixedRe(p, box.A)
	edges := []edge{
		{re: bottomRe, im: bottomIm, from: box.A, to: box.B},
		{re: rightRe, im: rightIm, from: box.C, to: box.D},
		{re: topRe, im: topIm, from: box.B, to: box.A},
		{re: leftRe, im: leftIm, from: box.D, to: box.C},
	}

	// A root at a vertex
	for _, e := range edges {
		if (e.re.SignAt(e.from) == 0) && (e.im.SignAt(e.from) == 0) {
			return 0, false, nil
		}
	}

	var crossings []crossing
	for i, e := range edges {
		edgeCrossings, ok, err := e.crossings(caller)
		if err != nil {
			return 0, false, fmt.Errorf("%s: could not trace edge %d of %s: %q", caller, i, box, err.Error())
		}
		if !ok {
			return 0, false, nil
		}
		crossings = append(crossings, edgeCrossings...)
	}
	if len(crossings) == 0 {
		return 0, true, nil
	}

	// Quarter turns between consecutive crossings, including the last to the first
	total := 0
	for i := 0; i < len(crossings); i++ {
		next := crossings[(i+1)%len(crossings)]
		switch (int(next) - int(crossings[i]) + 4) % 4 {
		case 1:
			total++
		case 3:
			total--
		case 2:
			panic(fmt.Sprintf(
				"%s: the image of the boundary of %s jumps between opposite half-axes", caller, box,
			))
		}
	}
	util.Assert(
		(total >= 0) && (total%4 == 0), caller, "quarter turns around %s total %d", box, total,
	)
	return total / 4, true, nil
}

// crossings returns the half-axes crossed by the image of the edge, in the order
// of traversal. The second return value is false if p has a root on the edge.
func (e edge) crossings(caller string) ([]crossing, bool, error) {
	caller = fmt.Sprintf("%s-crossings", caller)
	lo, hi := util.MinRat(e.from, e.to), util.MaxRat(e.from, e.to)
	reversed := e.from.Cmp(e.to) > 0
	if e.re.IsZero() || e.im.IsZero() {
		// The image stays on one axis, so it crosses one half-axis for the whole
		// edge unless it passes through 0
		other, onImAxis := e.im, true
		if e.im.IsZero() {
			other, onImAxis = e.re, false
		}
		roots, err := realroots.Isolate(other.SquarefreePart(), lo, hi, true, true, caller)
		if err != nil {
			return nil, false, fmt.Errorf("%s: could not isolate roots of %s: %q", caller, other, err.Error())
		}
		if roots.Len() > 0 {
			return nil, false, nil
		}
		return []crossing{toCrossing(other.SignAt(lo), onImAxis)}, true, nil
	}

	reRoots, err := realroots.Isolate(e.re.SquarefreePart(), lo, hi, true, true, caller)
	if err != nil {
		return nil, false, fmt.Errorf("%s: could not isolate roots of %s: %q", caller, e.re, err.Error())
	}
	imRoots, err := realroots.Isolate(e.im.SquarefreePart(), lo, hi, true, true, caller)
	if err != nil {
		return nil, false, fmt.Errorf("%s: could not isolate roots of %s: %q", caller, e.im, err.Error())
	}
	refs, err := realroots.Separate(reRoots, imRoots, caller)
	if errors.Is(err, realroots.ErrSharedRoot) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: could not order the crossings: %q", caller, err.Error())
	}

	// At a root of re the image is on the imaginary axis, on the side given by the
	// sign of im there, and vice versa
	sets := [2]*realroots.RootSet{reRoots, imRoots}
	others := [2]*bigpoly.Poly{e.im, e.re}
	retVal := make([]crossing, len(refs))
	for i, ref := range refs {
		point := sets[ref.Set].Entries[ref.Index].Point()
		sign := others[ref.Set].SignAt(point)
		util.Assert(sign != 0, caller, "crossing at %s is a root", point.RatString())
		retVal[i] = toCrossing(sign, ref.Set == 0)
	}
	if reversed {
		for i, j := 0, len(retVal)-1; i < j; i, j = i+1, j-1 {
			retVal[i], retVal[j] = retVal[j], retVal[i]
		}
	}
	return retVal, true, nil
}

// toCrossing returns the half-axis on which a value lies, given the sign of its
// non-zero component and whether that component is the imaginary part
func toCrossing(sign int, onImAxis bool) crossing {
	switch {
	case onImAxis && (sign > 0):
		return posIm
	case onImAxis:
		return negIm
	case sign > 0:
		return posRe
	}
	return negRe
}
