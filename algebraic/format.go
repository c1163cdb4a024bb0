package algebraic

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/big"

	"github.com/predrag3141/algebraic/util"
)

// DecimalString refines x until its interval is narrower than 10^-digits and
// returns the midpoint with the given number of digits after the decimal point
func (x *Real) DecimalString(digits int) string {
	if x.rat != nil {
		return x.rat.FloatString(digits)
	}
	x.RefineToWidth(util.PowerOfTen(-digits))
	return util.Midpoint(x.root.tightA, x.root.tightB).FloatString(digits)
}

// String returns x as an exact rational, or as an approximate midpoint and half
// the width of the interval holding x, as in ≈1.4142±0.0001
func (x *Real) String() string {
	if x.rat != nil {
		return x.rat.RatString()
	}
	return "≈" + approximate(x.root.tightA, x.root.tightB)
}

// DecimalString refines z until its box is narrower and shorter than 10^-digits
// and returns the center of the box as "a + bi" or "a - bi", with the given
// number of digits after each decimal point. A real z is formatted like a Real.
func (z *Complex) DecimalString(digits int) (string, error) {
	if z.real != nil {
		return z.real.DecimalString(digits), nil
	}
	accuracy := util.PowerOfTen(-digits)
	for (z.root.box.Width().Cmp(accuracy) >= 0) || (z.root.box.Height().Cmp(accuracy) >= 0) {
		if err := z.Refine(); err != nil {
			return "", fmt.Errorf("Complex-DecimalString: could not refine: %q", err.Error())
		}
	}
	re := util.Midpoint(z.root.box.A, z.root.box.B)
	im := util.Midpoint(z.root.box.C, z.root.box.D)
	if im.Sign() < 0 {
		return fmt.Sprintf("%s - %si", re.FloatString(digits), new(big.Rat).Neg(im).FloatString(digits)), nil
	}
	return fmt.Sprintf("%s + %si", re.FloatString(digits), im.FloatString(digits)), nil
}

// String returns z like Real.String if z is real, or as approximate real and
// imaginary parts otherwise
func (z *Complex) String() string {
	if z.real != nil {
		return z.real.String()
	}
	box := z.root.box
	return fmt.Sprintf("(≈%s) + (≈%s)i", approximate(box.A, box.B), approximate(box.C, box.D))
}

// approximate returns the midpoint of [a, b] and half its width as floats
func approximate(a, b *big.Rat) string {
	mid, _ := util.Midpoint(a, b).Float64()
	halfWidth, _ := new(big.Rat).Quo(new(big.Rat).Sub(b, a), big.NewRat(2, 1)).Float64()
	return fmt.Sprintf("%v±%v", mid, halfWidth)
}
