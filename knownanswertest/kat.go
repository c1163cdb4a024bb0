// Package knownanswertest checks the root finding and arithmetic of this module
// against known answers read from YAML files. Each case names a polynomial by its
// integer coefficients and lists facts about its roots: their approximate real
// values, the number of non-real roots, root counts in boxes and intervals, and
// the exact sum and product of the real roots.
package knownanswertest

// Copyright (c) 2025 Colin McRae

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/predrag3141/algebraic/algebraic"
	"github.com/predrag3141/algebraic/bigpoly"
	"github.com/predrag3141/algebraic/complexroots"
	"github.com/predrag3141/algebraic/realroots"
)

// Suite is the contents of one known-answer file
type Suite struct {
	// Tolerance bounds the distance between each real root and its expected
	// decimal value, as a rational string such as "1/1000000"
	Tolerance string `yaml:"tolerance"`
	Cases     []Case `yaml:"cases"`
}

// Case is a polynomial with known facts about its roots. Empty fields are not
// checked.
type Case struct {
	Name string `yaml:"name"`

	// Poly holds the coefficients, constant term first
	Poly []int64 `yaml:"poly"`

	// RealRoots are approximations of the real roots in increasing order, with
	// multiplicity
	RealRoots []string `yaml:"real_roots"`

	// NumNonReal is the number of non-real roots with multiplicity
	NumNonReal *int `yaml:"num_non_real"`

	// RealSum and RealProduct are the exact sum and product of the real roots
	RealSum     string `yaml:"real_sum"`
	RealProduct string `yaml:"real_product"`

	BoxCounts      []BoxCount      `yaml:"box_counts"`
	IntervalCounts []IntervalCount `yaml:"interval_counts"`
}

// BoxCount is the number of roots, with multiplicity, in the box [A, B] x [C, D]
// given as Box: [A, B, C, D]. The boundary of the box must not carry a root.
type BoxCount struct {
	Box   []string `yaml:"box"`
	Count int      `yaml:"count"`
}

// IntervalCount is the number of distinct real roots between Lo and Hi, where
// IncludeLo and IncludeHi say whether the endpoints count
type IntervalCount struct {
	Lo        string `yaml:"lo"`
	Hi        string `yaml:"hi"`
	IncludeLo bool   `yaml:"include_lo"`
	IncludeHi bool   `yaml:"include_hi"`
	Count     int    `yaml:"count"`
}

// Load reads a Suite from a YAML file, rejecting unknown fields
func Load(path string) (*Suite, error) {
	caller := "Load"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: could not read %s: %q", caller, path, err.Error())
	}
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err = decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("%s: could not parse %s: %q", caller, path, err.Error())
	}
	if _, err = parseRat(suite.Tolerance, caller); err != nil {
		return nil, fmt.Errorf("%s: invalid tolerance in %s: %q", caller, path, err.Error())
	}
	for i, c := range suite.Cases {
		if len(c.Poly) == 0 {
			return nil, fmt.Errorf("%s: case %d (%s) in %s has no coefficients", caller, i, c.Name, path)
		}
		for j, boxCount := range c.BoxCounts {
			if len(boxCount.Box) != 4 {
				return nil, fmt.Errorf(
					"%s: box %d of case %s in %s has %d bounds instead of 4",
					caller, j, c.Name, path, len(boxCount.Box),
				)
			}
		}
	}
	slog.Default().Debug("knownanswertest: loaded suite", slog.String("path", path), slog.Int("cases", len(suite.Cases)))
	return &suite, nil
}

// Check runs every case in the suite, returning an error for the first failure
func (s *Suite) Check() error {
	tolerance, err := parseRat(s.Tolerance, "Suite-Check")
	if err != nil {
		return err
	}
	for i := range s.Cases {
		if err = s.Cases[i].Check(tolerance); err != nil {
			return err
		}
	}
	return nil
}

// Polynomial returns the polynomial of the case
func (c *Case) Polynomial() *bigpoly.Poly {
	return bigpoly.NewFromInt64(c.Poly...)
}

// Check compares the case with the computed roots of its polynomial, returning an
// error describing the first difference
func (c *Case) Check(tolerance *big.Rat) error {
	caller := fmt.Sprintf("Check-%s", c.Name)
	p := c.Polynomial()
	if err := c.checkRealRoots(p, tolerance, caller); err != nil {
		return err
	}
	if err := c.checkNonReal(p, caller); err != nil {
		return err
	}
	for _, boxCount := range c.BoxCounts {
		if err := boxCount.check(p, caller); err != nil {
			return err
		}
	}
	for _, intervalCount := range c.IntervalCounts {
		if err := intervalCount.check(p, caller); err != nil {
			return err
		}
	}
	return nil
}

func (c *Case) checkRealRoots(p *bigpoly.Poly, tolerance *big.Rat, caller string) error {
	if (c.RealRoots == nil) && (c.RealSum == "") && (c.RealProduct == "") {
		return nil
	}
	roots, err := algebraic.RealRoots(p, caller)
	if err != nil {
		return fmt.Errorf("%s: could not find real roots of %s: %q", caller, p, err.Error())
	}
	if c.RealRoots != nil {
		if len(roots) != len(c.RealRoots) {
			return fmt.Errorf("%s: %s has %d real roots, expected %d", caller, p, len(roots), len(c.RealRoots))
		}
		for i, root := range roots {
			expected, err := parseRat(c.RealRoots[i], caller)
			if err != nil {
				return err
			}
			lo := new(big.Rat).Sub(expected, tolerance)
			hi := new(big.Rat).Add(expected, tolerance)
			if (root.CmpRat(lo) <= 0) || (root.CmpRat(hi) >= 0) {
				return fmt.Errorf("%s: root %d is %s, expected %s", caller, i, root.DecimalString(10), c.RealRoots[i])
			}
		}
	}

	sum, product := algebraic.NewInt64(0, 1), algebraic.NewInt64(1, 1)
	for _, root := range roots {
		if c.RealSum != "" {
			if sum, err = sum.Add(root); err != nil {
				return fmt.Errorf("%s: could not add roots: %q", caller, err.Error())
			}
		}
		if c.RealProduct != "" {
			if product, err = product.Mul(root); err != nil {
				return fmt.Errorf("%s: could not multiply roots: %q", caller, err.Error())
			}
		}
	}
	for _, check := range []struct {
		name     string
		expected string
		actual   *algebraic.Real
	}{{"sum", c.RealSum, sum}, {"product", c.RealProduct, product}} {
		if check.expected == "" {
			continue
		}
		expected, err := parseRat(check.expected, caller)
		if err != nil {
			return err
		}
		if check.actual.CmpRat(expected) != 0 {
			return fmt.Errorf("%s: %s of real roots is %s, expected %s", caller, check.name, check.actual, check.expected)
		}
	}
	return nil
}

func (c *Case) checkNonReal(p *bigpoly.Poly, caller string) error {
	if c.NumNonReal == nil {
		return nil
	}
	roots, err := algebraic.ComplexRoots(p, caller)
	if err != nil {
		return fmt.Errorf("%s: could not find complex roots of %s: %q", caller, p, err.Error())
	}
	numNonReal := 0
	for _, root := range roots {
		if !root.IsReal() {
			numNonReal++
		}
	}
	if numNonReal != *c.NumNonReal {
		return fmt.Errorf("%s: %s has %d non-real roots, expected %d", caller, p, numNonReal, *c.NumNonReal)
	}
	return nil
}

func (bc BoxCount) check(p *bigpoly.Poly, caller string) error {
	if len(bc.Box) != 4 {
		return fmt.Errorf("%s: box has %d bounds instead of 4", caller, len(bc.Box))
	}
	var bounds [4]*big.Rat
	for i, s := range bc.Box {
		var err error
		if bounds[i], err = parseRat(s, caller); err != nil {
			return err
		}
	}
	box := complexroots.NewBox(bounds[0], bounds[1], bounds[2], bounds[3])
	count, ok, err := complexroots.CountRoots(p, box, caller)
	if err != nil {
		return fmt.Errorf("%s: could not count roots in %s: %q", caller, box, err.Error())
	}
	if !ok {
		return fmt.Errorf("%s: a root of %s is on the boundary of %s", caller, p, box)
	}
	if count != bc.Count {
		return fmt.Errorf("%s: %s has %d roots in %s, expected %d", caller, p, count, box, bc.Count)
	}
	return nil
}

func (ic IntervalCount) check(p *bigpoly.Poly, caller string) error {
	lo, err := parseRat(ic.Lo, caller)
	if err != nil {
		return err
	}
	hi, err := parseRat(ic.Hi, caller)
	if err != nil {
		return err
	}
	rootSet, err := realroots.Isolate(p.SquarefreePart(), lo, hi, ic.IncludeLo, ic.IncludeHi, caller)
	if err != nil {
		return fmt.Errorf("%s: could not isolate roots of %s: %q", caller, p, err.Error())
	}
	if rootSet.Len() != ic.Count {
		return fmt.Errorf(
			"%s: %s has %d roots from %s to %s (%t, %t), expected %d",
			caller, p, rootSet.Len(), ic.Lo, ic.Hi, ic.IncludeLo, ic.IncludeHi, ic.Count,
		)
	}
	return nil
}

// parseRat parses a fraction such as "-3/4" or a decimal such as "1.25"
func parseRat(s, caller string) (*big.Rat, error) {
	retVal, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%s: could not parse %q as a rational number", caller, s)
	}
	return retVal, nil
}
