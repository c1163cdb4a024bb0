package util

// Copyright (c) 2025 Colin McRae

import (
	"math/big"
)

// CopyRat returns a copy of x, or nil if x is nil
func CopyRat(x *big.Rat) *big.Rat {
	if x == nil {
		return nil
	}
	return new(big.Rat).Set(x)
}

// Midpoint returns (a+b)/2 without modifying a or b
func Midpoint(a, b *big.Rat) *big.Rat {
	retVal := new(big.Rat).Add(a, b)
	return retVal.Quo(retVal, big.NewRat(2, 1))
}

// PowerOfTwo returns 2^k for any integer k, positive or negative
func PowerOfTwo(k int) *big.Rat {
	if k >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(k)))
	}
	return new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(-k)))
}

// PowerOfTen returns 10^k for any integer k, positive or negative
func PowerOfTen(k int) *big.Rat {
	abs := k
	if abs < 0 {
		abs = -abs
	}
	tenToAbs := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs)), nil)
	if k >= 0 {
		return new(big.Rat).SetInt(tenToAbs)
	}
	return new(big.Rat).SetFrac(big.NewInt(1), tenToAbs)
}

// MinRat returns a copy of the lesser of a and b
func MinRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return CopyRat(a)
	}
	return CopyRat(b)
}

// MaxRat returns a copy of the greater of a and b
func MaxRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return CopyRat(a)
	}
	return CopyRat(b)
}

// OpenIntervalsOverlap returns whether the open intervals (a1, b1) and (a2, b2)
// intersect. A degenerate interval (a, a) stands for the single point a, so that
// an exact value can be tested against an open interval.
func OpenIntervalsOverlap(a1, b1, a2, b2 *big.Rat) bool {
	point1 := a1.Cmp(b1) == 0
	point2 := a2.Cmp(b2) == 0
	switch {
	case point1 && point2:
		return a1.Cmp(a2) == 0
	case point1:
		return (a2.Cmp(a1) < 0) && (a1.Cmp(b2) < 0)
	case point2:
		return (a1.Cmp(a2) < 0) && (a2.Cmp(b1) < 0)
	}
	return (a1.Cmp(b2) < 0) && (a2.Cmp(b1) < 0)
}

// ClosedIntervalsOverlap returns whether [a1, b1] and [a2, b2] intersect
func ClosedIntervalsOverlap(a1, b1, a2, b2 *big.Rat) bool {
	return (a1.Cmp(b2) <= 0) && (a2.Cmp(b1) <= 0)
}

// IsPrime returns whether n is prime, by trial division. It is meant for the
// small primes used to pick split ratios and moduli.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the least prime strictly greater than n
func NextPrime(n int64) int64 {
	for candidate := n + 1; ; candidate++ {
		if IsPrime(candidate) {
			return candidate
		}
	}
}
