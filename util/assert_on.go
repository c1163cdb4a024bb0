//go:build !noassert

package util

// Copyright (c) 2025 Colin McRae

// AssertionsEnabled reports whether expensive invariant checks (squarefreeness,
// irreducibility, interval signs) run. Build with -tags noassert to skip them.
const AssertionsEnabled = true
