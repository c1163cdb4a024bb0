package util

// Copyright (c) 2025 Colin McRae

import "fmt"

// Assert panics with a message prefixed by caller if cond is false. It guards
// invariants whose violation means a caller broke the contract of a routine,
// such as passing a polynomial that is not squarefree.
func Assert(cond bool, caller string, format string, args ...interface{}) {
	if cond {
		return
	}
	panic(fmt.Sprintf("%s: invariant violated: %s", caller, fmt.Sprintf(format, args...)))
}
