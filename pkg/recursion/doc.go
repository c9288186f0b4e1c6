// Package recursion collects the recursive exercises of the course.
//
// Every function has one or two base cases and a recursive step that shrinks
// the problem monotonically (n-1, n/10, a-b, a/2 or a shorter slice). None of
// them memoize or guard against integer overflow; Fibonacci in particular is
// the naive exponential version.
//
// Inputs outside a function's domain are rejected with an error wrapping
// ErrDomain instead of a sentinel return value.
package recursion
