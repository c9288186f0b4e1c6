// Package search holds the lookup routines of the course: binary search in
// its iterative, recursive and keyed forms, linear search, and the helpers
// that validate and merge strictly increasing input.
package search

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrNotIncreasing marks input that is not in strictly increasing order.
var ErrNotIncreasing = errors.New("search: sequence is not strictly increasing")

// OrderError reports the first position that breaks strict increase.
type OrderError[T any] struct {
	Index int
	Prev  T
	Got   T
}

func (e *OrderError[T]) Error() string {
	return fmt.Sprintf("search: element %d (%v) must be greater than %v", e.Index, e.Got, e.Prev)
}

func (e *OrderError[T]) Unwrap() error { return ErrNotIncreasing }

// Binary returns the index of target in s, which must be sorted in strictly
// increasing order. The interval [low, high] is halved until target is found
// or the interval is empty.
func Binary[T cmp.Ordered](s []T, target T) (int, bool) {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case target == s[mid]:
			return mid, true
		case target < s[mid]:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return -1, false
}

// BinaryRecursive has the same contract as Binary.
func BinaryRecursive[T cmp.Ordered](s []T, target T) (int, bool) {
	return binaryRange(s, 0, len(s)-1, target)
}

func binaryRange[T cmp.Ordered](s []T, low, high int, target T) (int, bool) {
	if low > high {
		return -1, false
	}
	mid := low + (high-low)/2
	switch {
	case s[mid] == target:
		return mid, true
	case s[mid] > target:
		return binaryRange(s, low, mid-1, target)
	default:
		return binaryRange(s, mid+1, high, target)
	}
}

// BinaryFunc searches records sorted by key. compare returns a negative
// number when the element sorts before key, zero on a match and a positive
// number after it.
func BinaryFunc[E, K any](s []E, key K, compare func(E, K) int) (int, bool) {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		c := compare(s[mid], key)
		switch {
		case c == 0:
			return mid, true
		case c > 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return -1, false
}

// Linear scans s front to back. O(n), no ordering required.
func Linear[T comparable](s []T, target T) (int, bool) {
	for i, v := range s {
		if v == target {
			return i, true
		}
	}
	return -1, false
}

// ValidateIncreasing returns an *OrderError for the first element that is not
// greater than its predecessor.
func ValidateIncreasing[T cmp.Ordered](s []T) error {
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return &OrderError[T]{Index: i, Prev: s[i-1], Got: s[i]}
		}
	}
	return nil
}

// Merge combines two increasing slices into one increasing slice. Values
// present in both inputs appear twice in the result.
func Merge[T cmp.Ordered](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] == b[j]:
			out = append(out, a[i], b[j])
			i++
			j++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
