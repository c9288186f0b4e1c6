package recursion

// IsEven and IsOdd call each other, stepping n down by one until zero.
func IsEven(n int) (bool, error) {
	if n < 0 {
		return false, domainErr("IsEven", "n >= 0", n)
	}
	return even(n), nil
}

func IsOdd(n int) (bool, error) {
	if n < 0 {
		return false, domainErr("IsOdd", "n >= 0", n)
	}
	return odd(n), nil
}

func even(n int) bool {
	if n == 0 {
		return true
	}
	return odd(n - 1)
}

func odd(n int) bool {
	if n == 0 {
		return false
	}
	return even(n - 1)
}

// IsPositive and IsNegative answer by deferring to each other; each settles
// the half of the number line it can rule out. Zero has no sign.
func IsPositive(n int) (bool, error) {
	if n == 0 {
		return false, ErrZero
	}
	return positive(n), nil
}

func IsNegative(n int) (bool, error) {
	if n == 0 {
		return false, ErrZero
	}
	return negative(n), nil
}

func positive(n int) bool {
	if n < 0 {
		return false
	}
	return !negative(n)
}

func negative(n int) bool {
	if n > 0 {
		return false
	}
	return !positive(n)
}
