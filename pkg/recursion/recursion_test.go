package recursion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 5: 120, 10: 3628800} {
		got, err := Factorial(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}
	got, err := Factorial(20)
	require.NoError(t, err)
	assert.Equal(t, 2432902008176640000, got)
	_, err = Factorial(-1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestFibonacci(t *testing.T) {
	for n, want := range map[int]int{1: 1, 2: 1, 6: 8, 10: 55} {
		got, err := Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}
	_, err := Fibonacci(0)
	assert.ErrorIs(t, err, ErrDomain)

	seq, err := FibonacciSeq(7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 3, 5, 8, 13}, seq)
	_, err = FibonacciSeq(0)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestGCD(t *testing.T) {
	got, err := GCD(48, 18)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	got, err = GCD(18, 48)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	got, err = GCD(17, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	for _, args := range [][2]int{{0, 5}, {5, 0}, {-4, 2}} {
		_, err := GCD(args[0], args[1])
		assert.ErrorIs(t, err, ErrDomain)
	}

	steps, err := GCDSteps(48, 18)
	require.NoError(t, err)
	assert.Equal(t, []EuclidStep{
		{A: 48, B: 18, Quotient: 2, Remainder: 12},
		{A: 18, B: 12, Quotient: 1, Remainder: 6},
		{A: 12, B: 6, Quotient: 2, Remainder: 0},
	}, steps)
}

func TestDigits(t *testing.T) {
	s, err := DigitSum(4321)
	require.NoError(t, err)
	assert.Equal(t, 10, s)
	s, err = DigitSum(0)
	require.NoError(t, err)
	assert.Equal(t, 0, s)
	_, err = DigitSum(-1)
	assert.ErrorIs(t, err, ErrDomain)

	tests := map[int]int{1234: 4321, 7: 7, 0: 0, 120: 21, 1001: 1001}
	for n, want := range tests {
		got, err := Reverse(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}
	_, err = Reverse(-5)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestDivide(t *testing.T) {
	q, r, err := Divide(17, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, q)
	assert.Equal(t, 2, r)

	q, r, err = Divide(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, q)
	assert.Equal(t, 3, r)

	q, r, err = Divide(100000, 3)
	require.NoError(t, err)
	assert.Equal(t, 33333, q)
	assert.Equal(t, 1, r)

	_, _, err = Divide(5, 0)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestRussianMultiply(t *testing.T) {
	got, err := RussianMultiply(13, 7)
	require.NoError(t, err)
	assert.Equal(t, 91, got)

	rows, err := RussianSteps(13, 7)
	require.NoError(t, err)
	assert.Equal(t, []RussianRow{
		{A: 13, B: 7, Added: true, Sum: 7},
		{A: 6, B: 14, Added: false, Sum: 7},
		{A: 3, B: 28, Added: true, Sum: 35},
		{A: 1, B: 56, Added: true, Sum: 91},
	}, rows)

	_, err = RussianMultiply(0, 3)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = RussianSteps(3, -1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestPower(t *testing.T) {
	got, err := Power(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 1024, got)
	got, err = Power(-3, 3)
	require.NoError(t, err)
	assert.Equal(t, -27, got)
	got, err = Power(9, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	got, err = Power(-1, 100000)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	_, err = Power(2, -1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestSumDown(t *testing.T) {
	for _, k := range []int{-3, 0, 1, 3, 10} {
		assert.Equal(t, SumDownIterative(k), SumDown(k), "k=%d", k)
	}
	assert.Equal(t, 6, SumDown(3))
	assert.Equal(t, 5000050000, SumDown(100000))
}

func TestVectors(t *testing.T) {
	v := []int{4, -2, 7, 3}

	s, err := Sum(v)
	require.NoError(t, err)
	assert.Equal(t, 12, s)

	p, err := Product(v)
	require.NoError(t, err)
	assert.Equal(t, -168, p)

	m, err := Min(v)
	require.NoError(t, err)
	assert.Equal(t, -2, m)

	m, err = Min([]int{-1})
	require.NoError(t, err)
	assert.Equal(t, -1, m)

	_, err = Sum(nil)
	assert.ErrorIs(t, err, ErrEmptyVector)
	_, err = Product(nil)
	assert.ErrorIs(t, err, ErrEmptyVector)
	_, err = Min(nil)
	assert.ErrorIs(t, err, ErrEmptyVector)
}

func TestMatrixSum(t *testing.T) {
	got, err := MatrixSum([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	assert.Equal(t, 45, got)

	got, err = MatrixSum([][]int{{-4}})
	require.NoError(t, err)
	assert.Equal(t, -4, got)

	_, err = MatrixSum(nil)
	assert.ErrorIs(t, err, ErrEmptyVector)
	_, err = MatrixSum([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrDomain)
}

func TestParity(t *testing.T) {
	for n := 0; n <= 9; n++ {
		e, err := IsEven(n)
		require.NoError(t, err)
		o, err := IsOdd(n)
		require.NoError(t, err)
		assert.Equal(t, n%2 == 0, e, "n=%d", n)
		assert.NotEqual(t, e, o)
	}
	e, err := IsEven(100000)
	require.NoError(t, err)
	assert.True(t, e)
	o, err := IsOdd(99999)
	require.NoError(t, err)
	assert.True(t, o)

	_, err = IsEven(-2)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = IsOdd(-2)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestSign(t *testing.T) {
	for _, n := range []int{1, 42, -1, -42} {
		p, err := IsPositive(n)
		require.NoError(t, err)
		neg, err := IsNegative(n)
		require.NoError(t, err)
		assert.Equal(t, n > 0, p, "n=%d", n)
		assert.Equal(t, n < 0, neg, "n=%d", n)
	}
	_, err := IsPositive(0)
	assert.ErrorIs(t, err, ErrZero)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = IsNegative(0)
	assert.ErrorIs(t, err, ErrZero)
}
