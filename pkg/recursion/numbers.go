package recursion

// Factorial returns n! for n >= 0.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, domainErr("Factorial", "n >= 0", n)
	}
	return factorial(n), nil
}

func factorial(n int) int {
	if n == 0 {
		return 1
	}
	return n * factorial(n-1)
}

// Fibonacci returns the n-th term with F(1) = F(2) = 1.
func Fibonacci(n int) (int, error) {
	if n < 1 {
		return 0, domainErr("Fibonacci", "n >= 1", n)
	}
	return fibonacci(n), nil
}

func fibonacci(n int) int {
	if n == 1 || n == 2 {
		return 1
	}
	return fibonacci(n-1) + fibonacci(n-2)
}

// FibonacciSeq returns the first n terms, each computed by Fibonacci.
func FibonacciSeq(n int) ([]int, error) {
	if n < 1 {
		return nil, domainErr("FibonacciSeq", "n >= 1", n)
	}
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fibonacci(i))
	}
	return out, nil
}

// GCD is Euclid's algorithm for a, b > 0.
func GCD(a, b int) (int, error) {
	if a <= 0 || b <= 0 {
		return 0, domainErr("GCD", "a > 0 and b > 0", a, b)
	}
	return gcd(a, b), nil
}

func gcd(a, b int) int {
	if b == 0 {
		return a
	}
	return gcd(b, a%b)
}

// EuclidStep is one division row a = Quotient*b + Remainder.
type EuclidStep struct {
	A, B, Quotient, Remainder int
}

// GCDSteps returns the division rows Euclid's algorithm walks through.
func GCDSteps(a, b int) ([]EuclidStep, error) {
	if a <= 0 || b <= 0 {
		return nil, domainErr("GCDSteps", "a > 0 and b > 0", a, b)
	}
	return euclidSteps(a, b, nil), nil
}

func euclidSteps(a, b int, acc []EuclidStep) []EuclidStep {
	if b == 0 {
		return acc
	}
	acc = append(acc, EuclidStep{A: a, B: b, Quotient: a / b, Remainder: a % b})
	return euclidSteps(b, a%b, acc)
}

// DigitSum adds the decimal digits of n >= 0.
func DigitSum(n int) (int, error) {
	if n < 0 {
		return 0, domainErr("DigitSum", "n >= 0", n)
	}
	return digitSum(n), nil
}

func digitSum(n int) int {
	if n == 0 {
		return 0
	}
	return digitSum(n/10) + n%10
}

// Reverse returns the digits of n >= 0 in reverse order. Trailing zeros of n
// are dropped (120 -> 21).
func Reverse(n int) (int, error) {
	if n < 0 {
		return 0, domainErr("Reverse", "n >= 0", n)
	}
	return reverse(n, 0), nil
}

func reverse(n, acc int) int {
	if n == 0 {
		return acc
	}
	return reverse(n/10, acc*10+n%10)
}

// Divide computes a / b by repeated subtraction for a >= 0, b > 0.
func Divide(a, b int) (quotient, remainder int, err error) {
	if a < 0 || b <= 0 {
		return 0, 0, domainErr("Divide", "a >= 0 and b > 0", a, b)
	}
	quotient = divide(a, b)
	return quotient, a - quotient*b, nil
}

func divide(a, b int) int {
	if b > a {
		return 0
	}
	return divide(a-b, b) + 1
}

// RussianMultiply multiplies a, b > 0 by halving a and doubling b, adding b
// whenever a is odd.
func RussianMultiply(a, b int) (int, error) {
	if a <= 0 || b <= 0 {
		return 0, domainErr("RussianMultiply", "a > 0 and b > 0", a, b)
	}
	return russian(a, b), nil
}

func russian(a, b int) int {
	if a == 1 {
		return b
	}
	if a%2 != 0 {
		return b + russian(a/2, b*2)
	}
	return russian(a/2, b*2)
}

// RussianRow is one line of the halving/doubling table. Sum is the running
// total after the row; Added is false for even rows, which are crossed out.
type RussianRow struct {
	A, B  int
	Added bool
	Sum   int
}

// RussianSteps returns the table RussianMultiply walks through.
func RussianSteps(a, b int) ([]RussianRow, error) {
	if a <= 0 || b <= 0 {
		return nil, domainErr("RussianSteps", "a > 0 and b > 0", a, b)
	}
	var rows []RussianRow
	sum := 0
	for ; a >= 1; a, b = a/2, b*2 {
		odd := a%2 != 0
		if odd {
			sum += b
		}
		rows = append(rows, RussianRow{A: a, B: b, Added: odd, Sum: sum})
	}
	return rows, nil
}

// Power returns base^exp for exp >= 0.
func Power(base, exp int) (int, error) {
	if exp < 0 {
		return 0, domainErr("Power", "exp >= 0", exp)
	}
	return power(base, exp), nil
}

func power(base, exp int) int {
	if exp == 0 {
		return 1
	}
	if exp == 1 {
		return base
	}
	return base * power(base, exp-1)
}

// SumDown returns k + (k-1) + ... + 0, or 0 for k <= 0.
func SumDown(k int) int {
	if k <= 0 {
		return 0
	}
	return k + SumDown(k-1)
}

// SumDownIterative is the loop form of SumDown.
func SumDownIterative(k int) int {
	sum := 0
	for ; k > 0; k-- {
		sum += k
	}
	return sum
}
