package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
	"time"

	"github.com/i5heu/GoCourseLab/pkg/display"
	"github.com/i5heu/GoCourseLab/pkg/matrix"
	"github.com/i5heu/GoCourseLab/pkg/recursion"
	"github.com/i5heu/GoCourseLab/pkg/search"
	"github.com/i5heu/GoCourseLab/pkg/textutil"
)

const maxLength = 100

// maxDepth bounds the inputs that drive one recursive call per unit.
const maxDepth = 100000

func runSearch(a *app) error {
	a.out.Banner("BINARY SEARCH")
	n, err := a.in.IntRange("how many values: ", 1, maxLength)
	if err != nil {
		return err
	}
	values, err := a.in.Increasing(n, "v")
	if err != nil {
		return err
	}
	target, err := a.in.Int("value to find: ")
	if err != nil {
		return err
	}
	display.Seq(a.out, "values", slices.Values(values))
	i, found := search.Binary(values, target)
	if j, ok := search.BinaryRecursive(values, target); j != i || ok != found {
		return fmt.Errorf("iterative and recursive search disagree: %d/%v vs %d/%v", i, found, j, ok)
	}
	if !found {
		a.out.Warn("%d is not in the sequence", target)
		return nil
	}
	a.out.OK("%d found at index %d", target, i)
	return nil
}

func runMerge(a *app) error {
	a.out.Banner("MERGE")
	var seqs [2][]int
	for k, label := range []string{"a", "b"} {
		n, err := a.in.IntRange(fmt.Sprintf("length of %s: ", label), 0, maxLength)
		if err != nil {
			return err
		}
		if seqs[k], err = a.in.Increasing(n, label); err != nil {
			return err
		}
	}
	display.Seq(a.out, "merged", slices.Values(search.Merge(seqs[0], seqs[1])))
	return nil
}

// exercise is one recursion subcommand.
type exercise struct {
	about string
	run   func(a *app) error
}

var recursionExercises = map[string]exercise{
	"factorial": {"n!", runFactorial},
	"fibonacci": {"n-th Fibonacci number and the sequence up to it", runFibonacci},
	"gcd":       {"greatest common divisor with Euclid's table", runGCD},
	"digitsum":  {"sum of the decimal digits", runDigitSum},
	"reverse":   {"digits in reverse order", runReverse},
	"divide":    {"quotient and remainder by repeated subtraction", runDivide},
	"russian":   {"Russian peasant multiplication table", runRussian},
	"power":     {"base raised to a non-negative exponent", runPower},
	"sumdown":   {"k + (k-1) + ... + 0, recursive and iterative", runSumDown},
	"vector":    {"sum, product and minimum of a vector", runVector},
	"matrixsum": {"sum of a square matrix", runMatrixSum},
	"parity":    {"even or odd by mutual recursion", runParity},
	"sign":      {"positive or negative by mutual recursion", runSign},
}

func recursionHelp(a *app) {
	names := make([]string, 0, len(recursionExercises))
	for name := range recursionExercises {
		names = append(names, name)
	}
	sort.Strings(names)
	a.out.Printf("usage: courselab recursion <exercise>\n\n")
	for _, name := range names {
		a.out.Printf("  %-10s %s\n", name, recursionExercises[name].about)
	}
}

func runRecursion(a *app) error {
	if len(a.args) == 0 || a.args[0] == "help" {
		recursionHelp(a)
		return nil
	}
	ex, ok := recursionExercises[a.args[0]]
	if !ok {
		recursionHelp(a)
		return fmt.Errorf("unknown recursion exercise %q", a.args[0])
	}
	return ex.run(a)
}

// check turns a domain error into a fatal one; these exercises exit instead
// of asking again.
func check(err error) error {
	if errors.Is(err, recursion.ErrDomain) {
		return fatal(err)
	}
	return err
}

func runFactorial(a *app) error {
	n, err := a.in.IntRange("n: ", 0, 20)
	if err != nil {
		return err
	}
	f, err := recursion.Factorial(n)
	if err != nil {
		return err
	}
	a.out.OK("%d! = %d", n, f)
	return nil
}

func runFibonacci(a *app) error {
	// fibonacci is exponential; 40 is already slow
	n, err := a.in.IntRange("n: ", 1, 40)
	if err != nil {
		return err
	}
	var seq []int
	if a.cfg.Display.Color {
		// the decorated rendering shows each naive call as it finishes
		bar := a.out.Progress(n, "computing")
		for i := 1; i <= n; i++ {
			f, err := recursion.Fibonacci(i)
			if err != nil {
				return err
			}
			seq = append(seq, f)
			bar.Add(1)
		}
	} else if seq, err = recursion.FibonacciSeq(n); err != nil {
		return err
	}
	display.Seq(a.out, "sequence", slices.Values(seq))
	a.out.OK("fibonacci(%d) = %d", n, seq[len(seq)-1])
	return nil
}

func runGCD(a *app) error {
	x, err := a.in.Int("a: ")
	if err != nil {
		return err
	}
	y, err := a.in.Int("b: ")
	if err != nil {
		return err
	}
	steps, err := recursion.GCDSteps(x, y)
	if err != nil {
		return check(err)
	}
	for _, s := range steps {
		a.out.Printf("%d = %d * %d + %d\n", s.A, s.Quotient, s.B, s.Remainder)
	}
	g, err := recursion.GCD(x, y)
	if err != nil {
		return check(err)
	}
	a.out.OK("gcd(%d, %d) = %d", x, y, g)
	return nil
}

func runDigitSum(a *app) error {
	n, err := a.in.IntAtLeast("n: ", 0)
	if err != nil {
		return err
	}
	s, err := recursion.DigitSum(n)
	if err != nil {
		return err
	}
	a.out.OK("digit sum of %d = %d", n, s)
	return nil
}

func runReverse(a *app) error {
	n, err := a.in.IntAtLeast("n: ", 0)
	if err != nil {
		return err
	}
	r, err := recursion.Reverse(n)
	if err != nil {
		return err
	}
	a.out.OK("%d reversed = %d", n, r)
	return nil
}

func runDivide(a *app) error {
	x, err := a.in.IntAtMost("dividend: ", maxDepth)
	if err != nil {
		return err
	}
	y, err := a.in.Int("divisor: ")
	if err != nil {
		return err
	}
	q, r, err := recursion.Divide(x, y)
	if err != nil {
		return check(err)
	}
	a.out.OK("%d / %d = %d remainder %d", x, y, q, r)
	return nil
}

func runRussian(a *app) error {
	x, err := a.in.Int("a: ")
	if err != nil {
		return err
	}
	y, err := a.in.Int("b: ")
	if err != nil {
		return err
	}
	rows, err := recursion.RussianSteps(x, y)
	if err != nil {
		return check(err)
	}
	for _, row := range rows {
		mark := "  "
		if !row.Added {
			mark = " x"
		}
		a.out.Printf("%8d %8d%s\n", row.A, row.B, mark)
	}
	p, err := recursion.RussianMultiply(x, y)
	if err != nil {
		return check(err)
	}
	a.out.OK("%d * %d = %d", x, y, p)
	return nil
}

func runPower(a *app) error {
	base, err := a.in.Int("base: ")
	if err != nil {
		return err
	}
	exp, err := a.in.IntRange("exponent: ", 0, maxDepth)
	if err != nil {
		return err
	}
	p, err := recursion.Power(base, exp)
	if err != nil {
		return err
	}
	a.out.OK("%d^%d = %d", base, exp, p)
	return nil
}

func runSumDown(a *app) error {
	k, err := a.in.IntRange("k: ", 0, maxDepth)
	if err != nil {
		return err
	}
	a.out.OK("recursive: %d, iterative: %d", recursion.SumDown(k), recursion.SumDownIterative(k))
	return nil
}

func readVector(a *app) ([]int, error) {
	n, err := a.in.IntRange("length: ", 1, maxLength)
	if err != nil {
		return nil, err
	}
	return a.in.Ints(n, "v")
}

func runVector(a *app) error {
	v, err := readVector(a)
	if err != nil {
		return err
	}
	sum, err := recursion.Sum(v)
	if err != nil {
		return err
	}
	product, err := recursion.Product(v)
	if err != nil {
		return err
	}
	least, err := recursion.Min(v)
	if err != nil {
		return err
	}
	a.out.OK("sum: %s = %d", display.Join(v, " + "), sum)
	a.out.OK("product: %s = %d", display.Join(v, " * "), product)
	a.out.OK("minimum: %d", least)
	return nil
}

func readMatrix(a *app) (*matrix.Dense, error) {
	n, err := a.in.IntRange("size: ", 1, 10)
	if err != nil {
		return nil, err
	}
	m, err := matrix.New(n, n)
	if err != nil {
		return nil, err
	}
	mode, err := a.in.IntRange("1. enter values  2. random values: ", 1, 2)
	if err != nil {
		return nil, err
	}
	if mode == 2 {
		seed := uint64(time.Now().UnixNano())
		m.Fill(rand.New(rand.NewPCG(seed, seed>>1)), 100)
		a.log.Debugw("random matrix", "size", n, "seed", seed)
		return m, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := a.in.Int(fmt.Sprintf("m[%d][%d]: ", i, j))
			if err != nil {
				return nil, err
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func printMatrix(a *app, title string, m *matrix.Dense) {
	a.out.Section(title)
	for _, row := range m.Slice() {
		a.out.Printf("%s\n", display.Join(row, "\t"))
	}
}

func runMatrixSum(a *app) error {
	m, err := readMatrix(a)
	if err != nil {
		return err
	}
	printMatrix(a, "matrix", m)
	sum, err := m.Sum()
	if err != nil {
		return err
	}
	a.out.OK("sum = %d", sum)
	return nil
}

func runMatrix(a *app) error {
	a.out.Banner("MATRIX")
	m, err := readMatrix(a)
	if err != nil {
		return err
	}
	printMatrix(a, "matrix", m)
	printMatrix(a, "transpose", m.Transpose())
	diag, err := m.Diagonal()
	if err != nil {
		return err
	}
	display.Seq(a.out, "diagonal", slices.Values(diag))
	sum, err := m.Sum()
	if err != nil {
		return err
	}
	a.out.OK("sum = %d", sum)
	if c := m.Clone(); !c.Equal(m) {
		return errors.New("matrix copy differs from the original")
	}
	a.out.OK("copy matches the original")
	return nil
}

func runParity(a *app) error {
	n, err := a.in.IntAtMost("n: ", maxDepth)
	if err != nil {
		return err
	}
	even, err := recursion.IsEven(n)
	if err != nil {
		return check(err)
	}
	if even {
		a.out.OK("%d is even", n)
	} else {
		a.out.OK("%d is odd", n)
	}
	return nil
}

func runSign(a *app) error {
	n, err := a.in.Int("n: ")
	if err != nil {
		return err
	}
	pos, err := recursion.IsPositive(n)
	if err != nil {
		return check(err)
	}
	if pos {
		a.out.OK("%d is positive", n)
	} else {
		a.out.OK("%d is negative", n)
	}
	return nil
}

func runText(a *app) error {
	a.out.Banner("TEXT")
	first, err := a.in.NonEmpty("first text: ")
	if err != nil {
		return err
	}
	second, err := a.in.NonEmpty("second text: ")
	if err != nil {
		return err
	}
	a.out.Printf("%s\n", textutil.Greet(first))
	a.out.Printf("length of %q: %d, of %q: %d\n", first, textutil.Length(first), second, textutil.Length(second))
	switch c := textutil.Compare(first, second); {
	case c < 0:
		a.out.Printf("%q sorts before %q\n", first, second)
	case c > 0:
		a.out.Printf("%q sorts after %q\n", first, second)
	default:
		a.out.Printf("both texts are equal\n")
	}
	a.out.Printf("concatenated: %s\n", first+" "+second)
	a.out.Printf("reversed: %s\n", textutil.Reverse(first))
	if textutil.IsPalindrome(first, textutil.FoldCase(), textutil.IgnoreSpaces()) {
		a.out.OK("%q is a palindrome", first)
	} else {
		a.out.Warn("%q is not a palindrome", first)
	}
	return nil
}
