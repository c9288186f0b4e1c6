// Package prompt reads validated console input. Every method re-asks the same
// question until the answer is acceptable; only end of input escapes the
// loop, as io.EOF.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/i5heu/GoCourseLab/pkg/display"
)

type Prompter struct {
	sc  *bufio.Scanner
	out *display.Renderer
}

func New(in io.Reader, out *display.Renderer) *Prompter {
	return &Prompter{sc: bufio.NewScanner(in), out: out}
}

// Line prints msg and returns the next input line without surrounding spaces.
func (p *Prompter) Line(msg string) (string, error) {
	p.out.Printf("%s", msg)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.sc.Text()), nil
}

// ask loops until parse accepts the line.
func ask[T any](p *Prompter, msg string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.Line(msg)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		p.out.Error("%v, try again", err)
	}
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return v, nil
}

func (p *Prompter) Int(msg string) (int, error) {
	return ask(p, msg, parseInt)
}

// IntRange accepts integers in [min, max].
func (p *Prompter) IntRange(msg string, min, max int) (int, error) {
	return ask(p, msg, func(s string) (int, error) {
		v, err := parseInt(s)
		if err != nil {
			return 0, err
		}
		if v < min || v > max {
			return 0, fmt.Errorf("%d is outside %d..%d", v, min, max)
		}
		return v, nil
	})
}

// IntAtLeast accepts integers >= min.
func (p *Prompter) IntAtLeast(msg string, min int) (int, error) {
	return ask(p, msg, func(s string) (int, error) {
		v, err := parseInt(s)
		if err != nil {
			return 0, err
		}
		if v < min {
			return 0, fmt.Errorf("%d must be at least %d", v, min)
		}
		return v, nil
	})
}

// IntAtMost accepts integers <= max. Values below any lower bound pass
// through so the caller can reject them itself.
func (p *Prompter) IntAtMost(msg string, max int) (int, error) {
	return ask(p, msg, func(s string) (int, error) {
		v, err := parseInt(s)
		if err != nil {
			return 0, err
		}
		if v > max {
			return 0, fmt.Errorf("%d must be at most %d", v, max)
		}
		return v, nil
	})
}

// Float accepts numbers in [min, max].
func (p *Prompter) Float(msg string, min, max float64) (float64, error) {
	return ask(p, msg, func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", s)
		}
		if v < min || v > max {
			return 0, fmt.Errorf("%g is outside %g..%g", v, min, max)
		}
		return v, nil
	})
}

// NonEmpty re-asks until the line has text.
func (p *Prompter) NonEmpty(msg string) (string, error) {
	return ask(p, msg, func(s string) (string, error) {
		if s == "" {
			return "", fmt.Errorf("a value is required")
		}
		return s, nil
	})
}

// Ints reads n integers labelled "label[i]: ".
func (p *Prompter) Ints(n int, label string) ([]int, error) {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v, err := p.Int(fmt.Sprintf("%s[%d]: ", label, i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Increasing reads n integers, re-asking each one until it is greater than
// the previous value.
func (p *Prompter) Increasing(n int, label string) ([]int, error) {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v, err := ask(p, fmt.Sprintf("%s[%d]: ", label, i), func(s string) (int, error) {
			v, err := parseInt(s)
			if err != nil {
				return 0, err
			}
			if i > 0 && v <= out[i-1] {
				return 0, fmt.Errorf("must be greater than %d", out[i-1])
			}
			return v, nil
		})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
