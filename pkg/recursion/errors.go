package recursion

import (
	"errors"
	"fmt"
)

var (
	ErrDomain      = errors.New("recursion: argument out of domain")
	ErrEmptyVector = errors.New("recursion: empty vector")
	ErrZero        = fmt.Errorf("%w: zero has no sign", ErrDomain)
)

func domainErr(name string, want string, got ...int) error {
	return fmt.Errorf("%w: %s requires %s, got %v", ErrDomain, name, want, got)
}
