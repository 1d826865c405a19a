// Package gcd computes greatest common divisors of positive integers.
package gcd

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrEmpty is returned when no numbers are given.
	ErrEmpty = errors.New("no numbers given")

	// ErrZero is returned when one of the numbers is zero.
	ErrZero = errors.New("numbers must be positive")
)

// GCD returns the greatest common divisor of n and m using Euclid's
// algorithm. Both arguments must be non-zero.
func GCD(n, m uint64) uint64 {
	if n == 0 || m == 0 {
		panic("gcd: zero argument")
	}
	for m != 0 {
		if m < n {
			m, n = n, m
		}
		m %= n
	}
	return n
}

// Of folds GCD over numbers.
func Of(numbers []uint64) (uint64, error) {
	if len(numbers) == 0 {
		return 0, ErrEmpty
	}
	for i, n := range numbers {
		if n == 0 {
			return 0, fmt.Errorf("argument %d: %w", i+1, ErrZero)
		}
	}

	d := numbers[0]
	for _, m := range numbers[1:] {
		d = GCD(d, m)
	}
	return d, nil
}

// ParseArgs parses base-10 unsigned integers from command-line arguments.
func ParseArgs(args []string) ([]uint64, error) {
	numbers := make([]uint64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
