package pair

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Pair is an ordered pair of values of the same type.
type Pair[T any] struct {
	Left  T
	Right T
}

// String renders the pair as "(left, right)".
func (p Pair[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// Parse splits s on the first occurrence of sep and converts each side with
// parse. It reports false when sep is missing or either side fails to parse.
func Parse[T any](s string, sep rune, parse func(string) (T, error)) (Pair[T], bool) {
	s = strings.TrimSpace(s)

	idx := strings.IndexRune(s, sep)
	if idx < 0 {
		return Pair[T]{}, false
	}

	// Width comes from the input: utf8.RuneError matches any single invalid byte.
	_, width := utf8.DecodeRuneInString(s[idx:])

	left, err := parse(s[:idx])
	if err != nil {
		return Pair[T]{}, false
	}
	right, err := parse(s[idx+width:])
	if err != nil {
		return Pair[T]{}, false
	}

	return Pair[T]{Left: left, Right: right}, true
}

// Int parses a base-10 int.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

// Int64 parses a base-10 int64.
func Int64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Uint parses a base-10 unsigned integer.
func Uint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 0)
	return uint(v), err
}

// Float64 parses a 64-bit floating-point number.
func Float64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
