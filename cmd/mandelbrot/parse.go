package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reptilmo/mandelbrot/internal/geom"
)

// parsePair splits s on the first occurrence of sep and parses both sides as
// float64. There is no partial result: a missing separator or an unparseable
// side fails the whole pair.
func parsePair(s string, sep byte) (left, right float64, err error) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return 0, 0, fmt.Errorf("missing %q separator in %q", sep, s)
	}
	left, err = strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad value %q in %q", s[:i], s)
	}
	right, err = strconv.ParseFloat(s[i+1:], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad value %q in %q", s[i+1:], s)
	}
	return left, right, nil
}

// parseComplex parses a "RE,IM" coordinate.
func parseComplex(s string) (complex128, error) {
	re, im, err := parsePair(s, ',')
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// parseBounds parses a "WIDTHxHEIGHT" image size. Both sides must be positive
// integers.
func parseBounds(s string) (geom.Bounds, error) {
	i := strings.IndexByte(s, 'x')
	if i < 0 {
		return geom.Bounds{}, fmt.Errorf("missing 'x' separator in size %q", s)
	}
	w, err := strconv.Atoi(s[:i])
	if err != nil {
		return geom.Bounds{}, fmt.Errorf("bad width %q in size %q", s[:i], s)
	}
	h, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return geom.Bounds{}, fmt.Errorf("bad height %q in size %q", s[i+1:], s)
	}
	b := geom.Bounds{Width: w, Height: h}
	if err := b.Validate(); err != nil {
		return geom.Bounds{}, err
	}
	return b, nil
}
