package main

import (
	"testing"

	"github.com/reptilmo/mandelbrot/internal/geom"
)

func TestParsePair(t *testing.T) {
	bad := []string{"", "1.2", ",", ",3.7", "1.2,", "a,b"}
	for _, s := range bad {
		if _, _, err := parsePair(s, ','); err == nil {
			t.Errorf("parsePair(%q) = nil error, want failure", s)
		}
	}

	l, r, err := parsePair("1.24,-0.6048", ',')
	if err != nil || l != 1.24 || r != -0.6048 {
		t.Errorf("parsePair(1.24,-0.6048) = %g, %g, %v", l, r, err)
	}
	l, r, err = parsePair("3.14,25.1", ',')
	if err != nil || l != 3.14 || r != 25.1 {
		t.Errorf("parsePair(3.14,25.1) = %g, %g, %v", l, r, err)
	}
}

func TestParseComplex(t *testing.T) {
	c, err := parseComplex("3.14,2.71")
	if err != nil || c != complex(3.14, 2.71) {
		t.Errorf("parseComplex(3.14,2.71) = %v, %v", c, err)
	}
	if _, err := parseComplex("1.2,"); err == nil {
		t.Error("parseComplex(1.2,) = nil error, want failure")
	}
}

func TestParseBounds(t *testing.T) {
	b, err := parseBounds("400x800")
	if err != nil || b != (geom.Bounds{Width: 400, Height: 800}) {
		t.Errorf("parseBounds(400x800) = %+v, %v", b, err)
	}

	bad := []string{"", "400", "x", "400x", "x800", "0x800", "400x0", "-4x8", "4.5x8"}
	for _, s := range bad {
		if _, err := parseBounds(s); err == nil {
			t.Errorf("parseBounds(%q) = nil error, want failure", s)
		}
	}
}
