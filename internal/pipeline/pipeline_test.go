package pipeline

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/reptilmo/mandelbrot/internal/geom"
	"github.com/reptilmo/mandelbrot/internal/imgenc"
)

var fullSet = geom.Rect{
	UpperLeft:  complex(-2.5, 1.25),
	LowerRight: complex(1.0, -1.25),
}

func TestRunProducesDecodablePNG(t *testing.T) {
	result, err := Run(Options{
		Bounds: geom.Bounds{Width: 48, Height: 32},
		Rect:   fullSet,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Width != 48 || result.Height != 32 {
		t.Errorf("result dimensions %dx%d, want 48x32", result.Width, result.Height)
	}

	img, err := png.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 48 || b.Dy() != 32 {
		t.Errorf("decoded dimensions %dx%d, want 48x32", b.Dx(), b.Dy())
	}

	t.Logf("Pipeline output: %dx%d PNG, %d bytes", result.Width, result.Height, len(result.Data))
}

func TestRunSinglePixelOrigin(t *testing.T) {
	// Degenerate 1x1 render of a zero-area rectangle at the origin: one
	// black pixel, no division issues.
	result, err := Run(Options{
		Bounds: geom.Bounds{Width: 1, Height: 1},
		Rect:   geom.Rect{},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("origin pixel = %d,%d,%d, want black", r>>8, g>>8, b>>8)
	}
}

func TestRunIsReproducible(t *testing.T) {
	opts := Options{
		Bounds: geom.Bounds{Width: 32, Height: 32},
		Rect:   fullSet,
		Format: imgenc.FormatBMP, // uncompressed, byte-exact container
	}
	a, err := Run(opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	opts.Workers = 4
	b, err := Run(opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Fatal("same inputs produced different output bytes")
	}
}

func TestRunRejectsBadInputs(t *testing.T) {
	if _, err := Run(Options{Bounds: geom.Bounds{Width: 0, Height: 10}, Rect: fullSet}); err == nil {
		t.Error("zero width accepted")
	}
	inverted := geom.Rect{UpperLeft: complex(0, -1), LowerRight: complex(1, 1)}
	if _, err := Run(Options{Bounds: geom.Bounds{Width: 4, Height: 4}, Rect: inverted}); err == nil {
		t.Error("inverted rect accepted")
	}
}
