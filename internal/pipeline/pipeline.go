package pipeline

import (
	"bytes"
	"fmt"

	"github.com/reptilmo/mandelbrot/internal/geom"
	"github.com/reptilmo/mandelbrot/internal/imgenc"
	"github.com/reptilmo/mandelbrot/internal/ir"
	"github.com/reptilmo/mandelbrot/internal/render"
)

// Options controls the full render pipeline.
type Options struct {
	Bounds  geom.Bounds   // required: output image size in pixels
	Rect    geom.Rect     // required: plane rectangle to render
	Format  imgenc.Format // output container; empty means PNG
	Workers int           // render goroutines; 0 means GOMAXPROCS
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded image, ready to be written out in one piece
	Width  int
	Height int
}

// Run executes the full pipeline: validate → render → encode. The encoded
// image is returned in memory so that a failing encode never leaves a
// truncated file behind; the caller writes Data to its destination in a
// single operation.
func Run(opts Options) (*Result, error) {
	// 1. Validate inputs
	if err := opts.Bounds.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Rect.Validate(); err != nil {
		return nil, err
	}
	format := opts.Format
	if format == "" {
		format = imgenc.FormatPNG
	}

	// 2. Render into a flat RGB buffer
	img := ir.NewRGBImage(opts.Bounds.Width, opts.Bounds.Height)
	render.Render(img, opts.Rect, opts.Workers)

	// 3. Encode
	var buf bytes.Buffer
	if err := imgenc.Encode(&buf, img, format); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:   buf.Bytes(),
		Width:  img.Width,
		Height: img.Height,
	}, nil
}
