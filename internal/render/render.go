// Package render drives the coordinate mapper, the escape-time evaluator and
// the palette across every pixel of the target image, populating a flat RGB
// buffer.
package render

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/reptilmo/mandelbrot/internal/geom"
	"github.com/reptilmo/mandelbrot/internal/ir"
	"github.com/reptilmo/mandelbrot/internal/mandel"
	"github.com/reptilmo/mandelbrot/internal/palette"
)

// Render populates img with the Mandelbrot set over rect using the fixed
// iteration limit. Rows are split into contiguous bands across workers
// goroutines (0 means GOMAXPROCS); each pixel depends only on its own
// coordinate, so the output is byte-identical regardless of worker count.
//
// img must have been allocated for exactly its stated bounds; a size mismatch
// is a programming error and panics.
func Render(img *ir.RGBImage, rect geom.Rect, workers int) {
	b := geom.Bounds{Width: img.Width, Height: img.Height}
	if len(img.Pixels) != b.Pixels()*3 {
		panic(fmt.Sprintf("render: pixel buffer is %d bytes, want %d for %dx%d",
			len(img.Pixels), b.Pixels()*3, img.Width, img.Height))
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > img.Height {
		workers = img.Height
	}
	if workers == 1 {
		renderRows(img, b, rect, 0, img.Height)
		return
	}

	// Contiguous row bands, one per worker. No two bands overlap, so the
	// buffer needs no locking.
	var wg sync.WaitGroup
	rowsPer := (img.Height + workers - 1) / workers
	for start := 0; start < img.Height; start += rowsPer {
		end := start + rowsPer
		if end > img.Height {
			end = img.Height
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			renderRows(img, b, rect, start, end)
		}(start, end)
	}
	wg.Wait()
}

// renderRows fills rows [y0, y1) of the buffer in row-major order.
func renderRows(img *ir.RGBImage, b geom.Bounds, rect geom.Rect, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := img.Pixels[y*img.Width*3:]
		for x := 0; x < img.Width; x++ {
			point := geom.PixelToPoint(b, x, y, rect)
			p := palette.FromEscape(mandel.Escape(point, mandel.DefaultLimit))
			row[x*3+0] = p.R
			row[x*3+1] = p.G
			row[x*3+2] = p.B
		}
	}
}
