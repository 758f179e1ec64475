// Package imgenc serializes a flat RGB8 pixel buffer to a raster image
// container. Container internals (compression, headers) are delegated to the
// stdlib PNG encoder and the golang.org/x/image BMP and TIFF encoders.
package imgenc

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/reptilmo/mandelbrot/internal/ir"
)

// Format selects the output image container.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatBMP:
		return FormatBMP, nil
	case FormatTIFF, Format("tif"):
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("unknown image format %q (known: png, bmp, tiff)", s)
}

// FormatForPath picks a format from a file extension, defaulting to PNG when
// the extension is missing or unrecognized.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return FormatPNG
	}
}

// Encode writes img to w in the given container format. The caller retains
// ownership of the buffer; it is only read.
func Encode(w io.Writer, img *ir.RGBImage, format Format) error {
	rgba := toRGBA(img)
	switch format {
	case FormatPNG:
		return png.Encode(w, rgba)
	case FormatBMP:
		return bmp.Encode(w, rgba)
	case FormatTIFF:
		return tiff.Encode(w, rgba, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unknown image format %q", format)
}

// toRGBA expands the packed 3-byte pixels into an image.RGBA with opaque
// alpha. Explicit byte copying, not buffer reinterpretation: the two layouts
// differ (RGBA has a fourth channel and its own stride).
func toRGBA(img *ir.RGBImage) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		src := img.Pixels[y*img.Width*3:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < img.Width; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xFF
		}
	}
	return out
}
