package ir

// RGBImage is the intermediate representation passed between the renderer and
// the image encoders. Pixels are stored as interleaved R,G,B bytes (3 bytes
// per pixel, row-major order, no row padding, no alpha).
type RGBImage struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 3
}

// NewRGBImage allocates a zeroed (all black) image buffer for the given
// dimensions.
func NewRGBImage(width, height int) *RGBImage {
	return &RGBImage{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*3),
	}
}
