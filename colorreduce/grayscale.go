package colorreduce

import (
	"github.com/rasterkit/raster-go/raster"
	"github.com/rasterkit/raster-go/util"
)

// BT.709 luma weights.
const (
	lumaRed   = 0.2126
	lumaGreen = 0.7152
	lumaBlue  = 0.0722
)

// Reducer collapses the colour channels of a PixelBuffer to grayscale.
// Both reductions are single full-buffer passes writing the gray value
// back to R, G and B in place; alpha is never touched.
type Reducer struct {
	buf *raster.PixelBuffer
}

func NewReducer(buf *raster.PixelBuffer) *Reducer {
	return &Reducer{buf: buf}
}

// GrayscaleAverage replaces each pixel's RGB with the simple mean
// (R+G+B)/3, truncated to a byte.
func (r *Reducer) GrayscaleAverage() {
	pixels := r.buf.Pixels

	for index := 0; index < len(pixels); index += raster.BytesPerPixel {
		red := float32(pixels[index])
		green := float32(pixels[index+1])
		blue := float32(pixels[index+2])

		avg := util.ClampToByte((red + green + blue) / 3.0)

		pixels[index] = avg
		pixels[index+1] = avg
		pixels[index+2] = avg
	}
}

// GrayscaleLuma replaces each pixel's RGB with the BT.709 weighted sum,
// truncated to a byte. The weights sum to 1.0 so pure white stays white.
func (r *Reducer) GrayscaleLuma() {
	pixels := r.buf.Pixels

	for index := 0; index < len(pixels); index += raster.BytesPerPixel {
		red := float32(pixels[index])
		green := float32(pixels[index+1])
		blue := float32(pixels[index+2])

		gray := util.ClampToByte(red*lumaRed + green*lumaGreen + blue*lumaBlue)

		pixels[index] = gray
		pixels[index+1] = gray
		pixels[index+2] = gray
	}
}
