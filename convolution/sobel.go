package convolution

import (
	"math"

	"github.com/rasterkit/raster-go/raster"
	"github.com/rasterkit/raster-go/util"
)

// Sobel replaces each channel value with its gradient magnitude: the
// horizontal and vertical gradients are accumulated with column weights
// and row weights of {-1, 0, 1}, and the output is sqrt(gx^2 + gy^2)
// clamped to 255. A flat field has zero gradient, so uniform images come
// out all black with alpha preserved.
func (e *Engine) Sobel() {
	pixels := e.buf.Pixels
	scratch := util.GetScratchBuffer(len(pixels))

	width := int(e.buf.Width)
	height := int(e.buf.Height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			index := (y*width + x) * raster.BytesPerPixel

			var redX, greenX, blueX int
			var redY, greenY, blueY int

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sampleIdx, ok := e.sampleIndex(x, y, dx, dy)
					if !ok {
						continue
					}

					red := int(pixels[sampleIdx])
					green := int(pixels[sampleIdx+1])
					blue := int(pixels[sampleIdx+2])

					redX += red * dx
					greenX += green * dx
					blueX += blue * dx

					redY += red * dy
					greenY += green * dy
					blueY += blue * dy
				}
			}

			scratch[index] = magnitude(redX, redY)
			scratch[index+1] = magnitude(greenX, greenY)
			scratch[index+2] = magnitude(blueX, blueY)
			scratch[index+3] = pixels[index+3]
		}
	}

	e.commit(scratch)
}

func magnitude(gx int, gy int) uint8 {
	return util.ClampToByte(float32(math.Sqrt(float64(gx*gx + gy*gy))))
}
