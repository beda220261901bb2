package convolution

import (
	"github.com/rasterkit/raster-go/raster"
	"github.com/rasterkit/raster-go/util"
)

// gaussianKernel is indexed as [dy+1][dx+1]. Weights sum to 16.
var gaussianKernel = [3][3]int{
	{1, 2, 1},
	{2, 4, 2},
	{1, 2, 1},
}

// GaussianBlur applies the fixed 3x3 Gaussian kernel, dividing the
// weighted channel sums by 16 with truncating integer division.
func (e *Engine) GaussianBlur() {
	pixels := e.buf.Pixels
	scratch := util.GetScratchBuffer(len(pixels))

	width := int(e.buf.Width)
	height := int(e.buf.Height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			index := (y*width + x) * raster.BytesPerPixel

			var red, green, blue int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sampleIdx, ok := e.sampleIndex(x, y, dx, dy)
					if !ok {
						continue
					}

					weight := gaussianKernel[dy+1][dx+1]
					red += int(pixels[sampleIdx]) * weight
					green += int(pixels[sampleIdx+1]) * weight
					blue += int(pixels[sampleIdx+2]) * weight
				}
			}

			scratch[index] = uint8(red / 16)
			scratch[index+1] = uint8(green / 16)
			scratch[index+2] = uint8(blue / 16)
			scratch[index+3] = pixels[index+3]
		}
	}

	e.commit(scratch)
}
