package convolution

import (
	"github.com/rasterkit/raster-go/raster"
	"github.com/rasterkit/raster-go/util"
)

// Smooth applies an unweighted 3x3 box blur. The channel sums are always
// divided by 9; under EdgeZero the missing samples contribute nothing, so
// edge pixels come out darker.
func (e *Engine) Smooth() {
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
					red += int(pixels[sampleIdx])
					green += int(pixels[sampleIdx+1])
					blue += int(pixels[sampleIdx+2])
				}
			}

			scratch[index] = uint8(red / 9)
			scratch[index+1] = uint8(green / 9)
			scratch[index+2] = uint8(blue / 9)
			scratch[index+3] = pixels[index+3]
		}
	}

	e.commit(scratch)
}
