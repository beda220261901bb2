package convolution

import (
	"sort"

	"github.com/rasterkit/raster-go/raster"
	"github.com/rasterkit/raster-go/util"
)

// Median replaces each channel value with the median of its 3x3
// neighborhood. The nine sample slots start at zero, so under EdgeZero
// the slots of out-of-bounds samples stay zero and edge-pixel medians are
// biased toward black rather than computed over fewer true samples.
func (e *Engine) Median() {
	pixels := e.buf.Pixels
	scratch := util.GetScratchBuffer(len(pixels))

	width := int(e.buf.Width)
	height := int(e.buf.Height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			index := (y*width + x) * raster.BytesPerPixel

			var red, green, blue [9]int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sampleIdx, ok := e.sampleIndex(x, y, dx, dy)
					if !ok {
						continue
					}
					slot := (dy+1)*3 + (dx + 1)
					red[slot] = int(pixels[sampleIdx])
					green[slot] = int(pixels[sampleIdx+1])
					blue[slot] = int(pixels[sampleIdx+2])
				}
			}

			sort.Ints(red[:])
			sort.Ints(green[:])
			sort.Ints(blue[:])

			scratch[index] = uint8(red[4])
			scratch[index+1] = uint8(green[4])
			scratch[index+2] = uint8(blue[4])
			scratch[index+3] = pixels[index+3]
		}
	}

	e.commit(scratch)
}
