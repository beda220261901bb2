package convolution

import (
	"github.com/rasterkit/raster-go/raster"
	"github.com/rasterkit/raster-go/util"
)

// Sharpen runs a high-pass pass (8/9 at the center, -1/9 at the eight
// neighbours) into a scratch buffer, then adds the scratch RGB onto the
// original with saturating addition. Negative high-pass responses floor
// at zero, so a flat field sharpens to itself. Two full passes.
func (e *Engine) Sharpen() {
	pixels := e.buf.Pixels
	highpass := util.GetScratchBuffer(len(pixels))
	defer util.ReturnScratchBuffer(highpass)

	width := int(e.buf.Width)
	height := int(e.buf.Height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			index := (y*width + x) * raster.BytesPerPixel

			var red, green, blue float32
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sampleIdx, ok := e.sampleIndex(x, y, dx, dy)
					if !ok {
						continue
					}

					weight := float32(-1.0 / 9.0)
					if dx == 0 && dy == 0 {
						weight = 8.0 / 9.0
					}

					red += float32(pixels[sampleIdx]) * weight
					green += float32(pixels[sampleIdx+1]) * weight
					blue += float32(pixels[sampleIdx+2]) * weight
				}
			}

			highpass[index] = util.ClampToByte(red)
			highpass[index+1] = util.ClampToByte(green)
			highpass[index+2] = util.ClampToByte(blue)
		}
	}

	// Second pass is pointwise, so mutating in place is safe here.
	for index := 0; index < len(pixels); index += raster.BytesPerPixel {
		pixels[index] = util.SaturatingAddByte(pixels[index], highpass[index])
		pixels[index+1] = util.SaturatingAddByte(pixels[index+1], highpass[index+1])
		pixels[index+2] = util.SaturatingAddByte(pixels[index+2], highpass[index+2])
	}
}
