package colorreduce

import (
	"testing"

	"github.com/rasterkit/raster-go/raster"
	"github.com/rasterkit/raster-go/testcommon"
	"github.com/stretchr/testify/assert"
)

func TestGrayscaleAverageKnownValue(t *testing.T) {
	buf := testcommon.GenerateUniformBuffer(t, 3, 3, 30, 60, 90, 255)

	NewReducer(buf).GrayscaleAverage()

	// (30+60+90)/3 = 60
	assert.Equal(t, uint8(60), buf.At(1, 1, raster.Red))
	assert.Equal(t, uint8(60), buf.At(1, 1, raster.Green))
	assert.Equal(t, uint8(60), buf.At(1, 1, raster.Blue))
	assert.Equal(t, uint8(255), buf.At(1, 1, raster.Alpha))
}

func TestGrayscaleAverageAllChannelsEqual(t *testing.T) {
	buf := testcommon.GenerateGradientBuffer(t, 16, 4)
	buf.Set(3, 2, raster.Green, 200)
	buf.Set(3, 2, raster.Alpha, 77)

	NewReducer(buf).GrayscaleAverage()

	for y := uint32(0); y < buf.Height; y++ {
		for x := uint32(0); x < buf.Width; x++ {
			r := buf.At(x, y, raster.Red)
			g := buf.At(x, y, raster.Green)
			b := buf.At(x, y, raster.Blue)
			if r != g || g != b {
				t.Fatalf("pixel (%d,%d) not gray: %d %d %d", x, y, r, g, b)
			}
		}
	}
	// alpha untouched
	assert.Equal(t, uint8(77), buf.At(3, 2, raster.Alpha))
}

func TestGrayscaleLumaWhiteStaysWhite(t *testing.T) {
	buf := testcommon.GenerateUniformBuffer(t, 2, 2, 255, 255, 255, 255)

	NewReducer(buf).GrayscaleLuma()

	assert.Equal(t, uint8(255), buf.At(0, 0, raster.Red))
	assert.Equal(t, uint8(255), buf.At(0, 0, raster.Green))
	assert.Equal(t, uint8(255), buf.At(0, 0, raster.Blue))
	assert.Equal(t, uint8(255), buf.At(0, 0, raster.Alpha))
}

func TestGrayscaleLumaWeighting(t *testing.T) {
	// pure green carries far more luma than pure blue
	green := testcommon.GenerateUniformBuffer(t, 2, 2, 0, 255, 0, 255)
	blue := testcommon.GenerateUniformBuffer(t, 2, 2, 0, 0, 255, 255)

	NewReducer(green).GrayscaleLuma()
	NewReducer(blue).GrayscaleLuma()

	assert.Greater(t, green.At(0, 0, raster.Red), blue.At(0, 0, raster.Red))
	// 255 * 0.7152 truncates to 182
	assert.Equal(t, uint8(182), green.At(0, 0, raster.Red))
	// 255 * 0.0722 truncates to 18
	assert.Equal(t, uint8(18), blue.At(0, 0, raster.Red))
}

func TestGrayscaleLumaAllChannelsEqual(t *testing.T) {
	buf := testcommon.GenerateGradientBuffer(t, 16, 4)
	buf.Set(5, 1, raster.Blue, 13)

	NewReducer(buf).GrayscaleLuma()

	for y := uint32(0); y < buf.Height; y++ {
		for x := uint32(0); x < buf.Width; x++ {
			r := buf.At(x, y, raster.Red)
			g := buf.At(x, y, raster.Green)
			b := buf.At(x, y, raster.Blue)
			if r != g || g != b {
				t.Fatalf("pixel (%d,%d) not gray: %d %d %d", x, y, r, g, b)
			}
		}
	}
}

func TestGrayscalePreservesDimensions(t *testing.T) {
	buf := testcommon.GenerateGradientBuffer(t, 7, 5)

	NewReducer(buf).GrayscaleAverage()

	assert.Equal(t, uint32(7), buf.Width)
	assert.Equal(t, uint32(5), buf.Height)
	assert.Equal(t, 7*5*raster.BytesPerPixel, len(buf.Pixels))
}
