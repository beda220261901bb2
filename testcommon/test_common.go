package testcommon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/rasterkit/raster-go/raster"
)

// GenerateUniformBuffer builds a buffer where every pixel is (r, g, b, a).
func GenerateUniformBuffer(t *testing.T, width uint32, height uint32, r uint8, g uint8, b uint8, a uint8) *raster.PixelBuffer {
	buf, err := raster.NewPixelBuffer(width, height)
	if err != nil {
		t.Fatalf("error creating test buffer : %v", err)
	}
	for i := 0; i < len(buf.Pixels); i += raster.BytesPerPixel {
		buf.Pixels[i] = r
		buf.Pixels[i+1] = g
		buf.Pixels[i+2] = b
		buf.Pixels[i+3] = a
	}
	return buf
}

// GenerateGradientBuffer builds an opaque buffer whose RGB ramps with the
// column index, identical on every row.
func GenerateGradientBuffer(t *testing.T, width uint32, height uint32) *raster.PixelBuffer {
	buf, err := raster.NewPixelBuffer(width, height)
	if err != nil {
		t.Fatalf("error creating test buffer : %v", err)
	}
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			v := uint8((int(x) * 255) / int(width))
			buf.Set(x, y, raster.Red, v)
			buf.Set(x, y, raster.Green, v)
			buf.Set(x, y, raster.Blue, v)
			buf.Set(x, y, raster.Alpha, 255)
		}
	}
	return buf
}

// GeneratePNGBytes encodes a small RGBA test image to PNG for decode tests.
func GeneratePNGBytes(t *testing.T, width int, height int, c color.RGBA) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		t.Fatalf("error encoding test png : %v", err)
	}
	return out.Bytes()
}
