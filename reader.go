package raster_go

import (
	"io"

	"github.com/rasterkit/raster-go/codec"
	"github.com/rasterkit/raster-go/raster"
)

// Decode reads a compressed image stream and returns its pixels as a
// packed RGBA8 buffer. The container format is sniffed from the bytes;
// png, jpeg, gif, bmp, tiff and webp are recognised.
func Decode(r io.Reader) (*raster.PixelBuffer, error) {
	return codec.DecodeReader(r)
}

// DecodeBytes decodes an in-memory compressed image.
func DecodeBytes(data []byte) (*raster.PixelBuffer, error) {
	return codec.Decode(data)
}
