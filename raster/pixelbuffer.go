package raster

import (
	"errors"
)

// BytesPerPixel is the packed RGBA8 pixel stride.
const BytesPerPixel = 4

// Channel identifies one component of an RGBA8 pixel. Its value is the
// byte offset of the component within the pixel.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
	Alpha
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Alpha:
		return "alpha"
	}
	return "unknown"
}

// Offset returns the byte offset of the channel within a packed pixel.
func (c Channel) Offset() int {
	return int(c)
}

// PixelBuffer holds a decoded raster as packed RGBA8 bytes, row-major,
// no padding between rows. len(Pixels) == Width*Height*4 always holds;
// mutations either preserve that exactly or replace the whole buffer.
type PixelBuffer struct {
	Pixels []uint8
	Width  uint32
	Height uint32
}

// NewPixelBuffer creates a zeroed buffer with the given dimensions.
func NewPixelBuffer(width uint32, height uint32) (*PixelBuffer, error) {
	if width == 0 || height == 0 {
		return nil, errors.New("pixel buffer dimensions must be non zero")
	}
	return &PixelBuffer{
		Pixels: make([]uint8, int(width)*int(height)*BytesPerPixel),
		Width:  width,
		Height: height,
	}, nil
}

// NewPixelBufferFromBytes wraps an existing packed RGBA8 slice. The slice is
// used directly, not copied.
func NewPixelBufferFromBytes(pixels []uint8, width uint32, height uint32) (*PixelBuffer, error) {
	if width == 0 || height == 0 {
		return nil, errors.New("pixel buffer dimensions must be non zero")
	}
	if len(pixels) != int(width)*int(height)*BytesPerPixel {
		return nil, errors.New("pixel data length does not match dimensions")
	}
	return &PixelBuffer{
		Pixels: pixels,
		Width:  width,
		Height: height,
	}, nil
}

// PixelIndex returns the linear byte index of the pixel at (x, y).
func (pb *PixelBuffer) PixelIndex(x uint32, y uint32) int {
	return (int(y)*int(pb.Width) + int(x)) * BytesPerPixel
}

// At returns the byte for the given channel of the pixel at (x, y).
func (pb *PixelBuffer) At(x uint32, y uint32, ch Channel) uint8 {
	return pb.Pixels[pb.PixelIndex(x, y)+ch.Offset()]
}

// Set writes the byte for the given channel of the pixel at (x, y).
func (pb *PixelBuffer) Set(x uint32, y uint32, ch Channel, value uint8) {
	pb.Pixels[pb.PixelIndex(x, y)+ch.Offset()] = value
}

// NumPixels returns the pixel count of the raster.
func (pb *PixelBuffer) NumPixels() int {
	return int(pb.Width) * int(pb.Height)
}

// Clone returns a deep copy sharing no storage with the original.
func (pb *PixelBuffer) Clone() *PixelBuffer {
	pixels := make([]uint8, len(pb.Pixels))
	copy(pixels, pb.Pixels)
	return &PixelBuffer{
		Pixels: pixels,
		Width:  pb.Width,
		Height: pb.Height,
	}
}

// Replace overwrites the raster contents from pixels in a single copy.
// The dimensions are unchanged, so pixels must match the current length.
func (pb *PixelBuffer) Replace(pixels []uint8) error {
	if len(pixels) != len(pb.Pixels) {
		return errors.New("replacement pixel data length does not match buffer")
	}
	copy(pb.Pixels, pixels)
	return nil
}

// Equals compares two PixelBuffers and returns true if they are equal.
func (pb *PixelBuffer) Equals(other *PixelBuffer) bool {
	if other == nil {
		return false
	}
	if pb.Width != other.Width || pb.Height != other.Height {
		return false
	}
	if len(pb.Pixels) != len(other.Pixels) {
		return false
	}
	for i, v := range pb.Pixels {
		if other.Pixels[i] != v {
			return false
		}
	}
	return true
}
