package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPixelBuffer(t *testing.T) {
	buf, err := NewPixelBuffer(5, 4)
	assert.Nil(t, err)
	assert.NotNil(t, buf)
	assert.Equal(t, 5*4*BytesPerPixel, len(buf.Pixels))
}

func TestNewPixelBufferZeroDims(t *testing.T) {
	_, err := NewPixelBuffer(0, 4)
	assert.NotNil(t, err)

	_, err = NewPixelBuffer(5, 0)
	assert.NotNil(t, err)
}

func TestNewPixelBufferFromBytes(t *testing.T) {
	pixels := make([]uint8, 3*2*BytesPerPixel)
	buf, err := NewPixelBufferFromBytes(pixels, 3, 2)
	assert.Nil(t, err)
	assert.NotNil(t, buf)
}

func TestNewPixelBufferFromBytesWrongLength(t *testing.T) {
	pixels := make([]uint8, 10)
	_, err := NewPixelBufferFromBytes(pixels, 3, 2)
	assert.NotNil(t, err)
}

func TestAtAndSet(t *testing.T) {
	buf, err := NewPixelBuffer(3, 3)
	assert.Nil(t, err)

	buf.Set(2, 1, Green, 77)
	assert.Equal(t, uint8(77), buf.At(2, 1, Green))

	// channel offsets map straight onto the packed layout
	idx := buf.PixelIndex(2, 1)
	assert.Equal(t, uint8(77), buf.Pixels[idx+1])
}

func TestPixelIndexRowMajor(t *testing.T) {
	buf, err := NewPixelBuffer(4, 3)
	assert.Nil(t, err)

	assert.Equal(t, 0, buf.PixelIndex(0, 0))
	assert.Equal(t, BytesPerPixel, buf.PixelIndex(1, 0))
	assert.Equal(t, 4*BytesPerPixel, buf.PixelIndex(0, 1))
}

func TestClone(t *testing.T) {
	buf, err := NewPixelBuffer(2, 2)
	assert.Nil(t, err)
	buf.Set(0, 0, Red, 200)

	clone := buf.Clone()
	assert.True(t, buf.Equals(clone))

	clone.Set(0, 0, Red, 100)
	assert.Equal(t, uint8(200), buf.At(0, 0, Red))
	assert.False(t, buf.Equals(clone))
}

func TestReplace(t *testing.T) {
	buf, err := NewPixelBuffer(2, 2)
	assert.Nil(t, err)

	replacement := make([]uint8, len(buf.Pixels))
	replacement[0] = 42
	assert.Nil(t, buf.Replace(replacement))
	assert.Equal(t, uint8(42), buf.At(0, 0, Red))
}

func TestReplaceWrongLength(t *testing.T) {
	buf, err := NewPixelBuffer(2, 2)
	assert.Nil(t, err)

	err = buf.Replace(make([]uint8, 3))
	assert.NotNil(t, err)
}

func TestEquals(t *testing.T) {
	a, _ := NewPixelBuffer(2, 2)
	b, _ := NewPixelBuffer(2, 2)
	c, _ := NewPixelBuffer(2, 3)

	if !a.Equals(b) {
		t.Error("identical buffers should be equal")
	}
	if a.Equals(c) {
		t.Error("buffers with different dimensions should not be equal")
	}
	if a.Equals(nil) {
		t.Error("buffer should not equal nil")
	}
}

func TestChannelString(t *testing.T) {
	assert.Equal(t, "red", Red.String())
	assert.Equal(t, "green", Green.String())
	assert.Equal(t, "blue", Blue.String())
	assert.Equal(t, "alpha", Alpha.String())
}

func TestChannelOffset(t *testing.T) {
	assert.Equal(t, 0, Red.Offset())
	assert.Equal(t, 1, Green.Offset())
	assert.Equal(t, 2, Blue.Offset())
	assert.Equal(t, 3, Alpha.Offset())
}
