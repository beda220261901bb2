// Package codec turns compressed image byte streams into RGBA8
// PixelBuffers and back. Container parsing is delegated entirely to the
// registered stdlib and golang.org/x/image decoders; whatever the source
// channel layout was, the decoded raster is forced to packed RGBA8 (RGB
// and indexed images gain an opaque alpha channel, grayscale images are
// channel-duplicated).
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/rasterkit/raster-go/raster"

	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode indicates the byte stream could not be recognised or decoded
// as an image. It is recoverable: the caller can prompt for another file.
var ErrDecode = errors.New("cannot decode image data")

// Decode decodes a compressed byte stream into a fresh PixelBuffer.
func Decode(data []byte) (*raster.PixelBuffer, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image has empty bounds", ErrDecode)
	}

	log.Debugf("decoded %s image %dx%d", format, width, height)

	// Redraw into an RGBA image anchored at the origin. This is what
	// forces RGBA8 regardless of the source colour model.
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return raster.NewPixelBufferFromBytes(rgba.Pix, uint32(width), uint32(height))
}

// DecodeReader reads r fully and decodes it.
func DecodeReader(r io.Reader) (*raster.PixelBuffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Decode(data)
}

// ToImage wraps the buffer contents in a stdlib image.RGBA. The pixel
// storage is shared, not copied.
func ToImage(pb *raster.PixelBuffer) *image.RGBA {
	return &image.RGBA{
		Pix:    pb.Pixels,
		Stride: int(pb.Width) * raster.BytesPerPixel,
		Rect:   image.Rect(0, 0, int(pb.Width), int(pb.Height)),
	}
}

// EncodePNG writes the buffer to w as PNG.
func EncodePNG(pb *raster.PixelBuffer, w io.Writer) error {
	return png.Encode(w, ToImage(pb))
}

// EncodeJPEG writes the buffer to w as JPEG with the given quality (1-100).
func EncodeJPEG(pb *raster.PixelBuffer, w io.Writer, quality int) error {
	return jpeg.Encode(w, ToImage(pb), &jpeg.Options{Quality: quality})
}
