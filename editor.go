package raster_go

import (
	"errors"
	"fmt"

	"github.com/rasterkit/raster-go/codec"
	"github.com/rasterkit/raster-go/colorreduce"
	"github.com/rasterkit/raster-go/convolution"
	"github.com/rasterkit/raster-go/options"
	"github.com/rasterkit/raster-go/pointops"
	"github.com/rasterkit/raster-go/raster"
)

var (
	// ErrInvalidSelection indicates an unrecognised channel, operation or
	// filter token. Returned before any engine is touched so a caller can
	// validate user input without risking a partial pass.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrNoImage indicates an operation was requested before any image
	// was loaded.
	ErrNoImage = errors.New("no image loaded")
)

// Editor owns the current PixelBuffer and exposes every engine operation
// behind a small named-command surface. It replaces the original design
// where the engines lived as mutable fields of a UI component; a UI is
// now just a thin caller holding an Editor.
type Editor struct {
	buf  *raster.PixelBuffer
	opts *options.FilterOptions
}

// NewEditor creates an editor with no image loaded. opts may be nil.
func NewEditor(opts *options.FilterOptions) *Editor {
	return &Editor{opts: options.NewFilterOptions(opts)}
}

// Load decodes data and replaces the current buffer wholesale. On decode
// failure the previous buffer is kept.
func (e *Editor) Load(data []byte) error {
	buf, err := codec.Decode(data)
	if err != nil {
		return err
	}
	e.buf = buf
	return nil
}

// LoadBuffer replaces the current buffer with an already decoded raster.
func (e *Editor) LoadBuffer(buf *raster.PixelBuffer) {
	e.buf = buf
}

// Buffer returns the current raster, or nil when nothing is loaded.
func (e *Editor) Buffer() *raster.PixelBuffer {
	return e.buf
}

// ParseChannel maps a channel token (red, green, blue, alpha) to its
// Channel value.
func ParseChannel(token string) (raster.Channel, error) {
	switch token {
	case "red":
		return raster.Red, nil
	case "green":
		return raster.Green, nil
	case "blue":
		return raster.Blue, nil
	case "alpha":
		return raster.Alpha, nil
	}
	return 0, fmt.Errorf("%w: unknown channel %q", ErrInvalidSelection, token)
}

// ParseArithmeticOp maps an operation token (add, subtract, multiply,
// divide) to its ArithmeticOp value.
func ParseArithmeticOp(token string) (pointops.ArithmeticOp, error) {
	switch token {
	case "add":
		return pointops.OpAdd, nil
	case "subtract":
		return pointops.OpSubtract, nil
	case "multiply":
		return pointops.OpMultiply, nil
	case "divide":
		return pointops.OpDivide, nil
	}
	return 0, fmt.Errorf("%w: unknown operation %q", ErrInvalidSelection, token)
}

// ApplyPointOperation validates the channel and operation tokens, then
// runs the arithmetic over every pixel of the selected channel.
func (e *Editor) ApplyPointOperation(channelToken string, opToken string, operand float32) error {
	ch, err := ParseChannel(channelToken)
	if err != nil {
		return err
	}
	op, err := ParseArithmeticOp(opToken)
	if err != nil {
		return err
	}
	if e.buf == nil {
		return ErrNoImage
	}

	pointops.NewEngine(e.buf).Apply(ch, operand, op)
	return nil
}

// ChangeBrightness remaps all colour channels toward black or white.
// amount is expected in [-1, 1].
func (e *Editor) ChangeBrightness(amount float32) error {
	if e.buf == nil {
		return ErrNoImage
	}
	pointops.NewEngine(e.buf).ChangeBrightness(amount)
	return nil
}

// FilterNames lists the tokens accepted by ApplyFilter.
func FilterNames() []string {
	return []string{
		"smooth",
		"median",
		"edge",
		"sharpen",
		"gaussian",
		"grayscale-avg",
		"grayscale-luma",
	}
}

// ApplyFilter runs the named full-buffer transform. Unknown names return
// ErrInvalidSelection.
func (e *Editor) ApplyFilter(name string) error {
	if e.buf == nil {
		return ErrNoImage
	}

	switch name {
	case "smooth":
		convolution.NewEngine(e.buf, e.opts).Smooth()
	case "median":
		convolution.NewEngine(e.buf, e.opts).Median()
	case "edge":
		convolution.NewEngine(e.buf, e.opts).Sobel()
	case "sharpen":
		convolution.NewEngine(e.buf, e.opts).Sharpen()
	case "gaussian":
		convolution.NewEngine(e.buf, e.opts).GaussianBlur()
	case "grayscale-avg":
		colorreduce.NewReducer(e.buf).GrayscaleAverage()
	case "grayscale-luma":
		colorreduce.NewReducer(e.buf).GrayscaleLuma()
	default:
		return fmt.Errorf("%w: unknown filter %q", ErrInvalidSelection, name)
	}
	return nil
}
