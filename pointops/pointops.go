package pointops

import (
	"github.com/rasterkit/raster-go/raster"
	"github.com/rasterkit/raster-go/util"
)

// ArithmeticOp is the closed set of per-channel arithmetic operations.
// Keeping this a tagged value (rather than a function reference chosen at
// runtime) means an unrecognised selection can be rejected before it ever
// reaches the engine.
type ArithmeticOp int

const (
	OpAdd ArithmeticOp = iota
	OpSubtract
	OpMultiply
	OpDivide
)

func (op ArithmeticOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	}
	return "unknown"
}

// Engine applies per-pixel, per-channel arithmetic over a single
// PixelBuffer. It holds no state beyond the buffer it operates on.
type Engine struct {
	buf *raster.PixelBuffer
}

func NewEngine(buf *raster.PixelBuffer) *Engine {
	return &Engine{buf: buf}
}

// Apply runs op(value, operand) over the selected channel of every pixel.
// An operand of exactly 0.0 leaves the buffer untouched: that short-circuit
// is part of the contract, and also sidesteps division by zero for
// OpDivide. Results are clamped to [0,255] before the narrowing cast.
// Alpha is addressable like any other channel.
func (e *Engine) Apply(ch raster.Channel, operand float32, op ArithmeticOp) {
	if operand == 0.0 {
		return
	}

	offset := ch.Offset()
	pixels := e.buf.Pixels

	for index := 0; index < len(pixels); index += raster.BytesPerPixel {
		value := float32(pixels[index+offset])

		var result float32
		switch op {
		case OpAdd:
			result = value + operand
		case OpSubtract:
			result = value - operand
		case OpMultiply:
			result = value * operand
		case OpDivide:
			result = value / operand
		}

		pixels[index+offset] = util.ClampToByte(result)
	}
}

// ChangeBrightness remaps every colour byte linearly toward black (amount
// below zero) or white (amount above zero). amount is expected in [-1, 1]
// and is halved internally; the UI slider the original shipped with was
// calibrated to twice the range the maths needs. Alpha is left alone.
func (e *Engine) ChangeBrightness(amount float32) {
	amount = amount / 2.0

	pixels := e.buf.Pixels
	for i := 0; i < len(pixels); i++ {
		if i%raster.BytesPerPixel == raster.Alpha.Offset() {
			continue
		}

		norm := float32(pixels[i]) / 255.0
		var newVal float32
		if amount < 0 {
			newVal = norm * (1.0 + amount)
		} else {
			newVal = norm + amount*(1.0-norm)
		}

		pixels[i] = util.ClampToByte(newVal * 255.0)
	}
}
