// Package convolution implements the 3x3 neighborhood filters: smooth,
// median, Sobel edge magnitude, high-pass sharpen and Gaussian blur.
//
// All filters share one sampling model and the same output discipline:
// results are computed into a scratch buffer and only copied over the
// source once the pass is complete, so no pixel ever reads an already
// mutated neighbour. Alpha is copied through unchanged by every filter.
package convolution

import (
	"github.com/rasterkit/raster-go/options"
	"github.com/rasterkit/raster-go/raster"
	"github.com/rasterkit/raster-go/util"
)

// Engine runs 3x3 neighborhood filters over a single PixelBuffer.
type Engine struct {
	buf  *raster.PixelBuffer
	opts *options.FilterOptions
}

// NewEngine creates an engine over buf. opts may be nil, which selects
// EdgeExtend sampling.
func NewEngine(buf *raster.PixelBuffer, opts *options.FilterOptions) *Engine {
	return &Engine{
		buf:  buf,
		opts: options.NewFilterOptions(opts),
	}
}

// sampleIndex resolves the linear byte index of the neighborhood sample at
// (x+dx, y+dy). Bounds are checked per axis, never on the linear index
// alone: a linear-index check would let the rightmost pixel of a row read
// the leftmost pixel of the next row. Under EdgeZero an out-of-bounds
// sample returns ok == false; under EdgeExtend the coordinate is clamped
// to the nearest edge pixel and ok is always true.
func (e *Engine) sampleIndex(x int, y int, dx int, dy int) (int, bool) {
	sx := x + dx
	sy := y + dy

	width := int(e.buf.Width)
	height := int(e.buf.Height)

	if e.opts.Edge == options.EdgeZero {
		if sx < 0 || sx >= width || sy < 0 || sy >= height {
			return 0, false
		}
	} else {
		sx = util.Clamp(sx, 0, width-1)
		sy = util.Clamp(sy, 0, height-1)
	}

	return (sy*width + sx) * raster.BytesPerPixel, true
}

// commit copies scratch over the source buffer in one pass and returns the
// scratch storage to the pool.
func (e *Engine) commit(scratch []uint8) {
	_ = e.buf.Replace(scratch)
	util.ReturnScratchBuffer(scratch)
}
