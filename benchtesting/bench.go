package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/rasterkit/raster-go/colorreduce"
	"github.com/rasterkit/raster-go/convolution"
	"github.com/rasterkit/raster-go/pointops"
	"github.com/rasterkit/raster-go/raster"
	log "github.com/sirupsen/logrus"
)

const (
	benchWidth  = 1024
	benchHeight = 1024
	benchRounds = 20
)

// Standalone profiling harness: runs every filter over a synthetic raster
// under the CPU profiler. Not part of the library build.
func main() {

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	buf, err := raster.NewPixelBuffer(benchWidth, benchHeight)
	if err != nil {
		log.Fatalf("error creating bench buffer: %v", err)
	}
	for y := uint32(0); y < benchHeight; y++ {
		for x := uint32(0); x < benchWidth; x++ {
			buf.Set(x, y, raster.Red, uint8(x))
			buf.Set(x, y, raster.Green, uint8(y))
			buf.Set(x, y, raster.Blue, uint8(x^y))
			buf.Set(x, y, raster.Alpha, 255)
		}
	}

	runs := []struct {
		name string
		fn   func(b *raster.PixelBuffer)
	}{
		{"pointop-add", func(b *raster.PixelBuffer) { pointops.NewEngine(b).Apply(raster.Red, 10, pointops.OpAdd) }},
		{"brightness", func(b *raster.PixelBuffer) { pointops.NewEngine(b).ChangeBrightness(0.2) }},
		{"grayscale-avg", func(b *raster.PixelBuffer) { colorreduce.NewReducer(b).GrayscaleAverage() }},
		{"grayscale-luma", func(b *raster.PixelBuffer) { colorreduce.NewReducer(b).GrayscaleLuma() }},
		{"smooth", func(b *raster.PixelBuffer) { convolution.NewEngine(b, nil).Smooth() }},
		{"median", func(b *raster.PixelBuffer) { convolution.NewEngine(b, nil).Median() }},
		{"sobel", func(b *raster.PixelBuffer) { convolution.NewEngine(b, nil).Sobel() }},
		{"sharpen", func(b *raster.PixelBuffer) { convolution.NewEngine(b, nil).Sharpen() }},
		{"gaussian", func(b *raster.PixelBuffer) { convolution.NewEngine(b, nil).GaussianBlur() }},
	}

	for _, run := range runs {
		start := time.Now()
		for count := 0; count < benchRounds; count++ {
			work := buf.Clone()
			run.fn(work)
		}
		fmt.Printf("%s took %d ms total over %d rounds\n", run.name, time.Since(start).Milliseconds(), benchRounds)
	}
}
