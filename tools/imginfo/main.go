package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rasterkit/raster-go/codec"
	"github.com/rasterkit/raster-go/raster"
	log "github.com/sirupsen/logrus"
)

// imginfo prints basic properties of any image the codec can decode.
func main() {
	infile := flag.String("i", "", "input image file")
	flag.Parse()

	if *infile == "" {
		fmt.Printf("input file must be specified\n")
		os.Exit(1)
	}

	data, err := os.ReadFile(*infile)
	if err != nil {
		log.Errorf("Error opening file: %v\n", err)
		return
	}

	buf, err := codec.Decode(data)
	if err != nil {
		log.Errorf("Error decoding image: %v\n", err)
		return
	}

	fmt.Printf("dimensions %dx%d\n", buf.Width, buf.Height)
	fmt.Printf("pixels %d (%d bytes)\n", buf.NumPixels(), len(buf.Pixels))

	opaque := true
	for i := raster.Alpha.Offset(); i < len(buf.Pixels); i += raster.BytesPerPixel {
		if buf.Pixels[i] != 255 {
			opaque = false
			break
		}
	}
	fmt.Printf("fully opaque %v\n", opaque)
}
