package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	raster_go "github.com/rasterkit/raster-go"
	"github.com/rasterkit/raster-go/codec"
	"github.com/rasterkit/raster-go/options"
	log "github.com/sirupsen/logrus"
)

func main() {
	infile := flag.String("i", "", "input image file (png, jpeg, gif, bmp, tiff, webp)")
	outfile := flag.String("o", "", "output png file")
	filters := flag.String("f", "", "comma separated filters to apply in order: "+strings.Join(raster_go.FilterNames(), ", "))
	channel := flag.String("channel", "", "channel for point operation (red, green, blue, alpha)")
	op := flag.String("op", "", "point operation (add, subtract, multiply, divide)")
	value := flag.Float64("value", 0, "operand for point operation")
	brightness := flag.Float64("brightness", 0, "brightness adjustment in [-1, 1]")
	edgeZero := flag.Bool("edgezero", false, "treat out of bounds neighborhood samples as zero instead of edge extension")
	flag.Parse()

	if *infile == "" || *outfile == "" {
		fmt.Printf("both input and output files must be specified\n")
		os.Exit(1)
	}

	data, err := os.ReadFile(*infile)
	if err != nil {
		log.Errorf("Error opening file: %v\n", err)
		return
	}

	opts := &options.FilterOptions{}
	if *edgeZero {
		opts.Edge = options.EdgeZero
	}

	editor := raster_go.NewEditor(opts)
	if err := editor.Load(data); err != nil {
		log.Errorf("Error decoding image: %v\n", err)
		return
	}
	buf := editor.Buffer()
	fmt.Printf("decoded %dx%d image\n", buf.Width, buf.Height)

	start := time.Now()

	if *channel != "" || *op != "" {
		if err := editor.ApplyPointOperation(*channel, *op, float32(*value)); err != nil {
			log.Errorf("Error applying point operation: %v\n", err)
			return
		}
	}

	if *brightness != 0 {
		if err := editor.ChangeBrightness(float32(*brightness)); err != nil {
			log.Errorf("Error changing brightness: %v\n", err)
			return
		}
	}

	if *filters != "" {
		for _, name := range strings.Split(*filters, ",") {
			name = strings.TrimSpace(name)
			if err := editor.ApplyFilter(name); err != nil {
				log.Errorf("Error applying filter %s: %v\n", name, err)
				return
			}
		}
	}

	fmt.Printf("filtering took %d ms\n", time.Since(start).Milliseconds())

	f, err := os.Create(*outfile)
	if err != nil {
		log.Fatalf("Error creating output file: %v", err)
	}
	defer f.Close()

	if err := codec.EncodePNG(editor.Buffer(), f); err != nil {
		log.Fatalf("Error encoding png: %v", err)
	}
}
