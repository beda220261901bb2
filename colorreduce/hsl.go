package colorreduce

import (
	"github.com/rasterkit/raster-go/util"
)

// RGBToHSL converts an RGB8 triple to hue/saturation/lightness, each in
// [0, 1]. Hue is fractional rather than degrees.
func RGBToHSL(r uint8, g uint8, b uint8) (float32, float32, float32) {
	rf := float32(r) / 255.0
	gf := float32(g) / 255.0
	bf := float32(b) / 255.0

	max := util.Max(rf, gf, bf)
	min := util.Min(rf, gf, bf)

	var h, s float32
	l := (max + min) / 2.0

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2.0 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6.0
			}
		case gf:
			h = (bf-rf)/d + 2.0
		case bf:
			h = (rf-gf)/d + 4.0
		}

		h /= 6.0
	}

	return h, s, l
}

// HSLToRGB converts hue/saturation/lightness in [0, 1] back to RGB8.
func HSLToRGB(h float32, s float32, l float32) (uint8, uint8, uint8) {
	if s == 0 {
		v := util.ClampToByte(l*255.0 + 0.5)
		return v, v, v
	}

	var q float32
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	r := hueToChannel(p, q, h+1.0/3.0)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3.0)

	return util.ClampToByte(r*255.0 + 0.5),
		util.ClampToByte(g*255.0 + 0.5),
		util.ClampToByte(b*255.0 + 0.5)
}

func hueToChannel(p float32, q float32, t float32) float32 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6.0*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}
