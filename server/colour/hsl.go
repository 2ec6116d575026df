// Package colour implements conversions between RGB and HSL colour spaces and derives lighter and darker shades of
// material colours.
package colour

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FromRGB converts a 0xRRGGBB value to an opaque color.RGBA.
func FromRGB(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// ToRGB packs the colour channels of c into a 0xRRGGBB value. The alpha channel is dropped.
func ToRGB(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Opaque returns rgb as a 0xAARRGGBB value with the alpha channel forced to 0xFF. Any alpha bits already present in
// rgb are overwritten.
func Opaque(rgb uint32) uint32 {
	return 0xff000000 | rgb&0xffffff
}

// RGBToHSL converts c to hue, saturation and lightness. The hue is returned in degrees in the range [0, 360), the
// saturation and lightness as percentages in the range [0, 100]. Greyscale colours have a hue and saturation of 0.
func RGBToHSL(c color.RGBA) (h, s, l float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255

	lo, hi := min(r, g, b), max(r, g, b)
	l = (hi + lo) / 2
	if hi == lo {
		return 0, 0, l * 100
	}

	d := hi - lo
	switch hi {
	case r:
		h = math.Mod(60*(g-b)/d+360, 360)
	case g:
		h = 60*(b-r)/d + 120
	default:
		h = 60*(r-g)/d + 240
	}
	if l <= 0.5 {
		s = d / (hi + lo)
	} else {
		s = d / (2 - hi - lo)
	}
	return h, s * 100, l * 100
}

// HSLToRGB converts a hue in degrees and a saturation and lightness in percent back to an opaque color.RGBA.
func HSLToRGB(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360) / 360
	if h < 0 {
		h++
	}
	s, l = s/100, l/100

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - s*l
	}
	p := 2*l - q

	return color.RGBA{
		R: channel(hueToChannel(p, q, h+1.0/3.0)),
		G: channel(hueToChannel(p, q, h)),
		B: channel(hueToChannel(p, q, h-1.0/3.0)),
		A: 0xff,
	}
}

// Gradient returns a darker and a lighter shade of c, obtained by moving the lightness of c down and up by delta
// percent. The lightness is clamped to [0, 100], so a large delta yields black and white respectively.
func Gradient(c color.RGBA, delta float64) (darker, lighter color.RGBA) {
	h, s, l := RGBToHSL(c)
	return HSLToRGB(h, s, mgl64.Clamp(l-delta, 0, 100)), HSLToRGB(h, s, mgl64.Clamp(l+delta, 0, 100))
}

// GradientRGB is Gradient for 0xRRGGBB values.
func GradientRGB(rgb uint32, delta float64) (darker, lighter uint32) {
	d, li := Gradient(FromRGB(rgb), delta)
	return ToRGB(d), ToRGB(li)
}

func hueToChannel(p, q, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case 6*h < 1:
		return p + (q-p)*6*h
	case 2*h < 1:
		return q
	case 3*h < 2:
		return p + (q-p)*6*(2.0/3.0-h)
	}
	return p
}

// channel denormalises v to an 8-bit channel, clamping it to [0, 1] first.
func channel(v float64) uint8 {
	return uint8(math.Round(mgl64.Clamp(v, 0, 1) * 255))
}
