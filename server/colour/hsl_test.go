package colour

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRGBToHSLKnownColours(t *testing.T) {
	tests := []struct {
		name    string
		c       color.RGBA
		h, s, l float64
	}{
		{"red", color.RGBA{R: 255, A: 255}, 0, 100, 50},
		{"green", color.RGBA{G: 255, A: 255}, 120, 100, 50},
		{"blue", color.RGBA{B: 255, A: 255}, 240, 100, 50},
		{"black", color.RGBA{A: 255}, 0, 0, 0},
		{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0, 0, 100},
		{"magenta", color.RGBA{R: 255, B: 255, A: 255}, 300, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.c)
			if !mgl64.FloatEqualThreshold(h, tt.h, 1e-9) || !mgl64.FloatEqualThreshold(s, tt.s, 1e-9) || !mgl64.FloatEqualThreshold(l, tt.l, 1e-9) {
				t.Fatalf("RGBToHSL(%v) = (%v, %v, %v), want (%v, %v, %v)", tt.c, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestRGBToHSLGreyscaleHasNoHue(t *testing.T) {
	for v := 0; v <= 255; v += 15 {
		h, s, _ := RGBToHSL(color.RGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: 255})
		if h != 0 || s != 0 {
			t.Fatalf("grey %d: expected hue and saturation 0, got %v, %v", v, h, s)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				c := color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
				h, s, l := RGBToHSL(c)
				if h < 0 || h >= 360 {
					t.Fatalf("hue of %v out of range: %v", c, h)
				}
				got := HSLToRGB(h, s, l)
				if diff(got.R, c.R) > 1 || diff(got.G, c.G) > 1 || diff(got.B, c.B) > 1 {
					t.Fatalf("round trip of %v produced %v", c, got)
				}
			}
		}
	}
}

func TestGradientClampsLightness(t *testing.T) {
	darker, lighter := Gradient(FromRGB(0x3f76e4), 1000)
	if _, _, l := RGBToHSL(darker); l != 0 {
		t.Fatalf("expected darker shade to have lightness 0, got %v", l)
	}
	if _, _, l := RGBToHSL(lighter); l != 100 {
		t.Fatalf("expected lighter shade to have lightness 100, got %v", l)
	}
}

func TestGradientShadesAroundBase(t *testing.T) {
	base := FromRGB(0x808080)
	_, _, l := RGBToHSL(base)
	darker, lighter := Gradient(base, 10)
	_, _, dl := RGBToHSL(darker)
	_, _, ll := RGBToHSL(lighter)
	if !(dl < l && l < ll) {
		t.Fatalf("expected %v < %v < %v", dl, l, ll)
	}
	if !mgl64.FloatEqualThreshold(l-dl, 10, 0.5) || !mgl64.FloatEqualThreshold(ll-l, 10, 0.5) {
		t.Fatalf("expected shades 10%% apart from base, got %v and %v", l-dl, ll-l)
	}
}

func TestOpaque(t *testing.T) {
	if got := Opaque(0x123456); got != 0xff123456 {
		t.Fatalf("Opaque(0x123456) = %#x", got)
	}
	if got := Opaque(0x00abcdef); got != 0xffabcdef {
		t.Fatalf("Opaque(0x00abcdef) = %#x", got)
	}
	if got := ToRGB(FromRGB(0xfafafa)); got != 0xfafafa {
		t.Fatalf("ToRGB(FromRGB(0xfafafa)) = %#x", got)
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
