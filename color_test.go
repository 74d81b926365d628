package watchface

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 65535},
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"opaque blue", Blue, 0, 0, 65535, 65535},
		{"transparent", Transparent, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#0000FF", Blue, false},
		{"00f", Blue, false},
		{"#ff000080", RGBA{1, 0, 0, 128.0 / 255}, false},
		{"fff8", RGBA{1, 1, 1, 136.0 / 255}, false},
		{" #FFFFFF ", White, false},
		{"", RGBA{}, true},
		{"#12345", RGBA{}, true},
		{"#zzzzzz", RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !near(got, tt.want) {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexFallsBackToBlack(t *testing.T) {
	if got := Hex("not a color"); got != Black {
		t.Errorf("Hex(bad) = %v, want %v", got, Black)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []RGBA{Black, White, Red, Green, Blue, Blue.WithAlpha8(100)} {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%s): %v", c.Hex(), err)
		}
		if !near(got, c) {
			t.Errorf("ParseHex(%s) = %v, want %v", c.Hex(), got, c)
		}
	}
}

func TestWithAlpha8(t *testing.T) {
	c := Blue.WithAlpha8(100)
	if math.Abs(c.A-100.0/255) > 1e-9 {
		t.Errorf("WithAlpha8(100).A = %v, want %v", c.A, 100.0/255)
	}
	if c.B != 1 {
		t.Errorf("WithAlpha8 changed B to %v", c.B)
	}
	if got := c.Color().A; got != 100 {
		t.Errorf("Color().A = %d, want 100", got)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if !near(got, Red) {
		t.Errorf("FromColor(red) = %v, want %v", got, Red)
	}
	if !Transparent.IsTransparent() || Black.IsTransparent() {
		t.Error("IsTransparent mismatch")
	}
}

func near(a, b RGBA) bool {
	const eps = 1.0 / 255
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
