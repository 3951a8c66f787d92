package core

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#ff0000", ColorRed, false},
		{"#00cc00ff", ColorGreen, false},
		{"00cc0099", Color{G: 0xcc, A: 0x99}, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHexColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("ParseHexColor(%q) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	var c color.Color = ColorRed
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x, expected opaque red", r, g, b, a)
	}

	// Must agree with the standard library's non-premultiplied colour.
	half := Color{R: 0xff, A: 0x80}
	want := color.NRGBA{R: 0xff, A: 0x80}
	r1, g1, b1, a1 := half.RGBA()
	r2, g2, b2, a2 := want.RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
		t.Errorf("RGBA() = %x %x %x %x, expected %x %x %x %x", r1, g1, b1, a1, r2, g2, b2, a2)
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorGreen.Hex(); got != "#00cc00" {
		t.Errorf("Hex() = %q, expected #00cc00", got)
	}
}
