package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{in: "#1e293b", want: color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}},
		{in: "#FFF", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#f008", want: color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0x88}},
		{in: "#11223344", want: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{in: "rgba(0, 0, 0, 0.5)", want: color.NRGBA{A: 128}},
		{in: "rgba(0,0,0,0.2)", want: color.NRGBA{A: 51}},
		{in: "rgb(255, 128, 0)", want: color.NRGBA{R: 255, G: 128, B: 0, A: 255}},
		{in: "rgb(100%, 0%, 50%)", want: color.NRGBA{R: 255, G: 0, B: 128, A: 255}},
		{in: "rgb(10 20 30 / 50%)", want: color.NRGBA{R: 10, G: 20, B: 30, A: 128}},
		{in: "rgb(300, -5, 0)", want: color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{in: "  Tomato ", want: color.NRGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}},
		{in: "transparent", want: color.NRGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "rgb(1,2)", "hsl(0, 0%, 0%)", "rgba(a,b,c,d)", "not-a-color", "rgb(1,2,3"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestMustColor(t *testing.T) {
	def := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	assert.Equal(t, def, MustColor("nope", def))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, MustColor("#ff0000", def))
}
