package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

// assertNear compares colors channel by channel with a small tolerance for
// resampling rounding.
func assertNear(t *testing.T, want color.NRGBA, got color.Color, msgAndArgs ...any) {
	t.Helper()
	g := color.NRGBAModel.Convert(got).(color.NRGBA)
	assert.InDelta(t, want.R, g.R, 2, msgAndArgs...)
	assert.InDelta(t, want.G, g.G, 2, msgAndArgs...)
	assert.InDelta(t, want.B, g.B, 2, msgAndArgs...)
	assert.InDelta(t, want.A, g.A, 2, msgAndArgs...)
}

func countDiffering(img image.Image, r image.Rectangle, bg color.NRGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if color.NRGBAModel.Convert(img.At(x, y)) != bg {
				n++
			}
		}
	}
	return n
}

func TestCanvas_FillRect(t *testing.T) {
	c := NewCanvas(20, 20, white)
	c.FillRect(image.Rect(5, 5, 10, 10), red)
	c.FillRect(image.Rect(15, 15, 40, 40), black)

	assertNear(t, white, c.Image().At(0, 0))
	assertNear(t, red, c.Image().At(7, 7))
	assertNear(t, white, c.Image().At(10, 10))
	assertNear(t, black, c.Image().At(19, 19))
	assert.Equal(t, image.Rect(0, 0, 20, 20), c.Bounds())
}

func TestCanvas_FillRectBlendsAlpha(t *testing.T) {
	c := NewCanvas(4, 4, white)
	c.Fill(color.NRGBA{A: 128})
	assertNear(t, color.NRGBA{R: 127, G: 127, B: 127, A: 255}, c.Image().At(1, 1))
}

func TestCanvas_DrawImageStretches(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, red)
		}
	}

	c := NewCanvas(100, 100, white)
	c.DrawImage(src, image.Rect(10, 20, 60, 90))

	assertNear(t, white, c.Image().At(5, 5))
	assertNear(t, red, c.Image().At(35, 55))
	assertNear(t, red, c.Image().At(11, 21))
	assertNear(t, white, c.Image().At(61, 91))
}

func TestCanvas_CompositesInPlace(t *testing.T) {
	c := NewCanvas(40, 40, white)
	backing := c.Image()

	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, red)
		}
	}

	c.FillRect(image.Rect(30, 30, 40, 40), black)
	c.DrawImage(src, image.Rect(-10, -10, 10, 10))
	c.DrawTextShadow("Hi", SansFace(16), white, color.NRGBA{A: 200}, 4, image.Pt(20, 20), BaselineMiddle)

	assert.Same(t, backing, c.Image())
	assertNear(t, red, backing.At(5, 5), "clipped image lands on the visible part")
	assertNear(t, black, backing.At(35, 35))
	assertNear(t, white, backing.At(38, 2))
}

func TestCanvas_DrawTextCentered(t *testing.T) {
	face := SansFace(32)
	defer face.Close()

	c := NewCanvas(400, 100, white)
	c.DrawText("Image Missing", face, black, image.Pt(200, 50), BaselineMiddle)

	left := countDiffering(c.Image(), image.Rect(0, 0, 200, 100), white)
	right := countDiffering(c.Image(), image.Rect(200, 0, 400, 100), white)
	assert.Positive(t, left)
	assert.Positive(t, right)
	assert.InDelta(t, 1.0, float64(left)/float64(right), 0.5, "text should straddle the anchor")

	assert.Zero(t, countDiffering(c.Image(), image.Rect(0, 0, 400, 20), white), "nothing far above the band")
	assert.Zero(t, countDiffering(c.Image(), image.Rect(0, 0, 20, 100), white), "nothing at the left edge")
}

func TestCanvas_DrawTextTopBaseline(t *testing.T) {
	face := SansFace(32)
	defer face.Close()

	c := NewCanvas(200, 100, white)
	c.DrawText("Chips", face, black, image.Pt(100, 50), BaselineTop)

	assert.Zero(t, countDiffering(c.Image(), image.Rect(0, 0, 200, 50), white), "text hangs below a top anchor")
	assert.Positive(t, countDiffering(c.Image(), image.Rect(0, 50, 200, 100), white))
}

func TestCanvas_DrawTextShadow(t *testing.T) {
	face := SansFace(32)
	defer face.Close()

	plain := NewCanvas(300, 100, white)
	plain.DrawText("Snacks", face, white, image.Pt(150, 50), BaselineMiddle)
	assert.Zero(t, countDiffering(plain.Image(), plain.Bounds(), white), "white on white leaves no trace")

	shadowed := NewCanvas(300, 100, white)
	shadowed.DrawTextShadow("Snacks", face, white, color.NRGBA{A: 128}, TitleShadowBlur, image.Pt(150, 50), BaselineMiddle)
	assert.Positive(t, countDiffering(shadowed.Image(), shadowed.Bounds(), white), "shadow darkens around the glyphs")

	transparent := NewCanvas(300, 100, white)
	transparent.DrawTextShadow("Snacks", face, white, color.NRGBA{}, TitleShadowBlur, image.Pt(150, 50), BaselineMiddle)
	assert.Zero(t, countDiffering(transparent.Image(), transparent.Bounds(), white))
}
