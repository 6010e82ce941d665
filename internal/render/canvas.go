package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Baseline selects how a text anchor point maps to the glyph baseline.
type Baseline int

const (
	// BaselineMiddle centers the em box vertically on the anchor.
	BaselineMiddle Baseline = iota
	// BaselineTop puts the top of the em box on the anchor.
	BaselineTop
)

// Canvas is a raster surface with the few drawing operations a frame needs.
// Every operation composites in place onto the same backing image.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas allocates a w×h canvas filled with bg.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	return &Canvas{img: imaging.New(w, h, bg)}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Bounds returns the canvas bounds.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Fill covers the whole canvas with col.
func (c *Canvas) Fill(col color.Color) {
	c.FillRect(c.img.Bounds(), col)
}

// FillRect composites a solid rectangle over the canvas.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawImage stretches src to fill r and composites it over the canvas.
func (c *Canvas) DrawImage(src image.Image, r image.Rectangle) {
	if r.Empty() {
		return
	}
	scaled := imaging.Resize(src, r.Dx(), r.Dy(), imaging.Lanczos)
	draw.Draw(c.img, r, scaled, image.Point{}, draw.Over)
}

// DrawText draws text horizontally centered on anchor.
func (c *Canvas) DrawText(text string, face font.Face, col color.Color, anchor image.Point, baseline Baseline) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  textOrigin(face, text, anchor, baseline),
	}
	d.DrawString(text)
}

// DrawTextShadow draws a gaussian blurred copy of the text in shadow
// underneath it, then the text itself. blur follows the canvas shadowBlur
// convention: the gaussian sigma is blur/2.
func (c *Canvas) DrawTextShadow(text string, face font.Face, col, shadow color.NRGBA, blur float64, anchor image.Point, baseline Baseline) {
	if text == "" {
		return
	}
	if shadow.A > 0 {
		c.drawShadow(text, face, shadow, blur, anchor, baseline)
	}
	c.DrawText(text, face, col, anchor, baseline)
}

func (c *Canvas) drawShadow(text string, face font.Face, shadow color.NRGBA, blur float64, anchor image.Point, baseline Baseline) {
	dot := textOrigin(face, text, anchor, baseline)
	bounds, _ := font.BoundString(face, text)
	bounds = bounds.Add(dot)

	pad := int(blur*2) + 1
	rect := image.Rect(
		bounds.Min.X.Floor()-pad,
		bounds.Min.Y.Floor()-pad,
		bounds.Max.X.Ceil()+pad,
		bounds.Max.Y.Ceil()+pad,
	)
	if rect.Empty() {
		return
	}

	layer := imaging.New(rect.Dx(), rect.Dy(), color.NRGBA{})
	d := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(shadow),
		Face: face,
		Dot:  dot.Sub(fixed.P(rect.Min.X, rect.Min.Y)),
	}
	d.DrawString(text)

	if blur > 0 {
		layer = imaging.Blur(layer, blur/2)
	}
	draw.Draw(c.img, rect, layer, image.Point{}, draw.Over)
}

// textOrigin returns the drawer dot for text centered on anchor.
func textOrigin(face font.Face, text string, anchor image.Point, baseline Baseline) fixed.Point26_6 {
	width := font.MeasureString(face, text)
	m := face.Metrics()

	x := fixed.I(anchor.X) - width/2
	var y fixed.Int26_6
	switch baseline {
	case BaselineTop:
		y = fixed.I(anchor.Y) + m.Ascent
	default:
		y = fixed.I(anchor.Y) + (m.Ascent-m.Descent)/2
	}
	return fixed.Point26_6{X: x, Y: y}
}
