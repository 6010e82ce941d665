package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/dtroode/gophframe/internal/layout"
	"github.com/dtroode/gophframe/internal/model"
)

const (
	TitleShadowBlur   = 10
	CaptionShadowBlur = 5
	PlaceholderSize   = 32

	LabelMissing = "Image Missing"
	LabelError   = "Image Error"
)

var (
	placeholderFill  = color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	placeholderLabel = color.NRGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
	defaultInk       = color.NRGBA{A: 0xff}
)

// FallbackKind classifies a recovered rendering problem.
type FallbackKind string

const (
	FallbackFont                  FallbackKind = "font"
	FallbackColor                 FallbackKind = "color"
	FallbackBackgroundMissing     FallbackKind = "background_missing"
	FallbackBackgroundUndecodable FallbackKind = "background_undecodable"
	FallbackItemMissing           FallbackKind = "item_missing"
	FallbackItemUndecodable       FallbackKind = "item_undecodable"
)

// Fallback records one problem that was absorbed while drawing.
type Fallback struct {
	Kind    FallbackKind `json:"kind"`
	Subject string       `json:"subject"`
	Err     error        `json:"-"`
}

// Item is one active product to draw, with its loaded bytes if any.
type Item struct {
	Name   string
	Data   []byte
	Loaded bool
}

// Scene is everything needed to draw a frame. Items are drawn in order.
type Scene struct {
	Grid       layout.Grid
	Title      string
	Styles     model.ThemeStyles
	Background *model.Background
	// BackgroundData holds the loaded bytes of an image background.
	BackgroundData   []byte
	BackgroundLoaded bool
	Items            []Item
}

// Renderer rasterizes scenes. It is safe for concurrent use.
type Renderer struct {
	fonts *FontBook
}

// NewRenderer creates a renderer drawing text with fonts.
func NewRenderer(fonts *FontBook) *Renderer {
	return &Renderer{fonts: fonts}
}

// Render draws the scene in a single sequential pass: background, title,
// then each item in order. Problems with individual resources are recovered
// in place and reported as fallbacks.
func (r *Renderer) Render(s Scene) (*image.NRGBA, []Fallback) {
	var fallbacks []Fallback
	note := func(kind FallbackKind, subject string, err error) {
		fallbacks = append(fallbacks, Fallback{Kind: kind, Subject: subject, Err: err})
	}

	parse := func(subject, value string, def color.NRGBA) color.NRGBA {
		c, err := ParseColor(value)
		if err != nil {
			note(FallbackColor, subject, err)
			return def
		}
		return c
	}

	themeBG := parse("background_color", s.Styles.BackgroundColor, defaultInk)
	titleInk := parse("title_color", s.Styles.TitleColor, defaultInk)
	captionInk := parse("caption_color", s.Styles.CaptionColor, defaultInk)
	shadow := parse("shadow_color", s.Styles.ShadowColor, color.NRGBA{})

	canvas := NewCanvas(s.Grid.Width, s.Grid.Height, color.NRGBA{})

	r.drawBackground(canvas, s, themeBG, note)

	titleFace, sub := r.fonts.Face(s.Styles.TitleFont)
	defer titleFace.Close()
	if sub {
		note(FallbackFont, s.Styles.TitleFont.String(), nil)
	}
	canvas.DrawTextShadow(s.Title, titleFace, titleInk, shadow, TitleShadowBlur, s.Grid.TitleCenter(), BaselineMiddle)

	captionFace, sub := r.fonts.Face(s.Styles.CaptionFont)
	defer captionFace.Close()
	if sub {
		note(FallbackFont, s.Styles.CaptionFont.String(), nil)
	}
	labelFace := SansFace(PlaceholderSize)
	defer labelFace.Close()

	for i, item := range s.Items {
		cell := s.Grid.CellRect(i)

		if !item.Loaded {
			note(FallbackItemMissing, item.Name, model.ErrBlobNotFound)
			drawPlaceholder(canvas, cell, labelFace, LabelMissing)
			continue
		}
		img, err := Decode(item.Data)
		if err != nil {
			note(FallbackItemUndecodable, item.Name, err)
			drawPlaceholder(canvas, cell, labelFace, LabelError)
			continue
		}

		canvas.DrawImage(img, cell)
		canvas.DrawTextShadow(item.Name, captionFace, captionInk, shadow, CaptionShadowBlur, layout.CaptionAnchor(cell.Min), BaselineTop)
	}

	return canvas.Image(), fallbacks
}

func (r *Renderer) drawBackground(canvas *Canvas, s Scene, themeBG color.NRGBA, note func(FallbackKind, string, error)) {
	bg := s.Background
	switch {
	case bg == nil:
		canvas.Fill(themeBG)
	case bg.Kind == model.BackgroundColor:
		c, err := ParseColor(bg.Color)
		if err != nil {
			note(FallbackColor, "background", err)
			c = themeBG
		}
		canvas.Fill(c)
	case bg.Kind == model.BackgroundImage:
		if !s.BackgroundLoaded {
			note(FallbackBackgroundMissing, bg.ImageID.String(), model.ErrBlobNotFound)
			canvas.Fill(themeBG)
			return
		}
		img, err := Decode(s.BackgroundData)
		if err != nil {
			note(FallbackBackgroundUndecodable, bg.ImageID.String(), err)
			canvas.Fill(themeBG)
			return
		}
		canvas.DrawImage(img, canvas.Bounds())
	default:
		canvas.Fill(themeBG)
	}
}

func drawPlaceholder(canvas *Canvas, cell image.Rectangle, face font.Face, label string) {
	canvas.FillRect(cell, placeholderFill)
	center := image.Pt(cell.Min.X+cell.Dx()/2, cell.Min.Y+cell.Dy()/2)
	canvas.DrawText(label, face, placeholderLabel, center, BaselineMiddle)
}
