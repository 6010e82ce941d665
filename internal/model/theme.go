package model

import (
	"context"
	"fmt"
	"strings"
)

// ThemeStore persists custom themes. Built-in themes are never stored.
type ThemeStore interface {
	List(ctx context.Context) ([]Theme, error)
	Create(ctx context.Context, theme Theme) error
	Update(ctx context.Context, theme Theme) error
	Delete(ctx context.Context, id string) error
}

// Theme is a named bundle of colors, fonts and shadow.
type Theme struct {
	ID       string      `json:"id" yaml:"id"`
	Name     string      `json:"name" yaml:"name"`
	IsCustom bool        `json:"isCustom" yaml:"custom"`
	Styles   ThemeStyles `json:"styles" yaml:"styles"`
}

// ThemeStyles holds the concrete style values of a theme.
type ThemeStyles struct {
	BackgroundColor string    `json:"backgroundColor" yaml:"background_color"`
	TitleFont       FontStyle `json:"titleFont" yaml:"title_font"`
	TitleColor      string    `json:"titleColor" yaml:"title_color"`
	CaptionFont     FontStyle `json:"captionFont" yaml:"caption_font"`
	CaptionColor    string    `json:"captionColor" yaml:"caption_color"`
	ShadowColor     string    `json:"shadowColor" yaml:"shadow_color"`
}

// FontWeight is normal or bold.
type FontWeight string

// FontSlant is normal or italic.
type FontSlant string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"

	SlantNormal FontSlant = "normal"
	SlantItalic FontSlant = "italic"
)

// FontStyle describes a font face request.
type FontStyle struct {
	Family string     `json:"family" yaml:"family"`
	Size   int        `json:"size" yaml:"size"`
	Weight FontWeight `json:"weight" yaml:"weight"`
	Style  FontSlant  `json:"style" yaml:"style"`
}

// Bold reports whether the bold weight is requested.
func (f FontStyle) Bold() bool { return f.Weight == WeightBold }

// Italic reports whether the italic style is requested.
func (f FontStyle) Italic() bool { return f.Style == SlantItalic }

// String returns the CSS-like display string, e.g. `italic bold 72px "Roboto"`.
func (f FontStyle) String() string {
	parts := make([]string, 0, 4)
	if f.Italic() {
		parts = append(parts, "italic")
	}
	if f.Bold() {
		parts = append(parts, "bold")
	}
	parts = append(parts, fmt.Sprintf("%dpx", f.Size), fmt.Sprintf("%q", f.Family))
	return strings.Join(parts, " ")
}
