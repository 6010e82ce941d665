// Package layout computes the frame grid: canvas size and the position of
// every item cell, title band and caption. It is a pure function of the
// number of active items.
package layout

import (
	"errors"
	"image"
)

// Fixed frame geometry in pixels.
const (
	Padding       = 60
	TitleHeight   = 120
	Gap           = 40
	CaptionHeight = 60
	ItemWidth     = 400
	ItemHeight    = 400
	CaptionOffset = 15

	MaxColumns = 3
)

// ErrNoItems is returned for a non-positive item count.
var ErrNoItems = errors.New("layout: at least one item is required")

// Grid is the computed layout for n items.
type Grid struct {
	Items   int
	Columns int
	Rows    int
	Width   int
	Height  int
}

// Compute returns the grid for n items.
func Compute(n int) (Grid, error) {
	if n < 1 {
		return Grid{}, ErrNoItems
	}

	cols := min(MaxColumns, n)
	rows := (n + cols - 1) / cols

	return Grid{
		Items:   n,
		Columns: cols,
		Rows:    rows,
		Width:   2*Padding + cols*ItemWidth + (cols-1)*Gap,
		Height:  2*Padding + TitleHeight + rows*(ItemHeight+CaptionHeight) + (rows-1)*Gap,
	}, nil
}

// Size returns the canvas bounds.
func (g Grid) Size() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// Cell returns the top-left corner of item i (0-based, row-major).
func (g Grid) Cell(i int) image.Point {
	row := i / g.Columns
	col := i % g.Columns
	return image.Pt(
		Padding+col*(ItemWidth+Gap),
		Padding+TitleHeight+row*(ItemHeight+CaptionHeight+Gap),
	)
}

// CellRect returns the full image rectangle of item i.
func (g Grid) CellRect(i int) image.Rectangle {
	p := g.Cell(i)
	return image.Rect(p.X, p.Y, p.X+ItemWidth, p.Y+ItemHeight)
}

// TitleCenter returns the center of the title band.
func (g Grid) TitleCenter() image.Point {
	return image.Pt(g.Width/2, Padding+TitleHeight/2)
}

// CaptionAnchor returns the top-center anchor of the caption below a cell
// whose top-left corner is cell.
func CaptionAnchor(cell image.Point) image.Point {
	return image.Pt(cell.X+ItemWidth/2, cell.Y+ItemHeight+CaptionOffset)
}
