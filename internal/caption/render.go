package caption

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// HorizontalMargin is the total horizontal padding, split evenly per side.
	HorizontalMargin = 40
	BottomMargin     = 30
	LineSpacing      = 5
)

// Renderer draws caption text onto transparent frame-sized images.
// A Renderer is not safe for concurrent use because font faces are not.
type Renderer struct {
	face font.Face
	fill color.Color
}

func NewRenderer(face font.Face, fill color.Color) *Renderer {
	if fill == nil {
		fill = color.White
	}
	return &Renderer{face: face, fill: fill}
}

type lineMetrics struct {
	text    string
	bounds  fixed.Rectangle26_6
	advance fixed.Int26_6
	height  int
}

// Render returns a width x height transparent image with text wrapped to the
// frame, each line centered, and the block anchored above the bottom margin.
func (r *Renderer) Render(text string, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	lines := Wrap(r.face, text, width-HorizontalMargin)
	if len(lines) == 0 {
		return img
	}

	metrics := make([]lineMetrics, 0, len(lines))
	blockHeight := 0
	for _, line := range lines {
		bounds, advance := font.BoundString(r.face, line)
		h := (bounds.Max.Y - bounds.Min.Y).Ceil()
		metrics = append(metrics, lineMetrics{text: line, bounds: bounds, advance: advance, height: h})
		blockHeight += h
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.fill),
		Face: r.face,
	}

	y := height - blockHeight - BottomMargin
	for _, m := range metrics {
		x := (width - m.advance.Ceil()) / 2
		// The dot sits on the baseline; shift it so the top of the ink lands on y.
		d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) - m.bounds.Min.Y}
		d.DrawString(m.text)
		y += m.height + LineSpacing
	}

	return img
}
