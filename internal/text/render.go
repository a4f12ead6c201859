// Package text rasterizes strings into sign frames.
package text

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/samisabik/flipdot/internal/hanover"
)

// Renderer turns a string into a 1-bit bitmap of panel height and
// arbitrary width; the caller decides whether the result fits or scrolls.
type Renderer interface {
	Render(text string) (*hanover.Frame, error)
}

// FaceRenderer rasterizes through a font.Face, then keeps only the rows
// that carry ink so short glyph sets land flush with the top of the
// panel.
type FaceRenderer struct {
	face   font.Face
	height int
}

// NewTTF loads a TrueType font at the given point size for a panel of
// panelH rows.
func NewTTF(path string, points float64, panelH int) (*FaceRenderer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: points})
	return &FaceRenderer{face: face, height: panelH}, nil
}

// NewBuiltin uses the fixed 7x13 bitmap face; no font file needed. Tall
// for a 7-row panel, but the ink rows of upper-case text fit.
func NewBuiltin(panelH int) *FaceRenderer {
	return &FaceRenderer{face: basicfont.Face7x13, height: panelH}
}

// Render draws s, thresholds it to 1-bit and drops blank rows. The
// result is exactly panel height: ink rows first, unlit padding below,
// rows past the panel discarded.
func (r *FaceRenderer) Render(s string) (*hanover.Frame, error) {
	w := font.MeasureString(r.face, s).Ceil()
	if w < 1 {
		w = 1
	}
	m := r.face.Metrics()
	ascent := m.Ascent.Ceil()
	canvasH := ascent + m.Descent.Ceil()
	if canvasH < r.height {
		canvasH = r.height
	}

	dc := gg.NewContext(w, canvasH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(r.face)
	dc.DrawString(s, 0, float64(ascent))
	img := dc.Image()

	// Collect the rows that carry ink, in order.
	var rows [][]bool
	for y := 0; y < canvasH; y++ {
		row := make([]bool, w)
		any := false
		for x := 0; x < w; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y < 128 {
				row[x] = true
				any = true
			}
		}
		if any {
			rows = append(rows, row)
		}
	}

	out := hanover.NewFrame(r.height, w)
	for y := 0; y < len(rows) && y < r.height; y++ {
		for x, on := range rows[y] {
			out.Set(x, y, on)
		}
	}
	return out, nil
}
