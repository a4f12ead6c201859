// Package hanover implements the wire format spoken by Hanover flipdot
// signs: 1-bit frames, the controller's column-major packed byte layout,
// and the hex-ASCII packet framing with its additive checksum.
package hanover

import (
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Frame is a fixed-size 1-bit bitmap, one cell per flip dot. The zero
// value of a cell is unlit. Dimensions never change after construction.
//
// Frame implements image.Image over image1bit.BitModel so it interoperates
// with rasterizers and the image/draw machinery.
type Frame struct {
	h, w int
	pix  []uint8 // row-major, one byte per cell, 0 or 1
}

// NewFrame returns an all-unlit frame of h rows by w columns.
func NewFrame(h, w int) *Frame {
	if h < 1 || w < 1 {
		panic("hanover: frame dimensions must be positive")
	}
	return &Frame{h: h, w: w, pix: make([]uint8, h*w)}
}

// Height returns the number of rows.
func (f *Frame) Height() int { return f.h }

// Width returns the number of columns.
func (f *Frame) Width() int { return f.w }

// Set lights or clears the dot at column x, row y. Out-of-range
// coordinates are ignored.
func (f *Frame) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	if on {
		f.pix[y*f.w+x] = 1
	} else {
		f.pix[y*f.w+x] = 0
	}
}

// Lit reports whether the dot at column x, row y is lit. Out-of-range
// coordinates read as unlit.
func (f *Frame) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	return f.pix[y*f.w+x] != 0
}

// Clone returns an independent copy of f.
func (f *Frame) Clone() *Frame {
	c := &Frame{h: f.h, w: f.w, pix: make([]uint8, len(f.pix))}
	copy(c.pix, f.pix)
	return c
}

// Equal reports whether o has the same dimensions and dot pattern.
func (f *Frame) Equal(o *Frame) bool {
	if o == nil || f.h != o.h || f.w != o.w {
		return false
	}
	for i := range f.pix {
		if f.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Window returns the w-column slice of f starting at column x0. Columns
// outside f read as unlit, so windows may begin before the left edge or
// run past the right one.
func (f *Frame) Window(x0, w int) *Frame {
	out := NewFrame(f.h, w)
	for y := 0; y < f.h; y++ {
		for x := 0; x < w; x++ {
			if f.Lit(x0+x, y) {
				out.Set(x, y, true)
			}
		}
	}
	return out
}

// PadRight returns f widened to w columns with unlit padding on the
// right. It panics if f is wider than w.
func (f *Frame) PadRight(w int) *Frame {
	if f.w > w {
		panic("hanover: frame wider than pad target")
	}
	out := NewFrame(f.h, w)
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.Lit(x, y) {
				out.Set(x, y, true)
			}
		}
	}
	return out
}

// ColorModel implements image.Image.
func (f *Frame) ColorModel() color.Model { return image1bit.BitModel }

// Bounds implements image.Image. Min is guaranteed to be {0, 0}.
func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color { return image1bit.Bit(f.Lit(x, y)) }

// FromImage converts src to a Frame of the same size through the 1-bit
// color model.
func FromImage(src image.Image) *Frame {
	b := src.Bounds()
	f := NewFrame(b.Dy(), b.Dx())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			bit := image1bit.BitModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(image1bit.Bit)
			if bit == image1bit.On {
				f.Set(x, y, true)
			}
		}
	}
	return f
}
