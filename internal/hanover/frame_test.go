package hanover

import (
	"image"
	"image/color"
	"testing"
)

// parse builds a frame from one string per row, '#' for lit dots.
func parse(rows ...string) *Frame {
	f := NewFrame(len(rows), len(rows[0]))
	for y, row := range rows {
		for x, c := range row {
			f.Set(x, y, c == '#')
		}
	}
	return f
}

func TestFrameSetLit(t *testing.T) {
	f := NewFrame(7, 84)
	if f.Height() != 7 || f.Width() != 84 {
		t.Fatalf("got %dx%d", f.Height(), f.Width())
	}
	if f.Lit(3, 2) {
		t.Fatal("new frame must be unlit")
	}
	f.Set(3, 2, true)
	if !f.Lit(3, 2) {
		t.Fatal("dot not set")
	}
	f.Set(3, 2, false)
	if f.Lit(3, 2) {
		t.Fatal("dot not cleared")
	}
}

func TestFrameOutOfRange(t *testing.T) {
	f := NewFrame(7, 84)
	f.Set(-1, 0, true)
	f.Set(0, -1, true)
	f.Set(84, 0, true)
	f.Set(0, 7, true)
	for y := 0; y < 7; y++ {
		for x := 0; x < 84; x++ {
			if f.Lit(x, y) {
				t.Fatalf("out-of-range Set leaked into (%d,%d)", x, y)
			}
		}
	}
	if f.Lit(-1, 0) || f.Lit(0, 99) {
		t.Fatal("out-of-range Lit must read unlit")
	}
}

func TestFrameCloneIsIndependent(t *testing.T) {
	a := parse("#.", ".#")
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone differs")
	}
	b.Set(0, 1, true)
	if a.Equal(b) {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestFrameEqual(t *testing.T) {
	if parse("#.").Equal(parse("#.", "..")) {
		t.Fatal("frames of different heights compared equal")
	}
	if parse("#.").Equal(nil) {
		t.Fatal("nil compared equal")
	}
	if !parse("#.#").Equal(parse("#.#")) {
		t.Fatal("identical frames compared unequal")
	}
}

func TestFrameWindowClips(t *testing.T) {
	f := parse(
		"##.",
		".#.",
	)
	// Window starting left of the frame reads unlit padding.
	w := f.Window(-2, 3)
	want := parse(
		"..#",
		"...",
	)
	if !w.Equal(want) {
		t.Fatalf("left-clipped window wrong")
	}
	// Window running past the right edge.
	w = f.Window(2, 3)
	want = parse(
		"...",
		"...",
	)
	if !w.Equal(want) {
		t.Fatalf("right-clipped window wrong")
	}
	// In-range window is a straight copy.
	if !f.Window(0, 3).Equal(f) {
		t.Fatal("identity window differs")
	}
}

func TestFramePadRight(t *testing.T) {
	f := parse("##", ".#")
	p := f.PadRight(4)
	want := parse("##..", ".#..")
	if !p.Equal(want) {
		t.Fatal("pad wrong")
	}
}

func TestFrameImage(t *testing.T) {
	f := parse("#.", ".#")
	if got := f.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds %v", got)
	}
	r, _, _, _ := f.At(0, 0).RGBA()
	if r == 0 {
		t.Fatal("lit dot must read as On")
	}
	r, _, _, _ = f.At(1, 0).RGBA()
	if r != 0 {
		t.Fatal("unlit dot must read as Off")
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	src.SetGray(0, 0, color.Gray{Y: 255})
	src.SetGray(2, 1, color.Gray{Y: 255})
	f := FromImage(src)
	want := parse(
		"#..",
		"..#",
	)
	if !f.Equal(want) {
		t.Fatal("conversion wrong")
	}
	// Round-trip: a Frame is itself an image.Image.
	if !FromImage(f).Equal(f) {
		t.Fatal("frame did not survive image round-trip")
	}
}
