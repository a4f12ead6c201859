package text

import "testing"

func TestBuiltinRender(t *testing.T) {
	r := NewBuiltin(7)
	f, err := r.Render("A")
	if err != nil {
		t.Fatal(err)
	}
	if f.Height() != 7 {
		t.Fatalf("height %d, want panel height 7", f.Height())
	}
	if f.Width() < 1 {
		t.Fatalf("width %d", f.Width())
	}
	lit := 0
	topRow := false
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.Lit(x, y) {
				lit++
				if y == 0 {
					topRow = true
				}
			}
		}
	}
	if lit == 0 {
		t.Fatal("rendered glyph has no ink")
	}
	if !topRow {
		t.Fatal("ink must start flush with the top row after cropping")
	}
}

func TestRenderWidthGrowsWithText(t *testing.T) {
	r := NewBuiltin(7)
	short, err := r.Render("AB")
	if err != nil {
		t.Fatal(err)
	}
	long, err := r.Render("ABCDEFGH")
	if err != nil {
		t.Fatal(err)
	}
	if long.Width() <= short.Width() {
		t.Fatalf("width %d not greater than %d", long.Width(), short.Width())
	}
}

func TestRenderEmptyString(t *testing.T) {
	r := NewBuiltin(7)
	f, err := r.Render("")
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.Lit(x, y) {
				t.Fatal("empty string rendered ink")
			}
		}
	}
}

func TestNewTTFMissingFile(t *testing.T) {
	if _, err := NewTTF("does-not-exist.ttf", 7, 7); err == nil {
		t.Fatal("expected error for missing font file")
	}
}
