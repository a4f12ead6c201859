// Package anim derives the frame sequences behind the sign's transitions:
// the vertical roll between two frames, the horizontal scroll for content
// wider than the panel, and the duplicate-packet collapse used by cyclic
// playback.
package anim

import (
	"bytes"

	"github.com/samisabik/flipdot/internal/hanover"
)

// Roll returns the vertical wipe from old to next: the new content slides
// in from the top while the old slides off the bottom. The sequence has
// exactly height frames and the last one equals next.
func Roll(old, next *hanover.Frame) []*hanover.Frame {
	h, w := old.Height(), old.Width()
	frames := make([]*hanover.Frame, 0, h)
	for shift := 1; shift <= h; shift++ {
		f := hanover.NewFrame(h, w)
		for y := 0; y < shift; y++ {
			copyRow(f, y, next, y)
		}
		for y := shift; y < h; y++ {
			copyRow(f, y, old, y-shift)
		}
		frames = append(frames, f)
	}
	return frames
}

func copyRow(dst *hanover.Frame, dy int, src *hanover.Frame, sy int) {
	for x := 0; x < dst.Width(); x++ {
		if src.Lit(x, sy) {
			dst.Set(x, dy, true)
		}
	}
}

// Scroll returns the panel-width windows that pan bitmap in from the
// right edge and out the left: offsets run from 0 to bitmap width plus
// panelW inclusive, stepping by step, with the final offset clamped into
// range so the sequence always ends on the fully blank exit window.
// step trades frame count for smoothness; 1 is smoothest.
func Scroll(bitmap *hanover.Frame, panelW, step int) []*hanover.Frame {
	if step < 1 {
		step = 1
	}
	end := bitmap.Width() + panelW
	var frames []*hanover.Frame
	for off := 0; ; off += step {
		o := off
		if o > end {
			o = end
		}
		frames = append(frames, bitmap.Window(o-panelW, panelW))
		if o == end {
			break
		}
	}
	return frames
}

// Dedupe collapses runs of identical consecutive packets to one send.
// Re-transmitting an unchanged frame costs a full frame interval and
// flips nothing, so cyclic content (a looping waveform) gets cheaper
// without changing what the panel shows.
func Dedupe(packets [][]byte) [][]byte {
	if len(packets) == 0 {
		return nil
	}
	out := [][]byte{packets[0]}
	for _, p := range packets[1:] {
		if !bytes.Equal(p, out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}
