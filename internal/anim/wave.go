package anim

import (
	"math"

	"github.com/samisabik/flipdot/internal/hanover"
)

// WaveOpts shape the precomputed sine playback.
type WaveOpts struct {
	// Frames is the number of frames in one precomputed cycle.
	Frames int
	// Wavelength in columns.
	Wavelength float64
	// Speed is the phase advance per frame, in wavelengths.
	Speed float64
}

// DefaultWaveOpts matches the tuning that looks right on a 7x84 panel.
var DefaultWaveOpts = WaveOpts{Frames: 200, Wavelength: 28, Speed: 0.15}

// Wave precomputes a travelling sine wave, thickened one row above and
// below the crest line so it reads at panel heights as low as 7 dots.
func Wave(h, w int, o WaveOpts) []*hanover.Frame {
	mid := float64(h-1) / 2
	amplitude := mid * 0.9
	frames := make([]*hanover.Frame, 0, o.Frames)
	for t := 0; t < o.Frames; t++ {
		f := hanover.NewFrame(h, w)
		for x := 0; x < w; x++ {
			y := mid + amplitude*math.Sin(2*math.Pi*(float64(x)/o.Wavelength-float64(t)*o.Speed))
			row := int(math.Round(y))
			for dy := -1; dy <= 1; dy++ {
				f.Set(x, row+dy, true)
			}
		}
		frames = append(frames, f)
	}
	return frames
}
