// Package driver orchestrates frame delivery to a Hanover flipdot sign:
// it owns the tracked panel state, picks the direct, roll or scroll path
// for each request, and paces every packet onto the byte channel.
package driver

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/samisabik/flipdot/internal/anim"
	"github.com/samisabik/flipdot/internal/hanover"
	"github.com/samisabik/flipdot/internal/link"
)

// Opts is the fixed panel configuration. Validated once in New, never
// clamped.
type Opts struct {
	// Address of the sign on the bus, 0 through 15.
	Address int
	// Height and Width of the panel in dots.
	Height int
	Width  int
	// Baud rate of the serial link.
	Baud int
	// Margin added to every frame interval for the controller's refresh.
	Margin time.Duration
	// ScrollStep is the column advance per scroll frame, at least 1.
	ScrollStep int
}

func (o *Opts) validate() error {
	if o.Address < 0 || o.Address > hanover.MaxAddress {
		return fmt.Errorf("driver: address %d out of range 0-%d", o.Address, hanover.MaxAddress)
	}
	if o.Height < 1 || o.Width < 1 {
		return fmt.Errorf("driver: invalid panel geometry %dx%d", o.Height, o.Width)
	}
	if o.Baud < 1 {
		return fmt.Errorf("driver: invalid baud rate %d", o.Baud)
	}
	if o.Margin < 0 {
		return fmt.Errorf("driver: negative margin %v", o.Margin)
	}
	if o.ScrollStep < 1 {
		return fmt.Errorf("driver: scroll step %d, must be at least 1", o.ScrollStep)
	}
	return nil
}

// Sign is an open handle to one panel. It is not safe for concurrent use:
// a Display call blocks until its whole sequence is on the wire, and a
// second caller must queue behind it.
type Sign struct {
	sched *Scheduler
	codec *hanover.Codec
	h, w  int
	step  int
	log   zerolog.Logger

	// cur is the last fully committed panel content. It changes only
	// after a complete send or sequence, never mid-transmission.
	cur *hanover.Frame
}

// New returns a Sign over ch. The tracked panel state starts all-unlit.
func New(ch link.Channel, opts *Opts, log zerolog.Logger) (*Sign, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	codec, err := hanover.NewCodec(opts.Address)
	if err != nil {
		return nil, err
	}
	return &Sign{
		sched: NewScheduler(ch, opts.Baud, opts.Margin, log),
		codec: codec,
		h:     opts.Height,
		w:     opts.Width,
		step:  opts.ScrollStep,
		log:   log,
		cur:   hanover.NewFrame(opts.Height, opts.Width),
	}, nil
}

// Scheduler exposes the paced transmitter for pre-built packet sequences,
// e.g. looping waveform playback.
func (s *Sign) Scheduler() *Scheduler { return s.sched }

// Codec exposes the packet codec bound to this sign's address.
func (s *Sign) Codec() *hanover.Codec { return s.codec }

// Current returns a copy of the last committed panel content.
func (s *Sign) Current() *hanover.Frame { return s.cur.Clone() }

// Display shows f on the panel. Frames no wider than the panel are padded
// to full width and shown whole, rolled in from the top when animate is
// set. Wider frames scroll across instead (preceded by a roll to blank
// when animate is set); after a scroll the tracked state is blank, since
// the content has exited the panel.
//
// On error the transmission stops where it is and the tracked state keeps
// its last committed value.
func (s *Sign) Display(f *hanover.Frame, animate bool) error {
	if f.Height() != s.h {
		return fmt.Errorf("driver: frame height %d, panel is %d", f.Height(), s.h)
	}

	if f.Width() <= s.w {
		target := f.PadRight(s.w)
		if animate {
			if err := s.roll(target); err != nil {
				return err
			}
		} else {
			if err := s.sched.SendOne(s.codec.EncodeFrame(target)); err != nil {
				return err
			}
		}
		s.cur = target
		s.log.Debug().Bool("animate", animate).Msg("frame displayed")
		return nil
	}

	if animate {
		if err := s.roll(hanover.NewFrame(s.h, s.w)); err != nil {
			return err
		}
	}
	if err := s.sched.Send(s.packets(anim.Scroll(f, s.w, s.step))); err != nil {
		return err
	}
	s.cur = hanover.NewFrame(s.h, s.w)
	s.log.Debug().Int("width", f.Width()).Msg("frame scrolled")
	return nil
}

// Clear blanks the panel with a single unpaced send.
func (s *Sign) Clear() error {
	blank := hanover.NewFrame(s.h, s.w)
	if err := s.sched.SendOne(s.codec.EncodeFrame(blank)); err != nil {
		return err
	}
	s.cur = blank
	return nil
}

func (s *Sign) roll(target *hanover.Frame) error {
	return s.sched.Send(s.packets(anim.Roll(s.cur, target)))
}

func (s *Sign) packets(frames []*hanover.Frame) [][]byte {
	out := make([][]byte, len(frames))
	for i, f := range frames {
		out[i] = s.codec.EncodeFrame(f)
	}
	return out
}
