package driver

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/samisabik/flipdot/internal/link"
)

// The bus runs 8N1, so every byte costs a start bit, eight data bits and
// a stop bit on the wire.
const wireBitsPerByte = 10

// Scheduler paces packet writes so consecutive frames never outrun the
// link or the controller's internal refresh. It is the only writer on the
// channel.
type Scheduler struct {
	ch     link.Channel
	baud   int
	margin time.Duration
	log    zerolog.Logger
}

// NewScheduler returns a Scheduler over ch. margin is added to every
// frame interval to cover the controller's refresh latency after a packet
// lands; tens of milliseconds in practice.
func NewScheduler(ch link.Channel, baud int, margin time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{ch: ch, baud: baud, margin: margin, log: log}
}

// FrameInterval returns the minimum spacing between the starts of two
// consecutive writes of n-byte packets.
func (s *Scheduler) FrameInterval(n int) time.Duration {
	tx := time.Duration(n*wireBitsPerByte) * time.Second / time.Duration(s.baud)
	return tx + s.margin
}

// SendOne writes a single packet and flushes it, with no pacing.
func (s *Scheduler) SendOne(pkt []byte) error {
	if _, err := s.ch.Write(pkt); err != nil {
		return fmt.Errorf("driver: write: %w", err)
	}
	if err := s.ch.Flush(); err != nil {
		return fmt.Errorf("driver: flush: %w", err)
	}
	return nil
}

// Send writes packets in order, each fully written and flushed, and keeps
// at least FrameInterval between the starts of consecutive writes. The
// clock is read before each write so channel latency jitter eats into the
// sleep instead of stretching the spacing; an already-exceeded interval
// sleeps nothing. Send blocks until the whole sequence is out and is not
// cancellable. A failure aborts the sequence immediately.
func (s *Scheduler) Send(packets [][]byte) error {
	for i, pkt := range packets {
		start := time.Now()
		if err := s.SendOne(pkt); err != nil {
			return fmt.Errorf("packet %d/%d: %w", i+1, len(packets), err)
		}
		if rest := s.FrameInterval(len(pkt)) - time.Since(start); rest > 0 {
			time.Sleep(rest)
		}
	}
	s.log.Debug().Int("packets", len(packets)).Msg("sequence sent")
	return nil
}
