// Package input provides the trigger sources that advance the sign to
// its next word.
package input

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// Source delivers discrete trigger events: a pedal press, a line typed on
// a bench terminal.
type Source interface {
	Events() <-chan struct{}
	Close() error
}

// Button watches a GPIO line through the character device. The pedal
// shorts the line to ground, so a press is a debounced falling edge.
type Button struct {
	line *gpiocdev.Line
	ch   chan struct{}
}

// NewButton requests the line as a pulled-up input with edge events.
func NewButton(chip string, offset int, debounce time.Duration) (*Button, error) {
	b := &Button{ch: make(chan struct{}, 4)}
	line, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithDebounce(debounce),
		gpiocdev.WithFallingEdge,
		gpiocdev.WithEventHandler(b.handle))
	if err != nil {
		return nil, fmt.Errorf("input: request %s line %d: %w", chip, offset, err)
	}
	b.line = line
	return b, nil
}

func (b *Button) handle(evt gpiocdev.LineEvent) {
	if evt.Type != gpiocdev.LineEventFallingEdge {
		return
	}
	select {
	case b.ch <- struct{}{}:
	default:
		// Presses during an in-flight animation are dropped, not queued.
	}
}

func (b *Button) Events() <-chan struct{} { return b.ch }

func (b *Button) Close() error {
	return b.line.Close()
}

// Lines emits one event per line read from r. Handy on a bench with no
// pedal wired up: run with stdin and hit return.
type Lines struct {
	ch   chan struct{}
	done chan struct{}
}

func NewLines(r io.Reader) *Lines {
	l := &Lines{ch: make(chan struct{}, 4), done: make(chan struct{})}
	go func() {
		defer close(l.ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case l.ch <- struct{}{}:
			case <-l.done:
				return
			}
		}
	}()
	return l
}

func (l *Lines) Events() <-chan struct{} { return l.ch }

func (l *Lines) Close() error {
	close(l.done)
	return nil
}
