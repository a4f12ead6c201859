package input

import (
	"strings"
	"testing"
	"time"
)

func TestLinesEmitsPerLine(t *testing.T) {
	l := NewLines(strings.NewReader("one\ntwo\n"))
	defer l.Close()

	got := 0
	timeout := time.After(time.Second)
	for got < 2 {
		select {
		case _, ok := <-l.Events():
			if !ok {
				t.Fatalf("channel closed after %d events, want 2", got)
			}
			got++
		case <-timeout:
			t.Fatalf("timed out after %d events", got)
		}
	}

	// Reader exhausted: the channel closes rather than blocking forever.
	select {
	case _, ok := <-l.Events():
		if ok {
			t.Fatal("unexpected third event")
		}
	case <-time.After(time.Second):
		t.Fatal("channel did not close at EOF")
	}
}
