package link_test

import (
	"testing"

	"periph.io/x/conn/v3/conntest"

	"github.com/samisabik/flipdot/internal/link"
)

func TestConnWritesThroughTx(t *testing.T) {
	pkt := []byte{0x02, '1', '2', '0', '0', 0x03, 'C', 'B'}
	pb := &conntest.Playback{
		Ops:       []conntest.IO{{W: pkt}},
		DontPanic: true,
	}
	ch := link.NewConn(pb)
	n, err := ch.Write(pkt)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(pkt) {
		t.Fatalf("short write: %d", n)
	}
	if err := ch.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatalf("unconsumed ops: %v", err)
	}
}

func TestConnUnexpectedWriteFails(t *testing.T) {
	pb := &conntest.Playback{DontPanic: true}
	ch := link.NewConn(pb)
	if _, err := ch.Write([]byte{0x02}); err == nil {
		t.Fatal("expected playback mismatch error")
	}
}
