// Package linktest provides an in-memory link.Channel for headless tests.
package linktest

import "time"

// Recorder captures every write with a timestamp. Setting WriteErr or
// FlushErr makes the corresponding call fail; FailAfter delays the write
// failure until that many writes have succeeded.
type Recorder struct {
	Writes    [][]byte
	Stamps    []time.Time
	Flushes   int
	Closed    bool
	WriteErr  error
	FlushErr  error
	FailAfter int
}

func (r *Recorder) Write(p []byte) (int, error) {
	if r.WriteErr != nil && len(r.Writes) >= r.FailAfter {
		return 0, r.WriteErr
	}
	r.Writes = append(r.Writes, append([]byte(nil), p...))
	r.Stamps = append(r.Stamps, time.Now())
	return len(p), nil
}

func (r *Recorder) Flush() error {
	if r.FlushErr != nil {
		return r.FlushErr
	}
	r.Flushes++
	return nil
}

func (r *Recorder) Close() error {
	r.Closed = true
	return nil
}
