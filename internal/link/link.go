// Package link abstracts the ordered byte channel between the driver and
// the sign. The protocol is write-only; a Channel never reads.
package link

// Channel is an exclusive byte sink. Write queues bytes in order and
// Flush blocks until everything queued has left the adapter. Both are
// synchronous and fallible; errors are fatal to the send in progress.
type Channel interface {
	Write(p []byte) (int, error)
	Flush() error
	Close() error
}
