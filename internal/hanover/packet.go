package hanover

import (
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	stx = 0x02
	etx = 0x03

	// The only command these signs accept over RS-485: write one full
	// image to the panel at the addressed position.
	cmdWriteImage = '1'
)

// MaxAddress is the highest sign address on a shared bus; addresses are a
// single hex digit in the frame.
const MaxAddress = 15

// Packet decode errors. The protocol is fire-and-forget so nothing on the
// device side ever decodes, but tests and bus sniffers do.
var (
	ErrShortPacket = errors.New("hanover: packet too short")
	ErrFraming     = errors.New("hanover: missing STX/ETX delimiter")
	ErrChecksum    = errors.New("hanover: checksum mismatch")
)

const hexDigits = "0123456789ABCDEF"

// Pack encodes f into the controller's native byte layout. Each column is
// a vertical strip of ceil(H/8) bytes, topmost 8-row group first, least
// significant bit nearest row 0. Rows past the real height read as unlit.
// Strips are concatenated column 0 first; output length is W*ceil(H/8).
func Pack(f *Frame) []byte {
	groups := (f.h + 7) / 8
	out := make([]byte, 0, f.w*groups)
	for x := 0; x < f.w; x++ {
		for g := 0; g < groups; g++ {
			var b byte
			for k := 0; k < 8; k++ {
				if y := g*8 + k; y < f.h && f.Lit(x, y) {
					b |= 1 << k
				}
			}
			out = append(out, b)
		}
	}
	return out
}

// Unpack inverts Pack for an h-by-w panel. Padding bits beyond h must be
// zero-filled by the packer and are discarded here.
func Unpack(data []byte, h, w int) (*Frame, error) {
	groups := (h + 7) / 8
	if len(data) != w*groups {
		return nil, fmt.Errorf("hanover: packed length %d, want %d for %dx%d", len(data), w*groups, h, w)
	}
	f := NewFrame(h, w)
	for x := 0; x < w; x++ {
		for g := 0; g < groups; g++ {
			b := data[x*groups+g]
			for k := 0; k < 8; k++ {
				if y := g*8 + k; y < h && b&(1<<k) != 0 {
					f.Set(x, y, true)
				}
			}
		}
	}
	return f, nil
}

// Codec builds wire packets for one sign address. The address is the only
// per-sign state in the protocol, so it is validated once here.
type Codec struct {
	addr int
}

// NewCodec returns a Codec for the sign at addr (0 through MaxAddress).
func NewCodec(addr int) (*Codec, error) {
	if addr < 0 || addr > MaxAddress {
		return nil, fmt.Errorf("hanover: address %d out of range 0-%d", addr, MaxAddress)
	}
	return &Codec{addr: addr}, nil
}

// Address returns the sign address this codec frames for.
func (c *Codec) Address() int { return c.addr }

// Encode frames payload into one wire packet:
//
//	STX '1' <addr> <len%256> <payload> ETX <checksum>
//
// where addr is one uppercase hex digit and the length, payload and
// checksum are uppercase hex ASCII. The checksum is the two's-complement
// negation of the body byte sum (everything between STX and the checksum,
// ETX included) so that body plus checksum sums to zero mod 256.
//
// Payloads of 256 bytes or more wrap silently in the length field. Real
// panels stay well under that, and the hardware's behavior past the
// boundary is unconfirmed, so the wrap is kept rather than rejected.
func (c *Codec) Encode(payload []byte) []byte {
	body := make([]byte, 0, 4+2*len(payload)+1)
	body = append(body, cmdWriteImage, hexDigits[c.addr])
	res := len(payload) & 0xFF
	body = append(body, hexDigits[res>>4], hexDigits[res&0x0F])
	for _, b := range payload {
		body = append(body, hexDigits[b>>4], hexDigits[b&0x0F])
	}
	body = append(body, etx)

	sum := 0
	for _, b := range body {
		sum += int(b)
	}
	ck := byte((256 - sum%256) % 256)

	pkt := make([]byte, 0, len(body)+3)
	pkt = append(pkt, stx)
	pkt = append(pkt, body...)
	pkt = append(pkt, hexDigits[ck>>4], hexDigits[ck&0x0F])
	return pkt
}

// EncodeFrame packs f and frames the result.
func (c *Codec) EncodeFrame(f *Frame) []byte {
	return c.Encode(Pack(f))
}

// DecodePacket parses a wire packet back into its address and payload,
// verifying delimiters and the checksum invariant. It rejects anything a
// sign would ignore.
func DecodePacket(pkt []byte) (addr int, payload []byte, err error) {
	// STX + cmd + addr + 2 length digits + ETX + 2 checksum digits.
	if len(pkt) < 8 {
		return 0, nil, ErrShortPacket
	}
	if pkt[0] != stx || pkt[len(pkt)-3] != etx {
		return 0, nil, ErrFraming
	}
	if pkt[1] != cmdWriteImage {
		return 0, nil, fmt.Errorf("hanover: unknown command %q", pkt[1])
	}

	body := pkt[1 : len(pkt)-2]
	sum := 0
	for _, b := range body {
		sum += int(b)
	}
	ck, err := hexField(pkt[len(pkt)-2:])
	if err != nil {
		return 0, nil, err
	}
	if (sum+ck)%256 != 0 {
		return 0, nil, ErrChecksum
	}

	a, err := hexField(pkt[2:3])
	if err != nil {
		return 0, nil, err
	}
	res, err := hexField(pkt[3:5])
	if err != nil {
		return 0, nil, err
	}
	payloadHex := pkt[5 : len(pkt)-3]
	if len(payloadHex)%2 != 0 {
		return 0, nil, fmt.Errorf("hanover: odd payload hex length %d", len(payloadHex))
	}
	payload = make([]byte, len(payloadHex)/2)
	if _, err := hex.Decode(payload, payloadHex); err != nil {
		return 0, nil, fmt.Errorf("hanover: payload: %w", err)
	}
	if len(payload)&0xFF != res {
		return 0, nil, fmt.Errorf("hanover: length field %02X does not match %d payload bytes", res, len(payload))
	}
	return a, payload, nil
}

func hexField(b []byte) (int, error) {
	v := 0
	for _, c := range b {
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			return 0, fmt.Errorf("hanover: invalid hex digit %q", c)
		}
		v = v<<4 | d
	}
	return v, nil
}
