package fastac

import (
	"encoding/binary"
	"io"
)

// WriteFrame writes payload framed as <uvarint length><payload bytes>,
// little-endian base-128 — the same format encoding/binary already
// implements bit-for-bit. It returns the total number of bytes written.
func WriteFrame(w io.Writer, payload []byte) (int, error) {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(payload)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return 0, err
	}
	written, err := w.Write(payload)
	return n + written, err
}

// ReadFrame reads a frame written by WriteFrame: a varint length prefix
// followed by exactly that many bytes. maxLen bounds the declared length
// to guard against a corrupt or hostile prefix demanding an unreasonable
// allocation; ErrFrameTooLarge is returned if the declared length exceeds
// it.
//
// The varint is read one byte at a time directly from r rather than
// through a bufio.Reader: a fresh bufio.Reader wrapping r on every call
// would read ahead past the varint into bytes belonging to the next
// frame, and then discard them when this call returns — silently
// corrupting any stream carrying more than one frame. Reading exactly
// the bytes this frame needs, and no more, leaves r positioned correctly
// for the caller's next ReadFrame call.
func ReadFrame(r io.Reader, maxLen int) ([]byte, error) {
	l, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	if l > uint64(maxLen) {
		return nil, ErrFrameTooLarge
	}

	payload := make([]byte, l)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ErrShortRead
	}
	return payload, nil
}

// readUvarint decodes a base-128 varint from r one byte at a time,
// matching encoding/binary's uvarint format without requiring r to
// implement io.ByteReader or risking a buffered reader's read-ahead.
func readUvarint(r io.Reader) (uint64, error) {
	var buf [1]byte
	var x uint64
	var s uint

	for i := 0; i < binary.MaxVarintLen64; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if i == 0 {
				// A clean stream boundary: no frame here at all.
				return 0, err
			}
			// The stream ended partway through a continuation sequence
			// rather than at a frame boundary — that's a malformed
			// varint, not a legitimate end of stream.
			return 0, ErrMalformedVarint
		}
		b := buf[0]
		if b < 0x80 {
			if i == binary.MaxVarintLen64-1 && b > 1 {
				return 0, ErrMalformedVarint
			}
			return x | uint64(b)<<s, nil
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
	return 0, ErrMalformedVarint
}
