// errors.go defines public error types for the fastac package.

package fastac

import "errors"

// Public error types for codec construction, encoding, and decoding.
var (
	// ErrInvalidBufferSize indicates a buffer capacity outside [3, 16 MiB].
	ErrInvalidBufferSize = errors.New("fastac: invalid buffer size (must be 3..16MiB)")

	// ErrInvalidAlphabetSize indicates an alphabet size outside [2, 2048].
	ErrInvalidAlphabetSize = errors.New("fastac: invalid alphabet size (must be 2..2048)")

	// ErrInvalidProbability indicates a probability outside [0.0001, 0.9999]
	// or a distribution that does not sum to 1 within 1e-4.
	ErrInvalidProbability = errors.New("fastac: invalid probability")

	// ErrWrongMode indicates an operation invoked while the codec was not
	// in the mode it requires (e.g. encoding while Idle).
	ErrWrongMode = errors.New("fastac: operation invalid in current mode")

	// ErrNoBuffer indicates StartEncoder/StartDecoder was called on a
	// codec with no backing buffer, or StartDecoder was given fewer than
	// 4 bytes.
	ErrNoBuffer = errors.New("fastac: no buffer, or buffer too small to start")

	// ErrSymbolOutOfRange indicates a symbol outside a model's alphabet
	// was passed to an encode operation.
	ErrSymbolOutOfRange = errors.New("fastac: symbol out of range")

	// ErrInvalidBitCount indicates PutBits/GetBits was called with a bit
	// count outside [1, 20], or PutBits' data did not fit in that many
	// bits.
	ErrInvalidBitCount = errors.New("fastac: invalid bit count (must be 1..20)")

	// ErrUnseenSymbol indicates an escape model was asked to encode a
	// symbol it has not yet observed via AddSymbol.
	ErrUnseenSymbol = errors.New("fastac: symbol not yet seen by escape model")

	// ErrBufferOverflow indicates StopEncoder produced more bytes than
	// the destination buffer's capacity.
	ErrBufferOverflow = errors.New("fastac: encoded output exceeds buffer capacity")

	// ErrShortRead indicates a framing read found fewer bytes than the
	// declared payload length.
	ErrShortRead = errors.New("fastac: short read while reading framed payload")

	// ErrMalformedVarint indicates a framing varint never terminated
	// (continuation bit set in every byte read).
	ErrMalformedVarint = errors.New("fastac: malformed varint length prefix")

	// ErrFrameTooLarge indicates a framing varint declared a length
	// larger than the caller's maximum.
	ErrFrameTooLarge = errors.New("fastac: framed payload exceeds maximum length")
)

// validBufferCapacity reports whether n is an acceptable owned-buffer
// capacity: at least 3 bytes (the smallest useful window) and at most
// 16 MiB, matching the teacher's own validSampleRate-style guard helpers.
func validBufferCapacity(n int) bool {
	return n >= minBufferCapacity && n <= maxBufferCapacity
}

// validAlphabetSize reports whether n is an acceptable number of symbols.
func validAlphabetSize(n int) bool {
	return n >= MinAlphabetSize && n <= MaxAlphabetSize
}
