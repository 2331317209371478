// Package fastac implements Amir Said's fast arithmetic coding scheme.
//
// fastac is an entropy coder: it maps a stream of symbols, each drawn from
// a known or learned discrete probability distribution, onto a single
// variable-length bit string whose length approaches the Shannon entropy
// of the source. The coder is wire-compatible with Said's reference
// "fast arithmetic coding" implementation (32-bit interval, 8-bit
// renormalization, carry-back propagation, 24-bit minimum interval
// length).
//
// # Models
//
// Five probability models drive the codec:
//   - StaticBitModel: an immutable P(bit=0).
//   - StaticModel: an immutable cumulative distribution over N symbols.
//   - AdaptiveBitModel: a binary model that re-estimates its probability
//     from observed bits on a geometrically lengthening cycle.
//   - AdaptiveModel: a multi-symbol counterpart of AdaptiveBitModel.
//   - AdaptiveEscapeModel: an AdaptiveModel variant that reserves its last
//     symbol as an escape sentinel meaning "not yet seen".
//
// # Codec lifecycle
//
// A Codec is constructed once and then alternates between Idle and either
// Encoding or Decoding: StartEncoder/StartDecoder move it out of Idle,
// StopEncoder/StopDecoder move it back. A symbol encoded against a model
// must be decoded against a model that has observed the identical update
// history — encoder and decoder models evolve in lockstep.
//
// fastac is strictly single-threaded: no operation blocks, yields, or can
// be cancelled, and concurrent use of one Codec or one model from multiple
// goroutines is undefined. Separate Codec instances with disjoint buffers
// and models may run in parallel without coordination.
package fastac
