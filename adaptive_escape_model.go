package fastac

// AdaptiveEscapeModel is an AdaptiveModel variant that reserves its last
// symbol as an escape sentinel meaning "the next symbol has not been seen
// yet, fall back to a wider model". Callers declare an alphabet of size n;
// internally the model tracks n+1 symbols, the extra one being the
// escape.
type AdaptiveEscapeModel struct {
	*adaptiveMultiCore
}

// NewAdaptiveEscapeModel constructs an AdaptiveEscapeModel over a
// caller-declared alphabet of n symbols (n+1 internally, the escape
// sentinel being the last).
func NewAdaptiveEscapeModel(n int) (*AdaptiveEscapeModel, error) {
	if !validAlphabetSize(n) {
		return nil, ErrInvalidAlphabetSize
	}
	m := &AdaptiveEscapeModel{adaptiveMultiCore: newAdaptiveMultiCore(n + 1)}
	m.Reset()
	return m, nil
}

// Reset returns the model to its initial state: only the escape symbol is
// possible, every declared symbol starts unseen.
func (m *AdaptiveEscapeModel) Reset() {
	for k := 0; k < m.n-1; k++ {
		m.count[k] = 0
	}
	m.count[m.n-1] = 1
	m.totalCount = 1
	m.updateCycle = 0
	m.symbolsUntilUpdate = 0
	m.runUpdate(m.updateCycle-m.symbolsUntilUpdate, false)

	// As in AdaptiveModel.Reset, this reassignment intentionally
	// overrides whatever runUpdate just computed.
	m.updateCycle = uint32(m.n+6) >> 1
	m.symbolsUntilUpdate = m.updateCycle
}

// HasSymbol reports whether s has been made decodable via AddSymbol (or
// was never unknown to begin with, for the escape sentinel itself).
func (m *AdaptiveEscapeModel) HasSymbol(s int) bool {
	return m.count[s] > 0
}

// Escape returns the index of the escape sentinel symbol.
func (m *AdaptiveEscapeModel) Escape() int {
	return m.n - 1
}

// AddSymbol makes s decodable from now on. Call it after encoding (or
// decoding) the escape symbol for s's first occurrence, on both the
// encoder's and the decoder's independently-evolving copy of the model.
func (m *AdaptiveEscapeModel) AddSymbol(s int, fromEncoder bool) error {
	if s < 0 || s >= m.n-1 {
		return ErrSymbolOutOfRange
	}
	m.count[s]++
	m.symbolsUntilUpdate--
	delta := m.updateCycle - m.symbolsUntilUpdate
	m.runUpdate(delta, fromEncoder)
	return nil
}

func (m *AdaptiveEscapeModel) afterEncode(s int) {
	m.count[s]++
	m.symbolsUntilUpdate--
	if m.symbolsUntilUpdate == 0 {
		m.runUpdate(m.updateCycle-m.symbolsUntilUpdate, true)
	}
}

func (m *AdaptiveEscapeModel) afterDecode(s int) {
	m.count[s]++
	m.symbolsUntilUpdate--
	if m.symbolsUntilUpdate == 0 {
		m.runUpdate(m.updateCycle-m.symbolsUntilUpdate, false)
	}
}
