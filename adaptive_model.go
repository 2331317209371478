package fastac

// AdaptiveModel is a multi-symbol probability model over N symbols that
// re-estimates its cumulative distribution from observed counts on a
// geometrically lengthening cycle, mirroring AdaptiveBitModel's scheme.
type AdaptiveModel struct {
	*adaptiveMultiCore
}

// NewAdaptiveModel constructs an AdaptiveModel over n symbols, all
// initially equiprobable.
func NewAdaptiveModel(n int) (*AdaptiveModel, error) {
	if !validAlphabetSize(n) {
		return nil, ErrInvalidAlphabetSize
	}
	m := &AdaptiveModel{adaptiveMultiCore: newAdaptiveMultiCore(n)}
	m.Reset()
	return m, nil
}

// Reset returns the model to its initial, equiprobable state.
func (m *AdaptiveModel) Reset() {
	for k := range m.count {
		m.count[k] = 1
	}
	m.totalCount = uint32(m.n)
	m.updateCycle = 0
	m.symbolsUntilUpdate = 0
	m.runUpdate(m.updateCycle, false)

	// runUpdate's own update_cycle assignment above is overwritten here;
	// this mirrors the reference scheme exactly and must not be
	// "simplified" by dropping the reassignment.
	m.updateCycle = uint32(m.n+6) >> 1
	m.symbolsUntilUpdate = m.updateCycle
}

func (m *AdaptiveModel) afterEncode(s int) {
	m.count[s]++
	m.symbolsUntilUpdate--
	if m.symbolsUntilUpdate == 0 {
		m.runUpdate(m.updateCycle, true)
	}
}

func (m *AdaptiveModel) afterDecode(s int) {
	m.count[s]++
	m.symbolsUntilUpdate--
	if m.symbolsUntilUpdate == 0 {
		m.runUpdate(m.updateCycle, false)
	}
}
