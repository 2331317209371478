package fastac

// StaticBitModel is an immutable probability model for a single bit: it
// stores P(bit=0), fixed-point scaled to bmLengthShift bits, and never
// changes once constructed.
type StaticBitModel struct {
	p0Scaled uint32
}

// NewStaticBitModel returns a StaticBitModel with P(bit=0) set to p,
// clamped to [0.0001, 0.9999].
func NewStaticBitModel(p0 float64) *StaticBitModel {
	m := &StaticBitModel{}
	m.SetProbability0(p0)
	return m
}

// SetProbability0 clamps p to [0.0001, 0.9999] and stores
// floor(p * 2^bmLengthShift).
func (m *StaticBitModel) SetProbability0(p float64) {
	if p < 1e-4 {
		p = 1e-4
	}
	if p > 1-1e-4 {
		p = 1 - 1e-4
	}
	m.p0Scaled = uint32(p * float64(uint32(1)<<bmLengthShift))
}
