package fastac

import "math"

// StaticModel is an immutable cumulative distribution over an alphabet of
// N symbols (2 <= N <= MaxAlphabetSize). For alphabets larger than 16
// symbols it also carries a decoder acceleration table.
type StaticModel struct {
	dist       []uint32 // len N+1; dist[0]=0, dist[N]=1<<dmLengthShift
	lastSymbol int
	table      []uint32 // nil when N <= 16
	tableShift uint
}

// NewStaticModel constructs a StaticModel over n symbols. If probabilities
// is nil, the distribution is uniform (1/n each); otherwise it must have
// exactly n entries, each in [0.0001, 0.9999], summing to 1 within 1e-4.
func NewStaticModel(n int, probabilities []float64) (*StaticModel, error) {
	if !validAlphabetSize(n) {
		return nil, ErrInvalidAlphabetSize
	}

	p := probabilities
	if p == nil {
		p = make([]float64, n)
		for i := range p {
			p[i] = 1.0 / float64(n)
		}
	} else {
		if len(p) != n {
			return nil, ErrInvalidProbability
		}
		sum := 0.0
		for _, v := range p {
			if v < 1e-4 || v > 1-1e-4 {
				return nil, ErrInvalidProbability
			}
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-4 {
			return nil, ErrInvalidProbability
		}
	}

	m := &StaticModel{
		dist:       make([]uint32, n+1),
		lastSymbol: n - 1,
	}
	cum := 0.0
	scale := float64(uint32(1) << dmLengthShift)
	for k := 0; k < n; k++ {
		m.dist[k] = uint32(cum * scale)
		cum += p[k]
	}
	m.dist[n] = 1 << dmLengthShift

	if n > 16 {
		tableBits := computeTableBits(n)
		m.tableShift = dmLengthShift - tableBits
		m.table = newAccelTable(tableBits)
		fillAccelTable(m.table, m.dist, n, m.tableShift)
	}
	return m, nil
}
