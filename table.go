package fastac

// computeTableBits returns the smallest b >= 3 such that n <= 1<<(b+2),
// the decoder acceleration table precision for an n-symbol distribution.
func computeTableBits(n int) uint {
	b := uint(3)
	for n > (1 << (b + 2)) {
		b++
	}
	return b
}

// newAccelTable allocates a decoder acceleration table sized for the given
// table precision, per the "(1<<table_bits) + 4" sizing rule: the +4 slack
// guarantees table[t+1] is always addressable during decode.
func newAccelTable(tableBits uint) []uint32 {
	return make([]uint32, (1<<tableBits)+4)
}

// fillAccelTable populates table so that table[v>>tableShift] is a lower
// bound on the symbol index for any code fraction v. As k ranges over
// symbols 1..n-1, each newly reached bucket w := dist[k]>>tableShift is
// stamped with k-1; buckets beyond the last boundary are stamped with the
// final symbol index n-1.
func fillAccelTable(table []uint32, dist []uint32, n int, tableShift uint) {
	table[0] = 0
	s := uint32(0)
	for k := 1; k < n; k++ {
		w := dist[k] >> tableShift
		if w > s {
			for j := s + 1; j <= w; j++ {
				table[j] = uint32(k - 1)
			}
			s = w
		}
	}
	for j := s + 1; j < uint32(len(table)); j++ {
		table[j] = uint32(n - 1)
	}
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
