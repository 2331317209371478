package fastac

import "testing"

// TestStaticBitUniformEightBits is scenario 1 from the testable
// properties: p0=0.5, symbols [1,0,1,0,1,0,1,0], encoded length in bits
// must satisfy 7 <= L <= 40, decode equals input.
func TestStaticBitUniformEightBits(t *testing.T) {
	symbols := []int{1, 0, 1, 0, 1, 0, 1, 0}

	encModel := NewStaticBitModel(0.5)
	codec, err := NewCodec(64)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	if err := codec.StartEncoder(); err != nil {
		t.Fatalf("StartEncoder: %v", err)
	}
	for _, s := range symbols {
		if err := codec.EncodeStaticBit(s, encModel); err != nil {
			t.Fatalf("EncodeStaticBit: %v", err)
		}
	}
	n, err := codec.StopEncoder()
	if err != nil {
		t.Fatalf("StopEncoder: %v", err)
	}

	bits := n * 8
	if bits < 7 || bits > 40 {
		t.Errorf("encoded length %d bits outside [7, 40]", bits)
	}

	decModel := NewStaticBitModel(0.5)
	// StartDecoder needs 4 bytes; the owned buffer is zero past n.
	dec, err := NewCodecWithBuffer(codec.Buffer()[:max(n, 4)])
	if err != nil {
		t.Fatalf("NewCodecWithBuffer: %v", err)
	}
	if err := dec.StartDecoder(); err != nil {
		t.Fatalf("StartDecoder: %v", err)
	}
	for i, want := range symbols {
		got, err := dec.DecodeStaticBit(decModel)
		if err != nil {
			t.Fatalf("DecodeStaticBit at %d: %v", i, err)
		}
		if got != want {
			t.Errorf("symbol %d: got %d, want %d", i, got, want)
		}
	}
}

func TestStaticBitModelRoundTripSkewed(t *testing.T) {
	for _, p0 := range []float64{0.1, 0.5, 0.9, 0.99} {
		t.Run("", func(t *testing.T) {
			symbols := make([]int, 64)
			for i := range symbols {
				symbols[i] = i % 3 % 2 // deterministic mixed pattern
			}

			encModel := NewStaticBitModel(p0)
			codec, err := NewCodec(256)
			if err != nil {
				t.Fatalf("NewCodec: %v", err)
			}
			codec.StartEncoder()
			for _, s := range symbols {
				if err := codec.EncodeStaticBit(s, encModel); err != nil {
					t.Fatalf("EncodeStaticBit: %v", err)
				}
			}
			n, err := codec.StopEncoder()
			if err != nil {
				t.Fatalf("StopEncoder: %v", err)
			}

			decModel := NewStaticBitModel(p0)
			dec, err := NewCodecWithBuffer(codec.Buffer()[:n])
			if err != nil {
				t.Fatalf("NewCodecWithBuffer: %v", err)
			}
			dec.StartDecoder()
			for i, want := range symbols {
				got, err := dec.DecodeStaticBit(decModel)
				if err != nil {
					t.Fatalf("DecodeStaticBit at %d: %v", i, err)
				}
				if got != want {
					t.Errorf("p0=%v symbol %d: got %d, want %d", p0, i, got, want)
				}
			}
		})
	}
}

func TestStaticBitModelClamping(t *testing.T) {
	scale := float64(uint32(1) << bmLengthShift)
	tests := []struct {
		name string
		p    float64
		want uint32
	}{
		{"below_min", -1, uint32(1e-4 * scale)},
		{"above_max", 2, uint32((1 - 1e-4) * scale)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStaticBitModel(tt.p)
			if m.p0Scaled != tt.want {
				t.Errorf("p0Scaled = %d, want %d", m.p0Scaled, tt.want)
			}
		})
	}
}
