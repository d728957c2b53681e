package bits

import "testing"

func TestValidateBits(t *testing.T) {
	golden := []struct {
		data []byte
		ok   bool
	}{
		{data: nil, ok: true},
		{data: []byte{0, 1, 0, 1}, ok: true},
		{data: []byte{0, 1, 2}, ok: false},
		{data: []byte{1, 1, 1, 9}, ok: false},
	}
	for _, g := range golden {
		err := ValidateBits(g.data)
		got := err == nil
		if got != g.ok {
			t.Errorf("result mismatch for ValidateBits(%v); expected ok=%t, got ok=%t (err=%v)", g.data, g.ok, got, err)
			continue
		}
	}
}

func TestParity7(t *testing.T) {
	golden := []struct {
		reg  uint8
		want byte
	}{
		{reg: 0x00, want: 0},
		{reg: 0x01, want: 1},
		{reg: 0x03, want: 0},
		{reg: 0x7F, want: 1},
		{reg: 0b1011011, want: 1}, // G0 = 133 octal, popcount 5 -> odd
		{reg: 0b1111001, want: 1}, // G1 = 171 octal, popcount 5 -> odd
		{reg: 0b1110101, want: 1}, // G2 = 165 octal, popcount 5 -> odd
	}
	for _, g := range golden {
		got := Parity7(g.reg)
		if got != g.want {
			t.Errorf("result mismatch for Parity7(0b%07b); expected %d, got %d", g.reg, g.want, got)
			continue
		}
	}
}
