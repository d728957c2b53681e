// Package bits contains low-level bit-arithmetic helpers shared by the crc
// and conv packages: validating that a byte slice holds only 0/1 values,
// and computing parity (popcount mod 2) of a small register.
package bits

import "github.com/pkg/errors"

// ValidateBits reports an error if any byte of data is not 0 or 1.
func ValidateBits(data []byte) error {
	for i, b := range data {
		if b != 0 && b != 1 {
			return errors.Errorf("bits.ValidateBits: byte at index %d has value %d, want 0 or 1", i, b)
		}
	}
	return nil
}

// parityTable7 holds the parity (popcount mod 2) of every 7-bit value,
// precomputed once so the encoder and trellis builder never need a native
// popcount intrinsic.
var parityTable7 [128]byte

func init() {
	for v := 0; v < len(parityTable7); v++ {
		p := byte(0)
		for x := v; x != 0; x &= x - 1 {
			p ^= 1
		}
		parityTable7[v] = p
	}
}

// Parity7 returns popcount(reg) mod 2 for a 7-bit register (reg < 128).
func Parity7(reg uint8) byte {
	return parityTable7[reg&0x7F]
}
