// Package ltefec wires together the channel-coding core of 3GPP TS 36.212:
// a polynomial CRC (package crc), a rate-1/3 constraint-length-7
// convolutional code, and its trellis and Viterbi decoder (package conv).
//
// The core is single-threaded, synchronous, and deterministic: every
// function here is pure in the value sense, and CrcSpec/CodeSpec/Trellis
// values are immutable once built and safe to share read-only across any
// number of concurrent callers.
package ltefec

import (
	"github.com/openradio/ltefec/internal/bits"
	"github.com/pkg/errors"
)

// BitVector is an ordered sequence of bits, each 0 or 1. It is a plain byte
// slice rather than a packed bitset: the hot paths in crc and conv compare
// one bit at a time against trellis tables, which is friendlier to a
// contiguous byte-per-bit layout than to bit-packed words.
type BitVector []byte

// NewBitVector validates data and returns it as a BitVector. The same 0/1
// check (bits.ValidateBits) guards crc's Attach/Check and conv's Encode;
// conv's Decode, and so Codec.Receive, do not validate their input.
func NewBitVector(data []byte) (BitVector, error) {
	if err := bits.ValidateBits(data); err != nil {
		return nil, errors.WithStack(err)
	}
	return BitVector(data), nil
}
