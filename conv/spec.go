// Package conv implements the rate-1/3, constraint-length-7 convolutional
// code of 3GPP TS 36.212: the encoder, its compiled trellis, and a
// hard-decision Viterbi decoder over the trellis.
package conv

// CodeSpec describes one convolutional code: its constraint length and the
// three generator polynomials (as K-bit integers, bit K-1 = newest input,
// bit 0 = oldest memory cell).
//
// CodeSpec values are immutable and safe to share across any number of
// concurrent callers; Trellis values derived from them likewise.
type CodeSpec struct {
	// K is the constraint length.
	K uint
	// Generators holds the three generator polynomials in output order
	// (G0, G1, G2), each a K-bit integer.
	Generators [3]uint8
}

// Memory returns K-1, the number of stored past input bits.
func (s *CodeSpec) Memory() uint {
	return s.K - 1
}

// NumStates returns 1<<Memory(), the size of the trellis.
func (s *CodeSpec) NumStates() int {
	return 1 << s.Memory()
}

// LTESpec is the standard TS 36.212 profile: K=7, generators 133, 171, 165
// octal (binary 1011011, 1111001, 1110101).
var LTESpec = &CodeSpec{
	K:          7,
	Generators: [3]uint8{0b1011011, 0b1111001, 0b1110101},
}
