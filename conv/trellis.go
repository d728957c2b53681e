package conv

import "github.com/openradio/ltefec/internal/bits"

// Trellis holds the dense lookup tables consumed by the decoder for one
// CodeSpec: next_state[s][u] and out_bits[s][u][0..3], plus the
// predecessor tables derived from them. The encoder does not use them; it
// applies the same per-step recurrence (step) directly.
//
// A Trellis is built once per CodeSpec (BuildTrellis) and is safe to share
// read-only across any number of concurrent decoders. It is never
// placed in mutable global state; callers hold it as part of their own
// configuration, parsed once and threaded through every subsequent call.
type Trellis struct {
	spec *CodeSpec

	// nextState[s][u] -> next state.
	nextState [][2]uint8
	// outBits[s][u] -> the 3 output bits (0/1) in G0,G1,G2 order.
	outBits [][2][3]byte

	// uForState[s] is the input bit that produced state s.
	uForState []byte
	// pred0[s]/pred1[s] are the two predecessors of state s, both
	// reachable with input uForState[s].
	pred0 []uint8
	pred1 []uint8
}

// BuildTrellis computes, once per CodeSpec, the next-state/output tables
// and their reverse predecessor tables, by applying the same per-step
// recurrence as the encoder to every (state, input) pair.
func BuildTrellis(spec *CodeSpec) *Trellis {
	n := spec.NumStates()
	t := &Trellis{
		spec:      spec,
		nextState: make([][2]uint8, n),
		outBits:   make([][2][3]byte, n),
		uForState: make([]byte, n),
		pred0:     make([]uint8, n),
		pred1:     make([]uint8, n),
	}

	memory := spec.Memory()
	for s := 0; s < n; s++ {
		for u := 0; u < 2; u++ {
			next, out := step(spec, uint8(u), uint8(s))
			t.nextState[s][u] = next
			t.outBits[s][u] = out
		}
	}

	for s := 0; s < n; s++ {
		t.uForState[s] = byte((s >> (memory - 1)) & 1)
		pred0 := (s & (n/2 - 1)) << 1
		t.pred0[s] = uint8(pred0)
		t.pred1[s] = uint8(pred0 | 1)
	}

	return t
}

// step applies the encoder's per-step recurrence for one (state,
// input) pair: reg = (u<<memory) | s (K bits, input at bit memory, oldest
// memory cell at bit 0); each output bit is popcount(reg & g_i) mod 2;
// the next state is ((u<<(memory-1)) | (s>>1)) masked to `memory` bits.
func step(spec *CodeSpec, u, s uint8) (next uint8, out [3]byte) {
	memory := spec.Memory()
	reg := (uint16(u) << memory) | uint16(s)
	for i, g := range spec.Generators {
		out[i] = bits.Parity7(uint8(reg & uint16(g)))
	}
	stateMask := uint8(spec.NumStates() - 1)
	next = (u<<(memory-1) | (s >> 1)) & stateMask
	return next, out
}

// NextState returns next_state[s][u].
func (t *Trellis) NextState(s uint8, u byte) uint8 {
	return t.nextState[s][u]
}

// OutBits returns out_bits[s][u] as (G0,G1,G2).
func (t *Trellis) OutBits(s uint8, u byte) [3]byte {
	return t.outBits[s][u]
}

// NumStates returns the number of trellis states (64 for the standard
// K=7 profile).
func (t *Trellis) NumStates() int {
	return len(t.nextState)
}
