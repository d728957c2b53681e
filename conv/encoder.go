package conv

import (
	"github.com/mewkiz/pkg/errutil"
	"github.com/openradio/ltefec/internal/bits"
)

// Encoder produces the rate-1/3 convolutional encoding of a bit vector for
// a bound CodeSpec.
type Encoder struct {
	spec *CodeSpec
}

// NewEncoder binds an Encoder to the given spec.
func NewEncoder(spec *CodeSpec) *Encoder {
	return &Encoder{spec: spec}
}

// Encode returns the rate-1/3 encoding of in. If terminate is true, six
// zero bits are logically appended to drive the encoder back to state 0,
// and the output has length 3*(len(in)+6); otherwise the output has length
// 3*len(in) and the final state is left unconstrained (tail-biting
// initialization is out of scope).
//
// Output bits are emitted in the order (G0_t, G1_t, G2_t, G0_{t+1}, ...),
// which the Viterbi decoder relies on.
func (e *Encoder) Encode(in []byte, terminate bool) ([]byte, error) {
	if err := bits.ValidateBits(in); err != nil {
		return nil, errutil.Err(err)
	}

	tailLen := uint(0)
	if terminate {
		tailLen = e.spec.Memory()
	}
	out := make([]byte, 3*(len(in)+int(tailLen)))

	var state uint8
	pos := 0
	for _, u := range in {
		next, o := step(e.spec, u, state)
		out[pos], out[pos+1], out[pos+2] = o[0], o[1], o[2]
		pos += 3
		state = next
	}
	for i := uint(0); i < tailLen; i++ {
		next, o := step(e.spec, 0, state)
		out[pos], out[pos+1], out[pos+2] = o[0], o[1], o[2]
		pos += 3
		state = next
	}

	return out, nil
}
