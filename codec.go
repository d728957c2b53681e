package ltefec

import (
	"github.com/mewkiz/pkg/errutil"
	"github.com/openradio/ltefec/conv"
	"github.com/openradio/ltefec/crc"
)

// Codec bundles a CRC spec, a convolutional code spec and its Trellis
// (built once, shared read-only) into the transmit/receive pipeline:
// payload -> CRC attach -> conv encode, and
// coded -> Viterbi decode -> CRC check -> payload.
//
// Codec adds no algorithmic behavior beyond crc.PolyCRC and conv's own
// types: it exists only to save callers from re-deriving the wiring order.
// Every invariant and edge case of the wrapped operations applies
// unchanged.
type Codec struct {
	crcSpec  *crc.Spec
	codeSpec *conv.CodeSpec
	trellis  *conv.Trellis

	poly *crc.PolyCRC
	enc  *conv.Encoder
	dec  *conv.Decoder
}

// NewCodec binds a Codec to the given CRC and convolutional code specs,
// building the Trellis once.
func NewCodec(crcSpec *crc.Spec, codeSpec *conv.CodeSpec) *Codec {
	trellis := conv.BuildTrellis(codeSpec)
	return &Codec{
		crcSpec:  crcSpec,
		codeSpec: codeSpec,
		trellis:  trellis,
		poly:     crc.New(crcSpec),
		enc:      conv.NewEncoder(codeSpec),
		dec:      conv.NewDecoder(trellis),
	}
}

// Transmit attaches a CRC to payload and convolutionally encodes the
// result with zero-tail termination.
func (c *Codec) Transmit(payload BitVector) (coded BitVector, err error) {
	withCRC, err := c.poly.Attach(payload)
	if err != nil {
		return nil, errutil.Err(err)
	}
	out, err := c.enc.Encode(withCRC, true)
	if err != nil {
		return nil, errutil.Err(err)
	}
	return BitVector(out), nil
}

// Receive Viterbi-decodes coded and checks the recovered CRC. ok reports
// whether the CRC matched; payload is always returned, even when ok is
// false (a CRC mismatch is a data outcome, not an error).
func (c *Codec) Receive(coded BitVector) (payload BitVector, ok bool, err error) {
	decoded := c.dec.Decode(coded, true)
	p, ok, err := c.poly.Check(decoded)
	if err != nil {
		return nil, false, errutil.Err(err)
	}
	return BitVector(p), ok, nil
}
