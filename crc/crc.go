package crc

import (
	"github.com/mewkiz/pkg/errutil"
	"github.com/openradio/ltefec/internal/bits"
	"github.com/pkg/errors"
)

// PolyCRC computes and verifies polynomial CRCs over GF(2) bit streams
// using a left-shifting LFSR.
type PolyCRC struct {
	spec *Spec
}

// New binds a PolyCRC engine to the given spec.
func New(spec *Spec) *PolyCRC {
	return &PolyCRC{spec: spec}
}

// Attach returns payload followed by spec.Width parity bits (MSB first),
// the coefficients of the remainder of M(x)*x^width mod g(x).
//
// An empty payload is valid: Attach returns Width zero bits. Any byte of
// payload outside {0,1} is a fatal input-validation error.
func (c *PolyCRC) Attach(payload []byte) ([]byte, error) {
	if err := bits.ValidateBits(payload); err != nil {
		return nil, errutil.Err(err)
	}

	// feed's msb-XOR-input recurrence already yields M(x)*x^width mod g(x)
	// after the payload, so no trailing zero bits are fed.
	reg := c.feed(0, payload)

	out := make([]byte, len(payload)+int(c.spec.Width))
	copy(out, payload)
	for i := uint(0); i < c.spec.Width; i++ {
		out[len(payload)+int(i)] = byte((reg >> (c.spec.Width - 1 - i)) & 1)
	}
	return out, nil
}

// Check recomputes the remainder over the entire bits stream (payload plus
// trailing CRC) and reports whether it is zero. The returned payload is
// bits minus the trailing Width bits regardless of ok: a CRC mismatch is a
// data outcome, never a Go error.
func (c *PolyCRC) Check(bitsWithCRC []byte) (payload []byte, ok bool, err error) {
	if err := bits.ValidateBits(bitsWithCRC); err != nil {
		return nil, false, errutil.Err(err)
	}
	if uint(len(bitsWithCRC)) < c.spec.Width {
		return nil, false, errutil.Err(errors.Errorf("crc.Check: input of %d bits shorter than CRC width %d", len(bitsWithCRC), c.spec.Width))
	}

	reg := c.feed(0, bitsWithCRC)
	n := len(bitsWithCRC) - int(c.spec.Width)
	payload = make([]byte, n)
	copy(payload, bitsWithCRC[:n])
	return payload, reg == 0, nil
}

// feed runs the LFSR recurrence over in, starting from
// register value reg, and returns the resulting register.
func (c *PolyCRC) feed(reg uint32, in []byte) uint32 {
	mask := c.spec.mask()
	width := c.spec.Width
	gen := c.spec.Generator
	for _, b := range in {
		msb := (reg >> (width - 1)) & 1
		reg = (reg << 1) & mask
		if (msb ^ uint32(b)) == 1 {
			reg ^= gen
		}
	}
	return reg
}
