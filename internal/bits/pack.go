package bits

import (
	"io"

	"github.com/icza/bitio"
)

// Pack writes the bits in data (each byte 0 or 1) to w as a packed,
// MSB-first byte stream, padding the final byte with zero bits. It is used
// only at the file/CLI boundary; the channel-coding core itself never does
// I/O.
func Pack(w io.Writer, data []byte) error {
	bw := bitio.NewWriter(w)
	for _, b := range data {
		if err := bw.WriteBits(uint64(b), 1); err != nil {
			return err
		}
	}
	return bw.Close()
}

// Unpack reads n bits from r, previously packed by Pack, and returns them
// as a byte-per-bit slice.
func Unpack(r io.Reader, n int) ([]byte, error) {
	br := bitio.NewReader(r)
	out := make([]byte, n)
	for i := range out {
		bit, err := br.ReadBits(1)
		if err != nil {
			return nil, err
		}
		out[i] = byte(bit)
	}
	return out, nil
}
