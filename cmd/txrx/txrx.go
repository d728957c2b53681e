// Package txrx implements the command-line demonstration of the
// transmit/receive pipeline: payload -> CRC attach -> convolutional encode
// on the way out, coded -> Viterbi decode -> CRC check on the way back.
//
// It is a thin shell around package ltefec for manual exercise of the
// core: no new algorithmic behavior lives here.
package txrx

import (
	"encoding/binary"
	"math/rand"
	"os"

	"github.com/mewkiz/pkg/errutil"
	"github.com/openradio/ltefec"
	"github.com/openradio/ltefec/conv"
	"github.com/openradio/ltefec/crc"
	"github.com/openradio/ltefec/internal/bits"
	"github.com/pkg/errors"
)

// Encode reads a packed bit payload from inPath, transmits it through
// CrcSpec+CodeSpec, and writes the packed coded stream to outPath.
func Encode(inPath, outPath string, crcSpec *crc.Spec, codeSpec *conv.CodeSpec) error {
	payload, err := readPacked(inPath)
	if err != nil {
		return errors.WithStack(err)
	}

	codec := ltefec.NewCodec(crcSpec, codeSpec)
	coded, err := codec.Transmit(ltefec.BitVector(payload))
	if err != nil {
		return errutil.Err(err)
	}

	return writePacked(outPath, coded)
}

// Decode reads a packed coded stream from inPath, receives it through
// CrcSpec+CodeSpec, and writes the recovered packed payload to outPath. It
// reports the CRC outcome on os.Stderr rather than failing the command:
// a CRC mismatch is a data outcome, not an error.
func Decode(inPath, outPath string, crcSpec *crc.Spec, codeSpec *conv.CodeSpec) error {
	coded, err := readPacked(inPath)
	if err != nil {
		return errors.WithStack(err)
	}

	codec := ltefec.NewCodec(crcSpec, codeSpec)
	payload, ok, err := codec.Receive(ltefec.BitVector(coded))
	if err != nil {
		return errutil.Err(err)
	}
	if !ok {
		os.Stderr.WriteString("txrx: CRC check failed; payload delivered anyway\n")
	}

	return writePacked(outPath, payload)
}

// SelfTest encodes and decodes n random payloads of the given size through
// CrcSpec+CodeSpec, flipping exactly maxErrBurst distinct bits within an
// 18-bit window of each coded frame, and reports how many round-trip
// correctly, a batch self-check in the spirit of a larger simulator
// harness, expressed as a single idiomatic Go loop.
func SelfTest(trials, payloadBits, maxErrBurst int, crcSpec *crc.Spec, codeSpec *conv.CodeSpec) (passed int, err error) {
	codec := ltefec.NewCodec(crcSpec, codeSpec)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < trials; i++ {
		payload := make(ltefec.BitVector, payloadBits)
		for j := range payload {
			payload[j] = byte(rng.Intn(2))
		}

		coded, err := codec.Transmit(payload)
		if err != nil {
			return passed, errutil.Err(err)
		}

		if len(coded) >= 18 && maxErrBurst > 0 {
			start := rng.Intn(len(coded) - 18)
			window := coded[start : start+18]
			for _, idx := range rng.Perm(18)[:maxErrBurst] {
				window[idx] ^= 1
			}
		}

		got, ok, err := codec.Receive(coded)
		if err != nil {
			return passed, errutil.Err(err)
		}
		if ok && bitsEqual(got, payload) {
			passed++
		}
	}
	return passed, nil
}

func bitsEqual(a, b ltefec.BitVector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// readPacked reads a file written by writePacked: a 4-byte big-endian bit
// count followed by that many bits, packed MSB-first and zero-padded to a
// byte boundary. The explicit count lets Unpack stop exactly at the real
// bit length instead of swallowing the trailing pad bits as data.
func readPacked(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var n uint32
	if err := binary.Read(f, binary.BigEndian, &n); err != nil {
		return nil, errors.WithStack(err)
	}
	return bits.Unpack(f, int(n))
}

func writePacked(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	if err := binary.Write(f, binary.BigEndian, uint32(len(data))); err != nil {
		return errors.WithStack(err)
	}
	return bits.Pack(f, data)
}
