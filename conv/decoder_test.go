package conv

import (
	"math/rand"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	enc := NewEncoder(LTESpec)
	dec := NewDecoder(BuildTrellis(LTESpec))

	golden := [][]byte{
		{},
		{1, 0, 1, 1, 0, 0, 1, 0},
		{1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1, 0},
	}
	for _, b := range golden {
		coded, err := enc.Encode(b, true)
		if err != nil {
			t.Fatal(err)
		}
		got := dec.Decode(coded, true)
		if !equalBits(got, b) {
			t.Errorf("round trip mismatch for %v: got %v", b, got)
		}
	}
}

func TestEncodeDecodeRoundTripRandom(t *testing.T) {
	enc := NewEncoder(LTESpec)
	dec := NewDecoder(BuildTrellis(LTESpec))
	rng := rand.New(rand.NewSource(1234))

	for _, n := range []int{0, 1, 2, 50, 500} {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(rng.Intn(2))
		}
		coded, err := enc.Encode(b, true)
		if err != nil {
			t.Fatal(err)
		}
		got := dec.Decode(coded, true)
		if !equalBits(got, b) {
			t.Fatalf("round trip mismatch for n=%d", n)
		}
	}
}

func TestViterbiSingleBitError(t *testing.T) {
	enc := NewEncoder(LTESpec)
	dec := NewDecoder(BuildTrellis(LTESpec))

	b := []byte{1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1, 0}
	coded, err := enc.Encode(b, true)
	if err != nil {
		t.Fatal(err)
	}
	for i := range coded {
		flipped := make([]byte, len(coded))
		copy(flipped, coded)
		flipped[i] ^= 1
		got := dec.Decode(flipped, true)
		if !equalBits(got, b) {
			t.Errorf("single error at coded bit %d was not corrected: got %v, want %v", i, got, b)
		}
	}
}

func TestViterbiSparseErrorCorrection(t *testing.T) {
	enc := NewEncoder(LTESpec)
	dec := NewDecoder(BuildTrellis(LTESpec))
	rng := rand.New(rand.NewSource(99))

	const trials = 30
	for trial := 0; trial < trials; trial++ {
		n := 200
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(rng.Intn(2))
		}
		coded, err := enc.Encode(b, true)
		if err != nil {
			t.Fatal(err)
		}

		// Flip up to 3 bits within an 18-bit window; the code's free
		// distance is 15, so this is guaranteed correctable.
		start := rng.Intn(len(coded) - 18)
		window := coded[start : start+18]
		nErrs := 1 + rng.Intn(3)
		flippedIdx := rng.Perm(18)[:nErrs]
		for _, idx := range flippedIdx {
			window[idx] ^= 1
		}

		got := dec.Decode(coded, true)
		if !equalBits(got, b) {
			t.Fatalf("trial %d: sparse error pattern (n=%d errors in an 18-bit window) was not corrected", trial, nErrs)
		}
	}
}

func TestViterbiTruncation(t *testing.T) {
	dec := NewDecoder(BuildTrellis(LTESpec))
	coded := make([]byte, 3001)
	got := dec.Decode(coded, true)
	if len(got) != 994 {
		t.Fatalf("len(got) = %d, want 994 (1000 steps, drop 6-bit tail)", len(got))
	}
}

func TestViterbiEmptyAndShortInput(t *testing.T) {
	dec := NewDecoder(BuildTrellis(LTESpec))
	if got := dec.Decode(nil, false); len(got) != 0 {
		t.Fatalf("Decode(nil) = %v, want empty", got)
	}
	if got := dec.Decode([]byte{0, 1}, false); len(got) != 0 {
		t.Fatalf("Decode(2 bits) = %v, want empty", got)
	}
}

func TestViterbiDeterministicTieBreak(t *testing.T) {
	dec := NewDecoder(BuildTrellis(LTESpec))
	coded := make([]byte, 300)
	for i := range coded {
		coded[i] = byte(i % 2)
	}
	a := dec.Decode(coded, false)
	b := dec.Decode(coded, false)
	if !equalBits(a, b) {
		t.Fatal("decoding the same ambiguous input twice produced different results")
	}
}

func equalBits(a, b []byte) bool {
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
