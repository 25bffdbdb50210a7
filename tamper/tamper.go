package tamper

// Source provides the randomness used to pick the mutation
// index and replacement byte. *rand.Rand from math/rand/v2
// satisfies it; tests can substitute a fixed sequence.
type Source interface {
	IntN(n int) int
}

// FlipByte returns a copy of data with exactly one byte, at a
// uniformly chosen index, overwritten by a uniformly random
// value in 0-255. The input slice is never mutated. Empty
// input returns an empty slice immediately without consuming
// randomness.
//
// The replacement byte is drawn independently of the original,
// so there is a 1/256 chance the result is byte-identical to
// the input. That distribution is intentional.
func FlipByte(rng Source, data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}

	out := make([]byte, len(data))
	copy(out, data)

	idx := rng.IntN(len(out))
	out[idx] = byte(rng.IntN(256))

	return out
}
