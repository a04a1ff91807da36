package fuzzer

import "math/rand"

// mutateOnce applies a single INSERT, DELETE, or UPDATE to seq at a random
// position using a byte drawn from alphabet (spec.md §4.10). It never
// mutates seq in place.
func mutateOnce(r *rand.Rand, alphabet []byte, seq []byte) []byte {
	if len(seq) == 0 {
		return []byte{randByte(r, alphabet)}
	}
	switch r.Intn(3) {
	case 0: // INSERT
		pos := r.Intn(len(seq) + 1)
		out := make([]byte, 0, len(seq)+1)
		out = append(out, seq[:pos]...)
		out = append(out, randByte(r, alphabet))
		out = append(out, seq[pos:]...)
		return out
	case 1: // DELETE
		if len(seq) == 1 {
			return []byte{}
		}
		pos := r.Intn(len(seq))
		out := make([]byte, 0, len(seq)-1)
		out = append(out, seq[:pos]...)
		out = append(out, seq[pos+1:]...)
		return out
	default: // UPDATE
		out := append([]byte(nil), seq...)
		out[r.Intn(len(out))] = randByte(r, alphabet)
		return out
	}
}

func randByte(r *rand.Rand, alphabet []byte) byte {
	return alphabet[r.Intn(len(alphabet))]
}

// mutateStacked applies 2^k mutations in sequence, the "stacked mutation"
// pass spec.md §4.10 describes.
func mutateStacked(r *rand.Rand, alphabet []byte, seq []byte, k int) []byte {
	out := seq
	for i, n := 0, 1<<uint(k); i < n; i++ {
		out = mutateOnce(r, alphabet, out)
	}
	return out
}
