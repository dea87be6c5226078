package align

import (
	"lukechampine.com/blake3"
)

// Fingerprint is a stable content digest of a completed alignment: the two
// aligned token sequences plus the mode they were produced under. It is not
// a cache itself — upstream callers use it as a memoization key to avoid
// recomputing the same pairwise alignment, the same narrow role blake3
// plays in seqhash's sequence digests.
type Fingerprint [32]byte

// Fingerprint256 hashes almA, almB, and mode into a 32-byte digest. Two
// calls with equal inputs (including gap placement) produce equal digests.
func Fingerprint256(almA, almB []Token, mode Mode) Fingerprint {
	h := blake3.New(32, nil)
	writeTokens(h, almA)
	h.Write([]byte{0})
	writeTokens(h, almB)
	h.Write([]byte{0})
	h.Write([]byte(mode))
	var out Fingerprint
	copy(out[:], h.Sum(nil))
	return out
}

func writeTokens(h *blake3.Hasher, toks []Token) {
	for _, t := range toks {
		h.Write([]byte(t))
		h.Write([]byte{0x1f})
	}
}
