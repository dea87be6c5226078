package align

// Token is a single opaque unit of a sequence (a sound-class symbol, a
// segment, a raw character — the core never interprets it).
type Token = string

// Sequence is an ordered list of tokens.
type Sequence = []Token

// GapWeights holds one real-valued multiplier per position of the matching
// sequence, modulating the base gap penalty at that column.
type GapWeights = []float64

// ProsodicString is a parallel per-position context annotation, one code
// point per token, compared by code-point value.
type ProsodicString = []rune

// Mode selects the alignment regime.
type Mode string

const (
	ModeGlobal  Mode = "global"
	ModeLocal   Mode = "local"
	ModeOverlap Mode = "overlap"
	ModeDialign Mode = "dialign"
)

// TracebackOp is the small closed set of traceback transitions, named for
// which sequence receives the gap symbol on that step.
type TracebackOp int8

const (
	OpStop TracebackOp = iota // reset cell, local-mode only
	OpDiag                    // diagonal match/mismatch, consumes both sequences
	OpGapB                    // gap placed in sequence B's slot, consumes A
	OpGapA                    // gap placed in sequence A's slot, consumes B
)

// forbidden is the large negative sentinel used to veto restricted-character
// alignments (spec DESIGN NOTES: "chosen so it cannot be outscored by any
// realistic recurrence").
const forbidden = -1e9

// gapSymbol is the literal gap character used in returned alignments.
const gapSymbol = "-"

// Alignment is a pair of equal-length token sequences, '-' marking gaps.
type Alignment struct {
	A, B []Token
}

// LocalAlignment holds the three segments (prefix, aligned core, suffix) of
// each sequence produced by a local traceback, preserving unaligned flanks.
type LocalAlignment struct {
	PrefixA, CoreA, SuffixA []Token
	PrefixB, CoreB, SuffixB []Token
}
