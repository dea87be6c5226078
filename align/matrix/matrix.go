/*
Package matrix provides integer substitution matrices for the classical
aligners in package align (Needleman-Wunsch, Smith-Waterman, Waterman-Eggert).
It is kept separate from the real-valued scoring tables used by the
context-aware, profile, and basic aligners because the classical aligners
work over raw tokens with integer scores, the way the teacher package did.
*/
package matrix

import (
	"fmt"

	"github.com/lexstat/lingalign/alphabet"
)

// SubstitutionMatrix holds a substitution matrix and the two alphabets that
// the matrix is defined over.
type SubstitutionMatrix struct {
	FirstAlphabet  *alphabet.Alphabet
	SecondAlphabet *alphabet.Alphabet
	scores         [][]int
}

// NewSubstitutionMatrix creates a new substitution matrix from two alphabets
// and a 2D array of scores.
func NewSubstitutionMatrix(firstAlphabet, secondAlphabet *alphabet.Alphabet, scores [][]int) (*SubstitutionMatrix, error) {
	if len(firstAlphabet.Symbols()) != len(scores) || len(secondAlphabet.Symbols()) != len(scores[0]) {
		return nil, fmt.Errorf("invalid dimensions of substitution matrix: got %dx%d, alphabets have %d and %d symbols",
			len(scores), len(scores[0]), len(firstAlphabet.Symbols()), len(secondAlphabet.Symbols()))
	}
	return &SubstitutionMatrix{firstAlphabet, secondAlphabet, scores}, nil
}

// Score returns the score of two symbols in the substitution matrix.
func (m *SubstitutionMatrix) Score(a, b string) (int, error) {
	i, err := m.FirstAlphabet.Encode(a)
	if err != nil {
		return 0, err
	}
	j, err := m.SecondAlphabet.Encode(b)
	if err != nil {
		return 0, err
	}
	return m.scores[i][j], nil
}

// NUC_4 is a simple nucleotide substitution matrix: match = 5, mismatch = -4,
// over the alphabet {-, A, C, G, T}. It mirrors the matrix used ad hoc in the
// teacher's tests and is exposed here as a reusable default.
//
//nolint:stylecheck
var NUC_4 = [][]int{
	/*       -  A  C  G  T */
	/* - */ {0, 0, 0, 0, 0},
	/* A */ {0, 5, -4, -4, -4},
	/* C */ {0, -4, 5, -4, -4},
	/* G */ {0, -4, -4, 5, -4},
	/* T */ {0, -4, -4, -4, 5},
}

// DefaultAlphabet is the alphabet NUC_4 is defined over.
var DefaultAlphabet = alphabet.NewAlphabet([]string{"-", "A", "C", "G", "T"})

// Default is a ready-to-use nucleotide substitution matrix built from NUC_4.
// NeedlemanWunsch/SmithWaterman/WatermanEggert do not fall back to it when
// given a nil scorer; they build one with FromObservedTokens instead.
var Default, _ = NewSubstitutionMatrix(DefaultAlphabet, DefaultAlphabet, NUC_4)

// simpleMatrix builds a uniform match/mismatch substitution matrix over an
// alphabet, the same shape FromObservedTokens builds ad hoc for raw tokens.
func simpleMatrix(alpha *alphabet.Alphabet, match, mismatch int) *SubstitutionMatrix {
	n := len(alpha.Symbols())
	scores := make([][]int, n)
	for i := range scores {
		scores[i] = make([]int, n)
		for j := range scores[i] {
			if i == j {
				scores[i][j] = match
			} else {
				scores[i][j] = mismatch
			}
		}
	}
	m, _ := NewSubstitutionMatrix(alpha, alpha, scores)
	return m
}

// DefaultDNA, DefaultRNA, and DefaultProtein are ready-to-use substitution
// matrices over alphabet.DNA, alphabet.RNA, and alphabet.Protein, for
// callers whose tokens are already classified as nucleotide or amino-acid
// symbols rather than generic opaque tokens.
var (
	DefaultDNA     = simpleMatrix(alphabet.DNA, 1, -1)
	DefaultRNA     = simpleMatrix(alphabet.RNA, 1, -1)
	DefaultProtein = simpleMatrix(alphabet.Protein, 1, -1)
)

// FromObservedTokens builds an ephemeral +1/-1 substitution matrix across the
// Cartesian product of the tokens actually seen in two sequences, the way
// the classical aligners fall back when the caller passes no scorer at all
// (spec DESIGN NOTES: "Default-fill scorer for NW/SW/WE when no table is
// provided").
func FromObservedTokens(seqA, seqB []string, match, mismatch int) (*SubstitutionMatrix, error) {
	seen := make(map[string]struct{})
	var symbols []string
	add := func(tok string) {
		if _, ok := seen[tok]; !ok {
			seen[tok] = struct{}{}
			symbols = append(symbols, tok)
		}
	}
	for _, t := range seqA {
		add(t)
	}
	for _, t := range seqB {
		add(t)
	}
	alpha := alphabet.NewAlphabet(symbols)
	n := len(symbols)
	scores := make([][]int, n)
	for i := range scores {
		scores[i] = make([]int, n)
		for j := range scores[i] {
			if i == j {
				scores[i][j] = match
			} else {
				scores[i][j] = mismatch
			}
		}
	}
	return NewSubstitutionMatrix(alpha, alpha, scores)
}
