package align

import (
	"github.com/lexstat/lingalign/align/internal/numeric"
	"github.com/lexstat/lingalign/align/matrix"
)

// NWResult is the result of NeedlemanWunsch.
type NWResult struct {
	AlignedA, AlignedB []Token
	Similarity         int
}

// NeedlemanWunsch performs plain global alignment over raw tokens with a
// uniform gap penalty. If scorer is nil, an ephemeral +1/-1 substitution
// matrix is built from the Cartesian product of tokens observed in seqA and
// seqB (spec DESIGN NOTES: "Default-fill scorer for NW/SW/WE when no table
// is provided").
func NeedlemanWunsch(seqA, seqB Sequence, scorer *matrix.SubstitutionMatrix, gapPenalty int) (*NWResult, error) {
	var err error
	if scorer == nil {
		scorer, err = matrix.FromObservedTokens(seqA, seqB, 1, -1)
		if err != nil {
			return nil, err
		}
	}

	m, n := len(seqA), len(seqB)
	h := make([][]int, n+1)
	for i := range h {
		h[i] = make([]int, m+1)
	}
	for j := 1; j <= m; j++ {
		h[0][j] = h[0][j-1] + gapPenalty
	}
	for i := 1; i <= n; i++ {
		h[i][0] = h[i-1][0] + gapPenalty
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			s, err := scorer.Score(seqA[j-1], seqB[i-1])
			if err != nil {
				return nil, err
			}
			diag := h[i-1][j-1] + s
			up := h[i-1][j] + gapPenalty
			left := h[i][j-1] + gapPenalty
			h[i][j] = numeric.Max3(diag, up, left)
		}
	}

	var almA, almB []Token
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case j > 0 && i > 0 && h[i][j] == h[i-1][j-1]+mustScore(scorer, seqA[j-1], seqB[i-1]):
			almA = append(almA, seqA[j-1])
			almB = append(almB, seqB[i-1])
			i--
			j--
		case i > 0 && h[i][j] == h[i-1][j]+gapPenalty:
			almA = append(almA, gapSymbol)
			almB = append(almB, seqB[i-1])
			i--
		default:
			almA = append(almA, seqA[j-1])
			almB = append(almB, gapSymbol)
			j--
		}
	}
	reverseTokens(almA)
	reverseTokens(almB)
	return &NWResult{AlignedA: almA, AlignedB: almB, Similarity: h[n][m]}, nil
}

// mustScore is used in traceback comparisons where the cell was already
// filled successfully with this same pair, so the lookup cannot fail.
func mustScore(scorer *matrix.SubstitutionMatrix, a, b Token) int {
	s, err := scorer.Score(a, b)
	if err != nil {
		return minIntSentinel
	}
	return s
}

const minIntSentinel = -1 << 30

// SWResult is the result of SmithWaterman: a LocalAlignment split into
// prefix/core/suffix per sequence, plus the max local score.
type SWResult struct {
	Local      LocalAlignment
	Similarity int
}

// SmithWaterman performs local alignment over raw tokens. scorer defaults
// the same way as NeedlemanWunsch's.
func SmithWaterman(seqA, seqB Sequence, scorer *matrix.SubstitutionMatrix, gapPenalty int) (*SWResult, error) {
	h, scorer, err := fillSWMatrix(seqA, seqB, scorer, gapPenalty)
	if err != nil {
		return nil, err
	}
	m, n := len(seqA), len(seqB)
	maxScore, maxI, maxJ := 0, 0, 0
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if h[i][j] > maxScore {
				maxScore, maxI, maxJ = h[i][j], i, j
			}
		}
	}
	local, _, _ := tracebackSW(seqA, seqB, h, scorer, gapPenalty, maxI, maxJ)
	return &SWResult{Local: local, Similarity: maxScore}, nil
}

func fillSWMatrix(seqA, seqB Sequence, scorer *matrix.SubstitutionMatrix, gapPenalty int) ([][]int, *matrix.SubstitutionMatrix, error) {
	var err error
	if scorer == nil {
		scorer, err = matrix.FromObservedTokens(seqA, seqB, 1, -1)
		if err != nil {
			return nil, nil, err
		}
	}
	m, n := len(seqA), len(seqB)
	h := make([][]int, n+1)
	for i := range h {
		h[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			s, err := scorer.Score(seqA[j-1], seqB[i-1])
			if err != nil {
				return nil, nil, err
			}
			diag := h[i-1][j-1] + s
			up := h[i-1][j] + gapPenalty
			left := h[i][j-1] + gapPenalty
			h[i][j] = numeric.Max(0, numeric.Max3(diag, up, left))
		}
	}
	return h, scorer, nil
}

// tracebackSW walks from (i,j) to the first zero cell, returning the
// prefix/core/suffix segmentation of both sequences around the local hit,
// plus the (i,j) coordinates where the walk actually stopped. Callers that
// need to fence off the cells this hit consumed (WatermanEggert) must use
// these stop coordinates rather than reconstruct them from segment lengths:
// a gap step advances only one of i,j, so len(CoreA)/len(CoreB) alone
// cannot recover where the walk stopped.
func tracebackSW(seqA, seqB Sequence, h [][]int, scorer *matrix.SubstitutionMatrix, gapPenalty, i, j int) (local LocalAlignment, stopI, stopJ int) {
	startI, startJ := i, j
	var coreA, coreB []Token
loop:
	for i > 0 && j > 0 && h[i][j] > 0 {
		switch {
		case h[i][j] == h[i-1][j-1]+mustScore(scorer, seqA[j-1], seqB[i-1]):
			coreA = append(coreA, seqA[j-1])
			coreB = append(coreB, seqB[i-1])
			i--
			j--
		case h[i][j] == h[i-1][j]+gapPenalty:
			coreA = append(coreA, gapSymbol)
			coreB = append(coreB, seqB[i-1])
			i--
		case h[i][j] == h[i][j-1]+gapPenalty:
			coreA = append(coreA, seqA[j-1])
			coreB = append(coreB, gapSymbol)
			j--
		default:
			break loop
		}
	}
	reverseTokens(coreA)
	reverseTokens(coreB)
	local = LocalAlignment{
		PrefixA: append([]Token{}, seqA[:j]...),
		CoreA:   coreA,
		SuffixA: append([]Token{}, seqA[startJ:]...),
		PrefixB: append([]Token{}, seqB[:i]...),
		CoreB:   coreB,
		SuffixB: append([]Token{}, seqB[startI:]...),
	}
	return local, i, j
}

// WEHit is one non-overlapping local alignment returned by WatermanEggert.
type WEHit struct {
	AlignedA, AlignedB []Token
	Similarity         int
}

// WatermanEggert extracts all non-overlapping local alignments from one
// matrix fill, in descending score order, by repeatedly tracing back from
// the current maximum tracer cell and zeroing out the rectangular region it
// covers before continuing.
func WatermanEggert(seqA, seqB Sequence, scorer *matrix.SubstitutionMatrix, gapPenalty int) ([]WEHit, error) {
	h, scorer, err := fillSWMatrix(seqA, seqB, scorer, gapPenalty)
	if err != nil {
		return nil, err
	}
	m, n := len(seqA), len(seqB)
	tracer := make([][]int, n+1)
	for i := range tracer {
		tracer[i] = make([]int, m+1)
		copy(tracer[i], h[i])
	}

	var hits []WEHit
	for {
		maxScore, maxI, maxJ := 0, 0, 0
		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				if tracer[i][j] > maxScore {
					maxScore, maxI, maxJ = tracer[i][j], i, j
				}
			}
		}
		if maxScore == 0 {
			break
		}

		local, stopI, stopJ := tracebackSW(seqA, seqB, h, scorer, gapPenalty, maxI, maxJ)
		hits = append(hits, WEHit{AlignedA: local.CoreA, AlignedB: local.CoreB, Similarity: maxScore})

		// Fence off every cell this traceback consumed, in both the tracer
		// (so the next max search skips it) and h itself (so a later
		// traceback reading h's neighbor values can't walk back through
		// cells this hit already claimed). iMin/jMin come from the walk's
		// own stop coordinates, not from segment lengths, since a gap step
		// advances only one of i,j.
		for i := stopI + 1; i <= maxI; i++ {
			for j := stopJ + 1; j <= maxJ; j++ {
				tracer[i][j] = 0
				h[i][j] = 0
			}
		}
	}
	return hits, nil
}

// EditDistance computes unit-cost Levenshtein distance over raw tokens. If
// normalize is set, the returned float is dist/max(M,N), a value in [0,1];
// otherwise dist holds the raw integer edit count and norm is 0.
func EditDistance(seqA, seqB Sequence, normalize bool) (dist int, norm float64) {
	m, n := len(seqA), len(seqB)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if seqA[j-1] == seqB[i-1] {
				cost = 0
			}
			curr[j] = numeric.Min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	dist = prev[m]
	if normalize {
		denom := numeric.Max(m, n)
		if denom == 0 {
			return dist, 0
		}
		return dist, float64(dist) / float64(denom)
	}
	return dist, 0
}
