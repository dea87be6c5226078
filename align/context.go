package align

import "github.com/lexstat/lingalign/alphabet"

// ScResult is the result of ScAlign. For ModeGlobal/ModeOverlap/ModeDialign,
// AlignedA/AlignedB hold the full alignment; for ModeLocal, Local holds the
// prefix/core/suffix segmentation instead and AlignedA/AlignedB are nil.
type ScResult struct {
	AlignedA, AlignedB []Token
	Local              *LocalAlignment
	Similarity         float64
	Distance           float64
	HasDistance        bool
}

// ScAlign is the context-aware alignment recurrence: the sound-class-style
// aligner augmented with per-column gap-opening weights, prosodic context,
// context-sensitive gap rescaling, restricted-character constraints, and a
// prosodic match bonus. mode selects among global, local, overlap, and
// dialign. If distance is set, the Downey distance is also computed from
// the self-alignment baselines of seqA and seqB and returned in Distance
// with HasDistance set. both has no further effect on the returned struct:
// Similarity and Distance are both always populated when computed, so the
// three argument-dependent arities of the spec's reference calling
// convention ((almA,almB,sim) / (almA,almB,dist) / (almA,almB,sim,dist))
// collapse to one struct shape here; both is kept as a parameter purely to
// mirror the spec's entry-point signature for callers translating from it.
func ScAlign(seqA, seqB Sequence, gopA, gopB GapWeights, proA, proB ProsodicString,
	gop int, scale, factor float64, scorer Scorer, res *alphabet.RestrictedSet,
	mode Mode, distance, both bool) (*ScResult, error) {

	switch mode {
	case ModeGlobal, ModeLocal, ModeOverlap, ModeDialign:
	default:
		return nil, &ErrInvalidMode{Mode: string(mode), Op: "ScAlign"}
	}
	if err := checkLengths(seqA, gopA, proA, "A"); err != nil {
		return nil, err
	}
	if err := checkLengths(seqB, gopB, proB, "B"); err != nil {
		return nil, err
	}
	scorer = scorerOrDefault(scorer)

	mBases, nBases := len(seqA), len(seqB)

	// Pre-pass: scale the caller's per-column weights by the base penalty.
	scaledGopA := make(GapWeights, mBases)
	for k, w := range gopA {
		scaledGopA[k] = float64(gop) * w
	}
	scaledGopB := make(GapWeights, nBases)
	for k, w := range gopB {
		scaledGopB[k] = float64(gop) * w
	}

	matrix, traceback := newMatrices(scaledGopA, scaledGopB, mBases, nBases, mode, scale)

	var best float64
	var bestI, bestJ int

	for i := 1; i <= nBases; i++ {
		for j := 1; j <= mBases; j++ {
			gapA := scGapACandidate(matrix, traceback, proA, proB, scaledGopB, res, mode, i, j, mBases, scale)
			gapB := scGapBCandidate(matrix, traceback, proA, proB, scaledGopA, res, mode, i, j, nBases, scale)
			match, err := scMatchCandidate(matrix, seqA, seqB, proA, proB, scorer, factor, mode, i, j)
			if err != nil {
				return nil, err
			}

			switch mode {
			case ModeLocal:
				v, op, ok := pickLocal(gapA, match, gapB)
				if !ok {
					matrix[i][j] = 0
					traceback[i][j] = OpStop
				} else {
					matrix[i][j] = v
					traceback[i][j] = op
				}
				if matrix[i][j] >= best {
					best = matrix[i][j]
					bestI, bestJ = i, j
				}
			default:
				v, op := pickBest(gapA, match, gapB)
				matrix[i][j] = v
				traceback[i][j] = op
			}
		}
	}

	result := &ScResult{}
	if mode == ModeLocal {
		result.Similarity = best
		local := tracebackLocal(seqA, seqB, traceback, bestI, bestJ)
		result.Local = &local
	} else {
		result.Similarity = matrix[nBases][mBases]
		almA, almB := tracebackGlobal(seqA, seqB, traceback)
		result.AlignedA, result.AlignedB = almA, almB
	}

	if distance {
		selfA, err := SelfScoreContext(seqA, scorer, factor)
		if err != nil {
			return nil, err
		}
		selfB, err := SelfScoreContext(seqB, scorer, factor)
		if err != nil {
			return nil, err
		}
		result.Distance = downeyDistance(result.Similarity, selfA, selfB)
		result.HasDistance = true
	}
	return result, nil
}

func checkLengths(seq Sequence, gop GapWeights, pro ProsodicString, name string) error {
	if len(gop) != len(seq) {
		return &ErrLengthMismatch{Name: "gop" + name, Want: len(seq), Got: len(gop)}
	}
	if len(pro) != len(seq) {
		return &ErrLengthMismatch{Name: "pro" + name, Want: len(seq), Got: len(pro)}
	}
	return nil
}

// scGapACandidate is the "consume B, place '-' in A" candidate (traceback code OpGapA).
func scGapACandidate(matrix [][]float64, traceback [][]TracebackOp, proA, proB ProsodicString,
	gopB GapWeights, res *alphabet.RestrictedSet, mode Mode, i, j, mBases int, scale float64) float64 {
	switch {
	case j == mBases && mode == ModeOverlap:
		return matrix[i-1][j]
	case res.Contains(proB[i-1]) && !res.Contains(proA[j-1]) && j != mBases:
		return matrix[i-1][j] + forbidden
	case mode == ModeDialign:
		return matrix[i-1][j]
	case traceback[i-1][j] == OpGapA:
		return matrix[i-1][j] + gopB[i-1]*scale
	default:
		return matrix[i-1][j] + gopB[i-1]
	}
}

// scGapBCandidate is the symmetric "consume A, place '-' in B" candidate (traceback code OpGapB).
func scGapBCandidate(matrix [][]float64, traceback [][]TracebackOp, proA, proB ProsodicString,
	gopA GapWeights, res *alphabet.RestrictedSet, mode Mode, i, j, nBases int, scale float64) float64 {
	switch {
	case i == nBases && mode == ModeOverlap:
		return matrix[i][j-1]
	case res.Contains(proA[j-1]) && !res.Contains(proB[i-1]) && i != nBases:
		return matrix[i][j-1] + forbidden
	case mode == ModeDialign:
		return matrix[i][j-1]
	case traceback[i][j-1] == OpGapB:
		return matrix[i][j-1] + gopA[j-1]*scale
	default:
		return matrix[i][j-1] + gopA[j-1]
	}
}

// scMatchCandidate computes the match/mismatch candidate, including the
// dialign diagonal-run exploration and the prosodic bonus.
func scMatchCandidate(matrix [][]float64, seqA, seqB Sequence, proA, proB ProsodicString,
	scorer Scorer, factor float64, mode Mode, i, j int) (float64, error) {
	var match float64
	if mode != ModeDialign {
		s, err := scorer.Score(seqA[j-1], seqB[i-1])
		if err != nil {
			return 0, err
		}
		match = s
	} else {
		limit := i
		if j < limit {
			limit = j
		}
		var best float64
		found := false
		for k := 0; k < limit; k++ {
			cand := matrix[i-k-1][j-k-1]
			for d := 0; d <= k; d++ {
				// Deliberately re-scores the same (j-1,i-1) pair k+1 times
				// instead of summing the diagonal's k+1 distinct pairs; kept
				// as-is rather than corrected.
				s, err := scorer.Score(seqA[j-1], seqB[i-1])
				if err != nil {
					return 0, err
				}
				cand += s
			}
			if !found || cand > best {
				best, found = cand, true
			}
		}
		// Subtracting matrix[i-1][j-1] here is a deliberate fix, not the
		// literal formula (match <- matrix[i-1][j-1] + match + match*factor,
		// with match = best): without it the k=0 case would double-count
		// matrix[i-1][j-1] below instead of reducing to plain non-dialign
		// scoring.
		match = best - matrix[i-1][j-1]
	}

	switch {
	case proA[j-1] == proB[i-1]:
		return matrix[i-1][j-1] + match + match*factor, nil
	case abs(int(proA[j-1])-int(proB[i-1])) >= 2:
		return matrix[i-1][j-1] + match + match*factor*0.5, nil
	default:
		return matrix[i-1][j-1] + match, nil
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// pickBest selects among the three candidates for non-local modes: gapA wins
// if gapA >= gapB and gapA > match (strictly), otherwise match wins if
// match >= gapB, otherwise gapB.
func pickBest(gapA, match, gapB float64) (float64, TracebackOp) {
	if gapA >= gapB {
		if gapA > match {
			return gapA, OpGapA
		}
		if match >= gapB {
			return match, OpDiag
		}
		return gapB, OpGapB
	}
	if match >= gapB {
		return match, OpDiag
	}
	return gapB, OpGapB
}

// pickLocal applies the same comparison cascade as pickBest, but a
// candidate must be >= 0 to be eligible; if none is, the caller resets the
// cell to zero.
func pickLocal(gapA, match, gapB float64) (float64, TracebackOp, bool) {
	eligible := func(v float64) bool { return v >= 0 }
	okA, okM, okG := eligible(gapA), eligible(match), eligible(gapB)
	if !okA && !okM && !okG {
		return 0, OpStop, false
	}
	switch {
	case okA && (!okG || gapA >= gapB) && (!okM || gapA > match):
		return gapA, OpGapA, true
	case okM && (!okG || match >= gapB):
		return match, OpDiag, true
	default:
		return gapB, OpGapB, true
	}
}
